package decode

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/josephcopenhaver/constdecode/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command decodes each input and writes the raw bytes to the output.
type Command struct {
	Selection

	Output string `short:"o" long:"output" env:"CONSTDECODE_OUTPUT" default:"-" description:"Output file; stdout when '-'"`
	Hex    bool   `          long:"hex"                                         description:"Write lowercase hex instead of raw bytes, one line per input"`

	Inputs Inputs `positional-args:"yes"`

	stdin  io.Reader
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	dec, err := c.Decoder()
	if err != nil {
		return err
	}

	out := c.stdout
	if c.Output != "" && c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return errors.WithStack(err)
		}

		defer func() {
			if err := f.Close(); err != nil {
				log.Errorf("Could not close %s: %v", c.Output, err)
			}
		}()

		out = f
	}

	return c.Inputs.each(c.stdin, func(in input) error {
		n, err := dec.DecodedLen(in.data)
		if err != nil {
			return err
		}

		dst := make([]byte, n)
		if err := dec.DecodeInto(dst, in.data); err != nil {
			return err
		}

		log.WithField("decoder", dec.String()).Infof("Decoded %s into %d bytes", in.name, n)

		if c.Hex {
			dst = append(hex.AppendEncode(nil, dst), '\n')
		}

		_, err = out.Write(dst)
		return errors.WithStack(err)
	})
}
