package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/josephcopenhaver/constdecode/internal/logging"
	"github.com/pkg/errors"
)

// LengthCommand prints how many bytes each input decodes to without
// decoding it.
type LengthCommand struct {
	Selection

	Inputs Inputs `positional-args:"yes"`

	stdin  io.Reader
	stdout io.Writer
}

func NewLengthCommand() *LengthCommand {
	return &LengthCommand{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

//noinspection GoUnusedParameter
func (c *LengthCommand) Execute(args []string) error {
	logging.SetupLogging()

	dec, err := c.Decoder()
	if err != nil {
		return err
	}

	return c.Inputs.each(c.stdin, func(in input) error {
		n, err := dec.DecodedLen(in.data)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(c.stdout, "%d\t%s\n", n, in.name)
		return errors.WithStack(err)
	})
}
