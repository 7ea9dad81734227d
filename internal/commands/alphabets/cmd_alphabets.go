package alphabets

import (
	"fmt"
	"io"
	"os"

	"github.com/josephcopenhaver/constdecode"
	"github.com/josephcopenhaver/constdecode/internal/args"
	"github.com/josephcopenhaver/constdecode/internal/logging"
	"github.com/josephcopenhaver/constdecode/internal/registry"
	"github.com/pkg/errors"
)

// Command lists the preset and registered alphabets.
type Command struct {
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		stdout: os.Stdout,
	}
}

func (c *Command) Execute(_ []string) error {
	logging.SetupLogging()

	reg, err := registry.LoadFile(args.General.Alphabets)
	if err != nil {
		return err
	}

	names := append(constdecode.AlphabetNames(), reg.Names()...)
	for _, name := range names {
		a, _ := reg.Lookup(name)

		padding := "none"
		if p, ok := a.Padding(); ok {
			padding = string(p)
		}

		if _, err := fmt.Fprintf(c.stdout, "%-16s radix=%-3d padding=%-4s %s\n", name, a.Radix(), padding, a.Symbols()); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
