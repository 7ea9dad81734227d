package main

import (
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	"github.com/josephcopenhaver/constdecode/internal/args"
	"github.com/josephcopenhaver/constdecode/internal/commands/alphabets"
	"github.com/josephcopenhaver/constdecode/internal/commands/decode"
	"github.com/josephcopenhaver/constdecode/internal/util"
	"github.com/pkg/errors"
)

// ConstDecode is the main executable
type ConstDecode struct {
	parser *flags.Parser
}

// NewConstDecode will create a new instance of ConstDecode and initialize the parser
func NewConstDecode() *ConstDecode {
	executablePath := path.Base(os.Args[0])

	cd := &ConstDecode{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	cd.setupGeneral()
	cd.setupCommand("decode", "Decode inputs", "Decode each input with the selected alphabet and filter", decode.NewCommand())
	cd.setupCommand("length", "Print decoded lengths", "Validate each input and print the exact number of bytes it decodes to", decode.NewLengthCommand())
	cd.setupCommand("alphabets", "List alphabets", "List preset alphabets and those loaded with --alphabets", alphabets.NewCommand())

	return cd
}

// setupGeneral will configure general options
func (cd *ConstDecode) setupGeneral() {
	if _, err := cd.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (cd *ConstDecode) setupCommand(name, short, long string, cmd flags.Commander) {
	_, err := cd.parser.AddCommand(name, short, long, cmd)
	util.MustErrorNilOrExit(err)
}

func main() {
	_, err := NewConstDecode().parser.Parse()
	util.MustErrorNilOrExit(err)
}
