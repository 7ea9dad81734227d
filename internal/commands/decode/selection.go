package decode

import (
	"github.com/josephcopenhaver/constdecode"
	"github.com/josephcopenhaver/constdecode/internal/args"
	"github.com/josephcopenhaver/constdecode/internal/registry"
	"github.com/pkg/errors"
)

// Selection chooses the alphabet and filter a command decodes with.
type Selection struct {
	Alphabet string `short:"a" long:"alphabet" env:"CONSTDECODE_ALPHABET" default:"base64"  description:"Preset or registered alphabet name"`
	Custom   string `          long:"custom"                               description:"Custom symbol set of 16, 32 or 64 symbols; overrides --alphabet"`
	FoldCase bool   `          long:"fold-case"                            description:"Decode letters of a custom alphabet case insensitively"`
	Padding  string `          long:"padding"                              description:"Mandatory padding byte of a custom alphabet"`
	Filter   string `short:"F" long:"filter"   env:"CONSTDECODE_FILTER"   default:"none"    description:"Input filter" choice:"none" choice:"whitespace" choice:"pem"`
}

// Decoder resolves the selection.
func (s *Selection) Decoder() (constdecode.Decoder, error) {
	filter, err := constdecode.ParseFilter(s.Filter)
	if err != nil {
		return constdecode.Decoder{}, errors.WithStack(err)
	}

	if s.Custom != "" {
		e := registry.Entry{
			Symbols:  s.Custom,
			FoldCase: s.FoldCase,
			Padding:  s.Padding,
		}

		a, err := e.Alphabet("custom")
		if err != nil {
			return constdecode.Decoder{}, err
		}

		return constdecode.NewDecoder(a, filter), nil
	}

	reg, err := registry.LoadFile(args.General.Alphabets)
	if err != nil {
		return constdecode.Decoder{}, err
	}

	a, ok := reg.Lookup(s.Alphabet)
	if !ok {
		return constdecode.Decoder{}, errors.Errorf("unknown alphabet %q", s.Alphabet)
	}

	return constdecode.NewDecoder(a, filter), nil
}
