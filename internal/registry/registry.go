// Package registry loads named custom alphabets from a YAML file so the
// command line can refer to them like presets.
//
//	alphabets:
//	  bech32:
//	    symbols: qpzry9x8gf2tvdw0s3jn54khce6mua7l
//	  crockford:
//	    symbols: 0123456789ABCDEFGHJKMNPQRSTVWXYZ
//	    fold-case: true
//	  i2p-base64:
//	    symbols: ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-~
//	    padding: "="
package registry

import (
	"io"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/josephcopenhaver/constdecode"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Entry is one alphabet definition as written in the file.
type Entry struct {
	Symbols  string `yaml:"symbols"`
	FoldCase bool   `yaml:"fold-case"`
	Padding  string `yaml:"padding"`
}

type file struct {
	Alphabets map[string]Entry `yaml:"alphabets"`
}

// Registry resolves alphabet names to presets first, then to the
// alphabets loaded from a file. A file name that collides with a preset is
// rejected at load time.
type Registry struct {
	alphabets map[string]constdecode.Alphabet
}

// LoadFile reads a registry from filename. An empty filename yields an
// empty registry.
func LoadFile(filename string) (*Registry, error) {
	if filename == "" {
		return &Registry{}, nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	r, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not load alphabets from %s", filename)
	}

	return r, nil
}

// Load parses a registry document. Every invalid entry is reported, not
// just the first one.
func Load(in io.Reader) (*Registry, error) {
	body, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var doc file
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "Could not decode alphabets document")
	}

	r := &Registry{
		alphabets: make(map[string]constdecode.Alphabet, len(doc.Alphabets)),
	}

	var errs error
	for name, entry := range doc.Alphabets {
		a, err := entry.Alphabet(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		log.Debugf("Registered alphabet %s (radix %d)", name, a.Radix())
		r.alphabets[name] = a
	}

	if errs != nil {
		return nil, errs
	}

	return r, nil
}

// Alphabet builds the alphabet the entry describes.
func (e Entry) Alphabet(name string) (constdecode.Alphabet, error) {
	if _, ok := constdecode.AlphabetByName(name); ok {
		return constdecode.Alphabet{}, errors.Errorf("alphabet %s: name is reserved by a preset", name)
	}

	a, err := constdecode.Custom(e.Symbols)
	if err != nil {
		return constdecode.Alphabet{}, errors.Wrapf(err, "alphabet %s", name)
	}

	if e.FoldCase {
		if a, err = a.FoldCase(); err != nil {
			return constdecode.Alphabet{}, errors.Wrapf(err, "alphabet %s", name)
		}
	}

	switch len(e.Padding) {
	case 0:
	case 1:
		if a, err = a.WithPadding(rune(e.Padding[0])); err != nil {
			return constdecode.Alphabet{}, errors.Wrapf(err, "alphabet %s", name)
		}
	default:
		return constdecode.Alphabet{}, errors.Errorf("alphabet %s: padding %q must be a single byte", name, e.Padding)
	}

	return a.WithName(name), nil
}

// Lookup finds a preset or registered alphabet by name.
func (r *Registry) Lookup(name string) (constdecode.Alphabet, bool) {
	if a, ok := constdecode.AlphabetByName(name); ok {
		return a, true
	}

	a, ok := r.alphabets[name]
	return a, ok
}

// Names lists the registered names in sorted order, presets excluded.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.alphabets))
	for name := range r.alphabets {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
