package decode

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Inputs are the positional file arguments. No files, or "-", means stdin.
type Inputs struct {
	Files []string `positional-arg-name:"FILE" description:"Files to decode; stdin when omitted"`
}

type input struct {
	name string
	data []byte
}

// each reads every input in order and hands it to fn. A failure on one
// input does not stop the others; all failures are returned together.
func (in *Inputs) each(stdin io.Reader, fn func(input) error) error {
	files := in.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	var errs error
	for _, name := range files {
		data, err := readInput(stdin, name)
		if err == nil {
			log.Debugf("Read %d bytes from %s", len(data), name)
			err = fn(input{name, data})
		}

		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%s", name))
		}
	}

	return errs
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.WithStack(err)
	}

	data, err := os.ReadFile(name)
	return data, errors.WithStack(err)
}
