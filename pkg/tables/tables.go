// Package tables rewrites Markdown so that tables using the bullet-in-cell
// convention (`<br>* item`) no longer trip up markdown linters.
package tables

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/elseano/ccft-pymarkdown/pkg/errs"
)

// Stats describes what a transformation did to a single file.
type Stats struct {
	Lines        int
	LinesChanged int
	Replacements int
	LinesRemoved int
}

// Changed reports whether the output differs from the input.
func (s Stats) Changed() bool {
	return s.LinesChanged > 0 || s.LinesRemoved > 0
}

type Transformer interface {
	Transform(r io.Reader, w io.Writer) (Stats, error)
}

const (
	ModeStrip  = "strip"
	ModeRemove = "remove"
)

// ParseMode returns the transformer registered under name.
func ParseMode(name string) (Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ModeStrip:
		return NewStrip(), nil
	case ModeRemove:
		return NewRemove(), nil
	}

	return nil, fmt.Errorf("%w: unknown table mode %q (expected %s or %s)", errs.ErrInvalidConfig, name, ModeStrip, ModeRemove)
}

// eachLine calls fn with every line of r, including its line ending.
func eachLine(r io.Reader, fn func(line string) error) error {
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')

		if len(line) > 0 {
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}
	}
}
