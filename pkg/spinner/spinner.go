package spinner

import (
	"io"

	"github.com/logrusorgru/aurora"
)

const (
	TICK  = "✔"
	CROSS = "✖"
	DASH  = "-"
)

// Spinner shows progress of a single long running step.
type Spinner interface {
	Start()
	SetMessage(message string)
	Success(message string)
	Error(message string)
}

// New picks a spinner for out: animated on a terminal, one line per state
// change otherwise, and nothing at all when quiet.
func New(out io.Writer, terminal bool, quiet bool, colors aurora.Aurora) Spinner {
	switch {
	case quiet:
		return NewNullSpinner()
	case terminal:
		return NewStdoutSpinner(out, colors)
	default:
		return NewCISpinner(out, colors)
	}
}
