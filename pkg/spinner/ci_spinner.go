package spinner

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
)

// CISpinner writes plain lines for output which is not a terminal, such as
// a CI job log.
type CISpinner struct {
	out       io.Writer
	colors    aurora.Aurora
	message   string
	startedAt time.Time
}

func NewCISpinner(out io.Writer, colors aurora.Aurora) *CISpinner {
	return &CISpinner{out: out, colors: colors}
}

func (s *CISpinner) Start() {
	if s.startedAt.IsZero() {
		s.startedAt = time.Now()
		fmt.Fprintf(s.out, "%s %s\n", s.colors.Faint(DASH), s.message)
	}
}

func (s *CISpinner) SetMessage(message string) {
	s.message = message
}

func (s *CISpinner) Success(message string) {
	s.closeSpinner(s.colors.Green(TICK).String(), message)
}

func (s *CISpinner) Error(message string) {
	s.closeSpinner(s.colors.Red(CROSS).String(), message)
}

func (s *CISpinner) closeSpinner(indicator string, detail string) {
	fmt.Fprintf(s.out, "%s %s %s\n", indicator, s.message, s.colors.Faint(describe(detail, s.startedAt)))
	s.startedAt = time.Time{}
}
