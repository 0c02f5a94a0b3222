package spinner

import (
	"fmt"
	"io"
	"time"

	spx "github.com/briandowns/spinner"
	"github.com/logrusorgru/aurora"
)

type StdoutSpinner struct {
	s         *spx.Spinner
	out       io.Writer
	colors    aurora.Aurora
	message   string
	startedAt time.Time
}

func NewStdoutSpinner(out io.Writer, colors aurora.Aurora) *StdoutSpinner {
	s := spx.New(spx.CharSets[11], 100*time.Millisecond, spx.WithWriter(out), spx.WithColor("fgHiCyan"))

	return &StdoutSpinner{s: s, out: out, colors: colors}
}

func (s *StdoutSpinner) Start() {
	if s.startedAt.IsZero() {
		s.startedAt = time.Now()
	}

	s.s.Start()
}

func (s *StdoutSpinner) SetMessage(message string) {
	s.message = message

	s.s.Lock()
	s.s.Suffix = " " + message
	s.s.Unlock()
}

func (s *StdoutSpinner) Success(message string) {
	s.finish(s.colors.Green(TICK).String(), message)
}

func (s *StdoutSpinner) Error(message string) {
	s.finish(s.colors.Red(CROSS).String(), message)
}

// finish stops the animation and leaves a single result line behind. The
// line is written here rather than through FinalMSG, which the spinner drops
// when it never started animating.
func (s *StdoutSpinner) finish(indicator string, detail string) {
	s.s.Stop()

	fmt.Fprintf(s.out, "%s %s %s\n", indicator, s.message, s.colors.Faint(describe(detail, s.startedAt)))
	s.startedAt = time.Time{}
}

func describe(detail string, startedAt time.Time) string {
	elapsed := ""
	if !startedAt.IsZero() {
		elapsed = time.Since(startedAt).Round(time.Millisecond).String()
	}

	switch {
	case detail != "" && elapsed != "":
		return "(" + detail + ", " + elapsed + ")"
	case detail != "":
		return "(" + detail + ")"
	case elapsed != "":
		return "(" + elapsed + ")"
	}

	return ""
}
