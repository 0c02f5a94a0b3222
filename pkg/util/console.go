package util

import (
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"golang.org/x/crypto/ssh/terminal"
)

func IntMin(a, b int) int {
	if a > b {
		return b
	}
	return a
}

func GetConsoleWidth() int {
	width, _, err := terminal.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	return width
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Colors returns an aurora instance which only emits escape codes when w
// is a terminal.
func Colors(w io.Writer) aurora.Aurora {
	return aurora.NewAurora(IsTerminal(w))
}
