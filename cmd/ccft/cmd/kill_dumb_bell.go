package cmd

import (
	"bytes"
	"io"

	"github.com/chzyer/readline"
)

// bellFilter drops the BEL characters readline emits whenever a prompt is
// redrawn. Closing it leaves the underlying writer open.
type bellFilter struct {
	w io.Writer
}

func (f bellFilter) Write(b []byte) (int, error) {
	if bytes.IndexByte(b, '\a') < 0 {
		return f.w.Write(b)
	}

	if _, err := f.w.Write(bytes.ReplaceAll(b, []byte{'\a'}, nil)); err != nil {
		return 0, err
	}

	return len(b), nil
}

func (f bellFilter) Close() error {
	return nil
}

func KillReadlineBell(w io.Writer) {
	readline.Stdout = bellFilter{w: w}
}
