package lint

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/kr/pty"
)

// process runs a command either with plain pipes or attached to a
// pseudo-terminal, exposing its combined output as a single stream.
type process struct {
	cmd    *exec.Cmd
	pty    *os.File
	output io.ReadCloser
	done   chan error
}

func newProcess(cmd *exec.Cmd) *process {
	return &process{cmd: cmd}
}

// Start launches the command. Under a pty the child sees a terminal and
// keeps its colours.
func (p *process) Start(tty bool) (io.Reader, error) {
	if tty {
		f, err := pty.Start(p.cmd)
		if err != nil {
			return nil, err
		}

		// Size the pty like our own terminal; if that fails the default is fine.
		_ = pty.InheritSize(os.Stdin, f)

		p.pty = f
		p.output = f
		return ptyReader{f}, nil
	}

	r, w := io.Pipe()
	p.cmd.Stdout = w
	p.cmd.Stderr = w

	if err := p.cmd.Start(); err != nil {
		return nil, err
	}

	p.done = make(chan error, 1)
	go func() {
		err := p.cmd.Wait()
		w.Close()
		p.done <- err
	}()

	p.output = r
	return r, nil
}

// Wait blocks until the command exits. The output stream must have been
// drained first.
func (p *process) Wait() error {
	if p.pty != nil {
		defer p.pty.Close()
		return p.cmd.Wait()
	}

	defer p.output.Close()
	return <-p.done
}

// ptyReader turns the EIO Linux returns once the child side of a pty closes
// into a regular EOF.
type ptyReader struct {
	f *os.File
}

func (r ptyReader) Read(b []byte) (int, error) {
	n, err := r.f.Read(b)

	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, syscall.EIO) {
		return n, io.EOF
	}

	return n, err
}

// exitStatus reports a linter killed by a signal as 128+signal, like a
// shell does.
func exitStatus(err *exec.ExitError) int {
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}

	if code := err.ExitCode(); code > 0 {
		return code
	}

	return 129
}
