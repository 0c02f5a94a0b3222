// Package lint runs the external markdown linter and collects what it
// reports.
package lint

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/rs/zerolog"
)

type Result struct {
	ExitCode     int
	Failures     []Failure
	PragmaErrors []PragmaError
}

// Failed reports whether the linter found anything to complain about.
func (r *Result) Failed() bool {
	return r.ExitCode != 0 || len(r.Failures) > 0 || len(r.PragmaErrors) > 0
}

type Runner struct {
	// Command is the linter invocation; paths to scan are appended to it.
	Command []string
	// Dir is the working directory for the linter.
	Dir string
	// TTY runs the linter under a pseudo-terminal.
	TTY    bool
	Logger zerolog.Logger
}

// Run lints paths, streaming the linter's output to out as it arrives.
// A non-zero exit status is returned as *errs.ExecutionError alongside the
// parsed result.
func (r *Runner) Run(ctx context.Context, paths []string, out io.Writer) (*Result, error) {
	if len(r.Command) == 0 {
		return nil, fmt.Errorf("%w: no linter command configured", errs.ErrInvalidConfig)
	}

	if out == nil {
		out = io.Discard
	}

	args := append(append([]string{}, r.Command[1:]...), paths...)
	cmd := exec.CommandContext(ctx, r.Command[0], args...)
	cmd.Dir = r.Dir

	r.Logger.Debug().Strs("command", cmd.Args).Str("dir", cmd.Dir).Bool("tty", r.TTY).Msg("Starting markdown linter")

	proc := newProcess(cmd)
	output, err := proc.Start(r.TTY)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %v", errs.ErrLinterNotFound, r.Command[0], err)
	}

	result := &Result{}
	readErr := collect(output, out, result)
	if readErr != nil {
		// Keep the linter from blocking on a full pipe.
		_, _ = io.Copy(io.Discard, output)
	}

	waitErr := proc.Wait()
	if readErr != nil {
		return result, readErr
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		result.ExitCode = exitStatus(exitErr)
	default:
		return result, waitErr
	}

	r.Logger.Debug().
		Int("exit", result.ExitCode).
		Int("failures", len(result.Failures)).
		Int("pragma_errors", len(result.PragmaErrors)).
		Msg("Markdown linter finished")

	if result.ExitCode != 0 {
		return result, &errs.ExecutionError{ExitCode: result.ExitCode}
	}

	return result, nil
}

func collect(output io.Reader, out io.Writer, result *Result) error {
	reader := bufio.NewReader(output)

	for {
		line, err := reader.ReadString('\n')

		if len(line) > 0 {
			if _, werr := io.WriteString(out, line); werr != nil {
				return werr
			}

			failure, pragma := ParseLine(line)
			switch {
			case failure != nil:
				result.Failures = append(result.Failures, *failure)
			case pragma != nil:
				result.PragmaErrors = append(result.PragmaErrors, *pragma)
			default:
				util.Debugf("Unrecognised linter output: %q", line)
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
