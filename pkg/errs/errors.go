package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	ErrNotMarkdown    = errors.New("File is not a markdown file")
	ErrNotBackup      = errors.New("File is not a previously converted markdown file")
	ErrNotFound       = errors.New("File does not exist")
	ErrSymlink        = errors.New("File is a symbolic link")
	ErrBackupExists   = errors.New("File already exists")
	ErrNoProjectRoot  = errors.New("Could not locate project root directory")
	ErrInvalidConfig  = errors.New("Invalid configuration")
	ErrLinterNotFound = errors.New("Could not start markdown linter")
)

// FileError ties a failed operation to the file it was working on.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if errors.Is(e.Err, ErrBackupExists) {
		return fmt.Sprintf("Cannot %s custom-formatted tables from Markdown files: '%s' already exists", e.Op, e.Path)
	}

	return fmt.Sprintf("%s '%s': %s", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ExecutionError carries the exit status of the external linter.
type ExecutionError struct {
	ExitCode int
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("Markdown linter exited with status %d", e.ExitCode)
}

// LogMessage renders err for a single log line. Errors without a usable
// message fall back to a description of their kind.
func LogMessage(err error) string {
	if err == nil {
		return ""
	}

	var fileErr *FileError
	if errors.As(err, &fileErr) && !errors.Is(err, ErrBackupExists) {
		err = fileErr.Err
	}

	message := strings.Trim(err.Error(), "\n\r\t .-")
	if message != "" {
		return message
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return "File does not exist"
	case errors.Is(err, ErrBackupExists), errors.Is(err, fs.ErrExist):
		return "File already exists"
	}

	return "Unknown error"
}
