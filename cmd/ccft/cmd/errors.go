package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
)

var (
	ErrorInternal       = errors.New("Internal ccft-pymarkdown error")
	ErrorArg            = errors.New("Invalid arguments or configuration")
	ErrorBackupExists   = errors.New("Markdown file has already been cleaned")
	ErrorLint           = errors.New("Markdown linter reported problems")
	ErrorLinterNotFound = errors.New("Markdown linter could not be started")
)

// handleError reports err on dest and returns it joined with the error class
// the exit code is chosen from.
func handleError(dest io.Writer, err error) error {
	if err == nil {
		return nil
	}

	colors := util.Colors(dest)

	var lintErr *errs.ExecutionError

	switch {
	case errors.As(err, &lintErr):
		fmt.Fprintf(dest, "\n%s - %s\n\n", colors.Red("Failure"), err)
		return errors.Join(ErrorLint, err)

	case errors.Is(err, errs.ErrBackupExists):
		fmt.Fprintf(dest, "\n%s: %s. Use `%s restore` to first restore the files to their original state.\n\n", colors.Red("Error"), errs.LogMessage(err), appName)
		return errors.Join(ErrorBackupExists, err)

	case errors.Is(err, errs.ErrLinterNotFound):
		fmt.Fprintf(dest, "\n%s: %s\n\n", colors.Red("Error"), err)
		return errors.Join(ErrorLinterNotFound, err)

	case errors.Is(err, ErrorArg),
		errors.Is(err, errs.ErrInvalidConfig),
		errors.Is(err, errs.ErrNoProjectRoot),
		errors.Is(err, errs.ErrNotMarkdown),
		errors.Is(err, errs.ErrNotBackup),
		errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrSymlink):
		fmt.Fprintf(dest, "\n%s: %s\n\n", colors.Red("Error"), err)
		return errors.Join(ErrorArg, err)
	}

	fmt.Fprintf(dest, "\n%s: %s\n\n", colors.Red("Error"), err)

	return errors.Join(ErrorInternal, err)
}
