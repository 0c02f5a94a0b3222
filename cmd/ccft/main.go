package main

import (
	"context"
	"errors"

	"github.com/elseano/ccft-pymarkdown/cmd/ccft/cmd"
	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/thecodeteam/goodbye"
)

var GitCommit string
var Version string

func main() {
	ctx := context.Background()
	defer goodbye.Exit(ctx, -1)
	goodbye.Notify(ctx)

	err := cmd.Execute(ctx, Version, GitCommit)

	var lintErr *errs.ExecutionError
	switch {
	case err == nil:
		goodbye.Exit(ctx, 0)
	case errors.As(err, &lintErr) && lintErr.ExitCode > 0:
		goodbye.Exit(ctx, lintErr.ExitCode)
	case errors.Is(err, cmd.ErrorBackupExists):
		goodbye.Exit(ctx, 2)
	case errors.Is(err, cmd.ErrorLinterNotFound):
		goodbye.Exit(ctx, 127)
	case errors.Is(err, cmd.ErrorArg):
		goodbye.Exit(ctx, 128)
	default:
		goodbye.Exit(ctx, 129)
	}
}
