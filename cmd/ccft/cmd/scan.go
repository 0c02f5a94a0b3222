package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/lint"
	"github.com/elseano/ccft-pymarkdown/pkg/spinner"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	formatText  = "text"
	formatTable = "table"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan-all [PATH]...",
		Short: "Lint Markdown files after removing custom-formatted tables",
		Long: `Cleans every Markdown file below PATH (default: the project root), runs the
markdown linter over the cleaned files and restores the originals, however
the linter run ends.`,
		RunE: runScan,
	}

	addCleanFlags(cmd)
	cmd.Flags().StringVar(&flagFormat, "format", formatText, "How linter results are shown (text, table)")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) (err error) {
	if flagFormat != formatText && flagFormat != formatTable {
		return fmt.Errorf("%w: unknown format '%s' (expected text or table)", ErrorArg, flagFormat)
	}

	p, err := loadProject(cmd, args)
	if err != nil {
		return err
	}

	logger := util.Logger.With().Str("session", uuid.NewString()).Logger()

	cleaner, err := p.cleaner(false, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	paths := p.paths(args)
	out := cmd.OutOrStdout()

	if err := offerRestore(ctx, cmd, cleaner, paths); err != nil {
		return err
	}

	session, err := cleaner.Begin(ctx, paths...)
	if err != nil {
		return err
	}

	session.RestoreOnExit()

	defer func() {
		if cerr := session.Close(context.Background()); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	cleaned := session.Cleaned()
	if len(cleaned) == 0 {
		logger.Warn().Msg("No Markdown files to scan")
		return nil
	}

	logger.Info().Msgf("Scanning %d Markdown file(s)", len(cleaned))

	runner := &lint.Runner{
		Command: p.Config.LinterCommand(),
		Dir:     p.Root,
		TTY:     flagFormat == formatText && util.IsTerminal(out),
		Logger:  logger,
	}

	if flagFormat == formatText {
		_, err = runner.Run(ctx, cleaned.Paths(), out)
		return err
	}

	errOut := cmd.ErrOrStderr()
	progress := spinner.New(errOut, util.IsTerminal(errOut), flagQuiet > 0, util.Colors(errOut))
	progress.SetMessage(fmt.Sprintf("Linting %d Markdown file(s)", len(cleaned)))
	progress.Start()

	result, err := runner.Run(ctx, cleaned.Paths(), io.Discard)

	switch {
	case result == nil:
		progress.Error(errs.LogMessage(err))
		return err
	case result.Failed():
		progress.Error(fmt.Sprintf("%d problem(s)", len(result.Failures)+len(result.PragmaErrors)))
	default:
		progress.Success("no problems")
	}

	lint.Report(out, result, p.Root, util.IntMin(util.GetConsoleWidth(), 120), util.Colors(out))

	return err
}
