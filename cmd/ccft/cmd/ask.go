package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/elseano/ccft-pymarkdown/pkg/ccft"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// offerRestore asks whether backups left behind by an interrupted run should
// be restored before cleaning again. Only asked on an interactive terminal.
func offerRestore(ctx context.Context, cmd *cobra.Command, cleaner *ccft.Cleaner, paths []string) error {
	if !util.IsTerminal(os.Stdin) || !util.IsTerminal(cmd.OutOrStdout()) {
		return nil
	}

	opts := cleaner.Options()
	opts.DryRun = true
	opts.SkipErrors = true

	stale, err := ccft.NewCleaner(opts, zerolog.Nop()).Restore(ctx, paths...)
	if err != nil || len(stale) == 0 {
		return err
	}

	KillReadlineBell(os.Stderr)

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Found %d Markdown file(s) left cleaned by an earlier run. Restore them first", len(stale)),
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return nil
		}
		return err
	}

	restored, err := cleaner.Restore(ctx, stale.Paths()...)
	if err != nil {
		return err
	}

	util.Logger.Info().Msgf("Restored %d Markdown file(s)", len(restored))

	return nil
}
