package cmd

import (
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore [PATH]...",
		Short: "Restore Markdown files cleaned by a previous clean",
		RunE:  runRestore,
	}

	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Check backups without changing anything")
	cmd.Flags().BoolVar(&flagSkipErrors, "skip-errors", false, "Log problems with individual files and carry on")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string) error {
	p, err := loadProject(cmd, args)
	if err != nil {
		return err
	}

	cleaner, err := p.cleaner(flagDryRun, util.Logger)
	if err != nil {
		return err
	}

	restored, err := cleaner.Restore(cmd.Context(), p.paths(args)...)
	if err != nil {
		return err
	}

	if flagDryRun {
		util.Logger.Info().Msgf("Would restore %d Markdown file(s)", len(restored))
	} else {
		util.Logger.Info().Msgf("Restored %d Markdown file(s)", len(restored))
	}

	return nil
}
