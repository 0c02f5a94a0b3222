package cmd

import (
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [PATH]...",
		Short: "Clean custom-formatted tables from Markdown files",
		Long: `Backs up every Markdown file below PATH (default: the project root) and
removes the custom table formatting from the working copy.`,
		RunE: runClean,
	}

	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Check files without changing anything")
	addCleanFlags(cmd)

	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	p, err := loadProject(cmd, args)
	if err != nil {
		return err
	}

	cleaner, err := p.cleaner(flagDryRun, util.Logger)
	if err != nil {
		return err
	}

	cleaned, err := cleaner.Clean(cmd.Context(), p.paths(args)...)
	if err != nil {
		return err
	}

	if flagDryRun {
		util.Logger.Info().Msgf("Would clean %d Markdown file(s)", len(cleaned))
	} else {
		util.Logger.Info().Msgf("Cleaned %d Markdown file(s)", len(cleaned))
	}

	return nil
}
