package cmd

import (
	"context"
	"fmt"

	"github.com/elseano/ccft-pymarkdown/pkg/config"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/spf13/cobra"
)

func Execute(ctx context.Context, version string, gitCommit string) error {
	rootCmd := NewRootCmd()
	rootCmd.Version = version + " (" + gitCommit + ")"

	return handleError(rootCmd.ErrOrStderr(), rootCmd.ExecuteContext(ctx))
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName + " <command>",
		Short: "Lint Markdown files after removing custom-formatted tables",
		Long: `ccft-pymarkdown temporarily strips the bullet-in-table-cell convention
(<br>* item) from Markdown files so that PyMarkdown can lint them, then puts
the original files back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			util.RedirectLogger(cmd.ErrOrStderr())
			util.SetVerbosity(flagVerbose, flagQuiet)

			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "Show debugging output")
	rootCmd.PersistentFlags().CountVarP(&flagQuiet, "quiet", "q", "Only show warnings and errors")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (defaults to "+config.FileName+" in the project root)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrorArg, err)
	})

	rootCmd.AddCommand(newCleanCmd(), newRestoreCmd(), newScanCmd(), newCheckCmd())

	return rootCmd
}

func addCleanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSkipErrors, "skip-errors", false, "Log problems with individual files and carry on")
	cmd.Flags().StringVar(&flagExclusion, "exclusion", "git", "How directories are searched for Markdown files (git, hidden, none)")
	cmd.Flags().StringVar(&flagMode, "mode", "strip", "How custom-formatted tables are cleaned (strip, remove)")
}
