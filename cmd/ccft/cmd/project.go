package cmd

import (
	"os"
	"path/filepath"

	"github.com/elseano/ccft-pymarkdown/pkg/ccft"
	"github.com/elseano/ccft-pymarkdown/pkg/config"
	"github.com/elseano/ccft-pymarkdown/pkg/discover"
	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/tables"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type project struct {
	Root   string
	Config *config.Config
}

// loadProject locates the project root and its settings, then applies any
// flags the user set explicitly. Without a project root, explicit paths are
// still usable relative to the working directory.
func loadProject(cmd *cobra.Command, args []string) (*project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := discover.ProjectRoot(cwd)
	if err != nil {
		if len(args) == 0 {
			return nil, err
		}

		util.Debugf("%s, using '%s'", errs.LogMessage(err), cwd)
		root = cwd
	}

	var cfg *config.Config
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig, true)
	} else {
		cfg, err = config.LoadProject(root)
	}

	if err != nil {
		return nil, err
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	util.Debugf("Project root is '%s'", root)

	return &project{Root: root, Config: cfg}, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("skip-errors") {
		cfg.SkipErrors = flagSkipErrors
	}

	if flags.Changed("exclusion") {
		method, err := discover.ParseExclusionMethod(flagExclusion)
		if err != nil {
			return err
		}
		cfg.Exclusion = method
	}

	if flags.Changed("mode") {
		if _, err := tables.ParseMode(flagMode); err != nil {
			return err
		}
		cfg.Mode = flagMode
	}

	return nil
}

func (p *project) paths(args []string) []string {
	if len(args) == 0 {
		return []string{p.Root}
	}

	return args
}

func (p *project) cleaner(dryRun bool, logger zerolog.Logger) (*ccft.Cleaner, error) {
	opts, err := p.Config.Options(dryRun)
	if err != nil {
		return nil, err
	}

	return ccft.NewCleaner(opts, logger), nil
}

func (p *project) display(path string) string {
	if rel, err := filepath.Rel(p.Root, path); err == nil && filepath.IsLocal(rel) {
		return rel
	}

	return path
}
