// Package config loads the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/elseano/ccft-pymarkdown/pkg/ccft"
	"github.com/elseano/ccft-pymarkdown/pkg/discover"
	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/tables"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"gopkg.in/guregu/null.v4"
	"gopkg.in/yaml.v3"
)

const FileName = ".ccft-pymarkdown.yaml"

var DefaultLinter = []string{"pymarkdown", "--return-code-scheme", "minimal", "scan"}

// File mirrors the YAML settings file. Unset values stay invalid so that
// defaults and flags can tell them apart from explicit zero values.
type File struct {
	Suffix     null.String `yaml:"suffix"`
	Exclusion  null.String `yaml:"exclusion"`
	Mode       null.String `yaml:"mode"`
	SkipErrors null.Bool   `yaml:"skip_errors"`
	Linter     []string    `yaml:"linter"`
}

// Config is the resolved configuration.
type Config struct {
	Path       string
	Suffix     string
	Exclusion  discover.ExclusionMethod
	Mode       string
	SkipErrors bool
	Linter     []string
}

func Default() *Config {
	return &Config{
		Suffix:    ccft.DefaultSuffix,
		Exclusion: discover.WithGit,
		Mode:      tables.ModeStrip,
		Linter:    append([]string{}, DefaultLinter...),
	}
}

// Load reads the settings file at path. A missing file yields the defaults
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(util.ExpandHome(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			util.Debugf("No config file at %s, using defaults", path)
			return cfg, nil
		}
		return nil, &errs.FileError{Op: "load config", Path: path, Err: err}
	}

	var file File
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, &errs.FileError{Op: "load config", Path: path, Err: fmt.Errorf("%w: %v", errs.ErrInvalidConfig, err)}
	}

	cfg.Path = path
	if err := cfg.apply(file); err != nil {
		return nil, &errs.FileError{Op: "load config", Path: path, Err: err}
	}

	return cfg, nil
}

// LoadProject loads FileName from the project root.
func LoadProject(root string) (*Config, error) {
	return Load(filepath.Join(root, FileName), false)
}

func (c *Config) apply(file File) error {
	// An empty suffix decodes as unset, so the default stays in place.
	if file.Suffix.Valid {
		c.Suffix = file.Suffix.String
	}

	if file.Exclusion.Valid {
		method, err := discover.ParseExclusionMethod(file.Exclusion.String)
		if err != nil {
			return err
		}
		c.Exclusion = method
	}

	if file.Mode.Valid {
		if _, err := tables.ParseMode(file.Mode.String); err != nil {
			return err
		}
		c.Mode = file.Mode.String
	}

	if file.SkipErrors.Valid {
		c.SkipErrors = file.SkipErrors.Bool
	}

	if len(file.Linter) > 0 {
		c.Linter = file.Linter
	}

	return nil
}

// Options builds cleaner options from the configuration.
func (c *Config) Options(dryRun bool) (ccft.Options, error) {
	transformer, err := tables.ParseMode(c.Mode)
	if err != nil {
		return ccft.Options{}, err
	}

	return ccft.Options{
		Suffix:      c.Suffix,
		Exclusion:   c.Exclusion,
		SkipErrors:  c.SkipErrors,
		DryRun:      dryRun,
		Transformer: transformer,
	}, nil
}

// LinterCommand returns the linter invocation with environment variables
// expanded.
func (c *Config) LinterCommand() []string {
	return util.ExpandArgs(c.Linter)
}
