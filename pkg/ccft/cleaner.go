// Package ccft cleans custom-formatted tables out of Markdown files and puts
// the originals back afterwards.
//
// Cleaning a file copies it to a backup next to it (name.md.ccft-original)
// and rewrites the file in place. Restoring renames the backup back over the
// cleaned file. A file can only be cleaned while no backup exists for it.
package ccft

import (
	"github.com/elseano/ccft-pymarkdown/pkg/discover"
	"github.com/elseano/ccft-pymarkdown/pkg/tables"
	"github.com/rs/zerolog"
)

const DefaultSuffix = ".ccft-original"

type Options struct {
	// Suffix is appended to a Markdown file's name to form its backup name.
	Suffix string
	// Exclusion decides how directories are expanded into Markdown files.
	Exclusion discover.ExclusionMethod
	// SkipErrors logs per-file failures and carries on instead of aborting.
	SkipErrors bool
	// DryRun performs every check but leaves the filesystem untouched.
	DryRun bool
	// Transformer rewrites file content. Defaults to tables.Strip.
	Transformer tables.Transformer
}

type Cleaner struct {
	opts   Options
	logger zerolog.Logger
}

func NewCleaner(opts Options, logger zerolog.Logger) *Cleaner {
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}

	if opts.Transformer == nil {
		opts.Transformer = tables.NewStrip()
	}

	return &Cleaner{opts: opts, logger: logger}
}

func (c *Cleaner) Options() Options {
	return c.opts
}

// BackupPath returns where the original of a Markdown file is kept while it
// is cleaned.
func (c *Cleaner) BackupPath(markdownPath string) string {
	return markdownPath + c.opts.Suffix
}
