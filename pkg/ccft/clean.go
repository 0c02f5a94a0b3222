package ccft

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elseano/ccft-pymarkdown/pkg/discover"
	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
)

// Clean strips custom-formatted tables from every given Markdown file.
// Directories are expanded using the configured exclusion method. The
// returned set holds every file that was cleaned (or would have been, in a
// dry run), including when an error is returned.
func (c *Cleaner) Clean(ctx context.Context, paths ...string) (FileSet, error) {
	cleaned := FileSet{}
	err := c.clean(ctx, paths, cleaned)
	return cleaned, err
}

func (c *Cleaner) clean(ctx context.Context, paths []string, cleaned FileSet) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if cleaned.Has(abs) {
			c.logger.Debug().Msgf("Skipping file '%s': already processed", abs)
			continue
		}

		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			c.logger.Debug().Msgf("Recursing into directory '%s'", abs)

			files, err := discover.MarkdownFiles(abs, c.opts.Exclusion)
			if err != nil {
				return err
			}

			if err := c.clean(ctx, files, cleaned); err != nil {
				return err
			}
			continue
		}

		if err := c.checkClean(abs); err != nil {
			if !c.opts.SkipErrors {
				return err
			}

			c.logger.Error().Msgf("Skipping '%s': %s", abs, errs.LogMessage(err))
			continue
		}

		c.logger.Debug().Msgf("File '%s' passed pre-cleaning checks", abs)

		if !c.opts.DryRun {
			if err := c.cleanFile(abs); err != nil {
				c.logger.Error().Msgf("Error while cleaning '%s': %s", abs, errs.LogMessage(err))

				if !c.opts.SkipErrors {
					return err
				}
				continue
			}
		}

		cleaned.Add(abs)

		c.logger.Debug().Msgf("Successfully cleaned file: '%s'", abs)
	}

	return nil
}

func (c *Cleaner) checkClean(path string) error {
	c.logger.Debug().Msgf("Checking file '%s'", path)

	if !discover.IsMarkdown(path) {
		return &errs.FileError{Op: "clean", Path: path, Err: errs.ErrNotMarkdown}
	}

	if util.IsSymlink(path) {
		return &errs.FileError{Op: "clean", Path: path, Err: errs.ErrSymlink}
	}

	if !util.IsRegularFile(path) {
		return &errs.FileError{Op: "clean", Path: path, Err: errs.ErrNotFound}
	}

	if backup := c.BackupPath(path); util.FileExists(backup) {
		return &errs.FileError{Op: "clean", Path: backup, Err: errs.ErrBackupExists}
	}

	return nil
}

// cleanFile backs path up and rewrites it from the backup. Any failure after
// the backup was taken puts the original back.
func (c *Cleaner) cleanFile(path string) error {
	backup := c.BackupPath(path)

	if err := util.CopyFile(path, backup); err != nil {
		return &errs.FileError{Op: "back up", Path: path, Err: err}
	}

	if err := c.rewrite(backup, path); err != nil {
		if rerr := os.Rename(backup, path); rerr != nil {
			return fmt.Errorf("%w (original left at '%s': %v)", err, backup, rerr)
		}
		return err
	}

	return nil
}

func (c *Cleaner) rewrite(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &errs.FileError{Op: "read", Path: src, Err: err}
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return &errs.FileError{Op: "write", Path: dst, Err: err}
	}

	stats, err := c.opts.Transformer.Transform(in, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return &errs.FileError{Op: "write", Path: dst, Err: err}
	}

	c.logger.Debug().
		Int("lines", stats.Lines).
		Int("changed", stats.LinesChanged).
		Int("removed", stats.LinesRemoved).
		Int("replacements", stats.Replacements).
		Msgf("Rewrote '%s'", dst)

	return nil
}
