package ccft

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/elseano/ccft-pymarkdown/pkg/discover"
	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
)

// Restore moves backups back over their cleaned Markdown files. Paths may
// name backups, Markdown files that have a backup, or directories to search
// for backups. The returned set holds the restored Markdown paths.
func (c *Cleaner) Restore(ctx context.Context, paths ...string) (FileSet, error) {
	restored := FileSet{}
	err := c.restore(ctx, paths, restored)
	return restored, err
}

func (c *Cleaner) restore(ctx context.Context, paths []string, restored FileSet) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			c.logger.Debug().Msgf("Recursing into directory '%s'", abs)

			backups, err := discover.BackupFiles(abs, c.opts.Suffix)
			if err != nil {
				return err
			}

			if err := c.restore(ctx, backups, restored); err != nil {
				return err
			}
			continue
		}

		if discover.IsMarkdown(abs) {
			abs = c.BackupPath(abs)
		}

		target := c.markdownPath(abs)
		if restored.Has(target) {
			c.logger.Debug().Msgf("Skipping file '%s': already processed", abs)
			continue
		}

		if err := c.checkRestore(abs); err != nil {
			if !c.opts.SkipErrors {
				return err
			}

			c.logger.Error().Msgf("Skipping '%s': %s", abs, errs.LogMessage(err))
			continue
		}

		c.logger.Debug().Msgf("File '%s' passed pre-restoring checks", abs)

		if util.FileExists(target) {
			c.logger.Debug().Msgf("Replacing cleaned file: '%s'", target)
		}

		if !c.opts.DryRun {
			if err := os.Rename(abs, target); err != nil {
				err = &errs.FileError{Op: "restore", Path: abs, Err: err}
				if !c.opts.SkipErrors {
					return err
				}

				c.logger.Error().Msgf("Error while restoring '%s': %s", abs, errs.LogMessage(err))
				continue
			}
		}

		restored.Add(target)

		c.logger.Debug().Msgf("Successfully restored file: '%s'", target)
	}

	return nil
}

func (c *Cleaner) markdownPath(backup string) string {
	return strings.TrimSuffix(backup, c.opts.Suffix)
}

func (c *Cleaner) checkRestore(path string) error {
	c.logger.Debug().Msgf("Checking file '%s'", path)

	if !strings.HasSuffix(path, discover.MarkdownExt+c.opts.Suffix) {
		return &errs.FileError{Op: "restore", Path: path, Err: errs.ErrNotBackup}
	}

	if !util.IsRegularFile(path) {
		return &errs.FileError{Op: "restore", Path: path, Err: errs.ErrNotFound}
	}

	return nil
}
