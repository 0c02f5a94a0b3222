// Package discover finds the Markdown files and backups a command should
// operate on.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/go-git/go-git/v5"
)

const MarkdownExt = ".md"

// ExclusionMethod controls which files are considered when a directory is
// expanded.
type ExclusionMethod int

const (
	// WithGit only includes files tracked in the git index.
	WithGit ExclusionMethod = iota
	// WithoutHidden walks the filesystem, skipping dot-files and dot-directories.
	WithoutHidden
	// IncludeAll walks the filesystem including hidden paths.
	IncludeAll
)

var exclusionNames = map[ExclusionMethod]string{
	WithGit:       "git",
	WithoutHidden: "hidden",
	IncludeAll:    "none",
}

func (m ExclusionMethod) String() string {
	if name, ok := exclusionNames[m]; ok {
		return name
	}

	return fmt.Sprintf("ExclusionMethod(%d)", int(m))
}

func ParseExclusionMethod(name string) (ExclusionMethod, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return WithGit, nil
	}

	for method, methodName := range exclusionNames {
		if methodName == name {
			return method, nil
		}
	}

	return WithGit, fmt.Errorf("%w: unknown exclusion method %q (expected git, hidden or none)", errs.ErrInvalidConfig, name)
}

func IsMarkdown(path string) bool {
	return filepath.Ext(path) == MarkdownExt
}

// MarkdownFiles lists the Markdown files below dir as sorted absolute paths.
func MarkdownFiles(dir string, method ExclusionMethod) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	if method == WithGit {
		files, err := gitMarkdownFiles(abs)
		if err == nil {
			return files, nil
		}

		if !errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, err
		}

		util.Logger.Warn().Str("path", abs).Msg("Not inside a git repository, falling back to excluding hidden files")
		method = WithoutHidden
	}

	return walk(abs, method == IncludeAll, IsMarkdown)
}

// BackupFiles lists every backup created with suffix below dir.
func BackupFiles(dir string, suffix string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	return walk(abs, true, func(path string) bool {
		return strings.HasSuffix(path, MarkdownExt+suffix)
	})
}

func gitMarkdownFiles(dir string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, err
	}

	root := wt.Filesystem.Root()
	files := []string{}

	for _, entry := range idx.Entries {
		path := filepath.Join(root, filepath.FromSlash(entry.Name))

		if !IsMarkdown(path) || !within(dir, path) {
			continue
		}

		if util.IsSymlink(path) {
			util.Debugf("Skipping '%s': symbolic link", path)
			continue
		}

		if !util.IsRegularFile(path) {
			util.Debugf("Skipping '%s': tracked but not present", path)
			continue
		}

		files = append(files, path)
	}

	sort.Strings(files)

	return files, nil
}

func walk(root string, includeHidden bool, match func(path string) bool) ([]string, error) {
	files := []string{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != root && skipEntry(d.Name(), includeHidden) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if match(path) {
				util.Debugf("Skipping '%s': symbolic link", path)
			}
			return nil
		}

		if d.Type().IsRegular() && match(path) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

func skipEntry(name string, includeHidden bool) bool {
	if name == ".git" {
		return true
	}

	return !includeHidden && strings.HasPrefix(name, ".")
}

func within(dir string, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
