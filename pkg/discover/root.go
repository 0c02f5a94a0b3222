package discover

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/go-git/go-git/v5"
)

// readmeSearchDepth is how many parent directories are inspected for a
// README when start is not inside a git repository.
const readmeSearchDepth = 8

// ProjectRoot returns the top of the git worktree containing start, or
// failing that, the nearest parent directory holding a README.
func ProjectRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	if root, err := gitRoot(abs); err == nil {
		return root, nil
	} else if !errors.Is(err, git.ErrRepositoryNotExists) {
		util.Logger.Warn().Err(err).Str("path", abs).Msg("Could not open git repository")
	}

	return readmeRoot(abs)
}

func gitRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}

	return wt.Filesystem.Root(), nil
}

// readmeRoot looks at the parents of start (not start itself) for a file
// named README with any extension.
func readmeRoot(start string) (string, error) {
	dir := start

	for i := 0; i < readmeSearchDepth; i++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if strings.TrimSuffix(name, filepath.Ext(name)) == "README" {
				return dir, nil
			}
		}
	}

	return "", errs.ErrNoProjectRoot
}
