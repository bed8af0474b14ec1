// Package gitrepo wraps the go-git operations sweep needs: opening the
// enclosing repository, enumerating staged files, and re-staging cleaned
// files. Hook management lives in hooks.go.
package gitrepo

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

// OpenRepository opens the git repository containing the current directory.
// It walks up parent directories, so it works from anywhere inside the
// working tree.
func OpenRepository() (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return repo, nil
}

// StagedFiles returns the worktree-relative paths of all files staged for
// commit. Deleted files are excluded since there is nothing left to clean.
// Returns an empty slice (not nil) if nothing is staged.
func StagedFiles(repo *git.Repository) ([]string, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}

	files := []string{}
	for path, st := range status {
		switch st.Staging {
		case git.Added, git.Modified, git.Renamed, git.Copied:
			files = append(files, path)
		}
	}

	// Status iteration order is a map walk; sort for stable output.
	sort.Strings(files)
	return files, nil
}

// AddPath stages the given worktree-relative path.
func AddPath(repo *git.Repository, path string) error {
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if _, err := worktree.Add(path); err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}

// WorktreeRoot returns the filesystem root of the repository's worktree.
func WorktreeRoot(repo *git.Repository) (string, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}
