package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Workspace is a git-backed export directory. Every export lands as a
// commit, so earlier creative iterations stay recoverable.
type Workspace struct {
	dir  string
	repo *git.Repository
}

// OpenWorkspace opens the repository at dir, initializing one when the
// directory is not yet under version control.
func OpenWorkspace(dir string) (*Workspace, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	repo, err := git.PlainOpen(dir)
	if err == git.ErrRepositoryNotExists {
		repo, err = git.PlainInit(dir, false)
	}
	if err != nil {
		return nil, fmt.Errorf("opening export workspace: %w", err)
	}

	return &Workspace{dir: dir, repo: repo}, nil
}

// Dir returns the workspace root.
func (w *Workspace) Dir() string {
	return w.dir
}

// WriteAndCommit writes content to name inside the workspace and
// commits it. It returns the absolute path of the written file.
func (w *Workspace) WriteAndCommit(name string, content []byte, message string) (string, error) {
	path := filepath.Join(w.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating export subdir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}

	worktree, err := w.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("opening worktree: %w", err)
	}
	if _, err := worktree.Add(name); err != nil {
		return "", fmt.Errorf("staging %s: %w", name, err)
	}

	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "brandforge",
			Email: "exports@brandforge.local",
			When:  time.Now(),
		},
	})
	if err != nil && err != git.ErrEmptyCommit {
		return "", fmt.Errorf("committing %s: %w", name, err)
	}

	return path, nil
}
