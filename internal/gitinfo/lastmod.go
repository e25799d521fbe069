// Package gitinfo looks up page history in the git repository holding the docs.
package gitinfo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/lqr-hy/docs/internal/logfields"
)

var (
	// ErrNotRepository is returned by Open when no repository encloses the directory.
	ErrNotRepository = errors.New("not a git repository")
	ErrOutsideRepo   = errors.New("path outside repository worktree")
)

// History answers last-commit queries for files of a single worktree.
type History struct {
	repo *git.Repository
	root string

	mu    sync.Mutex
	cache map[string]entry
}

type entry struct {
	when  time.Time
	found bool
}

// Open finds the repository containing dir, searching parent directories.
func Open(dir string) (*History, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
		}
		return nil, fmt.Errorf("open repository %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotRepository, dir, err)
	}
	return &History{
		repo:  repo,
		root:  resolve(wt.Filesystem.Root()),
		cache: make(map[string]entry),
	}, nil
}

// Root returns the worktree root directory.
func (h *History) Root() string { return h.root }

// LastCommit returns the committer time of the newest commit touching path.
// found is false when the file is untracked or the repository has no commits yet.
func (h *History) LastCommit(path string) (time.Time, bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return time.Time{}, false, err
	}
	rel, err := filepath.Rel(h.root, resolve(abs))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return time.Time{}, false, fmt.Errorf("%w: %s", ErrOutsideRepo, path)
	}
	rel = filepath.ToSlash(rel)

	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.cache[rel]; ok {
		return e.when, e.found, nil
	}

	when, found, err := h.lookup(rel)
	if err != nil {
		return time.Time{}, false, err
	}
	h.cache[rel] = entry{when: when, found: found}
	return when, found, nil
}

func (h *History) lookup(rel string) (time.Time, bool, error) {
	iter, err := h.repo.Log(&git.LogOptions{FileName: &rel})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("git log %s: %w", rel, err)
	}
	defer iter.Close()

	c, err := iter.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			slog.Debug("No commit touches file", logfields.File(rel))
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("git log %s: %w", rel, err)
	}
	return c.Committer.When, true, nil
}

// Reset drops cached lookups, e.g. after new commits.
func (h *History) Reset() {
	h.mu.Lock()
	h.cache = make(map[string]entry)
	h.mu.Unlock()
}

func resolve(p string) string {
	if r, err := filepath.EvalSymlinks(p); err == nil {
		return r
	}
	return filepath.Clean(p)
}
