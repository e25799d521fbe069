package tree

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/language"

	ferrors "github.com/lqr-hy/docs/internal/foundation/errors"
	"github.com/lqr-hy/docs/internal/logfields"
)

// Titler overrides the display text of a page. fallback is the filename-derived text.
type Titler interface {
	Title(path, fallback string) string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithTitler resolves page text through t instead of the file name.
func WithTitler(t Titler) Option {
	return func(s *Scanner) { s.titler = t }
}

// WithLanguage sets the collation language for entries without a numeric prefix.
func WithLanguage(tag language.Tag) Option {
	return func(s *Scanner) { s.orderer = NewOrderer(tag) }
}

// Scanner reads a docs root into a tree of category nodes.
type Scanner struct {
	root    string
	titler  Titler
	orderer *Orderer

	mu     sync.Mutex
	cached []*Node
}

// NewScanner creates a scanner for the docs directory at root.
func NewScanner(root string, opts ...Option) *Scanner {
	s := &Scanner{root: root, orderer: NewOrderer(language.Und)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the docs root the scanner reads.
func (s *Scanner) Root() string { return s.root }

// Tree returns the memoized result of the first successful Scan.
func (s *Scanner) Tree(ctx context.Context) ([]*Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}
	nodes, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}
	s.cached = nodes
	return nodes, nil
}

// Invalidate drops the memoized tree so the next Tree call rescans.
func (s *Scanner) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// Scan reads the docs root and returns its categories: top-level directories holding at least
// one page or section. Loose files at the top level are not categories and are dropped.
func (s *Scanner) Scan(ctx context.Context) ([]*Node, error) {
	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve docs root").
			WithContext("root", s.root).Build()
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.NotFoundError("docs root not found").WithContext("root", absRoot).Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "stat docs root").
			WithContext("root", absRoot).Build()
	}
	if !info.IsDir() {
		return nil, ferrors.FileSystemError("docs root is not a directory").WithContext("root", absRoot).Build()
	}

	entries, err := s.readDir(ctx, absRoot, "")
	if err != nil {
		return nil, err
	}

	categories := make([]*Node, 0, len(entries))
	for _, n := range entries {
		if n.IsDir && n.HasChildren() {
			categories = append(categories, n)
			continue
		}
		slog.Debug("Skipping top-level entry", logfields.File(n.RelPath), slog.Bool("dir", n.IsDir))
	}
	slog.Debug("Docs tree scanned", logfields.Root(absRoot), logfields.Count(len(categories)))
	return categories, nil
}

func (s *Scanner) readDir(ctx context.Context, dir, rel string) ([]*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDir, dir, err)
	}

	byName := make(map[string]fs.DirEntry, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		byName[e.Name()] = e
		names = append(names, e.Name())
	}
	s.orderer.Sort(names)

	nodes := make([]*Node, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}
		entry := byName[name]
		full := filepath.Join(dir, name)
		relPath := path.Join(rel, name)

		switch {
		case entry.IsDir():
			if strings.Contains(name, ".") {
				slog.Debug("Skipping dotted directory", logfields.Path(relPath))
				continue
			}
			children, err := s.readDir(ctx, full, relPath)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &Node{
				Text:        name,
				Link:        name,
				ActiveMatch: "/" + name + "/",
				Children:    children,
				IsDir:       true,
				Path:        full,
				RelPath:     relPath,
			})
		case entry.Type().IsRegular():
			if !IsMarkdown(name) {
				continue
			}
			text := DisplayText(name)
			if s.titler != nil {
				text = s.titler.Title(full, text)
			}
			nodes = append(nodes, &Node{
				Text:    text,
				Link:    name,
				Path:    full,
				RelPath: relPath,
			})
		default:
			slog.Debug("Skipping special file", logfields.Path(relPath), slog.String("mode", entry.Type().String()))
		}
	}
	return nodes, nil
}
