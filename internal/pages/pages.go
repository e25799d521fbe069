// Package pages builds the page index: one entry per markdown page with its route, content
// fingerprint and last-updated information.
package pages

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/inful/mdfp"

	"github.com/lqr-hy/docs/internal/frontmatter"
	"github.com/lqr-hy/docs/internal/logfields"
	"github.com/lqr-hy/docs/internal/tree"
)

// Sources of the last-updated time.
const (
	SourceGit   = "git"
	SourceMtime = "mtime"
)

// Page is a single entry of the page index.
type Page struct {
	Route             string    `json:"route"`
	Source            string    `json:"source"`
	Title             string    `json:"title"`
	Category          string    `json:"category"`
	Fingerprint       string    `json:"fingerprint"`
	LastUpdated       time.Time `json:"lastUpdated"`
	LastUpdatedText   string    `json:"lastUpdatedText"`
	LastUpdatedSource string    `json:"lastUpdatedSource"`
}

// Index is the document written to output.pages.
type Index struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Pages       []Page    `json:"pages"`
}

// LastModifier reports the last commit touching a file.
type LastModifier interface {
	LastCommit(path string) (time.Time, bool, error)
}

// Indexer builds page indexes. A nil history means modification times are always used.
type Indexer struct {
	history LastModifier
	now     func() time.Time
}

// NewIndexer creates an indexer. history may be nil.
func NewIndexer(history LastModifier) *Indexer {
	return &Indexer{history: history, now: time.Now}
}

// Build indexes every page below categories in tree order.
func (ix *Indexer) Build(categories []*tree.Node) (*Index, error) {
	now := ix.now()
	idx := &Index{GeneratedAt: now.UTC(), Pages: []Page{}}

	err := tree.Walk(categories, func(n *tree.Node, parents []*tree.Node) error {
		if n.IsDir {
			return nil
		}
		page, err := ix.page(n, parents, now)
		if err != nil {
			return err
		}
		idx.Pages = append(idx.Pages, page)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

func (ix *Indexer) page(n *tree.Node, parents []*tree.Node, now time.Time) (Page, error) {
	content, err := os.ReadFile(n.Path)
	if err != nil {
		return Page{}, fmt.Errorf("read page %s: %w", n.RelPath, err)
	}

	p := Page{
		Route:       Route(n),
		Source:      n.RelPath,
		Title:       n.Text,
		Fingerprint: Fingerprint(content),
	}
	if len(parents) > 0 {
		p.Category = parents[0].Link
	}

	p.LastUpdated, p.LastUpdatedSource = ix.lastUpdated(n)
	p.LastUpdatedText = humanize.RelTime(p.LastUpdated, now, "ago", "from now")
	return p, nil
}

func (ix *Indexer) lastUpdated(n *tree.Node) (time.Time, string) {
	if ix.history != nil {
		when, found, err := ix.history.LastCommit(n.Path)
		switch {
		case err != nil:
			slog.Warn("Git history lookup failed; using modification time", logfields.File(n.RelPath), logfields.Error(err))
		case found:
			return when.UTC(), SourceGit
		}
	}
	info, err := os.Stat(n.Path)
	if err != nil {
		return time.Time{}, SourceMtime
	}
	return info.ModTime().UTC(), SourceMtime
}

// Route is the clean URL of a page node.
func Route(n *tree.Node) string {
	return "/" + tree.TrimMarkdownExt(n.RelPath)
}

// Fingerprint hashes the frontmatter and body of a markdown document. Content with an
// unterminated frontmatter block is hashed as body only.
func Fingerprint(content []byte) string {
	fm, body, had, err := frontmatter.Split(content)
	if err != nil || !had {
		return mdfp.CalculateFingerprintFromParts("", string(content))
	}
	raw := strings.TrimSuffix(string(bytes.ReplaceAll(fm, []byte("\r\n"), []byte("\n"))), "\n")
	return mdfp.CalculateFingerprintFromParts(raw, string(body))
}
