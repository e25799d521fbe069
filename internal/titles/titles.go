// Package titles resolves the display text of markdown pages from their frontmatter or
// first heading.
package titles

import (
	"log/slog"
	"os"

	"github.com/lqr-hy/docs/internal/config"
	"github.com/lqr-hy/docs/internal/frontmatter"
	"github.com/lqr-hy/docs/internal/logfields"
	"github.com/lqr-hy/docs/internal/markdown"
)

// Resolver implements tree.Titler for a configured title mode.
type Resolver struct {
	mode config.TitleMode
}

// NewResolver returns a resolver, or nil for the filename mode where no file needs reading.
func NewResolver(mode config.TitleMode) *Resolver {
	if mode == config.TitlesFilename || mode == "" {
		return nil
	}
	return &Resolver{mode: mode}
}

// Title returns the frontmatter title of the page at path; in heading mode the first
// level-1 heading is tried next. Any failure falls back to the filename-derived text.
func (r *Resolver) Title(path, fallback string) string {
	if r == nil {
		return fallback
	}
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Failed to read page for title", logfields.Path(path), logfields.Error(err))
		return fallback
	}
	fields, body, err := frontmatter.Parse(content)
	if err != nil {
		slog.Warn("Invalid frontmatter, using file name", logfields.Path(path), logfields.Error(err))
		return fallback
	}
	if title := frontmatter.String(fields, "title"); title != "" {
		return title
	}
	if r.mode == config.TitlesHeading {
		if h := markdown.FirstHeading(body, 1); h != "" {
			return h
		}
	}
	return fallback
}
