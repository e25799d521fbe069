package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDocsRoot(t *testing.T) {
	cfg := Default()
	cfg.Output.Pages = filepath.Join("docs", "public", "pages.json")
	cfg.Output.HeadHTML = filepath.Join("build", "head.html")

	cfg.WithDocsRoot(filepath.Join("site", "notes"))

	assert.Equal(t, filepath.Join("site", "notes"), cfg.Docs.Root)
	assert.Equal(t, filepath.Join("site", "notes", ".vitepress", "docnav.json"), cfg.Output.Path)
	assert.Equal(t, filepath.Join("site", "notes", "public", "pages.json"), cfg.Output.Pages)
	assert.Equal(t, filepath.Join("build", "head.html"), cfg.Output.HeadHTML, "outside the docs root")
}

func TestWithDocsRoot_Empty(t *testing.T) {
	cfg := Default()
	cfg.WithDocsRoot("")
	assert.Equal(t, "docs", cfg.Docs.Root)
}
