package config

import (
	"path/filepath"
	"strings"
)

// WithDocsRoot moves the docs root to root. Output paths located inside the previous root
// move along with it; paths elsewhere are left untouched.
func (c *Config) WithDocsRoot(root string) {
	if root == "" || root == c.Docs.Root {
		return
	}
	old := c.Docs.Root
	rebase := func(p string) string {
		if p == "" {
			return p
		}
		rel, err := filepath.Rel(old, p)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return p
		}
		return filepath.Join(root, rel)
	}
	c.Output.Path = rebase(c.Output.Path)
	c.Output.Pages = rebase(c.Output.Pages)
	c.Output.HeadHTML = rebase(c.Output.HeadHTML)
	c.Docs.Root = root
}
