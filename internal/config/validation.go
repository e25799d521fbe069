package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"

	ferrors "github.com/lqr-hy/docs/internal/foundation/errors"
)

// headElements are the elements a site generator accepts inside <head>.
var headElements = map[atom.Atom]bool{
	atom.Link:     true,
	atom.Meta:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Base:     true,
	atom.Title:    true,
	atom.Noscript: true,
}

// IsHeadElement reports whether tag names an HTML element allowed inside <head>.
func IsHeadElement(tag string) bool {
	return headElements[atom.Lookup([]byte(strings.ToLower(tag)))]
}

// Validate checks a defaulted configuration and reports every problem found.
func Validate(cfg *Config) error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if !strings.HasPrefix(cfg.Site.Base, "/") || !strings.HasSuffix(cfg.Site.Base, "/") {
		add("site.base must start and end with '/': %q", cfg.Site.Base)
	}
	if cfg.Theme.EditLink != nil && !strings.Contains(cfg.Theme.EditLink.Pattern, ":path") {
		add("theme.edit_link.pattern must contain ':path': %q", cfg.Theme.EditLink.Pattern)
	}
	for i, l := range cfg.Theme.SocialLinks {
		if l.Icon == "" || l.Link == "" {
			add("theme.social_links[%d]: icon and link are required", i)
		}
	}

	if cfg.Docs.Collation != "" {
		if _, err := language.Parse(cfg.Docs.Collation); err != nil {
			add("docs.collation: %q is not a language tag: %v", cfg.Docs.Collation, err)
		}
	}

	groupNames := make(map[string]bool, len(cfg.Nav.Groups))
	memberOf := make(map[string]string)
	for i, g := range cfg.Nav.Groups {
		if strings.TrimSpace(g.Text) == "" {
			add("nav.groups[%d]: text is required", i)
			continue
		}
		if groupNames[g.Text] {
			add("nav.groups: duplicate group %q", g.Text)
		}
		groupNames[g.Text] = true
		for _, m := range g.Members {
			if prev, ok := memberOf[m]; ok {
				add("nav.groups: category %q listed in both %q and %q", m, prev, g.Text)
				continue
			}
			memberOf[m] = g.Text
		}
	}

	if cfg.Legacy != nil {
		for i, h := range cfg.Legacy.Head {
			if !IsHeadElement(h.Tag) {
				add("legacy.head[%d]: %q is not a <head> element", i, h.Tag)
			}
		}
		for i, p := range cfg.Legacy.Plugins {
			if p.Name == "" {
				add("legacy.plugins[%d]: name is required", i)
			}
		}
		for prefix := range cfg.Legacy.Sidebar {
			if !strings.HasPrefix(prefix, "/") || !strings.HasSuffix(prefix, "/") {
				add("legacy.sidebar: key %q must start and end with '/'", prefix)
			}
		}
	}

	if cfg.Output.Pages != "" && cfg.Output.Pages == cfg.Output.Path {
		add("output.pages must differ from output.path")
	}
	if cfg.Output.HeadHTML != "" && cfg.Output.HeadHTML == cfg.Output.Path {
		add("output.head_html must differ from output.path")
	}

	if len(problems) == 0 {
		return nil
	}
	return ferrors.WrapError(errors.Join(problems...), ferrors.CategoryConfig, "configuration invalid").
		Fatal().
		WithContext("problems", len(problems)).
		Build()
}
