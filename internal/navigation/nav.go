package navigation

import (
	"log/slog"

	"github.com/lqr-hy/docs/internal/config"
	"github.com/lqr-hy/docs/internal/logfields"
	"github.com/lqr-hy/docs/internal/tree"
)

// BuildNav assigns every category to the first configured group listing it, or to the
// fallback group. Group order follows the configuration; the fallback group comes last
// unless it is also a configured group.
func BuildNav(categories []*tree.Node, cfg config.NavConfig) []NavGroup {
	groups := make([]NavGroup, 0, len(cfg.Groups)+1)
	memberOf := make(map[string]int)
	fallback := -1
	for i, g := range cfg.Groups {
		groups = append(groups, NavGroup{Text: g.Text, Items: []NavItem{}})
		for _, m := range g.Members {
			if _, ok := memberOf[m]; !ok {
				memberOf[m] = i
			}
		}
		if g.Text == cfg.Fallback {
			fallback = i
		}
	}
	if fallback < 0 {
		groups = append(groups, NavGroup{Text: cfg.Fallback, Items: []NavItem{}})
		fallback = len(groups) - 1
	}

	for _, c := range categories {
		idx, ok := memberOf[c.Link]
		if !ok {
			idx = fallback
		}
		item := NavItem{
			Text:        c.Text,
			Link:        CategoryLink(c),
			ActiveMatch: c.ActiveMatch,
		}
		groups[idx].Items = append(groups[idx].Items, item)
		slog.Debug("Nav item", logfields.Group(groups[idx].Text), logfields.Category(c.Text), logfields.Link(item.Link))
	}

	if !cfg.OmitEmpty {
		return groups
	}
	kept := groups[:0]
	for _, g := range groups {
		if len(g.Items) > 0 {
			kept = append(kept, g)
		}
	}
	return kept
}

// BuildLegacyNav derives a flat nav bar (Home plus one entry per category) for the
// vuepress generation when no static nav is configured.
func BuildLegacyNav(categories []*tree.Node) []NavItem {
	items := make([]NavItem, 0, len(categories)+1)
	items = append(items, NavItem{Text: "Home", Link: "/"})
	for _, c := range categories {
		items = append(items, NavItem{Text: c.Text, Link: CategoryPrefix(c)})
	}
	return items
}

// FromLegacyConfig converts static nav entries from the configuration.
func FromLegacyConfig(entries []config.LegacyNavItem) []NavItem {
	if len(entries) == 0 {
		return nil
	}
	items := make([]NavItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, NavItem{Text: e.Text, Link: e.Link, Items: FromLegacyConfig(e.Items)})
	}
	return items
}
