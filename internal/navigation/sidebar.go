package navigation

import (
	"github.com/lqr-hy/docs/internal/tree"
)

// BuildSidebar returns one sidebar per category, keyed by the category route prefix. Each
// sidebar is a single expanded section named after the category.
func BuildSidebar(categories []*tree.Node) Sidebar {
	sidebar := make(Sidebar, len(categories))
	for _, c := range categories {
		sidebar[CategoryPrefix(c)] = []SidebarItem{{
			Text:      c.Text,
			Collapsed: expanded(),
			Items:     sidebarItems(c.Children, "/"+c.Link),
		}}
	}
	return sidebar
}

func sidebarItems(nodes []*tree.Node, prefix string) []SidebarItem {
	items := make([]SidebarItem, 0, len(nodes))
	for _, n := range nodes {
		p := prefix + "/" + n.Link
		if n.IsDir {
			items = append(items, SidebarItem{
				Text:      n.Text,
				Collapsed: expanded(),
				Items:     sidebarItems(n.Children, p),
			})
			continue
		}
		items = append(items, SidebarItem{Text: n.Text, Link: tree.TrimMarkdownExt(p)})
	}
	return items
}

// BuildLegacySidebar lists each category's direct entries relative to its prefix: pages
// by name without extension, sections as "<dir>/".
func BuildLegacySidebar(categories []*tree.Node) LegacySidebar {
	sidebar := make(LegacySidebar, len(categories))
	for _, c := range categories {
		entries := make([]string, 0, len(c.Children))
		for _, n := range c.Children {
			if n.IsDir {
				entries = append(entries, n.Link+"/")
				continue
			}
			entries = append(entries, tree.TrimMarkdownExt(n.Link))
		}
		sidebar[CategoryPrefix(c)] = entries
	}
	return sidebar
}
