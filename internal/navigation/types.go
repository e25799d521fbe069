// Package navigation derives the nav bar and sidebar structures from a scanned docs tree.
package navigation

import "encoding/json"

// NavItem is a nav bar entry. Leaf entries carry a link; dropdown entries carry items.
type NavItem struct {
	Text        string    `json:"text" yaml:"text"`
	Link        string    `json:"link,omitempty" yaml:"link,omitempty"`
	ActiveMatch string    `json:"activeMatch,omitempty" yaml:"activeMatch,omitempty"`
	Items       []NavItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// NavGroup is a nav bar dropdown. Items is always encoded, even when empty.
type NavGroup struct {
	Text  string    `json:"text" yaml:"text"`
	Items []NavItem `json:"items" yaml:"items"`
}

// SidebarItem is a sidebar entry: a collapsible section or a page link.
type SidebarItem struct {
	Text      string        `json:"text" yaml:"text"`
	Link      string        `json:"link,omitempty" yaml:"link,omitempty"`
	Collapsed *bool         `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     []SidebarItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// sidebarSection encodes a section; its items are always present, even when empty.
type sidebarSection struct {
	Text      string        `json:"text" yaml:"text"`
	Link      string        `json:"link,omitempty" yaml:"link,omitempty"`
	Collapsed *bool         `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     []SidebarItem `json:"items" yaml:"items"`
}

type sidebarPage SidebarItem

// IsSection reports whether the item groups other entries rather than linking a page.
func (it SidebarItem) IsSection() bool { return it.Link == "" }

func (it SidebarItem) encoded() any {
	if !it.IsSection() {
		return sidebarPage(it)
	}
	s := sidebarSection(it)
	if s.Items == nil {
		s.Items = []SidebarItem{}
	}
	return s
}

func (it SidebarItem) MarshalJSON() ([]byte, error) { return json.Marshal(it.encoded()) }

func (it SidebarItem) MarshalYAML() (any, error) { return it.encoded(), nil }

// Sidebar maps a route prefix ("/Vue/") to the sidebar shown under it.
type Sidebar map[string][]SidebarItem

// LegacySidebar maps a route prefix to the relative pages listed under it.
type LegacySidebar map[string][]string

func expanded() *bool {
	b := false
	return &b
}
