package site

import (
	"encoding/json"
	"maps"

	"github.com/lqr-hy/docs/internal/config"
	"github.com/lqr-hy/docs/internal/navigation"
	"github.com/lqr-hy/docs/internal/tree"
)

// VuePressConfig is the document imported by .vuepress/config.js.
type VuePressConfig struct {
	Base        string        `json:"base" yaml:"base"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Head        []HeadEntry   `json:"head,omitempty" yaml:"head,omitempty"`
	Plugins     []PluginEntry `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	ThemeConfig VuePressTheme `json:"themeConfig" yaml:"themeConfig"`
}

type VuePressTheme struct {
	Logo        string                   `json:"logo,omitempty" yaml:"logo,omitempty"`
	Nav         []navigation.NavItem     `json:"nav" yaml:"nav"`
	Sidebar     navigation.LegacySidebar `json:"sidebar" yaml:"sidebar"`
	LastUpdated string                   `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
}

// HeadEntry encodes as the [tag, attrs] tuple vuepress expects.
type HeadEntry struct {
	Tag   string
	Attrs map[string]string
}

func (h HeadEntry) tuple() []any {
	attrs := h.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	return []any{h.Tag, attrs}
}

func (h HeadEntry) MarshalJSON() ([]byte, error) { return json.Marshal(h.tuple()) }
func (h HeadEntry) MarshalYAML() (any, error)    { return h.tuple(), nil }

// PluginEntry encodes as a bare name, or as a [name, options] tuple when options are set.
type PluginEntry struct {
	Name    string
	Options map[string]any
}

func (p PluginEntry) value() any {
	if len(p.Options) == 0 {
		return p.Name
	}
	return []any{p.Name, p.Options}
}

func (p PluginEntry) MarshalJSON() ([]byte, error) { return json.Marshal(p.value()) }
func (p PluginEntry) MarshalYAML() (any, error)    { return p.value(), nil }

// NewVuePressConfig builds the legacy document. Static nav and sidebar tables from the
// configuration win; otherwise both are derived from the categories.
func NewVuePressConfig(cfg *config.Config, categories []*tree.Node) *VuePressConfig {
	doc := &VuePressConfig{
		Base:        cfg.Site.Base,
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		ThemeConfig: VuePressTheme{Logo: cfg.Theme.Logo},
	}
	if config.Enabled(cfg.Site.LastUpdated) {
		doc.ThemeConfig.LastUpdated = "Last Updated"
	}

	legacy := cfg.Legacy
	if legacy == nil {
		legacy = &config.LegacyConfig{}
	}
	for _, h := range legacy.Head {
		doc.Head = append(doc.Head, HeadEntry{Tag: h.Tag, Attrs: h.Attrs})
	}
	for _, p := range legacy.Plugins {
		doc.Plugins = append(doc.Plugins, PluginEntry{Name: p.Name, Options: p.Options})
	}

	if nav := navigation.FromLegacyConfig(legacy.Nav); len(nav) > 0 {
		doc.ThemeConfig.Nav = nav
	} else {
		doc.ThemeConfig.Nav = navigation.BuildLegacyNav(categories)
	}

	if len(legacy.Sidebar) > 0 {
		doc.ThemeConfig.Sidebar = navigation.LegacySidebar(maps.Clone(legacy.Sidebar))
	} else {
		doc.ThemeConfig.Sidebar = navigation.BuildLegacySidebar(categories)
	}
	return doc
}
