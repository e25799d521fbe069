package config

import "golang.org/x/text/language"

// Config is the docnav configuration file (version 1.x).
type Config struct {
	Version   string        `yaml:"version"`
	Generator GeneratorKind `yaml:"generator"`
	Docs      DocsConfig    `yaml:"docs"`
	Site      SiteConfig    `yaml:"site"`
	Theme     ThemeConfig   `yaml:"theme"`
	Nav       NavConfig     `yaml:"nav"`
	Legacy    *LegacyConfig `yaml:"legacy,omitempty"`
	Output    OutputConfig  `yaml:"output"`
	Logging   LoggingConfig `yaml:"logging"`
}

// DocsConfig locates the documentation tree and controls how pages are read.
type DocsConfig struct {
	Root       string    `yaml:"root"`
	Titles     TitleMode `yaml:"titles,omitempty"`      // filename|frontmatter|heading
	GitHistory *bool     `yaml:"git_history,omitempty"` // last-updated from git log (falls back to mtime)
	Collation  string    `yaml:"collation,omitempty"`   // BCP 47 tag ordering unnumbered entries, e.g. "zh"
}

// Language returns the collation language, or language.Und when unset or unparsable.
func (d DocsConfig) Language() language.Tag {
	if d.Collation == "" {
		return language.Und
	}
	tag, err := language.Parse(d.Collation)
	if err != nil {
		return language.Und
	}
	return tag
}

// SiteConfig holds top-level site generator settings.
type SiteConfig struct {
	Base        string `yaml:"base"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	LastUpdated *bool  `yaml:"last_updated,omitempty"`
	CleanURLs   *bool  `yaml:"clean_urls,omitempty"`
}

// ThemeConfig holds the static part of the theme configuration.
type ThemeConfig struct {
	Logo        string          `yaml:"logo,omitempty"`
	Outline     string          `yaml:"outline,omitempty"`
	SocialLinks []SocialLink    `yaml:"social_links,omitempty"`
	Search      SearchConfig    `yaml:"search,omitempty"`
	Footer      *FooterConfig   `yaml:"footer,omitempty"`
	EditLink    *EditLinkConfig `yaml:"edit_link,omitempty"`
}

type SocialLink struct {
	Icon string `yaml:"icon"`
	Link string `yaml:"link"`
}

type SearchConfig struct {
	Provider string `yaml:"provider,omitempty"`
}

type FooterConfig struct {
	Message   string `yaml:"message,omitempty"`
	Copyright string `yaml:"copyright,omitempty"`
}

// EditLinkConfig points pages at their source; Pattern must contain ":path".
type EditLinkConfig struct {
	Pattern string `yaml:"pattern"`
	Text    string `yaml:"text,omitempty"`
}

// NavConfig groups top-level categories into nav bar dropdowns.
type NavConfig struct {
	Groups    []NavGroup `yaml:"groups,omitempty"`
	Fallback  string     `yaml:"fallback,omitempty"`   // group receiving unlisted categories
	OmitEmpty bool       `yaml:"omit_empty,omitempty"` // drop groups without items
}

// NavGroup is one nav bar dropdown and the category directories it collects.
type NavGroup struct {
	Text    string   `yaml:"text"`
	Members []string `yaml:"members"`
}

// LegacyConfig holds the static tables used by the vuepress generation.
type LegacyConfig struct {
	Head    []HeadTag           `yaml:"head,omitempty"`
	Plugins []PluginConfig      `yaml:"plugins,omitempty"`
	Nav     []LegacyNavItem     `yaml:"nav,omitempty"`
	Sidebar map[string][]string `yaml:"sidebar,omitempty"` // prefix -> child pages; derived from the tree when empty
}

// HeadTag is a single <head> element, e.g. {tag: link, attrs: {rel: icon, href: /logo.jpg}}.
type HeadTag struct {
	Tag   string            `yaml:"tag"`
	Attrs map[string]string `yaml:"attrs,omitempty"`
}

type PluginConfig struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options,omitempty"`
}

type LegacyNavItem struct {
	Text  string          `yaml:"text"`
	Link  string          `yaml:"link,omitempty"`
	Items []LegacyNavItem `yaml:"items,omitempty"`
}

// OutputConfig controls where generated files are written.
type OutputConfig struct {
	Path     string       `yaml:"path"`
	Format   OutputFormat `yaml:"format,omitempty"`
	Pages    string       `yaml:"pages,omitempty"`     // optional page index (JSON)
	HeadHTML string       `yaml:"head_html,omitempty"` // optional rendered <head> fragment
}

type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// Enabled reports the value of an optional boolean, treating nil as false.
func Enabled(b *bool) bool {
	return b != nil && *b
}

func boolPtr(b bool) *bool { return &b }
