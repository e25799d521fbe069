// Package site assembles the generated site-generator configuration documents and writes them.
package site

import (
	"github.com/lqr-hy/docs/internal/config"
	"github.com/lqr-hy/docs/internal/navigation"
)

// VitePressConfig is the document imported by .vitepress/config.
type VitePressConfig struct {
	Base        string         `json:"base" yaml:"base"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	LastUpdated bool           `json:"lastUpdated" yaml:"lastUpdated"`
	CleanURLs   bool           `json:"cleanUrls" yaml:"cleanUrls"`
	ThemeConfig VitePressTheme `json:"themeConfig" yaml:"themeConfig"`
}

type VitePressTheme struct {
	Logo        string                `json:"logo,omitempty" yaml:"logo,omitempty"`
	Outline     string                `json:"outline,omitempty" yaml:"outline,omitempty"`
	Nav         []navigation.NavGroup `json:"nav" yaml:"nav"`
	Sidebar     navigation.Sidebar    `json:"sidebar" yaml:"sidebar"`
	SocialLinks []SocialLink          `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
	Search      *Search               `json:"search,omitempty" yaml:"search,omitempty"`
	Footer      *Footer               `json:"footer,omitempty" yaml:"footer,omitempty"`
	EditLink    *EditLink             `json:"editLink,omitempty" yaml:"editLink,omitempty"`
}

type SocialLink struct {
	Icon string `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
}

type Search struct {
	Provider string `json:"provider" yaml:"provider"`
}

type Footer struct {
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
}

type EditLink struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
}

// NewVitePressConfig combines the static site settings with the derived nav and sidebar.
func NewVitePressConfig(cfg *config.Config, nav []navigation.NavGroup, sidebar navigation.Sidebar) *VitePressConfig {
	if nav == nil {
		nav = []navigation.NavGroup{}
	}
	if sidebar == nil {
		sidebar = navigation.Sidebar{}
	}
	doc := &VitePressConfig{
		Base:        cfg.Site.Base,
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		LastUpdated: config.Enabled(cfg.Site.LastUpdated),
		CleanURLs:   config.Enabled(cfg.Site.CleanURLs),
		ThemeConfig: VitePressTheme{
			Logo:    cfg.Theme.Logo,
			Outline: cfg.Theme.Outline,
			Nav:     nav,
			Sidebar: sidebar,
		},
	}

	theme := &doc.ThemeConfig
	for _, l := range cfg.Theme.SocialLinks {
		theme.SocialLinks = append(theme.SocialLinks, SocialLink{Icon: l.Icon, Link: l.Link})
	}
	if cfg.Theme.Search.Provider != "" {
		theme.Search = &Search{Provider: cfg.Theme.Search.Provider}
	}
	if f := cfg.Theme.Footer; f != nil {
		theme.Footer = &Footer{Message: f.Message, Copyright: f.Copyright}
	}
	if e := cfg.Theme.EditLink; e != nil {
		theme.EditLink = &EditLink{Pattern: e.Pattern, Text: e.Text}
	}
	return doc
}
