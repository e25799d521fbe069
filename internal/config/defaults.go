package config

import (
	"path/filepath"
	"strings"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config)
	Domain() string
}

// DefaultNavGroups is the category grouping used by the published notes site.
func DefaultNavGroups() []NavGroup {
	return []NavGroup{
		{Text: "基础", Members: []string{"Html-Css", "Javascript", "Typescript"}},
		{Text: "框架", Members: []string{"Vue", "React"}},
		{Text: "可视化", Members: []string{"Threejs", "WebGpu", "Webgl"}},
		{Text: "工程化", Members: []string{"Build-Tools", "Git"}},
	}
}

// DefaultFallbackGroup receives categories no group lists.
const DefaultFallbackGroup = "其他"

type generatorDefaults struct{}

func (generatorDefaults) Domain() string { return "generator" }

func (generatorDefaults) ApplyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1.0"
	}
	if cfg.Generator == "" {
		cfg.Generator = GeneratorVitePress
	}
}

type docsDefaults struct{}

func (docsDefaults) Domain() string { return "docs" }

func (docsDefaults) ApplyDefaults(cfg *Config) {
	if cfg.Docs.Root == "" {
		cfg.Docs.Root = "docs"
	}
	if cfg.Docs.Titles == "" {
		cfg.Docs.Titles = TitlesFilename
	}
	if cfg.Docs.GitHistory == nil {
		cfg.Docs.GitHistory = boolPtr(true)
	}
}

type siteDefaults struct{}

func (siteDefaults) Domain() string { return "site" }

func (siteDefaults) ApplyDefaults(cfg *Config) {
	if cfg.Site.Base == "" {
		cfg.Site.Base = "/"
	}
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Documentation"
	}
	if cfg.Site.LastUpdated == nil {
		cfg.Site.LastUpdated = boolPtr(true)
	}
	if cfg.Site.CleanURLs == nil {
		cfg.Site.CleanURLs = boolPtr(true)
	}
	if cfg.Theme.Outline == "" {
		cfg.Theme.Outline = "deep"
	}
	if cfg.Theme.Search.Provider == "" {
		cfg.Theme.Search.Provider = "local"
	}
}

type navDefaults struct{}

func (navDefaults) Domain() string { return "nav" }

func (navDefaults) ApplyDefaults(cfg *Config) {
	if len(cfg.Nav.Groups) == 0 {
		cfg.Nav.Groups = DefaultNavGroups()
	}
	if cfg.Nav.Fallback == "" {
		cfg.Nav.Fallback = DefaultFallbackGroup
	}
}

type outputDefaults struct{}

func (outputDefaults) Domain() string { return "output" }

func (outputDefaults) ApplyDefaults(cfg *Config) {
	if cfg.Output.Path == "" {
		dir := ".vitepress"
		if cfg.Generator == GeneratorVuePress {
			dir = ".vuepress"
		}
		cfg.Output.Path = filepath.Join(cfg.Docs.Root, dir, "docnav.json")
	}
	if cfg.Output.Format == "" {
		switch strings.ToLower(filepath.Ext(cfg.Output.Path)) {
		case ".yaml", ".yml":
			cfg.Output.Format = FormatYAML
		default:
			cfg.Output.Format = FormatJSON
		}
	}
}

type loggingDefaults struct{}

func (loggingDefaults) Domain() string { return "logging" }

func (loggingDefaults) ApplyDefaults(cfg *Config) {
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
}

// defaultAppliers run in order; output defaults depend on generator and docs.
var defaultAppliers = []DefaultApplier{
	generatorDefaults{},
	docsDefaults{},
	siteDefaults{},
	navDefaults{},
	outputDefaults{},
	loggingDefaults{},
}

// ApplyDefaults fills every unset field with its default.
func ApplyDefaults(cfg *Config) {
	for _, a := range defaultAppliers {
		a.ApplyDefaults(cfg)
	}
}
