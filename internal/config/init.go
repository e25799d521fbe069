package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "github.com/lqr-hy/docs/internal/foundation/errors"
)

// Example returns the configuration of the published notes site.
func Example() *Config {
	return &Config{
		Version:   "1.0",
		Generator: GeneratorVitePress,
		Docs: DocsConfig{
			Root:   "docs",
			Titles: TitlesFilename,
		},
		Site: SiteConfig{
			Base:        "/docs/",
			Title:       "my-note",
			Description: "lqr 的笔记",
			LastUpdated: boolPtr(true),
			CleanURLs:   boolPtr(true),
		},
		Theme: ThemeConfig{
			Outline:     "deep",
			SocialLinks: []SocialLink{{Icon: "github", Link: "https://github.com/lqr-hy/docs"}},
			Search:      SearchConfig{Provider: "local"},
			Footer: &FooterConfig{
				Message:   "Released under the MIT License.",
				Copyright: "LQR",
			},
			EditLink: &EditLinkConfig{
				Pattern: "https://github.com/lqr-hy/docs/tree/main/docs/:path",
				Text:    "Edit this page on GitHub",
			},
		},
		Nav: NavConfig{
			Groups:   DefaultNavGroups(),
			Fallback: DefaultFallbackGroup,
		},
		Legacy: &LegacyConfig{
			Head: []HeadTag{
				{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/docs/assets/logo.jpg"}},
				{Tag: "link", Attrs: map[string]string{"rel": "manifest", "href": "/docs/manifest.json"}},
				{Tag: "meta", Attrs: map[string]string{"name": "theme-color", "content": "#3eaf7c"}},
				{Tag: "meta", Attrs: map[string]string{"name": "apple-mobile-web-app-capable", "content": "yes"}},
			},
			Plugins: []PluginConfig{{Name: "@vuepress/last-updated"}},
		},
		Output: OutputConfig{
			Path:   "docs/.vitepress/docnav.json",
			Format: FormatJSON,
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Init writes the example configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.NewError(ferrors.CategoryValidation,
			fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).Build()
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
