package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/lqr-hy/docs/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "site:\n  title: notes\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, GeneratorVitePress, cfg.Generator)
	assert.Equal(t, "docs", cfg.Docs.Root)
	assert.Equal(t, TitlesFilename, cfg.Docs.Titles)
	assert.True(t, Enabled(cfg.Docs.GitHistory))
	assert.Equal(t, "/", cfg.Site.Base)
	assert.Equal(t, "notes", cfg.Site.Title)
	assert.True(t, Enabled(cfg.Site.LastUpdated))
	assert.True(t, Enabled(cfg.Site.CleanURLs))
	assert.Equal(t, "deep", cfg.Theme.Outline)
	assert.Equal(t, "local", cfg.Theme.Search.Provider)
	assert.Equal(t, DefaultNavGroups(), cfg.Nav.Groups)
	assert.Equal(t, DefaultFallbackGroup, cfg.Nav.Fallback)
	assert.Equal(t, filepath.Join("docs", ".vitepress", "docnav.json"), cfg.Output.Path)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
}

func TestLoad_ExplicitFalseIsKept(t *testing.T) {
	path := writeConfig(t, "site:\n  last_updated: false\n  clean_urls: false\ndocs:\n  git_history: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, Enabled(cfg.Site.LastUpdated))
	assert.False(t, Enabled(cfg.Site.CleanURLs))
	assert.False(t, Enabled(cfg.Docs.GitHistory))
}

func TestLoad_VuePressOutputDefaults(t *testing.T) {
	path := writeConfig(t, "generator: VuePress\ndocs:\n  root: notes\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, GeneratorVuePress, cfg.Generator)
	assert.Equal(t, filepath.Join("notes", ".vuepress", "docnav.json"), cfg.Output.Path)
}

func TestLoad_FormatFromExtension(t *testing.T) {
	path := writeConfig(t, "output:\n  path: site/nav.yml\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCNAV_TITLE", "from-env")
	path := writeConfig(t, "site:\n  title: ${DOCNAV_TITLE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Site.Title)
}

func TestLoad_DotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DOCNAV_KEEP", "process")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCNAV_KEEP=file\nDOCNAV_DESC=\"from dotenv\"\n"), 0o644))
	path := filepath.Join(dir, "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  title: ${DOCNAV_KEEP}\n  description: ${DOCNAV_DESC}\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("DOCNAV_DESC") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "process", cfg.Site.Title)
	assert.Equal(t, "from dotenv", cfg.Site.Description)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeConfig(t, "sitee:\n  title: typo\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestParse_RejectsUnsupportedVersion(t *testing.T) {
	_, err := Parse([]byte("version: \"2.0\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported configuration version")
}

func TestParse_RejectsUnknownEnums(t *testing.T) {
	_, err := Parse([]byte("generator: hugo\ndocs:\n  titles: random\noutput:\n  format: toml\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator")
	assert.Contains(t, err.Error(), "docs.titles")
	assert.Contains(t, err.Error(), "output.format")
}

func TestParse_EmptyDocumentUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_WithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLogging_NewLogger(t *testing.T) {
	l := LoggingConfig{Level: "WARN", Format: "json"}
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel(string(l.Level)))

	logger := l.NewLogger(os.Stderr, false)
	assert.False(t, logger.Enabled(t.Context(), -4))
	assert.True(t, l.NewLogger(os.Stderr, true).Enabled(t.Context(), -4))
}

func TestParse_LowercasesHeadTags(t *testing.T) {
	cfg, err := Parse([]byte("legacy:\n  head:\n    - tag: \" META \"\n      attrs:\n        charset: utf-8\n"))
	require.NoError(t, err)
	require.Len(t, cfg.Legacy.Head, 1)
	assert.Equal(t, "meta", cfg.Legacy.Head[0].Tag)
}
