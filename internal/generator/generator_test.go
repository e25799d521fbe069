package generator

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqr-hy/docs/internal/config"
	ferrors "github.com/lqr-hy/docs/internal/foundation/errors"
	"github.com/lqr-hy/docs/internal/metrics"
	"github.com/lqr-hy/docs/internal/navigation"
	"github.com/lqr-hy/docs/internal/pages"
	"github.com/lqr-hy/docs/internal/tree"
)

func writeDocs(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}
}

func testConfig(root string) *config.Config {
	cfg := &config.Config{Docs: config.DocsConfig{Root: root}}
	config.ApplyDefaults(cfg)
	return cfg
}

var sampleDocs = map[string]string{
	"Vue/01-intro.md":              "# Intro\n",
	"Vue/02-advanced/01-ssr.md":    "# SSR\n",
	"Git/01-basics.md":             "# Basics\n",
	"Rust/01-ownership.md":         "# Ownership\n",
	"assets.v2/logo.md":            "ignored",
	".vitepress/config.md":         "ignored",
	"Empty/notes.txt":              "ignored",
	"Javascript/10-closures.md":    "# Closures\n",
	"Javascript/2-scope.md":        "# Scope\n",
	"Javascript/README.md":         "# Readme\n",
	"Javascript/03-async/.keep.md": "ignored",
}

type countingRecorder struct {
	metrics.NoopRecorder
	outcomes   map[metrics.OutcomeLabel]int
	categories int
	pages      int
}

func (c *countingRecorder) IncGenerateOutcome(o metrics.OutcomeLabel) { c.outcomes[o]++ }
func (c *countingRecorder) SetCategories(n int)                       { c.categories = n }
func (c *countingRecorder) SetPages(n int)                            { c.pages = n }

func TestRun_VitePress(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, sampleDocs)
	cfg := testConfig(root)
	rec := &countingRecorder{outcomes: map[metrics.OutcomeLabel]int{}}

	g := New(cfg, WithRecorder(rec))
	report, err := g.Run(t.Context())
	require.NoError(t, err)
	assert.NotEmpty(t, report.BuildID)
	assert.Equal(t, "vitepress", report.Generator)
	assert.Equal(t, 4, report.Categories)
	assert.Equal(t, 7, report.Pages)
	assert.Equal(t, []string{cfg.Output.Path}, report.Written)
	assert.Equal(t, 4, rec.categories)
	assert.Equal(t, 7, rec.pages)

	data, err := os.ReadFile(filepath.Join(root, ".vitepress", "docnav.json"))
	require.NoError(t, err)
	var doc struct {
		Base        string `json:"base"`
		ThemeConfig struct {
			Nav     []navigation.NavGroup `json:"nav"`
			Sidebar navigation.Sidebar    `json:"sidebar"`
		} `json:"themeConfig"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "/", doc.Base)

	groups := map[string][]navigation.NavItem{}
	for _, grp := range doc.ThemeConfig.Nav {
		groups[grp.Text] = grp.Items
	}
	require.Len(t, groups["框架"], 1)
	assert.Equal(t, navigation.NavItem{Text: "Vue", Link: "/Vue/01-intro", ActiveMatch: "/Vue/"}, groups["框架"][0])
	require.Len(t, groups["基础"], 1)
	assert.Equal(t, "/Javascript/2-scope", groups["基础"][0].Link)
	require.Len(t, groups[config.DefaultFallbackGroup], 1)
	assert.Equal(t, "Rust", groups[config.DefaultFallbackGroup][0].Text)

	js := doc.ThemeConfig.Sidebar["/Javascript/"]
	require.Len(t, js, 1)
	var texts []string
	for _, it := range js[0].Items {
		texts = append(texts, it.Text)
	}
	assert.Equal(t, []string{"scope", "03-async", "closures", "README"}, texts)

	// Second run over an unchanged tree leaves the file alone.
	report, err = g.Run(t.Context())
	require.NoError(t, err)
	assert.False(t, report.Changed())
	assert.Equal(t, []string{cfg.Output.Path}, report.Unchanged)
	assert.Equal(t, 1, rec.outcomes[metrics.OutcomeSuccess])
	assert.Equal(t, 1, rec.outcomes[metrics.OutcomeUnchanged])
}

func TestRun_VuePressWithExtraOutputs(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, sampleDocs)
	out := t.TempDir()

	cfg := &config.Config{
		Generator: config.GeneratorVuePress,
		Docs:      config.DocsConfig{Root: root},
		Legacy: &config.LegacyConfig{
			Head: []config.HeadTag{{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/logo.jpg"}}},
		},
		Output: config.OutputConfig{
			Path:     filepath.Join(out, "config.yaml"),
			Pages:    filepath.Join(out, "pages.json"),
			HeadHTML: filepath.Join(out, "head.html"),
		},
	}
	config.ApplyDefaults(cfg)
	require.Equal(t, config.FormatYAML, cfg.Output.Format)

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	report, err := New(cfg, WithHistory(fixedHistory(fixed))).Run(t.Context())
	require.NoError(t, err)
	assert.Len(t, report.Written, 3)

	head, err := os.ReadFile(cfg.Output.HeadHTML)
	require.NoError(t, err)
	assert.Equal(t, `<link href="/logo.jpg" rel="icon"/>`+"\n", string(head))

	data, err := os.ReadFile(cfg.Output.Pages)
	require.NoError(t, err)
	var idx pages.Index
	require.NoError(t, json.Unmarshal(data, &idx))
	require.Len(t, idx.Pages, 7)
	assert.Equal(t, pages.SourceGit, idx.Pages[0].LastUpdatedSource)
	assert.True(t, fixed.Equal(idx.Pages[0].LastUpdated))

	yml, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Contains(t, string(yml), "/Vue/:")
	assert.Contains(t, string(yml), "- 02-advanced/")
}

type fixedHistory time.Time

func (f fixedHistory) LastCommit(string) (time.Time, bool, error) {
	return time.Time(f), true, nil
}

func TestRun_NoCategories(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, map[string]string{"index.md": "# Home\n", "Empty/a.txt": "x"})

	_, err := New(testConfig(root)).Run(t.Context())
	require.ErrorIs(t, err, tree.ErrNoCategories)
	assert.Equal(t, ferrors.CategoryDocs, ferrors.GetCategory(err))
	assert.NoFileExists(t, filepath.Join(root, ".vitepress", "docnav.json"))
}

func TestRun_MissingRoot(t *testing.T) {
	_, err := New(testConfig(filepath.Join(t.TempDir(), "missing"))).Run(t.Context())
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryNotFound, ferrors.GetCategory(err))
}

func TestRun_Canceled(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, sampleDocs)
	rec := &countingRecorder{outcomes: map[metrics.OutcomeLabel]int{}}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := New(testConfig(root), WithRecorder(rec)).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, rec.outcomes[metrics.OutcomeCanceled])
}

func TestInvalidate_PicksUpNewPages(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, sampleDocs)
	g := New(testConfig(root))

	report, err := g.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 7, report.Pages)

	writeDocs(t, root, map[string]string{"Vue/03-router.md": "# Router\n"})
	report, err = g.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 7, report.Pages, "tree is cached until invalidated")

	g.Invalidate()
	report, err = g.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 8, report.Pages)
	assert.True(t, report.Changed())
}

func TestNavigation(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, sampleDocs)

	nav, err := New(testConfig(root)).Navigation(t.Context())
	require.NoError(t, err)
	sidebar, ok := nav.Sidebar.(navigation.Sidebar)
	require.True(t, ok)
	assert.Contains(t, sidebar, "/Git/")

	cfg := testConfig(root)
	cfg.Generator = config.GeneratorVuePress
	nav, err = New(cfg).Navigation(t.Context())
	require.NoError(t, err)
	legacy, ok := nav.Sidebar.(navigation.LegacySidebar)
	require.True(t, ok)
	assert.Equal(t, []string{"01-intro", "02-advanced/"}, legacy["/Vue/"])
}

func TestTree_HonorsCollation(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, map[string]string{"Zebra/01-a.md": "# A\n", "Ödla/01-b.md": "# B\n"})
	cfg := testConfig(root)
	cfg.Docs.Collation = "sv"

	categories, err := New(cfg).Tree(t.Context())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Zebra", categories[0].Text)
	assert.Equal(t, "Ödla", categories[1].Text)
}

func TestRun_BrokenGitDirFallsBackToModTime(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, map[string]string{"Vue/01-intro.md": "# Intro\n"})
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("not a gitdir pointer\n"), 0o600))

	cfg := testConfig(root)
	cfg.Output.Pages = filepath.Join(t.TempDir(), "pages.json")

	report, err := New(cfg).Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Pages)
	assert.FileExists(t, cfg.Output.Pages)
}

func TestHistoryWarning(t *testing.T) {
	cause := errors.New("object not found")
	err := historyWarning("/srv/docs", cause)
	assert.Equal(t, ferrors.CategoryGit, err.Category())
	assert.Equal(t, ferrors.SeverityWarning, err.Severity())
	assert.ErrorIs(t, err, cause)
	root, _ := err.Context().GetString("root")
	assert.Equal(t, "/srv/docs", root)
}
