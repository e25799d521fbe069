// Package generator runs a full generation: scan the docs tree, derive navigation, index
// pages and write the site configuration files.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/lqr-hy/docs/internal/config"
	ferrors "github.com/lqr-hy/docs/internal/foundation/errors"
	"github.com/lqr-hy/docs/internal/gitinfo"
	"github.com/lqr-hy/docs/internal/logfields"
	"github.com/lqr-hy/docs/internal/metrics"
	"github.com/lqr-hy/docs/internal/navigation"
	"github.com/lqr-hy/docs/internal/pages"
	"github.com/lqr-hy/docs/internal/site"
	"github.com/lqr-hy/docs/internal/titles"
	"github.com/lqr-hy/docs/internal/tree"
)

// Report summarizes one generation run.
type Report struct {
	BuildID    string        `json:"buildId"`
	Generator  string        `json:"generator"`
	Duration   time.Duration `json:"duration"`
	Categories int           `json:"categories"`
	Pages      int           `json:"pages"`
	Written    []string      `json:"written"`
	Unchanged  []string      `json:"unchanged"`
}

// Changed reports whether any output file was rewritten.
func (r *Report) Changed() bool { return len(r.Written) > 0 }

// Navigation is the derived nav bar and sidebar for the configured generator.
type Navigation struct {
	Nav     any `json:"nav"`
	Sidebar any `json:"sidebar"`
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder (default: metrics.NoopRecorder).
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithHistory overrides the last-updated source used for the page index.
func WithHistory(h pages.LastModifier) Option {
	return func(g *Generator) {
		g.history = h
		g.historyLoaded = true
	}
}

// Generator owns the scanner and its cached tree. Runs are serialized.
type Generator struct {
	cfg      *config.Config
	scanner  *tree.Scanner
	recorder metrics.Recorder

	mu            sync.Mutex
	history       pages.LastModifier
	historyLoaded bool
}

// New creates a generator for a defaulted and validated configuration.
func New(cfg *config.Config, opts ...Option) *Generator {
	var scanOpts []tree.Option
	if r := titles.NewResolver(cfg.Docs.Titles); r != nil {
		scanOpts = append(scanOpts, tree.WithTitler(r))
	}
	if tag := cfg.Docs.Language(); tag != language.Und {
		scanOpts = append(scanOpts, tree.WithLanguage(tag))
	}
	g := &Generator{
		cfg:      cfg,
		scanner:  tree.NewScanner(cfg.Docs.Root, scanOpts...),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Invalidate drops the cached tree and git lookups; the next run rescans the docs root.
func (g *Generator) Invalidate() {
	g.scanner.Invalidate()
	g.mu.Lock()
	defer g.mu.Unlock()
	if r, ok := g.history.(interface{ Reset() }); ok {
		r.Reset()
	}
}

// Tree returns the (cached) category tree.
func (g *Generator) Tree(ctx context.Context) ([]*tree.Node, error) {
	start := time.Now()
	categories, err := g.scanner.Tree(ctx)
	g.recorder.ObserveScanDuration(time.Since(start))
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ferrors.WrapError(tree.ErrNoCategories, ferrors.CategoryDocs, "nothing to generate").
			WithContext("root", g.scanner.Root()).Build()
	}
	return categories, nil
}

// Navigation derives nav and sidebar without writing anything.
func (g *Generator) Navigation(ctx context.Context) (*Navigation, error) {
	categories, err := g.Tree(ctx)
	if err != nil {
		return nil, err
	}
	if g.cfg.Generator == config.GeneratorVuePress {
		doc := site.NewVuePressConfig(g.cfg, categories)
		return &Navigation{Nav: doc.ThemeConfig.Nav, Sidebar: doc.ThemeConfig.Sidebar}, nil
	}
	return &Navigation{
		Nav:     navigation.BuildNav(categories, g.cfg.Nav),
		Sidebar: navigation.BuildSidebar(categories),
	}, nil
}

// Run performs a full generation and writes every configured output.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	start := time.Now()
	report := &Report{
		BuildID:   uuid.NewString(),
		Generator: string(g.cfg.Generator),
		Written:   []string{},
		Unchanged: []string{},
	}
	log := slog.With(logfields.BuildID(report.BuildID), logfields.Generator(report.Generator))

	err := g.run(ctx, log, report)
	report.Duration = time.Since(start)
	g.recorder.ObserveGenerateDuration(report.Duration)

	switch {
	case err == nil && !report.Changed():
		g.recorder.IncGenerateOutcome(metrics.OutcomeUnchanged)
	case err == nil:
		g.recorder.IncGenerateOutcome(metrics.OutcomeSuccess)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		g.recorder.IncGenerateOutcome(metrics.OutcomeCanceled)
		return report, err
	default:
		g.recorder.IncGenerateOutcome(metrics.OutcomeFailed)
		log.Error("Generation failed", logfields.Error(err))
		return report, err
	}

	log.Info("Generation complete",
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000),
		slog.Int("categories", report.Categories),
		slog.Int("pages", report.Pages),
		slog.Int("written", len(report.Written)),
		slog.Int("unchanged", len(report.Unchanged)))
	return report, nil
}

func (g *Generator) run(ctx context.Context, log *slog.Logger, report *Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	categories, err := g.Tree(ctx)
	if err != nil {
		return err
	}
	report.Categories = len(categories)
	report.Pages = len(tree.Pages(categories))
	g.recorder.SetCategories(report.Categories)
	g.recorder.SetPages(report.Pages)
	log.Debug("Docs tree ready", logfields.Stage("scan"), logfields.Count(report.Categories))

	if err := ctx.Err(); err != nil {
		return err
	}

	var doc any
	switch g.cfg.Generator {
	case config.GeneratorVuePress:
		doc = site.NewVuePressConfig(g.cfg, categories)
	default:
		doc = site.NewVitePressConfig(g.cfg,
			navigation.BuildNav(categories, g.cfg.Nav),
			navigation.BuildSidebar(categories))
	}
	if err := g.write(report, g.cfg.Output.Path, func() (bool, error) {
		return site.Write(g.cfg.Output.Path, doc, g.cfg.Output.Format)
	}); err != nil {
		return err
	}

	if p := g.cfg.Output.HeadHTML; p != "" {
		var tags []config.HeadTag
		if g.cfg.Legacy != nil {
			tags = g.cfg.Legacy.Head
		}
		fragment, err := site.RenderHead(tags)
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryGenerate, "render head tags").Build()
		}
		if err := g.write(report, p, func() (bool, error) { return site.WriteFile(p, fragment) }); err != nil {
			return err
		}
	}

	if p := g.cfg.Output.Pages; p != "" {
		idx, err := pages.NewIndexer(g.lastModifier(log)).Build(categories)
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryGenerate, "index pages").Build()
		}
		if err := g.write(report, p, func() (bool, error) { return site.Write(p, idx, config.FormatJSON) }); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) write(report *Report, path string, fn func() (bool, error)) error {
	written, err := fn()
	if err != nil {
		if errors.Is(err, site.ErrEncode) {
			return ferrors.WrapError(err, ferrors.CategoryGenerate, "encode output").WithContext("path", path).Build()
		}
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write output").WithContext("path", path).Build()
	}
	if written {
		report.Written = append(report.Written, path)
		slog.Debug("Wrote output", logfields.Path(path))
	} else {
		report.Unchanged = append(report.Unchanged, path)
	}
	return nil
}

// lastModifier opens the git history once. Must be called with g.mu held.
func (g *Generator) lastModifier(log *slog.Logger) pages.LastModifier {
	if g.historyLoaded {
		return g.history
	}
	g.historyLoaded = true
	if !config.Enabled(g.cfg.Docs.GitHistory) {
		return nil
	}
	h, err := gitinfo.Open(g.cfg.Docs.Root)
	if err != nil {
		if errors.Is(err, gitinfo.ErrNotRepository) {
			log.Debug("Docs are not in a git repository; using modification times", logfields.Root(g.cfg.Docs.Root))
		} else {
			log.Warn("Failed to open git repository; using modification times", logfields.Error(historyWarning(g.cfg.Docs.Root, err)))
		}
		return nil
	}
	g.history = h
	return h
}

// historyWarning classifies a git failure that degrades last-updated times to mtimes.
func historyWarning(root string, err error) *ferrors.ClassifiedError {
	return ferrors.WrapError(err, ferrors.CategoryGit, "open git history").
		WithContext("root", root).Warning().Build()
}
