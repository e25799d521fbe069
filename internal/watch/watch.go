// Package watch regenerates the site configuration when the docs tree changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "github.com/lqr-hy/docs/internal/foundation/errors"
	"github.com/lqr-hy/docs/internal/generator"
	"github.com/lqr-hy/docs/internal/logfields"
	"github.com/lqr-hy/docs/internal/metrics"
	"github.com/lqr-hy/docs/internal/tree"
)

// DefaultDebounce is the quiet period after the last change before regenerating.
const DefaultDebounce = 300 * time.Millisecond

// Rebuild triggers.
const (
	TriggerInitial = "initial"
	TriggerChange  = "fsnotify"
	TriggerRefresh = "refresh"
)

// Rebuilder regenerates outputs. *generator.Generator implements it.
type Rebuilder interface {
	Invalidate()
	Run(ctx context.Context) (*generator.Report, error)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithRefresh regenerates every interval even without changes.
func WithRefresh(interval time.Duration) Option {
	return func(w *Watcher) { w.refresh = interval }
}

// WithMetrics serves handler under /metrics on addr.
func WithMetrics(addr string, handler http.Handler) Option {
	return func(w *Watcher) {
		w.metricsAddr = addr
		w.metricsHandler = handler
	}
}

// WithRecorder counts rebuilds per trigger.
func WithRecorder(r metrics.Recorder) Option {
	return func(w *Watcher) {
		if r != nil {
			w.recorder = r
		}
	}
}

// WithIgnore excludes paths (typically the generated outputs) from triggering rebuilds.
func WithIgnore(paths ...string) Option {
	return func(w *Watcher) {
		for _, p := range paths {
			if p == "" {
				continue
			}
			if abs, err := filepath.Abs(p); err == nil {
				w.ignore[abs] = struct{}{}
			}
		}
	}
}

// Watcher watches a docs root and drives a Rebuilder. At most one rebuild runs at a time
// and at most one further request is kept pending.
type Watcher struct {
	root      string
	rebuilder Rebuilder
	recorder  metrics.Recorder
	debounce  time.Duration
	refresh   time.Duration
	ignore    map[string]struct{}

	metricsAddr    string
	metricsHandler http.Handler

	requests chan string

	mu        sync.Mutex
	timer     *time.Timer
	boundAddr string
}

// New creates a watcher for root.
func New(root string, rebuilder Rebuilder, opts ...Option) *Watcher {
	w := &Watcher{
		root:      root,
		rebuilder: rebuilder,
		recorder:  metrics.NoopRecorder{},
		debounce:  DefaultDebounce,
		ignore:    make(map[string]struct{}),
		requests:  make(chan string, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// MetricsAddr returns the address the metrics server listens on, once started.
func (w *Watcher) MetricsAddr() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.boundAddr
}

// Run generates once, then regenerates on changes until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	absRoot, err := filepath.Abs(w.root)
	if err != nil {
		return startError(err, w.root, "resolve docs root")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return startError(err, absRoot, "create file watcher")
	}
	defer func() { _ = fsw.Close() }()
	if err := addDirsRecursive(fsw, absRoot); err != nil {
		return startError(err, absRoot, "watch docs root")
	}

	var srv *http.Server
	if w.metricsAddr != "" {
		if srv, err = w.startMetricsServer(); err != nil {
			return startError(err, absRoot, "start metrics server")
		}
	}

	var sched *scheduler
	if w.refresh > 0 {
		if sched, err = newScheduler(w.refresh, func() { w.request(TriggerRefresh) }); err != nil {
			w.stopServer(srv)
			return startError(err, absRoot, "start refresh scheduler")
		}
		sched.Start()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.work(ctx)
	}()
	w.request(TriggerInitial)

	slog.Info("Watching docs for changes", logfields.Root(absRoot), slog.Duration("debounce", w.debounce))
	w.loop(ctx, fsw, absRoot)

	slog.Info("Stopping watch mode")
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	if sched != nil {
		if err := sched.Stop(); err != nil {
			slog.Warn("Scheduler shutdown error", logfields.Error(err))
		}
	}
	w.stopServer(srv)
	wg.Wait()
	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, absRoot string) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(fsw, absRoot, ev)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, absRoot string, ev fsnotify.Event) {
	if ev.Op == fsnotify.Chmod {
		return
	}
	if _, ok := w.ignore[ev.Name]; ok {
		return
	}
	if shouldIgnoreEvent(absRoot, ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(fsw, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), logfields.Op(ev.Op.String()))
	w.trigger()
}

// trigger (re)starts the debounce timer; the request is sent once changes settle.
func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.request(TriggerChange) })
}

// request queues a rebuild unless one is already pending.
func (w *Watcher) request(trigger string) {
	select {
	case w.requests <- trigger:
	default:
	}
}

func (w *Watcher) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case trigger := <-w.requests:
			w.rebuild(ctx, trigger)
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context, trigger string) {
	if trigger != TriggerInitial {
		w.rebuilder.Invalidate()
	}
	w.recorder.IncWatchRebuild(trigger)
	report, err := w.rebuilder.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
	case err != nil:
		slog.Warn("Regeneration failed; keeping previous output", slog.String("trigger", trigger), logfields.Error(err))
	case report != nil && report.Changed():
		slog.Info("Regenerated site config", slog.String("trigger", trigger), logfields.BuildID(report.BuildID))
	default:
		slog.Debug("Site config unchanged", slog.String("trigger", trigger))
	}
}

func (w *Watcher) startMetricsServer() (*http.Server, error) {
	ln, err := net.Listen("tcp", w.metricsAddr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener %s: %w", w.metricsAddr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", w.metricsHandler)
	srv := &http.Server{Handler: mux, ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second, IdleTimeout: 120 * time.Second}

	w.mu.Lock()
	w.boundAddr = ln.Addr().String()
	w.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server error", logfields.Error(err))
		}
	}()
	slog.Info("Serving metrics", slog.String("addr", ln.Addr().String()))
	return srv, nil
}

func (w *Watcher) stopServer(srv *http.Server) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("Metrics server shutdown error", logfields.Error(err))
	}
}

// addDirsRecursive watches root and every non-hidden directory below it.
// startError classifies a failure to start watch mode. A missing docs root is not_found,
// everything else is a runtime failure.
func startError(err error, root, msg string) error {
	category := ferrors.CategoryRuntime
	if errors.Is(err, fs.ErrNotExist) {
		category = ferrors.CategoryNotFound
	}
	return ferrors.WrapError(err, category, msg).WithContext("root", root).Build()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("watch %s: %w", root, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// shouldIgnoreEvent reports whether a change to path cannot affect the docs tree: hidden
// entries (or entries inside hidden directories), editor swap and temp files, and files
// with a non-markdown extension.
func shouldIgnoreEvent(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") && part != "." {
			return true
		}
	}

	base := filepath.Base(path)
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	if base == "Thumbs.db" {
		return true
	}

	ext := filepath.Ext(base)
	return ext != "" && !tree.IsMarkdown(base)
}
