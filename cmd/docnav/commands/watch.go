package commands

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/lqr-hy/docs/internal/generator"
	"github.com/lqr-hy/docs/internal/metrics"
	"github.com/lqr-hy/docs/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Refresh     time.Duration `help:"Also regenerate on this interval (e.g. 10m) to keep last-updated text current"`
	Debounce    time.Duration `help:"Quiet period after the last change before regenerating" default:"300ms"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)"`
}

func (c *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	opts := []watch.Option{
		watch.WithDebounce(c.Debounce),
		watch.WithRefresh(c.Refresh),
		watch.WithIgnore(cfg.Output.Path, cfg.Output.Pages, cfg.Output.HeadHTML),
	}
	if c.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		opts = append(opts,
			watch.WithMetrics(c.MetricsAddr, metrics.HTTPHandler(reg)),
			watch.WithRecorder(recorder))
	}

	gen := generator.New(cfg, generator.WithRecorder(recorder))
	return watch.New(cfg.Docs.Root, gen, opts...).Run(g.context())
}
