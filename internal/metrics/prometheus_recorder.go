package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docnav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	generateDuration prom.Histogram
	generateOutcome  *prom.CounterVec
	scanDuration     prom.Histogram
	categories       prom.Gauge
	pages            prom.Gauge
	watchRebuilds    *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		generateDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_duration_seconds",
			Help:      "Duration of a full generation run",
			Buckets:   prom.DefBuckets,
		}),
		generateOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "generate_outcomes_total",
			Help:      "Generation runs by outcome",
		}, []string{"outcome"}),
		scanDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Duration of the docs tree scan",
			Buckets:   prom.DefBuckets,
		}),
		categories: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "categories",
			Help:      "Categories found by the last scan",
		}),
		pages: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pages",
			Help:      "Pages found by the last scan",
		}),
		watchRebuilds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "watch_rebuilds_total",
			Help:      "Regenerations triggered in watch mode",
		}, []string{"trigger"}),
	}
	reg.MustRegister(pr.generateDuration, pr.generateOutcome, pr.scanDuration, pr.categories, pr.pages, pr.watchRebuilds)
	return pr
}

func (p *PrometheusRecorder) ObserveGenerateDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.generateDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncGenerateOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.generateOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveScanDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.scanDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetCategories(n int) {
	if p == nil {
		return
	}
	p.categories.Set(float64(n))
}

func (p *PrometheusRecorder) SetPages(n int) {
	if p == nil {
		return
	}
	p.pages.Set(float64(n))
}

func (p *PrometheusRecorder) IncWatchRebuild(trigger string) {
	if p == nil {
		return
	}
	p.watchRebuilds.WithLabelValues(trigger).Inc()
}
