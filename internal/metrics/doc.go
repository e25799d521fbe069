// Package metrics provides the observability hooks for generation runs.
//
// Components receive a Recorder through dependency injection and default to NoopRecorder,
// so call sites never check for nil:
//
//	gen := generator.New(cfg, generator.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The Prometheus implementation is only activated by watch mode when a metrics address is
// configured; HTTPHandler exposes the registry it was registered with.
package metrics
