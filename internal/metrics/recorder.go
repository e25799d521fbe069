package metrics

import "time"

// OutcomeLabel enumerates generation outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess   OutcomeLabel = "success"
	OutcomeUnchanged OutcomeLabel = "unchanged"
	OutcomeFailed    OutcomeLabel = "failed"
	OutcomeCanceled  OutcomeLabel = "canceled"
)

// Recorder defines observability hooks for generation runs and watch mode.
type Recorder interface {
	ObserveGenerateDuration(d time.Duration)
	IncGenerateOutcome(outcome OutcomeLabel)
	ObserveScanDuration(d time.Duration)
	SetCategories(n int)
	SetPages(n int)
	IncWatchRebuild(trigger string) // trigger: fsnotify|refresh|initial
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerateDuration(time.Duration) {}
func (NoopRecorder) IncGenerateOutcome(OutcomeLabel)       {}
func (NoopRecorder) ObserveScanDuration(time.Duration)     {}
func (NoopRecorder) SetCategories(int)                     {}
func (NoopRecorder) SetPages(int)                          {}
func (NoopRecorder) IncWatchRebuild(string)                {}
