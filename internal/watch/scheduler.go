package watch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// scheduler wraps gocron for the periodic refresh job.
type scheduler struct {
	s gocron.Scheduler
}

func newScheduler(interval time.Duration, task func()) (*scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	if _, err := s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName("docnav-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to create refresh job: %w", err)
	}
	return &scheduler{s: s}, nil
}

func (s *scheduler) Start() {
	slog.Debug("Starting refresh scheduler")
	s.s.Start()
}

func (s *scheduler) Stop() error {
	return s.s.Shutdown()
}
