package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Scheduler drives the runner on a fixed cadence. The first cycle runs
// immediately; later cycles run every interval until the context ends.
type Scheduler struct {
	runner   *Runner
	interval time.Duration
	logger   zerolog.Logger
}

// NewScheduler creates a scheduler for the given runner and interval
func NewScheduler(runner *Runner, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger.With().Str("component", "Scheduler").Logger(),
	}
}

// Run blocks until ctx is done, executing cycles on the configured cadence
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info().
		Dur("interval", s.interval).
		Msg("Starting monitoring loop")

	s.cycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Monitoring loop stopped")
			return
		case <-ticker.C:
			s.cycle(ctx)
		}
	}
}

// cycle runs one pass and surfaces its aggregated failures
func (s *Scheduler) cycle(ctx context.Context) {
	if err := s.runner.RunCycle(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Cycle finished with failures")
	}
}
