package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"djwatch/internal/common"
	"djwatch/internal/differ"
	"djwatch/internal/extractor"
	"djwatch/internal/models"
	"djwatch/internal/notifier"
)

// Runner executes monitoring cycles over the configured targets. Each
// target check fetches the page, extracts the current supporter records,
// diffs them against the stored snapshot, notifies on additions, and
// persists the new snapshot.
type Runner struct {
	fetcher   *PageFetcher
	extractor *extractor.SupporterExtractor
	differ    *differ.SnapshotDiffer
	store     models.SnapshotStore
	notifier  notifier.Notifier
	tracker   *CycleTracker
	targets   []models.Target
	logger    zerolog.Logger
}

// NewRunner creates a runner over the given targets
func NewRunner(
	fetcher *PageFetcher,
	supporterExtractor *extractor.SupporterExtractor,
	snapshotDiffer *differ.SnapshotDiffer,
	store models.SnapshotStore,
	alertNotifier notifier.Notifier,
	tracker *CycleTracker,
	targets []models.Target,
	logger zerolog.Logger,
) *Runner {
	return &Runner{
		fetcher:   fetcher,
		extractor: supporterExtractor,
		differ:    snapshotDiffer,
		store:     store,
		notifier:  alertNotifier,
		tracker:   tracker,
		targets:   targets,
		logger:    logger.With().Str("component", "Runner").Logger(),
	}
}

// ResolveTitles fills in display titles for targets that lack one by
// fetching each page once. Failures are tolerated; such targets keep
// using their identifier for display.
func (r *Runner) ResolveTitles(ctx context.Context) {
	for i := range r.targets {
		if r.targets[i].DisplayTitle != "" {
			continue
		}

		htmlContent, err := r.fetcher.FetchPage(ctx, r.targets[i].SourceURL)
		if err != nil {
			r.logger.Debug().
				Err(err).
				Str("url", r.targets[i].SourceURL).
				Msg("Title resolution failed")
			continue
		}

		if title := r.extractor.ExtractTitle(htmlContent); title != "" {
			r.targets[i].DisplayTitle = title
			r.logger.Info().
				Str("campaign", r.targets[i].Identifier).
				Str("title", title).
				Msg("Resolved track title")
		}
	}
}

// Targets returns the runner's target list
func (r *Runner) Targets() []models.Target {
	return r.targets
}

// CheckTarget runs one full check for a single target. A non-nil return
// means the snapshot was not updated, so the next cycle retries from the
// previous state. Notification failures are logged but never prevent
// persistence; an alert fires at most once per addition.
func (r *Runner) CheckTarget(ctx context.Context, target models.Target) error {
	htmlContent, err := r.fetcher.FetchPage(ctx, target.SourceURL)
	if err != nil {
		return err
	}

	records, err := r.extractor.Extract(htmlContent)
	if err != nil {
		return err
	}

	previous, err := r.store.Load(ctx, target.Identifier)
	if err != nil && !errors.Is(err, models.ErrSnapshotNotFound) {
		return err
	}

	result := r.differ.Diff(previous, records)

	switch {
	case result.IsInitial:
		r.logger.Info().
			Str("campaign", target.Identifier).
			Int("records", result.Total).
			Msg("First observation, persisting baseline without notification")
	case result.HasNew():
		r.notify(ctx, target, result)
	default:
		r.logger.Debug().
			Str("campaign", target.Identifier).
			Int("records", result.Total).
			Msg("No new records")
	}

	if err := r.store.Save(ctx, target.Identifier, models.NewSnapshot(records)); err != nil {
		return err
	}

	r.tracker.Update(target, result.Total)
	return nil
}

func (r *Runner) notify(ctx context.Context, target models.Target, result differ.DiffResult) {
	newNames := make([]string, 0, len(result.New))
	for _, record := range result.New {
		newNames = append(newNames, record.String())
	}

	r.logger.Info().
		Str("campaign", target.Identifier).
		Strs("new_records", newNames).
		Int("changed", len(result.Changed)).
		Msg("New supporter records detected")

	for _, change := range result.Changed {
		r.logger.Info().
			Str("campaign", target.Identifier).
			Str("name", change.Current.Name).
			Str("comment_delta", change.CommentDelta).
			Msg("Supporter record changed")
	}

	if err := r.notifier.Notify(ctx, target, result.New, result.Changed); err != nil {
		r.logger.Error().
			Err(err).
			Str("campaign", target.Identifier).
			Msg("Notification failed, persisting snapshot anyway")
	}
}

// RunCycle checks every target sequentially. A failing target is logged
// and skipped; the cycle continues with the remaining targets. The return
// value aggregates every per-target failure and is nil for a clean cycle.
func (r *Runner) RunCycle(ctx context.Context) error {
	started := time.Now()
	var failures common.ErrorCollector

	for _, target := range r.targets {
		if ctx.Err() != nil {
			r.logger.Info().Msg("Cycle aborted")
			return failures.Error()
		}

		if err := r.CheckTarget(ctx, target); err != nil {
			failures.Add(common.WrapErrorf(err, "campaign '%s'", target.Identifier))
			r.logger.Error().
				Err(err).
				Str("campaign", target.Identifier).
				Str("url", target.SourceURL).
				Msg("Check failed, snapshot left unchanged")
		}
	}

	usage := SampleResourceUsage()
	r.logger.Info().
		Int("targets", len(r.targets)).
		Int("failed", failures.Count()).
		Dur("duration", time.Since(started)).
		Int64("alloc_mb", usage.AllocMB).
		Int("goroutines", usage.Goroutines).
		Float64("cpu_percent", usage.CPUUsagePercent).
		Float64("system_mem_percent", usage.SystemMemUsedPercent).
		Msg("Cycle complete")

	return failures.Error()
}
