package notifier

import (
	"context"

	"djwatch/internal/differ"
	"djwatch/internal/models"

	"github.com/rs/zerolog"
)

// LogNotifier writes alerts to the log instead of delivering them. It is
// the fallback channel when no delivery credentials are configured.
type LogNotifier struct {
	formatter *AlertFormatter
	logger    zerolog.Logger
}

// NewLogNotifier creates a new log-only notifier instance
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{
		formatter: NewAlertFormatter(),
		logger:    logger.With().Str("component", "LogNotifier").Logger(),
	}
}

// Notify logs the alert subject and the new record names
func (ln *LogNotifier) Notify(_ context.Context, target models.Target, newRecords []models.Supporter, changes []differ.RecordChange) error {
	names := make([]string, 0, len(newRecords))
	for _, r := range newRecords {
		names = append(names, r.String())
	}

	ln.logger.Info().
		Str("campaign", target.Identifier).
		Str("subject", ln.formatter.Format(target, newRecords, changes).Subject).
		Strs("new_records", names).
		Int("changed", len(changes)).
		Msg("New supporter records detected (notification delivery not configured)")
	return nil
}
