package notifier

import (
	"context"

	"djwatch/internal/config"
	"djwatch/internal/differ"
	"djwatch/internal/models"

	"github.com/rs/zerolog"
)

// Notifier delivers new-record alerts for a campaign
type Notifier interface {
	// Notify sends an alert announcing newRecords for the target. Changes
	// pair returning names with their previous record so the message can
	// show what changed. Failures are reported as common.NotifyError so
	// callers can apply the persist-anyway policy.
	Notify(ctx context.Context, target models.Target, newRecords []models.Supporter, changes []differ.RecordChange) error
}

// NewNotifier selects the delivery channel from notification configuration:
// Mailgun when API credentials are present, SMTP when a relay is configured,
// and a log-only notifier otherwise.
func NewNotifier(cfg config.NotificationConfig, logger zerolog.Logger) Notifier {
	switch {
	case cfg.MailgunConfigured():
		return NewMailgunNotifier(cfg, logger)
	case cfg.SMTPConfigured():
		return NewSMTPNotifier(cfg, logger)
	default:
		logger.Warn().Msg("No notification credentials configured, alerts will only be logged")
		return NewLogNotifier(logger)
	}
}
