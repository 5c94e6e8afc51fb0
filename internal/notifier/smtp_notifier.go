package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"djwatch/internal/common"
	"djwatch/internal/config"
	"djwatch/internal/differ"
	"djwatch/internal/models"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"
)

// SMTPNotifier delivers alerts through a plain SMTP relay
type SMTPNotifier struct {
	formatter *AlertFormatter
	cfg       config.NotificationConfig
	logger    zerolog.Logger
}

// NewSMTPNotifier creates a new SMTP notifier instance
func NewSMTPNotifier(cfg config.NotificationConfig, logger zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		formatter: NewAlertFormatter(),
		cfg:       cfg,
		logger:    logger.With().Str("component", "SMTPNotifier").Logger(),
	}
}

// Notify composes the alert and sends it through the configured relay.
// The underlying SMTP client has no context support, so cancellation only
// takes effect between sends.
func (sn *SMTPNotifier) Notify(_ context.Context, target models.Target, newRecords []models.Supporter, changes []differ.RecordChange) error {
	alert := sn.formatter.Format(target, newRecords, changes)

	mail := email.NewEmail()
	mail.From = sn.cfg.FromEmail
	mail.To = []string{sn.cfg.RecipientEmail}
	mail.Subject = alert.Subject
	mail.Text = []byte(alert.TextBody)
	mail.HTML = []byte(alert.HTMLBody)

	addr := fmt.Sprintf("%s:%d", sn.cfg.SMTPHost, sn.cfg.SMTPPort)
	var auth smtp.Auth
	if sn.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", sn.cfg.SMTPUsername, sn.cfg.SMTPPassword, sn.cfg.SMTPHost)
	}

	if err := mail.Send(addr, auth); err != nil {
		return common.NewNotifyError("smtp", err)
	}

	sn.logger.Info().
		Str("campaign", target.Identifier).
		Int("new_records", len(newRecords)).
		Str("recipient", sn.cfg.RecipientEmail).
		Msg("Alert email sent via SMTP")
	return nil
}
