package notifier

import (
	"context"
	"fmt"
	"time"

	"djwatch/internal/common"
	"djwatch/internal/config"
	"djwatch/internal/differ"
	"djwatch/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const mailgunAPIBase = "https://api.mailgun.net/v3"

// MailgunNotifier delivers alerts through the Mailgun messages API
type MailgunNotifier struct {
	client    *resty.Client
	formatter *AlertFormatter
	cfg       config.NotificationConfig
	apiBase   string
	logger    zerolog.Logger
}

// NewMailgunNotifier creates a new Mailgun notifier instance
func NewMailgunNotifier(cfg config.NotificationConfig, logger zerolog.Logger) *MailgunNotifier {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &MailgunNotifier{
		client:    client,
		formatter: NewAlertFormatter(),
		cfg:       cfg,
		apiBase:   mailgunAPIBase,
		logger:    logger.With().Str("component", "MailgunNotifier").Logger(),
	}
}

// Notify composes the alert and posts it to the Mailgun messages endpoint
func (mn *MailgunNotifier) Notify(ctx context.Context, target models.Target, newRecords []models.Supporter, changes []differ.RecordChange) error {
	alert := mn.formatter.Format(target, newRecords, changes)

	resp, err := mn.client.R().
		SetContext(ctx).
		SetBasicAuth("api", mn.cfg.MailgunAPIKey).
		SetMultipartFormData(map[string]string{
			"from":    mn.cfg.FromEmail,
			"to":      mn.cfg.RecipientEmail,
			"subject": alert.Subject,
			"text":    alert.TextBody,
			"html":    alert.HTMLBody,
		}).
		Post(fmt.Sprintf("%s/%s/messages", mn.apiBase, mn.cfg.MailgunDomain))
	if err != nil {
		return common.NewNotifyError("mailgun", err)
	}

	if resp.IsError() {
		return common.NewNotifyError("mailgun",
			common.NewHTTPError(resp.StatusCode(), string(resp.Body())))
	}

	mn.logger.Info().
		Str("campaign", target.Identifier).
		Int("new_records", len(newRecords)).
		Str("recipient", mn.cfg.RecipientEmail).
		Msg("Alert email sent via Mailgun")
	return nil
}
