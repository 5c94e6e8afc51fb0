package config

// NotificationConfig defines configuration for notifications
type NotificationConfig struct {
	MailgunAPIKey  string `json:"mailgun_api_key,omitempty" yaml:"mailgun_api_key,omitempty"`
	MailgunDomain  string `json:"mailgun_domain,omitempty" yaml:"mailgun_domain,omitempty"`
	RecipientEmail string `json:"recipient_email,omitempty" yaml:"recipient_email,omitempty" validate:"omitempty,email"`
	FromEmail      string `json:"from_email,omitempty" yaml:"from_email,omitempty" validate:"omitempty,email"`
	SMTPHost       string `json:"smtp_host,omitempty" yaml:"smtp_host,omitempty"`
	SMTPPort       int    `json:"smtp_port,omitempty" yaml:"smtp_port,omitempty" validate:"omitempty,min=1,max=65535"`
	SMTPUsername   string `json:"smtp_username,omitempty" yaml:"smtp_username,omitempty"`
	SMTPPassword   string `json:"smtp_password,omitempty" yaml:"smtp_password,omitempty"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		FromEmail: DefaultFromEmail,
		SMTPPort:  DefaultSMTPPort,
	}
}

// MailgunConfigured reports whether Mailgun delivery credentials are present
func (nc NotificationConfig) MailgunConfigured() bool {
	return nc.MailgunAPIKey != "" && nc.MailgunDomain != "" && nc.RecipientEmail != ""
}

// SMTPConfigured reports whether an SMTP relay is configured. Credentials
// are optional so auth-less internal relays still qualify.
func (nc NotificationConfig) SMTPConfigured() bool {
	return nc.SMTPHost != "" && nc.RecipientEmail != ""
}
