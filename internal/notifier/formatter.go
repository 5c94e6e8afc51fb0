package notifier

import (
	"fmt"
	"html"
	"strings"

	"djwatch/internal/differ"
	"djwatch/internal/models"
)

// Alert is a composed notification message, ready for any delivery channel
type Alert struct {
	Subject  string
	TextBody string
	HTMLBody string
}

// AlertFormatter composes alert messages announcing new supporter records
type AlertFormatter struct{}

// NewAlertFormatter creates a new alert formatter instance
func NewAlertFormatter() *AlertFormatter {
	return &AlertFormatter{}
}

// Format builds the subject, plain-text body and HTML body for an alert
func (af *AlertFormatter) Format(target models.Target, newRecords []models.Supporter, changes []differ.RecordChange) Alert {
	display := target.DisplayName()
	deltas := commentDeltas(changes)
	return Alert{
		Subject:  af.subject(display, newRecords),
		TextBody: af.textBody(display, target.SourceURL, newRecords, deltas),
		HTMLBody: af.htmlBody(display, target.SourceURL, newRecords, deltas),
	}
}

// commentDeltas indexes the non-empty comment deltas by the record that
// superseded the old one.
func commentDeltas(changes []differ.RecordChange) map[models.Supporter]string {
	if len(changes) == 0 {
		return nil
	}
	deltas := make(map[models.Supporter]string, len(changes))
	for _, change := range changes {
		if change.CommentDelta != "" {
			deltas[change.Current] = change.CommentDelta
		}
	}
	return deltas
}

// subject renders the alert subject line. The wording distinguishes plain
// name additions from records carrying a comment or rating.
func (af *AlertFormatter) subject(display string, newRecords []models.Supporter) string {
	plural := "s"
	if len(newRecords) == 1 {
		plural = ""
	}

	kind := "Added"
	for _, r := range newRecords {
		if r.HasComment() || r.HasStars() {
			kind = "Support/Comment"
			break
		}
	}

	return fmt.Sprintf("🚨 %d New DJ%s %s for %s", len(newRecords), plural, kind, display)
}

// textBody renders the plain-text alert body
func (af *AlertFormatter) textBody(display, url string, newRecords []models.Supporter, deltas map[models.Supporter]string) string {
	return fmt.Sprintf(
		"🚨 New DJ support detected on Inflyte!\n\nTrack: %s\n\n%s\n\nTotal new additions: %d\n\nView at: %s",
		display, af.textList(newRecords, deltas), len(newRecords), url,
	)
}

// textList renders one bullet line per record
func (af *AlertFormatter) textList(newRecords []models.Supporter, deltas map[models.Supporter]string) string {
	lines := make([]string, 0, len(newRecords))
	for _, r := range newRecords {
		line := "  • " + r.Name
		if r.HasStars() {
			line += fmt.Sprintf(" (%s)", strings.Repeat(models.StarGlyph, r.Stars))
		}
		if r.HasComment() {
			line += fmt.Sprintf(" - \"%s\"", r.Comment)
		}
		if delta, ok := deltas[r]; ok {
			line += fmt.Sprintf("\n    comment changed: %s", delta)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

const htmlBodyTemplate = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
        .dj-list { background: white; padding: 15px; border-left: 4px solid #667eea; margin: 15px 0; }
        .dj-item { margin: 8px 0; }
        .campaign { color: #667eea; font-weight: bold; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🎵 Inflyte DJ Monitor Alert</h1>
        </div>
        <div class="content">
            <p><strong>New DJs have been added to the Support section!</strong></p>
            <p class="campaign">Track: %s</p>
            <div class="dj-list">
                <h3>New Support (%d)</h3>
%s
            </div>
            <p>View the full list at: <a href="%s">%s</a></p>
        </div>
        <div class="footer">
            <p>This is an automated notification from your Inflyte DJ Monitor</p>
        </div>
    </div>
</body>
</html>`

// htmlBody renders the HTML alert body
func (af *AlertFormatter) htmlBody(display, url string, newRecords []models.Supporter, deltas map[models.Supporter]string) string {
	return fmt.Sprintf(htmlBodyTemplate,
		html.EscapeString(display), len(newRecords), af.htmlItems(newRecords, deltas), url, url)
}

// htmlItems renders one dj-item div per record
func (af *AlertFormatter) htmlItems(newRecords []models.Supporter, deltas map[models.Supporter]string) string {
	items := make([]string, 0, len(newRecords))
	for _, r := range newRecords {
		var b strings.Builder
		fmt.Fprintf(&b, `                <div class="dj-item"><strong>✨ %s</strong>`, html.EscapeString(r.Name))
		if r.HasStars() {
			fmt.Fprintf(&b, ` <span style="color: #FFD700;">%s</span>`, strings.Repeat(models.StarGlyph, r.Stars))
		}
		if r.HasComment() {
			fmt.Fprintf(&b, `<br/><em style="color: #666; margin-left: 20px;">"%s"</em>`, html.EscapeString(r.Comment))
		}
		if delta, ok := deltas[r]; ok {
			fmt.Fprintf(&b, `<br/><span style="color: #999; margin-left: 20px; font-size: 12px;">comment changed: %s</span>`, html.EscapeString(delta))
		}
		b.WriteString("</div>")
		items = append(items, b.String())
	}
	return strings.Join(items, "\n")
}
