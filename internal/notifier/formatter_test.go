package notifier

import (
	"strings"
	"testing"

	"djwatch/internal/differ"
	"djwatch/internal/models"

	"github.com/stretchr/testify/assert"
)

func testTarget() models.Target {
	return models.Target{
		Identifier:   "summer-tour",
		SourceURL:    "https://promo.example.com/campaigns/summer-tour",
		DisplayTitle: "Estiva - Via Infinita",
	}
}

func TestFormat_Subject(t *testing.T) {
	tests := []struct {
		name     string
		records  []models.Supporter
		expected string
	}{
		{
			name:     "single plain addition",
			records:  []models.Supporter{{Name: "Ben Gold"}},
			expected: "🚨 1 New DJ Added for Estiva - Via Infinita",
		},
		{
			name: "multiple additions with a comment",
			records: []models.Supporter{
				{Name: "Ben Gold", Comment: "Massive!"},
				{Name: "Omnia"},
			},
			expected: "🚨 2 New DJs Support/Comment for Estiva - Via Infinita",
		},
		{
			name:     "rating alone selects support wording",
			records:  []models.Supporter{{Name: "Ben Gold", Stars: 3}},
			expected: "🚨 1 New DJ Support/Comment for Estiva - Via Infinita",
		},
	}

	formatter := NewAlertFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := formatter.Format(testTarget(), tt.records, nil)
			assert.Equal(t, tt.expected, alert.Subject)
		})
	}
}

func TestFormat_TextBody(t *testing.T) {
	records := []models.Supporter{
		{Name: "Ben Gold", Comment: "Absolutely massive.", Stars: 3},
		{Name: "Omnia"},
	}

	alert := NewAlertFormatter().Format(testTarget(), records, nil)

	expected := "🚨 New DJ support detected on Inflyte!\n\n" +
		"Track: Estiva - Via Infinita\n\n" +
		"  • Ben Gold (" + strings.Repeat(models.StarGlyph, 3) + ") - \"Absolutely massive.\"\n" +
		"  • Omnia\n\n" +
		"Total new additions: 2\n\n" +
		"View at: https://promo.example.com/campaigns/summer-tour"
	assert.Equal(t, expected, alert.TextBody)
}

func TestFormat_FallsBackToIdentifier(t *testing.T) {
	target := testTarget()
	target.DisplayTitle = ""

	alert := NewAlertFormatter().Format(target, []models.Supporter{{Name: "Ben Gold"}}, nil)

	assert.Equal(t, "🚨 1 New DJ Added for summer-tour", alert.Subject)
	assert.Contains(t, alert.TextBody, "Track: summer-tour")
}

func TestFormat_HTMLBody(t *testing.T) {
	records := []models.Supporter{
		{Name: "Ben Gold", Comment: "Absolutely massive.", Stars: 2},
		{Name: "Omnia"},
	}

	alert := NewAlertFormatter().Format(testTarget(), records, nil)

	assert.Contains(t, alert.HTMLBody, "<h1>🎵 Inflyte DJ Monitor Alert</h1>")
	assert.Contains(t, alert.HTMLBody, "<h3>New Support (2)</h3>")
	assert.Contains(t, alert.HTMLBody, `<div class="dj-item"><strong>✨ Ben Gold</strong>`)
	assert.Contains(t, alert.HTMLBody, `<span style="color: #FFD700;">`+strings.Repeat(models.StarGlyph, 2)+`</span>`)
	assert.Contains(t, alert.HTMLBody, `"Absolutely massive."`)
	assert.Contains(t, alert.HTMLBody, `<a href="https://promo.example.com/campaigns/summer-tour">`)
	assert.Contains(t, alert.HTMLBody, "linear-gradient(135deg, #667eea 0%, #764ba2 100%)")
}

func TestFormat_HTMLEscapesContent(t *testing.T) {
	records := []models.Supporter{
		{Name: "DJ <Script>", Comment: `say "hi" & bye`},
	}

	alert := NewAlertFormatter().Format(testTarget(), records, nil)

	assert.Contains(t, alert.HTMLBody, "DJ &lt;Script&gt;")
	assert.NotContains(t, alert.HTMLBody, "DJ <Script>")
	assert.Contains(t, alert.HTMLBody, "&amp; bye")
}

func TestFormat_CommentDeltaLines(t *testing.T) {
	previous := models.Supporter{Name: "Ben Gold", Comment: "Nice one."}
	current := models.Supporter{Name: "Ben Gold", Comment: "Nice one indeed."}
	changes := []differ.RecordChange{
		{
			Previous:     previous,
			Current:      current,
			CommentDelta: "Nice one[+ indeed+].",
		},
	}

	alert := NewAlertFormatter().Format(testTarget(), []models.Supporter{current}, changes)

	assert.Contains(t, alert.TextBody, "    comment changed: Nice one[+ indeed+].")
	assert.Contains(t, alert.HTMLBody, "comment changed: Nice one[+ indeed+].")
}

func TestFormat_DeltaOnlyAttachesToMatchingRecord(t *testing.T) {
	changed := models.Supporter{Name: "Ben Gold", Comment: "Updated."}
	fresh := models.Supporter{Name: "Omnia"}
	changes := []differ.RecordChange{
		{
			Previous:     models.Supporter{Name: "Ben Gold", Comment: "Original."},
			Current:      changed,
			CommentDelta: "[-Original-][+Updated+].",
		},
	}

	alert := NewAlertFormatter().Format(testTarget(), []models.Supporter{changed, fresh}, changes)

	assert.Equal(t, 1, strings.Count(alert.TextBody, "comment changed:"))
	assert.Contains(t, alert.TextBody, "  • Omnia\n")
}
