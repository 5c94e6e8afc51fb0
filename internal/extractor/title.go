package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// platformName appears in the page's own branding headings, which must not
// be mistaken for track titles.
const platformName = "Inflyte"

// ExtractTitle returns the track title from campaign page HTML, or an empty
// string when none is found. Titles are h1 headings shaped like
// "Artist - Track", so headings without a dash or carrying the platform
// branding are skipped.
func (se *SupporterExtractor) ExtractTitle(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		se.logger.Debug().Err(err).Msg("Failed to parse campaign page HTML for title")
		return ""
	}

	var title string
	doc.Find("h1").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		text := strings.TrimSpace(heading.Text())
		if text == "" || !strings.Contains(text, "-") || strings.Contains(text, platformName) {
			return true
		}
		title = text
		return false
	})

	return title
}
