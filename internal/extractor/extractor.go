package extractor

import (
	"strings"

	"djwatch/internal/common"
	"djwatch/internal/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const (
	// supportHeading is the h3 text that opens the supporter section.
	supportHeading = "Support"

	// plainListMarker introduces the comma-separated fallback list and also
	// terminates the comment block of a profile card.
	plainListMarker = "Support from"
)

// noisePrefixes mark plain-list fragments that are page chrome rather than
// supporter names.
var noisePrefixes = []string{"Get Mad", "Currently subscribed"}

// SupporterExtractor pulls supporter records out of campaign page HTML.
// Campaign pages carry no stable classes or ids, so extraction leans on
// document shape: the section after the "Support" heading, profile cards
// recognized by their avatar images, and a comma-separated plain list as
// the fallback.
type SupporterExtractor struct {
	logger zerolog.Logger
}

// NewSupporterExtractor creates a new supporter extractor instance
func NewSupporterExtractor(logger zerolog.Logger) *SupporterExtractor {
	return &SupporterExtractor{
		logger: logger.With().Str("component", "SupporterExtractor").Logger(),
	}
}

// Extract parses campaign page HTML and returns all supporter records found
// in the support section. A page without a support section yields an empty
// set, not an error.
func (se *SupporterExtractor) Extract(htmlContent string) (models.RecordSet, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, common.WrapError(err, "failed to parse campaign page HTML")
	}

	records := models.NewRecordSet()

	doc.Find("h3").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		if strings.TrimSpace(heading.Text()) != supportHeading {
			return true
		}

		// The supporter section is everything between this heading and the
		// next h3 (or the end of the parent container).
		heading.NextUntil("h3").Each(func(_ int, sibling *goquery.Selection) {
			se.scanSection(sibling, records)
		})

		return false
	})

	return records, nil
}

// scanSection collects records from one sibling block of the supporter
// section. Blocks holding avatar images are parsed as profile cards; the
// plain list is scanned independently since some pages carry both forms in
// the same block.
func (se *SupporterExtractor) scanSection(block *goquery.Selection, records models.RecordSet) {
	if block.Find("img").Length() > 0 {
		se.collectProfileCards(block, records)
	}

	if text := block.Text(); strings.Contains(text, plainListMarker) {
		se.collectPlainList(text, records)
	}
}

// collectProfileCards parses the per-supporter containers inside a block.
// Each supporter card is a div holding an avatar image; only the innermost
// such divs are parsed, since outer wrappers blend the text of several
// cards together. When the block has an image but no div containers at all,
// the whole block is treated as a single card.
func (se *SupporterExtractor) collectProfileCards(block *goquery.Selection, records models.RecordSet) {
	cards := divsWithImage(block)

	if cards.Length() == 0 {
		// Two lines minimum here: a lone image caption is not a card.
		se.addCard(block.Text(), 2, records)
		return
	}

	cards.FilterFunction(func(_ int, card *goquery.Selection) bool {
		return divsWithImage(card).Length() == 0
	}).Each(func(_ int, card *goquery.Selection) {
		se.addCard(card.Text(), 1, records)
	})
}

// divsWithImage returns the descendant divs of sel that contain an image
func divsWithImage(sel *goquery.Selection) *goquery.Selection {
	return sel.Find("div").FilterFunction(func(_ int, div *goquery.Selection) bool {
		return div.Find("img").Length() > 0
	})
}

// addCard parses one card's text into a supporter record. The first line
// carries the name, terminated by the first star glyph when a rating is
// inlined; following lines form the comment until the plain-list marker;
// stars are counted over the whole card text.
func (se *SupporterExtractor) addCard(text string, minLines int, records models.RecordSet) {
	lines := nonEmptyLines(text)
	if len(lines) < minLines {
		return
	}

	nameLine, _, _ := strings.Cut(lines[0], models.StarGlyph)

	var commentParts []string
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, plainListMarker) {
			break
		}
		commentParts = append(commentParts, line)
	}

	supporter, err := models.NewSupporter(nameLine, strings.Join(commentParts, " "), strings.Count(text, models.StarGlyph))
	if err != nil {
		se.logger.Debug().Err(err).Str("first_line", lines[0]).Msg("Skipping malformed supporter card")
		return
	}

	records.Add(supporter)
}

// collectPlainList parses the comma-separated list following the first
// plain-list marker. Names already present in the set keep their richer
// card record; the plain list never overrides one.
func (se *SupporterExtractor) collectPlainList(text string, records models.RecordSet) {
	segments := strings.SplitN(text, plainListMarker, 3)
	if len(segments) < 2 {
		return
	}

	// The list runs from the first marker up to the next one, if any.
	listText := strings.ReplaceAll(segments[1], " and ", ", ")

	for _, fragment := range strings.Split(listText, ",") {
		name := strings.TrimSpace(fragment)
		if name == "" || isNoiseFragment(name) || records.ContainsName(name) {
			continue
		}

		supporter, err := models.NewSupporter(name, "", 0)
		if err != nil {
			se.logger.Debug().Err(err).Str("fragment", name).Msg("Skipping malformed plain-list entry")
			continue
		}

		records.Add(supporter)
	}
}

// isNoiseFragment reports whether a plain-list fragment is page chrome
func isNoiseFragment(name string) bool {
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// nonEmptyLines splits text into trimmed, non-empty lines
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
