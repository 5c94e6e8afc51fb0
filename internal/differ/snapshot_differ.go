package differ

import (
	"strings"

	"djwatch/internal/models"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffResult describes how a freshly extracted record set compares to the
// stored snapshot for one campaign.
type DiffResult struct {
	// New holds the records present now but absent from the previous
	// snapshot, ordered deterministically.
	New []models.Supporter

	// Changed pairs each new record with the previous record of the same
	// name it supersedes, when one exists. A record in New with no entry
	// here is a genuinely new name.
	Changed []RecordChange

	// IsInitial marks a first observation: the previous snapshot was empty,
	// so the current records form a baseline rather than additions to
	// announce.
	IsInitial bool

	// Total is the number of records currently on the page.
	Total int
}

// HasNew reports whether the result carries announceable additions
func (dr DiffResult) HasNew() bool {
	return !dr.IsInitial && len(dr.New) > 0
}

// RecordChange captures a record whose payload changed between checks:
// same name, different comment or rating.
type RecordChange struct {
	Previous models.Supporter
	Current  models.Supporter

	// CommentDelta is an inline rendering of how the comment text changed,
	// empty when the comments are identical.
	CommentDelta string
}

// SnapshotDiffer computes new-record deltas between the stored snapshot and
// the current extraction. Membership is decided by full structural equality,
// so a supporter whose comment or rating changed counts as new.
type SnapshotDiffer struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	logger zerolog.Logger
}

// NewSnapshotDiffer creates a new snapshot differ instance
func NewSnapshotDiffer(logger zerolog.Logger) *SnapshotDiffer {
	return &SnapshotDiffer{
		dmp:    diffmatchpatch.New(),
		logger: logger.With().Str("component", "SnapshotDiffer").Logger(),
	}
}

// Diff compares the current record set against the previous snapshot.
// An empty previous snapshot classifies the cycle as initial and produces
// no additions: announcing the whole existing history of a page on first
// deployment would be a notification storm, not news.
func (sd *SnapshotDiffer) Diff(previous models.Snapshot, current models.RecordSet) DiffResult {
	result := DiffResult{Total: current.Len()}

	if previous.Records.IsEmpty() {
		result.IsInitial = true
		return result
	}

	result.New = current.Difference(previous.Records).Sorted()

	for _, supporter := range result.New {
		prev, ok := previous.Records.FindByName(supporter.Name)
		if !ok {
			continue
		}
		result.Changed = append(result.Changed, RecordChange{
			Previous:     prev,
			Current:      supporter,
			CommentDelta: sd.CommentDelta(prev.Comment, supporter.Comment),
		})
	}

	if len(result.New) > 0 {
		sd.logger.Debug().
			Int("new", len(result.New)).
			Int("changed", len(result.Changed)).
			Int("total", result.Total).
			Msg("Detected new supporter records")
	}

	return result
}

// CommentDelta renders an inline description of how comment text changed,
// with deletions wrapped in [-..-] and insertions in [+..+]. Identical
// inputs yield an empty string.
func (sd *SnapshotDiffer) CommentDelta(previous, current string) string {
	if previous == current {
		return ""
	}

	diffs := sd.dmp.DiffMain(previous, current, false)
	diffs = sd.dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("[+")
			b.WriteString(d.Text)
			b.WriteString("+]")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
