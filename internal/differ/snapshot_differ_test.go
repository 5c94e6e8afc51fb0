package differ

import (
	"testing"

	"djwatch/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiffer() *SnapshotDiffer {
	return NewSnapshotDiffer(zerolog.Nop())
}

func TestDiff_IdenticalSetsYieldNothing(t *testing.T) {
	records := models.NewRecordSet(
		models.Supporter{Name: "Ana", Comment: "Great track!", Stars: 3},
		models.Supporter{Name: "Ben"},
	)

	result := newTestDiffer().Diff(models.NewSnapshot(records), records)

	assert.False(t, result.IsInitial)
	assert.False(t, result.HasNew())
	assert.Empty(t, result.New)
	assert.Equal(t, 2, result.Total)
}

func TestDiff_EmptyPreviousIsInitial(t *testing.T) {
	tests := []struct {
		name    string
		current models.RecordSet
	}{
		{
			name:    "empty current",
			current: models.NewRecordSet(),
		},
		{
			name: "populated current",
			current: models.NewRecordSet(
				models.Supporter{Name: "Ana"},
				models.Supporter{Name: "Ben"},
				models.Supporter{Name: "Cara"},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestDiffer().Diff(models.NewSnapshot(nil), tt.current)

			assert.True(t, result.IsInitial)
			assert.False(t, result.HasNew())
			assert.Empty(t, result.New)
			assert.Equal(t, tt.current.Len(), result.Total)
		})
	}
}

func TestDiff_StructuralChangeCountsAsNew(t *testing.T) {
	previous := models.NewSnapshot(models.NewRecordSet(
		models.Supporter{Name: "Ana"},
	))
	current := models.NewRecordSet(
		models.Supporter{Name: "Ana", Comment: "Great track!", Stars: 3},
	)

	result := newTestDiffer().Diff(previous, current)

	require.True(t, result.HasNew())
	require.Len(t, result.New, 1)
	assert.Equal(t, models.Supporter{Name: "Ana", Comment: "Great track!", Stars: 3}, result.New[0])

	// The same name existed before, so the addition is reported as a change.
	require.Len(t, result.Changed, 1)
	assert.Equal(t, models.Supporter{Name: "Ana"}, result.Changed[0].Previous)
	assert.Equal(t, "[+Great track!+]", result.Changed[0].CommentDelta)
}

func TestDiff_NewAndChangedSeparated(t *testing.T) {
	previous := models.NewSnapshot(models.NewRecordSet(
		models.Supporter{Name: "Ana"},
		models.Supporter{Name: "Ben", Comment: "ok"},
	))
	current := models.NewRecordSet(
		models.Supporter{Name: "Ana", Comment: "banger", Stars: 2},
		models.Supporter{Name: "Ben", Comment: "ok"},
		models.Supporter{Name: "Cara"},
	)

	result := newTestDiffer().Diff(previous, current)

	require.Len(t, result.New, 2)
	assert.Equal(t, "Ana", result.New[0].Name)
	assert.Equal(t, "Cara", result.New[1].Name)

	require.Len(t, result.Changed, 1)
	assert.Equal(t, "Ana", result.Changed[0].Current.Name)
	assert.Equal(t, 3, result.Total)
}

func TestDiff_RemovalsAreNotReported(t *testing.T) {
	previous := models.NewSnapshot(models.NewRecordSet(
		models.Supporter{Name: "Ana"},
		models.Supporter{Name: "Ben"},
	))
	current := models.NewRecordSet(
		models.Supporter{Name: "Ana"},
	)

	result := newTestDiffer().Diff(previous, current)

	assert.False(t, result.IsInitial)
	assert.False(t, result.HasNew())
	assert.Equal(t, 1, result.Total)
}

func TestCommentDelta(t *testing.T) {
	differ := newTestDiffer()

	t.Run("identical comments yield empty delta", func(t *testing.T) {
		assert.Empty(t, differ.CommentDelta("same", "same"))
	})

	t.Run("added comment is a pure insertion", func(t *testing.T) {
		assert.Equal(t, "[+Great track!+]", differ.CommentDelta("", "Great track!"))
	})

	t.Run("rewritten comment carries both markers", func(t *testing.T) {
		delta := differ.CommentDelta("Nice one.", "Great one.")
		assert.Contains(t, delta, "[-")
		assert.Contains(t, delta, "[+")
		assert.Contains(t, delta, " one.")
	})
}
