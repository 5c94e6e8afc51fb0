package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"djwatch/internal/models"
)

func TestCycleTracker_RegisterSeedsStatuses(t *testing.T) {
	tracker := NewCycleTracker()
	tracker.Register(models.Target{
		Identifier:   "summer-tour",
		SourceURL:    "https://promo.example.com/c/summer-tour",
		DisplayTitle: "Estiva - Via Infinita",
	})
	tracker.Register(models.Target{
		Identifier: "winter-drop",
		SourceURL:  "https://promo.example.com/c/winter-drop",
	})

	statuses := tracker.Statuses()
	require.Len(t, statuses, 2)

	assert.Equal(t, "summer-tour", statuses[0].Name)
	assert.Equal(t, "https://promo.example.com/c/summer-tour", statuses[0].URL)
	assert.Equal(t, "Estiva - Via Infinita", statuses[0].TrackTitle)
	assert.Zero(t, statuses[0].DJCount)
	assert.Nil(t, statuses[0].LastChecked)

	assert.Equal(t, "winter-drop", statuses[1].Name)
	assert.Equal(t, 2, tracker.Count())
}

func TestCycleTracker_RegisterTwiceKeepsExistingEntry(t *testing.T) {
	target := models.Target{
		Identifier: "summer-tour",
		SourceURL:  "https://promo.example.com/c/summer-tour",
	}

	tracker := NewCycleTracker()
	tracker.Register(target)
	tracker.Update(target, 4)
	tracker.Register(target)

	statuses := tracker.Statuses()
	require.Len(t, statuses, 1)
	assert.Equal(t, 4, statuses[0].DJCount)
	assert.NotNil(t, statuses[0].LastChecked)
}

func TestCycleTracker_UpdateRecordsCheckOutcome(t *testing.T) {
	target := models.Target{
		Identifier: "summer-tour",
		SourceURL:  "https://promo.example.com/c/summer-tour",
	}

	tracker := NewCycleTracker()
	tracker.Register(target)

	target.DisplayTitle = "Estiva - Via Infinita"
	before := time.Now()
	tracker.Update(target, 12)

	statuses := tracker.Statuses()
	require.Len(t, statuses, 1)
	assert.Equal(t, 12, statuses[0].DJCount)
	assert.Equal(t, "Estiva - Via Infinita", statuses[0].TrackTitle)
	require.NotNil(t, statuses[0].LastChecked)
	assert.False(t, statuses[0].LastChecked.Before(before))
}

func TestCycleTracker_UpdateUnknownTargetAppends(t *testing.T) {
	tracker := NewCycleTracker()
	tracker.Register(models.Target{
		Identifier: "first",
		SourceURL:  "https://promo.example.com/c/first",
	})
	tracker.Update(models.Target{
		Identifier: "second",
		SourceURL:  "https://promo.example.com/c/second",
	}, 3)

	statuses := tracker.Statuses()
	require.Len(t, statuses, 2)
	assert.Equal(t, "first", statuses[0].Name)
	assert.Equal(t, "second", statuses[1].Name)
	assert.Equal(t, 3, statuses[1].DJCount)
}
