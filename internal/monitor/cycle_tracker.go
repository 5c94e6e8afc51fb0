package monitor

import (
	"sync"
	"time"

	"djwatch/internal/models"
)

// CycleTracker holds the latest per-campaign status published by the
// monitoring loop. One writer (the monitor loop) and many readers (the
// status endpoint) share it behind a single RWMutex.
type CycleTracker struct {
	mu       sync.RWMutex
	statuses map[string]models.CampaignStatus
	order    []string
}

// NewCycleTracker creates an empty tracker
func NewCycleTracker() *CycleTracker {
	return &CycleTracker{
		statuses: make(map[string]models.CampaignStatus),
	}
}

// Register seeds a status entry for a target before its first check so the
// status endpoint lists every configured campaign immediately. Registering
// an already-known target is a no-op.
func (ct *CycleTracker) Register(target models.Target) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	if _, exists := ct.statuses[target.Identifier]; exists {
		return
	}

	ct.order = append(ct.order, target.Identifier)
	ct.statuses[target.Identifier] = models.CampaignStatus{
		Name:       target.Identifier,
		URL:        target.SourceURL,
		TrackTitle: target.DisplayTitle,
	}
}

// Update records the outcome of a successful check for a target
func (ct *CycleTracker) Update(target models.Target, recordCount int) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	status, exists := ct.statuses[target.Identifier]
	if !exists {
		ct.order = append(ct.order, target.Identifier)
		status = models.CampaignStatus{Name: target.Identifier}
	}

	now := time.Now()
	status.URL = target.SourceURL
	status.TrackTitle = target.DisplayTitle
	status.DJCount = recordCount
	status.LastChecked = &now
	ct.statuses[target.Identifier] = status
}

// Statuses returns a copy of all campaign statuses in registration order
func (ct *CycleTracker) Statuses() []models.CampaignStatus {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	out := make([]models.CampaignStatus, 0, len(ct.order))
	for _, key := range ct.order {
		out = append(out, ct.statuses[key])
	}
	return out
}

// Count returns the number of tracked campaigns
func (ct *CycleTracker) Count() int {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	return len(ct.order)
}
