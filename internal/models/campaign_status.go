package models

import "time"

// CampaignStatus is the per-target summary published by the monitor loop
// after each cycle and served read-only by the status endpoint. It never
// carries the record sets themselves.
type CampaignStatus struct {
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	TrackTitle  string     `json:"track_title,omitempty"`
	DJCount     int        `json:"dj_count"`
	LastChecked *time.Time `json:"last_checked,omitempty"`
}
