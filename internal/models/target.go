package models

import "djwatch/internal/urlhandler"

// Target is one monitored page plus its derived identifier. The identifier
// is the storage key for snapshots; DisplayTitle is best-effort page title
// text used only in notifications and status output.
type Target struct {
	Identifier   string
	SourceURL    string
	DisplayTitle string
}

// NewTarget constructs a target for the given URL, deriving its identifier
func NewTarget(rawURL string) Target {
	return Target{
		Identifier: urlhandler.CampaignKey(rawURL),
		SourceURL:  rawURL,
	}
}

// DisplayName returns the display title when known, else the identifier
func (t Target) DisplayName() string {
	if t.DisplayTitle != "" {
		return t.DisplayTitle
	}
	return t.Identifier
}
