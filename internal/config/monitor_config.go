package config

import "time"

// MonitorConfig defines configuration for the monitoring loop
type MonitorConfig struct {
	CheckIntervalMinutes int      `json:"check_interval_minutes,omitempty" yaml:"check_interval_minutes,omitempty" validate:"omitempty,min=1"`
	HTTPTimeoutSeconds   int      `json:"http_timeout_seconds,omitempty" yaml:"http_timeout_seconds,omitempty" validate:"omitempty,min=1"`
	UserAgent            string   `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	TargetURLs           []string `json:"target_urls,omitempty" yaml:"target_urls,omitempty" validate:"omitempty,urls"`
	TargetsFile          string   `json:"targets_file,omitempty" yaml:"targets_file,omitempty"`
}

// NewDefaultMonitorConfig creates default monitor configuration
func NewDefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		CheckIntervalMinutes: DefaultCheckIntervalMinutes,
		HTTPTimeoutSeconds:   DefaultHTTPTimeoutSeconds,
		UserAgent:            DefaultUserAgent,
		TargetURLs:           []string{},
		TargetsFile:          "",
	}
}

// CheckInterval returns the check interval as a duration
func (mc MonitorConfig) CheckInterval() time.Duration {
	return time.Duration(mc.CheckIntervalMinutes) * time.Minute
}

// HTTPTimeout returns the fetch timeout as a duration
func (mc MonitorConfig) HTTPTimeout() time.Duration {
	return time.Duration(mc.HTTPTimeoutSeconds) * time.Second
}
