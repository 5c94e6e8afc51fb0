package config

const (
	// Monitor defaults
	DefaultCheckIntervalMinutes = 60
	DefaultHTTPTimeoutSeconds   = 10
	DefaultUserAgent            = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Storage defaults
	DefaultAzureContainer = "inflyte-dj-monitor"
	DefaultBlobNamePrefix = "dj_list"
	DefaultSnapshotDir    = "./data"

	// Notification defaults
	DefaultFromEmail = "noreply@inflyte.com"
	DefaultSMTPPort  = 587

	// Server defaults
	DefaultHTTPPort = 8080

	// Log defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)
