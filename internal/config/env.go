package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"djwatch/internal/common"
)

// ApplyEnvOverrides overlays environment variables onto the configuration.
// Environment variables take precedence over config-file values. A set but
// unparseable integer variable returns a ConfigurationError so startup
// aborts instead of silently running on the default.
func ApplyEnvOverrides(cfg *Config) error {
	overrideString("AZURE_STORAGE_ACCOUNT", &cfg.StorageConfig.AzureStorageAccount)
	overrideString("AZURE_STORAGE_ACCESS_KEY", &cfg.StorageConfig.AzureStorageAccessKey)
	overrideString("AZURE_STORAGE_SAS_TOKEN", &cfg.StorageConfig.AzureStorageSASToken)
	overrideString("AZURE_STORAGE_CONTAINER", &cfg.StorageConfig.AzureStorageContainer)
	overrideString("AZURE_BLOB_NAME_PREFIX", &cfg.StorageConfig.BlobNamePrefix)
	overrideString("SNAPSHOT_DIR", &cfg.StorageConfig.SnapshotDir)
	overrideString("SQLITE_PATH", &cfg.StorageConfig.SQLitePath)

	overrideString("MAILGUN_API_KEY", &cfg.NotificationConfig.MailgunAPIKey)
	overrideString("MAILGUN_DOMAIN", &cfg.NotificationConfig.MailgunDomain)
	overrideString("RECIPIENT_EMAIL", &cfg.NotificationConfig.RecipientEmail)
	overrideString("FROM_EMAIL", &cfg.NotificationConfig.FromEmail)
	overrideString("SMTP_HOST", &cfg.NotificationConfig.SMTPHost)
	if err := overrideInt("SMTP_PORT", &cfg.NotificationConfig.SMTPPort); err != nil {
		return err
	}
	overrideString("SMTP_USERNAME", &cfg.NotificationConfig.SMTPUsername)
	overrideString("SMTP_PASSWORD", &cfg.NotificationConfig.SMTPPassword)

	if err := overrideInt("CHECK_INTERVAL_MINUTES", &cfg.MonitorConfig.CheckIntervalMinutes); err != nil {
		return err
	}
	if err := overrideInt("HTTP_PORT", &cfg.ServerConfig.Port); err != nil {
		return err
	}

	overrideString("LOG_LEVEL", &cfg.LogConfig.LogLevel)
	overrideString("LOG_FORMAT", &cfg.LogConfig.LogFormat)
	overrideString("LOG_FILE", &cfg.LogConfig.LogFile)

	if urls := os.Getenv("INFLYTE_URLS"); urls != "" {
		cfg.MonitorConfig.TargetURLs = splitURLList(urls)
	}

	return nil
}

// overrideString replaces the target when the environment variable is non-empty
func overrideString(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// overrideInt replaces the target when the environment variable is set.
// An unparseable value is a configuration error, not a silent no-op.
func overrideInt(key string, target *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return common.NewConfigurationError("env", key, fmt.Sprintf("must be a valid number, got '%s'", v))
	}

	*target = n
	return nil
}

// splitURLList splits a comma-separated URL list, trimming and dropping empties
func splitURLList(raw string) []string {
	parts := strings.Split(raw, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
