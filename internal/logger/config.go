package logger

import (
	"github.com/rs/zerolog"

	"djwatch/internal/config"
)

// LoggerConfig is the resolved logger setup derived from config.LogConfig.
// Console output is always on; file output activates when FilePath is set.
type LoggerConfig struct {
	Level      zerolog.Level
	Format     LogFormat
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// FileEnabled reports whether rotating file output is configured
func (lc LoggerConfig) FileEnabled() bool {
	return lc.FilePath != ""
}

// LogFormat represents available log formats
type LogFormat int

const (
	FormatConsole LogFormat = iota
	FormatJSON
	FormatText
)

// String returns string representation of LogFormat
func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// DefaultLoggerConfig returns the setup used before WithConfig is applied
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		MaxSizeMB:  config.DefaultMaxLogSizeMB,
		MaxBackups: config.DefaultMaxLogBackups,
	}
}
