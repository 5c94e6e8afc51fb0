package logger

import (
	"github.com/rs/zerolog"

	"djwatch/internal/config"
)

// New creates a root logger from the application log configuration
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
