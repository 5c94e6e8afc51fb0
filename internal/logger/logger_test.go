package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"djwatch/internal/config"
)

func TestLoggerBuilder_Default(t *testing.T) {
	logger, err := NewLoggerBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestLoggerBuilder_InvalidMaxSize(t *testing.T) {
	builder := NewLoggerBuilder()
	builder.config.MaxSizeMB = 0

	_, err := builder.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max size must be positive")
}

func TestLoggerBuilder_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "djwatch.log")

	logger, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{
			LogLevel:  "info",
			LogFormat: "json",
			LogFile:   logFile,
		}).
		Build()
	require.NoError(t, err)

	logger.Info().Str("campaign", "summer-tour").Msg("cycle complete")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cycle complete"`)
	assert.Contains(t, string(data), "summer-tour")
}

func TestConfigConverter(t *testing.T) {
	converter := NewConfigConverter()
	logConfig := config.LogConfig{
		LogLevel:      "warn",
		LogFormat:     "json",
		LogFile:       "/tmp/djwatch-test.log",
		MaxLogSizeMB:  50,
		MaxLogBackups: 5,
	}

	loggerConfig := converter.ConvertConfig(logConfig)

	assert.Equal(t, zerolog.WarnLevel, loggerConfig.Level)
	assert.Equal(t, FormatJSON, loggerConfig.Format)
	assert.True(t, loggerConfig.FileEnabled())
	assert.Equal(t, "/tmp/djwatch-test.log", loggerConfig.FilePath)
	assert.Equal(t, 50, loggerConfig.MaxSizeMB)
	assert.Equal(t, 5, loggerConfig.MaxBackups)
}

func TestConfigConverter_Fallbacks(t *testing.T) {
	converter := NewConfigConverter()
	loggerConfig := converter.ConvertConfig(config.LogConfig{
		LogLevel:  "not-a-level",
		LogFormat: "not-a-format",
	})

	assert.Equal(t, zerolog.InfoLevel, loggerConfig.Level)
	assert.Equal(t, FormatConsole, loggerConfig.Format)
	assert.False(t, loggerConfig.FileEnabled())
	assert.Equal(t, config.DefaultMaxLogSizeMB, loggerConfig.MaxSizeMB)
	assert.Equal(t, config.DefaultMaxLogBackups, loggerConfig.MaxBackups)
}

func TestWriterStrategySelection(t *testing.T) {
	var buf bytes.Buffer

	t.Run("console json is passthrough", func(t *testing.T) {
		assert.Same(t, &buf, consoleStrategy(FormatJSON).CreateWriter(&buf))
	})

	t.Run("console default is colored", func(t *testing.T) {
		writer, ok := consoleStrategy(FormatConsole).CreateWriter(&buf).(zerolog.ConsoleWriter)
		require.True(t, ok)
		assert.False(t, writer.NoColor)
	})

	t.Run("console text drops color", func(t *testing.T) {
		writer, ok := consoleStrategy(FormatText).CreateWriter(&buf).(zerolog.ConsoleWriter)
		require.True(t, ok)
		assert.True(t, writer.NoColor)
	})

	t.Run("file json is passthrough", func(t *testing.T) {
		assert.Same(t, &buf, fileStrategy(FormatJSON).CreateWriter(&buf))
	})

	t.Run("file never colors", func(t *testing.T) {
		writer, ok := fileStrategy(FormatConsole).CreateWriter(&buf).(zerolog.ConsoleWriter)
		require.True(t, ok)
		assert.True(t, writer.NoColor)
	})
}

func TestParseFormat(t *testing.T) {
	converter := NewConfigConverter()
	assert.Equal(t, FormatJSON, converter.parseFormat("json"))
	assert.Equal(t, FormatConsole, converter.parseFormat("console"))
	assert.Equal(t, FormatText, converter.parseFormat("text"))
	assert.Equal(t, FormatConsole, converter.parseFormat("unknown-format"))
}

func TestLogFormatString(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "console", FormatConsole.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "console", LogFormat(99).String())
}
