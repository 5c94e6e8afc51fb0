package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// WriterStrategy renders one log output stream
type WriterStrategy interface {
	CreateWriter(output io.Writer) io.Writer
}

// RawJSONStrategy passes zerolog's native JSON lines through untouched
type RawJSONStrategy struct{}

// CreateWriter returns the output unwrapped
func (RawJSONStrategy) CreateWriter(output io.Writer) io.Writer {
	return output
}

// PrettyStrategy renders human-readable lines via zerolog's console writer.
// NoColor disables ANSI color codes.
type PrettyStrategy struct {
	NoColor bool
}

// CreateWriter wraps the output in a console writer
func (ps PrettyStrategy) CreateWriter(output io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
		NoColor:    ps.NoColor,
	}
}

// consoleStrategy picks the stderr rendering for a format
func consoleStrategy(format LogFormat) WriterStrategy {
	switch format {
	case FormatJSON:
		return RawJSONStrategy{}
	case FormatText:
		return PrettyStrategy{NoColor: true}
	default:
		return PrettyStrategy{}
	}
}

// fileStrategy picks the rotating-file rendering for a format. File output
// never carries color codes.
func fileStrategy(format LogFormat) WriterStrategy {
	if format == FormatJSON {
		return RawJSONStrategy{}
	}
	return PrettyStrategy{NoColor: true}
}
