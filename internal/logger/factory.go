package logger

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory builds the console and rotating-file writers of a logger
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates the stderr writer for the given format
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	return consoleStrategy(format).CreateWriter(os.Stderr)
}

// CreateFileWriter creates a file writer with rotation
func (wf *WriterFactory) CreateFileWriter(cfg LoggerConfig) io.Writer {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		// Fall back to console-only if the log directory cannot be created;
		// lumberjack would otherwise fail on every write.
		return io.Discard
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: cfg.MaxBackups,
	}

	return fileStrategy(cfg.Format).CreateWriter(rotator)
}
