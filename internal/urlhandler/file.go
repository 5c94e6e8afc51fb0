package urlhandler

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Custom errors for target file operations
var (
	ErrTargetFileNotFound = errors.New("target file not found")
	ErrTargetFilePerm     = errors.New("permission denied reading target file")
	ErrTargetFileEmpty    = errors.New("target file contains no URLs")
	ErrReadingTargetFile  = errors.New("error reading target file")
)

// ReadTargetsFromFile reads a newline-delimited target file. Lines are
// trimmed; empty lines and lines starting with '#' are skipped; duplicates
// are removed preserving first-seen order.
func ReadTargetsFromFile(filePath string, logger zerolog.Logger) ([]string, error) {
	fileLogger := logger.With().Str("file_path", filePath).Logger()

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrTargetFileNotFound, filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("error checking file %s: %w", filePath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("target path is a directory, not a file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrTargetFilePerm, filePath)
		}
		return nil, fmt.Errorf("%w: %s (cause: %v)", ErrReadingTargetFile, filePath, err)
	}
	defer file.Close()

	var urls []string
	seen := make(map[string]struct{})
	linesRead := 0
	skipped := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		linesRead++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if _, dup := seen[line]; dup {
			skipped++
			continue
		}
		seen[line] = struct{}{}
		urls = append(urls, line)
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("%w: %s (scan error: %v)", ErrReadingTargetFile, filePath, scanErr)
	}

	fileLogger.Info().
		Int("lines_read", linesRead).
		Int("urls", len(urls)).
		Int("duplicates_skipped", skipped).
		Msg("Finished reading target file")

	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTargetFileEmpty, filePath)
	}

	return urls, nil
}
