package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"djwatch/internal/common"
	"djwatch/internal/models"

	"github.com/rs/zerolog"
)

// FileStore persists snapshots as JSON documents on the local filesystem,
// one file per target named {prefix}_{targetKey}.json.
type FileStore struct {
	dir    string
	prefix string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed snapshot store rooted at dir
func NewFileStore(dir, prefix string, logger zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, common.WrapError(err, "failed to create snapshot directory: "+dir)
	}

	return &FileStore{
		dir:    dir,
		prefix: prefix,
		logger: logger.With().Str("component", "FileStore").Logger(),
	}, nil
}

// snapshotPath returns the document path for a target key
func (fs *FileStore) snapshotPath(targetKey string) string {
	return filepath.Join(fs.dir, fmt.Sprintf("%s_%s.json", fs.prefix, targetKey))
}

// Load reads the snapshot document for a target key. A missing file maps to
// models.ErrSnapshotNotFound.
func (fs *FileStore) Load(_ context.Context, targetKey string) (models.Snapshot, error) {
	path := fs.snapshotPath(targetKey)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fs.logger.Debug().Str("path", path).Msg("No snapshot on disk yet")
			return models.NewSnapshot(nil), models.ErrSnapshotNotFound
		}
		return models.Snapshot{}, common.NewStoreError("load", targetKey, err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return models.Snapshot{}, common.NewStoreError("load", targetKey, err)
	}

	return snapshot, nil
}

// Save writes the snapshot document for a target key, replacing any
// previous one.
func (fs *FileStore) Save(_ context.Context, targetKey string, snapshot models.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return common.NewStoreError("save", targetKey, err)
	}

	path := fs.snapshotPath(targetKey)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return common.NewStoreError("save", targetKey, err)
	}

	fs.logger.Debug().
		Str("path", path).
		Int("records", snapshot.Records.Len()).
		Msg("Saved snapshot to disk")
	return nil
}
