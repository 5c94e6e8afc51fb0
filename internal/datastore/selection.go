package datastore

import (
	"context"

	"djwatch/internal/config"
	"djwatch/internal/models"

	"github.com/rs/zerolog"
)

// NewSnapshotStore selects the snapshot backend from storage configuration:
// Azure Blob Storage when account credentials are present, SQLite when a
// database path is set, local JSON files otherwise.
func NewSnapshotStore(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (models.SnapshotStore, error) {
	switch {
	case cfg.AzureConfigured():
		return NewAzureBlobStore(ctx, cfg, logger)
	case cfg.SQLitePath != "":
		return NewSQLiteStore(cfg.SQLitePath, logger)
	default:
		return NewFileStore(cfg.SnapshotDir, cfg.BlobNamePrefix, logger)
	}
}
