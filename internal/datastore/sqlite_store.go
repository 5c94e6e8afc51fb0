package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"djwatch/internal/common"
	"djwatch/internal/models"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists snapshots in a single SQLite database, one row per
// target key.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// snapshot schema exists.
func NewSQLiteStore(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, common.WrapError(err, "failed to create snapshot database directory: "+dir)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(err, "failed to open snapshot database: "+path)
	}

	store := &SQLiteStore{
		db:     db,
		logger: logger.With().Str("component", "SQLiteStore").Logger(),
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	store.logger.Info().Str("path", path).Msg("Snapshot database initialized")
	return store, nil
}

// initSchema creates the snapshots table if it doesn't already exist
func (ss *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS snapshots (
		campaign TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	if _, err := ss.db.Exec(query); err != nil {
		return common.WrapError(err, "failed to initialize snapshot schema")
	}
	return nil
}

// Load reads the snapshot row for a target key. A missing row maps to
// models.ErrSnapshotNotFound.
func (ss *SQLiteStore) Load(ctx context.Context, targetKey string) (models.Snapshot, error) {
	var payload []byte
	err := ss.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE campaign = ?`, targetKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ss.logger.Debug().Str("campaign", targetKey).Msg("No snapshot row yet")
			return models.NewSnapshot(nil), models.ErrSnapshotNotFound
		}
		return models.Snapshot{}, common.NewStoreError("load", targetKey, err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return models.Snapshot{}, common.NewStoreError("load", targetKey, err)
	}

	return snapshot, nil
}

// Save upserts the snapshot row for a target key
func (ss *SQLiteStore) Save(ctx context.Context, targetKey string, snapshot models.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return common.NewStoreError("save", targetKey, err)
	}

	query := `
	INSERT INTO snapshots (campaign, payload, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(campaign) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`
	if _, err := ss.db.ExecContext(ctx, query, targetKey, payload, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return common.NewStoreError("save", targetKey, err)
	}

	ss.logger.Debug().
		Str("campaign", targetKey).
		Int("records", snapshot.Records.Len()).
		Msg("Saved snapshot row")
	return nil
}

// Close closes the underlying database connection
func (ss *SQLiteStore) Close() error {
	return ss.db.Close()
}
