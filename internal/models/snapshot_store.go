package models

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned when no snapshot exists for a target.
// Callers treat it identically to an empty snapshot (first-run path).
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore defines the interface for loading and saving per-target
// snapshots.
type SnapshotStore interface {
	// Load retrieves the last persisted snapshot for a target key.
	// Returns ErrSnapshotNotFound when the target has never been saved.
	Load(ctx context.Context, targetKey string) (Snapshot, error)

	// Save persists the snapshot for a target key, replacing any previous one.
	Save(ctx context.Context, targetKey string, snapshot Snapshot) error
}
