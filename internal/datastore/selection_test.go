package datastore

import (
	"context"
	"path/filepath"
	"testing"

	"djwatch/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotStore_Selection(t *testing.T) {
	t.Run("defaults to file store", func(t *testing.T) {
		cfg := config.NewDefaultStorageConfig()
		cfg.SnapshotDir = t.TempDir()

		store, err := NewSnapshotStore(context.Background(), cfg, zerolog.Nop())
		require.NoError(t, err)
		assert.IsType(t, &FileStore{}, store)
	})

	t.Run("sqlite path selects sqlite store", func(t *testing.T) {
		cfg := config.NewDefaultStorageConfig()
		cfg.SQLitePath = filepath.Join(t.TempDir(), "snapshots.db")

		store, err := NewSnapshotStore(context.Background(), cfg, zerolog.Nop())
		require.NoError(t, err)
		require.IsType(t, &SQLiteStore{}, store)
		store.(*SQLiteStore).Close()
	})
}
