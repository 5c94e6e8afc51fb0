package datastore

import (
	"context"
	"path/filepath"
	"testing"

	"djwatch/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "snapshots.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	records := models.NewRecordSet(
		models.Supporter{Name: "Ana", Comment: "Great track!", Stars: 3},
		models.Supporter{Name: "Ben"},
	)

	require.NoError(t, store.Save(ctx, "summer-tour", models.NewSnapshot(records)))

	loaded, err := store.Load(ctx, "summer-tour")
	require.NoError(t, err)
	assert.Equal(t, records, loaded.Records)
}

func TestSQLiteStore_MissingSnapshot(t *testing.T) {
	store := newTestSQLiteStore(t)

	loaded, err := store.Load(context.Background(), "never-saved")
	assert.ErrorIs(t, err, models.ErrSnapshotNotFound)
	assert.True(t, loaded.Records.IsEmpty())
}

func TestSQLiteStore_SaveUpserts(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	first := models.NewRecordSet(models.Supporter{Name: "Ana"})
	second := models.NewRecordSet(models.Supporter{Name: "Ben"})

	require.NoError(t, store.Save(ctx, "summer-tour", models.NewSnapshot(first)))
	require.NoError(t, store.Save(ctx, "summer-tour", models.NewSnapshot(second)))

	loaded, err := store.Load(ctx, "summer-tour")
	require.NoError(t, err)
	assert.Equal(t, second, loaded.Records)
}

func TestSQLiteStore_TargetsAreIndependent(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tour-one", models.NewSnapshot(models.NewRecordSet(
		models.Supporter{Name: "Ana"},
	))))
	require.NoError(t, store.Save(ctx, "tour-two", models.NewSnapshot(models.NewRecordSet(
		models.Supporter{Name: "Ben"},
	))))

	one, err := store.Load(ctx, "tour-one")
	require.NoError(t, err)
	two, err := store.Load(ctx, "tour-two")
	require.NoError(t, err)

	assert.True(t, one.Records.ContainsName("Ana"))
	assert.False(t, one.Records.ContainsName("Ben"))
	assert.True(t, two.Records.ContainsName("Ben"))
}
