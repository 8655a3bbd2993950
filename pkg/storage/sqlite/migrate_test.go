package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sportarr/sportarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigration_FreshDatabase(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(tmpFile)
	require.NoError(t, err)

	sqliteStore := store.(*SQLite)
	err = sqliteStore.RunMigrations()
	require.NoError(t, err)

	version, dirty, err := sqliteStore.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	_, err = store.CreateLeague(ctx, model.League{
		SportsDbID: "4328",
		Name:       "English Premier League",
	})
	require.NoError(t, err)

	leagues, err := store.ListLeagues(ctx)
	require.NoError(t, err)
	assert.Len(t, leagues, 1)
}

func TestMigration_Idempotent(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.db")

	store, err := New(tmpFile)
	require.NoError(t, err)

	sqliteStore := store.(*SQLite)
	require.NoError(t, sqliteStore.RunMigrations())
	require.NoError(t, sqliteStore.RunMigrations())
}
