package sqlite

import (
	"context"
	"testing"

	"github.com/sportarr/sportarr/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	store := initSqlite(t, context.Background())
	assert.NotNil(t, store)
}

func initSqlite(t *testing.T, ctx context.Context) storage.Storage {
	store, err := New(":memory:")
	require.NoError(t, err)

	schemas, err := storage.ReadSchemaFiles("./schema/schema.sql")
	require.NoError(t, err)

	err = store.Init(ctx, schemas...)
	require.NoError(t, err)
	return store
}
