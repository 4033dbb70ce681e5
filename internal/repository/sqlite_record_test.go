package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learnhub/internal/testutil"
)

func TestRecordRepo_Get_NotFound(t *testing.T) {
	repo := NewSQLiteRecordRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordRepo_PutThenGet(t *testing.T) {
	repo := NewSQLiteRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	before := time.Now().UTC().Add(-time.Second)

	require.NoError(t, repo.Put(ctx, "learnhub-progress", []byte(`{"version":1}`)))

	rec, err := repo.Get(ctx, "learnhub-progress")
	require.NoError(t, err)
	assert.Equal(t, "learnhub-progress", rec.Key)
	assert.Equal(t, `{"version":1}`, string(rec.Value))
	assert.Equal(t, 13, rec.SizeBytes)
	assert.False(t, rec.UpdatedAt.Before(before.Truncate(time.Second)))
}

func TestRecordRepo_PutOverwrites(t *testing.T) {
	repo := NewSQLiteRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", []byte("first")))
	require.NoError(t, repo.Put(ctx, "k", []byte("second!")))

	rec, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second!", string(rec.Value))
	assert.Equal(t, 7, rec.SizeBytes)

	keys, err := repo.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}

func TestRecordRepo_PutNilStoresEmptyValue(t *testing.T) {
	repo := NewSQLiteRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", nil))
	rec, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, rec.Value)
	assert.Equal(t, 0, rec.SizeBytes)
}

func TestRecordRepo_ListKeysSorted(t *testing.T) {
	repo := NewSQLiteRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	keys, err := repo.ListKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, repo.Put(ctx, "b", []byte("2")))
	require.NoError(t, repo.Put(ctx, "a", []byte("1")))

	keys, err = repo.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}
