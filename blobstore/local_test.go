package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreLifecycle(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	data := []byte("set,element\nA,1\n")
	require.NoError(t, store.Put(ctx, "data/sets.csv", data))
	require.NoError(t, store.Put(ctx, "data/other.json", []byte("{}")))
	require.NoError(t, store.Put(ctx, "top.csv", []byte("x")))

	r, err := store.Open(ctx, "data/sets.csv")
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "data/")
	require.NoError(t, err)
	assert.Equal(t, []string{"data/other.json", "data/sets.csv"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Overwrite
	require.NoError(t, store.Put(ctx, "top.csv", []byte("y")))
	r, err = store.Open(ctx, "top.csv")
	require.NoError(t, err)
	got, err = io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "y", string(got))

	require.NoError(t, store.Delete(ctx, "data/sets.csv"))
	require.NoError(t, store.Delete(ctx, "data/sets.csv"))

	_, err = store.Open(ctx, "data/sets.csv")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	testStoreLifecycle(t, NewLocalStore(tmpDir))

	// Verify file exists on disk
	_, err := os.Stat(filepath.Join(tmpDir, "data", "other.json"))
	require.NoError(t, err)
}

func TestMemoryStore_Lifecycle(t *testing.T) {
	testStoreLifecycle(t, NewMemoryStore())
}

func TestMemoryStore_PutCopies(t *testing.T) {
	store := NewMemoryStore()
	data := []byte("abc")
	require.NoError(t, store.Put(context.Background(), "k", data))
	data[0] = 'z'

	r, err := store.Open(context.Background(), "k")
	require.NoError(t, err)
	got, _ := io.ReadAll(r)
	assert.Equal(t, "abc", string(got))
}

func TestLocalStore_InvalidName(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"../escape.csv", "/abs.csv", ""} {
		assert.Error(t, store.Put(ctx, name, []byte("x")), name)
		_, err := store.Open(ctx, name)
		assert.Error(t, err, name)
	}
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "missing"))
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_CanceledContext(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "a.csv", nil), context.Canceled)
	_, err := store.Open(ctx, "a.csv")
	assert.ErrorIs(t, err, context.Canceled)
}
