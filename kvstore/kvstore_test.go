package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore(t *testing.T) {
	t.Parallel()

	store := NewMemStore()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", "v1"))
	require.NoError(t, store.Set("k", "v2"))

	v, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Clear("k"))
	require.NoError(t, store.Clear("k"))

	_, ok, err = store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", "v1"))
	require.NoError(t, store.Set("k", "v2"))

	v, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, store.Clear("k"))
	_, ok, err = store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Close())
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("app_lang", "EN"))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get("app_lang")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "EN", v)
}

func TestSQLiteStoreCreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "kv.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("k", "v"))
}
