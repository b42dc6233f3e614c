package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgol/internal/engine"
)

func openTestCache(t *testing.T) *BoltCache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.db")
	c, err := NewBoltCache(path)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestBoltCacheMissReturnsNotFound(t *testing.T) {
	c := openTestCache(t)
	_, ok, err := c.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoltCacheIdempotence(t *testing.T) {
	c := openTestCache(t)
	result := engine.GameResult{NumGenerations: 5, Score: 3, StopReason: engine.StopExtinction}

	require.NoError(t, c.Put("word", result))

	got, ok, err := c.Get("word")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, result, got)

	// Second put with a different value is a no-op: the first write wins.
	require.NoError(t, c.Put("word", engine.GameResult{NumGenerations: 99, Score: 99, StopReason: engine.StopReachedMaxGenerat}))

	got, ok, err = c.Get("word")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, result, got)
}

func TestBoltCacheAllReturnsEveryEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	c, err := NewBoltCache(path)
	require.NoError(t, err)
	require.NoError(t, c.Put("alpha", engine.GameResult{NumGenerations: 1, Score: 0, StopReason: engine.StopExtinction}))
	require.NoError(t, c.Put("beta", engine.GameResult{NumGenerations: 2, Score: 1, StopReason: engine.StopPersistentState}))
	require.NoError(t, c.Close())

	reader, err := OpenReadOnly(path)
	require.NoError(t, err)
	t.Cleanup(func() { reader.Close() })

	entries, err := reader.All()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, engine.StopExtinction, entries["alpha"].StopReason)
	assert.Equal(t, engine.StopPersistentState, entries["beta"].StopReason)
}

func TestOpenReadOnlyMissingFileErrors(t *testing.T) {
	_, err := OpenReadOnly(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
}

func TestBoltCacheIsolatesDistinctWords(t *testing.T) {
	c := openTestCache(t)
	require.NoError(t, c.Put("alpha", engine.GameResult{NumGenerations: 1, Score: 0, StopReason: engine.StopExtinction}))
	require.NoError(t, c.Put("beta", engine.GameResult{NumGenerations: 2, Score: 1, StopReason: engine.StopPersistentState}))

	alpha, ok, err := c.Get("alpha")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, engine.StopExtinction, alpha.StopReason)

	beta, ok, err := c.Get("beta")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, engine.StopPersistentState, beta.StopReason)
}
