package handler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgol/internal/cache"
	"cgol/internal/engine"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store, err := cache.NewBoltCache(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store, engine.DefaultParams())
}

func TestHandleWordEmptyRejected(t *testing.T) {
	h := newTestHandler(t)
	_, err := h.HandleWord("")
	require.Error(t, err)
	herr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrEmptyWord, herr.Kind)
}

func TestHandleWordNonAsciiRejected(t *testing.T) {
	h := newTestHandler(t)
	_, err := h.HandleWord("café")
	require.Error(t, err)
	herr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrNonAscii, herr.Kind)
}

func TestHandleWordCachesOnMiss(t *testing.T) {
	h := newTestHandler(t)
	first, err := h.HandleWord("A")
	require.NoError(t, err)

	second, ok, err := h.store.Get("A")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestHandleWordHitReturnsStoredVerbatim(t *testing.T) {
	h := newTestHandler(t)
	stored := engine.GameResult{NumGenerations: 42, Score: 7, StopReason: engine.StopRepeatedPattern}
	require.NoError(t, h.store.Put("preseeded", stored))

	got, err := h.HandleWord("preseeded")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestHandleWordSeedTooLarge(t *testing.T) {
	h := New(nil, engine.Params{Rows: 3, Cols: 3, MaxGenerations: 10, RepeatThreshold: 10})
	_, err := h.HandleWord("A")
	require.Error(t, err)
	herr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrSeedTooLarge, herr.Kind)
}

func TestHandleWordToleratesMissingCache(t *testing.T) {
	h := New(nil, engine.DefaultParams())
	result, err := h.HandleWord("A")
	require.NoError(t, err)
	assert.Equal(t, engine.StopExtinction, result.StopReason)
}
