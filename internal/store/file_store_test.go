package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("token", "abc123"))
	value, ok := s.Get("token")
	require.True(t, ok)
	assert.Equal(t, "abc123", value)

	require.NoError(t, s.Delete("token"))
	_, ok = s.Get("token")
	assert.False(t, ok)

	// Deleting an absent key is fine.
	require.NoError(t, s.Delete("token"))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("user", `{"id":1}`))
	require.NoError(t, first.Set("token", "abc"))
	require.NoError(t, first.Delete("token"))

	second, err := NewFileStore(path)
	require.NoError(t, err)

	value, ok := second.Get("user")
	require.True(t, ok)
	assert.Equal(t, `{"id":1}`, value)

	_, ok = second.Get("token")
	assert.False(t, ok)
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("k", "v"))
	value, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", value)

	require.NoError(t, s.Delete("k"))
	_, ok = s.Get("k")
	assert.False(t, ok)
}
