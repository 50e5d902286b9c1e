package store

import (
	"path/filepath"
	"testing"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*KVStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "shelf.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestGetMissingKey(t *testing.T) {
	s, _ := setupTestStore(t)

	v, ok := s.Get(domain.KeyMediaData)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSetThenGet(t *testing.T) {
	s, _ := setupTestStore(t)

	require.NoError(t, s.Set(domain.KeyTheme, "dark"))

	v, ok := s.Get(domain.KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestSetOverwrites(t *testing.T) {
	s, _ := setupTestStore(t)

	require.NoError(t, s.Set(domain.KeyTheme, "dark"))
	require.NoError(t, s.Set(domain.KeyTheme, "light"))

	v, _ := s.Get(domain.KeyTheme)
	assert.Equal(t, "light", v)
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(domain.KeyMediaData, `{"books":[],"movies":[]}`))
	require.NoError(t, s.Set(domain.KeyBookAchievements, `["book_first_add"]`))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok := reopened.Get(domain.KeyMediaData)
	require.True(t, ok)
	assert.Equal(t, `{"books":[],"movies":[]}`, v)
	assert.Equal(t, path, reopened.Path())
	assert.Equal(t, []string{domain.KeyBookAchievements, domain.KeyMediaData}, reopened.Keys())
}

func TestDelete(t *testing.T) {
	s, _ := setupTestStore(t)

	require.NoError(t, s.Set(domain.KeyTheme, "dark"))
	require.NoError(t, s.Delete(domain.KeyTheme))

	_, ok := s.Get(domain.KeyTheme)
	assert.False(t, ok)
	assert.Empty(t, s.Keys())
}

func TestMemoryOnlyMode(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)

	require.NoError(t, s.Set("k", "v"))
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, "", s.Path())
	assert.NoError(t, s.Close())
}
