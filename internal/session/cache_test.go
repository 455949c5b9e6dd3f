package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

func TestFileCacheRoundTrip(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "session.json"))

	saved := Session{
		UserID:      "u-1",
		Email:       "dana@acme.example",
		AccessToken: "tok-123",
		ExpiresAt:   time.Now().Add(time.Hour),
		IsAdmin:     true,
	}
	require.NoError(t, cache.Save(saved))

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, saved.UserID, loaded.UserID)
	assert.Equal(t, saved.AccessToken, loaded.AccessToken)
	assert.True(t, loaded.IsAdmin)
}

func TestFileCacheMissing(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "session.json"))

	_, err := cache.Load()
	var notFound *brandforgeerrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFileCacheExpiredSessionIsNotReturned(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, cache.Save(Session{
		UserID:      "u-1",
		AccessToken: "tok-123",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}))

	_, err := cache.Load()
	assert.Error(t, err)
}

func TestFileCacheClear(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, cache.Save(Session{UserID: "u-1", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, cache.Clear())
	require.NoError(t, cache.Clear())

	_, err := cache.Load()
	assert.Error(t, err)
}
