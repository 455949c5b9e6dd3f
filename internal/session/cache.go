package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

// FileCache persists the session between CLI invocations. Tokens are
// stored with owner-only permissions.
type FileCache struct {
	path string
}

// NewFileCache builds a cache at path.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

type cachedSession struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsAdmin     bool      `json:"is_admin"`
}

// Save writes the session to disk.
func (c *FileCache) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	data, err := json.MarshalIndent(cachedSession(s), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}

// Load reads the cached session. Expired or missing sessions return a
// NotFoundError.
func (c *FileCache) Load() (Session, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, brandforgeerrors.NewNotFoundError("session", c.path)
		}
		return Session{}, fmt.Errorf("reading session file: %w", err)
	}

	var cached cachedSession
	if err := json.Unmarshal(data, &cached); err != nil {
		return Session{}, fmt.Errorf("decoding session file: %w", err)
	}

	s := Session(cached)
	if s.Expired() {
		return Session{}, brandforgeerrors.NewNotFoundError("session", c.path)
	}
	return s, nil
}

// Clear removes the cached session.
func (c *FileCache) Clear() error {
	err := os.Remove(c.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
