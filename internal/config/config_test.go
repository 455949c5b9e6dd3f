package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.HumanLogs)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.TemplatesDir)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
db_path: /tmp/bf.db
templates_dir: /tmp/templates
export_dir: /tmp/exports
services:
  auth_url: https://auth.example
  auth_api_key: anon-key
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/bf.db", cfg.DBPath)
	assert.Equal(t, "https://auth.example", cfg.Services.AuthURL)
	assert.Equal(t, "anon-key", cfg.Services.AuthAPIKey)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/bf.db
templates_dir: /tmp/templates
export_dir: /tmp/exports
services:
  billing_url: https://file.example
`)

	t.Setenv("BRANDFORGE_BILLING_URL", "https://env.example")
	t.Setenv("BRANDFORGE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.Services.BillingURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "log_level: [unclosed")

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *brandforgeerrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadRejectsBadServiceURL(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/bf.db
templates_dir: /tmp/templates
export_dir: /tmp/exports
services:
  auth_url: not-a-url
`)

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *brandforgeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "authurl")
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, `
log_level: loud
db_path: /tmp/bf.db
templates_dir: /tmp/templates
export_dir: /tmp/exports
`)

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *brandforgeerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
