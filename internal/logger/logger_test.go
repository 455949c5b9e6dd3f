package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestInfoWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	log.Info("catalog loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog loaded", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	log.Debug("noise")
	assert.Zero(t, buf.Len())
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	log.Error(errors.New("portal unreachable"), "billing request failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "portal unreachable", entry["error"])
}

func TestWithComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	log.WithComponent("catalog").Info("reloaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog", entry["component"])
}

func TestWithFieldsAddsStaticFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"design_id": "d-42"}).Info("slot updated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "d-42", entry["design_id"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.Info("ignored")
	log.Error(errors.New("x"), "ignored")
	assert.Nil(t, log.WithComponent("x"))
}
