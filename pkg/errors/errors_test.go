package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorMessage(t *testing.T) {
	err := NewParseError("catalog/web_hero.yaml", 12, io.ErrUnexpectedEOF)
	assert.Equal(t, "parse error: catalog/web_hero.yaml:12: unexpected EOF", err.Error())

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestParseErrorWithoutLine(t *testing.T) {
	err := NewParseError("catalog/web_hero.yaml", 0, errors.New("boom"))
	assert.Equal(t, "parse error: catalog/web_hero.yaml: boom", err.Error())
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("slots", "slot type must be one of text, image, logo, cta", nil)
	assert.Equal(t, "validation error: slots: slot type must be one of text, image, logo, cta", err.Error())

	noField := NewValidationError("", "template is nil", nil)
	assert.Equal(t, "validation error: template is nil", noField.Error())
}

func TestRequestErrorMessage(t *testing.T) {
	err := NewRequestError("auth", 401, "invalid credentials", nil)
	assert.Equal(t, "auth request failed (401): invalid credentials", err.Error())

	cause := errors.New("dial tcp: connection refused")
	transport := NewRequestError("billing", 0, cause.Error(), cause)
	assert.Equal(t, "billing request failed: dial tcp: connection refused", transport.Error())
	assert.True(t, errors.Is(transport, cause))
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError("brand", "b-123")
	assert.Equal(t, "brand not found: b-123", err.Error())
}
