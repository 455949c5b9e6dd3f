package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures template or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RequestError represents a failed call to a hosted collaborator
// (auth provider, billing portal, generation service). The Service
// field names the collaborator; StatusCode is zero when the request
// never reached the server.
type RequestError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

// NewRequestError constructs a RequestError for the named service.
func NewRequestError(service string, statusCode int, message string, err error) error {
	return &RequestError{Service: service, StatusCode: statusCode, Message: message, Err: err}
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s request failed (%d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s request failed: %s", e.Service, e.Message)
}

// Unwrap exposes the underlying error.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError indicates a record is absent from the local store.
type NotFoundError struct {
	Kind string
	ID   string
}

// NewNotFoundError constructs a NotFoundError for the given record kind and id.
func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
