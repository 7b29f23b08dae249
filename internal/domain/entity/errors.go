package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps network level failures (connection refused, bad URL).
	ErrTransport = errors.New("transport failure")
	// ErrTimeout is reported when a call exceeds the configured timeout.
	ErrTimeout = errors.New("request timed out")
	// ErrElementNotFound is returned when the widget document lacks an element.
	ErrElementNotFound = errors.New("element not found")
	// ErrInvalidCallback is reported when a nil function is queued.
	ErrInvalidCallback = errors.New("invalid callback function")
	// ErrPreviewHandlerMissing is logged when preview mode has no handler to route to.
	ErrPreviewHandlerMissing = errors.New("preview handler not available")
)

// StatusError is delivered to the error continuation for non-2xx responses.
// It keeps the full response so callers can inspect body and headers.
type StatusError struct {
	Response *Response
}

// Error implements error.
func (e *StatusError) Error() string {
	if e.Response == nil {
		return "player returned no response"
	}
	return fmt.Sprintf("player returned HTTP %d", e.Response.StatusCode)
}

// StatusCode returns the response status, or 0 when no response exists.
func (e *StatusError) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}
