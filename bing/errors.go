package bing

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidUsage is returned synchronously when an async search is started
// without a completion handler.
var ErrInvalidUsage = errors.New("completion handler required")

// TransportError reports a failure to complete the HTTP exchange: connection
// errors, timeouts and cancellation.
type TransportError struct {
	Method string
	URI    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URI, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request was aborted by the configured timeout.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(e.Err, &te) && te.Timeout()
}

// RemoteServiceError is synthesized when the service answers with a body
// that is not JSON, typically an authentication or malformed query message.
type RemoteServiceError struct {
	StatusCode int
	Message    string
}

func (e *RemoteServiceError) Error() string {
	return e.Message
}
