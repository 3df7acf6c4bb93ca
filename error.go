package rhttp

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInvalidPattern is returned from registration when the pattern is empty.
// It is the only error that crosses the package's API boundary: every
// request-time failure mode degrades to a status code instead.
var ErrInvalidPattern = errors.New("rhttp: pattern must be a non-empty string")

// ErrBodyAbsent classifies a request body that was missing or empty.
var ErrBodyAbsent = errors.New("rhttp: request body absent")

// ErrBodyMalformed classifies a request body that was not valid JSON.
var ErrBodyMalformed = errors.New("rhttp: request body is not valid JSON")

// HandlerError wraps the failure of a matched handler with the route it
// matched. It is what the dispatcher hands to the [Logger]; the client only
// ever sees the 500 status.
type HandlerError struct {
	method  string
	pattern string
	err     error
}

func newHandlerError(method, pattern string, err error) *HandlerError {
	return &HandlerError{method: method, pattern: pattern, err: err}
}

// Method returns the HTTP method of the failed route.
func (e *HandlerError) Method() string { return e.method }

// Pattern returns the pattern of the failed route.
func (e *HandlerError) Pattern() string { return e.pattern }

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.method, e.pattern, e.err)
}

func (e *HandlerError) Unwrap() error { return e.err }
