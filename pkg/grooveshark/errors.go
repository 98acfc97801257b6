package grooveshark

import (
	"errors"
	"fmt"
)

// TransportError is returned when the request could not be completed:
// the connection failed, timed out, was cancelled, or the body could not
// be read. Nothing is retried.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("grooveshark: %s: transport error: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError is returned for any HTTP status other than 200.
type ServerError struct {
	Method     string
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("grooveshark: %s: server returned status %d", e.Method, e.StatusCode)
}

// DecodeError is returned when a 200 response body is not valid JSON.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("grooveshark: %s: failed to decode response: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Error is a fault reported by the service inside a successful HTTP
// response, in its "errors" array.
type Error struct {
	Code    int    // Service fault code
	Message string // Message from the service
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("grooveshark: fault %d: %s", e.Code, e.Message)
}

// Is reports whether target is a service fault with the same code.
//
// This allows errors.Is() to work with *Error values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Predefined errors for common cases.
var (
	// ErrMissingAPIKey is returned by NewClient when no application key is set.
	ErrMissingAPIKey = errors.New("grooveshark: APIKey is required")

	// ErrMissingAPISecret is returned by NewClient when no shared secret is set.
	ErrMissingAPISecret = errors.New("grooveshark: APISecret is required")

	// ErrAuthenticationFailed is returned when the service answers an
	// authentication call without identifying a user.
	ErrAuthenticationFailed = errors.New("grooveshark: authentication failed")

	// ErrNoResult is returned by DecodeResult when the response carries
	// neither a result nor a fault.
	ErrNoResult = errors.New("grooveshark: response has no result")
)
