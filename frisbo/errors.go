package frisbo

import (
	"errors"
	"fmt"
)

// APIError represents an error response from the Frisbo API. StatusCode is
// zero when the request never produced an HTTP response (transport failure).
type APIError struct {
	Message    string
	StatusCode int
	// Response holds the decoded JSON error payload, if the body was valid JSON.
	Response map[string]any
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("frisbo: %s", e.Message)
	}
	return fmt.Sprintf("frisbo: status %d: %s", e.StatusCode, e.Message)
}

// NotFoundError is returned when the API responds with 404.
type NotFoundError struct {
	APIError
}

// RateLimitError is returned when the API responds with 429.
type RateLimitError struct {
	APIError
}

// AuthenticationError is returned when authentication fails, whether
// because credentials are missing, the login call was rejected, or the
// login request failed on the wire.
type AuthenticationError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("frisbo: authentication failed: %s", e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// ValidationError reports a client-side payload validation failure. The
// transport layer never constructs one; it exists for callers that validate
// request bodies before dispatch.
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("frisbo: validation failed: %s", e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsRateLimited reports whether err is a 429 from the API.
func IsRateLimited(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}
