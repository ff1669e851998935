package chatsdk

import (
	"fmt"
	"net/http"
	"strconv"
)

// ============================================================================
// Error Taxonomy
// ============================================================================
//
// Every failed exchange produces exactly one of the error kinds below. The
// set is closed: callers can match exhaustively with errors.As. Transport
// failures are outside the taxonomy and pass through unchanged.

// AuthError reports that the server rejected the supplied credentials
// (HTTP 401). The message is fixed and independent of the response body.
type AuthError struct{}

// Error implements the error interface.
func (*AuthError) Error() string {
	return "Unauthorized"
}

// InvalidResponseError reports that a success-status response carried a
// body that could not be decoded. It usually indicates a protocol or
// version mismatch between client and server and is fatal for the call.
type InvalidResponseError struct {
	// Cause is the underlying decode error
	Cause error
}

// Error returns a stable message independent of the underlying decoder's
// own error text. The decoder error remains available via Unwrap.
func (*InvalidResponseError) Error() string {
	return "invalid response: body is not well-formed JSON"
}

// Unwrap exposes the underlying decode error.
func (e *InvalidResponseError) Unwrap() error {
	return e.Cause
}

// APIError reports a server-side rejection. Message combines the server's
// human-readable text with a bracketed identifier; ErrorType carries the
// server-supplied error identifier when one was present, for programmatic
// branching (e.g. "error-field-unavailable"), and is empty otherwise.
type APIError struct {
	// StatusCode is the HTTP status code of the failed exchange
	StatusCode int

	// Message is the composed human-readable message
	Message string

	// ErrorType is the optional server-supplied error identifier
	ErrorType string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// ============================================================================
// Error Classifier
// ============================================================================

// classify maps a non-success envelope to its error kind. Rules are checked
// in order and the first match wins:
//
//  1. status 401 is an AuthError regardless of body content. Servers may
//     return body-less or oddly shaped 401s that must never be mistaken
//     for a decode failure or a generic API error.
//  2. a decode failure wraps into InvalidResponseError.
//  3. a decoded error envelope composes into an APIError, with the
//     server's errorType (or the raw status when absent) in brackets.
//  4. anything else is a generic APIError.
func classify(env envelope) error {
	switch {
	case env.status == http.StatusUnauthorized:
		return &AuthError{}

	case env.decodeErr != nil:
		return &InvalidResponseError{Cause: env.decodeErr}

	case env.apiErr != nil:
		identifier := env.apiErr.ErrorType
		if identifier == "" {
			identifier = strconv.Itoa(env.status)
		}
		return &APIError{
			StatusCode: env.status,
			Message:    fmt.Sprintf("%s [%s]", env.apiErr.Error, identifier),
			ErrorType:  env.apiErr.ErrorType,
		}

	default:
		return &APIError{
			StatusCode: env.status,
			Message:    "request failed",
		}
	}
}
