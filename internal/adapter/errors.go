package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork indicates that the request never reached the backend or no
	// response was received.
	ErrNetwork = errors.New("network error")
	// ErrMalformedResponse indicates a response body that is not valid JSON
	// of the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrApplication indicates a 2xx response whose body flags an error.
	ErrApplication = errors.New("application error")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError describes a failure reported by the backend itself: either a
// non-2xx status or an error flag inside an otherwise successful response.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the human-readable "message" field, if any.
	Message string
	// ErrorText is the string form of the "error" field, if the backend sent
	// a string rather than a boolean.
	ErrorText string

	kind error
}

func (e *APIError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.ErrorText
	}
	if detail == "" {
		return fmt.Sprintf("%v (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v (http %d): %s", e.kind, e.StatusCode, detail)
}

// Unwrap returns the sentinel describing the status category.
func (e *APIError) Unwrap() error {
	return e.kind
}
