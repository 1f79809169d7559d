package returns

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an APIError.
type ErrorKind string

const (
	// KindHTTP is a non-2xx response; Status is set.
	KindHTTP ErrorKind = "http"
	// KindTransport is a network-level failure; Status is 0.
	KindTransport ErrorKind = "transport"
	// KindParse is a malformed body or a body whose shape does not match
	// the returns payload; Status is 0.
	KindParse ErrorKind = "parse"
)

// APIError is the single error type returned by Client.
//
// Fields:
//   - Kind: failure class (http, transport, parse).
//   - Status: HTTP status code for KindHTTP, 0 otherwise.
//   - Message: human-readable message suitable for display.
//   - Err: underlying cause, if any.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("returns api: %s (status %d)", e.Message, e.Status)
	}
	return "returns api: " + e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
