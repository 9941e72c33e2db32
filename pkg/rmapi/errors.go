package rmapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrClientRequired      = errors.New("characters client is required")
	ErrInvalidPage         = errors.New("page number must be positive")
	ErrInvalidCharacterID  = errors.New("character ID must be a positive integer")
	ErrNotFound            = errors.New("resource not found")
	ErrMalformedResponse   = errors.New("response does not have the expected shape")
)

// ConnectivityError is returned when the remote API could not be reached at
// all: DNS failures, refused connections, TLS failures and timeouts.
type ConnectivityError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("connecting to %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// ProtocolError is returned when the API answers with a non-success status.
type ProtocolError struct {
	StatusCode int
	Message    string
	Body       []byte
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is reports whether target is ErrNotFound and the status is 404.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// DecodeError is returned when a response body cannot be parsed into the
// expected shape.
type DecodeError struct {
	Resource string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Resource, e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// apiErrorBody is the error document the API sends with non-2xx responses.
type apiErrorBody struct {
	Error string `json:"error"`
}

// NewProtocolError builds a ProtocolError from a status code and raw body.
// The body's "error" field is used as the message when it can be parsed.
func NewProtocolError(statusCode int, body []byte) *ProtocolError {
	protoErr := &ProtocolError{
		StatusCode: statusCode,
		Body:       body,
	}

	var parsed apiErrorBody
	if len(body) > 0 && json.Unmarshal(body, &parsed) == nil {
		protoErr.Message = parsed.Error
	}

	return protoErr
}

// IsConnectivity checks if the error is a connectivity error.
func IsConnectivity(err error) bool {
	connErr := &ConnectivityError{}

	return errors.As(err, &connErr)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecode checks if the error is a decode error.
func IsDecode(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// StatusCode returns the HTTP status carried by a ProtocolError, or 0.
func StatusCode(err error) int {
	protoErr := &ProtocolError{}
	if errors.As(err, &protoErr) {
		return protoErr.StatusCode
	}

	return 0
}
