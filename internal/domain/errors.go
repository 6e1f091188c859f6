package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a fetch failed. All kinds surface as StatusError.
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindTransport
	ErrorKindResponse
	ErrorKindMalformedPayload
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "transport"
	case ErrorKindResponse:
		return "response"
	case ErrorKindMalformedPayload:
		return "malformed_payload"
	default:
		return "unknown"
	}
}

// TransportError is returned when the endpoint could not be reached.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseError is returned for a non-success HTTP status.
type ResponseError struct {
	StatusCode  int
	Message     string
	RateLimited bool
	Err         error
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: status code %d", e.StatusCode)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// MalformedPayloadError is returned when the response body lacks expected fields
// or cannot be decoded.
type MalformedPayloadError struct {
	Reason string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed payload: %s: %v", e.Reason, e.Err)
	}
	return "malformed payload: " + e.Reason
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// ErrorKindOf classifies err.
func ErrorKindOf(err error) ErrorKind {
	var transportErr *TransportError
	var responseErr *ResponseError
	var payloadErr *MalformedPayloadError

	switch {
	case err == nil:
		return ErrorKindUnknown
	case errors.As(err, &payloadErr):
		return ErrorKindMalformedPayload
	case errors.As(err, &responseErr):
		return ErrorKindResponse
	case errors.As(err, &transportErr):
		return ErrorKindTransport
	default:
		return ErrorKindUnknown
	}
}
