package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ErrorKindUnknown},
		{"plain", errors.New("boom"), ErrorKindUnknown},
		{"transport", &TransportError{Err: errors.New("dial tcp")}, ErrorKindTransport},
		{"response", &ResponseError{StatusCode: 403, RateLimited: true}, ErrorKindResponse},
		{"malformed", &MalformedPayloadError{Reason: "missing items"}, ErrorKindMalformedPayload},
		{"wrapped response", fmt.Errorf("failed to search: %w", &ResponseError{StatusCode: 500}), ErrorKindResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorKindOf(tt.err); got != tt.want {
				t.Errorf("ErrorKindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	resp := &ResponseError{StatusCode: 422, Message: "Validation Failed"}
	if resp.Error() != "API error (422): Validation Failed" {
		t.Errorf("ResponseError.Error() = %q", resp.Error())
	}

	inner := errors.New("unexpected EOF")
	payload := &MalformedPayloadError{Reason: "decode body", Err: inner}
	if !errors.Is(payload, inner) {
		t.Error("MalformedPayloadError should unwrap to its cause")
	}
}
