package llm

import (
	"context"
	"errors"
)

// Client abstracts the external text-generation provider. Complete sends a
// system instruction and a user instruction as an ordered two-message
// conversation and returns the raw generated text. A single best-effort
// attempt; callers decide how failures are presented.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrorKind classifies a generation failure.
type ErrorKind string

const (
	// KindTransport covers network failures, timeouts, and non-2xx responses.
	KindTransport ErrorKind = "transport_error"
	// KindResponseShape covers responses that parse but lack the content field.
	KindResponseShape ErrorKind = "response_shape_error"
	// KindUnknown covers everything else.
	KindUnknown ErrorKind = "unknown_error"
)

// Error is a classified generation failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// TransportError builds a transport-layer Error from the underlying cause.
func TransportError(cause error) *Error {
	return &Error{Kind: KindTransport, Message: "API request failed: " + cause.Error()}
}

// ResponseShapeError builds an Error for a response missing the content path.
func ResponseShapeError(detail string) *Error {
	return &Error{Kind: KindResponseShape, Message: "Error parsing API response: " + detail}
}

// UnknownError wraps an unclassified failure.
func UnknownError(cause error) *Error {
	return &Error{Kind: KindUnknown, Message: "Unexpected error: " + cause.Error()}
}

// Classify returns err as a *Error, wrapping unclassified errors as unknown.
func Classify(err error) *Error {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr
	}
	return UnknownError(err)
}
