package domain

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when an inference client is built without a key.
var ErrMissingAPIKey = errors.New("API key not found in configuration")

// InferenceErrorKind classifies why an inference call failed.
type InferenceErrorKind string

const (
	KindAuth              InferenceErrorKind = "auth"
	KindTransport         InferenceErrorKind = "transport"
	KindHTTP              InferenceErrorKind = "http"
	KindMalformedResponse InferenceErrorKind = "malformed_response"
	KindEmptyResponse     InferenceErrorKind = "empty_response"
)

// Sentinels for errors.Is matching against an *InferenceError.
var (
	ErrAuth              = &InferenceError{Kind: KindAuth}
	ErrTransport         = &InferenceError{Kind: KindTransport}
	ErrHTTP              = &InferenceError{Kind: KindHTTP}
	ErrMalformedResponse = &InferenceError{Kind: KindMalformedResponse}
	ErrEmptyResponse     = &InferenceError{Kind: KindEmptyResponse}
)

// InferenceError is a terminal failure of a single inference call.
// None of the kinds is retried.
type InferenceError struct {
	Kind       InferenceErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *InferenceError) Error() string {
	switch e.Kind {
	case KindAuth:
		return "authentication failed"
	case KindTransport:
		return fmt.Sprintf("request failed: %v", e.Err)
	case KindHTTP:
		return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Body)
	case KindMalformedResponse:
		return fmt.Sprintf("JSON parse error: %v", e.Err)
	case KindEmptyResponse:
		return fmt.Sprintf("unexpected response format: %s", e.Body)
	default:
		return "inference failed"
	}
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// Is matches on Kind so callers can write errors.Is(err, domain.ErrAuth).
func (e *InferenceError) Is(target error) bool {
	t, ok := target.(*InferenceError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Hint returns the operator-facing suggestion for the failure.
func (e *InferenceError) Hint() string {
	switch e.Kind {
	case KindAuth:
		return "Please check your API key: export NEURON_API_KEY=your_key"
	case KindTransport:
		return "Check your internet connection and try again in a moment"
	case KindHTTP:
		return "The completion service rejected the request; see the status and body above"
	case KindMalformedResponse, KindEmptyResponse:
		return "The completion service returned an unusable response"
	default:
		return ""
	}
}
