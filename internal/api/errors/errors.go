package errors

import (
	"errors"
	"net/http"

	"audio-relay/internal/app/api/provider"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindInvalidInput    ErrorKind = "invalid_input"
	KindPayloadTooLarge ErrorKind = "payload_too_large"
	KindUpstream        ErrorKind = "upstream"
	KindNotConfigured   ErrorKind = "not_configured"
	KindNotFound        ErrorKind = "not_found"
	KindInternal        ErrorKind = "internal"
)

// Messages callers see in the "error" field
const (
	MsgNoAudio         = "No audio data received"
	MsgInvalidAudio    = "Invalid audio data"
	MsgInvalidBody     = "Invalid request body"
	MsgPayloadTooLarge = "Payload too large"
	MsgInternal        = "Internal server error"
	MsgNotConfigured   = "Provider not configured"
	MsgNotFound        = "Not found"
)

// APIError is the JSON error body: {"error": ..., "details": ...}
type APIError struct {
	Kind      ErrorKind `json:"-"`
	Message   string    `json:"error"`
	Details   string    `json:"details,omitempty"`
	RequestID string    `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindNotConfigured:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewNoAudioError is the 400 for a request without audio
func NewNoAudioError() *APIError {
	return &APIError{Kind: KindInvalidInput, Message: MsgNoAudio}
}

// NewInvalidInputError creates a 400 with details
func NewInvalidInputError(message, details string) *APIError {
	return &APIError{Kind: KindInvalidInput, Message: message, Details: details}
}

// NewPayloadTooLargeError creates a 413
func NewPayloadTooLargeError(details string) *APIError {
	return &APIError{Kind: KindPayloadTooLarge, Message: MsgPayloadTooLarge, Details: details}
}

// NewUpstreamError creates the generic 500 carrying the upstream message
func NewUpstreamError(details string) *APIError {
	return &APIError{Kind: KindUpstream, Message: MsgInternal, Details: details}
}

// NewNotConfiguredError creates a 503 for a provider without credentials
func NewNotConfiguredError(name string) *APIError {
	return &APIError{Kind: KindNotConfigured, Message: MsgNotConfigured, Details: name}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(details string) *APIError {
	return &APIError{Kind: KindNotFound, Message: MsgNotFound, Details: details}
}

// NewInternalError creates an internal server error
func NewInternalError(details string) *APIError {
	return &APIError{Kind: KindInternal, Message: MsgInternal, Details: details}
}

// FromProviderError maps a provider failure onto the API error taxonomy.
// Anything that isn't the caller's fault is reported as a 500 with the
// underlying message attached.
func FromProviderError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, provider.ErrNoAudio):
		return NewNoAudioError()
	case errors.Is(err, provider.ErrInvalidAudio):
		return NewInvalidInputError(MsgInvalidAudio, err.Error())
	case errors.Is(err, provider.ErrNotConfigured):
		return NewNotConfiguredError(err.Error())
	default:
		return NewUpstreamError(err.Error())
	}
}
