package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAudio means the request carried no audio payload
	ErrNoAudio = errors.New("no audio data received")
	// ErrInvalidAudio means the payload could not be base64-decoded
	ErrInvalidAudio = errors.New("invalid audio data")
	// ErrNotConfigured means the requested provider has no credentials
	ErrNotConfigured = errors.New("provider not configured")
)

// UpstreamError is returned when the provider call fails, either at the
// transport level or with a non-2xx answer.
type UpstreamError struct {
	Provider   string
	StatusCode int
	// Status is the HTTP status line, e.g. "502 Bad Gateway"
	Status string
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error: %s", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err is the caller's fault
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrNoAudio) || errors.Is(err, ErrInvalidAudio)
}
