package provider

import (
	"context"
	"strings"
)

// Registered provider names. Routes select a provider by one of these.
const (
	Gemini = "gemini"
	OpenAI = "openai"
	Azure  = "azure"
)

// Result fields. Gemini answers with a generated summary object, the
// Whisper-style providers with a plain transcript.
const (
	FieldSummary       = "summary"
	FieldTranscription = "transcription"
)

// Provider is one upstream the relay can forward audio to.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Name returns the registry name ("gemini", "openai", "azure")
	Name() string

	// Transcribe forwards the audio and blocks until the upstream answers,
	// ctx is cancelled, or the provider's own timeout fires.
	Transcribe(ctx context.Context, req *TranscriptionRequest) (*TranscriptionResult, error)
}

// TranscriptionRequest is the provider-neutral inbound request
type TranscriptionRequest struct {
	// Audio is base64, optionally prefixed with a data URI scheme tag
	Audio    string
	Prompt   string
	MimeType string
}

// Validate checks the request invariants
func (r *TranscriptionRequest) Validate() error {
	if r == nil || strings.TrimSpace(r.Audio) == "" {
		return ErrNoAudio
	}
	return nil
}

// TranscriptionResult is the normalized provider answer
type TranscriptionResult struct {
	Provider string
	// Field is the response key the content is returned under
	Field string
	// Text is the plain text rendering of Content
	Text string
	// Content is what gets serialized to the caller: a string for the
	// Whisper-style providers, the model's content object for Gemini.
	Content any
}

// Body returns the JSON response body for the result
func (r *TranscriptionResult) Body() map[string]any {
	return map[string]any{r.Field: r.Content}
}
