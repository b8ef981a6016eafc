package services

import (
	"context"

	"audio-relay/internal/api/v1/dto"
	"audio-relay/internal/app/api/provider"
)

// TranscriptionService defines the interface for relaying audio to a provider
type TranscriptionService interface {
	// Transcribe forwards req to the named provider
	Transcribe(ctx context.Context, providerName string, req *dto.TranscribeRequest) (*provider.TranscriptionResult, error)

	// Providers lists the configured provider names
	Providers() []string
}
