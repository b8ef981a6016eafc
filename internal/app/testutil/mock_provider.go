package testutil

import (
	"context"
	"sync/atomic"

	"github.com/stretchr/testify/mock"

	"audio-relay/internal/app/api/provider"
)

// MockProvider is a testify mock of provider.Provider
type MockProvider struct {
	mock.Mock
	name string
}

// NewMockProvider creates a mock registered under name
func NewMockProvider(name string) *MockProvider {
	return &MockProvider{name: name}
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Transcribe(ctx context.Context, req *provider.TranscriptionRequest) (*provider.TranscriptionResult, error) {
	args := m.Called(ctx, req)
	if result := args.Get(0); result != nil {
		return result.(*provider.TranscriptionResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// EchoProvider answers every request with the decoded audio as the
// transcript, which makes cross-request contamination visible.
type EchoProvider struct {
	ProviderName string
	Field        string
	calls        atomic.Int64
}

func (e *EchoProvider) Name() string {
	return e.ProviderName
}

func (e *EchoProvider) Transcribe(ctx context.Context, req *provider.TranscriptionRequest) (*provider.TranscriptionResult, error) {
	e.calls.Add(1)
	if err := req.Validate(); err != nil {
		return nil, err
	}
	audio, err := provider.DecodeAudio(req.Audio)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &provider.UpstreamError{Provider: e.ProviderName, Err: err}
	}

	field := e.Field
	if field == "" {
		field = provider.FieldTranscription
	}
	text := req.Prompt + "|" + string(audio)
	return &provider.TranscriptionResult{
		Provider: e.ProviderName,
		Field:    field,
		Text:     text,
		Content:  text,
	}, nil
}

// Calls returns how many times Transcribe ran
func (e *EchoProvider) Calls() int64 {
	return e.calls.Load()
}
