package services

import (
	"context"

	"go.uber.org/zap"

	"audio-relay/internal/api/v1/dto"
	"audio-relay/internal/app/api/provider"
)

// transcriptionService implements TranscriptionService on top of a registry
type transcriptionService struct {
	registry *provider.Registry
	logger   *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(registry *provider.Registry, logger *zap.Logger) TranscriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &transcriptionService{
		registry: registry,
		logger:   logger,
	}
}

func (s *transcriptionService) Transcribe(ctx context.Context, providerName string, req *dto.TranscribeRequest) (*provider.TranscriptionResult, error) {
	providerReq := req.ToProviderRequest()
	if err := providerReq.Validate(); err != nil {
		return nil, err
	}

	p, err := s.registry.Get(providerName)
	if err != nil {
		return nil, err
	}

	if audio, decodeErr := provider.DecodeAudio(providerReq.Audio); decodeErr == nil {
		s.logger.Debug("relaying audio",
			zap.String("provider", providerName),
			zap.Int("bytes", len(audio)),
			zap.String("sniffed_mime", provider.SniffMIME(audio)),
			zap.String("declared_mime", providerReq.MimeType),
		)
	}

	result, err := p.Transcribe(ctx, providerReq)
	if err != nil {
		if !provider.IsInvalidInput(err) {
			s.logger.Error("provider call failed", zap.String("provider", providerName), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Debug("provider answered",
		zap.String("provider", providerName),
		zap.Int("chars", len(result.Text)),
	)
	return result, nil
}

func (s *transcriptionService) Providers() []string {
	return s.registry.Names()
}
