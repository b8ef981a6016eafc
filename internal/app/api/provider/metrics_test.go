package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"audio-relay/internal/app/api/provider"
	relaytest "audio-relay/internal/app/testutil"
	"audio-relay/internal/metrics"
)

func TestInstrument(t *testing.T) {
	m := metrics.New()
	mockProvider := relaytest.NewMockProvider(provider.OpenAI)
	p := provider.Instrument(mockProvider, m)

	ok := &provider.TranscriptionRequest{Audio: "b2s="}
	bad := &provider.TranscriptionRequest{Audio: "YmFk"}
	empty := &provider.TranscriptionRequest{}
	crash := &provider.TranscriptionRequest{Audio: "Y3Jhc2g="}

	mockProvider.On("Transcribe", mock.Anything, ok).
		Return(&provider.TranscriptionResult{Field: provider.FieldTranscription, Content: "ok"}, nil)
	mockProvider.On("Transcribe", mock.Anything, bad).
		Return(nil, &provider.UpstreamError{Provider: "OpenAI", StatusCode: 500, Status: "500 Internal Server Error"})
	mockProvider.On("Transcribe", mock.Anything, empty).
		Return(nil, provider.ErrNoAudio)
	mockProvider.On("Transcribe", mock.Anything, crash).
		Return(nil, errors.New("boom"))

	ctx := context.Background()

	result, err := p.Transcribe(ctx, ok)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Content)

	_, err = p.Transcribe(ctx, bad)
	require.Error(t, err)
	_, err = p.Transcribe(ctx, empty)
	require.ErrorIs(t, err, provider.ErrNoAudio)
	_, err = p.Transcribe(ctx, crash)
	require.Error(t, err)

	assert.Equal(t, provider.OpenAI, p.Name())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TranscriptionsTotal.WithLabelValues("openai", metrics.OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TranscriptionsTotal.WithLabelValues("openai", metrics.OutcomeUpstreamError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TranscriptionsTotal.WithLabelValues("openai", metrics.OutcomeInvalidInput)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamDuration), "one series per provider")
	mockProvider.AssertExpectations(t)
}

func TestInstrument_NilMetrics(t *testing.T) {
	mockProvider := relaytest.NewMockProvider(provider.Azure)
	assert.Same(t, mockProvider, provider.Instrument(mockProvider, nil))
}
