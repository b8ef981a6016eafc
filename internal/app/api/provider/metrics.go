package provider

import (
	"context"
	"errors"
	"time"

	"audio-relay/internal/metrics"
)

// instrumentedProvider records Prometheus metrics around another provider
type instrumentedProvider struct {
	next    Provider
	metrics *metrics.Metrics
}

// Instrument wraps p so every call is counted and timed. A nil m returns p.
func Instrument(p Provider, m *metrics.Metrics) Provider {
	if m == nil {
		return p
	}
	return &instrumentedProvider{next: p, metrics: m}
}

func (ip *instrumentedProvider) Name() string {
	return ip.next.Name()
}

func (ip *instrumentedProvider) Transcribe(ctx context.Context, req *TranscriptionRequest) (*TranscriptionResult, error) {
	name := ip.next.Name()
	if req != nil {
		ip.metrics.PayloadBytes.WithLabelValues(name).Observe(float64(len(req.Audio)))
	}

	start := time.Now()
	result, err := ip.next.Transcribe(ctx, req)

	var upstreamErr *UpstreamError
	switch {
	case err == nil:
		ip.metrics.UpstreamDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		ip.metrics.TranscriptionsTotal.WithLabelValues(name, metrics.OutcomeSuccess).Inc()
	case IsInvalidInput(err):
		ip.metrics.TranscriptionsTotal.WithLabelValues(name, metrics.OutcomeInvalidInput).Inc()
	case errors.As(err, &upstreamErr):
		ip.metrics.UpstreamDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		ip.metrics.TranscriptionsTotal.WithLabelValues(name, metrics.OutcomeUpstreamError).Inc()
	default:
		ip.metrics.TranscriptionsTotal.WithLabelValues(name, metrics.OutcomeUpstreamError).Inc()
	}

	return result, err
}
