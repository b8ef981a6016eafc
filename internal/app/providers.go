package app

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"go.uber.org/zap"

	"audio-relay/internal/api/server"
	"audio-relay/internal/app/api/gemini"
	"audio-relay/internal/app/api/openai/whisper"
	"audio-relay/internal/app/api/provider"
	"audio-relay/internal/config"
	"audio-relay/internal/metrics"
)

// RegistrySet builds the provider registry with its metrics
var RegistrySet = wire.NewSet(metrics.New, BuildRegistry)

// ServerSet builds the HTTP server on top of RegistrySet
var ServerSet = wire.NewSet(RegistrySet, server.NewServer)

// provideGemini builds the generative-model provider, nil when unconfigured
func provideGemini(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
	if !cfg.GeminiConfigured() {
		return nil, nil
	}
	creds := cfg.Providers.Gemini
	return gemini.NewProvider(ctx, gemini.Config{
		APIKey:  creds.APIKey,
		Model:   creds.Model,
		BaseURL: creds.BaseURL,
		Timeout: cfg.UpstreamTimeout,
	})
}

// provideHostedWhisper builds the OpenAI provider, nil when unconfigured
func provideHostedWhisper(cfg *config.Config) (provider.Provider, error) {
	if !cfg.OpenAIConfigured() {
		return nil, nil
	}
	creds := cfg.Providers.OpenAI
	return whisper.NewHosted(creds.APIKey, creds.BaseURL, cfg.UpstreamTimeout)
}

// provideManagedWhisper builds the Azure provider, nil when unconfigured
func provideManagedWhisper(cfg *config.Config) (provider.Provider, error) {
	if !cfg.AzureConfigured() {
		return nil, nil
	}
	creds := cfg.Providers.Azure
	return whisper.NewManaged(creds.APIKey, creds.Endpoint, creds.DeploymentName, creds.APIVersion, cfg.UpstreamTimeout)
}

// BuildRegistry constructs every configured provider and registers it.
// Providers without credentials are skipped with a warning; their routes
// answer 503. m may be nil to skip instrumentation.
func BuildRegistry(ctx context.Context, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) (*provider.Registry, error) {
	registry := provider.NewRegistry()

	builders := []struct {
		name  string
		build func() (provider.Provider, error)
	}{
		{provider.Gemini, func() (provider.Provider, error) { return provideGemini(ctx, cfg) }},
		{provider.OpenAI, func() (provider.Provider, error) { return provideHostedWhisper(cfg) }},
		{provider.Azure, func() (provider.Provider, error) { return provideManagedWhisper(cfg) }},
	}

	for _, b := range builders {
		p, err := b.build()
		if err != nil {
			return nil, fmt.Errorf("build %s provider: %w", b.name, err)
		}
		if p == nil {
			logger.Warn("provider not configured", zap.String("provider", b.name))
			continue
		}
		if err := registry.Register(provider.Instrument(p, m)); err != nil {
			return nil, err
		}
		logger.Info("provider registered", zap.String("provider", b.name))
	}

	if len(registry.Names()) == 0 {
		logger.Warn("no provider configured, every transcribe route will answer 503")
	}

	return registry, nil
}
