//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"

	"go.uber.org/zap"

	"audio-relay/internal/api/server"
	"audio-relay/internal/app/api/provider"
	"audio-relay/internal/config"
	"audio-relay/internal/metrics"
)

// Injectors from wire.go:

// InitializeServer builds the relay server with every configured provider
func InitializeServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	metricsMetrics := metrics.New()
	registry, err := BuildRegistry(ctx, cfg, metricsMetrics, logger)
	if err != nil {
		return nil, err
	}
	serverServer := server.NewServer(cfg, registry, metricsMetrics, logger)
	return serverServer, nil
}

// InitializeRegistry builds only the provider registry, for one-shot CLI use
func InitializeRegistry(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*provider.Registry, error) {
	metricsMetrics := metrics.New()
	registry, err := BuildRegistry(ctx, cfg, metricsMetrics, logger)
	if err != nil {
		return nil, err
	}
	return registry, nil
}
