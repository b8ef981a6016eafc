//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"audio-relay/internal/api/server"
	"audio-relay/internal/app/api/provider"
	"audio-relay/internal/config"
)

// InitializeServer builds the relay server with every configured provider
func InitializeServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(ServerSet)
	return &server.Server{}, nil
}

// InitializeRegistry builds only the provider registry, for one-shot CLI use
func InitializeRegistry(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*provider.Registry, error) {
	wire.Build(RegistrySet)
	return &provider.Registry{}, nil
}
