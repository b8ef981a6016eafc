// Package options holds the flags shared by every relay subcommand.
package options

import (
	"fmt"

	"go.uber.org/zap"

	"audio-relay/internal/app/common"
	"audio-relay/internal/config"
)

var (
	// Overrides collects the persistent CLI flags
	Overrides config.Overrides
	// Verbose forces debug logging
	Verbose bool
)

// Load builds the configuration and a logger from the current flags
func Load() (*config.Config, *zap.Logger, error) {
	overrides := Overrides
	if Verbose {
		overrides.LogLevel = "debug"
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := common.NewLogger(cfg.LogLevel, cfg.Development())
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, logger, nil
}
