package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-relay/cmd/relay/cmd/options"
	"audio-relay/internal/app"
)

const shutdownTimeout = 10 * time.Second

func init() {
	Cmd.Flags().StringVar(&options.Overrides.Host, "host", "", "listen host (default all interfaces)")
	Cmd.Flags().StringVarP(&options.Overrides.Port, "port", "p", "", "listen port (default $PORT or 3000)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP relay",
	Long: `Run the HTTP relay

- Registers every provider that has credentials
- Serves the documentation page, the demos, /health, /metrics and /swagger
- Shuts down gracefully on SIGINT or SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := options.Load()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv, err := app.InitializeServer(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case <-ctx.Done():
			logger.Info("shutdown signal received")
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server: %w", err)
			}
			return nil
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
			return err
		}
		return nil
	},
}
