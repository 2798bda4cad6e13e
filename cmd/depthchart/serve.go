package main

import (
	"os/signal"
	"syscall"

	"github.com/riskibarqy/depth-chart/internal/app"
	"github.com/riskibarqy/depth-chart/internal/config"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the depth chart HTTP API",
		Long:  `Run the depth chart HTTP API. Configuration is read from the environment (HTTP_ADDR, SPORTS_FILE, LOG_LEVEL, ...).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := logging.NewJSONWriter(cmd.ErrOrStderr(), cfg.LogLevel).With(
				"service", cfg.ServiceName,
				"version", cfg.ServiceVersion,
				"env", cfg.AppEnv,
			)
			logging.SetDefault(logger)
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Serve(ctx, cfg, logger)
		},
	}
}
