package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/riskibarqy/depth-chart/internal/config"
	"github.com/riskibarqy/depth-chart/internal/observability"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

// Serve starts observability and the HTTP server, then blocks until ctx is
// done or the server fails. The server is drained before Serve returns.
func Serve(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("pyroscope stop failed", "error", err)
		}
	}()

	pprofSrv := observability.StartPprofServer(cfg, logger)
	defer func() {
		if err := observability.StopPprofServer(pprofSrv, logger, shutdownTimeout); err != nil {
			logger.Warn("pprof shutdown failed", "error", err)
		}
	}()

	srv, err := NewHTTPServer(cfg, logger)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("http server failed", "error", err)
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return err
	}

	logger.Info("http server stopped")
	return nil
}
