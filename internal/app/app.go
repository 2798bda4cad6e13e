package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/depth-chart/internal/config"
	"github.com/riskibarqy/depth-chart/internal/domain/sport"
	"github.com/riskibarqy/depth-chart/internal/interfaces/httpapi"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/riskibarqy/depth-chart/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	manager, err := NewManager(cfg.Sports)
	if err != nil {
		return nil, err
	}

	if cfg.DemoSeedEnabled {
		if _, err := SeedDemo(manager, DemoTeamName); err != nil {
			return nil, fmt.Errorf("seed demo team: %w", err)
		}
		logger.Info("demo team seeded", "sport", DemoSportName, "team", DemoTeamName)
	}

	depthChartSvc := usecase.NewDepthChartService(manager, cfg.RenderWorkers, logger)

	handler := httpapi.NewHandler(depthChartSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// NewManager registers every sport in the catalog, in catalog order.
func NewManager(defs []config.SportDefinition) (*sport.Manager, error) {
	manager := sport.NewManager()
	for _, def := range defs {
		if _, err := manager.CreateSport(def.Name, def.Positions); err != nil {
			return nil, fmt.Errorf("register sport %q: %w", def.Name, err)
		}
	}

	return manager, nil
}
