package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts: read=%s write=%s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if !cfg.DemoSeedEnabled {
		t.Fatalf("expected demo seed enabled outside prod")
	}
	if cfg.RenderWorkers != 4 {
		t.Fatalf("unexpected RenderWorkers: %d", cfg.RenderWorkers)
	}
	if len(cfg.Sports) != 1 || cfg.Sports[0].Name != depthchart.SportNFL {
		t.Fatalf("expected default NFL catalog, got %+v", cfg.Sports)
	}
	if len(cfg.Sports[0].Positions) != len(depthchart.NFLPositions()) {
		t.Fatalf("unexpected NFL position count: %d", len(cfg.Sports[0].Positions))
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if cfg.PprofEnabled || cfg.PprofAddr != ":6060" {
		t.Fatalf("unexpected pprof config: enabled=%v addr=%q", cfg.PprofEnabled, cfg.PprofAddr)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ProdDisablesDemoSeed(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DemoSeedEnabled {
		t.Fatalf("expected demo seed disabled in prod")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_RenderWorkersMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RENDER_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for RENDER_WORKERS=0")
	}
}

func TestLoad_InlineSportPositions(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DEFAULT_SPORT_POSITIONS", "NHL:C|LW| RW |D|G, RUGBY:")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.Sports) != 2 {
		t.Fatalf("expected 2 sports, got %+v", cfg.Sports)
	}
	if got := cfg.Sports[0].Positions; len(got) != 5 || got[2] != "RW" {
		t.Fatalf("unexpected NHL positions: %v", got)
	}
	if cfg.Sports[1].Name != "RUGBY" || len(cfg.Sports[1].Positions) != 0 {
		t.Fatalf("unexpected RUGBY definition: %+v", cfg.Sports[1])
	}
}

func TestLoad_InlineSportPositionsInvalid(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DEFAULT_SPORT_POSITIONS", "NHL")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for sport item without positions separator")
	}
}

func TestLoad_SportsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sports.yaml")
	content := "sports:\n  - name: NFL\n    positions: [QB, RB]\n  - name: MLB\n    positions: [SP, RP, C]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write sports file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SPORTS_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.Sports) != 2 || cfg.Sports[1].Name != "MLB" || len(cfg.Sports[1].Positions) != 3 {
		t.Fatalf("unexpected sports: %+v", cfg.Sports)
	}
}

func TestLoad_SportsFileDuplicateWithInline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sports.yaml")
	if err := os.WriteFile(path, []byte("sports:\n  - name: NFL\n    positions: [QB]\n"), 0o600); err != nil {
		t.Fatalf("write sports file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SPORTS_FILE", path)
	t.Setenv("DEFAULT_SPORT_POSITIONS", "NFL:QB|RB")

	if _, err := Load(); err == nil {
		t.Fatalf("expected duplicate sport error")
	}
}

func TestLoad_SportsFileMissing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SPORTS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing SPORTS_FILE")
	}
}
