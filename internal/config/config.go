package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/depth-chart/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                 string
	ServiceName            string
	ServiceVersion         string
	HTTPAddr               string
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	CORSAllowedOrigins     []string
	SportsFile             string
	Sports                 []SportDefinition
	DemoSeedEnabled        bool
	RenderWorkers          int
	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeUploadRate    time.Duration
	PprofEnabled           bool
	PprofAddr              string
	LogLevel               logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	if readTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_READ_TIMEOUT must be > 0")
	}

	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}
	if writeTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_WRITE_TIMEOUT must be > 0")
	}

	demoSeedDefault := "true"
	if appEnv == EnvProd {
		demoSeedDefault = "false"
	}
	demoSeedEnabled, err := strconv.ParseBool(getEnv("DEMO_SEED_ENABLED", demoSeedDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse DEMO_SEED_ENABLED: %w", err)
	}

	renderWorkers, err := getEnvAsInt("RENDER_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse RENDER_WORKERS: %w", err)
	}
	if renderWorkers <= 0 {
		return Config{}, fmt.Errorf("RENDER_WORKERS must be > 0")
	}

	sportsFile := strings.TrimSpace(getEnv("SPORTS_FILE", ""))
	sports, err := loadSports(sportsFile, getEnv("DEFAULT_SPORT_POSITIONS", ""))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	serviceName := getEnv("SERVICE_NAME", "depth-chart")

	return Config{
		AppEnv:                 appEnv,
		ServiceName:            serviceName,
		ServiceVersion:         getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:            readTimeout,
		WriteTimeout:           writeTimeout,
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SportsFile:             sportsFile,
		Sports:                 sports,
		DemoSeedEnabled:        demoSeedEnabled,
		RenderWorkers:          renderWorkers,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		PprofEnabled:           pprofEnabled,
		PprofAddr:              pprofAddr,
		LogLevel:               logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
