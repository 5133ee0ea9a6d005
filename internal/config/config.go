package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/bet-hub/internal/platform/logging"
	"github.com/riskibarqy/bet-hub/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"

	DocstoreMemory   = "memory"
	DocstorePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	CORSAllowedOrigins []string

	DocstoreDriver          string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBMaxOpenConns          int

	CacheEnabled bool
	CacheTTL     time.Duration

	SleeperBaseURL               string
	SleeperTimeout               time.Duration
	SleeperRateLimitPerMinute    int
	SleeperCircuitEnabled        bool
	SleeperCircuitFailureCount   int
	SleeperCircuitOpenTimeout    time.Duration
	SleeperCircuitHalfOpenMaxReq int

	ImportBulkWorkers  int
	ImportBulkMaxItems int

	MetricsEnabled bool

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	PprofEnabled bool
	PprofAddr    string
}

// Load reads the environment. Every variable has a default that runs the
// service locally on the in-memory store.
func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "bet-hub-api"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DBURL:                  strings.TrimSpace(getEnv("DB_URL", "")),
		SleeperBaseURL:         strings.TrimSpace(getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1")),
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PprofAddr:              strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
	}
	cfg.PyroscopeBasicAuthPassword = getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.ReadTimeout, err = getEnvAsDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsDuration("APP_WRITE_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}

	cfg.DocstoreDriver = strings.ToLower(strings.TrimSpace(getEnv("DOCSTORE_DRIVER", DocstoreMemory)))
	switch cfg.DocstoreDriver {
	case DocstoreMemory:
	case DocstorePostgres:
		if cfg.DBURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required when DOCSTORE_DRIVER=%s", DocstorePostgres)
		}
	default:
		return Config{}, fmt.Errorf("invalid DOCSTORE_DRIVER %q: valid values are %s, %s", cfg.DocstoreDriver, DocstoreMemory, DocstorePostgres)
	}
	if cfg.DBDisablePreparedBinary, err = getEnvAsBool("DB_DISABLE_PREPARED_BINARY_RESULT", "false"); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.DBMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}

	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getEnvAsDuration("CACHE_TTL", "30s"); err != nil {
		return Config{}, err
	}

	if cfg.SleeperBaseURL == "" {
		return Config{}, fmt.Errorf("SLEEPER_BASE_URL cannot be empty")
	}
	if cfg.SleeperTimeout, err = getEnvAsDuration("SLEEPER_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.SleeperRateLimitPerMinute, err = getEnvAsInt("SLEEPER_RATE_LIMIT_PER_MINUTE", 900); err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_RATE_LIMIT_PER_MINUTE: %w", err)
	}
	if cfg.SleeperRateLimitPerMinute < 0 {
		return Config{}, fmt.Errorf("SLEEPER_RATE_LIMIT_PER_MINUTE must be >= 0")
	}
	breakerDefaults := resilience.DefaultCircuitBreakerConfig()
	if cfg.SleeperCircuitEnabled, err = getEnvAsBool("SLEEPER_CIRCUIT_ENABLED", "true"); err != nil {
		return Config{}, err
	}
	if cfg.SleeperCircuitFailureCount, err = getEnvAsInt("SLEEPER_CIRCUIT_FAILURE_COUNT", breakerDefaults.FailureThreshold); err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.SleeperCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SLEEPER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if cfg.SleeperCircuitOpenTimeout, err = getEnvAsDuration("SLEEPER_CIRCUIT_OPEN_TIMEOUT", breakerDefaults.OpenTimeout.String()); err != nil {
		return Config{}, err
	}
	if cfg.SleeperCircuitHalfOpenMaxReq, err = getEnvAsInt("SLEEPER_CIRCUIT_HALF_OPEN_MAX_REQ", breakerDefaults.HalfOpenMaxReq); err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfg.SleeperCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SLEEPER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	if cfg.ImportBulkWorkers, err = getEnvAsInt("IMPORT_BULK_WORKERS", 4); err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_BULK_WORKERS: %w", err)
	}
	if cfg.ImportBulkWorkers < 1 {
		return Config{}, fmt.Errorf("IMPORT_BULK_WORKERS must be >= 1")
	}
	if cfg.ImportBulkMaxItems, err = getEnvAsInt("IMPORT_BULK_MAX_ITEMS", 50); err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_BULK_MAX_ITEMS: %w", err)
	}
	if cfg.ImportBulkMaxItems < 1 {
		return Config{}, fmt.Errorf("IMPORT_BULK_MAX_ITEMS must be >= 1")
	}

	if cfg.MetricsEnabled, err = getEnvAsBool("METRICS_ENABLED", "true"); err != nil {
		return Config{}, err
	}

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = getEnvAsBool("UPTRACE_LOGS_ENABLED", "true"); err != nil {
		return Config{}, err
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return Config{}, err
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
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

func getEnvAsBool(key, fallback string) (bool, error) {
	out, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

// getEnvAsDuration rejects zero and negative durations.
func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
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

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
