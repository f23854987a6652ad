package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string // API key for authentication
	TrustedProxies []string

	// Logging
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	// Game assets
	DataPath   string
	AssetsPath string

	// Shop economy
	DisplayMarkup       float64
	TickInterval        time.Duration
	WorkerCount         int
	ControllerCacheSize int
	ControllerCacheTTL  time.Duration
	LedgerRetentionDays int

	// Persistence
	Persistence       string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", "logs"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DataPath:   getEnv("DATA_PATH", DefaultDataPath),
		AssetsPath: getEnv("ASSETS_PATH", DefaultDataPath),

		DisplayMarkup:       getEnvAsFloat("SHOP_DISPLAY_MARKUP", DefaultDisplayMarkup),
		TickInterval:        getEnvAsDuration("TICK_INTERVAL", DefaultTickInterval),
		WorkerCount:         getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		ControllerCacheSize: getEnvAsInt("CONTROLLER_CACHE_SIZE", DefaultControllerCacheSize),
		ControllerCacheTTL:  getEnvAsDuration("CONTROLLER_CACHE_TTL", DefaultControllerCacheTTL),
		LedgerRetentionDays: getEnvAsInt("LEDGER_RETENTION_DAYS", DefaultLedgerRetentionDays),

		Persistence:       strings.ToLower(getEnv("PERSISTENCE", PersistenceMemory)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "mudshop"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.Persistence != PersistenceMemory && cfg.Persistence != PersistencePostgres {
		return nil, fmt.Errorf("invalid PERSISTENCE value %q: expected %s or %s", cfg.Persistence, PersistenceMemory, PersistencePostgres)
	}

	return cfg, nil
}

// UsesPostgres reports whether rooms and the ledger live in PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.Persistence == PersistencePostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
