package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Provider ProviderConfig
	Search   SearchConfig
	Logging  LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// PostgresConfig holds the optional listings database configuration.
// The database is used only when DSN is non-empty; otherwise the
// embedded seed corpus serves as the fallback data set.
type PostgresConfig struct {
	DSN                string
	MaxConnections     int
	MaxIdleConnections int
}

// Enabled reports whether a listings database is configured.
func (c PostgresConfig) Enabled() bool {
	return c.DSN != ""
}

// ProviderConfig holds the remote listings provider configuration.
type ProviderConfig struct {
	APIKey  string
	APIBase string
	Limit   int
	Timeout time.Duration
	Enabled bool
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	VibesPath string // optional JSON file overriding the built-in vibe taxonomy
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Postgres: PostgresConfig{
			DSN:                getEnv("DATABASE_URL", ""),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Provider: ProviderConfig{
			APIKey:  getEnv("RENTCAST_API_KEY", ""),
			APIBase: getEnv("RENTCAST_API_BASE", "https://api.rentcast.io/v1"),
			Limit:   getEnvAsInt("RENTCAST_LIMIT", 20),
			Timeout: time.Duration(getEnvAsInt("RENTCAST_TIMEOUT_SECONDS", 10)) * time.Second,
			Enabled: getEnv("RENTCAST_API_KEY", "") != "",
		},
		Search: SearchConfig{
			VibesPath: getEnv("VIBES_PATH", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}
