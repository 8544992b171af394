// Package config loads application configuration from environment variables
// and the storage configuration file.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Identifier field names accepted by the upload endpoint.
const (
	IdentifierCPE    = "cpe_id"
	IdentifierFolder = "folder"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	// Path to the YAML file with storage credentials and the bucket list.
	ConfigFile string

	// Mount point of the API routes, e.g. "/api/v1". Empty mounts at the root.
	RoutePrefix string

	// JSON field carrying the identifier: "cpe_id" or "folder".
	IdentifierField string

	AuthCookie    string
	DefaultAuthor string

	// Optional. When set, every upload attempt is written to the audit table.
	DatabaseURL string

	// Upper bound for one storage write. The HTTP write timeout is derived from it.
	StorageTimeout time.Duration

	// Largest accepted request body in bytes.
	MaxBodyBytes int64
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, reading from environment")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		AppEnv:          getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ConfigFile:      getEnv("CONFIG_FILE", "config.yml"),
		RoutePrefix:     strings.TrimRight(getEnv("ROUTE_PREFIX", ""), "/"),
		IdentifierField: getEnv("IDENTIFIER_FIELD", IdentifierCPE),
		AuthCookie:      getEnv("AUTH_COOKIE", "jwt"),
		DefaultAuthor:   getEnv("DEFAULT_AUTHOR", "unknown"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		StorageTimeout:  getDuration("STORAGE_TIMEOUT", 20*time.Second),
		MaxBodyBytes:    getInt64("MAX_BODY_BYTES", 10<<20),
	}

	if cfg.IdentifierField != IdentifierCPE && cfg.IdentifierField != IdentifierFolder {
		slog.Warn("unknown IDENTIFIER_FIELD, falling back to cpe_id", "value", cfg.IdentifierField)
		cfg.IdentifierField = IdentifierCPE
	}

	return cfg
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
