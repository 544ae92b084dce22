// Package config loads service configuration from environment variables.
// Both binaries (api, ingest) share one Config; a .env file, when present,
// is loaded by main before this package reads the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config struct — populated from environment variables.
type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool

	// Ingest
	DatasetDir string
}

// Load reads the environment into a Config. DATABASE_URL is the only
// required variable; everything else has a development default.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBPoolMinConns: intEnv("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: intEnv("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(intEnv("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     stringEnv("API_HOST", "0.0.0.0"),
		APIPort:     intEnv("API_PORT", intEnv("PORT", 8000)),
		Environment: stringEnv("ENVIRONMENT", "development"),
		Debug:       boolEnv("DEBUG", false),

		CORSAllowOrigins: listEnv("CORS_ALLOW_ORIGINS",
			"http://localhost:3000", "http://localhost:5173"),

		RateLimitEnabled:  boolEnv("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: intEnv("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(intEnv("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: boolEnv("CACHE_ENABLED", true),

		DatasetDir: stringEnv("DATASET_DIR", "./data"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}
	return cfg, nil
}

// Addr is the listen address for the API server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func listEnv(key string, fallback ...string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
