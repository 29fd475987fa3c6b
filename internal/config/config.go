// Package config loads service configuration from environment variables, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envProduction = "production"

// Config holds the runtime configuration of the API process.
type Config struct {
	Addr string // listen address
	Base string // base path of the authenticated API, e.g. /api
	Env  string // "production" enables deployment safety checks

	PGDSN      string // PostgreSQL DSN; empty selects the in-memory user store
	JWTKeyFile string // path of the symmetric signing key

	UpstreamURL      string // PunkAPI-compatible dataset endpoint
	UpstreamPageSize int    // ingestion page size

	// ForceUser bypasses token verification and pins every request to this
	// username. Refused when Env is production.
	ForceUser string

	RateBurst  int
	RatePerSec int
}

// Load reads configuration from the environment. A .env file in the working
// directory is honoured when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Addr:             getEnv("HOPLIST_ADDR", ":8080"),
		Base:             getEnv("HOPLIST_BASE", "/api"),
		Env:              getEnv("HOPLIST_ENV", "development"),
		PGDSN:            getEnv("HOPLIST_PG_DSN", ""),
		JWTKeyFile:       getEnv("HOPLIST_JWT_KEY_FILE", "jwt.key"),
		UpstreamURL:      getEnv("HOPLIST_UPSTREAM_URL", "https://api.punkapi.com/v2"),
		UpstreamPageSize: 80,
		ForceUser:        getEnv("HOPLIST_FORCE_USER", ""),
		RateBurst:        50,
		RatePerSec:       25,
	}

	var err error
	if cfg.UpstreamPageSize, err = getEnvInt("HOPLIST_UPSTREAM_PAGE_SIZE", cfg.UpstreamPageSize); err != nil {
		return nil, err
	}
	if cfg.RateBurst, err = getEnvInt("HOPLIST_RATE_BURST", cfg.RateBurst); err != nil {
		return nil, err
	}
	if cfg.RatePerSec, err = getEnvInt("HOPLIST_RATE_PER_SEC", cfg.RatePerSec); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(cfg.Base, "/") {
		return nil, fmt.Errorf("HOPLIST_BASE must start with a slash, got %q", cfg.Base)
	}
	cfg.Base = strings.TrimRight(cfg.Base, "/")
	return cfg, nil
}

// Production reports whether deployment safety checks apply.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Env, envProduction)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
