// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Optional: when empty the
	// location catalog is served from the built-in table.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SessionTTL is how long an untouched session survives. Defaults to 2h.
	SessionTTL time.Duration

	// RateLimitRPS and RateLimitBurst bound requests per client IP.
	// A zero RPS disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// MapsAPIKey is the Google Maps Embed API key. Optional.
	MapsAPIKey string

	// ShareURL is the site address appended to share text.
	ShareURL string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable whose value cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		MapsAPIKey:  os.Getenv("MAPS_API_KEY"),
		ShareURL:    getEnv("SHARE_URL", "travelglobal.lovable.app"),
	}

	var invalid []string
	var err error

	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "2h")); err != nil || cfg.SessionTTL < 0 {
		invalid = append(invalid, "SESSION_TTL")
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64); err != nil || cfg.RateLimitRPS < 0 {
		invalid = append(invalid, "RATE_LIMIT_RPS")
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20")); err != nil || cfg.RateLimitBurst < 1 {
		invalid = append(invalid, "RATE_LIMIT_BURST")
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes < 1 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// LoadEnvFile populates the process environment from a dotenv file. Variables
// already set in the environment win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config.LoadEnvFile: %w", err)
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
