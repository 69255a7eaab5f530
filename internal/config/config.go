// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AuthToken is the expected Authorization header value. Empty disables auth.
	AuthToken string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB; 0 disables the cap.
	MaxBodyBytes int64

	// Migrate applies pending migrations on startup when MIGRATE is "1" or "true".
	Migrate bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		AuthToken:   os.Getenv("AUTH_TOKEN"),
	}

	var (
		missing []string
		err     error
	)

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || cfg.MaxBodyBytes < 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a non-negative integer")
	}

	cfg.Migrate, err = parseBool(getEnv("MIGRATE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("MIGRATE: %w", err)
	}

	return cfg, nil
}

// ClientConfig holds the settings for the terminal itinerary client.
type ClientConfig struct {
	// APIURL is the base URL of the Big Trip API. Required.
	APIURL string

	// Authorization is sent verbatim as the Authorization header.
	Authorization string

	// LogLevel controls the minimum log level. Defaults to "warn".
	LogLevel string

	// Timeout bounds each API call. Defaults to 60s.
	Timeout time.Duration
}

// LoadClient reads the client configuration from environment variables.
func LoadClient() (ClientConfig, error) {
	cfg := ClientConfig{
		APIURL:        os.Getenv("TRIP_API_URL"),
		Authorization: os.Getenv("TRIP_AUTHORIZATION"),
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
	}
	if cfg.APIURL == "" {
		return ClientConfig{}, fmt.Errorf("required environment variables not set: TRIP_API_URL")
	}

	timeout, err := time.ParseDuration(getEnv("TRIP_HTTP_TIMEOUT", "60s"))
	if err != nil || timeout <= 0 {
		return ClientConfig{}, fmt.Errorf("TRIP_HTTP_TIMEOUT must be a positive duration")
	}
	cfg.Timeout = timeout

	return cfg, nil
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

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
