// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DataPath is the location of the SQLite database file holding all
	// collections. Defaults to "travelmate.db" in the working directory.
	DataPath string

	// AmadeusBaseURL overrides the lookup API base URL (used by tests).
	// Empty means the Amadeus test environment.
	AmadeusBaseURL string

	// AmadeusClientID and AmadeusClientSecret are the lookup API
	// credentials. Both optional: when either is missing the search
	// endpoints serve empty results with an error status instead of
	// failing startup.
	AmadeusClientID     string
	AmadeusClientSecret string

	// SearchRPS and SearchBurst bound the request rate of the /search
	// routes, protecting the external API quota.
	SearchRPS   float64
	SearchBurst int
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigins:         splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DataPath:            getEnv("DATA_PATH", "travelmate.db"),
		AmadeusBaseURL:      os.Getenv("AMADEUS_BASE_URL"),
		AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		SearchRPS:           5,
		SearchBurst:         10,
	}

	if v := os.Getenv("SEARCH_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return Config{}, fmt.Errorf("SEARCH_RPS must be a positive number, got %q", v)
		}
		cfg.SearchRPS = rps
	}
	if v := os.Getenv("SEARCH_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return Config{}, fmt.Errorf("SEARCH_BURST must be a positive integer, got %q", v)
		}
		cfg.SearchBurst = burst
	}

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

// splitCSV splits a comma-separated string into a trimmed slice, ignoring
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
