package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
// Note: This is a stateless service - parsing needs no database or auth,
// so configuration is limited to runtime environment and observability.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Parsing limits
	MaxInputLength int // Maximum accepted description length in characters
}

const defaultMaxInputLength = 5000

func Load() *Config {
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		Port:           getEnv("PORT", "8080"),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		MaxInputLength: getEnvInt("MAX_INPUT_LENGTH", defaultMaxInputLength),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// IsProduction returns true when running with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
