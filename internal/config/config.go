package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the defaults of the mapcanvas command
type Config struct {
	// Output
	Format string
	Width  float64
	Height float64

	// Logging
	LogLevel zerolog.Level

	// Map documents
	Strict bool
}

// Load reads configuration from the .env files found in the
// working directory, then from environment variables, with sensible defaults.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f) // missing files are fine
	}

	return &Config{
		Format: strings.ToLower(getEnv("MAPCANVAS_FORMAT", "svg")),
		Width:  getEnvFloat("MAPCANVAS_WIDTH", 1200),
		Height: getEnvFloat("MAPCANVAS_HEIGHT", 850),

		LogLevel: getEnvLevel("MAPCANVAS_LOG_LEVEL", zerolog.InfoLevel),

		Strict: getEnvBool("MAPCANVAS_STRICT", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvLevel(key string, defaultValue zerolog.Level) zerolog.Level {
	if value := os.Getenv(key); value != "" {
		if l, err := zerolog.ParseLevel(strings.ToLower(value)); err == nil {
			return l
		}
	}
	return defaultValue
}
