// Package config holds runtime configuration loaded from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DatasetPath string
	Port        int
	Dev         bool

	// Model hyperparameters. Changing the seed or tree count changes
	// predictions, so they are pinned here rather than per-request.
	Trees int
	Seed  int64

	// Occupancy assumption used for revenue projections, in (0, 1].
	Occupancy float64
}

// Load reads the .env file (if present) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system env vars")
	}

	return &Config{
		DatasetPath: getEnv("ROI_DATASET", "clean_airbnb_dc.csv"),
		Port:        getEnvInt("ROI_PORT", 8080),
		Dev:         getEnvBool("ROI_DEV", false),
		Trees:       getEnvInt("ROI_TREES", 50),
		Seed:        int64(getEnvInt("ROI_SEED", 42)),
		Occupancy:   getEnvFloat("ROI_OCCUPANCY", 0.65),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
