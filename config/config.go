package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultDatabasePath    = "catalog.db"
	defaultRandomMinRating = 4.0
	defaultPreviewLimit    = 10
	defaultSearchLimit     = 10
	maxListLimit           = 100
)

type Config struct {
	// database path
	DatabasePath string

	// allowed browser origins for CORS
	AllowedOrigins []string

	// minimum rating a movie must carry to qualify for the random pick
	RandomMinRating float64

	// default result caps for the preview and search endpoints
	DefaultPreviewLimit int
	DefaultSearchLimit  int
	MaxListLimit        int
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvFloatOrDefault(envVar string, defaultVal float64) float64 {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %v. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	cfg := Config{
		DatabasePath:        getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		RandomMinRating:     getEnvFloatOrDefault("RANDOM_MIN_RATING", defaultRandomMinRating),
		DefaultPreviewLimit: getEnvIntOrDefault("PREVIEW_LIMIT", defaultPreviewLimit),
		DefaultSearchLimit:  getEnvIntOrDefault("SEARCH_LIMIT", defaultSearchLimit),
		MaxListLimit:        maxListLimit,
	}

	origins := getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}
