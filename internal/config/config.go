package config

import (
	"os"
	"strings"

	"mileage-service/internal/domain"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// PlaceholderToken is the value shipped in example env files. It is never a
// usable token.
const PlaceholderToken = "YOUR_MAPBOX_ACCESS_TOKEN"

type Config struct {
	AccessToken string
	BaseURL     string
	Profile     string

	CacheBackend string
	CacheDir     string
	SQLitePath   string
	DatabaseURL  string
	RedisAddr    string

	LocationsPath string
	OutputPath    string
	OutputFormat  string
	OutputName    string

	Port     string
	LogLevel string
}

// Get returns the environment value of key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv reads .env into the environment if present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found (using environment variables)")
	}
}

// Load builds a Config from the environment. It does not validate.
func Load() Config {
	return Config{
		AccessToken: os.Getenv("MAPBOX_ACCESS_TOKEN"),
		BaseURL:     Get("MAPBOX_BASE_URL", "https://api.mapbox.com"),
		Profile:     Get("MAPBOX_PROFILE", "driving"),

		CacheBackend: Get("CACHE_BACKEND", "file"),
		CacheDir:     Get("CACHE_DIR", "data/cache"),
		SQLitePath:   Get("SQLITE_PATH", "data/cache.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisAddr:    Get("REDIS_ADDR", "localhost:6379"),

		LocationsPath: Get("LOCATIONS_PATH", "configs/locations.yaml"),
		OutputPath:    Get("OUTPUT_PATH", "mileage_table.js"),
		OutputFormat:  Get("OUTPUT_FORMAT", "js"),
		OutputName:    Get("OUTPUT_NAME", "mileageTable"),

		Port:     Get("PORT", "8080"),
		LogLevel: Get("LOG_LEVEL", "info"),
	}
}

// ValidateAccessToken rejects a missing or placeholder token before any
// request is made.
func ValidateAccessToken(token string) error {
	t := strings.TrimSpace(token)
	if t == "" {
		return &domain.ConfigError{Field: "MAPBOX_ACCESS_TOKEN", Reason: "is required"}
	}
	if t == PlaceholderToken {
		return &domain.ConfigError{Field: "MAPBOX_ACCESS_TOKEN", Reason: "is still the placeholder value"}
	}
	return nil
}
