package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/cache"
)

// Config holds every runtime setting. All values come from the environment
// with working defaults, so the server starts with no configuration at all.
type Config struct {
	Port   string
	Env    string
	DBPath string

	// Base URLs of the upstream weather services, overridable for tests.
	GeocodingBaseURL string
	ReverseBaseURL   string
	ArchiveBaseURL   string

	// One cache namespace per upstream concern plus one for rate limiter
	// state. Lifetimes differ: place names rarely change, weather history
	// never does but the payloads are large, searches churn.
	SearchCache  cache.Config
	ReverseCache cache.Config
	WeatherCache cache.Config
	LimiterCache cache.Config

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:   getEnv("PORT", "8080"),
		Env:    getEnv("APP_ENV", "development"),
		DBPath: getEnv("DB_PATH", "weather-history.db"),

		GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com"),
		ReverseBaseURL:   getEnv("REVERSE_GEOCODING_BASE_URL", "https://api.bigdatacloud.net"),
		ArchiveBaseURL:   getEnv("ARCHIVE_BASE_URL", "https://archive-api.open-meteo.com"),

		SearchCache: cache.Config{
			MaxSize:         getEnvInt("SEARCH_CACHE_MAX_SIZE", 500),
			DefaultTTL:      getEnvDuration("SEARCH_CACHE_TTL", 10*time.Minute),
			CleanupInterval: getEnvDuration("SEARCH_CACHE_CLEANUP_INTERVAL", 5*time.Minute),
		},
		ReverseCache: cache.Config{
			MaxSize:         getEnvInt("REVERSE_CACHE_MAX_SIZE", 1000),
			DefaultTTL:      getEnvDuration("REVERSE_CACHE_TTL", 6*time.Hour),
			CleanupInterval: getEnvDuration("REVERSE_CACHE_CLEANUP_INTERVAL", 10*time.Minute),
		},
		WeatherCache: cache.Config{
			MaxSize:         getEnvInt("WEATHER_CACHE_MAX_SIZE", 300),
			DefaultTTL:      getEnvDuration("WEATHER_CACHE_TTL", time.Hour),
			CleanupInterval: getEnvDuration("WEATHER_CACHE_CLEANUP_INTERVAL", 5*time.Minute),
		},
		LimiterCache: cache.Config{
			MaxSize:         getEnvInt("LIMITER_CACHE_MAX_SIZE", 5000),
			DefaultTTL:      getEnvDuration("LIMITER_CACHE_TTL", 3*time.Minute),
			CleanupInterval: getEnvDuration("LIMITER_CACHE_CLEANUP_INTERVAL", time.Minute),
		},

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
