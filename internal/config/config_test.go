package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "weather-history.db", cfg.DBPath)
	require.Equal(t, "https://geocoding-api.open-meteo.com", cfg.GeocodingBaseURL)
	require.Equal(t, 500, cfg.SearchCache.MaxSize)
	require.Equal(t, 10*time.Minute, cfg.SearchCache.DefaultTTL)
	require.Equal(t, time.Hour, cfg.WeatherCache.DefaultTTL)
	require.Equal(t, float64(10), cfg.RateLimitRPS)
	require.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEARCH_CACHE_MAX_SIZE", "42")
	t.Setenv("SEARCH_CACHE_TTL", "90s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := Load()

	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, 42, cfg.SearchCache.MaxSize)
	require.Equal(t, 90*time.Second, cfg.SearchCache.DefaultTTL)
	require.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SEARCH_CACHE_MAX_SIZE", "not-a-number")
	t.Setenv("SEARCH_CACHE_TTL", "soon")

	cfg := Load()

	require.Equal(t, 500, cfg.SearchCache.MaxSize)
	require.Equal(t, 10*time.Minute, cfg.SearchCache.DefaultTTL)
}
