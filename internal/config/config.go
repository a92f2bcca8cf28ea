package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-tickler/internal/weather"
)

type AppConfig struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string

	// GeocoderAPIKey enables Google geocoding of searches when set.
	GeocoderAPIKey string

	// DefaultLocation is searched when the query is blank.
	DefaultLocation string
	DefaultUnit     weather.TempUnit

	HTTPTimeout time.Duration

	// RefreshInterval controls how often the default location is re-fetched (0 = disabled).
	RefreshInterval time.Duration

	// Outbound rate limit shared by all upstream calls.
	RateLimitRPS   float64
	RateLimitBurst int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.OpenWeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	cfg.DefaultLocation = getenvDefault("DEFAULT_LOCATION", "London,UK")

	unit, err := weather.ParseTempUnit(os.Getenv("TEMP_UNIT"))
	if err != nil {
		return nil, fmt.Errorf("invalid TEMP_UNIT: %w", err)
	}
	cfg.DefaultUnit = unit

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Refresh interval: default 15 minutes.
	refresh, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	if refresh < 0 {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: must not be negative")
	}
	cfg.RefreshInterval = refresh

	// OpenWeatherMap's free tier allows 60 calls per minute.
	rps, err := getenvFloat("RATE_LIMIT_RPS", 1)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: must be a positive number")
	}
	cfg.RateLimitRPS = rps

	burst, err := getenvInt("RATE_LIMIT_BURST", 5)
	if err != nil || burst < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: must be a positive integer")
	}
	cfg.RateLimitBurst = burst
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	if v := os.Getenv(key); v != "" {
		return strconv.Atoi(v)
	}
	return def, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	if v := os.Getenv(key); v != "" {
		return strconv.ParseFloat(v, 64)
	}
	return def, nil
}
