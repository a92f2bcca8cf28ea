package main

import (
	"log"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/i474232898/weather-tickler/internal/config"
	"github.com/i474232898/weather-tickler/internal/weather"
	"github.com/i474232898/weather-tickler/internal/weather/providers"
)

// newService builds the fetch pipeline from configuration.
func newService(cfg *config.AppConfig) *weather.Service {
	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Provider with resilience (backoff + circuit breaker + rate limit).
	provider := providers.NewOpenWeatherProvider(httpClient, providers.OpenWeatherConfig{
		APIKey:  cfg.OpenWeatherAPIKey,
		BaseURL: cfg.OpenWeatherBaseURL,
		Limiter: limiter,
	})

	// Geocoding requires a Google API key; without it searches go by name.
	var geo weather.Geocoder
	if cfg.GeocoderAPIKey != "" {
		geo = providers.NewGoogleGeocoder(cfg.GeocoderAPIKey)
	} else {
		log.Printf("INFO: GEOCODER_API_KEY not set; searching by city name")
	}

	return weather.NewService(provider, geo, cfg.DefaultLocation)
}
