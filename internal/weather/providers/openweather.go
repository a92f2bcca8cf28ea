package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-tickler/internal/weather"
)

// DefaultOpenWeatherBaseURL is the public OpenWeatherMap 2.5 API root.
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

var validate = validator.New()

// OpenWeatherConfig configures the OpenWeatherMap client.
type OpenWeatherConfig struct {
	APIKey  string
	BaseURL string
	// Limiter is shared by forecast and air-quality calls.
	Limiter *rate.Limiter
}

// OpenWeatherProvider implements weather.Provider for OpenWeatherMap's
// 5-day/3-hour forecast and air pollution endpoints.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, cfg OpenWeatherConfig) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}

	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
			Limiter: cfg.Limiter,
		},
		circuit: cb,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type owmCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type owmCity struct {
	Name     string    `json:"name" validate:"required"`
	Country  string    `json:"country"`
	Coord    *owmCoord `json:"coord" validate:"required"`
	Sunrise  int64     `json:"sunrise"`
	Sunset   int64     `json:"sunset"`
	Timezone int       `json:"timezone"`
}

type owmMain struct {
	Temp     float64 `json:"temp"`
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Pressure float64 `json:"pressure"`
	Humidity float64 `json:"humidity"`
}

type owmCondition struct {
	Main        string `json:"main" validate:"required"`
	Description string `json:"description"`
}

type owmWind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
	Gust  float64 `json:"gust"`
}

type owmVolume struct {
	ThreeH *float64 `json:"3h"`
}

type owmInterval struct {
	Dt         int64          `json:"dt" validate:"required"`
	Main       *owmMain       `json:"main" validate:"required"`
	Weather    []owmCondition `json:"weather" validate:"required,min=1,dive"`
	Wind       *owmWind       `json:"wind" validate:"required"`
	Visibility float64        `json:"visibility"`
	Pop        float64        `json:"pop"`
	Clouds     struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Rain *owmVolume `json:"rain"`
	Snow *owmVolume `json:"snow"`
}

type owmForecast struct {
	City *owmCity      `json:"city" validate:"required"`
	List []owmInterval `json:"list" validate:"required,min=1,dive"`
}

type owmAirSample struct {
	Main struct {
		AQI int `json:"aqi"`
	} `json:"main"`
	Components weather.Components `json:"components"`
}

type owmAirPollution struct {
	List []owmAirSample `json:"list" validate:"required,min=1,dive"`
}

// FetchForecast calls /forecast by coordinates when known, else by name.
func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, q weather.Query) (weather.ForecastBatch, error) {
	if p.apiKey == "" {
		return weather.ForecastBatch{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	if q.Coord != nil {
		values.Set("lat", fmt.Sprintf("%f", q.Coord.Lat))
		values.Set("lon", fmt.Sprintf("%f", q.Coord.Lon))
	} else {
		values.Set("q", q.Key())
	}

	var payload owmForecast
	if err := p.getJSON(ctx, "/forecast", values, &payload); err != nil {
		return weather.ForecastBatch{}, err
	}

	batch := weather.ForecastBatch{
		City: weather.City{
			Name:      payload.City.Name,
			Country:   payload.City.Country,
			Coord:     weather.Coordinates{Lat: payload.City.Coord.Lat, Lon: payload.City.Coord.Lon},
			Sunrise:   payload.City.Sunrise,
			Sunset:    payload.City.Sunset,
			UTCOffset: payload.City.Timezone,
		},
		Samples: make([]weather.RawSample, 0, len(payload.List)),
	}

	for _, it := range payload.List {
		batch.Samples = append(batch.Samples, weather.RawSample{
			Timestamp:         it.Dt,
			Condition:         it.Weather[0].Main,
			Description:       it.Weather[0].Description,
			TemperatureC:      it.Main.Temp,
			TempMinC:          it.Main.TempMin,
			TempMaxC:          it.Main.TempMax,
			HumidityPct:       it.Main.Humidity,
			PressureHpa:       it.Main.Pressure,
			VisibilityM:       it.Visibility,
			CloudsPct:         it.Clouds.All,
			WindSpeedMS:       it.Wind.Speed,
			WindGustMS:        it.Wind.Gust,
			WindDirectionDeg:  it.Wind.Deg,
			PrecipProbability: it.Pop,
			RainMm:            volume(it.Rain),
			SnowMm:            volume(it.Snow),
		})
	}

	return batch, nil
}

// FetchAirQuality calls /air_pollution and returns the first sample.
func (p *OpenWeatherProvider) FetchAirQuality(ctx context.Context, coord weather.Coordinates) (weather.AirQuality, error) {
	if p.apiKey == "" {
		return weather.AirQuality{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("lat", fmt.Sprintf("%f", coord.Lat))
	values.Set("lon", fmt.Sprintf("%f", coord.Lon))

	var payload owmAirPollution
	if err := p.getJSON(ctx, "/air_pollution", values, &payload); err != nil {
		return weather.AirQuality{}, err
	}

	first := payload.List[0]
	return weather.AirQuality{
		Index:      first.Main.AQI,
		Components: first.Components,
	}, nil
}

// getJSON performs a resilient GET, decodes the body into out and checks the
// required structure.
func (p *OpenWeatherProvider) getJSON(ctx context.Context, path string, values url.Values, out interface{}) error {
	u := fmt.Sprintf("%s%s?%s", p.baseURL, path, values.Encode())
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", weather.ErrUpstream, path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", weather.ErrMalformedResponse, path, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s: %v", weather.ErrMalformedResponse, path, err)
	}
	return nil
}

// volume keeps the "object present but no 3h value" case distinct from absent.
func volume(v *owmVolume) *float64 {
	if v == nil {
		return nil
	}
	amount := 0.0
	if v.ThreeH != nil {
		amount = *v.ThreeH
	}
	return &amount
}
