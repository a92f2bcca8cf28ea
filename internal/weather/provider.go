package weather

import (
	"context"
)

// Provider abstracts the upstream weather API (forecast + air quality).
type Provider interface {
	Name() string
	FetchForecast(ctx context.Context, q Query) (ForecastBatch, error)
	FetchAirQuality(ctx context.Context, coord Coordinates) (AirQuality, error)
}

// Geocoder resolves a free-text query to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, q Query) (Coordinates, error)
}
