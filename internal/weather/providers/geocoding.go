package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-tickler/internal/weather"
)

// GoogleGeocoder resolves "City,Country" queries through the Google
// Geocoding API. The geocoder library keeps its key in a package variable,
// so calls are serialized.
type GoogleGeocoder struct {
	mu     sync.Mutex
	apiKey string
	lookup func(geocoder.Address) (geocoder.Location, error)
}

func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey: apiKey,
		lookup: geocoder.Geocoding,
	}
}

// Geocode returns the coordinates for the query. A query that already
// carries coordinates is returned as is.
func (g *GoogleGeocoder) Geocode(ctx context.Context, q weather.Query) (weather.Coordinates, error) {
	if q.Coord != nil {
		return *q.Coord, nil
	}
	if err := ctx.Err(); err != nil {
		return weather.Coordinates{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	geocoder.ApiKey = g.apiKey
	loc, err := g.lookup(geocoder.Address{
		City:    q.City,
		Country: q.Country,
	})
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("geocode %s: %w", q.Key(), err)
	}

	return weather.Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}, nil
}
