package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// Service runs one fetch-and-derive cycle per query. It keeps no state
// between calls and caches nothing.
type Service struct {
	provider        Provider
	geocoder        Geocoder
	defaultLocation string
}

// NewService creates a new Service. geocoder may be nil.
func NewService(provider Provider, geocoder Geocoder, defaultLocation string) *Service {
	return &Service{
		provider:        provider,
		geocoder:        geocoder,
		defaultLocation: defaultLocation,
	}
}

// DefaultLocation is the query used for a blank search.
func (s *Service) DefaultLocation() string {
	return s.defaultLocation
}

// Lookup fetches the forecast for the query, then the air quality at the
// forecast's coordinates, and derives the view model.
func (s *Service) Lookup(ctx context.Context, raw string) (ViewModel, error) {
	if s.provider == nil {
		return ViewModel{}, errors.New("no weather provider configured")
	}
	if strings.TrimSpace(raw) == "" {
		raw = s.defaultLocation
	}

	q, err := ParseQuery(raw)
	if err != nil {
		return ViewModel{}, err
	}

	if s.geocoder != nil {
		coord, err := s.geocoder.Geocode(ctx, q)
		if err != nil {
			// Fall back to a name search upstream.
			log.Printf("INFO: geocoding %q failed, searching by name: %v", q.Key(), err)
		} else {
			q.Coord = &coord
		}
	}

	log.Printf("DEBUG: Lookup called for %s via %s", q.Key(), s.provider.Name())

	batch, err := s.provider.FetchForecast(ctx, q)
	if err != nil {
		return ViewModel{}, fmt.Errorf("forecast for %s: %w", q.Key(), err)
	}

	aq, err := s.provider.FetchAirQuality(ctx, batch.City.Coord)
	if err != nil {
		return ViewModel{}, fmt.Errorf("air quality for %s: %w", q.Key(), err)
	}

	vm, err := BuildViewModel(batch, aq)
	if err != nil {
		return ViewModel{}, fmt.Errorf("view for %s: %w", q.Key(), err)
	}
	return vm, nil
}
