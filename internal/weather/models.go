package weather

import (
	"fmt"
	"strings"
	"time"

	"github.com/i474232898/weather-tickler/internal/scene"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Query identifies the location a user searched for.
// City is required; Country and Coord are optional.
type Query struct {
	City    string       `json:"city"`
	Country string       `json:"country,omitempty"`
	Coord   *Coordinates `json:"coord,omitempty"`
}

// ParseQuery splits a "City,Country" search string.
func ParseQuery(s string) (Query, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Query{}, ErrEmptyQuery
	}

	city, country, _ := strings.Cut(s, ",")
	q := Query{
		City:    strings.TrimSpace(city),
		Country: strings.TrimSpace(country),
	}
	if q.City == "" {
		return Query{}, fmt.Errorf("%w: missing city in %q", ErrEmptyQuery, s)
	}
	return q, nil
}

// Key returns the canonical "City,Country" form used upstream and in logs.
func (q Query) Key() string {
	if q.Country == "" {
		return q.City
	}
	return q.City + "," + q.Country
}

// City is the location block of a forecast response.
type City struct {
	Name    string      `json:"name"`
	Country string      `json:"country"`
	Coord   Coordinates `json:"coord"`
	Sunrise int64       `json:"sunrise"` // unix seconds
	Sunset  int64       `json:"sunset"`  // unix seconds
	// UTCOffset is the location's offset from UTC in seconds.
	UTCOffset int `json:"timezone"`
}

// Zone returns a fixed zone for the city's UTC offset.
func (c City) Zone() *time.Location {
	return time.FixedZone(c.Name, c.UTCOffset)
}

// RawSample is one upstream forecast interval (3 hours).
type RawSample struct {
	Timestamp   int64  `json:"dt"` // unix seconds
	Condition   string `json:"condition"`
	Description string `json:"description"`

	TemperatureC float64 `json:"temperatureC"`
	TempMinC     float64 `json:"tempMinC"`
	TempMaxC     float64 `json:"tempMaxC"`
	HumidityPct  float64 `json:"humidityPct"`
	PressureHpa  float64 `json:"pressureHpa"`
	VisibilityM  float64 `json:"visibilityM"`
	CloudsPct    float64 `json:"cloudsPct"`

	WindSpeedMS      float64 `json:"windSpeedMs"`
	WindGustMS       float64 `json:"windGustMs"`
	WindDirectionDeg float64 `json:"windDirectionDeg"`

	// PrecipProbability is in [0, 1].
	PrecipProbability float64  `json:"precipProbability"`
	RainMm            *float64 `json:"rainMm,omitempty"`
	SnowMm            *float64 `json:"snowMm,omitempty"`
}

// PrecipitationMm returns the accumulated amount for the interval. Rain wins
// over snow when both are reported.
func (r RawSample) PrecipitationMm() float64 {
	switch {
	case r.RainMm != nil:
		return *r.RainMm
	case r.SnowMm != nil:
		return *r.SnowMm
	default:
		return 0
	}
}

// ForecastBatch is a parsed forecast response, ordered by time in 3-hour steps.
type ForecastBatch struct {
	City    City        `json:"city"`
	Samples []RawSample `json:"samples"`
}

// Components holds pollutant concentrations in μg/m³.
type Components struct {
	PM2_5 float64 `json:"pm2_5"`
	PM10  float64 `json:"pm10"`
	NO2   float64 `json:"no2"`
	O3    float64 `json:"o3"`
	SO2   float64 `json:"so2"`
	CO    float64 `json:"co"`
}

// AirQuality is one upstream air-pollution sample.
type AirQuality struct {
	Index      int        `json:"aqi"`
	Components Components `json:"components"`
}

// AQIBlock is the air-quality part of the view.
type AQIBlock struct {
	Value         int         `json:"value"`
	Category      AQICategory `json:"category"`
	MainPollutant Pollutant   `json:"mainPollutant"`
	Components    Components  `json:"components"`
}

// DailyForecast is one card on the multi-day forecast tab.
type DailyForecast struct {
	Day           string `json:"day"`
	Date          string `json:"date"`
	Timestamp     int64  `json:"timestamp"`
	Temp          int    `json:"temp"`
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Condition     string `json:"condition"`
	Precipitation int    `json:"precipitation"` // percent
	Wind          int    `json:"wind"`          // km/h
}

// WindEntry is one 3-hour point on the wind tab.
type WindEntry struct {
	Speed     int     `json:"speed"` // km/h
	Direction float64 `json:"direction"`
	Gust      int     `json:"gust"` // km/h
	Time      string  `json:"time"`
}

// PrecipitationEntry is one 3-hour point on the precipitation tab.
type PrecipitationEntry struct {
	Type        PrecipitationType `json:"type"`
	Amount      float64           `json:"amount"` // mm
	Probability int               `json:"probability"`
	Time        string            `json:"time"`
}

// RadarEntry is one 3-hour point on the radar tab.
type RadarEntry struct {
	Time      string         `json:"time"`
	Intensity float64        `json:"intensity"`
	Level     RadarIntensity `json:"level"`
	Coverage  float64        `json:"coverage"` // percent
	Type      RadarType      `json:"type"`
}

// ViewModel is the render-ready snapshot of one query. It is replaced
// wholesale on every successful query and never merged.
type ViewModel struct {
	Location    string      `json:"location"`
	Coord       Coordinates `json:"coord"`
	Temperature int         `json:"temperature"` // °C
	Condition   string      `json:"condition"`
	Description string      `json:"description"`
	Humidity    int         `json:"humidity"`
	WindSpeed   int         `json:"windSpeed"`  // km/h
	Visibility  int         `json:"visibility"` // km
	Pressure    int         `json:"pressure"`   // hPa
	Sunrise     string      `json:"sunrise"`
	Sunset      string      `json:"sunset"`
	Timestamp   int64       `json:"timestamp"`
	LocalTime   time.Time   `json:"localTime"`

	AQI AQIBlock `json:"aqi"`

	Forecast      []DailyForecast      `json:"forecast"`
	Wind          []WindEntry          `json:"windData"`
	Precipitation []PrecipitationEntry `json:"precipitationData"`
	Radar         []RadarEntry         `json:"radarData"`

	Scene scene.Scene `json:"scene"`
}

// Hook returns the styling notification for this view's scene.
func (v ViewModel) Hook() scene.Hook {
	return scene.NewHook(v.Condition, v.Scene)
}
