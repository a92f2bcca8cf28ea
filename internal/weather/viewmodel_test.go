package weather

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/i474232898/weather-tickler/internal/scene"
)

func floatPtr(v float64) *float64 { return &v }

// testBatch builds n 3-hourly samples starting at start. The first sample
// matches the rain scenario used across tests.
func testBatch(start time.Time, n int) ForecastBatch {
	batch := ForecastBatch{
		City: City{
			Name:    "London",
			Country: "GB",
			Coord:   Coordinates{Lat: 51.5, Lon: -0.12},
			Sunrise: time.Date(2024, 6, 3, 4, 43, 0, 0, time.UTC).Unix(),
			Sunset:  time.Date(2024, 6, 3, 20, 12, 0, 0, time.UTC).Unix(),
		},
	}
	for i := 0; i < n; i++ {
		batch.Samples = append(batch.Samples, RawSample{
			Timestamp:         start.Add(time.Duration(i) * 3 * time.Hour).Unix(),
			Condition:         "Clouds",
			Description:       "broken clouds",
			TemperatureC:      15,
			TempMinC:          12,
			TempMaxC:          17,
			HumidityPct:       60,
			PressureHpa:       1015,
			VisibilityM:       10000,
			CloudsPct:         75,
			WindSpeedMS:       2,
			WindGustMS:        3,
			WindDirectionDeg:  100,
			PrecipProbability: 0.1,
		})
	}

	first := &batch.Samples[0]
	first.Condition = "Rain"
	first.Description = "light rain"
	first.TemperatureC = 18
	first.WindSpeedMS = 5
	first.WindGustMS = 8
	first.WindDirectionDeg = 90
	first.PrecipProbability = 0.64
	first.RainMm = floatPtr(1.2)
	return batch
}

var testAir = AirQuality{
	Index:      2,
	Components: Components{PM2_5: 4.1, PM10: 6.3, NO2: 12, O3: 60, SO2: 1, CO: 220},
}

func TestBuildViewModelScenario(t *testing.T) {
	start := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	vm, err := BuildViewModel(testBatch(start, 40), testAir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vm.Temperature != 18 {
		t.Errorf("Temperature = %d, want 18", vm.Temperature)
	}
	if vm.WindSpeed != 18 {
		t.Errorf("WindSpeed = %d, want 18", vm.WindSpeed)
	}
	if got := ResolveWindDirectionName(vm.Wind[0].Direction); got != "E" {
		t.Errorf("direction = %q, want E", got)
	}
	if vm.Scene.Key != scene.NewKey(scene.CategoryRain, scene.SegmentAfternoon) {
		t.Errorf("scene = %q, want rain-afternoon", vm.Scene.Key)
	}

	if vm.Location != "London, GB" {
		t.Errorf("Location = %q", vm.Location)
	}
	if vm.Visibility != 10 || vm.Humidity != 60 || vm.Pressure != 1015 {
		t.Errorf("unexpected current stats: %+v", vm)
	}
	if vm.Sunrise != "04:43 AM" || vm.Sunset != "08:12 PM" {
		t.Errorf("sunrise/sunset = %q/%q", vm.Sunrise, vm.Sunset)
	}

	if vm.AQI.Category != AQIFair || vm.AQI.MainPollutant != PollutantCO || vm.AQI.Value != 2 {
		t.Errorf("unexpected AQI: %+v", vm.AQI)
	}
}

func TestBuildViewModelDownsampling(t *testing.T) {
	start := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	vm, err := BuildViewModel(testBatch(start, 40), testAir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vm.Forecast) != 5 {
		t.Fatalf("expected 5 daily entries, got %d", len(vm.Forecast))
	}
	for i, d := range vm.Forecast {
		want := start.Add(time.Duration(i) * 24 * time.Hour).Unix()
		if d.Timestamp != want {
			t.Errorf("day %d timestamp = %d, want %d", i, d.Timestamp, want)
		}
	}

	day0 := vm.Forecast[0]
	if day0.Day != "Mon" || day0.Date != "Jun 3" || day0.Condition != "rain" {
		t.Errorf("unexpected first day: %+v", day0)
	}
	if day0.Precipitation != 64 || day0.Wind != 18 || day0.High != 17 || day0.Low != 12 {
		t.Errorf("unexpected first day values: %+v", day0)
	}

	if len(vm.Wind) != 8 || len(vm.Precipitation) != 8 || len(vm.Radar) != 8 {
		t.Fatalf("hourly windows must hold 8 entries, got %d/%d/%d", len(vm.Wind), len(vm.Precipitation), len(vm.Radar))
	}
	if vm.Wind[0].Time != "2 PM" || vm.Wind[1].Time != "5 PM" {
		t.Errorf("unexpected time labels %q, %q", vm.Wind[0].Time, vm.Wind[1].Time)
	}
	if vm.Wind[0].Gust != 29 {
		t.Errorf("gust = %d, want 29", vm.Wind[0].Gust)
	}

	p0 := vm.Precipitation[0]
	if p0.Type != PrecipitationRain || p0.Amount != 1.2 || p0.Probability != 64 {
		t.Errorf("unexpected precipitation entry: %+v", p0)
	}
	r1 := vm.Radar[1]
	if r1.Type != RadarMixed || r1.Level != IntensityNone || r1.Coverage != 75 {
		t.Errorf("unexpected radar entry: %+v", r1)
	}
}

func TestBuildViewModelShortBatch(t *testing.T) {
	start := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	vm, err := BuildViewModel(testBatch(start, 3), testAir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vm.Wind) != 3 || len(vm.Forecast) != 1 {
		t.Fatalf("unexpected lengths: wind=%d forecast=%d", len(vm.Wind), len(vm.Forecast))
	}
}

func TestBuildViewModelUsesLocationOffset(t *testing.T) {
	// 10:00 UTC is 19:00 in Tokyo.
	start := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	batch := testBatch(start, 8)
	batch.City.UTCOffset = 9 * 3600

	vm, err := BuildViewModel(batch, testAir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.Scene.Segment != scene.SegmentEvening {
		t.Errorf("segment = %q, want evening", vm.Scene.Segment)
	}
	if vm.Wind[0].Time != "7 PM" {
		t.Errorf("time label = %q, want 7 PM", vm.Wind[0].Time)
	}
	if vm.Sunrise != "01:43 PM" {
		t.Errorf("sunrise = %q", vm.Sunrise)
	}
}

func TestBuildViewModelMalformed(t *testing.T) {
	if _, err := BuildViewModel(ForecastBatch{}, testAir); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse for empty batch, got %v", err)
	}

	batch := testBatch(time.Unix(0, 0), 2)
	batch.Samples[1].Condition = ""
	if _, err := BuildViewModel(batch, testAir); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse for missing condition, got %v", err)
	}
}

func TestSummaries(t *testing.T) {
	start := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	vm, err := BuildViewModel(testBatch(start, 8), testAir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wind := SummarizeWind(vm.Wind)
	// Speeds: 18 then 7 x 7 km/h, mean 8.375.
	if wind.CurrentSpeed != 18 || wind.DirectionName != "E" || wind.AverageSpeed != 8 {
		t.Errorf("unexpected wind summary: %+v", wind)
	}
	if wind.MaxGust != 29 || wind.Variability != VariabilityLow {
		t.Errorf("unexpected wind summary: %+v", wind)
	}

	precip := SummarizePrecipitation(vm.Precipitation)
	if math.Abs(precip.TotalMm-1.2) > 1e-9 || precip.MaxProbability != 64 {
		t.Errorf("unexpected precipitation summary: %+v", precip)
	}

	empty := SummarizeWind(nil)
	if empty.CurrentSpeed != 0 || empty.DirectionName != "N" || empty.Variability != VariabilityLow {
		t.Errorf("unexpected empty summary: %+v", empty)
	}
}

type fakeProvider struct {
	batch  ForecastBatch
	air    AirQuality
	lastQ  Query
	lastAQ Coordinates
	fcErr  error
	airErr error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) FetchForecast(ctx context.Context, q Query) (ForecastBatch, error) {
	f.lastQ = q
	return f.batch, f.fcErr
}

func (f *fakeProvider) FetchAirQuality(ctx context.Context, c Coordinates) (AirQuality, error) {
	f.lastAQ = c
	return f.air, f.airErr
}

type fakeGeocoder struct {
	coord Coordinates
	err   error
}

func (g fakeGeocoder) Geocode(ctx context.Context, q Query) (Coordinates, error) {
	return g.coord, g.err
}

func TestServiceLookup(t *testing.T) {
	p := &fakeProvider{
		batch: testBatch(time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC), 16),
		air:   testAir,
	}
	svc := NewService(p, nil, "London,UK")

	vm, err := svc.Lookup(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.lastQ.City != "London" || p.lastQ.Country != "UK" || p.lastQ.Coord != nil {
		t.Errorf("unexpected query: %+v", p.lastQ)
	}
	if p.lastAQ != p.batch.City.Coord {
		t.Errorf("air quality should use forecast coordinates, got %+v", p.lastAQ)
	}
	if vm.Scene.Key != "rain-afternoon" {
		t.Errorf("scene = %q", vm.Scene.Key)
	}
}

func TestServiceLookupBlankUsesDefault(t *testing.T) {
	p := &fakeProvider{batch: testBatch(time.Unix(0, 0), 8), air: testAir}
	svc := NewService(p, nil, "London,UK")

	for _, raw := range []string{"", "   ", "\t\n"} {
		p.lastQ = Query{}
		if _, err := svc.Lookup(context.Background(), raw); err != nil {
			t.Fatalf("Lookup(%q): unexpected error: %v", raw, err)
		}
		if p.lastQ.Key() != "London,UK" {
			t.Errorf("Lookup(%q) searched %q, want the default location", raw, p.lastQ.Key())
		}
	}
}

func TestServiceLookupGeocodes(t *testing.T) {
	p := &fakeProvider{batch: testBatch(time.Unix(0, 0), 8), air: testAir}
	svc := NewService(p, fakeGeocoder{coord: Coordinates{Lat: 48.85, Lon: 2.35}}, "London,UK")

	if _, err := svc.Lookup(context.Background(), "Paris,FR"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.lastQ.Coord == nil || p.lastQ.Coord.Lat != 48.85 {
		t.Errorf("expected geocoded coordinates, got %+v", p.lastQ)
	}

	svc = NewService(p, fakeGeocoder{err: errors.New("no results")}, "London,UK")
	if _, err := svc.Lookup(context.Background(), "Paris,FR"); err != nil {
		t.Fatalf("geocoder failure should fall back to name search: %v", err)
	}
	if p.lastQ.Coord != nil {
		t.Errorf("expected name search, got %+v", p.lastQ)
	}
}

func TestServiceLookupErrors(t *testing.T) {
	p := &fakeProvider{fcErr: ErrUpstream}
	svc := NewService(p, nil, "")

	if _, err := svc.Lookup(context.Background(), ""); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
	if _, err := svc.Lookup(context.Background(), "London"); !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}

	p.fcErr = nil
	p.batch = testBatch(time.Unix(0, 0), 8)
	p.airErr = ErrMalformedResponse
	if _, err := svc.Lookup(context.Background(), "London"); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery(" New York , US ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.City != "New York" || q.Country != "US" || q.Key() != "New York,US" {
		t.Errorf("unexpected query: %+v", q)
	}

	q, _ = ParseQuery("Tokyo")
	if q.Key() != "Tokyo" {
		t.Errorf("Key() = %q", q.Key())
	}

	for _, bad := range []string{"", "  ", ",FR"} {
		if _, err := ParseQuery(bad); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("ParseQuery(%q) error = %v", bad, err)
		}
	}
}
