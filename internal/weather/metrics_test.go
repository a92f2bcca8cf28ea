package weather

import (
	"math"
	"testing"
)

func TestToDisplayTemp(t *testing.T) {
	tests := []struct {
		name    string
		celsius float64
		unit    TempUnit
		want    int
	}{
		{"freezing F", 0, Fahrenheit, 32},
		{"boiling F", 100, Fahrenheit, 212},
		{"identity C", 20, Celsius, 20},
		{"negative F", -40, Fahrenheit, -40},
		{"rounded F", 18, Fahrenheit, 64},
		{"rounded C", 18.6, Celsius, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDisplayTemp(tt.celsius, tt.unit); got != tt.want {
				t.Errorf("ToDisplayTemp(%v, %s) = %d, want %d", tt.celsius, tt.unit, got, tt.want)
			}
		})
	}
}

func TestParseTempUnit(t *testing.T) {
	for in, want := range map[string]TempUnit{"": Celsius, "c": Celsius, "C": Celsius, " f ": Fahrenheit} {
		got, err := ParseTempUnit(in)
		if err != nil || got != want {
			t.Errorf("ParseTempUnit(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseTempUnit("K"); err == nil {
		t.Error("expected error for K")
	}
}

func TestResolveAQICategory(t *testing.T) {
	tests := []struct {
		index int
		want  AQICategory
	}{
		{1, AQIGood},
		{2, AQIFair},
		{3, AQIModerate},
		{4, AQIPoor},
		{5, AQIVeryPoor},
		{0, AQIUnknown},
		{6, AQIUnknown},
		{-1, AQIUnknown},
	}

	for _, tt := range tests {
		if got := ResolveAQICategory(tt.index); got != tt.want {
			t.Errorf("ResolveAQICategory(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestResolveMainPollutant(t *testing.T) {
	tests := []struct {
		name string
		c    Components
		want Pollutant
	}{
		{"first key wins tie", Components{PM2_5: 10, PM10: 10, NO2: 5, O3: 1, SO2: 1, CO: 1}, PollutantPM25},
		{"strict max", Components{PM2_5: 1, PM10: 2, NO2: 3, O3: 80, SO2: 4, CO: 5}, PollutantO3},
		{"co dominates", Components{PM2_5: 4, PM10: 6, NO2: 12, O3: 60, SO2: 1, CO: 220}, PollutantCO},
		{"tie later keys", Components{NO2: 7, SO2: 7}, PollutantNO2},
		{"all zero", Components{}, PollutantPM25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMainPollutant(tt.c); got != tt.want {
				t.Errorf("ResolveMainPollutant() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveWindDirectionName(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{11.2, "N"},
		{11.25, "NNE"},
		{22, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{337.5, "NNW"},
		{348.75, "N"},
		{359.9, "N"},
		{360, "N"},
		{450, "E"},
		{-90, "W"},
		{-30, "NNW"},
		// -10 normalizes to 350, which rounds to sector 16 = N.
		{-10, "N"},
	}

	for _, tt := range tests {
		if got := ResolveWindDirectionName(tt.degrees); got != tt.want {
			t.Errorf("ResolveWindDirectionName(%v) = %q, want %q", tt.degrees, got, tt.want)
		}
	}

	if got := ResolveWindDirectionName(math.NaN()); got != "N" {
		t.Errorf("NaN = %q", got)
	}
}

func TestResolveWindVariability(t *testing.T) {
	tests := []struct {
		dirs []float64
		want Variability
	}{
		{[]float64{10, 60}, VariabilityHigh},
		{[]float64{10, 25}, VariabilityLow},
		{[]float64{10, 35}, VariabilityModerate},
		{[]float64{10, 30}, VariabilityLow},
		{[]float64{10, 55}, VariabilityModerate},
		// Wrap-around is not treated as circular.
		{[]float64{350, 10}, VariabilityHigh},
		{[]float64{42}, VariabilityLow},
		{nil, VariabilityLow},
	}

	for _, tt := range tests {
		if got := ResolveWindVariability(tt.dirs); got != tt.want {
			t.Errorf("ResolveWindVariability(%v) = %q, want %q", tt.dirs, got, tt.want)
		}
	}
}

func TestAggregates(t *testing.T) {
	if got := AverageWindSpeed([]float64{18, 20, 25}); got != 21 {
		t.Errorf("AverageWindSpeed = %d, want 21", got)
	}
	if got := MaxGust([]float64{29, 40, 12}); got != 40 {
		t.Errorf("MaxGust = %v, want 40", got)
	}
	if got := TotalPrecipitation([]float64{1.2, 0, 3.3}); math.Abs(got-4.5) > 1e-9 {
		t.Errorf("TotalPrecipitation = %v, want 4.5", got)
	}
	if got := MaxPrecipitationProbability([]float64{10, 64, 20}); got != 64 {
		t.Errorf("MaxPrecipitationProbability = %v, want 64", got)
	}
}

func TestAggregatesEmpty(t *testing.T) {
	if got := AverageWindSpeed(nil); got != 0 {
		t.Errorf("AverageWindSpeed(nil) = %d", got)
	}
	if got := MaxGust(nil); got != 0 {
		t.Errorf("MaxGust(nil) = %v", got)
	}
	if got := TotalPrecipitation(nil); got != 0 {
		t.Errorf("TotalPrecipitation(nil) = %v", got)
	}
	if got := MaxPrecipitationProbability(nil); got != 0 {
		t.Errorf("MaxPrecipitationProbability(nil) = %v", got)
	}
}

func TestPrecipitationAndRadarTypes(t *testing.T) {
	tests := []struct {
		condition string
		precip    PrecipitationType
		radar     RadarType
	}{
		{"Rain", PrecipitationRain, RadarRain},
		{"Snow", PrecipitationSnow, RadarSnow},
		{"Clouds", PrecipitationNone, RadarMixed},
		{"Thunderstorm", PrecipitationNone, RadarMixed},
	}

	for _, tt := range tests {
		if got := ResolvePrecipitationType(tt.condition); got != tt.precip {
			t.Errorf("ResolvePrecipitationType(%q) = %q", tt.condition, got)
		}
		if got := ResolveRadarType(tt.condition); got != tt.radar {
			t.Errorf("ResolveRadarType(%q) = %q", tt.condition, got)
		}
	}
}

func TestResolveRadarIntensity(t *testing.T) {
	tests := []struct {
		amount float64
		want   RadarIntensity
	}{
		{0, IntensityNone},
		{0.1, IntensityLight},
		{0.3, IntensityModerate},
		{0.59, IntensityModerate},
		{0.6, IntensityHeavy},
		{4, IntensityHeavy},
	}

	for _, tt := range tests {
		if got := ResolveRadarIntensity(tt.amount); got != tt.want {
			t.Errorf("ResolveRadarIntensity(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestTemperatureRangeFill(t *testing.T) {
	if got := TemperatureRangeFill(15, 10, 20); got != 50 {
		t.Errorf("mid = %v", got)
	}
	if got := TemperatureRangeFill(12, 12, 12); got != 0 {
		t.Errorf("flat = %v", got)
	}
	if got := TemperatureRangeFill(25, 10, 20); got != 100 {
		t.Errorf("clamped = %v", got)
	}
}
