package weather

import (
	"fmt"
	"math"
	"strings"

	"github.com/i474232898/weather-tickler/internal/common"
)

// TempUnit is a display unit for temperatures. Celsius is canonical.
type TempUnit string

const (
	Celsius    TempUnit = "C"
	Fahrenheit TempUnit = "F"
)

// ParseTempUnit accepts "C"/"F" in any case; blank means Celsius.
func ParseTempUnit(s string) (TempUnit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "C":
		return Celsius, nil
	case "F":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

// ToDisplayTemp converts a Celsius value for display. Fahrenheit is derived
// on every call and never stored.
func ToDisplayTemp(celsius float64, unit TempUnit) int {
	if unit == Fahrenheit {
		return int(math.Round(celsius*9/5 + 32))
	}
	return int(math.Round(celsius))
}

// MSToKMH converts an upstream m/s wind speed to km/h.
func MSToKMH(ms float64) float64 {
	return ms * 3.6
}

// AQICategory is the label for an upstream air-quality index.
type AQICategory string

const (
	AQIGood     AQICategory = "Good"
	AQIFair     AQICategory = "Fair"
	AQIModerate AQICategory = "Moderate"
	AQIPoor     AQICategory = "Poor"
	AQIVeryPoor AQICategory = "Very Poor"
	AQIUnknown  AQICategory = "Unknown"
)

// ResolveAQICategory maps the 1-5 index; anything else is Unknown.
func ResolveAQICategory(index int) AQICategory {
	switch index {
	case 1:
		return AQIGood
	case 2:
		return AQIFair
	case 3:
		return AQIModerate
	case 4:
		return AQIPoor
	case 5:
		return AQIVeryPoor
	default:
		return AQIUnknown
	}
}

// Pollutant is a component key of the air-quality sample.
type Pollutant string

const (
	PollutantPM25 Pollutant = "pm2_5"
	PollutantPM10 Pollutant = "pm10"
	PollutantNO2  Pollutant = "no2"
	PollutantO3   Pollutant = "o3"
	PollutantSO2  Pollutant = "so2"
	PollutantCO   Pollutant = "co"
)

// ResolveMainPollutant picks the component with the strictly greatest
// concentration. Ties go to the earlier key in pm2_5, pm10, no2, o3, so2, co.
func ResolveMainPollutant(c Components) Pollutant {
	ordered := []struct {
		key   Pollutant
		value float64
	}{
		{PollutantPM25, c.PM2_5},
		{PollutantPM10, c.PM10},
		{PollutantNO2, c.NO2},
		{PollutantO3, c.O3},
		{PollutantSO2, c.SO2},
		{PollutantCO, c.CO},
	}

	best := ordered[0]
	for _, p := range ordered[1:] {
		if p.value > best.value {
			best = p
		}
	}
	return best.key
}

var compassRose = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// ResolveWindDirectionName quantizes degrees into 16 sectors of 22.5°.
// Any finite input is normalized into [0, 360) first.
func ResolveWindDirectionName(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return compassRose[0]
	}
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	idx := int(math.Round(d/22.5)) % 16
	return compassRose[idx]
}

// Variability buckets how much the wind direction moves over a window.
type Variability string

const (
	VariabilityLow      Variability = "Low"
	VariabilityModerate Variability = "Moderate"
	VariabilityHigh     Variability = "High"
)

// ResolveWindVariability uses the plain max-min spread of the directions.
// It does not account for wrap-around at 0°/360°. Empty input is Low.
func ResolveWindVariability(directions []float64) Variability {
	if len(directions) == 0 {
		return VariabilityLow
	}

	lo, hi := directions[0], directions[0]
	for _, d := range directions[1:] {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}

	switch diff := hi - lo; {
	case diff > 45:
		return VariabilityHigh
	case diff > 20:
		return VariabilityModerate
	default:
		return VariabilityLow
	}
}

// AverageWindSpeed returns the rounded arithmetic mean, or 0 for no input.
func AverageWindSpeed(speeds []float64) int {
	if len(speeds) == 0 {
		return 0
	}
	var sum float64
	for _, s := range speeds {
		sum += s
	}
	return int(math.Round(sum / float64(len(speeds))))
}

// MaxGust returns the largest gust, or 0 for no input.
func MaxGust(gusts []float64) float64 {
	return maxOrZero(gusts)
}

// TotalPrecipitation sums per-interval amounts.
func TotalPrecipitation(amounts []float64) float64 {
	var sum float64
	for _, a := range amounts {
		sum += a
	}
	return sum
}

// MaxPrecipitationProbability returns the largest probability, or 0 for no input.
func MaxPrecipitationProbability(probabilities []float64) float64 {
	return maxOrZero(probabilities)
}

func maxOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// PrecipitationType classifies an interval for the precipitation tab.
type PrecipitationType string

const (
	PrecipitationRain PrecipitationType = "rain"
	PrecipitationSnow PrecipitationType = "snow"
	PrecipitationNone PrecipitationType = "none"
)

// ResolvePrecipitationType inspects the condition label.
func ResolvePrecipitationType(condition string) PrecipitationType {
	switch {
	case common.HasAny(condition, "rain"):
		return PrecipitationRain
	case common.HasAny(condition, "snow"):
		return PrecipitationSnow
	default:
		return PrecipitationNone
	}
}

// RadarType classifies an interval for the radar tab.
type RadarType string

const (
	RadarRain  RadarType = "rain"
	RadarSnow  RadarType = "snow"
	RadarMixed RadarType = "mixed"
)

// ResolveRadarType is like ResolvePrecipitationType but reports "mixed"
// when neither rain nor snow is named.
func ResolveRadarType(condition string) RadarType {
	switch ResolvePrecipitationType(condition) {
	case PrecipitationRain:
		return RadarRain
	case PrecipitationSnow:
		return RadarSnow
	default:
		return RadarMixed
	}
}

// RadarIntensity is the legend bucket of a radar reading.
type RadarIntensity string

const (
	IntensityNone     RadarIntensity = "none"
	IntensityLight    RadarIntensity = "light"
	IntensityModerate RadarIntensity = "moderate"
	IntensityHeavy    RadarIntensity = "heavy"
)

// ResolveRadarIntensity buckets an amount in mm per interval.
func ResolveRadarIntensity(amount float64) RadarIntensity {
	switch {
	case amount <= 0:
		return IntensityNone
	case amount < 0.3:
		return IntensityLight
	case amount < 0.6:
		return IntensityModerate
	default:
		return IntensityHeavy
	}
}

// TemperatureRangeFill returns where temp sits between low and high as a
// percentage in [0, 100]. A flat range fills to 0.
func TemperatureRangeFill(temp, low, high int) float64 {
	if high <= low {
		return 0
	}
	pct := float64(temp-low) / float64(high-low) * 100
	return math.Max(0, math.Min(100, pct))
}
