package weather

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/i474232898/weather-tickler/internal/scene"
)

const (
	// dailyStride samples one 3-hour interval per day for the forecast tab.
	dailyStride = 8
	// hourlyWindow is the next 24h at 3h granularity.
	hourlyWindow = 8
)

// Display layouts matching the dashboard's en-US strings.
const (
	clockLayout = "03:04 PM"
	hourLayout  = "3 PM"
	dayLayout   = "Mon"
	dateLayout  = "Jan 2"
)

// BuildViewModel derives the render-ready view from a forecast batch and an
// air-quality sample. The first interval provides the current conditions.
func BuildViewModel(batch ForecastBatch, aq AirQuality) (ViewModel, error) {
	if len(batch.Samples) == 0 {
		return ViewModel{}, fmt.Errorf("%w: forecast list is empty", ErrMalformedResponse)
	}
	for i, s := range batch.Samples {
		if s.Condition == "" {
			return ViewModel{}, fmt.Errorf("%w: interval %d has no weather condition", ErrMalformedResponse, i)
		}
	}

	zone := batch.City.Zone()
	now := batch.Samples[0]
	local := time.Unix(now.Timestamp, 0).In(zone)

	vm := ViewModel{
		Location:    locationLabel(batch.City),
		Coord:       batch.City.Coord,
		Temperature: roundInt(now.TemperatureC),
		Condition:   now.Condition,
		Description: now.Description,
		Humidity:    roundInt(now.HumidityPct),
		WindSpeed:   roundInt(MSToKMH(now.WindSpeedMS)),
		Visibility:  roundInt(now.VisibilityM / 1000),
		Pressure:    roundInt(now.PressureHpa),
		Sunrise:     time.Unix(batch.City.Sunrise, 0).In(zone).Format(clockLayout),
		Sunset:      time.Unix(batch.City.Sunset, 0).In(zone).Format(clockLayout),
		Timestamp:   now.Timestamp,
		LocalTime:   local,
		AQI: AQIBlock{
			Value:         aq.Index,
			Category:      ResolveAQICategory(aq.Index),
			MainPollutant: ResolveMainPollutant(aq.Components),
			Components:    aq.Components,
		},
		Forecast: buildDaily(batch.Samples, zone),
	}

	hourly := batch.Samples
	if len(hourly) > hourlyWindow {
		hourly = hourly[:hourlyWindow]
	}
	vm.Wind = make([]WindEntry, 0, len(hourly))
	vm.Precipitation = make([]PrecipitationEntry, 0, len(hourly))
	vm.Radar = make([]RadarEntry, 0, len(hourly))

	for _, s := range hourly {
		label := time.Unix(s.Timestamp, 0).In(zone).Format(hourLayout)
		amount := s.PrecipitationMm()

		vm.Wind = append(vm.Wind, WindEntry{
			Speed:     roundInt(MSToKMH(s.WindSpeedMS)),
			Direction: s.WindDirectionDeg,
			Gust:      roundInt(MSToKMH(s.WindGustMS)),
			Time:      label,
		})
		vm.Precipitation = append(vm.Precipitation, PrecipitationEntry{
			Type:        ResolvePrecipitationType(s.Condition),
			Amount:      amount,
			Probability: roundInt(s.PrecipProbability * 100),
			Time:        label,
		})
		vm.Radar = append(vm.Radar, RadarEntry{
			Time:      label,
			Intensity: amount,
			Level:     ResolveRadarIntensity(amount),
			Coverage:  s.CloudsPct,
			Type:      ResolveRadarType(s.Condition),
		})
	}

	vm.Scene = scene.Classify(vm.Condition, vm.LocalTime)
	return vm, nil
}

func buildDaily(samples []RawSample, zone *time.Location) []DailyForecast {
	days := make([]DailyForecast, 0, (len(samples)+dailyStride-1)/dailyStride)
	for i := 0; i < len(samples); i += dailyStride {
		s := samples[i]
		t := time.Unix(s.Timestamp, 0).In(zone)
		days = append(days, DailyForecast{
			Day:           t.Format(dayLayout),
			Date:          t.Format(dateLayout),
			Timestamp:     s.Timestamp,
			Temp:          roundInt(s.TemperatureC),
			High:          roundInt(s.TempMaxC),
			Low:           roundInt(s.TempMinC),
			Condition:     strings.ToLower(s.Condition),
			Precipitation: roundInt(s.PrecipProbability * 100),
			Wind:          roundInt(MSToKMH(s.WindSpeedMS)),
		})
	}
	return days
}

func locationLabel(c City) string {
	if c.Country == "" {
		return c.Name
	}
	return c.Name + ", " + c.Country
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
