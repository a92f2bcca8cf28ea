package httpapi

import (
	"github.com/i474232898/weather-tickler/internal/weather"
)

// forecastDay is a daily entry with temperatures in the display unit.
type forecastDay struct {
	weather.DailyForecast
	// RangeFill is where Temp sits between Low and High, in percent.
	RangeFill float64 `json:"rangeFill"`
}

// dashboardView is a ViewModel rendered for one temperature unit.
type dashboardView struct {
	weather.ViewModel
	Unit     weather.TempUnit `json:"unit"`
	Forecast []forecastDay    `json:"forecast"`
}

type windTab struct {
	Location string              `json:"location"`
	Summary  weather.WindSummary `json:"summary"`
	Entries  []weather.WindEntry `json:"entries"`
}

type precipitationTab struct {
	Location string                       `json:"location"`
	Summary  weather.PrecipitationSummary `json:"summary"`
	Entries  []weather.PrecipitationEntry `json:"entries"`
}

type radarTab struct {
	Location string               `json:"location"`
	Entries  []weather.RadarEntry `json:"entries"`
}

// renderView converts every temperature of vm to unit. The ViewModel
// itself stays in Celsius.
func renderView(vm weather.ViewModel, unit weather.TempUnit) dashboardView {
	out := dashboardView{ViewModel: vm, Unit: unit}
	out.Temperature = displayTemp(vm.Temperature, unit)

	out.Forecast = make([]forecastDay, 0, len(vm.Forecast))
	for _, d := range vm.Forecast {
		d.Temp = displayTemp(d.Temp, unit)
		d.High = displayTemp(d.High, unit)
		d.Low = displayTemp(d.Low, unit)
		out.Forecast = append(out.Forecast, forecastDay{
			DailyForecast: d,
			RangeFill:     weather.TemperatureRangeFill(d.Temp, d.Low, d.High),
		})
	}
	return out
}

func displayTemp(celsius int, unit weather.TempUnit) int {
	return weather.ToDisplayTemp(float64(celsius), unit)
}
