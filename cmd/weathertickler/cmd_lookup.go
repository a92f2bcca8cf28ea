package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-tickler/internal/config"
	"github.com/i474232898/weather-tickler/internal/dashboard"
	"github.com/i474232898/weather-tickler/internal/scene"
	"github.com/i474232898/weather-tickler/internal/store"
	"github.com/i474232898/weather-tickler/internal/weather"
)

var lookupUnit string

var lookupCmd = &cobra.Command{
	Use:   "lookup [location]",
	Short: "Fetch the dashboard for one location",
	Long: `Run a single search and print the dashboard summary and the scene hook.
The location is "City" or "City,Country"; it defaults to DEFAULT_LOCATION.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupUnit, "unit", "u", "", "temperature unit (C or F)")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	unit := cfg.DefaultUnit
	if lookupUnit != "" {
		if unit, err = weather.ParseTempUnit(lookupUnit); err != nil {
			return err
		}
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	presenter := &hookPrinter{out: os.Stdout}
	controller := dashboard.NewController(newService(cfg), store.NewViewState(), presenter)

	res, err := controller.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	printSummary(os.Stdout, res.View, unit)
	return presenter.flush()
}

// hookPrinter is a Presenter that writes the applied hook as JSON.
type hookPrinter struct {
	out  io.Writer
	hook *scene.Hook
}

func (p *hookPrinter) ApplyScene(hook scene.Hook) {
	p.hook = &hook
}

func (p *hookPrinter) flush() error {
	if p.hook == nil {
		return nil
	}
	fmt.Fprintln(p.out, "\nScene hook:")
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(p.hook)
}

func printSummary(w io.Writer, vm weather.ViewModel, unit weather.TempUnit) {
	temp := func(c int) int { return weather.ToDisplayTemp(float64(c), unit) }

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "%s  (local time %s)\n", vm.Location, vm.LocalTime.Format("Mon 03:04 PM"))
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "%d°%s  %s (%s)\n", temp(vm.Temperature), unit, vm.Condition, vm.Description)
	fmt.Fprintf(w, "Humidity %d%%  Wind %d km/h  Visibility %d km  Pressure %d hPa\n",
		vm.Humidity, vm.WindSpeed, vm.Visibility, vm.Pressure)
	fmt.Fprintf(w, "Sunrise %s  Sunset %s\n", vm.Sunrise, vm.Sunset)
	fmt.Fprintf(w, "Air quality %d (%s), main pollutant %s\n", vm.AQI.Value, vm.AQI.Category, vm.AQI.MainPollutant)

	fmt.Fprintln(w, "\nForecast:")
	for _, d := range vm.Forecast {
		fmt.Fprintf(w, "  %s %-6s %3d° (%d°/%d°)  %-12s rain %d%%  wind %d km/h\n",
			d.Day, d.Date, temp(d.Temp), temp(d.High), temp(d.Low), d.Condition, d.Precipitation, d.Wind)
	}

	wind := weather.SummarizeWind(vm.Wind)
	fmt.Fprintf(w, "\nWind: %d km/h %s, avg %d km/h, max gust %d km/h, variability %s\n",
		wind.CurrentSpeed, wind.DirectionName, wind.AverageSpeed, wind.MaxGust, wind.Variability)

	precip := weather.SummarizePrecipitation(vm.Precipitation)
	fmt.Fprintf(w, "Precipitation: %.1f mm total, max chance %d%%\n", precip.TotalMm, precip.MaxProbability)
}
