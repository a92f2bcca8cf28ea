package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weathertickler",
	Short: "WeatherTickler - weather dashboard backend",
	Long: `WeatherTickler fetches forecasts and air quality for a location,
derives the dashboard metrics and picks a background scene for the
current conditions.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
