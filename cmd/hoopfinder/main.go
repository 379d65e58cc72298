// Package main provides the hoopfinder CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wtennis/hoop-finder/internal/config"
	appLog "github.com/wtennis/hoop-finder/internal/log"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hoopfinder",
	Short: "Seattle basketball schedule pipeline and calendar exporter",
	Long: `hoopfinder turns the city's GIS data and the curated drop-in schedule
into a merged location dataset and subscribable iCalendar feeds.

Typical flow:
  hoopfinder fetch     # download court and center GeoJSON
  hoopfinder build     # merge sources, write dataset and .ics feeds
  hoopfinder upcoming  # print the next sessions
  hoopfinder serve     # serve dataset and feeds, refreshing on a cron schedule`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if verbose {
			appLog.SetLevel(appLog.LevelDebug)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "hoopfinder.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Version = Version
}

func main() {
	// A .env next to the binary can carry HOOPFINDER_LOG_LEVEL and friends.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		appLog.Error("command failed", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
