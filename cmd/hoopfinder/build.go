package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wtennis/hoop-finder/internal/config"
	"github.com/wtennis/hoop-finder/internal/ics"
	appLog "github.com/wtennis/hoop-finder/internal/log"
	"github.com/wtennis/hoop-finder/internal/merge"
	"github.com/wtennis/hoop-finder/internal/model"
	"github.com/wtennis/hoop-finder/internal/schedule"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Merge GIS sources and curated schedules into the dataset and calendar feeds",
	RunE:  runBuild,
}

func runBuild(*cobra.Command, []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, err = buildOutputs(cfg)
	return err
}

// buildOutputs merges the source files and writes the dataset JSON plus one
// .ics file per preset. Shared by the build command and the serve refresh.
func buildOutputs(cfg *config.Config) (model.Dataset, error) {
	courtsPath := filepath.Join(cfg.SourcesDir(), "courts.geojson")
	centersPath := filepath.Join(cfg.SourcesDir(), "centers.geojson")

	ds, stats, err := merge.BuildDataset(courtsPath, centersPath, cfg.SchedulesPath(), time.Now())
	if err != nil {
		return ds, err
	}

	body, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return ds, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return ds, err
	}
	if err := os.WriteFile(cfg.MergedPath(), body, 0o644); err != nil {
		return ds, fmt.Errorf("writing dataset: %w", err)
	}

	events := schedule.Flatten(ds.Locations)
	if schedule.SeasonExpired(events, cfg.SeasonYear, cfg.CurrentDate()) {
		appLog.Info("season expired: no program is currently active",
			"season_year", cfg.SeasonYear, "flat_events", len(events))
	}

	if err := os.MkdirAll(cfg.CalDir, 0o755); err != nil {
		return ds, err
	}
	for _, preset := range ics.DefaultPresets(cfg.CalendarName) {
		cal, count := ics.Build(preset.Select(events), ics.BuildOptions{
			Name:       preset.Label,
			Timezone:   cfg.Timezone,
			SeasonYear: cfg.SeasonYear,
		})
		path := filepath.Join(cfg.CalDir, preset.Slug+".ics")
		if err := os.WriteFile(path, []byte(cal), 0o644); err != nil {
			return ds, fmt.Errorf("writing %s: %w", path, err)
		}
		appLog.Info("calendar written", "path", path, "events", count)
	}

	appLog.Info("build complete",
		"courts", stats.Courts,
		"centers", stats.Centers,
		"matched", stats.Matched,
		"unmatched", stats.Unmatched,
		"with_events", stats.WithEvents,
	)
	return ds, nil
}

// loadDataset reads a previously built dataset from disk.
func loadDataset(cfg *config.Config) (model.Dataset, error) {
	var ds model.Dataset
	body, err := os.ReadFile(cfg.MergedPath())
	if err != nil {
		return ds, fmt.Errorf("reading dataset (run fetch and build first): %w", err)
	}
	if err := json.Unmarshal(body, &ds); err != nil {
		return ds, fmt.Errorf("parsing dataset: %w", err)
	}
	return ds, nil
}
