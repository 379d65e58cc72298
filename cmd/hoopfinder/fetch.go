package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wtennis/hoop-finder/internal/config"
	"github.com/wtennis/hoop-finder/internal/gis"
	appLog "github.com/wtennis/hoop-finder/internal/log"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download court and community-center GeoJSON from the city GIS",
	RunE:  runFetch,
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sources := gisSources(cfg)
	fetcher := gis.NewFetcher(cfg.CacheDir)
	results, errs := fetcher.FetchAll(cmd.Context(), sources)
	if len(results) == 0 {
		return fmt.Errorf("all %d sources failed", len(sources))
	}

	if err := writeSources(cfg, results); err != nil {
		return err
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d sources failed", len(errs), len(sources))
	}
	return nil
}

func gisSources(cfg *config.Config) []gis.Source {
	return []gis.Source{
		{ID: "courts", URL: cfg.CourtsURL},
		{ID: "centers", URL: cfg.CentersURL},
	}
}

// writeSources lands fetched GeoJSON bodies under the sources directory,
// named by source ID so build can find them.
func writeSources(cfg *config.Config, results []gis.FetchResult) error {
	if err := os.MkdirAll(cfg.SourcesDir(), 0o755); err != nil {
		return err
	}
	for _, res := range results {
		path := filepath.Join(cfg.SourcesDir(), res.Source.ID+".geojson")
		if err := os.WriteFile(path, res.Body, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		appLog.Info("source written",
			"id", res.Source.ID,
			"path", path,
			"features", gis.CountFeatures(res.Body),
			"from_cache", res.FromCache,
		)
	}
	return nil
}
