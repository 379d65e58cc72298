package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wtennis/hoop-finder/internal/ics"
	appLog "github.com/wtennis/hoop-finder/internal/log"
	"github.com/wtennis/hoop-finder/internal/model"
	"github.com/wtennis/hoop-finder/internal/schedule"
)

var (
	exportPreset  string
	exportOut     string
	exportVerify  bool
	exportAges    []string
	exportGenders []string
	exportCosts   []string
)

func init() {
	exportCmd.Flags().StringVar(&exportPreset, "preset", "all", "feed preset: all, free, youth or womens")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "output file, - for stdout")
	exportCmd.Flags().BoolVar(&exportVerify, "verify", false, "re-parse the generated calendar and check required fields")
	exportCmd.Flags().StringSliceVar(&exportAges, "age", nil, "limit to age brackets: adult, teen, youth, all")
	exportCmd.Flags().StringSliceVar(&exportGenders, "gender", nil, "limit to gender categories: open, womens, mens")
	exportCmd.Flags().StringSliceVar(&exportCosts, "cost", nil, "limit to cost categories: free, paid")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one calendar feed from the merged dataset",
	Long: `Export renders a single .ics feed from the built dataset. The preset picks
a published feed; --age/--gender/--cost narrow it further.

Example:
  hoopfinder export --preset free --age adult,teen --out free.ics --verify`,
	RunE: runExport,
}

func runExport(*cobra.Command, []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	var preset *ics.Preset
	for _, p := range ics.DefaultPresets(cfg.CalendarName) {
		if p.Slug == exportPreset {
			preset = &p
			break
		}
	}
	if preset == nil {
		return fmt.Errorf("unknown preset %q", exportPreset)
	}

	filters, err := exportFilters()
	if err != nil {
		return err
	}

	events := schedule.Flatten(ds.Locations)
	selected := make([]model.FlatEvent, 0, len(events))
	for _, evt := range preset.Select(events) {
		if filters.MatchesFlat(evt) {
			selected = append(selected, evt)
		}
	}

	cal, count := ics.Build(selected, ics.BuildOptions{
		Name:       preset.Label,
		Timezone:   cfg.Timezone,
		SeasonYear: cfg.SeasonYear,
	})

	if exportVerify {
		report, err := ics.Verify(cal)
		if err != nil {
			return err
		}
		appLog.Info("calendar verified", "events", report.Events)
	}

	if exportOut == "-" {
		fmt.Println(cal)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(cal), 0o644); err != nil {
		return err
	}
	appLog.Info("calendar written", "path", exportOut, "events", count)
	return nil
}

// exportFilters builds the filter set from the narrowing flags. An unset flag
// leaves its whole category enabled.
func exportFilters() (schedule.FilterSet, error) {
	f := schedule.DefaultFilters()
	if err := narrow(f.Age, exportAges, "--age"); err != nil {
		return f, err
	}
	if err := narrow(f.Gender, exportGenders, "--gender"); err != nil {
		return f, err
	}
	if err := narrow(f.Cost, exportCosts, "--cost"); err != nil {
		return f, err
	}
	return f, nil
}

func narrow(category map[string]bool, picks []string, flag string) error {
	if len(picks) == 0 {
		return nil
	}
	for k := range category {
		category[k] = false
	}
	for _, p := range picks {
		k := strings.ToLower(strings.TrimSpace(p))
		if _, ok := category[k]; !ok {
			return fmt.Errorf("%s: unknown value %q", flag, p)
		}
		category[k] = true
	}
	return nil
}
