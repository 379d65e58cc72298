package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wtennis/hoop-finder/internal/ics"
	"github.com/wtennis/hoop-finder/internal/schedule"
)

var (
	upcomingMax  int
	upcomingFrom string
	upcomingDay  string
)

func init() {
	upcomingCmd.Flags().IntVarP(&upcomingMax, "max", "n", 10, "maximum occurrences to print")
	upcomingCmd.Flags().StringVar(&upcomingFrom, "from", "", "start date (YYYY-MM-DD), default today")
	upcomingCmd.Flags().StringVar(&upcomingDay, "day", "", "restrict to one weekday (e.g. mon, Tuesday)")
	rootCmd.AddCommand(upcomingCmd)
}

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Print the next concrete session times from the merged dataset",
	RunE:  runUpcoming,
}

func runUpcoming(*cobra.Command, []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	from := cfg.CurrentDate()
	if upcomingFrom != "" {
		from, err = time.Parse("2006-01-02", upcomingFrom)
		if err != nil {
			return fmt.Errorf("invalid --from date %q: %w", upcomingFrom, err)
		}
	}

	events := schedule.Flatten(ds.Locations)
	if upcomingDay != "" {
		day := schedule.ResolveDay(upcomingDay)
		if day == "" {
			return fmt.Errorf("unrecognized day %q", upcomingDay)
		}
		events = schedule.EventsForDay(events, day, schedule.DefaultFilters(), cfg.SeasonYear, from)
	}

	occs := ics.Upcoming(events, cfg.SeasonYear, from, upcomingMax)
	if len(occs) == 0 {
		fmt.Println("no upcoming sessions")
		return nil
	}
	for _, occ := range occs {
		fmt.Printf("%s  %s-%s  %s @ %s\n",
			occ.Start.Format("Mon Jan 02"),
			occ.Start.Format("3:04pm"),
			occ.End.Format("3:04pm"),
			occ.Program,
			occ.Center,
		)
	}
	return nil
}
