// Package merge turns raw GIS GeoJSON and the curated schedule file into
// the single dataset the map frontend and calendar export consume.
package merge

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	appLog "github.com/wtennis/hoop-finder/internal/log"
	"github.com/wtennis/hoop-finder/internal/model"
)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify builds a URL/id-safe slug from a display name.
func Slugify(name string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// ProcessCourts converts the court feature collection into locations.
func ProcessCourts(fc FeatureCollection) []model.Location {
	out := make([]model.Location, 0, len(fc.Features))
	for _, f := range fc.Features {
		id := f.propInt("PMAID")
		if id == 0 {
			id = f.propInt("OBJECTID")
		}
		name := f.propString("PARKNAME")
		if name == "" {
			name = "Unknown Court"
		}
		courtType := strings.ToLower(f.propString("TYPE"))
		if courtType == "" {
			courtType = "unknown"
		}
		courtCount := f.propInt("NUMBEROFCOURTS")
		if courtCount == 0 {
			courtCount = 1
		}
		out = append(out, model.Location{
			ID:         fmt.Sprintf("court-%d", id),
			Type:       model.KindOutdoorCourt,
			Name:       name,
			Address:    f.propString("ADDRESS"),
			Lat:        f.Lat(),
			Lng:        f.Lng(),
			CourtType:  courtType,
			CourtCount: courtCount,
			Indoor:     false,
			Cost:       "free",
			Events:     []model.Program{},
		})
	}
	return out
}

// ProcessCenters converts the community-center feature collection into
// locations, building the per-day hours map and normalizing phone numbers
// (some entries carry only the last seven digits).
func ProcessCenters(fc FeatureCollection) []model.Location {
	weekdays := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	out := make([]model.Location, 0, len(fc.Features))
	for _, f := range fc.Features {
		name := f.propString("NAME")
		if name == "" {
			name = "Unknown Center"
		}

		hours := map[string]string{}
		for _, day := range weekdays {
			dayKey := "DAY_" + strings.ToUpper(day)
			hoursKey := "HOURS_" + strings.ToUpper(day)
			switch f.propString(dayKey) {
			case "Yes":
				if h := f.propString(hoursKey); h != "" {
					hours[day] = h
				}
			case "No":
				hours[day] = "closed"
			}
		}
		if len(hours) == 0 {
			hours = nil
		}

		phone := f.propString("PHONE")
		if phone != "" && !strings.HasPrefix(phone, "206") {
			phone = "206-" + phone
		}

		out = append(out, model.Location{
			ID:             "center-" + Slugify(name),
			Type:           model.KindCommunityCenter,
			Name:           name,
			Address:        f.propString("ADDRESS"),
			Lat:            f.Lat(),
			Lng:            f.Lng(),
			Phone:          phone,
			CenterHours:    hours,
			Website:        f.propString("WEBSITE_LINK"),
			BasketballLink: f.propString("BASKETBALL_LINK"),
			Indoor:         true,
			Cost:           "varies",
			Events:         []model.Program{},
		})
	}
	return out
}

// Stats summarizes a build for logging and the build command's report.
type Stats struct {
	Courts         int
	Centers        int
	Matched        int
	Unmatched      int
	UnmatchedNames []string
	WithEvents     int
}

// BuildDataset loads the three source files, merges them, and returns the
// dataset plus match statistics. A missing schedules file is not an error;
// it just yields locations without programs.
func BuildDataset(courtsPath, centersPath, schedulesPath string, now time.Time) (model.Dataset, Stats, error) {
	var ds model.Dataset
	var stats Stats

	courtsBody, err := os.ReadFile(courtsPath)
	if err != nil {
		return ds, stats, fmt.Errorf("reading courts: %w", err)
	}
	centersBody, err := os.ReadFile(centersPath)
	if err != nil {
		return ds, stats, fmt.Errorf("reading centers: %w", err)
	}

	courtsGeo, err := ParseFeatureCollection(courtsBody)
	if err != nil {
		return ds, stats, fmt.Errorf("parsing courts: %w", err)
	}
	centersGeo, err := ParseFeatureCollection(centersBody)
	if err != nil {
		return ds, stats, fmt.Errorf("parsing centers: %w", err)
	}

	var sched model.ScheduleFile
	if body, err := os.ReadFile(schedulesPath); err == nil {
		if err := json.Unmarshal(body, &sched); err != nil {
			return ds, stats, fmt.Errorf("parsing schedules: %w", err)
		}
	} else {
		appLog.Info("no curated schedules file; building without programs", "path", schedulesPath)
	}

	courts := ProcessCourts(courtsGeo)
	centers := ProcessCenters(centersGeo)
	locations := append(courts, centers...)

	stats.Courts = len(courts)
	stats.Centers = len(centers)
	stats.Matched, stats.UnmatchedNames = MatchSchedules(locations, sched)
	stats.Unmatched = len(stats.UnmatchedNames)

	for _, loc := range locations {
		if len(loc.Events) > 0 {
			stats.WithEvents++
		}
	}

	ds = model.Dataset{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Seasons:     sched.Seasons,
		Locations:   locations,
	}
	return ds, stats, nil
}
