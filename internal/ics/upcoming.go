package ics

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	appLog "github.com/wtennis/hoop-finder/internal/log"
	"github.com/wtennis/hoop-finder/internal/model"
	"github.com/wtennis/hoop-finder/internal/schedule"
)

// rruleWeekdays lines up with model.Days (Sunday-first).
var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// Occurrence is one concrete upcoming instance of a weekly event.
type Occurrence struct {
	Program string
	Center  string
	Day     string
	Start   time.Time
	End     time.Time
}

// Upcoming expands each event's weekly rule and returns the next occurrences
// on or after from, soonest first, capped at max (0 means no cap). Events
// that cannot be parsed are skipped, mirroring the exporter.
func Upcoming(events []model.FlatEvent, seasonYear int, from time.Time, max int) []Occurrence {
	var out []Occurrence

	for _, evt := range events {
		if evt.DateRange == "" || evt.Time == "" {
			continue
		}
		dates, ok := schedule.ParseDateRange(evt.DateRange, seasonYear)
		if !ok {
			continue
		}
		times, ok := schedule.ParseTimeRange(evt.Time)
		if !ok {
			continue
		}
		dayIdx := schedule.DayIndex(evt.Day)
		if dayIdx < 0 {
			continue
		}
		anchor := FirstOccurrence(dates.Start, dayIdx)
		if anchor.After(dates.End) {
			continue
		}

		dtstart := time.Date(anchor.Year(), anchor.Month(), anchor.Day(),
			times.StartHour, times.StartMinute, 0, 0, time.Local)
		until := time.Date(dates.End.Year(), dates.End.Month(), dates.End.Day(),
			23, 59, 0, 0, time.Local)

		r, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rruleWeekdays[dayIdx]},
			Dtstart:   dtstart,
			Until:     until,
		})
		if err != nil {
			appLog.Error("upcoming: rrule construction failed", err,
				"program", evt.Program, "day", evt.Day)
			continue
		}

		duration := time.Duration(times.EndHour*60+times.EndMinute-
			times.StartHour*60-times.StartMinute) * time.Minute

		for _, start := range r.Between(from, until, true) {
			out = append(out, Occurrence{
				Program: evt.Program,
				Center:  evt.Center,
				Day:     evt.Day,
				Start:   start,
				End:     start.Add(duration),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}
