package schedule

import (
	"sort"
	"time"

	"github.com/wtennis/hoop-finder/internal/model"
)

// Flatten expands every location's nested program/session records into one
// FlatEvent per resolved weekday. A session whose day text resolves to
// several weekdays yields one event per weekday, identical in every other
// field; one that resolves to nothing contributes zero events.
//
// The result is stable-sorted ascending by derived start-of-day minute, so
// re-flattening the same input always yields the same sequence.
func Flatten(locations []model.Location) []model.FlatEvent {
	var result []model.FlatEvent
	for _, loc := range locations {
		for _, evt := range loc.Events {
			for _, session := range evt.Sessions {
				for _, day := range ExpandDays(session.Day) {
					ages := evt.Ages
					if ages == "" {
						ages = "All Ages"
					}
					cost := evt.Cost
					if cost == "" {
						cost = "FREE"
					}
					result = append(result, model.FlatEvent{
						Center:    loc.Name,
						Address:   loc.Address,
						Program:   evt.Program,
						Ages:      ages,
						Cost:      cost,
						Day:       day,
						Time:      session.Time,
						DateRange: evt.DateRange,
						Code:      evt.Code,
						Type:      evt.Type,
					})
				}
			}
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return StartMinute(result[i].Time) < StartMinute(result[j].Time)
	})
	return result
}

// EventsForDay returns the active events on one canonical weekday that pass
// the given filter set, in flattened (time-sorted) order.
func EventsForDay(events []model.FlatEvent, day string, f FilterSet, seasonYear int, today time.Time) []model.FlatEvent {
	var out []model.FlatEvent
	for _, evt := range events {
		if evt.Day != day {
			continue
		}
		if !IsActive(evt.DateRange, seasonYear, today) {
			continue
		}
		if !f.MatchesFlat(evt) {
			continue
		}
		out = append(out, evt)
	}
	return out
}
