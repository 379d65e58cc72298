package ics

import (
	"github.com/wtennis/hoop-finder/internal/model"
	"github.com/wtennis/hoop-finder/internal/schedule"
)

// Preset is one published calendar feed: a slug for the file/URL name, a
// display label and a selection predicate over flattened events.
type Preset struct {
	Slug   string
	Label  string
	Filter func(model.FlatEvent) bool
}

// DefaultPresets returns the feeds published by build and serve mode. The
// "all" feed uses the configured calendar name; the rest are
// classifier-driven slices of it.
func DefaultPresets(calName string) []Preset {
	if calName == "" {
		calName = DefaultCalName
	}
	return []Preset{
		{
			Slug:   "all",
			Label:  calName,
			Filter: func(model.FlatEvent) bool { return true },
		},
		{
			Slug:  "free",
			Label: calName + " (Free)",
			Filter: func(e model.FlatEvent) bool {
				return schedule.IsFree(e.Cost)
			},
		},
		{
			Slug:  "youth",
			Label: calName + " (Youth)",
			Filter: func(e model.FlatEvent) bool {
				for _, g := range schedule.AgeGroups(e.Ages) {
					if g == schedule.AgeYouth {
						return true
					}
				}
				return false
			},
		},
		{
			Slug:  "womens",
			Label: calName + " (Women's)",
			Filter: func(e model.FlatEvent) bool {
				return schedule.Gender(e.Program) == schedule.GenderWomens
			},
		},
	}
}

// Select returns the subset of events admitted by the preset, preserving
// order.
func (p Preset) Select(events []model.FlatEvent) []model.FlatEvent {
	var out []model.FlatEvent
	for _, evt := range events {
		if p.Filter(evt) {
			out = append(out, evt)
		}
	}
	return out
}
