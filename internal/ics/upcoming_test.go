package ics

import (
	"testing"
	"time"

	"github.com/wtennis/hoop-finder/internal/model"
)

func TestUpcoming(t *testing.T) {
	events := []model.FlatEvent{{
		Center:    "Garfield Community Center",
		Program:   "Open Gym Basketball",
		Day:       "Monday",
		Time:      "6-8pm",
		DateRange: "4/6-6/12",
	}}

	from := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.Local)
	occ := Upcoming(events, 2026, from, 3)

	if len(occ) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(occ))
	}
	// First Monday on or after 2026-05-01 is 2026-05-04.
	first := occ[0]
	if first.Start.Year() != 2026 || first.Start.Month() != time.May || first.Start.Day() != 4 {
		t.Errorf("first occurrence = %v, want 2026-05-04", first.Start)
	}
	if first.Start.Hour() != 18 || first.End.Hour() != 20 {
		t.Errorf("occurrence span = %v..%v, want 18:00..20:00", first.Start, first.End)
	}
	for i := 1; i < len(occ); i++ {
		if occ[i].Start.Sub(occ[i-1].Start) != 7*24*time.Hour {
			t.Errorf("occurrences %d and %d are not a week apart", i-1, i)
		}
		if occ[i].Start.Before(occ[i-1].Start) {
			t.Errorf("occurrences not sorted at %d", i)
		}
	}
}

func TestUpcomingStopsAtRangeEnd(t *testing.T) {
	events := []model.FlatEvent{{
		Program:   "Short Season",
		Day:       "Monday",
		Time:      "6-8pm",
		DateRange: "4/6-4/20",
	}}
	from := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)
	occ := Upcoming(events, 2026, from, 0)
	// Mondays 4/6, 4/13, 4/20 — inclusive end.
	if len(occ) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(occ))
	}
	last := occ[len(occ)-1]
	if last.Start.Day() != 20 {
		t.Errorf("last occurrence = %v, want 2026-04-20", last.Start)
	}
}

func TestUpcomingSkipsUnparseable(t *testing.T) {
	events := []model.FlatEvent{
		{Program: "Bad", Day: "Monday", Time: "varies", DateRange: "4/6-6/12"},
		{Program: "Good", Day: "Monday", Time: "6-8pm", DateRange: "4/6-6/12"},
	}
	from := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)
	occ := Upcoming(events, 2026, from, 1)
	if len(occ) != 1 || occ[0].Program != "Good" {
		t.Errorf("occ = %v, want single occurrence of Good", occ)
	}
}
