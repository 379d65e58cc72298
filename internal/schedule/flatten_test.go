package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/wtennis/hoop-finder/internal/model"
)

func testLocations() []model.Location {
	return []model.Location{
		{
			Name:    "Garfield Community Center",
			Address: "2323 E Cherry St",
			Type:    model.KindCommunityCenter,
			Events: []model.Program{
				{
					Program:   "Open Gym Basketball",
					Ages:      "18 and older",
					Code:      "OG123",
					DateRange: "4/6-6/12",
					Sessions: []model.Session{
						{Day: "Mon/Wed/Fri", Time: "6-8pm"},
					},
				},
			},
		},
		{
			Name:    "Rainier Community Center",
			Address: "4600 38th Ave S",
			Type:    model.KindCommunityCenter,
			Events: []model.Program{
				{
					Program:   "Youth Hoops",
					DateRange: "4/6-6/12",
					Sessions: []model.Session{
						{Day: "Sat", Time: "10-11:30am"},
					},
				},
			},
		},
	}
}

func TestFlattenMultiDaySession(t *testing.T) {
	events := Flatten(testLocations()[:1])

	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	wantDays := map[string]bool{"Monday": true, "Wednesday": true, "Friday": true}
	for _, evt := range events {
		if !wantDays[evt.Day] {
			t.Errorf("unexpected day %q", evt.Day)
		}
		delete(wantDays, evt.Day)
		if evt.Center != "Garfield Community Center" {
			t.Errorf("center = %q", evt.Center)
		}
		if evt.Program != "Open Gym Basketball" {
			t.Errorf("program = %q", evt.Program)
		}
		if evt.Time != "6-8pm" {
			t.Errorf("time = %q", evt.Time)
		}
	}
	if len(wantDays) != 0 {
		t.Errorf("missing days: %v", wantDays)
	}
}

func TestFlattenDefaults(t *testing.T) {
	events := Flatten(testLocations())
	for _, evt := range events {
		if evt.Program == "Youth Hoops" {
			if evt.Ages != "All Ages" {
				t.Errorf("ages = %q, want default All Ages", evt.Ages)
			}
			if evt.Cost != "FREE" {
				t.Errorf("cost = %q, want default FREE", evt.Cost)
			}
		}
	}
}

func TestFlattenSortsByStartMinute(t *testing.T) {
	events := Flatten(testLocations())
	// Morning Saturday session (10am) must sort before the 6pm sessions.
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[0].Program != "Youth Hoops" {
		t.Errorf("first event = %q, want the 10am Youth Hoops session", events[0].Program)
	}
	for i := 1; i < len(events); i++ {
		if StartMinute(events[i-1].Time) > StartMinute(events[i].Time) {
			t.Errorf("events out of order at %d: %q after %q", i, events[i].Time, events[i-1].Time)
		}
	}
}

func TestFlattenUnparseableDayDropped(t *testing.T) {
	locs := []model.Location{{
		Name: "Mystery Gym",
		Events: []model.Program{{
			Program:  "Pickup",
			Sessions: []model.Session{{Day: "whenever", Time: "6-8pm"}},
		}},
	}}
	if events := Flatten(locs); len(events) != 0 {
		t.Errorf("got %d events for unparseable day, want 0", len(events))
	}
}

func TestFlattenEmptyCollections(t *testing.T) {
	locs := []model.Location{
		{Name: "No Programs"},
		{Name: "No Sessions", Events: []model.Program{{Program: "Ghost"}}},
	}
	if events := Flatten(locs); len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestFlattenIdempotent(t *testing.T) {
	locs := testLocations()
	first := Flatten(locs)
	second := Flatten(locs)
	if !reflect.DeepEqual(first, second) {
		t.Error("flattening the same input twice produced different sequences")
	}
}

func TestEventsForDay(t *testing.T) {
	events := Flatten(testLocations())
	today := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.Local)

	mon := EventsForDay(events, "Monday", DefaultFilters(), 2026, today)
	if len(mon) != 1 || mon[0].Program != "Open Gym Basketball" {
		t.Errorf("Monday events = %v", mon)
	}

	// Out of season: nothing is active.
	offSeason := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.Local)
	if got := EventsForDay(events, "Monday", DefaultFilters(), 2026, offSeason); len(got) != 0 {
		t.Errorf("off-season Monday events = %v, want none", got)
	}
}
