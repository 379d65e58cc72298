package merge

import (
	"testing"

	"github.com/wtennis/hoop-finder/internal/model"
)

func TestNormalizeCenterName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Garfield Community Center", "garfield"},
		{"Garfield C.C.", "garfield"},
		{"Jefferson Park CC", "jefferson cc"},
		{"International District/Chinatown Community Center", "international district chinatown"},
		{"  Rainier   Community Center ", "rainier"},
	}
	for _, tt := range tests {
		if got := NormalizeCenterName(tt.input); got != tt.want {
			t.Errorf("NormalizeCenterName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func testCenters() []model.Location {
	mk := func(name string) model.Location {
		return model.Location{
			ID:     "center-" + Slugify(name),
			Type:   model.KindCommunityCenter,
			Name:   name,
			Events: []model.Program{},
		}
	}
	return []model.Location{
		mk("Garfield Community Center"),
		mk("Rainier Community Center"),
		mk("Bitter Lake Community Center"),
		{ID: "court-1", Type: model.KindOutdoorCourt, Name: "Cal Anderson Park"},
	}
}

func TestMatchSchedules(t *testing.T) {
	tests := []struct {
		name       string
		center     string
		wantLocIdx int // -1 means unmatched
	}{
		{"exact normalized", "Garfield Community Center", 0},
		{"abbreviated", "Garfield C.C.", 0},
		{"containment", "Rainier CC Evening", 1},
		{"word overlap", "Lake Bitter Gym", 2},
		{"no match", "Magnuson Sports Complex", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations := testCenters()
			sched := model.ScheduleFile{Events: []model.ScheduleEntry{{
				Center:  tt.center,
				Program: model.Program{Program: "Open Gym"},
			}}}

			matched, unmatchedNames := MatchSchedules(locations, sched)

			if tt.wantLocIdx < 0 {
				if matched != 0 || len(unmatchedNames) != 1 {
					t.Fatalf("matched=%d unmatched=%v, want 0 matched, 1 unmatched", matched, unmatchedNames)
				}
				return
			}
			if matched != 1 {
				t.Fatalf("matched = %d, want 1", matched)
			}
			if got := len(locations[tt.wantLocIdx].Events); got != 1 {
				t.Errorf("location %d has %d events, want 1", tt.wantLocIdx, got)
			}
		})
	}
}

func TestMatchSchedulesNeverAttachesToCourts(t *testing.T) {
	locations := testCenters()
	sched := model.ScheduleFile{Events: []model.ScheduleEntry{{
		Center:  "Cal Anderson Park",
		Program: model.Program{Program: "Pickup"},
	}}}
	MatchSchedules(locations, sched)
	if len(locations[3].Events) != 0 {
		t.Error("schedule attached to an outdoor court")
	}
}

func TestMatchSchedulesDeduplicatesUnmatchedNames(t *testing.T) {
	locations := testCenters()
	sched := model.ScheduleFile{Events: []model.ScheduleEntry{
		{Center: "Nowhere CC", Program: model.Program{Program: "A"}},
		{Center: "Nowhere CC", Program: model.Program{Program: "B"}},
	}}
	_, unmatchedNames := MatchSchedules(locations, sched)
	if len(unmatchedNames) != 1 {
		t.Errorf("unmatched names = %v, want one distinct entry", unmatchedNames)
	}
}
