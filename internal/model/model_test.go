package model

import (
	"encoding/json"
	"testing"
)

// Curated schedule rows write cost as either a string ("FREE", "$5") or a
// bare number; both must decode.
func TestCostUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want Cost
	}{
		{`"FREE"`, "FREE"},
		{`"$5 drop-in"`, "$5 drop-in"},
		{`0`, "0"},
		{`5`, "5"},
	}
	for _, tt := range tests {
		var c Cost
		if err := json.Unmarshal([]byte(tt.raw), &c); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.raw, err)
			continue
		}
		if c != tt.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tt.raw, c, tt.want)
		}
	}
}

func TestLocationRoundTrip(t *testing.T) {
	raw := `{
		"id": "center-rainier",
		"type": "community_center",
		"name": "Rainier Community Center",
		"cost": "varies",
		"events": [{"program": "Open Gym", "cost": 3, "sessions": [{"day": "Tue", "time": "7-9pm"}]}]
	}`
	var loc Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		t.Fatal(err)
	}
	if loc.Type != KindCommunityCenter {
		t.Errorf("type = %q", loc.Type)
	}
	if len(loc.Events) != 1 || loc.Events[0].Cost != "3" {
		t.Errorf("events = %+v", loc.Events)
	}
	if loc.Events[0].Sessions[0].Day != "Tue" {
		t.Errorf("session = %+v", loc.Events[0].Sessions[0])
	}
}
