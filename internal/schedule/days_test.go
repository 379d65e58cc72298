package schedule

import (
	"reflect"
	"testing"
)

func TestExpandDays(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "slash list",
			input: "Mon/Wed/Fri",
			want:  []string{"Monday", "Wednesday", "Friday"},
		},
		{
			name:  "slash list full names",
			input: "Tuesday/Thursday",
			want:  []string{"Tuesday", "Thursday"},
		},
		{
			name:  "range full names",
			input: "Monday-Friday",
			want:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		},
		{
			name:  "range abbreviations with en-dash",
			input: "Mon–Thu",
			want:  []string{"Monday", "Tuesday", "Wednesday", "Thursday"},
		},
		{
			name:  "single abbreviation",
			input: "Tue",
			want:  []string{"Tuesday"},
		},
		{
			name:  "single with trailing period",
			input: "Sat.",
			want:  []string{"Saturday"},
		},
		{
			name:  "reversed range yields nothing",
			input: "Friday-Monday",
			want:  []string{},
		},
		{
			name:  "list preserves duplicates",
			input: "Mon/Mon",
			want:  []string{"Monday", "Monday"},
		},
		{
			name:  "list drops unresolved segments",
			input: "Mon/Xyz/Fri",
			want:  []string{"Monday", "Friday"},
		},
		{
			name:  "unrecognized text",
			input: "call for hours",
			want:  nil,
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandDays(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandDays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandDaysRangeSpan(t *testing.T) {
	// Every range A-B with A's index <= B's index must expand to exactly the
	// inclusive span, ascending.
	got := ExpandDays("Sunday-Saturday")
	if len(got) != 7 {
		t.Fatalf("Sunday-Saturday expanded to %d days, want 7", len(got))
	}
	for i, d := range []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"} {
		if got[i] != d {
			t.Errorf("position %d = %q, want %q", i, got[i], d)
		}
	}
}

func TestResolveDay(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"mon", "Monday"},
		{"MONDAY", "Monday"},
		{"Thurs", "Thursday"},
		{"sun.", "Sunday"},
		{"S", "Sunday"}, // first prefix match wins
		{"xyz", ""},
		{"–", ""}, // cleans to nothing, unresolved
		{"", ""},
	}
	for _, tt := range tests {
		if got := ResolveDay(tt.input); got != tt.want {
			t.Errorf("ResolveDay(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
