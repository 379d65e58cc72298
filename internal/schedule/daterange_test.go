package schedule

import (
	"testing"
	"time"
)

func TestParseDateRange(t *testing.T) {
	r, ok := ParseDateRange("4/6-6/12", 2026)
	if !ok {
		t.Fatal("ParseDateRange(4/6-6/12) failed")
	}
	if r.Start.Year() != 2026 || r.Start.Month() != time.April || r.Start.Day() != 6 {
		t.Errorf("start = %v, want 2026-04-06", r.Start)
	}
	if r.End.Year() != 2026 || r.End.Month() != time.June || r.End.Day() != 12 {
		t.Errorf("end = %v, want 2026-06-12", r.End)
	}
}

func TestParseDateRangeShapes(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"4/6-6/12", true},
		{"4/6 - 6/12", true},
		{"12/1-12/31", true},
		{"April 6 to June 12", false},
		{"4/6", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ParseDateRange(tt.input, 2026); ok != tt.ok {
			t.Errorf("ParseDateRange(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
	}
}

func TestIsActive(t *testing.T) {
	date := func(m time.Month, d int) time.Time {
		return time.Date(2026, m, d, 0, 0, 0, 0, time.Local)
	}
	tests := []struct {
		name      string
		dateRange string
		today     time.Time
		want      bool
	}{
		{"inside range", "4/6-6/12", date(time.May, 1), true},
		{"first day inclusive", "4/6-6/12", date(time.April, 6), true},
		{"last day inclusive", "4/6-6/12", date(time.June, 12), true},
		{"before range", "4/6-6/12", date(time.April, 5), false},
		{"after range", "4/6-6/12", date(time.June, 13), false},
		{"no range is always active", "", date(time.January, 1), true},
		{"unparseable range is always active", "spring session", date(time.January, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActive(tt.dateRange, 2026, tt.today); got != tt.want {
				t.Errorf("IsActive(%q, %v) = %v, want %v", tt.dateRange, tt.today, got, tt.want)
			}
		})
	}
}
