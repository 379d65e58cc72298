package ics

import (
	"strings"
	"testing"

	ical "github.com/arran4/golang-ical"

	"github.com/wtennis/hoop-finder/internal/schedule"
)

func TestVerifyGeneratedCalendar(t *testing.T) {
	out, count := Build(testEvents(), BuildOptions{SeasonYear: 2026})

	report, err := Verify(out)
	if err != nil {
		t.Fatalf("Verify failed on generated calendar: %v", err)
	}
	if report.Events != count {
		t.Errorf("verified %d events, builder reported %d", report.Events, count)
	}
}

func TestVerifyRejectsMissingFields(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Test//Test//EN",
		"BEGIN:VEVENT",
		"UID:x-1@test",
		"DTSTART;TZID=America/Los_Angeles:20260406T180000",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n")

	if _, err := Verify(doc); err == nil {
		t.Error("Verify accepted an event without DTEND/RRULE/SUMMARY")
	}
}

// TestRoundTrip re-parses the generated document and checks that each
// event's recurrence day and span are consistent with its source event.
func TestRoundTrip(t *testing.T) {
	src := testEvents()
	out, _ := Build(src, BuildOptions{SeasonYear: 2026})

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	parsed := cal.Events()
	if len(parsed) != len(src) {
		t.Fatalf("re-parsed %d events, want %d", len(parsed), len(src))
	}

	for i, ve := range parsed {
		evt := src[i]
		dates, ok := schedule.ParseDateRange(evt.DateRange, 2026)
		if !ok {
			t.Fatalf("source date range %q unparseable", evt.DateRange)
		}
		dayIdx := schedule.DayIndex(evt.Day)

		rr := ve.GetProperty(ical.ComponentPropertyRrule).Value
		if !strings.Contains(rr, "BYDAY="+rruleDayCodes[dayIdx]) {
			t.Errorf("event %d: RRULE %q does not carry day %s", i, rr, rruleDayCodes[dayIdx])
		}
		if !strings.Contains(rr, "UNTIL="+dates.End.Format("20060102")+"T235900") {
			t.Errorf("event %d: RRULE %q UNTIL mismatch for range %q", i, rr, evt.DateRange)
		}

		dtstart := ve.GetProperty(ical.ComponentPropertyDtStart).Value
		anchor := FirstOccurrence(dates.Start, dayIdx)
		if !strings.HasPrefix(dtstart, anchor.Format("20060102")) {
			t.Errorf("event %d: DTSTART %q not anchored on %s", i, dtstart, anchor.Format("20060102"))
		}
		if anchor.Before(dates.Start) || anchor.After(dates.End) {
			t.Errorf("event %d: anchor %v outside range %v..%v", i, anchor, dates.Start, dates.End)
		}
	}
}
