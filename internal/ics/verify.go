package ics

import (
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"
)

// VerifyReport summarizes a re-parsed calendar document.
type VerifyReport struct {
	Events int
}

// Verify re-parses a generated calendar document and checks that every
// VEVENT carries the fields a subscribing client needs: UID, DTSTART, DTEND,
// RRULE and SUMMARY. It returns an error describing the first defect found.
func Verify(data string) (VerifyReport, error) {
	var report VerifyReport

	cal, err := ical.ParseCalendar(strings.NewReader(data))
	if err != nil {
		return report, fmt.Errorf("verify: parse: %w", err)
	}

	required := []ical.ComponentProperty{
		ical.ComponentPropertyUniqueId,
		ical.ComponentPropertyDtStart,
		ical.ComponentPropertyDtEnd,
		ical.ComponentPropertyRrule,
		ical.ComponentPropertySummary,
	}

	seen := make(map[string]bool)
	for i, ve := range cal.Events() {
		for _, prop := range required {
			p := ve.GetProperty(prop)
			if p == nil || p.Value == "" {
				return report, fmt.Errorf("verify: event %d missing %s", i, prop)
			}
		}
		uid := ve.GetProperty(ical.ComponentPropertyUniqueId).Value
		if seen[uid] {
			return report, fmt.Errorf("verify: duplicate UID %q", uid)
		}
		seen[uid] = true

		rrule := ve.GetProperty(ical.ComponentPropertyRrule).Value
		if !strings.Contains(rrule, "FREQ=WEEKLY") || !strings.Contains(rrule, "BYDAY=") {
			return report, fmt.Errorf("verify: event %d has unexpected RRULE %q", i, rrule)
		}
		report.Events++
	}

	return report, nil
}
