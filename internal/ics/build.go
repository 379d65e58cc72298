// Package ics renders flattened schedule events into an iCalendar document
// with weekly recurrence rules, and verifies/expands the result.
package ics

import (
	"fmt"
	"strings"
	"time"

	appLog "github.com/wtennis/hoop-finder/internal/log"
	"github.com/wtennis/hoop-finder/internal/model"
	"github.com/wtennis/hoop-finder/internal/schedule"
)

const (
	ProdID          = "-//HoopFinder//Seattle Basketball//EN"
	DefaultTimezone = "America/Los_Angeles"
	DefaultCalName  = "HoopFinder Seattle Basketball"

	// citySuffix is appended to every LOCATION field.
	citySuffix = "Seattle, WA"

	uidDomain = "hoopfinder"
)

// rruleDayCodes are the RFC 5545 BYDAY codes, Sunday-first to line up with
// model.Days.
var rruleDayCodes = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// BuildOptions parameterizes calendar generation. Zero values fall back to
// the fixed product defaults.
type BuildOptions struct {
	// Name becomes X-WR-CALNAME.
	Name string
	// Timezone is the TZID label stamped on start/end instants.
	Timezone string
	// SeasonYear anchors date-range parsing.
	SeasonYear int
}

func (o *BuildOptions) normalize() {
	if o.Name == "" {
		o.Name = DefaultCalName
	}
	if o.Timezone == "" {
		o.Timezone = DefaultTimezone
	}
	if o.SeasonYear <= 0 {
		o.SeasonYear = 2026
	}
}

// Build renders the given flattened events into a VCALENDAR document and
// returns it with the number of VEVENT records emitted. Events whose day,
// time or date range cannot be parsed are skipped individually; the batch
// never fails.
//
// Output is deterministic for a given input: CRLF line terminators, no
// trailing terminator, and a per-document counter disambiguating UIDs.
func Build(events []model.FlatEvent, opts BuildOptions) (string, int) {
	opts.normalize()

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ProdID,
		"CALSCALE:GREGORIAN",
		"X-WR-CALNAME:" + escape(opts.Name),
		"X-WR-TIMEZONE:" + opts.Timezone,
	}

	count := 0
	for _, evt := range events {
		if evt.DateRange == "" || evt.Time == "" {
			continue
		}
		dates, ok := schedule.ParseDateRange(evt.DateRange, opts.SeasonYear)
		if !ok {
			appLog.Debug("ics: skipping event with unparseable date range",
				"program", evt.Program, "date_range", evt.DateRange)
			continue
		}
		times, ok := schedule.ParseTimeRange(evt.Time)
		if !ok {
			appLog.Debug("ics: skipping event with unparseable time range",
				"program", evt.Program, "time", evt.Time)
			continue
		}
		dayIdx := schedule.DayIndex(evt.Day)
		if dayIdx < 0 {
			continue
		}

		anchor := FirstOccurrence(dates.Start, dayIdx)
		if anchor.After(dates.End) {
			// No occurrence fits inside the range.
			continue
		}

		startDT := formatDateTime(anchor, times.StartHour, times.StartMinute)
		endDT := formatDateTime(anchor, times.EndHour, times.EndMinute)
		untilDT := formatDate(dates.End) + "T235900"

		code := evt.Code
		if code == "" {
			code = "hf"
		}
		uid := fmt.Sprintf("%s-%s-%d@%s", code, strings.ToLower(evt.Day)[:3], count, uidDomain)
		summary := evt.Program + " @ " + evt.Center
		description := fmt.Sprintf("Ages: %s\nCost: %s\nDates: %s",
			evt.Ages, schedule.CostLabel(evt.Cost), evt.DateRange)
		location := evt.Center + ", " + evt.Address + ", " + citySuffix

		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+uid,
			fmt.Sprintf("DTSTART;TZID=%s:%s", opts.Timezone, startDT),
			fmt.Sprintf("DTEND;TZID=%s:%s", opts.Timezone, endDT),
			fmt.Sprintf("RRULE:FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", rruleDayCodes[dayIdx], untilDT),
			"SUMMARY:"+escape(summary),
			"DESCRIPTION:"+escape(description),
			"LOCATION:"+escape(location),
			"END:VEVENT",
		)
		count++
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n"), count
}

// FirstOccurrence returns the first date on or after start that falls on the
// Sunday-indexed target weekday.
func FirstOccurrence(start time.Time, targetDayIdx int) time.Time {
	diff := (targetDayIdx - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, diff)
}

func formatDateTime(date time.Time, hour, min int) string {
	return date.Format("20060102") + fmt.Sprintf("T%02d%02d00", hour, min)
}

func formatDate(date time.Time) string {
	return date.Format("20060102")
}

// escape protects the iCalendar TEXT reserved characters: backslash,
// semicolon, comma, and embedded newlines.
func escape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
