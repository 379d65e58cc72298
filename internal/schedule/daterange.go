package schedule

import (
	"regexp"
	"time"

	"github.com/wtennis/hoop-finder/internal/model"
)

// DateRange is a parsed season span, both ends anchored to the season year.
type DateRange struct {
	Start time.Time
	End   time.Time
}

var dateRangeRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})\s*-\s*(\d{1,2})/(\d{1,2})`)

// ParseDateRange parses "M/D-M/D" text against the given season year.
// There are no fallback heuristics; anything else fails.
func ParseDateRange(s string, seasonYear int) (DateRange, bool) {
	m := dateRangeRe.FindStringSubmatch(s)
	if m == nil {
		return DateRange{}, false
	}
	return DateRange{
		Start: time.Date(seasonYear, time.Month(atoi(m[1])), atoi(m[2]), 0, 0, 0, 0, time.Local),
		End:   time.Date(seasonYear, time.Month(atoi(m[3])), atoi(m[4]), 0, 0, 0, 0, time.Local),
	}, true
}

// IsActive reports whether a program with the given date-range text is
// current on the given day. No date range, or one that does not parse,
// means always active.
func IsActive(dateRange string, seasonYear int, today time.Time) bool {
	if dateRange == "" {
		return true
	}
	r, ok := ParseDateRange(dateRange, seasonYear)
	if !ok {
		return true
	}
	return !today.Before(r.Start) && !today.After(r.End)
}

// SeasonExpired reports whether a non-empty event list has no currently
// active events, i.e. the published season is over.
func SeasonExpired(events []model.FlatEvent, seasonYear int, today time.Time) bool {
	if len(events) == 0 {
		return false
	}
	for _, evt := range events {
		if IsActive(evt.DateRange, seasonYear, today) {
			return false
		}
	}
	return true
}
