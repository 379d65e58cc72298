package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// TimeRange is a parsed start-end span in 24-hour hours and minutes.
type TimeRange struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

var (
	noonRe = regexp.MustCompile(`(?i)noon\s*-\s*(\d{1,2}):?(\d{2})?\s*(am|pm)?`)

	timeRangeRe = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(am|pm)?\s*-\s*(\d{1,2}):?(\d{2})?\s*(am|pm)?`)

	midnightRe = regexp.MustCompile(`(?i)midnight`)

	// leadTimeRe matches a bare leading time token before period stripping,
	// used only for sort-order extraction.
	leadTimeRe = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(am|pm|a\.m\.|p\.m\.)?`)
)

// ParseTimeRange parses free text like "12:30-3:30pm", "6-8:30pm",
// "Noon-4pm" or "7pm-Midnight" into a TimeRange. The boolean is false when
// the text matches no recognized pattern; callers must then skip the event
// rather than fabricate a time.
//
// Two deliberate approximations are kept as documented behavior:
//
//   - a start hour below 8 with no explicit am/pm is treated as PM ("6-8pm"
//     means 6pm); sub-8am starts are rare in this domain.
//   - a span crossing midnight is clamped to end at 23:59 on the same
//     calendar day instead of spilling into the next date.
func ParseTimeRange(s string) (TimeRange, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ".", ""))
	// "Midnight" only ever appears as an end token; rewrite it so the
	// general pattern sees a parseable clock time.
	cleaned = midnightRe.ReplaceAllString(cleaned, "12am")

	if m := noonRe.FindStringSubmatch(cleaned); m != nil {
		endH := atoi(m[1])
		endM := 0
		if m[2] != "" {
			endM = atoi(m[2])
		}
		endAmpm := strings.ToLower(m[3])
		if endAmpm == "" {
			endAmpm = "pm"
		}
		if endAmpm == "pm" && endH < 12 {
			endH += 12
		}
		return TimeRange{StartHour: 12, StartMinute: 0, EndHour: endH, EndMinute: endM}, true
	}

	m := timeRangeRe.FindStringSubmatch(cleaned)
	if m == nil {
		return TimeRange{}, false
	}

	startH := atoi(m[1])
	startM := 0
	if m[2] != "" {
		startM = atoi(m[2])
	}
	endH := atoi(m[4])
	endM := 0
	if m[5] != "" {
		endM = atoi(m[5])
	}
	startAmpm := strings.ToLower(m[3])
	endAmpm := strings.ToLower(m[6])

	if endAmpm == "pm" && endH < 12 {
		endH += 12
	}
	if endAmpm == "am" && endH == 12 {
		endH = 0
	}

	if startAmpm == "" {
		// Evening bias: bare start hours below 8 are PM.
		if startH < 8 {
			startH += 12
		}
	} else {
		if startAmpm == "pm" && startH < 12 {
			startH += 12
		}
		if startAmpm == "am" && startH == 12 {
			startH = 0
		}
	}

	// Past-midnight continuation: small end hours after a late start, e.g.
	// "7pm-12am" becomes 19:00-24:00.
	if endH < startH && endH <= 6 {
		endH += 24
	}

	// Never emit a time in the following day.
	if endH >= 24 {
		endH = 23
		endM = 59
	}

	return TimeRange{StartHour: startH, StartMinute: startM, EndHour: endH, EndMinute: endM}, true
}

// StartMinute derives a start-of-day minute value from the leading time
// token of a session's time text, for sorting only. Unparseable input sorts
// first at minute 0. The evening-bias heuristic is applied here
// independently of ParseTimeRange.
func StartMinute(timeStr string) int {
	if timeStr == "" {
		return 0
	}
	start := strings.TrimSpace(strings.SplitN(timeStr, "-", 2)[0])
	m := leadTimeRe.FindStringSubmatch(start)
	if m == nil {
		return 0
	}
	hour := atoi(m[1])
	min := 0
	if m[2] != "" {
		min = atoi(m[2])
	}
	ampm := strings.ToLower(strings.ReplaceAll(m[3], ".", ""))
	if ampm == "pm" && hour < 12 {
		hour += 12
	}
	if ampm == "am" && hour == 12 {
		hour = 0
	}
	if ampm == "" && hour >= 1 && hour < 8 {
		hour += 12
	}
	return hour*60 + min
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
