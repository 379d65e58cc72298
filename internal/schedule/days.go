// Package schedule is the single source of truth for normalizing the
// loosely-structured day, time and date text found in recreation program
// listings. Both the build pipeline and serve mode go through it.
package schedule

import (
	"regexp"
	"strings"

	"github.com/wtennis/hoop-finder/internal/model"
)

// dayRangeRe matches a bare two-token range like "Monday-Friday" or
// "Mon–Thu" (hyphen or en-dash, nothing else on the line).
var dayRangeRe = regexp.MustCompile(`^(\w+)\s*[-–]\s*(\w+)$`)

var nonLetterRe = regexp.MustCompile(`[^a-z]`)

// ResolveDay maps a free-text token to a canonical weekday name. Matching is
// by three-letter prefix on the cleaned lowercase token, so "Mon", "mon.",
// "Monday" and "Mondays" all resolve to "Monday". Returns "" when nothing
// matches.
func ResolveDay(s string) string {
	cleaned := nonLetterRe.ReplaceAllString(strings.ToLower(s), "")
	if cleaned == "" {
		return ""
	}
	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}
	for _, day := range model.Days {
		if strings.HasPrefix(strings.ToLower(day), cleaned) {
			return day
		}
	}
	return ""
}

// DayIndex resolves a token to its Sunday-first weekday index, or -1.
func DayIndex(s string) int {
	d := ResolveDay(s)
	if d == "" {
		return -1
	}
	for i, day := range model.Days {
		if day == d {
			return i
		}
	}
	return -1
}

// ExpandDays normalizes a compound day expression into canonical weekday
// names. Supported shapes, tried in order:
//
//   - ranges: "Monday-Friday" expands to the inclusive index span, ascending.
//     A range whose start index is past its end yields nothing (no week
//     wraparound).
//   - slash lists: "Mon/Wed/Fri" resolves each segment, dropping the ones
//     that do not resolve, preserving source order.
//   - a single token.
//
// Unrecognized input yields an empty result; callers treat that as "no
// schedule" rather than an error.
func ExpandDays(dayStr string) []string {
	s := strings.TrimSpace(dayStr)
	if s == "" {
		return nil
	}

	if m := dayRangeRe.FindStringSubmatch(s); m != nil {
		startIdx := DayIndex(m[1])
		endIdx := DayIndex(m[2])
		if startIdx >= 0 && endIdx >= 0 {
			result := []string{}
			for i := startIdx; i <= endIdx; i++ {
				result = append(result, model.Days[i])
			}
			return result
		}
	}

	if strings.Contains(s, "/") {
		var result []string
		for _, part := range strings.Split(s, "/") {
			if d := ResolveDay(strings.TrimSpace(part)); d != "" {
				result = append(result, d)
			}
		}
		return result
	}

	if d := ResolveDay(s); d != "" {
		return []string{d}
	}
	return nil
}
