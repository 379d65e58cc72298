package merge

import (
	"regexp"
	"strings"

	appLog "github.com/wtennis/hoop-finder/internal/log"
	"github.com/wtennis/hoop-finder/internal/model"
)

// Curated schedule rows name centers slightly differently from the GIS data
// ("Garfield C.C.", "Jefferson Park CC"), so attaching programs goes through
// a normalized lookup plus a ranked list of fallback strategies.

var (
	ccRe       = regexp.MustCompile(`(?i)community center`)
	ccAbbrevRe = regexp.MustCompile(`(?i)c\.c\.`)
	parkWordRe = regexp.MustCompile(`(?i)\bpark\b`)
	spacesRe   = regexp.MustCompile(`\s+`)
)

// NormalizeCenterName strips the noise words that vary between sources.
func NormalizeCenterName(name string) string {
	s := strings.ToLower(name)
	s = ccRe.ReplaceAllString(s, "")
	s = ccAbbrevRe.ReplaceAllString(s, "")
	s = parkWordRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "/", " ")
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// centerLookup is an insertion-ordered map from normalized center name to a
// location index, so fallback strategies scan candidates deterministically.
type centerLookup struct {
	keys    []string
	indexes map[string]int
}

func buildCenterLookup(locations []model.Location) *centerLookup {
	lk := &centerLookup{indexes: make(map[string]int)}
	for i, loc := range locations {
		if loc.Type != model.KindCommunityCenter {
			continue
		}
		key := NormalizeCenterName(loc.Name)
		if _, exists := lk.indexes[key]; !exists {
			lk.keys = append(lk.keys, key)
			lk.indexes[key] = i
		}
	}
	return lk
}

// matchStrategy tries to resolve a normalized schedule name against the
// lookup, returning a location index or -1.
type matchStrategy func(key string, lk *centerLookup) int

// matchStrategies is the ranked list tried in order; the first hit wins.
var matchStrategies = []matchStrategy{
	matchExact,
	matchContainment,
	matchWordOverlap,
}

func matchExact(key string, lk *centerLookup) int {
	if idx, ok := lk.indexes[key]; ok {
		return idx
	}
	return -1
}

// matchContainment accepts when either normalized name contains the other.
func matchContainment(key string, lk *centerLookup) int {
	for _, locKey := range lk.keys {
		if strings.Contains(locKey, key) || strings.Contains(key, locKey) {
			return lk.indexes[locKey]
		}
	}
	return -1
}

// matchWordOverlap accepts when at least half of the shorter name's
// significant words (length > 2) appear in the other.
func matchWordOverlap(key string, lk *centerLookup) int {
	keyWords := significantWords(key)
	for _, locKey := range lk.keys {
		locWords := significantWords(locKey)
		overlap := 0
		for _, w := range keyWords {
			for _, lw := range locWords {
				if w == lw {
					overlap++
					break
				}
			}
		}
		minLen := len(keyWords)
		if len(locWords) < minLen {
			minLen = len(locWords)
		}
		if overlap >= 1 && float64(overlap) >= float64(minLen)*0.5 {
			return lk.indexes[locKey]
		}
	}
	return -1
}

func significantWords(s string) []string {
	var out []string
	for _, w := range strings.Split(s, " ") {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// findCenter resolves a schedule's center name to a location index, or -1.
// Pure function of (name, lookup).
func findCenter(centerName string, lk *centerLookup) int {
	key := NormalizeCenterName(centerName)
	if key == "" {
		return -1
	}
	for _, strategy := range matchStrategies {
		if idx := strategy(key, lk); idx >= 0 {
			return idx
		}
	}
	return -1
}

// MatchSchedules attaches each curated program to its location. It returns
// the matched count and the distinct center names that resolved to nothing;
// unmatched rows are dropped with a log line, never an error.
func MatchSchedules(locations []model.Location, sched model.ScheduleFile) (int, []string) {
	lk := buildCenterLookup(locations)

	matched := 0
	var unmatchedNames []string
	seenUnmatched := make(map[string]bool)

	for _, evt := range sched.Events {
		idx := findCenter(evt.Center, lk)
		if idx < 0 {
			if !seenUnmatched[evt.Center] {
				seenUnmatched[evt.Center] = true
				unmatchedNames = append(unmatchedNames, evt.Center)
			}
			continue
		}
		locations[idx].Events = append(locations[idx].Events, evt.Program)
		matched++
	}

	for _, name := range unmatchedNames {
		appLog.Info("schedule center unmatched", "center", name)
	}

	return matched, unmatchedNames
}
