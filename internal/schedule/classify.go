package schedule

import (
	"regexp"
	"strings"
	"time"

	"github.com/wtennis/hoop-finder/internal/model"
)

// Age brackets derived from free-text ages fields.
const (
	AgeAdult = "adult"
	AgeTeen  = "teen"
	AgeYouth = "youth"
	AgeAll   = "all"
)

// Gender categories derived from program names.
const (
	GenderOpen   = "open"
	GenderWomens = "womens"
	GenderMens   = "mens"
)

// Location kind filter values.
const (
	LocOutdoor = "outdoor"
	LocIndoor  = "indoor"
)

var (
	andOlderRe  = regexp.MustCompile(`(\d+)\s+and\s+older`)
	ageSpanRe   = regexp.MustCompile(`(\d+)\s*[-–]\s*(\d+)`)
	bareDigitRe = regexp.MustCompile(`\b[5-9]\b`)
	menWordRe   = regexp.MustCompile(`\bmen\b`)
)

func allAgeGroups() []string {
	return []string{AgeAdult, AgeTeen, AgeYouth, AgeAll}
}

// AgeGroups maps a free-text ages field to the brackets it admits.
// Unrecognized text admits everything; an unparseable age line must never
// hide an event.
func AgeGroups(agesStr string) []string {
	if agesStr == "" {
		return allAgeGroups()
	}
	s := strings.ToLower(agesStr)
	if strings.Contains(s, "all ages") {
		return allAgeGroups()
	}
	if strings.Contains(s, "18 and older") || strings.Contains(s, "18+") {
		return []string{AgeAdult}
	}
	if m := andOlderRe.FindStringSubmatch(s); m != nil {
		age := atoi(m[1])
		if age <= 10 {
			return allAgeGroups()
		}
		if age <= 17 {
			return []string{AgeTeen, AgeAdult}
		}
		return []string{AgeAdult}
	}
	if m := ageSpanRe.FindStringSubmatch(s); m != nil {
		low := atoi(m[1])
		high := atoi(m[2])
		if low >= 11 && high <= 19 {
			return []string{AgeTeen}
		}
		if high <= 12 {
			return []string{AgeYouth}
		}
	}
	if strings.Contains(s, "5 and under") || bareDigitRe.MatchString(s) ||
		strings.Contains(s, "little") || strings.Contains(s, "mini") {
		return []string{AgeYouth}
	}
	return allAgeGroups()
}

// Gender classifies a program name. The "women" check runs before the men
// word-boundary check so "Women's Hoops" is never misread as men's.
func Gender(program string) string {
	if program == "" {
		return GenderOpen
	}
	s := strings.ToLower(program)
	if strings.Contains(s, "women's") || strings.Contains(s, "women") {
		return GenderWomens
	}
	if strings.Contains(s, "men's") || menWordRe.MatchString(s) {
		return GenderMens
	}
	return GenderOpen
}

// IsFree reports whether a cost field means no charge. Absent, "FREE", "$0"
// and a bare zero all count as free.
func IsFree(cost model.Cost) bool {
	switch cost {
	case "", "FREE", "$0", "0":
		return true
	}
	return false
}

// CostLabel renders a cost field for display.
func CostLabel(cost model.Cost) string {
	if IsFree(cost) {
		return "Free"
	}
	return string(cost)
}

// FilterSet is the active filter selection shared by map filtering, the
// schedule view and calendar export.
type FilterSet struct {
	Location map[string]bool
	Age      map[string]bool
	Gender   map[string]bool
	Cost     map[string]bool

	// RequireSchedule additionally demands at least one active program.
	RequireSchedule bool
}

// DefaultFilters returns a FilterSet with everything enabled.
func DefaultFilters() FilterSet {
	return FilterSet{
		Location: map[string]bool{LocOutdoor: true, LocIndoor: true},
		Age:      map[string]bool{AgeAdult: true, AgeTeen: true, AgeYouth: true, AgeAll: true},
		Gender:   map[string]bool{GenderOpen: true, GenderWomens: true, GenderMens: true},
		Cost:     map[string]bool{"free": true, "paid": true},
	}
}

func (f FilterSet) matchesAge(ages string) bool {
	for _, g := range AgeGroups(ages) {
		if f.Age[g] {
			return true
		}
	}
	return false
}

func (f FilterSet) matchesGender(program string) bool {
	return f.Gender[Gender(program)]
}

func (f FilterSet) matchesCost(cost model.Cost) bool {
	if IsFree(cost) {
		return f.Cost["free"]
	}
	return f.Cost["paid"]
}

// MatchesFlat reports whether one flattened event passes the age, gender and
// cost filters.
func (f FilterSet) MatchesFlat(evt model.FlatEvent) bool {
	return f.matchesAge(evt.Ages) && f.matchesGender(evt.Program) && f.matchesCost(evt.Cost)
}

// MatchesProgram is MatchesFlat for an unflattened program record.
func (f FilterSet) MatchesProgram(p model.Program) bool {
	return f.matchesAge(p.Ages) && f.matchesGender(p.Program) && f.matchesCost(p.Cost)
}

// LocationPasses applies the full filter set to a location. A location with
// no currently active programs still passes (unless RequireSchedule is set);
// one with active programs needs at least one that matches jointly on age,
// gender and cost.
func LocationPasses(loc model.Location, f FilterSet, seasonYear int, today time.Time) bool {
	if loc.Type == model.KindOutdoorCourt && !f.Location[LocOutdoor] {
		return false
	}
	if loc.Type == model.KindCommunityCenter && !f.Location[LocIndoor] {
		return false
	}
	var active []model.Program
	for _, p := range loc.Events {
		if IsActive(p.DateRange, seasonYear, today) {
			active = append(active, p)
		}
	}
	if f.RequireSchedule && len(active) == 0 {
		return false
	}
	if len(active) == 0 {
		return true
	}
	for _, p := range active {
		if f.MatchesProgram(p) {
			return true
		}
	}
	return false
}
