package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Canonical weekday names, Sunday-first. Every derived event weekday is one
// of these; nothing else is valid.
var Days = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Location kinds.
const (
	KindOutdoorCourt    = "outdoor_court"
	KindCommunityCenter = "community_center"
)

// Cost is a free-text cost field. Curated schedule sources sometimes encode
// a bare number instead of a string, so unmarshaling accepts both.
type Cost string

func (c *Cost) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*c = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Cost(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = Cost(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// Session is one weekly time slot within a Program. Day may denote several
// weekdays via a range ("Monday-Friday") or a list ("Mon/Wed/Fri").
type Session struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// Program is a scheduled activity offered at a Location.
type Program struct {
	Program   string    `json:"program"`
	Type      string    `json:"type,omitempty"`
	Ages      string    `json:"ages,omitempty"`
	Code      string    `json:"code,omitempty"`
	DateRange string    `json:"date_range,omitempty"`
	Cost      Cost      `json:"cost,omitempty"`
	Sessions  []Session `json:"sessions,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// Location is a physical site: an outdoor court or a community center.
// Created by the merge step and immutable thereafter within a run.
type Location struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`

	// Outdoor court attributes.
	CourtType  string `json:"court_type,omitempty"`
	CourtCount int    `json:"court_count,omitempty"`

	// Community center attributes.
	Phone          string            `json:"phone,omitempty"`
	CenterHours    map[string]string `json:"center_hours,omitempty"`
	Website        string            `json:"website,omitempty"`
	BasketballLink string            `json:"basketball_link,omitempty"`

	Indoor bool   `json:"indoor"`
	Cost   string `json:"cost,omitempty"`

	Events []Program `json:"events"`
}

// FlatEvent is one (Location x Program x single resolved weekday) tuple,
// recomputed fresh from the location list; never persisted.
type FlatEvent struct {
	Center    string `json:"center"`
	Address   string `json:"address"`
	Program   string `json:"program"`
	Ages      string `json:"ages"`
	Cost      Cost   `json:"cost"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	DateRange string `json:"date_range,omitempty"`
	Code      string `json:"code,omitempty"`
	Type      string `json:"type,omitempty"`
}

// Dataset is the merged output consumed by the map frontend and serve mode.
type Dataset struct {
	GeneratedAt string          `json:"generated_at"`
	Seasons     json.RawMessage `json:"seasons"`
	Locations   []Location      `json:"locations"`
}

// ScheduleEntry is one curated program keyed by the center name it belongs to.
type ScheduleEntry struct {
	Center string `json:"center"`
	Program
}

// ScheduleFile is the curated schedules.json shape.
type ScheduleFile struct {
	Seasons json.RawMessage `json:"seasons,omitempty"`
	Events  []ScheduleEntry `json:"events"`
}
