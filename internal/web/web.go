// Package web serves the merged dataset and the prebuilt calendar feeds.
package web

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wtennis/hoop-finder/internal/config"
	"github.com/wtennis/hoop-finder/internal/ics"
	appLog "github.com/wtennis/hoop-finder/internal/log"
	"github.com/wtennis/hoop-finder/internal/model"
	"github.com/wtennis/hoop-finder/internal/schedule"
)

// Server exposes the dataset and calendar feeds over HTTP. Feeds are
// rebuilt in memory whenever SetDataset is called (startup and every cron
// refresh), so request handlers only ever copy bytes.
type Server struct {
	cfg *config.Config
	mux *http.ServeMux

	mu        sync.RWMutex
	dataset   []byte
	feeds     map[string]feedEntry
	updatedAt time.Time
}

type feedEntry struct {
	label  string
	body   []byte
	events int
}

// NewServer constructs a Server. Call SetDataset before serving or every
// data endpoint answers 503.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:   cfg,
		mux:   http.NewServeMux(),
		feeds: make(map[string]feedEntry),
	}
	s.registerRoutes()
	return s
}

// Handler returns the http.Handler, wrapped with Basic Auth when configured.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", "http://"+s.cfg.Listen)
		return s.basicAuthMiddleware(h)
	}
	return h
}

func (s *Server) basicAuthEnabled() bool {
	if s.cfg == nil || s.cfg.BasicAuth == nil {
		return false
	}
	return s.cfg.BasicAuth.Username != "" && s.cfg.BasicAuth.Password != ""
}

// basicAuthMiddleware wraps all handlers except /health.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="HoopFinder", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// SetDataset installs a freshly merged dataset: it flattens the schedule
// programs, renders every preset feed, and swaps the served copies in one
// lock acquisition.
func (s *Server) SetDataset(ds model.Dataset) error {
	body, err := json.Marshal(ds)
	if err != nil {
		return err
	}

	events := schedule.Flatten(ds.Locations)
	feeds := make(map[string]feedEntry)
	for _, preset := range ics.DefaultPresets(s.cfg.CalendarName) {
		cal, count := ics.Build(preset.Select(events), ics.BuildOptions{
			Name:       preset.Label,
			Timezone:   s.cfg.Timezone,
			SeasonYear: s.cfg.SeasonYear,
		})
		feeds[preset.Slug] = feedEntry{
			label:  preset.Label,
			body:   []byte(cal),
			events: count,
		}
	}

	s.mu.Lock()
	s.dataset = body
	s.feeds = feeds
	s.updatedAt = time.Now()
	s.mu.Unlock()

	appLog.Info("dataset installed",
		"locations", len(ds.Locations),
		"flat_events", len(events),
		"feeds", len(feeds),
	)
	return nil
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/data", s.handleData)
	s.mux.HandleFunc("/api/feeds", s.handleFeeds)
	s.mux.HandleFunc("/cal/", s.handleCalendar)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleData serves the merged dataset JSON as built, byte for byte.
func (s *Server) handleData(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	body := s.dataset
	s.mu.RUnlock()

	if body == nil {
		writeError(w, http.StatusServiceUnavailable, "dataset not built yet")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// feedInfo is the JSON shape for one entry of /api/feeds.
type feedInfo struct {
	Slug   string `json:"slug"`
	Label  string `json:"label"`
	Path   string `json:"path"`
	Events int    `json:"events"`
}

type feedsResponse struct {
	Feeds     []feedInfo `json:"feeds"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (s *Server) handleFeeds(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	resp := feedsResponse{UpdatedAt: s.updatedAt}
	for slug, fe := range s.feeds {
		resp.Feeds = append(resp.Feeds, feedInfo{
			Slug:   slug,
			Label:  fe.label,
			Path:   "/cal/" + slug + ".ics",
			Events: fe.events,
		})
	}
	s.mu.RUnlock()

	sort.Slice(resp.Feeds, func(i, j int) bool { return resp.Feeds[i].Slug < resp.Feeds[j].Slug })
	writeJSON(w, http.StatusOK, resp)
}

// handleCalendar serves /cal/<slug>.ics for any published preset.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/cal/")
	slug = strings.TrimSuffix(slug, ".ics")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	s.mu.RLock()
	fe, ok := s.feeds[slug]
	s.mu.RUnlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	if fe.body == nil {
		writeError(w, http.StatusServiceUnavailable, "feed not built yet")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+slug+`.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(fe.body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
