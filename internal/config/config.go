package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default ArcGIS feature-service endpoints for Seattle court and community
// center data. Overridable via config for testing against a local server.
const (
	DefaultCourtsURL  = "https://services.arcgis.com/ZOyb2t4B0UYuYNYH/arcgis/rest/services/Basketball_Court_Points/FeatureServer/0/query?where=1%3D1&outFields=*&f=geojson&outSR=4326"
	DefaultCentersURL = "https://services.arcgis.com/ZOyb2t4B0UYuYNYH/arcgis/rest/services/Community_Centers/FeatureServer/0/query?where=1%3D1&outFields=*&f=geojson&outSR=4326"
)

// BasicAuthConfig holds HTTP Basic Auth credentials for the serve mode.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for serve mode.
	Listen string `yaml:"listen" json:"listen"`

	// Timezone is the IANA timezone label stamped on exported calendars.
	// All schedule data is interpreted in this single zone.
	Timezone string `yaml:"timezone" json:"timezone"`

	// SeasonYear anchors M/D-M/D date ranges found in schedule text.
	SeasonYear int `yaml:"season_year" json:"season_year"`

	// Today, if set (YYYY-MM-DD), overrides the process current date used
	// by the active-program predicate. Empty means time.Now().
	Today string `yaml:"today,omitempty" json:"today,omitempty"`

	// CourtsURL / CentersURL are the GIS feature-service endpoints.
	CourtsURL  string `yaml:"courts_url" json:"courts_url"`
	CentersURL string `yaml:"centers_url" json:"centers_url"`

	// DataDir holds sources/, curated/ and the merged hoop-finder.json.
	DataDir string `yaml:"data_dir" json:"data_dir"`

	// CalDir is where preset .ics files are written by build.
	CalDir string `yaml:"cal_dir" json:"cal_dir"`

	// CacheDir backs the conditional-request cache of the GIS fetcher.
	CacheDir string `yaml:"cache_dir" json:"cache_dir"`

	// RefreshCron is a cron expression for serve-mode rebuilds.
	RefreshCron string `yaml:"refresh" json:"refresh"`

	// CalendarName is the X-WR-CALNAME of the "all events" calendar.
	CalendarName string `yaml:"calendar_name" json:"calendar_name"`

	// BasicAuth, if non-nil, enables HTTP Basic Authentication on all
	// endpoints except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:       "127.0.0.1:8080",
		Timezone:     "America/Los_Angeles",
		SeasonYear:   2026,
		CourtsURL:    DefaultCourtsURL,
		CentersURL:   DefaultCentersURL,
		DataDir:      "data",
		CalDir:       "cal",
		CacheDir:     "data/cache",
		RefreshCron:  "0 */6 * * *",
		CalendarName: "HoopFinder Seattle Basketball",
		BasicAuth:    nil,
	}
}

// Normalize fills in missing/zero values with defaults so partially-filled
// configs still behave correctly.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	if c.Timezone == "" {
		c.Timezone = "America/Los_Angeles"
	}
	if c.SeasonYear <= 0 {
		c.SeasonYear = 2026
	}
	if c.CourtsURL == "" {
		c.CourtsURL = DefaultCourtsURL
	}
	if c.CentersURL == "" {
		c.CentersURL = DefaultCentersURL
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.CalDir == "" {
		c.CalDir = "cal"
	}
	if c.CacheDir == "" {
		c.CacheDir = filepath.Join(c.DataDir, "cache")
	}
	if c.RefreshCron == "" {
		c.RefreshCron = "0 */6 * * *"
	}
	if c.CalendarName == "" {
		c.CalendarName = "HoopFinder Seattle Basketball"
	}
}

// SourcesDir is where raw GeoJSON from the GIS service lands.
func (c *Config) SourcesDir() string {
	return filepath.Join(c.DataDir, "sources")
}

// SchedulesPath is the curated schedule file attached to centers at build time.
func (c *Config) SchedulesPath() string {
	return filepath.Join(c.DataDir, "curated", "schedules.json")
}

// MergedPath is the merged dataset consumed by the map frontend.
func (c *Config) MergedPath() string {
	return filepath.Join(c.DataDir, "hoop-finder.json")
}

// CurrentDate resolves the effective "today" (midnight, local) honoring the
// Today override. Errors in the override fall back to the real clock.
func (c *Config) CurrentDate() time.Time {
	if c.Today != "" {
		if t, err := time.Parse("2006-01-02", c.Today); err == nil {
			return t
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist: write a default config (0600) and return it.
//   - If the file exists: unmarshal and normalize defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename, 0600).
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".hoopfinder-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func (c *Config) Save(path string) error {
	return Save(path, c)
}
