// Package config loads the settings of the report tool from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Issue trackers supported for issue summaries.
const (
	TrackerBugzilla = "bugzilla"
	TrackerGitHub   = "github"
)

// Config holds the settings for one run. It is read once at startup.
type Config struct {
	// Standups
	StandupsURL string
	Project     string

	// Issue tracker
	Tracker        string
	BugzillaURL    string
	BugzillaAPIKey string
	GitHubToken    string
	GitHubRepo     string

	// HTTP
	HTTPTimeout       time.Duration
	LookupConcurrency int
	LookupRate        float64
}

// Load reads the Config from environment variables.
// Unparsable optional values fall back to their defaults.
func Load() (*Config, error) {
	cfg := &Config{
		StandupsURL:       getEnvString("STANDUPS_URL", "https://www.standu.ps"),
		Project:           getEnvString("STANDUPS_PROJECT", "perf-tw"),
		Tracker:           strings.ToLower(getEnvString("ISSUE_TRACKER", TrackerBugzilla)),
		BugzillaURL:       getEnvString("BUGZILLA_URL", "https://bugzilla.mozilla.org"),
		BugzillaAPIKey:    os.Getenv("BUGZILLA_API_KEY"),
		GitHubToken:       os.Getenv("GITHUB_TOKEN"),
		GitHubRepo:        os.Getenv("GITHUB_REPO"),
		HTTPTimeout:       getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		LookupConcurrency: getEnvInt("LOOKUP_CONCURRENCY", 4),
		LookupRate:        getEnvFloat("LOOKUP_RATE", 5),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Tracker {
	case TrackerBugzilla:
	case TrackerGitHub:
		if c.GitHubRepo == "" {
			return fmt.Errorf("GITHUB_REPO is required when ISSUE_TRACKER is %q", TrackerGitHub)
		}
	default:
		return fmt.Errorf("unknown issue tracker %q: must be %q or %q", c.Tracker, TrackerBugzilla, TrackerGitHub)
	}
	if c.Project == "" {
		return fmt.Errorf("project must not be empty")
	}
	return nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
