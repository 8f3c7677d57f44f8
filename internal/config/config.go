// Package config loads the ls-daybreak configuration file: named observer
// locations and planner defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-daybreak/internal/astro"
)

// Location is a named observer site.
type Location struct {
	Name     string  `yaml:"name"`
	Lat      float64 `yaml:"lat"`
	Lon      float64 `yaml:"lon"`
	Timezone string  `yaml:"timezone,omitempty"` // IANA name, display only
}

// Coordinates returns the location as engine coordinates.
func (l Location) Coordinates() astro.Coordinates {
	return astro.Coordinates{LatDeg: l.Lat, LonDeg: l.Lon}
}

// TimeLocation resolves the configured timezone, defaulting to UTC.
func (l Location) TimeLocation() (*time.Location, error) {
	if l.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("location %q: bad timezone: %w", l.Name, err)
	}
	return loc, nil
}

// Planner holds defaults for the start-time planner.
type Planner struct {
	DefaultBufferMinutes int `yaml:"default_buffer_minutes"`
}

// Config is the top-level configuration.
type Config struct {
	DefaultLocation string     `yaml:"default_location,omitempty"`
	Locations       []Location `yaml:"locations"`
	Planner         Planner    `yaml:"planner"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Planner: Planner{DefaultBufferMinutes: 15},
	}
}

// Load loads configuration from a YAML file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool)
	for _, l := range c.Locations {
		if l.Name == "" {
			return fmt.Errorf("location with lat=%v lon=%v has no name", l.Lat, l.Lon)
		}
		key := strings.ToLower(l.Name)
		if seen[key] {
			return fmt.Errorf("duplicate location name %q", l.Name)
		}
		seen[key] = true

		if err := l.Coordinates().Validate(); err != nil {
			return fmt.Errorf("location %q: %w", l.Name, err)
		}
		if _, err := l.TimeLocation(); err != nil {
			return err
		}
	}

	if c.DefaultLocation != "" {
		if _, ok := c.FindLocation(c.DefaultLocation); !ok {
			return fmt.Errorf("default_location %q is not defined", c.DefaultLocation)
		}
	}
	return nil
}

// FindLocation looks up a location by name, case-insensitively.
func (c *Config) FindLocation(name string) (Location, bool) {
	for _, l := range c.Locations {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Location{}, false
}

// DefaultBuffer returns the planner buffer as a duration.
func (c *Config) DefaultBuffer() time.Duration {
	return time.Duration(c.Planner.DefaultBufferMinutes) * time.Minute
}
