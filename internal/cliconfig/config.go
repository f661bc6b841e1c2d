// Package cliconfig resolves glotctl configuration from defaults, a
// TOML config file, GLOTCTL_* environment variables, and flags, in
// that order of precedence.
package cliconfig

import (
	"fmt"
	"strings"
	"time"
)

// DefaultBaseURL is the default address of the code runner service.
const DefaultBaseURL = "http://localhost:8089"

// Config holds CLI configuration for glotctl.
type Config struct {
	BaseURL     string
	AdminToken  string
	AccessToken string

	HTTPTimeout time.Duration
	RunTimeout  time.Duration

	ManifestPath string
	Watch        bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		HTTPTimeout:  15 * time.Second,
		RunTimeout:   300 * time.Second,
		ManifestPath: "languages.toml",
	}
}

// Validate checks the configuration for errors and normalizes derived
// values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	// Ensure no trailing slash
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive")
	}
	if c.RunTimeout <= 0 {
		return fmt.Errorf("run timeout must be positive")
	}
	if c.ManifestPath == "" {
		return fmt.Errorf("manifest path is required")
	}

	return nil
}

// Masked returns a copy safe for logging, with tokens hidden.
func (c Config) Masked() Config {
	out := c
	if out.AdminToken != "" {
		out.AdminToken = "*****"
	}
	if out.AccessToken != "" {
		out.AccessToken = "*****"
	}
	return out
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag
// not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not
// changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false. Used for
// environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
