package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make
// TOML friendly.
type FileConfig struct {
	BaseURL     string `toml:"base_url"`
	AdminToken  string `toml:"admin_token"`
	AccessToken string `toml:"access_token"`
	HTTPTimeout string `toml:"http_timeout"`
	RunTimeout  string `toml:"run_timeout"`
	Manifest    string `toml:"manifest"`
	Watch       *bool  `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.glotctl/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".glotctl", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config
// struct. It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("base-url", fc.BaseURL, &cfg.BaseURL)
	s.setString("admin-token", fc.AdminToken, &cfg.AdminToken)
	s.setString("access-token", fc.AccessToken, &cfg.AccessToken)
	s.setString("manifest", fc.Manifest, &cfg.ManifestPath)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("run-timeout", fc.RunTimeout, &cfg.RunTimeout); err != nil {
		return err
	}

	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
