package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (GLOTCTL_*). It respects flags that have been explicitly set
// (changed map). Returns an error if any environment variable has an
// invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("base-url", os.Getenv("GLOTCTL_BASE_URL"), &cfg.BaseURL)
	s.setString("admin-token", os.Getenv("GLOTCTL_ADMIN_TOKEN"), &cfg.AdminToken)
	s.setString("access-token", os.Getenv("GLOTCTL_ACCESS_TOKEN"), &cfg.AccessToken)
	s.setString("manifest", os.Getenv("GLOTCTL_MANIFEST"), &cfg.ManifestPath)

	if err := s.setDuration("timeout", os.Getenv("GLOTCTL_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("run-timeout", os.Getenv("GLOTCTL_RUN_TIMEOUT"), &cfg.RunTimeout); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("GLOTCTL_WATCH"), &cfg.Watch)

	return nil
}
