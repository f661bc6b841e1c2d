package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %v, want %v", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want 15s", cfg.HTTPTimeout)
	}
	if cfg.RunTimeout != 300*time.Second {
		t.Errorf("RunTimeout = %v, want 300s", cfg.RunTimeout)
	}
	if cfg.ManifestPath != "languages.toml" {
		t.Errorf("ManifestPath = %v, want languages.toml", cfg.ManifestPath)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		wantBaseURL string
	}{
		{
			name: "valid minimal config",
			config: Config{
				BaseURL:      "http://localhost:8089",
				HTTPTimeout:  time.Second,
				RunTimeout:   time.Second,
				ManifestPath: "languages.toml",
			},
			wantErr: false,
		},
		{
			name: "base url defaults when omitted",
			config: Config{
				HTTPTimeout:  time.Second,
				RunTimeout:   time.Second,
				ManifestPath: "languages.toml",
			},
			wantErr:     false,
			wantBaseURL: DefaultBaseURL,
		},
		{
			name: "trailing slash trimmed",
			config: Config{
				BaseURL:      "http://localhost:8089/",
				HTTPTimeout:  time.Second,
				RunTimeout:   time.Second,
				ManifestPath: "languages.toml",
			},
			wantErr:     false,
			wantBaseURL: "http://localhost:8089",
		},
		{
			name: "invalid http timeout",
			config: Config{
				BaseURL:      "http://localhost:8089",
				HTTPTimeout:  -1,
				RunTimeout:   time.Second,
				ManifestPath: "languages.toml",
			},
			wantErr: true,
		},
		{
			name: "invalid run timeout",
			config: Config{
				BaseURL:      "http://localhost:8089",
				HTTPTimeout:  time.Second,
				ManifestPath: "languages.toml",
			},
			wantErr: true,
		},
		{
			name: "missing manifest path",
			config: Config{
				BaseURL:     "http://localhost:8089",
				HTTPTimeout: time.Second,
				RunTimeout:  time.Second,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantBaseURL != "" && tt.config.BaseURL != tt.wantBaseURL {
				t.Errorf("BaseURL = %v, want %v", tt.config.BaseURL, tt.wantBaseURL)
			}
		})
	}
}

func TestConfig_Masked(t *testing.T) {
	cfg := Config{
		BaseURL:     "http://localhost:8089",
		AdminToken:  "tamed-busman-want-vendetta",
		AccessToken: "some-access-token",
	}

	masked := cfg.Masked()

	if masked.AdminToken != "*****" {
		t.Errorf("AdminToken = %v, want masked", masked.AdminToken)
	}
	if masked.AccessToken != "*****" {
		t.Errorf("AccessToken = %v, want masked", masked.AccessToken)
	}
	if masked.BaseURL != cfg.BaseURL {
		t.Errorf("BaseURL = %v, want %v", masked.BaseURL, cfg.BaseURL)
	}
	// Original untouched
	if cfg.AdminToken != "tamed-busman-want-vendetta" {
		t.Errorf("original AdminToken modified: %v", cfg.AdminToken)
	}
}
