// Package domain holds the wire records exchanged with the code runner
// service.
package domain

import "fmt"

// Language describes a runtime the service can execute: a name, a
// version tag, and the container image that provides it. Field order
// matches the key order the admin endpoint receives.
type Language struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Image   string `json:"image"`
}

// DefaultImage returns the conventional image reference for a
// name/version pair, e.g. "glot/bash:latest".
func DefaultImage(name, version string) string {
	return fmt.Sprintf("glot/%s:%s", name, version)
}

// Validate checks that the descriptor is complete.
func (l Language) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("language name is required")
	}
	if l.Version == "" {
		return fmt.Errorf("language version is required")
	}
	if l.Image == "" {
		return fmt.Errorf("language image is required")
	}
	return nil
}
