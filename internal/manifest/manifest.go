// Package manifest loads the TOML language manifest consumed by the
// sync command and watches it for changes.
package manifest

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/glot-run/glotctl/internal/domain"
)

// Entry is one language in the manifest file. Version defaults to
// "latest" and Image to the conventional glot/<name>:<version>
// reference when omitted.
type Entry struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Image   string `toml:"image"`
}

// File is the top-level manifest document.
type File struct {
	Languages []Entry `toml:"languages"`
}

// Load reads and validates a manifest, returning the descriptors in
// file order.
func Load(path string) ([]domain.Language, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := toml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	langs := make([]domain.Language, 0, len(f.Languages))
	for i, e := range f.Languages {
		if e.Name == "" {
			return nil, fmt.Errorf("manifest entry %d: name is required", i)
		}
		if e.Version == "" {
			e.Version = "latest"
		}
		if e.Image == "" {
			e.Image = domain.DefaultImage(e.Name, e.Version)
		}
		langs = append(langs, domain.Language{
			Name:    e.Name,
			Version: e.Version,
			Image:   e.Image,
		})
	}
	return langs, nil
}
