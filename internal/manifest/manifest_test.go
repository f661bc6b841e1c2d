package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glot-run/glotctl/internal/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "languages.toml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(content)), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
[[languages]]
name = "bash"
version = "latest"
image = "glot/bash:latest"

[[languages]]
name = "python"
version = "3.12"

[[languages]]
name = "rust"
`)

	langs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []domain.Language{
		{Name: "bash", Version: "latest", Image: "glot/bash:latest"},
		{Name: "python", Version: "3.12", Image: "glot/python:3.12"},
		{Name: "rust", Version: "latest", Image: "glot/rust:latest"},
	}

	if len(langs) != len(want) {
		t.Fatalf("Load() returned %d languages, want %d", len(langs), len(want))
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Errorf("languages[%d] = %+v, want %+v", i, langs[i], want[i])
		}
	}
}

func TestLoad_EmptyManifest(t *testing.T) {
	path := writeManifest(t, ``)

	langs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(langs) != 0 {
		t.Errorf("Load() returned %d languages, want 0", len(langs))
	}
}

func TestLoad_MissingName(t *testing.T) {
	path := writeManifest(t, `
[[languages]]
name = "bash"

[[languages]]
version = "latest"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for entry without name")
	}
	if !strings.Contains(err.Error(), "entry 1") {
		t.Errorf("error = %v, want entry index", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("/nonexistent/languages.toml"); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeManifest(t, `[[languages]`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}
