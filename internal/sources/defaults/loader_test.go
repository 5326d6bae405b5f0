package defaults

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "defaults.yaml")

	yamlContent := `---
footer:
  - title: W3C
    url: https://www.w3.org/
  - title: Search
    url: https://www.google.com/
legal:
  - title: Privacy
    url: /privacy
`

	err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(config) != 2 {
		t.Fatalf("Load() returned %d blocks, want 2", len(config))
	}
	if len(config["footer"]) != 2 {
		t.Errorf("footer has %d links, want 2", len(config["footer"]))
	}
	if config["footer"][0].Title != "W3C" || config["footer"][0].URL != "https://www.w3.org/" {
		t.Errorf("footer[0] = %+v, want W3C row", config["footer"][0])
	}
	if config["legal"][0].URL != "/privacy" {
		t.Errorf("legal[0].URL = %q, want /privacy", config["legal"][0].URL)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/defaults.yaml")
	_, err := loader.Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "defaults.yaml")

	err := os.WriteFile(yamlPath, []byte("footer: [title:"), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with malformed yaml should return error")
	}
}
