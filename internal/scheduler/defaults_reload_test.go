package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkdeck/internal/logger"
	"github.com/MrSnakeDoc/linkdeck/internal/sources/defaults"
)

func TestDefaultsReloader_Reload(t *testing.T) {
	log := logger.New("error", false)
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "defaults.yaml")

	yamlContent := `---
footer:
  - title: W3C
    url: https://www.w3.org/
`
	if err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	set := defaults.NewSet()
	reloader := NewDefaultsReloader(yamlPath, set, log, time.Hour, make(chan struct{}, 1))

	if err := reloader.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if set.Count() != 1 {
		t.Errorf("set holds %d blocks, want 1", set.Count())
	}
	rows, ok := set.Lookup("footer")
	if !ok || len(rows) != 1 || rows[0].Title != "W3C" {
		t.Errorf("Lookup(footer) = %+v, %v; want the W3C row", rows, ok)
	}
}

func TestDefaultsReloader_ReloadMissingFile(t *testing.T) {
	log := logger.New("error", false)
	set := defaults.NewSet()
	reloader := NewDefaultsReloader("/nonexistent/defaults.yaml", set, log, time.Hour, make(chan struct{}, 1))

	if err := reloader.Reload(context.Background()); err == nil {
		t.Error("Reload() with missing file should return error")
	}
}
