package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
	"github.com/MrSnakeDoc/linkdeck/internal/editor"
	"github.com/MrSnakeDoc/linkdeck/internal/logger"
)

type stubStore struct{}

func (stubStore) Get(context.Context, string) ([]domain.LinkEntry, error)       { return nil, nil }
func (stubStore) Set(context.Context, string, []domain.LinkEntry) error         { return nil }
func (stubStore) Save(context.Context, string) error                            { return nil }

func TestSessionGC_Collect(t *testing.T) {
	log := logger.New("error", false)

	// A very short TTL so a freshly touched session is already idle.
	registry := editor.NewRegistry(time.Nanosecond)

	ed, err := editor.New(context.Background(), stubStore{}, "main")
	if err != nil {
		t.Fatalf("editor.New() error = %v", err)
	}
	registry.Open(ed)

	if registry.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", registry.Count())
	}

	time.Sleep(time.Millisecond)

	gc := NewSessionGC(registry, log, time.Hour)
	gc.Collect()

	if registry.Count() != 0 {
		t.Errorf("Count() after collect = %d, want 0", registry.Count())
	}
}

func TestSessionGC_KeepsActiveSessions(t *testing.T) {
	log := logger.New("error", false)
	registry := editor.NewRegistry(time.Hour)

	ed, err := editor.New(context.Background(), stubStore{}, "main")
	if err != nil {
		t.Fatalf("editor.New() error = %v", err)
	}
	registry.Open(ed)

	gc := NewSessionGC(registry, log, time.Hour)
	gc.Collect()

	if registry.Count() != 1 {
		t.Errorf("Count() after collect = %d, want 1 (session is active)", registry.Count())
	}
}
