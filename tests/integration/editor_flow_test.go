package integration

import (
	"context"
	"testing"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
	"github.com/MrSnakeDoc/linkdeck/internal/editor"
	"github.com/MrSnakeDoc/linkdeck/internal/index"
	"github.com/MrSnakeDoc/linkdeck/internal/sources/defaults"
)

// memStore is an in-memory ConfigStore for exercising full edit flows.
type memStore struct {
	blocks    map[string][]domain.LinkEntry
	revisions map[string]int64
}

func newMemStore() *memStore {
	return &memStore{
		blocks:    make(map[string][]domain.LinkEntry),
		revisions: make(map[string]int64),
	}
}

func (s *memStore) Get(_ context.Context, blockID string) ([]domain.LinkEntry, error) {
	rows, ok := s.blocks[blockID]
	if !ok {
		return nil, nil
	}
	out := make([]domain.LinkEntry, len(rows))
	copy(out, rows)
	return out, nil
}

func (s *memStore) Set(_ context.Context, blockID string, rows []domain.LinkEntry) error {
	s.blocks[blockID] = rows
	return nil
}

func (s *memStore) Save(_ context.Context, blockID string) error {
	s.revisions[blockID]++
	return nil
}

// TestEditCommitRenderFlow walks a full unlocked session: open, grow the row
// set, submit with errors, fix and commit, then render the committed block.
func TestEditCommitRenderFlow(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.blocks["footer"] = []domain.LinkEntry{
		{Title: "Home", URL: "/", Weight: 0, Enabled: true},
	}

	ed, err := editor.New(ctx, store, "footer")
	if err != nil {
		t.Fatalf("failed to open editor: %v", err)
	}

	registry := editor.NewRegistry(0)
	sess := registry.Open(ed)

	// Grow the form by two rows.
	if _, err := sess.Apply(editor.ActionAddRow); err != nil {
		t.Fatalf("add row failed: %v", err)
	}
	if _, err := sess.Apply(editor.ActionAddRow); err != nil {
		t.Fatalf("add row failed: %v", err)
	}
	view := sess.View()
	if view.RowCount != 3 {
		t.Fatalf("expected 3 rows, got %d", view.RowCount)
	}

	// First submit has a bad URL and a missing title.
	_, verrs, err := sess.Submit(ctx, []editor.RowInput{
		{Title: "Home", URL: "/", Weight: 0},
		{Title: "Docs", URL: "not a url", Weight: 1},
		{Title: "", URL: "https://example.com", Weight: 2},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if len(verrs) != 2 {
		t.Fatalf("expected 2 validation errors, got %d: %v", len(verrs), verrs)
	}
	if sess.View().State != "editing" {
		t.Fatalf("session should stay open after a failed submit")
	}

	// Second submit fixes both rows and commits.
	rows, verrs, err := sess.Submit(ctx, []editor.RowInput{
		{Title: "Home", URL: "/", Weight: 0},
		{Title: "Docs", URL: "https://docs.example.com", Weight: 1},
		{Title: "About", URL: "<front>", Weight: 2},
	})
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if verrs != nil {
		t.Fatalf("unexpected validation errors: %v", verrs)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 committed rows, got %d", len(rows))
	}
	if store.revisions["footer"] != 1 {
		t.Fatalf("commit should bump the revision once, got %d", store.revisions["footer"])
	}

	// Render the committed configuration.
	persisted, err := store.Get(ctx, "footer")
	if err != nil {
		t.Fatalf("failed to read back block: %v", err)
	}
	links := domain.Render(persisted)
	if len(links) != 3 {
		t.Fatalf("expected 3 rendered links, got %d", len(links))
	}
	if links[2].Target.Kind != domain.TargetRoute || links[2].Target.Value != "front" {
		t.Fatalf("expected route target 'front', got %+v", links[2].Target)
	}
}

// TestLockedFlowKeepsDefaultTitles opens a locked session from a defaults
// set, disables one row, and checks that disabled rows persist but are
// filtered at render time.
func TestLockedFlowKeepsDefaultTitles(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	set := defaults.NewSet()
	mapper := defaults.NewMapper()
	set.Replace(mapper.MapBlocks(defaults.Config{
		"sidebar": {
			{Title: "Status", URL: "https://status.example.com"},
			{Title: "Wiki", URL: "https://wiki.example.com"},
		},
	}))

	def, ok := set.Lookup("sidebar")
	if !ok {
		t.Fatalf("defaults for sidebar should exist")
	}

	ed, err := editor.NewLocked(ctx, store, "sidebar", def)
	if err != nil {
		t.Fatalf("failed to open locked editor: %v", err)
	}

	if err := ed.Apply(editor.ActionAddRow); err != editor.ErrLockedRows {
		t.Fatalf("expected ErrLockedRows, got %v", err)
	}

	rows, verrs, err := ed.Submit(ctx, []editor.RowInput{
		{URL: "https://status.example.com", Enabled: true},
		{URL: "https://wiki.example.com", Enabled: false},
	})
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if verrs != nil {
		t.Fatalf("unexpected validation errors: %v", verrs)
	}
	if len(rows) != 2 {
		t.Fatalf("disabled rows must persist, got %d rows", len(rows))
	}
	if rows[0].Title != "Status" || rows[1].Title != "Wiki" {
		t.Fatalf("locked titles must come from defaults, got %q, %q", rows[0].Title, rows[1].Title)
	}

	links := domain.Render(rows)
	if len(links) != 1 {
		t.Fatalf("disabled rows must be filtered at render, got %d links", len(links))
	}
	if links[0].Text != "Status" {
		t.Fatalf("expected 'Status' to render, got %q", links[0].Text)
	}
}

// TestRenderCacheTracksRevisions checks that a cached render is served only
// while the store revision is unchanged.
func TestRenderCacheTracksRevisions(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	cache := index.NewRenderCache()

	store.blocks["footer"] = []domain.LinkEntry{
		{Title: "Home", URL: "/", Weight: 0, Enabled: true},
	}

	rows, _ := store.Get(ctx, "footer")
	cache.Put("footer", store.revisions["footer"], domain.Render(rows))

	if _, ok := cache.Get("footer", store.revisions["footer"]); !ok {
		t.Fatalf("expected cache hit at current revision")
	}

	// A commit bumps the revision and the old entry goes stale.
	if err := store.Save(ctx, "footer"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, ok := cache.Get("footer", store.revisions["footer"]); ok {
		t.Fatalf("expected cache miss after revision bump")
	}
}
