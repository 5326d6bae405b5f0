package index

import (
	"testing"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
)

func sampleLinks() []domain.ResolvedLink {
	return []domain.ResolvedLink{
		{Text: "Docs", Target: domain.Target{Kind: domain.TargetExternal, Value: "https://docs.example.com"}},
		{Text: "Home", Target: domain.Target{Kind: domain.TargetRoute, Value: "front"}},
	}
}

func TestRenderCachePutAndGet(t *testing.T) {
	cache := NewRenderCache()

	cache.Put("main", 3, sampleLinks())

	links, ok := cache.Get("main", 3)
	if !ok {
		t.Fatal("Get() miss for matching revision")
	}
	if len(links) != 2 || links[0].Text != "Docs" {
		t.Errorf("Get() = %+v, want cached links", links)
	}
	if cache.Count() != 1 {
		t.Errorf("Count() = %d, want 1", cache.Count())
	}
}

func TestRenderCacheMissOnStaleRevision(t *testing.T) {
	cache := NewRenderCache()
	cache.Put("main", 3, sampleLinks())

	// A commit bumped the stored revision; the cached render is stale.
	if _, ok := cache.Get("main", 4); ok {
		t.Error("Get() served a stale revision")
	}
}

func TestRenderCacheMissOnUnknownBlock(t *testing.T) {
	cache := NewRenderCache()

	if _, ok := cache.Get("nope", 0); ok {
		t.Error("Get() hit for a block never cached")
	}
}

func TestRenderCacheInvalidate(t *testing.T) {
	cache := NewRenderCache()
	cache.Put("main", 1, sampleLinks())

	cache.Invalidate("main")

	if _, ok := cache.Get("main", 1); ok {
		t.Error("Get() hit after Invalidate()")
	}
	if cache.Count() != 0 {
		t.Errorf("Count() = %d, want 0", cache.Count())
	}
}

func TestRenderCacheRenderedAt(t *testing.T) {
	cache := NewRenderCache()

	if _, ok := cache.RenderedAt("main"); ok {
		t.Error("RenderedAt() for unknown block should miss")
	}

	cache.Put("main", 1, sampleLinks())
	if ts, ok := cache.RenderedAt("main"); !ok || ts.IsZero() {
		t.Errorf("RenderedAt() = %v, %v; want a set timestamp", ts, ok)
	}
}
