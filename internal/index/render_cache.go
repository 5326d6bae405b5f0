package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
)

// RenderCache keeps the resolved link list of each block in memory, tagged
// with the configuration revision it was rendered from. A cached entry is
// served only while its revision still matches the store's; a commit bumps
// the revision and the next read re-renders. Rendering holds no mutable
// state, so concurrent readers are safe.
type RenderCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	links      []domain.ResolvedLink
	revision   int64
	renderedAt time.Time
}

// NewRenderCache creates an empty render cache
func NewRenderCache() *RenderCache {
	return &RenderCache{
		entries: make(map[string]*entry),
	}
}

// Get returns the cached links for a block if they were rendered from the
// given revision.
func (c *RenderCache) Get(blockID string, revision int64) ([]domain.ResolvedLink, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[blockID]
	if !ok || e.revision != revision {
		return nil, false
	}
	return e.links, true
}

// Put stores a freshly rendered list for a block at a revision.
func (c *RenderCache) Put(blockID string, revision int64, links []domain.ResolvedLink) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[blockID] = &entry{
		links:      links,
		revision:   revision,
		renderedAt: time.Now(),
	}
}

// Invalidate drops a block's cached render.
func (c *RenderCache) Invalidate(blockID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, blockID)
}

// Count returns the number of cached blocks.
func (c *RenderCache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// RenderedAt returns when a block's cached list was produced.
func (c *RenderCache) RenderedAt(blockID string) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[blockID]
	if !ok {
		return time.Time{}, false
	}
	return e.renderedAt, true
}
