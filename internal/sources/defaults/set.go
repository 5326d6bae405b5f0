package defaults

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
)

// Set is the live, reloadable registry of locked-block default links.
// Blocks listed here get the locked editor variant; everything else is
// unlocked.
type Set struct {
	mu         sync.RWMutex
	blocks     map[string][]domain.LinkEntry
	lastReload time.Time
}

// NewSet creates an empty defaults set
func NewSet() *Set {
	return &Set{
		blocks: make(map[string][]domain.LinkEntry),
	}
}

// Replace swaps in a freshly loaded defaults mapping.
func (s *Set) Replace(blocks map[string][]domain.LinkEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blocks = blocks
	s.lastReload = time.Now()
}

// Lookup returns a copy of a block's default rows, if the block is locked.
func (s *Set) Lookup(blockID string) ([]domain.LinkEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, ok := s.blocks[blockID]
	if !ok {
		return nil, false
	}
	out := make([]domain.LinkEntry, len(rows))
	copy(out, rows)
	return out, true
}

// Count returns the number of locked blocks.
func (s *Set) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.blocks)
}

// LastReload returns the timestamp of the last successful replace.
func (s *Set) LastReload() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastReload
}
