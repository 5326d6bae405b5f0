package editor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
)

// Session wraps one editor behind its own lock. Each add-row, remove-row or
// submit interaction is one synchronous step; the lock serializes a host
// that fires overlapping requests for the same session.
type Session struct {
	ID string

	mu         sync.Mutex
	editor     *Editor
	lastActive time.Time
}

// View is an immutable snapshot of a session for the form host.
type View struct {
	SessionID string             `json:"session_id"`
	BlockID   string             `json:"block_id"`
	Variant   string             `json:"variant"`
	State     string             `json:"state"`
	RowCount  int                `json:"row_count"`
	TopWeight int                `json:"top_weight"`
	Rows      []domain.LinkEntry `json:"rows"`
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

// View snapshots the session state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	return View{
		SessionID: s.ID,
		BlockID:   s.editor.BlockID(),
		Variant:   s.editor.Variant().String(),
		State:     s.editor.State().String(),
		RowCount:  s.editor.RowCount(),
		TopWeight: s.editor.TopWeight(),
		Rows:      s.editor.Rows(),
	}
}

// Apply performs one structural edit and returns the refreshed view.
func (s *Session) Apply(action Action) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.editor.Apply(action); err != nil {
		return View{}, err
	}

	return View{
		SessionID: s.ID,
		BlockID:   s.editor.BlockID(),
		Variant:   s.editor.Variant().String(),
		State:     s.editor.State().String(),
		RowCount:  s.editor.RowCount(),
		TopWeight: s.editor.TopWeight(),
		Rows:      s.editor.Rows(),
	}, nil
}

// Submit validates and, on a clean set, commits.
func (s *Session) Submit(ctx context.Context, values []RowInput) ([]domain.LinkEntry, domain.ValidationErrors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	return s.editor.Submit(ctx, values)
}

// Registry holds the in-progress edit sessions, keyed by UUID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewRegistry creates a session registry; sessions idle past ttl are
// reclaimable via SweepIdle.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Open registers a new session around the editor and returns it.
func (r *Registry) Open(ed *Editor) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		editor:     ed,
		lastActive: time.Now(),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s
}

// Get retrieves a session by id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	return s, ok
}

// Close removes a session (after a commit, or on host abandon).
func (r *Registry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// SweepIdle removes sessions whose last interaction is older than the
// registry TTL and returns how many were dropped.
func (r *Registry) SweepIdle(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastActive) > r.ttl
		s.mu.Unlock()

		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
