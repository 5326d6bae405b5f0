package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
)

// ConfigStore is the persistence collaborator for block link lists.
// Set writes the new value for a block; Save publishes it (bumping the
// block's cache invalidation tag). The editor is the only writer.
type ConfigStore interface {
	Get(ctx context.Context, blockID string) ([]domain.LinkEntry, error)
	Set(ctx context.Context, blockID string, rows []domain.LinkEntry) error
	Save(ctx context.Context, blockID string) error
}

// State of an edit session.
type State int

const (
	// StateEditing accepts add/remove/submit.
	StateEditing State = iota
	// StateCommitted is terminal: the set was validated and persisted.
	StateCommitted
)

func (s State) String() string {
	if s == StateCommitted {
		return "committed"
	}
	return "editing"
}

// Variant selects the editor behavior for a block.
type Variant int

const (
	// VariantUnlocked: free-form rows, add/remove allowed.
	VariantUnlocked Variant = iota
	// VariantLocked: fixed row set seeded from defaults, titles immutable,
	// rows toggled via the enabled flag.
	VariantLocked
)

func (v Variant) String() string {
	if v == VariantLocked {
		return "locked"
	}
	return "unlocked"
}

// Action is a structural edit request from the form host.
type Action int

const (
	ActionAddRow Action = iota
	ActionRemoveRow
)

// ParseAction maps the wire name of an action to its variant.
func ParseAction(name string) (Action, error) {
	switch name {
	case "add_row":
		return ActionAddRow, nil
	case "remove_row":
		return ActionRemoveRow, nil
	default:
		return 0, fmt.Errorf("unknown action %q", name)
	}
}

var (
	// ErrSessionClosed is returned for operations on a committed session.
	ErrSessionClosed = errors.New("edit session already committed")
	// ErrLockedRows is returned for add/remove on a locked editor.
	ErrLockedRows = errors.New("locked blocks have a fixed row set")
)

// RowInput carries one row's submitted field values, keyed by position.
type RowInput struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Weight  int    `json:"weight"`
	Enabled bool   `json:"enabled"`
}

// Editor drives one edit session over a block's link rows: structural edits
// while Editing, a full-pass validation on submit, and a wholesale commit of
// the normalized set to the ConfigStore. It owns the session's rowCount and
// topWeight and is the lone authority to commit.
type Editor struct {
	blockID string
	variant Variant
	store   ConfigStore

	set       *domain.RowSet
	state     State
	rowCount  int
	topWeight int

	// lockedTitles holds the immutable titles for the locked variant,
	// indexed by row.
	lockedTitles []string
}

// New opens an unlocked edit session for a block, seeded from the persisted
// configuration or a single empty row when none exists.
func New(ctx context.Context, store ConfigStore, blockID string) (*Editor, error) {
	rows, err := store.Get(ctx, blockID)
	if err != nil {
		return nil, fmt.Errorf("failed to load block %s: %w", blockID, err)
	}

	if len(rows) == 0 {
		rows = []domain.LinkEntry{{Enabled: true}}
	}

	return &Editor{
		blockID:   blockID,
		variant:   VariantUnlocked,
		store:     store,
		set:       domain.FromPersisted(rows),
		state:     StateEditing,
		rowCount:  len(rows),
		topWeight: rows[len(rows)-1].Weight,
	}, nil
}

func (e *Editor) BlockID() string { return e.blockID }
func (e *Editor) Variant() Variant { return e.variant }
func (e *Editor) State() State    { return e.state }
func (e *Editor) RowCount() int   { return e.rowCount }
func (e *Editor) TopWeight() int  { return e.topWeight }

// Rows returns the rows currently shown in the editor.
func (e *Editor) Rows() []domain.LinkEntry {
	return e.set.Rows()
}

// Apply performs one structural edit and stays in Editing.
func (e *Editor) Apply(action Action) error {
	if e.state != StateEditing {
		return ErrSessionClosed
	}
	if e.variant == VariantLocked {
		return ErrLockedRows
	}

	switch action {
	case ActionAddRow:
		e.topWeight++
		e.set.Append(e.topWeight)
		e.rowCount++
	case ActionRemoveRow:
		// topWeight tracks the highest-index row, so it only moves when a
		// row actually came off (never below the single remaining row).
		if e.set.RemoveLast() {
			e.rowCount--
			e.topWeight--
		}
	default:
		return fmt.Errorf("unknown action %d", action)
	}

	return nil
}

// Submit validates the submitted field values as a whole set. Any violation
// returns the full error list and keeps the session in Editing; a clean set
// is normalized, committed to the store (replacing the prior value in full)
// and moves the session to Committed. The returned rows are the committed,
// normalized sequence.
func (e *Editor) Submit(ctx context.Context, values []RowInput) ([]domain.LinkEntry, domain.ValidationErrors, error) {
	if e.state != StateEditing {
		return nil, nil, ErrSessionClosed
	}

	rows := make([]domain.LinkEntry, e.rowCount)
	for i := range rows {
		var in RowInput
		if i < len(values) {
			in = values[i]
		}
		rows[i] = e.buildRow(i, in)
	}
	e.set = domain.FromPersisted(rows)

	if verrs := e.set.ValidateAll(); len(verrs) > 0 {
		return nil, verrs, nil
	}

	normalized := e.set.Normalize()

	if err := e.store.Set(ctx, e.blockID, normalized); err != nil {
		return nil, nil, fmt.Errorf("failed to store block %s: %w", e.blockID, err)
	}
	if err := e.store.Save(ctx, e.blockID); err != nil {
		return nil, nil, fmt.Errorf("failed to save block %s: %w", e.blockID, err)
	}

	e.state = StateCommitted
	return normalized, nil, nil
}

// buildRow turns one submitted input into a link entry per the variant rules.
func (e *Editor) buildRow(i int, in RowInput) domain.LinkEntry {
	if e.variant == VariantLocked {
		return domain.LinkEntry{
			Title:   e.lockedTitles[i],
			URL:     in.URL,
			Weight:  i,
			Enabled: in.Enabled,
		}
	}
	return domain.LinkEntry{
		Title:   in.Title,
		URL:     in.URL,
		Weight:  in.Weight,
		Enabled: true,
	}
}
