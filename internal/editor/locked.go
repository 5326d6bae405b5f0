package editor

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
)

// NewLocked opens a locked edit session for a block with a fixed default
// link set. Rows cannot be added or removed; titles always come from the
// defaults, urls from the persisted configuration when present (defaults
// otherwise), and the enabled flag from the persisted configuration
// (defaults to on). Disabled rows are committed along with the rest so the
// toggle stays reversible.
func NewLocked(ctx context.Context, store ConfigStore, blockID string, defaults []domain.LinkEntry) (*Editor, error) {
	if len(defaults) == 0 {
		return nil, fmt.Errorf("locked block %s has no default links", blockID)
	}

	persisted, err := store.Get(ctx, blockID)
	if err != nil {
		return nil, fmt.Errorf("failed to load block %s: %w", blockID, err)
	}

	rows := make([]domain.LinkEntry, len(defaults))
	titles := make([]string, len(defaults))

	for i, def := range defaults {
		titles[i] = def.Title

		row := domain.LinkEntry{
			Title:   def.Title,
			URL:     def.URL,
			Weight:  i,
			Enabled: true,
		}
		if i < len(persisted) {
			if !domain.Absent(persisted[i].URL) {
				row.URL = persisted[i].URL
			}
			row.Enabled = persisted[i].Enabled
		}
		rows[i] = row
	}

	return &Editor{
		blockID:      blockID,
		variant:      VariantLocked,
		store:        store,
		set:          domain.FromPersisted(rows),
		state:        StateEditing,
		rowCount:     len(rows),
		topWeight:    rows[len(rows)-1].Weight,
		lockedTitles: titles,
	}, nil
}
