package defaults

import (
	"github.com/MrSnakeDoc/linkdeck/internal/domain"
)

// Mapper converts parsed default links to domain.LinkEntry rows
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapBlocks converts a defaults Config to per-block LinkEntry sequences.
// Rows missing a title or url are skipped; blocks left with no usable rows
// are dropped so they fall back to the unlocked editor.
func (m *Mapper) MapBlocks(config Config) map[string][]domain.LinkEntry {
	blocks := make(map[string][]domain.LinkEntry, len(config))

	for blockID, defs := range config {
		rows := make([]domain.LinkEntry, 0, len(defs))
		for _, def := range defs {
			if domain.Absent(def.Title) || domain.Absent(def.URL) {
				continue
			}
			rows = append(rows, domain.LinkEntry{
				Title:   def.Title,
				URL:     def.URL,
				Weight:  len(rows),
				Enabled: true,
			})
		}
		if len(rows) > 0 {
			blocks[blockID] = rows
		}
	}

	return blocks
}
