package domain

import "sort"

// RowSet holds the editable link rows for one edit session.
//
// It owns its LinkEntry sequence exclusively for the session's lifetime;
// callers get copies, never the backing slice.
type RowSet struct {
	rows []LinkEntry
}

// FromPersisted builds a RowSet from previously persisted rows.
func FromPersisted(rows []LinkEntry) *RowSet {
	copied := make([]LinkEntry, len(rows))
	copy(copied, rows)
	return &RowSet{rows: copied}
}

// Len returns the number of rows, including empty ones.
func (s *RowSet) Len() int {
	return len(s.rows)
}

// Rows returns a copy of the current rows in insertion order.
func (s *RowSet) Rows() []LinkEntry {
	out := make([]LinkEntry, len(s.rows))
	copy(out, s.rows)
	return out
}

// Append adds one empty row with the given weight.
func (s *RowSet) Append(defaultWeight int) {
	s.rows = append(s.rows, LinkEntry{Weight: defaultWeight, Enabled: true})
}

// RemoveLast drops the highest-index row. At least one row must stay
// editable, so a single-row set is left untouched and false is returned.
func (s *RowSet) RemoveLast() bool {
	if len(s.rows) <= 1 {
		return false
	}
	s.rows = s.rows[:len(s.rows)-1]
	return true
}

// ValidateAll applies the row acceptance rules to every row and aggregates
// all violations; it never stops at the first bad row.
//
// A row with an empty url produces no error and no link. A non-empty url
// needs a title; a titled, non-empty url must classify as storable. When no
// row would produce a link, a single set-level ErrEmptyList is reported.
func (s *RowSet) ValidateAll() ValidationErrors {
	var errs ValidationErrors
	linkRows := 0

	for i, row := range s.rows {
		if Absent(row.URL) {
			continue
		}
		linkRows++

		if Absent(row.Title) {
			errs = append(errs, RowError{
				Row:     i,
				Field:   FieldTitle,
				Kind:    ErrMissingTitle,
				Message: ErrMissingTitle.Message(),
			})
			continue
		}

		if Classify(row.URL) == KindInvalid {
			errs = append(errs, RowError{
				Row:     i,
				Field:   FieldURL,
				Kind:    ErrInvalidURL,
				Message: ErrInvalidURL.Message(),
			})
		}
	}

	if linkRows == 0 {
		errs = append(errs, RowError{
			Row:     SetLevelRow,
			Kind:    ErrEmptyList,
			Message: ErrEmptyList.Message(),
		})
	}

	return errs
}

// Normalize produces the canonical commit order: rows with empty urls are
// dropped and the rest are stably sorted by weight ascending, so equal
// weights keep their original relative order. Weights are not renumbered.
func (s *RowSet) Normalize() []LinkEntry {
	out := make([]LinkEntry, 0, len(s.rows))
	for _, row := range s.rows {
		if Absent(row.URL) {
			continue
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight < out[j].Weight
	})

	return out
}
