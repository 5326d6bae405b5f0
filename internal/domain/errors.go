package domain

import (
	"fmt"
	"strings"
)

// Field names used to attach errors to specific inputs.
const (
	FieldTitle = "title"
	FieldURL   = "url"
)

// SetLevelRow marks an error that belongs to the whole row set, not one row.
const SetLevelRow = -1

// ErrorKind is the validation error taxonomy.
type ErrorKind int

const (
	// ErrInvalidURL: the url fails classification.
	ErrInvalidURL ErrorKind = iota
	// ErrMissingTitle: a non-empty url paired with an empty title.
	ErrMissingTitle
	// ErrEmptyList: the set holds no row that would produce a link.
	ErrEmptyList
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidURL:
		return "invalid_url"
	case ErrMissingTitle:
		return "missing_title"
	case ErrEmptyList:
		return "empty_list"
	default:
		return "unknown"
	}
}

// MarshalText makes ErrorKind render as its name in JSON payloads.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Message returns the user-facing text for the error kind.
func (k ErrorKind) Message() string {
	switch k {
	case ErrInvalidURL:
		return "Please enter a valid url with https://, a valid internal path starting with a forward slash such as /path, or <front> to link to the homepage."
	case ErrMissingTitle:
		return "Please enter a title for the url."
	case ErrEmptyList:
		return "Please provide one or more links."
	default:
		return "Invalid value."
	}
}

// RowError is one validation failure attached to a row and field.
// Set-level errors use Row == SetLevelRow and an empty Field.
type RowError struct {
	Row     int       `json:"row"`
	Field   string    `json:"field,omitempty"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// ValidationErrors aggregates every failure found in one full pass.
type ValidationErrors []RowError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	parts := make([]string, 0, len(e))
	for _, re := range e {
		if re.Row == SetLevelRow {
			parts = append(parts, re.Kind.String())
			continue
		}
		parts = append(parts, fmt.Sprintf("row %d %s: %s", re.Row, re.Field, re.Kind))
	}
	return strings.Join(parts, "; ")
}
