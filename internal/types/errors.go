package types

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR KINDS
// =============================================================================
// Every fatal condition of a run wraps one of these sentinels so callers can
// tell them apart with errors.Is.

var (
	// ErrInvalidRow reports a structurally invalid row (negative row number,
	// empty line, wrong field count) or an accepted row without a domain.
	ErrInvalidRow = errors.New("invalid row")

	// ErrMalformedInteger reports a non-empty integer field that does not parse.
	ErrMalformedInteger = errors.New("malformed integer")

	// ErrMalformedGUID reports a non-empty GUID field that does not parse.
	ErrMalformedGUID = errors.New("malformed guid")

	// ErrMissingMapping reports a mapping file that is absent, unparseable or null.
	ErrMissingMapping = errors.New("missing mapping")
)

// RowError attaches the row number to a fatal error raised while
// processing that row.
type RowError struct {
	Row int
	Err error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row #%d: %v", e.Row, e.Err)
}

// Unwrap returns the underlying error.
func (e *RowError) Unwrap() error {
	return e.Err
}
