// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDocument reports a converted document with neither a title
// slide nor any events. An eras-only document is invalid.
var ErrEmptyDocument = errors.New("timeline must have at least one event or a title slide")

// HeaderError reports a structural failure of the header row: either no
// header at all, or required columns missing from it. No rows are
// processed when this is returned.
type HeaderError struct {
	// Missing lists absent required columns. Empty means the header row
	// itself was empty or absent.
	Missing []string
}

func (e *HeaderError) Error() string {
	if len(e.Missing) == 0 {
		return "header row is empty or absent"
	}
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// RowError wraps a per-row failure with its 1-indexed row number (the
// header is row 1, so data rows start at 2). In fail-fast mode it is
// returned directly; in strict mode its string form joins the aggregate.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// AggregateError is the deferred strict-mode failure: all recorded row
// errors from a full pass, joined.
type AggregateError struct {
	Errors []string
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("validation failed with %d errors:\n%s",
		len(e.Errors), strings.Join(e.Errors, "\n"))
}
