// Package indexing decides whether generated pages are exposed to search indexes.
package indexing

import (
	"fmt"

	"github.com/jonathan/marketpulse/internal/types"
)

// InvalidCountError indicates a negative child count was passed to Classify.
// Counts come straight from ingestion, so a negative value is a programming
// error upstream, not a thin page.
type InvalidCountError struct {
	ItemType types.ItemType
	Count    int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("classification error: negative count %d for item type %q", e.Count, e.ItemType)
}

// UnknownItemTypeError indicates the policy table has no threshold for the
// requested item type. A missing policy entry is a build bug and is fatal.
type UnknownItemTypeError struct {
	ItemType types.ItemType
}

func (e *UnknownItemTypeError) Error() string {
	return fmt.Sprintf("classification error: no thin-content threshold configured for item type %q", e.ItemType)
}
