package pipeline

import "fmt"

// PageError wraps a per-page generation failure with the item it belongs to.
// A PageError skips that page; the rest of the build keeps going.
type PageError struct {
	ItemID string
	Cause  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page generation failed for item %q: %v", e.ItemID, e.Cause)
}

func (e *PageError) Unwrap() error {
	return e.Cause
}
