// Package catalog provides the read-only item catalog consumed by the generation core.
package catalog

import "fmt"

// LoadError represents a failure loading or decoding a catalog source.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// DuplicateIDError indicates two catalog items share the same ID.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("catalog load error: duplicate item id %q", e.ID)
}

// InvalidItemError wraps a per-item validation failure with the item's position.
type InvalidItemError struct {
	Index int
	ID    string
	Cause error
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("catalog load error: item %d (id %q) invalid: %v", e.Index, e.ID, e.Cause)
}

func (e *InvalidItemError) Unwrap() error {
	return e.Cause
}
