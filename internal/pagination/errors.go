// Package pagination computes canonical and sibling-navigation URLs for list pages.
package pagination

import "fmt"

// OutOfRangeError indicates a page index outside [1, totalPages].
type OutOfRangeError struct {
	PageIndex  int
	TotalPages int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("pagination error: page index %d out of range [1, %d]", e.PageIndex, e.TotalPages)
}
