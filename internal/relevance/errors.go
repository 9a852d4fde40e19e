// Package relevance ranks catalog items by relatedness for internal-link blocks.
package relevance

import "fmt"

// InvalidInputError represents a caller error in the relevance contract.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("relevance error: %s", e.Message)
}
