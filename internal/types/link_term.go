//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// LinkTerm maps a literal surface form to an internal link target.
// Matching against content is case-insensitive; Priority breaks ties when
// two terms of equal length match at the same text position (higher wins).
type LinkTerm struct {
	Surface   string `json:"surface" validate:"required,min=1"`
	TargetURL string `json:"target_url" validate:"required,min=1"`
	Priority  int    `json:"priority,omitempty"`
}

// Validate validates the LinkTerm using the validator.
func (t *LinkTerm) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}
