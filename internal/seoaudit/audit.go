package seoaudit

import (
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/marketpulse/internal/types"
)

// Violation types reported by the audit.
const (
	ViolationThinContent       = "thin_content"
	ViolationTitleLength       = "title_length"
	ViolationDescriptionLength = "description_length"
	ViolationMissingSlug       = "missing_slug"
	ViolationDuplicateTitle    = "duplicate_title"
)

// Limits holds the thresholds a page is audited against.
type Limits struct {
	MinWords       int
	TitleMin       int
	TitleMax       int
	DescriptionMin int
	DescriptionMax int
}

// DefaultLimits returns the thresholds used in production builds. Title and
// description bounds follow the lengths search engines display without
// truncation.
func DefaultLimits() Limits {
	return Limits{
		MinWords:       150,
		TitleMin:       20,
		TitleMax:       70,
		DescriptionMin: 50,
		DescriptionMax: 160,
	}
}

// AuditItem checks a single item against the limits and returns the
// violations found. A page with no violations returns an empty collection,
// not nil. Duplicate-title detection needs the whole catalog and lives in
// AuditAll.
func AuditItem(item *types.Item, limits Limits) (*types.Violations, error) {
	if item == nil {
		return nil, &AuditError{Message: "nil item"}
	}

	page := item.URLPath()
	if page == "" {
		page = item.ID
	}
	var violations []types.Violation

	if item.Slug == "" {
		violations = append(violations, types.Violation{
			Type:     ViolationMissingSlug,
			Severity: "error",
			Details:  fmt.Sprintf("item %s has no slug, page cannot be linked", item.ID),
			Page:     page,
		})
	}

	titleLen := utf8.RuneCountInString(item.Title)
	if titleLen < limits.TitleMin || titleLen > limits.TitleMax {
		violations = append(violations, types.Violation{
			Type:     ViolationTitleLength,
			Severity: "warning",
			Details:  fmt.Sprintf("title is %d characters, want %d-%d", titleLen, limits.TitleMin, limits.TitleMax),
			Page:     page,
		})
	}

	descLen := utf8.RuneCountInString(item.Description)
	if descLen < limits.DescriptionMin || descLen > limits.DescriptionMax {
		violations = append(violations, types.Violation{
			Type:     ViolationDescriptionLength,
			Severity: "warning",
			Details:  fmt.Sprintf("meta description is %d characters, want %d-%d", descLen, limits.DescriptionMin, limits.DescriptionMax),
			Page:     page,
		})
	}

	words, err := CountWords(item.Content)
	if err != nil {
		return nil, err
	}
	if words < limits.MinWords {
		violations = append(violations, types.Violation{
			Type:     ViolationThinContent,
			Severity: "warning",
			Details:  fmt.Sprintf("page body has %d words, want at least %d", words, limits.MinWords),
			Page:     page,
		})
	}

	return &types.Violations{Violations: violations}, nil
}
