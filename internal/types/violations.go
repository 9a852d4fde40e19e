//nolint:revive // types is a standard Go package name pattern
package types

// Violation represents a single page-quality failure found by the SEO audit.
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Page     string `json:"page,omitempty"` // Slug or URL of the offending page
}

// Violations represents a collection of audit failures for one page.
type Violations struct {
	Violations []Violation `json:"violations"`
}
