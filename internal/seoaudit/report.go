package seoaudit

import (
	"fmt"
	"strings"

	"github.com/jonathan/marketpulse/internal/types"
)

// Report aggregates the violations found across a full catalog audit.
type Report struct {
	PagesAudited int
	Violations   []types.Violation
}

// HasErrors reports whether any violation carries error severity.
func (r *Report) HasErrors() bool {
	for _, v := range r.Violations {
		if v.Severity == "error" {
			return true
		}
	}
	return false
}

// Summary returns violation counts keyed by violation type.
func (r *Report) Summary() map[string]int {
	counts := make(map[string]int)
	for _, v := range r.Violations {
		counts[v.Type]++
	}
	return counts
}

// AuditAll audits every item and adds the cross-page checks a single item
// cannot see, currently duplicate titles. Title comparison is
// case-insensitive since search engines treat "ML Jobs" and "ml jobs" as the
// same result.
func AuditAll(items []types.Item, limits Limits) (*Report, error) {
	report := &Report{PagesAudited: len(items)}

	titleSeen := make(map[string]string, len(items)) // folded title -> first item ID
	for i := range items {
		item := &items[i]

		violations, err := AuditItem(item, limits)
		if err != nil {
			return nil, err
		}
		report.Violations = append(report.Violations, violations.Violations...)

		folded := strings.ToLower(strings.TrimSpace(item.Title))
		if firstID, ok := titleSeen[folded]; ok {
			page := item.URLPath()
			if page == "" {
				page = item.ID
			}
			report.Violations = append(report.Violations, types.Violation{
				Type:     ViolationDuplicateTitle,
				Severity: "error",
				Details:  fmt.Sprintf("title %q duplicates item %s", item.Title, firstID),
				Page:     page,
			})
		} else {
			titleSeen[folded] = item.ID
		}
	}

	return report, nil
}
