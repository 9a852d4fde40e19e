package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/marketpulse/internal/relevance"
	"github.com/jonathan/marketpulse/internal/seoaudit"
	"github.com/jonathan/marketpulse/internal/types"
)

func TestPrintRelatedItems(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	related := []relevance.ScoredItem{
		{Item: types.Item{ID: "job-2", Type: types.ItemTypeJob, Title: "ML Engineer"}, Score: 95},
		{Item: types.Item{ID: "job-3", Type: types.ItemTypeJob, Title: "Data Scientist"}, Score: 40},
	}

	p.PrintRelatedItems("Senior ML Engineer", related)
	output := buf.String()

	assert.Contains(t, output, "RELATED ITEMS")
	assert.Contains(t, output, "Senior ML Engineer")
	assert.Contains(t, output, "ML Engineer")
	assert.Contains(t, output, "Score: 95")
	assert.Contains(t, output, "Data Scientist")
}

func TestPrintRelatedItems_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRelatedItems("Some Page", nil)

	assert.Empty(t, buf.String())
}

func TestPrintRelatedItems_TruncatesLongList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	related := make([]relevance.ScoredItem, 8)
	for i := range related {
		related[i] = relevance.ScoredItem{
			Item:  types.Item{ID: "job", Type: types.ItemTypeJob, Title: "Role"},
			Score: 10,
		}
	}

	p.PrintRelatedItems("Page", related)

	assert.Contains(t, buf.String(), "... and 3 more items")
}

func TestPrintClassificationSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassificationSummary(map[string]int{
		"index, follow":   42,
		"noindex, follow": 7,
	})
	output := buf.String()

	assert.Contains(t, output, "INDEXING DIRECTIVES")
	assert.Contains(t, output, "index, follow")
	assert.Contains(t, output, "42 pages")
	assert.Contains(t, output, "7 pages")
}

func TestPrintClassificationSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassificationSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAuditReport_Clean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAuditReport(&seoaudit.Report{PagesAudited: 12})

	assert.Contains(t, buf.String(), "12 PAGES AUDITED, NO VIOLATIONS")
}

func TestPrintAuditReport_WithViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &seoaudit.Report{
		PagesAudited: 3,
		Violations: []types.Violation{
			{Type: seoaudit.ViolationThinContent, Severity: "warning"},
			{Type: seoaudit.ViolationThinContent, Severity: "warning"},
			{Type: seoaudit.ViolationMissingSlug, Severity: "error"},
		},
	}

	p.PrintAuditReport(report)
	output := buf.String()

	assert.Contains(t, output, "SEO AUDIT")
	assert.Contains(t, output, "found 3 violations")
	assert.Contains(t, output, seoaudit.ViolationThinContent)
	assert.Contains(t, output, seoaudit.ViolationMissingSlug)
}

func TestPrintViolations_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(&types.Violations{})

	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintViolations_TruncatesLongDetails(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(&types.Violations{Violations: []types.Violation{
		{
			Type:     "title_length",
			Severity: "warning",
			Details:  strings.Repeat("very long details ", 10),
		},
	}})
	output := buf.String()

	assert.Contains(t, output, "PAGE QUALITY VIOLATIONS")
	assert.Contains(t, output, "title_length")
	assert.Contains(t, output, "...")
}
