// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/marketpulse/internal/relevance"
	"github.com/jonathan/marketpulse/internal/seoaudit"
	"github.com/jonathan/marketpulse/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRelatedItems outputs the scored related items picked for one page.
func (p *Printer) PrintRelatedItems(pageTitle string, related []relevance.ScoredItem) {
	if len(related) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Page: %s\n\n", pageTitle))

	count := min(len(related), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := related[i]
		title := r.Item.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", r.Score))
	}

	if len(related) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more items", len(related)-maxItemsToShow))
	}

	p.printBox("RELATED ITEMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClassificationSummary outputs how many pages got each robots directive.
func (p *Printer) PrintClassificationSummary(directiveCounts map[string]int) {
	if len(directiveCounts) == 0 {
		return
	}

	directives := make([]string, 0, len(directiveCounts))
	for d := range directiveCounts {
		directives = append(directives, d)
	}
	sort.Strings(directives)

	var sb strings.Builder
	for _, d := range directives {
		sb.WriteString(fmt.Sprintf("%-20s %d pages\n", d, directiveCounts[d]))
	}

	p.printBox("INDEXING DIRECTIVES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAuditReport outputs the catalog-wide SEO audit summary.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAuditReport(report *seoaudit.Report) {
	if report == nil {
		return
	}
	if len(report.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ %d PAGES AUDITED, NO VIOLATIONS", report.PagesAudited))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Audited %d pages, found %d violations:\n\n",
		report.PagesAudited, len(report.Violations)))

	summary := report.Summary()
	vtypes := make([]string, 0, len(summary))
	for vt := range summary {
		vtypes = append(vtypes, vt)
	}
	sort.Strings(vtypes)
	for _, vt := range vtypes {
		sb.WriteString(fmt.Sprintf("  %-24s %d\n", vt, summary[vt]))
	}

	p.printBox("SEO AUDIT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs the quality violations found on one page.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		details := v.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", v.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PAGE QUALITY VIOLATIONS", sb.String())
}
