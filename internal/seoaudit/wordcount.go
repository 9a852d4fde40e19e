// Package seoaudit checks generated pages against on-page SEO quality rules.
package seoaudit

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CountWords returns the number of whitespace-separated words in the visible
// text of an HTML fragment. Script and style bodies are excluded.
func CountWords(html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, &AuditError{Message: "failed to parse page content", Cause: err}
	}
	doc.Find("script, style").Remove()
	return len(strings.Fields(doc.Text())), nil
}
