package pagination

import (
	"fmt"
	"strings"
)

// PageLinks holds the canonical URL and sibling navigation for one list page.
// Prev and Next are empty when the page has no sibling in that direction;
// page 1 is always referenced as the bare base path, never "/page/1/".
type PageLinks struct {
	Canonical string `json:"canonical"`
	Prev      string `json:"prev,omitempty"`
	Next      string `json:"next,omitempty"`
}

// PageURL returns the site path for one page of a paginated collection.
func PageURL(basePath string, pageIndex int) string {
	if pageIndex <= 1 {
		return basePath
	}
	return fmt.Sprintf("%s/page/%d/", strings.TrimSuffix(basePath, "/"), pageIndex)
}

// Canonicalize computes canonical/prev/next links for the given 1-based page
// index. pageSize is carried for build reporting only; it does not affect the
// URLs. Pure and stateless.
func Canonicalize(basePath string, pageIndex, totalPages, pageSize int) (PageLinks, error) {
	_ = pageSize

	if pageIndex < 1 || pageIndex > totalPages {
		return PageLinks{}, &OutOfRangeError{PageIndex: pageIndex, TotalPages: totalPages}
	}

	links := PageLinks{Canonical: PageURL(basePath, pageIndex)}
	if pageIndex > 1 {
		links.Prev = PageURL(basePath, pageIndex-1)
	}
	if pageIndex < totalPages {
		links.Next = PageURL(basePath, pageIndex+1)
	}

	return links, nil
}
