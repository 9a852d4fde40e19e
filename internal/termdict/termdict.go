// Package termdict derives the auto-linker term dictionary from the catalog.
package termdict

import (
	"strings"

	"github.com/jonathan/marketpulse/internal/catalog"
	"github.com/jonathan/marketpulse/internal/types"
)

// Default priorities per source page family. Tool mentions are the strongest
// internal-link signal, then salary roles, then company names.
const (
	PriorityTool    = 30
	PrioritySalary  = 20
	PriorityCompany = 10
)

// BuildTerms assembles one LinkTerm per linkable catalog item: tool pages,
// salary-role pages and company pages. Tool tags become alias surfaces for
// the same target (e.g. "wandb" for Weights & Biases). When two items claim
// the same surface, the higher-priority entry wins; remaining ties keep the
// first in catalog order, so output is deterministic.
func BuildTerms(cat *catalog.Catalog) []types.LinkTerm {
	terms := make([]types.LinkTerm, 0, cat.Len())
	claimed := make(map[string]int, cat.Len()) // folded surface -> index into terms

	add := func(surface, targetURL string, priority int) {
		surface = strings.TrimSpace(surface)
		if surface == "" || targetURL == "" {
			return
		}
		key := strings.ToLower(surface)
		if i, ok := claimed[key]; ok {
			if priority > terms[i].Priority {
				terms[i] = types.LinkTerm{Surface: surface, TargetURL: targetURL, Priority: priority}
			}
			return
		}
		claimed[key] = len(terms)
		terms = append(terms, types.LinkTerm{Surface: surface, TargetURL: targetURL, Priority: priority})
	}

	for _, item := range cat.ItemsOfType(types.ItemTypeTool) {
		url := item.URLPath()
		add(item.Title, url, PriorityTool)
		for _, alias := range item.Tags {
			add(alias, url, PriorityTool)
		}
	}

	for _, item := range cat.ItemsOfType(types.ItemTypeSalaryPage) {
		add(item.Title, item.URLPath(), PrioritySalary)
	}

	for _, item := range cat.ItemsOfType(types.ItemTypeCompany) {
		add(item.Title, item.URLPath(), PriorityCompany)
	}

	return terms
}
