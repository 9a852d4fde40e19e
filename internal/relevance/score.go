package relevance

import (
	"strings"

	"github.com/jonathan/marketpulse/internal/types"
)

// Scoring weights for the additive relatedness score. A candidate scoring 0
// has no detected relation and is never returned.
const (
	sameCompanyPoints   = 50
	sameCategoryPoints  = 30
	skillOverlapPoints  = 10
	maxSkillPoints      = 40 // At most 4 counted overlaps, so heavy tagging cannot dominate
	sameLocationPoints  = 15
	salaryOverlapPoints = 5
)

// scoreCandidate computes the additive relatedness score between the target
// and a same-type candidate.
func scoreCandidate(target, candidate *types.Item) int {
	score := 0

	if target.CompanyRef != "" && candidate.CompanyRef == target.CompanyRef {
		score += sameCompanyPoints
	}

	if target.Category != "" && candidate.Category == target.Category {
		score += sameCategoryPoints
	}

	overlap := skillOverlapCount(target, candidate) * skillOverlapPoints
	if overlap > maxSkillPoints {
		overlap = maxSkillPoints
	}
	score += overlap

	if target.Location != "" && candidate.Location == target.Location {
		score += sameLocationPoints
	}

	if target.SalaryBand != nil && candidate.SalaryBand != nil &&
		target.SalaryBand.Overlaps(*candidate.SalaryBand) {
		score += salaryOverlapPoints
	}

	return score
}

// skillOverlapCount counts distinct labels shared between the two items.
// Skills and tags form one label set; comparison is case-insensitive.
func skillOverlapCount(target, candidate *types.Item) int {
	targetLabels := labelSet(target)
	if len(targetLabels) == 0 {
		return 0
	}

	count := 0
	seen := make(map[string]bool)
	countLabel := func(label string) {
		normalized := normalizeLabel(label)
		if normalized == "" || seen[normalized] {
			return
		}
		seen[normalized] = true
		if targetLabels[normalized] {
			count++
		}
	}
	for _, label := range candidate.Skills {
		countLabel(label)
	}
	for _, label := range candidate.Tags {
		countLabel(label)
	}

	return count
}

func labelSet(item *types.Item) map[string]bool {
	labels := make(map[string]bool, len(item.Skills)+len(item.Tags))
	for _, label := range item.Skills {
		if normalized := normalizeLabel(label); normalized != "" {
			labels[normalized] = true
		}
	}
	for _, label := range item.Tags {
		if normalized := normalizeLabel(label); normalized != "" {
			labels[normalized] = true
		}
	}
	return labels
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
