package indexing

import "github.com/jonathan/marketpulse/internal/types"

// Robots directives emitted into <meta name="robots"> tags. Thin pages stay
// crawlable ("follow") so link equity keeps flowing; only indexing is
// suppressed.
const (
	DirectiveIndex   = "index, follow"
	DirectiveNoindex = "noindex, follow"
)

// Policy maps an item type to the minimum child-record count a page needs to
// be indexable. It is plain configuration: callers inject it per run so tests
// and future threshold changes never touch the algorithm.
type Policy map[types.ItemType]int

// DefaultPolicy returns the current production thresholds.
func DefaultPolicy() Policy {
	return Policy{
		types.ItemTypeLocationLanding: 5,
		types.ItemTypeSkillLanding:    10,
		types.ItemTypeCompany:         3,
		types.ItemTypeSalaryPage:      10,
		types.ItemTypeTagPage:         3,
	}
}

// Classification is the classifier output: the robots directive plus the
// threshold that produced it, kept for build logs and audit output.
type Classification struct {
	Directive string `json:"directive"`
	Threshold int    `json:"threshold"`
}

// Indexable reports whether the page will be exposed to search indexes.
func (c Classification) Indexable() bool {
	return c.Directive == DirectiveIndex
}

// Classify returns the robots directive for a page of the given type backed
// by count child records. count must be >= 0; itemType must have a policy
// entry.
func Classify(policy Policy, itemType types.ItemType, count int) (Classification, error) {
	if count < 0 {
		return Classification{}, &InvalidCountError{ItemType: itemType, Count: count}
	}

	threshold, ok := policy[itemType]
	if !ok {
		return Classification{}, &UnknownItemTypeError{ItemType: itemType}
	}

	directive := DirectiveIndex
	if count < threshold {
		directive = DirectiveNoindex
	}

	return Classification{Directive: directive, Threshold: threshold}, nil
}

// ClassifyItem classifies an item page from its RelatedChildCount.
func ClassifyItem(policy Policy, item *types.Item) (Classification, error) {
	return Classify(policy, item.Type, item.RelatedChildCount)
}
