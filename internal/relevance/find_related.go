package relevance

import (
	"sort"
	"time"

	"github.com/jonathan/marketpulse/internal/types"
)

// ScoredItem pairs a related item with its relatedness score.
type ScoredItem struct {
	Item  types.Item `json:"item"`
	Score int        `json:"score"`
}

// FindRelated scores every same-type candidate in the pool against the target
// and returns the top numRelated by score. Candidates with score 0 are never
// returned; the result may therefore be shorter than numRelated.
//
// Ordering is fully deterministic: score descending, then publish date
// descending (missing dates sort oldest), then ID ascending. The pool is a
// full scan per call; catalogs in the low tens of thousands need no index.
func FindRelated(target *types.Item, pool []types.Item, numRelated int) ([]ScoredItem, error) {
	if target == nil {
		return nil, &InvalidInputError{Message: "target item is nil"}
	}
	if numRelated < 0 {
		return nil, &InvalidInputError{Message: "numRelated must be >= 0"}
	}
	if numRelated == 0 {
		return []ScoredItem{}, nil
	}

	scored := make([]ScoredItem, 0, len(pool))
	for i := range pool {
		candidate := &pool[i]
		if candidate.ID == target.ID || candidate.Type != target.Type {
			continue
		}
		if score := scoreCandidate(target, candidate); score > 0 {
			scored = append(scored, ScoredItem{Item: *candidate, Score: score})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		ti, tj := publishTime(&scored[i].Item), publishTime(&scored[j].Item)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return scored[i].Item.ID < scored[j].Item.ID
	})

	if len(scored) > numRelated {
		scored = scored[:numRelated]
	}

	return scored, nil
}

// publishTime returns the item's publish date, or the zero time when unset so
// undated items sort behind dated ones.
func publishTime(item *types.Item) time.Time {
	if item.PublishDate == nil {
		return time.Time{}
	}
	return *item.PublishDate
}
