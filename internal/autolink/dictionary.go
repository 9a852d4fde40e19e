package autolink

import (
	"sort"
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonathan/marketpulse/internal/types"
)

// DefaultMaxLinks is the insertion budget used when the caller has no
// site-specific override.
const DefaultMaxLinks = 5

// term is a compiled LinkTerm. Matching works on per-rune lowercased slices
// so offsets never drift between the original text and its folded form.
type term struct {
	surface    string
	lowerRunes []rune
	targetURL  string
	priority   int
	index      int // position in the caller's list, last tie-break
}

// Dictionary is a compiled, reusable set of linkable terms. Building it once
// per run amortizes the Aho-Corasick automaton used to prescreen content; it
// is read-only after New and safe for concurrent Rewrite calls.
type Dictionary struct {
	terms   []term
	ordered []int // term indexes sorted by precedence: length desc, priority desc, index asc
	targets map[string]bool

	matcher      *ahocorasick.Matcher
	patternTerms [][]int // automaton pattern id -> term indexes sharing that folded surface
}

// NewDictionary validates and compiles the term list. An empty list is valid
// and produces a dictionary whose Rewrite is a no-op.
func NewDictionary(linkTerms []types.LinkTerm) (*Dictionary, error) {
	d := &Dictionary{
		terms:   make([]term, 0, len(linkTerms)),
		targets: make(map[string]bool, len(linkTerms)),
	}

	patterns := make([]string, 0, len(linkTerms))
	patternID := make(map[string]int, len(linkTerms))
	for i, lt := range linkTerms {
		if err := lt.Validate(); err != nil {
			return nil, &InvalidTermError{Surface: lt.Surface, Cause: err}
		}
		d.terms = append(d.terms, term{
			surface:    lt.Surface,
			lowerRunes: foldRunes(lt.Surface),
			targetURL:  lt.TargetURL,
			priority:   lt.Priority,
			index:      i,
		})
		d.targets[lt.TargetURL] = true

		// Duplicate surfaces (aliases with different targets) share one
		// automaton pattern.
		folded := strings.ToLower(lt.Surface)
		id, ok := patternID[folded]
		if !ok {
			id = len(patterns)
			patternID[folded] = id
			patterns = append(patterns, folded)
			d.patternTerms = append(d.patternTerms, nil)
		}
		d.patternTerms[id] = append(d.patternTerms[id], i)
	}

	d.ordered = make([]int, len(d.terms))
	for i := range d.ordered {
		d.ordered[i] = i
	}
	sort.SliceStable(d.ordered, func(a, b int) bool {
		ta, tb := d.terms[d.ordered[a]], d.terms[d.ordered[b]]
		if len(ta.lowerRunes) != len(tb.lowerRunes) {
			return len(ta.lowerRunes) > len(tb.lowerRunes)
		}
		if ta.priority != tb.priority {
			return ta.priority > tb.priority
		}
		return ta.index < tb.index
	})

	if len(patterns) > 0 {
		d.matcher = ahocorasick.NewStringMatcher(patterns)
	}

	return d, nil
}

// Len returns the number of compiled terms.
func (d *Dictionary) Len() int {
	return len(d.terms)
}

// prescreen runs the automaton over the folded document text and returns the
// set of term indexes whose surface occurs anywhere in it. This narrows the
// positional scan to terms actually present; match semantics are unchanged.
func (d *Dictionary) prescreen(foldedText string) map[int]bool {
	if d.matcher == nil {
		return nil
	}
	hits := d.matcher.Match([]byte(foldedText))
	present := make(map[int]bool, len(hits))
	for _, hit := range hits {
		for _, termIndex := range d.patternTerms[hit] {
			present[termIndex] = true
		}
	}
	return present
}

// foldRunes lowercases per rune, preserving rune count.
func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// isWordRune reports whether r belongs to a word for boundary checks.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
