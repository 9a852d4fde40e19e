package autolink

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jonathan/marketpulse/internal/types"
)

// linkState tracks one Rewrite call's progress across the document.
type linkState struct {
	budget          int
	inserted        int
	present         map[int]bool    // prescreened term indexes, nil disables the filter
	excluded        map[string]bool // target URLs that must never be linked
	consumedSurface map[string]bool // folded surfaces already linked (or found in existing anchors)
	consumedURL     map[string]bool // target URLs already linked to
}

// Rewrite compiles terms and rewrites content in one shot. Callers linking
// many pages against the same dictionary should build it once with
// NewDictionary and use the method instead.
func Rewrite(content string, terms []types.LinkTerm, excludeURLs []string, maxLinks int) (string, error) {
	dict, err := NewDictionary(terms)
	if err != nil {
		return "", err
	}
	return dict.Rewrite(content, excludeURLs, maxLinks)
}

// Rewrite inserts anchor tags for dictionary terms found in content.
//
// Matching is case-insensitive and markup-aware: only text nodes are scanned,
// never attribute values or the inside of existing anchors. Each distinct
// surface form links at most once, the longest surface wins at any position,
// and insertions stop once maxLinks is spent in document order. Existing
// anchors pointing at dictionary targets count against the budget, which
// makes a second pass over the output a no-op.
func (d *Dictionary) Rewrite(content string, excludeURLs []string, maxLinks int) (string, error) {
	out, _, err := d.RewriteCounted(content, excludeURLs, maxLinks)
	return out, err
}

// RewriteCounted is Rewrite plus the number of anchors inserted, for build
// reporting.
func (d *Dictionary) RewriteCounted(content string, excludeURLs []string, maxLinks int) (string, int, error) {
	if len(d.terms) == 0 || strings.TrimSpace(content) == "" {
		return content, 0, nil
	}

	if err := checkWellFormed(content); err != nil {
		return "", 0, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", 0, &MalformedContentError{Message: "failed to parse content", Cause: err}
	}

	st := &linkState{
		budget:          maxLinks,
		excluded:        make(map[string]bool, len(excludeURLs)),
		consumedSurface: make(map[string]bool),
		consumedURL:     make(map[string]bool),
	}
	if st.budget < 0 {
		st.budget = 0
	}
	for _, u := range excludeURLs {
		st.excluded[u] = true
	}

	d.prescanAnchors(doc, st)

	body := doc.Find("body")
	if len(body.Nodes) == 0 {
		return content, 0, nil
	}

	var textNodes []*html.Node
	for _, n := range body.Nodes {
		collectTextNodes(n, &textNodes)
	}
	if len(textNodes) == 0 {
		return content, 0, nil
	}

	// One automaton pass over the flattened text narrows the per-position
	// scan to terms that occur at all.
	var flat strings.Builder
	for _, n := range textNodes {
		flat.WriteString(strings.ToLower(n.Data))
		flat.WriteByte(' ')
	}
	st.present = d.prescreen(flat.String())
	if len(st.present) == 0 {
		return content, 0, nil
	}

	for _, n := range textNodes {
		if st.budget <= 0 {
			break
		}
		d.processTextNode(n, st)
	}

	if st.inserted == 0 {
		return content, 0, nil
	}

	out, err := body.Html()
	if err != nil {
		return "", 0, &MalformedContentError{Message: "failed to serialize content", Cause: err}
	}
	return out, st.inserted, nil
}

// prescanAnchors inspects pre-existing links. Anchors already pointing at a
// dictionary target consume budget, their URL, and any of their own surfaces
// visible in the anchor text, so repeated passes never re-link them. Anchors
// pointing elsewhere consume nothing: a term mentioned inside a foreign link
// still gets linked at its first plain-text occurrence.
func (d *Dictionary) prescanAnchors(doc *goquery.Document, st *linkState) {
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !d.targets[href] {
			return
		}
		if !st.consumedURL[href] {
			st.consumedURL[href] = true
			if st.budget > 0 {
				st.budget--
			}
		}

		anchorRunes := foldRunes(s.Text())
		for i := range d.terms {
			t := &d.terms[i]
			if t.targetURL != href {
				continue
			}
			key := string(t.lowerRunes)
			if !st.consumedSurface[key] && containsFolded(anchorRunes, t) {
				st.consumedSurface[key] = true
			}
		}
	})
}

// processTextNode scans one text node left to right, splitting it around each
// match into text and anchor nodes.
func (d *Dictionary) processTextNode(n *html.Node, st *linkState) {
	textRunes := []rune(n.Data)
	folded := foldRunes(n.Data)

	var pieces []*html.Node
	last := 0
	i := 0
	for i < len(folded) {
		if st.budget <= 0 {
			break
		}
		t := d.matchAt(folded, i, st)
		if t == nil {
			i++
			continue
		}

		end := i + len(t.lowerRunes)
		if last < i {
			pieces = append(pieces, textNode(string(textRunes[last:i])))
		}
		// The anchor label keeps the original casing of the matched text.
		pieces = append(pieces, anchorNode(t.targetURL, string(textRunes[i:end])))

		st.budget--
		st.inserted++
		st.consumedSurface[string(t.lowerRunes)] = true
		st.consumedURL[t.targetURL] = true

		i = end
		last = end
	}

	if len(pieces) == 0 {
		return
	}
	if last < len(textRunes) {
		pieces = append(pieces, textNode(string(textRunes[last:])))
	}

	parent := n.Parent
	for _, piece := range pieces {
		parent.InsertBefore(piece, n)
	}
	parent.RemoveChild(n)
}

// matchAt returns the winning eligible term starting at pos, or nil. Terms
// are tried in precedence order (longest, then priority, then list order), so
// the first word-boundary match wins.
func (d *Dictionary) matchAt(folded []rune, pos int, st *linkState) *term {
	if pos > 0 && isWordRune(folded[pos-1]) {
		return nil
	}

	for _, idx := range d.ordered {
		if !st.present[idx] {
			continue
		}
		t := &d.terms[idx]
		if st.consumedSurface[string(t.lowerRunes)] || st.consumedURL[t.targetURL] || st.excluded[t.targetURL] {
			continue
		}
		end := pos + len(t.lowerRunes)
		if end > len(folded) {
			continue
		}
		if !runesEqual(folded[pos:end], t.lowerRunes) {
			continue
		}
		if end < len(folded) && isWordRune(folded[end]) {
			continue
		}
		return t
	}

	return nil
}

// containsFolded reports whether the term occurs in the folded runes with
// word boundaries on both sides.
func containsFolded(folded []rune, t *term) bool {
	n := len(t.lowerRunes)
	for i := 0; i+n <= len(folded); i++ {
		if i > 0 && isWordRune(folded[i-1]) {
			continue
		}
		if !runesEqual(folded[i:i+n], t.lowerRunes) {
			continue
		}
		if i+n < len(folded) && isWordRune(folded[i+n]) {
			continue
		}
		return true
	}
	return false
}

// collectTextNodes appends text nodes in document order, skipping the inside
// of existing anchors and non-prose elements.
func collectTextNodes(n *html.Node, out *[]*html.Node) {
	if n.Type == html.TextNode {
		*out = append(*out, n)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "a", "script", "style":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTextNodes(c, out)
	}
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func anchorNode(href, label string) *html.Node {
	a := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.A,
		Data:     "a",
		Attr:     []html.Attribute{{Key: "href", Val: href}},
	}
	a.AppendChild(textNode(label))
	return a
}
