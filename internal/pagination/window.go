package pagination

// WindowEntry is one slot in the numbered-page navigation: either a page
// number or a gap marker ("...").
type WindowEntry struct {
	Page int  `json:"page,omitempty"`
	Gap  bool `json:"gap,omitempty"`
}

// Window returns the page numbers to render in the pagination nav: the first
// page, the pages within radius of current, and the last page, with gap
// markers where numbers are skipped. current is assumed in [1, total].
func Window(current, total, radius int) []WindowEntry {
	if total <= 0 {
		return nil
	}
	if radius < 0 {
		radius = 0
	}

	entries := make([]WindowEntry, 0, 2*radius+5)

	lo := current - radius
	if lo < 1 {
		lo = 1
	}
	hi := current + radius
	if hi > total {
		hi = total
	}

	if lo > 1 {
		entries = append(entries, WindowEntry{Page: 1})
		if lo > 2 {
			entries = append(entries, WindowEntry{Gap: true})
		}
	}

	for p := lo; p <= hi; p++ {
		entries = append(entries, WindowEntry{Page: p})
	}

	if hi < total {
		if hi < total-1 {
			entries = append(entries, WindowEntry{Gap: true})
		}
		entries = append(entries, WindowEntry{Page: total})
	}

	return entries
}
