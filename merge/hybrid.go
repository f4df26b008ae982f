package merge

import (
	"github.com/sortkit/sortkit/insertion"
	"github.com/sortkit/sortkit/span"
)

// insertionCutoff is the range size at or below which Hybrid hands off
// to insertion sort. A tuning knob, not a semantic boundary.
const insertionCutoff = 12

// Hybrid sorts s with top-down merge sort that switches to insertion
// sort below insertionCutoff. Stable.
func Hybrid[E any](s span.T[E]) { HybridRange(s, 0, s.Len()) }

// HybridRange sorts s[a:b].
func HybridRange[E any](s span.T[E], a, b int) {
	if b-a < 2 {
		return
	}
	if b-a <= insertionCutoff {
		insertion.Range(s, a, b)
		return
	}
	tmp := s.Scratch((b - a + 1) / 2)
	hybrid(s, a, b, tmp)
}

func hybrid[E any](s span.T[E], a, b int, tmp span.T[E]) {
	if b-a <= insertionCutoff {
		insertion.Range(s, a, b)
		return
	}
	m := a + (b-a)/2
	hybrid(s, a, m, tmp)
	hybrid(s, m, b, tmp)
	halves(s, a, m, b, tmp)
}
