package exchange

import "github.com/sortkit/sortkit/span"

// combShrink is the gap shrink factor, expressed as a ratio. 1.3 is the
// usual empirical choice; nothing depends on the exact value.
const (
	combShrinkNum = 10
	combShrinkDen = 13
)

// Comb sorts s with comb sort: bubble passes over a shrinking gap. Not
// stable.
func Comb[E any](s span.T[E]) { CombRange(s, 0, s.Len()) }

// CombRange sorts s[a:b].
func CombRange[E any](s span.T[E], a, b int) {
	gap := b - a
	swapped := true
	for gap > 1 || swapped {
		gap = gap * combShrinkNum / combShrinkDen
		if gap < 1 {
			gap = 1
		}
		swapped = false
		for i := a; i+gap < b; i++ {
			if s.Less(i+gap, i) {
				s.Swap(i, i+gap)
				swapped = true
			}
		}
	}
}
