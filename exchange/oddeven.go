package exchange

import "github.com/sortkit/sortkit/span"

// OddEven sorts s with odd-even transposition sort: alternating passes
// over the odd and even adjacent pairs until neither pass swaps. Stable.
func OddEven[E any](s span.T[E]) { OddEvenRange(s, 0, s.Len()) }

// OddEvenRange sorts s[a:b].
func OddEvenRange[E any](s span.T[E], a, b int) {
	for sorted := b-a < 2; !sorted; {
		sorted = true
		for i := a + 1; i+1 < b; i += 2 {
			if s.Less(i+1, i) {
				s.Swap(i, i+1)
				sorted = false
			}
		}
		for i := a; i+1 < b; i += 2 {
			if s.Less(i+1, i) {
				s.Swap(i, i+1)
				sorted = false
			}
		}
	}
}
