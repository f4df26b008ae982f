package exchange

import "github.com/sortkit/sortkit/span"

// Cocktail sorts s with cocktail shaker sort: bubble passes alternating
// direction, closing in from both ends. Stable.
func Cocktail[E any](s span.T[E]) { CocktailRange(s, 0, s.Len()) }

// CocktailRange sorts s[a:b].
func CocktailRange[E any](s span.T[E], a, b int) {
	lo, hi := a, b
	for lo < hi {
		last := lo
		for i := lo + 1; i < hi; i++ {
			if s.Less(i, i-1) {
				s.Swap(i, i-1)
				last = i
			}
		}
		hi = last
		if lo >= hi {
			break
		}

		first := hi
		for i := hi - 1; i > lo; i-- {
			if s.Less(i, i-1) {
				s.Swap(i, i-1)
				first = i
			}
		}
		lo = first
	}
}
