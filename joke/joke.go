// Package joke holds the novelty sorts. They honor the same contract as
// everything else but are excluded from any performance expectation:
// bogosort and bozosort are non-deterministic, slowsort and stooge sort
// are super-polynomial by construction.
package joke

import (
	"github.com/zeebo/mwc"

	"github.com/sortkit/sortkit/span"
)

// Bogo sorts s by shuffling until the range happens to be sorted.
func Bogo[E any](s span.T[E]) { BogoRange(s, 0, s.Len()) }

// BogoRange sorts s[a:b].
func BogoRange[E any](s span.T[E], a, b int) {
	rng := mwc.Rand()
	for !sorted(s, a, b) {
		// Fisher-Yates through the span's swap primitive, so the
		// permutation shows up in the swap counter
		for i := b - 1; i > a; i-- {
			j := a + int(rng.Uint64n(uint64(i-a+1)))
			s.Swap(i, j)
		}
	}
}

// Bozo sorts s by swapping random pairs until the range happens to be
// sorted.
func Bozo[E any](s span.T[E]) { BozoRange(s, 0, s.Len()) }

// BozoRange sorts s[a:b].
func BozoRange[E any](s span.T[E], a, b int) {
	rng := mwc.Rand()
	n := uint64(b - a)
	for !sorted(s, a, b) {
		i := a + int(rng.Uint64n(n))
		j := a + int(rng.Uint64n(n))
		s.Swap(i, j)
	}
}

func sorted[E any](s span.T[E], a, b int) bool {
	for i := a + 1; i < b; i++ {
		if s.Less(i, i-1) {
			return false
		}
	}
	return true
}
