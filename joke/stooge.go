package joke

import "github.com/sortkit/sortkit/span"

// Stooge sorts s with stooge sort: recursively sort the first two
// thirds, the last two thirds, then the first two thirds again. O(n^2.7).
func Stooge[E any](s span.T[E]) { StoogeRange(s, 0, s.Len()) }

// StoogeRange sorts s[a:b].
func StoogeRange[E any](s span.T[E], a, b int) {
	if b-a < 2 {
		return
	}
	stooge(s, a, b-1)
}

// stooge sorts s[i:j] inclusive.
func stooge[E any](s span.T[E], i, j int) {
	if s.Less(j, i) {
		s.Swap(i, j)
	}
	if j-i+1 > 2 {
		t := (j - i + 1) / 3
		stooge(s, i, j-t)
		stooge(s, i+t, j)
		stooge(s, i, j-t)
	}
}
