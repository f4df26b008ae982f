package joke

import "github.com/sortkit/sortkit/span"

// Slow sorts s with slowsort, the canonical multiply-and-surrender
// algorithm: recursively place the maximum of each half at the back,
// then slowsort everything before it.
func Slow[E any](s span.T[E]) { SlowRange(s, 0, s.Len()) }

// SlowRange sorts s[a:b].
func SlowRange[E any](s span.T[E], a, b int) {
	if b-a < 2 {
		return
	}
	slow(s, a, b-1)
}

// slow sorts s[i:j] inclusive.
func slow[E any](s span.T[E], i, j int) {
	if i >= j {
		return
	}
	m := (i + j) / 2
	slow(s, i, m)
	slow(s, m+1, j)
	if s.Less(j, m) {
		s.Swap(j, m)
	}
	slow(s, i, j-1)
}
