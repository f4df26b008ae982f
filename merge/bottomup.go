package merge

import "github.com/sortkit/sortkit/span"

// BottomUp sorts s with iterative bottom-up merge sort. Stable.
func BottomUp[E any](s span.T[E]) { BottomUpRange(s, 0, s.Len()) }

// BottomUpRange sorts s[a:b].
func BottomUpRange[E any](s span.T[E], a, b int) {
	n := b - a
	if n < 2 {
		return
	}
	// the final merge can have a left run of nearly the whole range
	tmp := s.Scratch(n)

	for width := 1; width < n; width *= 2 {
		for lo := a; lo+width < b; lo += 2 * width {
			mid := lo + width
			hi := mid + width
			if hi > b {
				hi = b
			}
			halves(s, lo, mid, hi, tmp)
		}
	}
}
