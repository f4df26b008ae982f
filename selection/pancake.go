package selection

import "github.com/sortkit/sortkit/span"

// Pancake sorts s with pancake sort: flip the prefix to bring the
// largest remaining element to the front, then flip it to the back. Not
// stable.
func Pancake[E any](s span.T[E]) { PancakeRange(s, 0, s.Len()) }

// PancakeRange sorts s[a:b].
func PancakeRange[E any](s span.T[E], a, b int) {
	for end := b; end > a+1; end-- {
		max := a
		for i := a + 1; i < end; i++ {
			if s.Compare(i, max) > 0 {
				max = i
			}
		}
		if max == end-1 {
			continue
		}
		if max != a {
			flip(s, a, max+1)
		}
		flip(s, a, end)
	}
}

// flip reverses s[a:b].
func flip[E any](s span.T[E], a, b int) {
	for i, j := a, b-1; i < j; i, j = i+1, j-1 {
		s.Swap(i, j)
	}
}
