package insertion

import "github.com/sortkit/sortkit/span"

// Shell sorts s with shellsort over a halving gap sequence. Not stable.
func Shell[E any](s span.T[E]) { ShellRange(s, 0, s.Len()) }

// ShellRange sorts s[a:b].
func ShellRange[E any](s span.T[E], a, b int) {
	for gap := (b - a) / 2; gap > 0; gap /= 2 {
		for i := a + gap; i < b; i++ {
			for j := i; j >= a+gap && s.Less(j, j-gap); j -= gap {
				s.Swap(j, j-gap)
			}
		}
	}
}
