package exchange

import "github.com/sortkit/sortkit/span"

// Bubble sorts s with bubble sort, shrinking the scan to the position of
// the last swap each pass. Stable.
func Bubble[E any](s span.T[E]) { BubbleRange(s, 0, s.Len()) }

// BubbleRange sorts s[a:b].
func BubbleRange[E any](s span.T[E], a, b int) {
	for end := b; end > a+1; {
		last := a
		for i := a + 1; i < end; i++ {
			if s.Less(i, i-1) {
				s.Swap(i, i-1)
				last = i
			}
		}
		end = last
	}
}
