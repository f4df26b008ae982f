package insertion

import (
	"cmp"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
)

// Sort sorts s with straight insertion sort. Stable. On already-sorted
// input of length n it performs exactly n-1 comparisons and no writes.
func Sort[E any](s span.T[E]) { Range(s, 0, s.Len()) }

// Range sorts s[a:b].
func Range[E any](s span.T[E], a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && s.Less(j, j-1); j-- {
			s.Swap(j, j-1)
		}
	}
}

// Slice sorts x by the natural ordering of E, charging into rec.
func Slice[S ~[]E, E cmp.Ordered](x S, rec stats.Recorder) {
	Sort(span.Of(x, rec))
}
