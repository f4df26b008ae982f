package selection

import (
	"cmp"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
)

// Sort sorts s with selection sort: one swap per position, always
// n(n-1)/2 comparisons. Not stable.
func Sort[E any](s span.T[E]) { Range(s, 0, s.Len()) }

// Range sorts s[a:b].
func Range[E any](s span.T[E], a, b int) {
	for i := a; i < b-1; i++ {
		min := i
		for j := i + 1; j < b; j++ {
			if s.Less(j, min) {
				min = j
			}
		}
		if min != i {
			s.Swap(i, min)
		}
	}
}

// Slice sorts x by the natural ordering of E, charging into rec.
func Slice[S ~[]E, E cmp.Ordered](x S, rec stats.Recorder) {
	Sort(span.Of(x, rec))
}
