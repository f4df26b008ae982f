package quick

import (
	"cmp"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
)

// Sort sorts s with quicksort using Hoare partitioning and a middle
// pivot. Not stable.
func Sort[E any](s span.T[E]) { Range(s, 0, s.Len()) }

// Range sorts s[a:b].
func Range[E any](s span.T[E], a, b int) {
	if b-a < 2 {
		return
	}
	j := hoare(s, a, b)
	Range(s, a, j+1)
	Range(s, j+1, b)
}

// hoare partitions s[a:b] around the value at the lower middle of the
// inclusive bounds and returns j such that s[a:j+1] <= pivot <= s[j+1:b]
// with j < b-1, so both recursions shrink. Picking the upper middle
// would let a sorted pair return j == b-1 and recurse on the full range.
// The pivot value is cached so each probe is a single-read comparison.
func hoare[E any](s span.T[E], a, b int) int {
	pivot := s.Read(a + (b-a-1)/2)
	i, j := a-1, b
	for {
		for {
			i++
			if s.CompareValue(i, pivot) >= 0 {
				break
			}
		}
		for {
			j--
			if s.CompareValue(j, pivot) <= 0 {
				break
			}
		}
		if i >= j {
			return j
		}
		s.Swap(i, j)
	}
}

// Slice sorts x by the natural ordering of E, charging into rec.
func Slice[S ~[]E, E cmp.Ordered](x S, rec stats.Recorder) {
	Sort(span.Of(x, rec))
}
