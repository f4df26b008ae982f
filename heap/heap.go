package heap

import (
	"cmp"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
)

// Sort sorts s with heapsort. Not stable.
func Sort[E any](s span.T[E]) { Range(s, 0, s.Len()) }

// Range sorts s[a:b] by building a max-heap over the range and popping
// the largest element to the back.
func Range[E any](s span.T[E], a, b int) {
	first := a
	hi := b - a

	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDown(s, i, hi, first)
	}

	for i := hi - 1; i >= 1; i-- {
		s.Swap(first, first+i)
		siftDown(s, 0, i, first)
	}
}

// siftDown restores the heap property on s[first+lo : first+hi]. first is
// the offset into the span where the root of the heap lies.
func siftDown[E any](s span.T[E], lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && s.Less(first+child, first+child+1) {
			child++
		}
		if !s.Less(first+root, first+child) {
			return
		}
		s.Swap(first+root, first+child)
		root = child
	}
}

// Slice sorts x by the natural ordering of E, charging into rec.
func Slice[S ~[]E, E cmp.Ordered](x S, rec stats.Recorder) {
	Sort(span.Of(x, rec))
}
