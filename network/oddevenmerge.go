package network

import (
	"github.com/zeebo/errs/v2"

	"github.com/sortkit/sortkit/span"
)

// OddEvenMerge sorts s with Batcher's odd-even mergesort network, which
// requires a power-of-two length. Sequential. Not stable.
func OddEvenMerge[E any](s span.T[E]) error { return OddEvenMergeRange(s, 0, s.Len()) }

// OddEvenMergeRange sorts s[a:b]. A non-power-of-two length fails before
// any element is compared.
func OddEvenMergeRange[E any](s span.T[E], a, b int) error {
	n := b - a
	if n&(n-1) != 0 {
		return errs.Errorf("odd-even merge: range length %d is not a power of two", n)
	}
	oddEvenMergeSort(s, a, n)
	return nil
}

func oddEvenMergeSort[E any](s span.T[E], lo, n int) {
	if n <= 1 {
		return
	}
	m := n / 2
	oddEvenMergeSort(s, lo, m)
	oddEvenMergeSort(s, lo+m, m)
	oddEvenMerge(s, lo, n, 1)
}

// oddEvenMerge merges the two sorted halves of s[lo : lo+n], comparing
// elements r apart.
func oddEvenMerge[E any](s span.T[E], lo, n, r int) {
	step := r * 2
	if step < n {
		oddEvenMerge(s, lo, n, step)
		oddEvenMerge(s, lo+r, n, step)
		for i := lo + r; i+r < lo+n; i += step {
			compareExchange(s, i, i+r, true)
		}
	} else {
		compareExchange(s, lo, lo+r, true)
	}
}
