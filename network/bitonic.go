// Package network holds the data-oblivious sorting networks. The index
// pairs they compare are fixed by the range length alone, which is what
// lets the bitonic sort run network stages over disjoint sub-ranges
// concurrently.
package network

import (
	"github.com/exascience/pargo/parallel"
	"github.com/zeebo/errs/v2"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
)

// parallelAt is the range length at or above which the bitonic stages
// fork. A tuning knob, not a semantic boundary.
const parallelAt = 1024

// Bitonic sorts s with the strict bitonic network, which requires a
// power-of-two length. Ranges of parallelAt or more elements run their
// two halves as concurrent tasks. Not stable.
func Bitonic[E any](s span.T[E]) error { return BitonicRange(s, 0, s.Len()) }

// BitonicRange sorts s[a:b]. A non-power-of-two length fails before any
// element is compared.
func BitonicRange[E any](s span.T[E], a, b int) error {
	n := b - a
	if n&(n-1) != 0 {
		return errs.Errorf("bitonic: range length %d is not a power of two", n)
	}
	bitonic(s, a, n, true)
	return nil
}

func bitonic[E any](s span.T[E], lo, n int, up bool) {
	if n <= 1 {
		return
	}
	m := n / 2
	if n >= parallelAt {
		fork(s,
			func(v span.T[E]) { bitonic(v, lo, m, !up) },
			func(v span.T[E]) { bitonic(v, lo+m, m, up) },
		)
	} else {
		bitonic(s, lo, m, !up)
		bitonic(s, lo+m, m, up)
	}
	bitonicMerge(s, lo, n, up)
}

func bitonicMerge[E any](s span.T[E], lo, n int, up bool) {
	if n <= 1 {
		return
	}
	m := n / 2
	for i := lo; i < lo+m; i++ {
		compareExchange(s, i, i+m, up)
	}
	if n >= parallelAt {
		fork(s,
			func(v span.T[E]) { bitonicMerge(v, lo, m, up) },
			func(v span.T[E]) { bitonicMerge(v, lo+m, m, up) },
		)
	} else {
		bitonicMerge(s, lo, m, up)
		bitonicMerge(s, lo+m, m, up)
	}
}

// fork runs left and right concurrently over views charging into
// branch-local accumulators, folded back into s's recorder at the join.
// The branches touch disjoint index ranges, so the backing storage needs
// no locking, and the local accumulators keep the shared counters free
// of lost updates.
func fork[E any](s span.T[E], left, right func(span.T[E])) {
	var ls, rs stats.T
	lv := s.WithRecorder(&ls)
	rv := s.WithRecorder(&rs)
	parallel.Do(
		func() { left(lv) },
		func() { right(rv) },
	)
	ls.Merge(rs)
	stats.Record(s.Recorder(), ls)
}

// compareExchange orders the pair (i, j) ascending when up, descending
// otherwise.
func compareExchange[E any](s span.T[E], i, j int, up bool) {
	if (s.Compare(i, j) > 0) == up {
		s.Swap(i, j)
	}
}
