package testhelp

import (
	"cmp"
	"testing"

	"github.com/zeebo/assert"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
)

// Pair carries a value plus its original index, so stability is
// observable even though the comparator only sees V.
type Pair struct {
	V   int
	Idx int
}

// PairCompare orders pairs by value alone.
func PairCompare(a, b Pair) int { return cmp.Compare(a.V, b.V) }

// Pairs tags each value with its position.
func Pairs(xs []int) []Pair {
	ps := make([]Pair, len(xs))
	for i, x := range xs {
		ps[i] = Pair{V: x, Idx: i}
	}
	return ps
}

// PairSpan wraps ps in a span comparing values only.
func PairSpan(ps []Pair, rec stats.Recorder) span.T[Pair] {
	return span.OfFunc(ps, PairCompare, rec)
}

// AssertStable fails unless ps is sorted by value with equal values
// still in original index order.
func AssertStable(tb testing.TB, ps []Pair) {
	tb.Helper()
	for i := 1; i < len(ps); i++ {
		assert.That(tb, ps[i-1].V <= ps[i].V)
		if ps[i-1].V == ps[i].V {
			assert.That(tb, ps[i-1].Idx < ps[i].Idx)
		}
	}
}
