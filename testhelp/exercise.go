package testhelp

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
)

// ExerciseSort runs sort over the canonical input shapes and checks the
// whole-sort contract: the range ends in non-decreasing order, holds the
// same multiset it started with, and trivial inputs record no
// comparisons and no writes.
func ExerciseSort(tb testing.TB, sort func(span.T[int])) {
	shapes := [][]int{
		{},
		{42},
		{2, 1},
		{3, 1, 2},
		Sorted(50),
		Reversed(50),
		Random(100, 1000),
		Random(100, 10),
		AllEqual(40, 7),
		NearlySorted(60, 5),
	}

	for _, data := range shapes {
		fp := Fingerprint(data)
		var st stats.T

		sort(span.Of(data, &st))

		AssertSorted(tb, data)
		AssertPermutes(tb, fp, data)
		if len(data) < 2 {
			assert.Equal(tb, uint64(0), st.Compares)
			assert.Equal(tb, uint64(0), st.IndexWrites)
		}
	}
}

// ExerciseRange sorts sub-ranges of larger sequences and checks that
// every index outside the range is untouched.
func ExerciseRange(tb testing.TB, sortRange func(s span.T[int], a, b int)) {
	bounds := [][2]int{{0, 0}, {0, 8}, {3, 17}, {10, 30}, {29, 30}, {0, 30}}

	for _, bound := range bounds {
		a, b := bound[0], bound[1]
		data := Random(30, 100)
		before := append([]int(nil), data...)
		fp := Fingerprint(data[a:b])

		sortRange(span.Of(data, nil), a, b)

		AssertSorted(tb, data[a:b])
		AssertPermutes(tb, fp, data[a:b])
		assert.DeepEqual(tb, before[:a], data[:a])
		assert.DeepEqual(tb, before[b:], data[b:])
	}
}

// ExerciseStable checks the stability guarantee: equal-comparing
// elements keep their input order, observed through original-index tags
// the comparator cannot see.
func ExerciseStable(tb testing.TB, sort func(span.T[Pair])) {
	shapes := [][]int{
		Random(200, 10),
		AllEqual(64, 3),
		Reversed(50),
		NearlySorted(100, 8),
	}

	for _, values := range shapes {
		ps := Pairs(values)
		sort(PairSpan(ps, nil))
		AssertStable(tb, ps)
	}
}
