package testhelp

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestFingerprint(t *testing.T) {
	// order-independent
	assert.Equal(t, Fingerprint([]int{1, 2, 3}), Fingerprint([]int{3, 1, 2}))

	// multiplicity-sensitive
	assert.That(t, Fingerprint([]int{1, 1, 2}) != Fingerprint([]int{1, 2, 2}))
	assert.That(t, Fingerprint([]int{1}) != Fingerprint([]int{1, 1}))
}

func TestGenerators(t *testing.T) {
	assert.DeepEqual(t, []int{0, 1, 2, 3}, Sorted(4))
	assert.DeepEqual(t, []int{3, 2, 1, 0}, Reversed(4))
	assert.DeepEqual(t, []int{7, 7, 7}, AllEqual(3, 7))

	xs := Random(100, 10)
	assert.Equal(t, 100, len(xs))
	for _, x := range xs {
		assert.That(t, 0 <= x && x < 10)
	}

	assert.Equal(t, Fingerprint(Sorted(50)), Fingerprint(NearlySorted(50, 3)))
}

func TestPairs(t *testing.T) {
	ps := Pairs([]int{5, 5, 1})
	assert.DeepEqual(t, []Pair{{5, 0}, {5, 1}, {1, 2}}, ps)
	assert.Equal(t, 0, PairCompare(ps[0], ps[1]))
	assert.That(t, PairCompare(ps[2], ps[0]) < 0)
}
