package testhelp

import (
	"encoding/binary"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/xxh3"
)

// Fingerprint hashes every element independently and sums the digests,
// so it is order-independent: two slices have equal fingerprints exactly
// when they hold equal multisets (up to hash collision).
func Fingerprint(xs []int) uint64 {
	var sum uint64
	var buf [8]byte
	for _, x := range xs {
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		sum += xxh3.Hash(buf[:])
	}
	return sum
}

// AssertSorted fails unless xs is in non-decreasing order.
func AssertSorted(tb testing.TB, xs []int) {
	tb.Helper()
	for i := 1; i < len(xs); i++ {
		assert.That(tb, xs[i-1] <= xs[i])
	}
}

// AssertPermutes fails unless after is a permutation of before,
// comparing multiset fingerprints.
func AssertPermutes(tb testing.TB, before uint64, after []int) {
	tb.Helper()
	assert.Equal(tb, before, Fingerprint(after))
}
