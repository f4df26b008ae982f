package network

import (
	"math/bits"
	"testing"

	"github.com/aclements/go-perfevent/perfbench"
	"github.com/zeebo/assert"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
	"github.com/sortkit/sortkit/testhelp"
)

func TestBitonicScenario(t *testing.T) {
	data := []int{5, 2, 8, 1, 9, 3, 7, 4}
	assert.NoError(t, Bitonic(span.Of(data, nil)))
	assert.DeepEqual(t, []int{1, 2, 3, 4, 5, 7, 8, 9}, data)
}

func TestBitonicPowersOfTwo(t *testing.T) {
	for _, n := range []int{0, 1, 2, 4, 8, 64, 256} {
		data := testhelp.Random(n, 1000)
		fp := testhelp.Fingerprint(data)

		assert.NoError(t, Bitonic(span.Of(data, nil)))

		testhelp.AssertSorted(t, data)
		testhelp.AssertPermutes(t, fp, data)
	}
}

// A non-power-of-two length fails before any element is compared.
func TestBitonicBadLength(t *testing.T) {
	var st stats.T
	data := []int{7, 6, 5, 4, 3, 2, 1}

	assert.That(t, Bitonic(span.Of(data, &st)) != nil)

	assert.Equal(t, stats.T{}, st)
	assert.DeepEqual(t, []int{7, 6, 5, 4, 3, 2, 1}, data)
}

func TestBitonicRangeContainment(t *testing.T) {
	data := testhelp.Random(32, 100)
	before := append([]int(nil), data...)

	assert.NoError(t, BitonicRange(span.Of(data, nil), 8, 24))

	testhelp.AssertSorted(t, data[8:24])
	assert.DeepEqual(t, before[:8], data[:8])
	assert.DeepEqual(t, before[24:], data[24:])
}

// The network is data-oblivious: its comparison count is a function of
// length alone, n/4 * log2(n) * (log2(n)+1). At 2048 elements the sort
// runs its stages as parallel tasks, so hitting the exact count also
// proves no counter updates were lost at the joins, and the swap/read/
// write arithmetic ties the remaining counters together.
func TestBitonicParallelCounts(t *testing.T) {
	const n = 2048
	k := uint64(bits.Len(uint(n)) - 1)
	wantCompares := uint64(n) / 4 * k * (k + 1)

	var st stats.T
	data := testhelp.Random(n, 1<<20)

	assert.NoError(t, Bitonic(span.Of(data, &st)))

	testhelp.AssertSorted(t, data)
	assert.Equal(t, wantCompares, st.Compares)
	assert.Equal(t, 2*st.Swaps, st.IndexWrites)
	assert.Equal(t, 2*st.Compares+2*st.Swaps, st.IndexReads)
}

// Obliviousness, observed: every input of one length records the same
// comparison count, parallel or not.
func TestBitonicObliviousCompares(t *testing.T) {
	const n = 4096

	counts := make([]uint64, 0, 3)
	for _, data := range [][]int{
		testhelp.Sorted(n),
		testhelp.Reversed(n),
		testhelp.Random(n, 1000),
	} {
		var st stats.T
		assert.NoError(t, Bitonic(span.Of(data, &st)))
		counts = append(counts, st.Compares)
	}

	assert.Equal(t, counts[0], counts[1])
	assert.Equal(t, counts[0], counts[2])
}

func TestBitonicAny(t *testing.T) {
	testhelp.ExerciseSort(t, BitonicAny[int])
	testhelp.ExerciseRange(t, BitonicAnyRange[int])
}

func TestOddEvenMerge(t *testing.T) {
	for _, n := range []int{0, 1, 2, 4, 8, 64, 512} {
		data := testhelp.Random(n, 1000)
		fp := testhelp.Fingerprint(data)

		assert.NoError(t, OddEvenMerge(span.Of(data, nil)))

		testhelp.AssertSorted(t, data)
		testhelp.AssertPermutes(t, fp, data)
	}
}

func TestOddEvenMergeBadLength(t *testing.T) {
	var st stats.T
	assert.That(t, OddEvenMerge(span.Of(make([]int, 7), &st)) != nil)
	assert.Equal(t, stats.T{}, st)
}

func BenchmarkBitonic(b *testing.B) {
	input := testhelp.Random(1<<13, 1<<20)
	buf := make([]int, len(input))

	perfbench.Open(b)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		copy(buf, input)
		if err := Bitonic(span.Of(buf, nil)); err != nil {
			b.Fatal(err)
		}
	}
}
