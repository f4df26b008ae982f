package span

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"

	"github.com/sortkit/sortkit/stats"
)

func TestReadWrite(t *testing.T) {
	var st stats.T
	s := Of([]int{10, 20, 30}, &st)

	assert.Equal(t, 10, s.Read(0))
	assert.Equal(t, 30, s.Read(2))
	s.Write(1, 99)
	assert.Equal(t, 99, s.Read(1))

	assert.Equal(t, stats.T{IndexReads: 3, IndexWrites: 1}, st)
}

func TestSwap(t *testing.T) {
	var st stats.T
	data := []int{1, 2, 3}
	s := Of(data, &st)

	s.Swap(0, 2)
	assert.DeepEqual(t, []int{3, 2, 1}, data)

	// a swap stands for two reads and two writes
	assert.Equal(t, stats.T{IndexReads: 2, IndexWrites: 2, Swaps: 1}, st)

	// swapping an index with itself is a valid no-op exchange
	s.Swap(1, 1)
	assert.DeepEqual(t, []int{3, 2, 1}, data)
	assert.Equal(t, stats.T{IndexReads: 4, IndexWrites: 4, Swaps: 2}, st)
}

func TestCompare(t *testing.T) {
	var st stats.T
	s := Of([]int{5, 5, 7}, &st)

	assert.That(t, s.Compare(0, 2) < 0)
	assert.That(t, s.Compare(2, 0) > 0)
	assert.Equal(t, 0, s.Compare(0, 1))
	assert.Equal(t, stats.T{IndexReads: 6, Compares: 3}, st)

	assert.That(t, s.CompareValue(0, 6) < 0)
	assert.That(t, s.CompareValue(2, 6) > 0)
	assert.Equal(t, stats.T{IndexReads: 8, Compares: 5}, st)

	assert.That(t, s.Less(0, 2))
	assert.That(t, !s.Less(2, 0))
	assert.That(t, !s.Less(0, 1))
}

func TestCompareFunc(t *testing.T) {
	// reversed ordering flows through every comparison primitive
	s := OfFunc([]int{1, 2}, func(a, b int) int { return b - a }, nil)
	assert.That(t, s.Compare(0, 1) > 0)
	assert.That(t, s.CompareValue(0, 2) > 0)
}

func TestCopyTo(t *testing.T) {
	var st stats.T
	src := Of([]int{1, 2, 3, 4, 5}, &st)
	dstData := make([]int, 5)
	dst := Of(dstData, &st)

	src.CopyTo(1, dst, 0, 3)
	assert.DeepEqual(t, []int{2, 3, 4, 0, 0}, dstData)

	// count reads on the source plus count writes on the destination,
	// once per element, even with both views on one context
	assert.Equal(t, stats.T{IndexReads: 3, IndexWrites: 3}, st)
}

func TestCopyToSeparateContexts(t *testing.T) {
	var srcStats, dstStats stats.T
	src := Of([]int{1, 2, 3}, &srcStats)
	dst := Of(make([]int, 3), &dstStats)

	src.CopyTo(0, dst, 0, 3)

	assert.Equal(t, stats.T{IndexReads: 3}, srcStats)
	assert.Equal(t, stats.T{IndexWrites: 3}, dstStats)
}

// The statistics of one CopyTo must be identical to the loop of single
// element reads and writes it replaces, and so must the contents.
func TestCopyToLoopEquivalence(t *testing.T) {
	rng := mwc.Rand()

	for iter := 0; iter < 100; iter++ {
		n := 1 + int(rng.Uint64n(64))
		count := int(rng.Uint64n(uint64(n)))
		srcStart := int(rng.Uint64n(uint64(n - count + 1)))
		dstStart := int(rng.Uint64n(uint64(n - count + 1)))

		base := make([]int, n)
		for i := range base {
			base[i] = int(rng.Uint64n(1000))
		}

		bulkData := append([]int(nil), base...)
		loopData := append([]int(nil), base...)
		bulkDst, loopDst := make([]int, n), make([]int, n)

		var bulkStats, loopStats stats.T
		bulkSrc := Of(bulkData, &bulkStats)
		bulk := Of(bulkDst, &bulkStats)
		loopSrc := Of(loopData, &loopStats)
		loop := Of(loopDst, &loopStats)

		bulkSrc.CopyTo(srcStart, bulk, dstStart, count)
		for k := 0; k < count; k++ {
			loop.Write(dstStart+k, loopSrc.Read(srcStart+k))
		}

		assert.DeepEqual(t, loopDst, bulkDst)
		assert.Equal(t, loopStats, bulkStats)
	}
}

func TestCopyToOverlap(t *testing.T) {
	var st stats.T
	data := []int{1, 2, 3, 4, 5}
	s := Of(data, &st)

	// overlapping ranges over one backing buffer behave like copy
	s.CopyTo(0, s, 1, 4)
	assert.DeepEqual(t, []int{1, 1, 2, 3, 4}, data)
	assert.Equal(t, stats.T{IndexReads: 4, IndexWrites: 4}, st)
}

func TestCopyToSlice(t *testing.T) {
	var st stats.T
	s := Of([]int{1, 2, 3}, &st)
	out := make([]int, 3)

	s.CopyToSlice(0, out, 0, 3)
	assert.DeepEqual(t, []int{1, 2, 3}, out)

	// a plain destination records no writes
	assert.Equal(t, stats.T{IndexReads: 3}, st)
}

func TestSub(t *testing.T) {
	var st stats.T
	data := []int{1, 2, 3, 4, 5}
	s := Of(data, &st)

	sub := s.Sub(1, 4)
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, 2, sub.Read(0))

	// mutations through the sub-view land in the shared backing storage
	sub.Write(2, 99)
	assert.Equal(t, 99, data[3])

	// and its operations land in the shared context
	assert.Equal(t, stats.T{IndexReads: 1, IndexWrites: 1}, st)
}

func TestScratch(t *testing.T) {
	var st stats.T
	s := Of([]int{3, 1}, &st)

	tmp := s.Scratch(2)
	assert.Equal(t, 2, tmp.Len())
	tmp.Write(0, 7)
	assert.Equal(t, 7, tmp.Read(0))

	// scratch operations accumulate into the same context
	assert.Equal(t, stats.T{IndexReads: 1, IndexWrites: 1}, st)

	// and the scratch buffer does not alias the original
	assert.Equal(t, 3, s.Read(0))
}

func TestWithRecorder(t *testing.T) {
	var outer, inner stats.T
	data := []int{2, 1}
	s := Of(data, &outer)

	v := s.WithRecorder(&inner)
	v.Swap(0, 1)

	assert.DeepEqual(t, []int{1, 2}, data)
	assert.Equal(t, stats.T{}, outer)
	assert.Equal(t, stats.T{IndexReads: 2, IndexWrites: 2, Swaps: 1}, inner)
}

func TestNilRecorder(t *testing.T) {
	s := Of([]int{2, 1}, nil)
	s.Swap(0, 1)
	assert.Equal(t, 1, s.Read(0))
}

func TestNilComparator(t *testing.T) {
	defer func() { assert.That(t, recover() != nil) }()
	OfFunc[int](nil, nil, nil)
}

func TestOutOfRange(t *testing.T) {
	run := func(name string, fn func(T[int])) {
		t.Run(name, func(t *testing.T) {
			defer func() { assert.That(t, recover() != nil) }()
			fn(Of([]int{1, 2, 3}, nil))
		})
	}

	run("Read", func(s T[int]) { s.Read(3) })
	run("ReadNegative", func(s T[int]) { s.Read(-1) })
	run("Write", func(s T[int]) { s.Write(3, 0) })
	run("Swap", func(s T[int]) { s.Swap(0, 3) })
	run("Compare", func(s T[int]) { s.Compare(3, 0) })
	run("CompareValue", func(s T[int]) { s.CompareValue(-1, 0) })
	run("CopyTo", func(s T[int]) { s.CopyTo(1, s, 0, 3) })
	run("CopyToSlice", func(s T[int]) { s.CopyToSlice(0, make([]int, 1), 0, 2) })
}
