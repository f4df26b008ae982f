package span

import (
	"cmp"

	"github.com/sortkit/sortkit/stats"
)

// T is a mutable fixed-length view over a backing slice, together with a
// total-order comparator and a statistics recorder. Sort algorithms touch
// elements only through the methods here, so every index read, write,
// comparison, and swap lands in the recorder without the algorithm
// knowing it is being observed.
//
// T is a view. Copies share the backing storage, the comparator, and the
// recorder; mutations are visible to the owner of the backing slice.
type T[E any] struct {
	data []E
	cmp  func(a, b E) int
	rec  stats.Recorder
}

// Of wraps data with the natural ordering of E. A nil recorder opts out
// of instrumentation.
func Of[E cmp.Ordered](data []E, rec stats.Recorder) T[E] {
	return OfFunc(data, cmp.Compare[E], rec)
}

// OfFunc wraps data with an explicit comparator. A nil recorder selects
// stats.Discard. A nil comparator is a programming error and panics.
func OfFunc[E any](data []E, compare func(a, b E) int, rec stats.Recorder) T[E] {
	if compare == nil {
		panic("span: nil comparator")
	}
	if rec == nil {
		rec = stats.Discard{}
	}
	return T[E]{data: data, cmp: compare, rec: rec}
}

func (s T[E]) Len() int { return len(s.data) }

// Recorder returns the recorder this view charges into.
func (s T[E]) Recorder() stats.Recorder { return s.rec }

// Read returns the element at i. One index read.
func (s T[E]) Read(i int) E {
	v := s.data[i]
	s.rec.RecordReads(1)
	return v
}

// Write overwrites the element at i. One index write.
func (s T[E]) Write(i int, v E) {
	s.data[i] = v
	s.rec.RecordWrites(1)
}

// Swap exchanges the elements at i and j; i == j is a valid no-op
// exchange. One swap plus the two reads and two writes the exchange
// stands for.
func (s T[E]) Swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
	s.rec.RecordSwaps(1)
	s.rec.RecordReads(2)
	s.rec.RecordWrites(2)
}

// Compare orders the elements at i and j, returning a negative, zero, or
// positive result. One comparison, two index reads.
func (s T[E]) Compare(i, j int) int {
	r := s.cmp(s.data[i], s.data[j])
	s.rec.RecordCompares(1)
	s.rec.RecordReads(2)
	return r
}

// CompareValue orders the element at i against v, which need not live
// inside the span. One comparison, one index read.
func (s T[E]) CompareValue(i int, v E) int {
	r := s.cmp(s.data[i], v)
	s.rec.RecordCompares(1)
	s.rec.RecordReads(1)
	return r
}

// Less reports Compare(i, j) < 0.
func (s T[E]) Less(i, j int) bool { return s.Compare(i, j) < 0 }

// CopyTo copies count elements from this span starting at srcStart into
// dst starting at dstStart. The recorded statistics are exactly what a
// loop of dst.Write(dstStart+k, s.Read(srcStart+k)) would produce: count
// reads charged to the source view and count writes charged to the
// destination view, once per element even when both views share one
// recorder. Overlapping views of the same backing storage behave like
// the builtin copy.
func (s T[E]) CopyTo(srcStart int, dst T[E], dstStart, count int) {
	copy(dst.data[dstStart:dstStart+count], s.data[srcStart:srcStart+count])
	s.rec.RecordReads(uint64(count))
	dst.rec.RecordWrites(uint64(count))
}

// CopyToSlice copies count elements starting at srcStart into a plain
// slice. Only the source reads are recorded; there is no destination
// view to charge.
func (s T[E]) CopyToSlice(srcStart int, dst []E, dstStart, count int) {
	copy(dst[dstStart:dstStart+count], s.data[srcStart:srcStart+count])
	s.rec.RecordReads(uint64(count))
}

// Sub returns a view of [a, b) aliasing the same backing storage and
// sharing the comparator and recorder. Index 0 of the sub-view is index
// a of s.
func (s T[E]) Sub(a, b int) T[E] {
	return T[E]{data: s.data[a:b:b], cmp: s.cmp, rec: s.rec}
}

// Scratch returns a view over a fresh backing slice of length n sharing
// the comparator and recorder, for algorithms that need temporary space
// whose operations accumulate into the same context.
func (s T[E]) Scratch(n int) T[E] {
	return T[E]{data: make([]E, n), cmp: s.cmp, rec: s.rec}
}

// WithRecorder returns a view over the same backing storage that charges
// into rec instead. Fork-join algorithms use it to give each branch a
// local accumulator. A nil rec selects stats.Discard.
func (s T[E]) WithRecorder(rec stats.Recorder) T[E] {
	if rec == nil {
		rec = stats.Discard{}
	}
	return T[E]{data: s.data, cmp: s.cmp, rec: rec}
}
