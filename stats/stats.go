package stats

// T accumulates the operation counts for one sort invocation. The zero
// value is ready to use. Counters only ever increase; to reset, replace
// the whole value.
type T struct {
	IndexReads  uint64
	IndexWrites uint64
	Compares    uint64
	Swaps       uint64
}

func (t *T) RecordReads(n uint64)    { t.IndexReads += n }
func (t *T) RecordWrites(n uint64)   { t.IndexWrites += n }
func (t *T) RecordCompares(n uint64) { t.Compares += n }
func (t *T) RecordSwaps(n uint64)    { t.Swaps += n }

// Total returns the sum of all four counters.
func (t *T) Total() uint64 {
	return t.IndexReads + t.IndexWrites + t.Compares + t.Swaps
}

// Merge folds the counts of o into t. Fork-join algorithms give each
// branch a local T and merge at the join point.
func (t *T) Merge(o T) {
	t.IndexReads += o.IndexReads
	t.IndexWrites += o.IndexWrites
	t.Compares += o.Compares
	t.Swaps += o.Swaps
}

// Recorder is what a span charges operations against. A span never calls
// anything else on it, so callers may supply their own implementations.
type Recorder interface {
	RecordReads(n uint64)
	RecordWrites(n uint64)
	RecordCompares(n uint64)
	RecordSwaps(n uint64)
}

// Record charges a whole snapshot against rec at once.
func Record(rec Recorder, t T) {
	rec.RecordReads(t.IndexReads)
	rec.RecordWrites(t.IndexWrites)
	rec.RecordCompares(t.Compares)
	rec.RecordSwaps(t.Swaps)
}

// Discard drops every operation. It is what a span uses when the caller
// opts out of instrumentation.
type Discard struct{}

func (Discard) RecordReads(uint64)    {}
func (Discard) RecordWrites(uint64)   {}
func (Discard) RecordCompares(uint64) {}
func (Discard) RecordSwaps(uint64)    {}

var (
	_ Recorder = (*T)(nil)
	_ Recorder = (*Atomic)(nil)
	_ Recorder = Discard{}
)
