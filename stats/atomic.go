package stats

import "sync/atomic"

// Atomic is a Recorder that is safe to share across goroutines. Use it
// when one context is handed to concurrent tasks directly instead of
// giving each task a local T and merging at the join.
type Atomic struct {
	indexReads  atomic.Uint64
	indexWrites atomic.Uint64
	compares    atomic.Uint64
	swaps       atomic.Uint64
}

func (a *Atomic) RecordReads(n uint64)    { a.indexReads.Add(n) }
func (a *Atomic) RecordWrites(n uint64)   { a.indexWrites.Add(n) }
func (a *Atomic) RecordCompares(n uint64) { a.compares.Add(n) }
func (a *Atomic) RecordSwaps(n uint64)    { a.swaps.Add(n) }

// Snapshot returns the current counts as a plain T. Only coherent once
// the goroutines charging into a have been joined.
func (a *Atomic) Snapshot() T {
	return T{
		IndexReads:  a.indexReads.Load(),
		IndexWrites: a.indexWrites.Load(),
		Compares:    a.compares.Load(),
		Swaps:       a.swaps.Load(),
	}
}
