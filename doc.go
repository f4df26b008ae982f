// Package sortkit is an instrumented library of sorting algorithms.
//
// Every algorithm is written against span.T, a mutable random-access
// view that charges each index read, index write, comparison, and swap
// into a caller-owned stats.T, so the operation profile of any sort on
// any input can be observed without touching the algorithm itself.
//
// The algorithm packages (insertion, exchange, selection, heap, quick,
// merge, dist, bitmapsort, network, joke) each expose Sort and Range
// entry points over a span; the sort permutes the backing storage in
// place into non-decreasing order by the span's comparator.
package sortkit
