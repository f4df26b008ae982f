// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the Go LICENSE file.

package quick

import (
	"math/bits"

	"github.com/zeebo/mwc"

	"github.com/sortkit/sortkit/heap"
	"github.com/sortkit/sortkit/insertion"
	"github.com/sortkit/sortkit/span"
)

// PDQ sorts s with pattern-defeating quicksort: insertion sort below a
// small cutoff, heapsort once too many unbalanced pivots are seen, and
// special handling for already-sorted and many-duplicate inputs. Not
// stable.
func PDQ[E any](s span.T[E]) { PDQRange(s, 0, s.Len()) }

// PDQRange sorts s[a:b].
func PDQRange[E any](s span.T[E], a, b int) {
	pdqsort(s, a, b, bits.Len(uint(b-a)), a)
}

type sortedHint int // hint for pdqsort when choosing the pivot

const (
	unknownHint sortedHint = iota
	increasingHint
	decreasingHint
)

func nextPowerOfTwo(length int) uint {
	shift := uint(bits.Len(uint(length)))
	return uint(1 << shift)
}

// pdqsort sorts s[a:b].
// The algorithm based on pattern-defeating quicksort(pdqsort), but without the optimizations from BlockQuicksort.
// pdqsort paper: https://arxiv.org/pdf/2106.05123.pdf
// limit is the number of allowed bad (very unbalanced) pivots before falling back to heapsort.
// lo is the lower bound of the whole range being sorted; s[lo-1], if it
// exists, is outside the sort and must not be consulted or moved.
func pdqsort[E any](s span.T[E], a, b, limit, lo int) {
	const maxInsertion = 12

	var (
		wasBalanced    = true // whether the last partitioning was reasonably balanced
		wasPartitioned = true // whether the slice was already partitioned
	)

	for {
		length := b - a

		if length <= maxInsertion {
			insertion.Range(s, a, b)
			return
		}

		// Fall back to heapsort if too many bad choices were made.
		if limit == 0 {
			heap.Range(s, a, b)
			return
		}

		// If the last partitioning was imbalanced, we need to breaking patterns.
		if !wasBalanced {
			breakPatterns(s, a, b)
			limit--
		}

		pivot, hint := choosePivot(s, a, b)
		if hint == decreasingHint {
			reverseRange(s, a, b)
			// The chosen pivot was pivot-a elements after the start of the array.
			// After reversing it is pivot-a elements before the end of the array.
			pivot = (b - 1) - (pivot - a)
			hint = increasingHint
		}

		// The slice is likely already sorted.
		if wasBalanced && wasPartitioned && hint == increasingHint {
			if partialInsertionSort(s, a, b) {
				return
			}
		}

		// Probably the slice contains many duplicate elements, partition the slice into
		// elements equal to and elements greater than the pivot.
		if a > lo && !s.Less(a-1, pivot) {
			mid := partitionEqual(s, a, b, pivot)
			a = mid
			continue
		}

		mid, alreadyPartitioned := partition(s, a, b, pivot)
		wasPartitioned = alreadyPartitioned

		leftLen, rightLen := mid-a, b-mid
		balanceThreshold := length / 8
		if leftLen < rightLen {
			wasBalanced = leftLen >= balanceThreshold
			pdqsort(s, a, mid, limit, lo)
			a = mid + 1
		} else {
			wasBalanced = rightLen >= balanceThreshold
			pdqsort(s, mid+1, b, limit, lo)
			b = mid
		}
	}
}

// partition does one quicksort partition.
// Let p = s[pivot]
// Moves elements in s[a:b] around, so that s[i]<p and s[j]>=p for i<newpivot and j>newpivot.
// On return, s[newpivot] = p
func partition[E any](s span.T[E], a, b, pivot int) (newpivot int, alreadyPartitioned bool) {
	s.Swap(a, pivot)
	i, j := a+1, b-1 // i and j are inclusive of the elements remaining to be partitioned

	for i <= j && s.Less(i, a) {
		i++
	}
	for i <= j && !s.Less(j, a) {
		j--
	}
	if i > j {
		s.Swap(j, a)
		return j, true
	}
	s.Swap(i, j)
	i++
	j--

	for {
		for i <= j && s.Less(i, a) {
			i++
		}
		for i <= j && !s.Less(j, a) {
			j--
		}
		if i > j {
			break
		}
		s.Swap(i, j)
		i++
		j--
	}
	s.Swap(j, a)
	return j, false
}

// partitionEqual partitions s[a:b] into elements equal to s[pivot] followed by elements greater than s[pivot].
// It assumed that s[a:b] does not contain elements smaller than the s[pivot].
func partitionEqual[E any](s span.T[E], a, b, pivot int) (newpivot int) {
	s.Swap(a, pivot)
	i, j := a+1, b-1 // i and j are inclusive of the elements remaining to be partitioned

	for {
		for i <= j && !s.Less(a, i) {
			i++
		}
		for i <= j && s.Less(a, j) {
			j--
		}
		if i > j {
			break
		}
		s.Swap(i, j)
		i++
		j--
	}
	return i
}

// partialInsertionSort partially sorts a slice, returns true if the slice is sorted at the end.
func partialInsertionSort[E any](s span.T[E], a, b int) bool {
	const (
		maxSteps         = 5  // maximum number of adjacent out-of-order pairs that will get shifted
		shortestShifting = 50 // don't shift any elements on short arrays
	)
	i := a + 1
	for step := 0; step < maxSteps; step++ {
		for i < b && !s.Less(i, i-1) {
			i++
		}

		if i == b {
			return true
		}

		if b-a < shortestShifting {
			return false
		}

		s.Swap(i, i-1)

		// Shift the smaller one to the left.
		if i-a >= 2 {
			for j := i - 1; j > a; j-- {
				if !s.Less(j, j-1) {
					break
				}
				s.Swap(j, j-1)
			}
		}
		// Shift the greater one to the right.
		if b-i >= 2 {
			for j := i + 1; j < b; j++ {
				if !s.Less(j, j-1) {
					break
				}
				s.Swap(j, j-1)
			}
		}
	}
	return false
}

// breakPatterns scatters some elements around in an attempt to break some patterns
// that might cause imbalanced partitions in quicksort.
func breakPatterns[E any](s span.T[E], a, b int) {
	length := b - a
	if length >= 8 {
		random := mwc.Rand()
		modulus := nextPowerOfTwo(length)

		for idx := a + (length/4)*2 - 1; idx <= a+(length/4)*2+1; idx++ {
			other := int(uint(random.Uint64()) & (modulus - 1))
			if other >= length {
				other -= length
			}
			s.Swap(idx, a+other)
		}
	}
}

// choosePivot chooses a pivot in s[a:b].
//
// [0,8): chooses a static pivot.
// [8,shortestNinther): uses the simple median-of-three method.
// [shortestNinther,∞): uses the Tukey ninther method.
func choosePivot[E any](s span.T[E], a, b int) (pivot int, hint sortedHint) {
	const (
		shortestNinther = 50
		maxSwaps        = 4 * 3
	)

	l := b - a

	var (
		swaps int
		i     = a + l/4*1
		j     = a + l/4*2
		k     = a + l/4*3
	)

	if l >= 8 {
		if l >= shortestNinther {
			// Tukey ninther method.
			i = medianAdjacent(s, i, &swaps)
			j = medianAdjacent(s, j, &swaps)
			k = medianAdjacent(s, k, &swaps)
		}
		// Find the median among i, j, k and stores it into j.
		j = median(s, i, j, k, &swaps)
	}

	switch swaps {
	case 0:
		return j, increasingHint
	case maxSwaps:
		return j, decreasingHint
	default:
		return j, unknownHint
	}
}

// order2 returns x,y where s[x] <= s[y], where x,y=a,b or x,y=b,a.
func order2[E any](s span.T[E], a, b int, swaps *int) (int, int) {
	if s.Less(b, a) {
		*swaps++
		return b, a
	}
	return a, b
}

// median returns x where s[x] is the median of s[a],s[b],s[c], where x is a, b, or c.
func median[E any](s span.T[E], a, b, c int, swaps *int) int {
	a, b = order2(s, a, b, swaps)
	b, _ = order2(s, b, c, swaps)
	_, b = order2(s, a, b, swaps)
	return b
}

// medianAdjacent finds the median of s[a - 1], s[a], s[a + 1] and stores the index into a.
func medianAdjacent[E any](s span.T[E], a int, swaps *int) int {
	return median(s, a-1, a, a+1, swaps)
}

func reverseRange[E any](s span.T[E], a, b int) {
	i := a
	j := b - 1
	for i < j {
		s.Swap(i, j)
		i++
		j--
	}
}
