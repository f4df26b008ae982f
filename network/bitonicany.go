package network

import "github.com/sortkit/sortkit/span"

// BitonicAny sorts s with the arbitrary-length bitonic variant: merges
// step over the greatest power of two below the range length instead of
// requiring the input to be padded. Sequential. Not stable.
func BitonicAny[E any](s span.T[E]) { BitonicAnyRange(s, 0, s.Len()) }

// BitonicAnyRange sorts s[a:b].
func BitonicAnyRange[E any](s span.T[E], a, b int) {
	bitonicAny(s, a, b-a, true)
}

func bitonicAny[E any](s span.T[E], lo, n int, up bool) {
	if n <= 1 {
		return
	}
	m := n / 2
	bitonicAny(s, lo, m, !up)
	bitonicAny(s, lo+m, n-m, up)
	bitonicAnyMerge(s, lo, n, up)
}

func bitonicAnyMerge[E any](s span.T[E], lo, n int, up bool) {
	if n <= 1 {
		return
	}
	m := greatestPowerOfTwoBelow(n)
	for i := lo; i < lo+n-m; i++ {
		compareExchange(s, i, i+m, up)
	}
	bitonicAnyMerge(s, lo, m, up)
	bitonicAnyMerge(s, lo+m, n-m, up)
}

func greatestPowerOfTwoBelow(n int) int {
	m := 1
	for m < n {
		m <<= 1
	}
	return m >> 1
}
