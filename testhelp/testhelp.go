package testhelp

import (
	"github.com/zeebo/mwc"
)

var (
	inputRng = mwc.Rand()
	mixRng   = mwc.Rand()
)

// Random returns n values drawn uniformly from [0, max).
func Random(n, max int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = int(inputRng.Uint64n(uint64(max)))
	}
	return xs
}

// Sorted returns 0..n-1 in order.
func Sorted(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}

// Reversed returns n-1..0.
func Reversed(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = n - 1 - i
	}
	return xs
}

// NearlySorted returns 0..n-1 with swaps random transpositions applied.
func NearlySorted(n, swaps int) []int {
	xs := Sorted(n)
	for s := 0; s < swaps; s++ {
		i := int(mixRng.Uint64n(uint64(n)))
		j := int(mixRng.Uint64n(uint64(n)))
		xs[i], xs[j] = xs[j], xs[i]
	}
	return xs
}

// AllEqual returns n copies of v.
func AllEqual(n, v int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = v
	}
	return xs
}
