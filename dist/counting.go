package dist

import (
	"github.com/sortkit/sortkit/num"
	"github.com/sortkit/sortkit/span"
)

// Counting sorts s with counting sort: tally each key, then rebuild the
// range by reconstructing values from the tallies. Equal elements are
// indistinguishable after reconstruction, so this suits elements that
// carry nothing beyond their integer value; Pigeonhole relocates the
// elements themselves. O(n + max-min).
func Counting[E num.T](s span.T[E]) error { return CountingRange(s, 0, s.Len()) }

// CountingRange sorts s[a:b]. Errors without allocating when the key
// range exceeds MaxKeyRange.
func CountingRange[E num.T](s span.T[E], a, b int) error {
	if b-a < 2 {
		return nil
	}
	min, spread, err := keyRange(s, a, b)
	if err != nil {
		return err
	}

	counts := make([]int, spread+1)
	for i := a; i < b; i++ {
		counts[num.Spread(min, s.Read(i))]++
	}

	i := a
	for d, c := range counts {
		for ; c > 0; c-- {
			s.Write(i, num.Offset(min, uint64(d)))
			i++
		}
	}
	return nil
}
