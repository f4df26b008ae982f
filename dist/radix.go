package dist

import (
	"math/bits"

	"github.com/sortkit/sortkit/num"
	"github.com/sortkit/sortkit/span"
)

// Radix sorts s with LSD radix sort over byte digits of the key's
// distance above the range minimum, so signed and unsigned keys need no
// separate handling. Stable.
func Radix[E num.T](s span.T[E]) error { return RadixRange(s, 0, s.Len()) }

// RadixRange sorts s[a:b]. Errors without allocating when the key range
// exceeds MaxKeyRange.
func RadixRange[E num.T](s span.T[E], a, b int) error {
	n := b - a
	if n < 2 {
		return nil
	}
	min, spread, err := keyRange(s, a, b)
	if err != nil {
		return err
	}

	passes := (bits.Len64(spread) + 7) / 8
	tmp := make([]E, n)
	var counts [256]int

	for p := 0; p < passes; p++ {
		shift := uint(8 * p)

		clear(counts[:])
		for i := a; i < b; i++ {
			counts[byte(num.Spread(min, s.Read(i))>>shift)]++
		}

		total := 0
		for d := range counts {
			counts[d], total = total, total+counts[d]
		}

		for i := a; i < b; i++ {
			v := s.Read(i)
			d := byte(num.Spread(min, v) >> shift)
			tmp[counts[d]] = v
			counts[d]++
		}

		for k, v := range tmp {
			s.Write(a+k, v)
		}
	}
	return nil
}
