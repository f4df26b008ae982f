package num

import (
	"github.com/zeebo/errs/v2"

	"github.com/sortkit/sortkit/span"
)

// T is the key type-set accepted by the distribution sorts.
type T interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MinMax scans s[a:b] for the smallest and largest keys, reading each
// element through the span exactly once. Errors on an empty range.
func MinMax[E T](s span.T[E], a, b int) (min, max E, err error) {
	if b-a < 1 {
		return 0, 0, errs.Errorf("min/max of empty range [%d, %d)", a, b)
	}
	min = s.Read(a)
	max = min
	for i := a + 1; i < b; i++ {
		v := s.Read(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, nil
}

// Spread returns max-min as a uint64. Two's complement wraparound makes
// this exact for every key type, including signed extremes.
func Spread[E T](min, max E) uint64 {
	return uint64(max) - uint64(min)
}

// Offset reconstructs the key at distance d above min.
func Offset[E T](min E, d uint64) E {
	return E(uint64(min) + d)
}
