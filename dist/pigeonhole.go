package dist

import (
	"github.com/sortkit/sortkit/num"
	"github.com/sortkit/sortkit/span"
)

// Pigeonhole sorts s with pigeonhole sort: move every element into the
// hole for its key, then drain the holes in order. Unlike Counting it
// relocates the elements themselves rather than reconstructing them, so
// it is stable.
func Pigeonhole[E num.T](s span.T[E]) error { return PigeonholeRange(s, 0, s.Len()) }

// PigeonholeRange sorts s[a:b]. Errors without allocating when the key
// range exceeds MaxKeyRange.
func PigeonholeRange[E num.T](s span.T[E], a, b int) error {
	if b-a < 2 {
		return nil
	}
	min, spread, err := keyRange(s, a, b)
	if err != nil {
		return err
	}

	holes := make([][]E, spread+1)
	for i := a; i < b; i++ {
		v := s.Read(i)
		d := num.Spread(min, v)
		holes[d] = append(holes[d], v)
	}

	i := a
	for _, hole := range holes {
		for _, v := range hole {
			s.Write(i, v)
			i++
		}
	}
	return nil
}
