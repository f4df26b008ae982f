package dist

import (
	"github.com/sortkit/sortkit/insertion"
	"github.com/sortkit/sortkit/num"
	"github.com/sortkit/sortkit/span"
)

// bucketFill is the average bucket occupancy Bucket aims for. A tuning
// knob, not a semantic boundary.
const bucketFill = 8

// Bucket sorts s with bucket sort: scatter elements into evenly spaced
// key buckets, then insertion sort each bucket in place. Stable. The
// bucket count scales with the range length, so no key-range guard is
// needed.
func Bucket[E num.T](s span.T[E]) error { return BucketRange(s, 0, s.Len()) }

// BucketRange sorts s[a:b].
func BucketRange[E num.T](s span.T[E], a, b int) error {
	n := b - a
	if n < 2 {
		return nil
	}
	min, max, err := num.MinMax(s, a, b)
	if err != nil {
		return err
	}
	spread := num.Spread(min, max)
	if spread == 0 {
		return nil
	}

	// at least two buckets so the width computation cannot wrap even at
	// a full 64-bit spread
	nb := n/bucketFill + 1
	if nb < 2 {
		nb = 2
	}
	width := spread/uint64(nb) + 1
	buckets := make([][]E, nb)
	for i := a; i < b; i++ {
		v := s.Read(i)
		d := num.Spread(min, v) / width
		buckets[d] = append(buckets[d], v)
	}

	i := a
	for _, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		start := i
		for _, v := range bucket {
			s.Write(i, v)
			i++
		}
		insertion.Range(s, start, i)
	}
	return nil
}
