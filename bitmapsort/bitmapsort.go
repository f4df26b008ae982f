// Package bitmapsort sorts small unsigned keys through a compressed
// bitmap: every key is added to a roaring bitmap, whose ascending
// iteration order rebuilds the range sorted, with a side table carrying
// duplicate multiplicities.
package bitmapsort

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/sortkit/sortkit/span"
)

// Key is the key type-set the bitmap can hold.
type Key interface {
	~uint8 | ~uint16 | ~uint32
}

// Sort sorts s. The bitmap is compressed, so arbitrarily wide key ranges
// cost no more than the number of distinct keys.
func Sort[E Key](s span.T[E]) { Range(s, 0, s.Len()) }

// Range sorts s[a:b].
func Range[E Key](s span.T[E], a, b int) {
	if b-a < 2 {
		return
	}

	bm := roaring.New()
	counts := make(map[uint32]int, b-a)
	for i := a; i < b; i++ {
		k := uint32(s.Read(i))
		bm.Add(k)
		counts[k]++
	}

	i := a
	it := bm.Iterator()
	for it.HasNext() {
		k := it.Next()
		for c := counts[k]; c > 0; c-- {
			s.Write(i, E(k))
			i++
		}
	}
}
