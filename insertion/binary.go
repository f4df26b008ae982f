package insertion

import "github.com/sortkit/sortkit/span"

// Binary sorts s with binary insertion sort: the insertion point is
// located by binary search, so comparisons drop to O(n log n) while the
// element moves stay O(n²). Stable.
func Binary[E any](s span.T[E]) { BinaryRange(s, 0, s.Len()) }

// BinaryRange sorts s[a:b].
func BinaryRange[E any](s span.T[E], a, b int) {
	for i := a + 1; i < b; i++ {
		v := s.Read(i)

		// upper bound of v in s[a:i] keeps equal elements in input order
		lo, hi := a, i
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			if s.CompareValue(mid, v) <= 0 {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo == i {
			continue
		}

		for j := i; j > lo; j-- {
			s.Write(j, s.Read(j-1))
		}
		s.Write(lo, v)
	}
}
