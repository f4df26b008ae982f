package quick

import "github.com/sortkit/sortkit/span"

// DualPivot sorts s with Yaroslavskiy dual-pivot quicksort: two cached
// pivots split each range into three partitions. Not stable.
func DualPivot[E any](s span.T[E]) { DualPivotRange(s, 0, s.Len()) }

// DualPivotRange sorts s[a:b].
func DualPivotRange[E any](s span.T[E], a, b int) {
	if b-a < 2 {
		return
	}
	dualPivot(s, a, b-1)
}

// dualPivot sorts s[lo:hi] inclusive.
func dualPivot[E any](s span.T[E], lo, hi int) {
	if hi <= lo {
		return
	}

	if s.Compare(lo, hi) > 0 {
		s.Swap(lo, hi)
	}
	p := s.Read(lo)
	q := s.Read(hi)

	l, g := lo+1, hi-1
	for k := l; k <= g; k++ {
		if s.CompareValue(k, p) < 0 {
			s.Swap(k, l)
			l++
		} else if s.CompareValue(k, q) >= 0 {
			for k < g && s.CompareValue(g, q) > 0 {
				g--
			}
			s.Swap(k, g)
			g--
			if s.CompareValue(k, p) < 0 {
				s.Swap(k, l)
				l++
			}
		}
	}
	l--
	g++
	s.Swap(lo, l)
	s.Swap(hi, g)

	dualPivot(s, lo, l-1)
	dualPivot(s, l+1, g-1)
	dualPivot(s, g+1, hi)
}
