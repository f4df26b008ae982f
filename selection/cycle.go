package selection

import "github.com/sortkit/sortkit/span"

// Cycle sorts s with cycle sort, which minimizes index writes by rotating
// each permutation cycle into place directly. Not stable.
func Cycle[E any](s span.T[E]) { CycleRange(s, 0, s.Len()) }

// CycleRange sorts s[a:b].
func CycleRange[E any](s span.T[E], a, b int) {
	for start := a; start < b-1; start++ {
		v := s.Read(start)

		// the element already sits in its slot, including every
		// element of an all-equal run
		pos := rankOf(s, start, b, v)
		if pos == start {
			continue
		}

		pos = skipEqual(s, pos, b, v)
		v = displace(s, pos, v)

		for pos != start {
			pos = rankOf(s, start, b, v)
			pos = skipEqual(s, pos, b, v)
			v = displace(s, pos, v)
		}
	}
}

// rankOf returns start plus the number of elements of s[start+1:b]
// strictly below v: the first slot of v's run in the sorted range.
func rankOf[E any](s span.T[E], start, b int, v E) int {
	pos := start
	for i := start + 1; i < b; i++ {
		if s.CompareValue(i, v) < 0 {
			pos++
		}
	}
	return pos
}

// skipEqual advances pos past duplicates of v already sitting in the
// run's slots, never leaving [start, b).
func skipEqual[E any](s span.T[E], pos, b int, v E) int {
	for pos < b-1 && s.CompareValue(pos, v) == 0 {
		pos++
	}
	return pos
}

func displace[E any](s span.T[E], pos int, v E) E {
	old := s.Read(pos)
	s.Write(pos, v)
	return old
}
