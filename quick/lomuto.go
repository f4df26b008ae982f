package quick

import "github.com/sortkit/sortkit/span"

// Lomuto sorts s with quicksort using the Lomuto partition scheme (pivot
// at the end of the range). Simpler than Hoare and quadratic on all-equal
// input; kept for its pedagogical operation-count profile. Not stable.
func Lomuto[E any](s span.T[E]) { LomutoRange(s, 0, s.Len()) }

// LomutoRange sorts s[a:b].
func LomutoRange[E any](s span.T[E], a, b int) {
	if b-a < 2 {
		return
	}
	p := lomuto(s, a, b)
	LomutoRange(s, a, p)
	LomutoRange(s, p+1, b)
}

func lomuto[E any](s span.T[E], a, b int) int {
	pivot := s.Read(b - 1)
	i := a
	for j := a; j < b-1; j++ {
		if s.CompareValue(j, pivot) < 0 {
			s.Swap(i, j)
			i++
		}
	}
	s.Swap(i, b-1)
	return i
}
