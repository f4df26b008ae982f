package merge

import (
	"cmp"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
)

// Sort sorts s with top-down merge sort. Stable. The scratch buffer is a
// span sharing the recorder, so its reads and writes accumulate into the
// same context as the main view.
func Sort[E any](s span.T[E]) { Range(s, 0, s.Len()) }

// Range sorts s[a:b].
func Range[E any](s span.T[E], a, b int) {
	if b-a < 2 {
		return
	}
	tmp := s.Scratch((b - a + 1) / 2)
	topDown(s, a, b, tmp)
}

func topDown[E any](s span.T[E], a, b int, tmp span.T[E]) {
	if b-a < 2 {
		return
	}
	m := a + (b-a)/2
	topDown(s, a, m, tmp)
	topDown(s, m, b, tmp)
	halves(s, a, m, b, tmp)
}

// halves merges the sorted runs s[a:m] and s[m:b] in place, staging the
// left run in tmp with one bulk copy. Ties take the left run, which is
// what makes the sort stable.
func halves[E any](s span.T[E], a, m, b int, tmp span.T[E]) {
	left := m - a
	s.CopyTo(a, tmp, 0, left)

	i, j, k := 0, m, a
	for i < left && j < b {
		v := s.Read(j)
		if tmp.CompareValue(i, v) <= 0 {
			s.Write(k, tmp.Read(i))
			i++
		} else {
			s.Write(k, v)
			j++
		}
		k++
	}
	if i < left {
		tmp.CopyTo(i, s, k, left-i)
	}
}

// Slice sorts x by the natural ordering of E, charging into rec.
func Slice[S ~[]E, E cmp.Ordered](x S, rec stats.Recorder) {
	Sort(span.Of(x, rec))
}
