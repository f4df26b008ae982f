package exchange

import "github.com/sortkit/sortkit/span"

// Gnome sorts s with gnome sort: a single position walking forward,
// backing up while the pair behind it is out of order. Stable.
func Gnome[E any](s span.T[E]) { GnomeRange(s, 0, s.Len()) }

// GnomeRange sorts s[a:b].
func GnomeRange[E any](s span.T[E], a, b int) {
	for i := a + 1; i < b; {
		if i == a || !s.Less(i, i-1) {
			i++
		} else {
			s.Swap(i, i-1)
			i--
		}
	}
}
