// Package dist holds the distribution sorts: counting, pigeonhole,
// radix, and bucket sort over integer keys. The sorts that allocate a
// slot per distinct key refuse key ranges wider than MaxKeyRange before
// any buffer is allocated.
package dist

import (
	"github.com/zeebo/errs/v2"

	"github.com/sortkit/sortkit/num"
	"github.com/sortkit/sortkit/span"
)

// MaxKeyRange bounds max-min for the keyed sorts, so one malformed call
// cannot demand an unbounded temporary buffer.
const MaxKeyRange = 10_000_000

// keyRange scans s[a:b] and rejects spreads over MaxKeyRange.
func keyRange[E num.T](s span.T[E], a, b int) (min E, spread uint64, err error) {
	min, max, err := num.MinMax(s, a, b)
	if err != nil {
		return 0, 0, err
	}
	spread = num.Spread(min, max)
	if spread > MaxKeyRange {
		return 0, 0, errs.Errorf("key range %d exceeds %d", spread, uint64(MaxKeyRange))
	}
	return min, spread, nil
}
