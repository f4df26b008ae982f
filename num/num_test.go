package num

import (
	"math"
	"testing"

	"github.com/zeebo/assert"

	"github.com/sortkit/sortkit/span"
	"github.com/sortkit/sortkit/stats"
)

func TestMinMax(t *testing.T) {
	var st stats.T
	s := span.Of([]int{3, -7, 12, 0}, &st)

	min, max, err := MinMax(s, 0, 4)
	assert.NoError(t, err)
	assert.Equal(t, -7, min)
	assert.Equal(t, 12, max)
	assert.Equal(t, uint64(4), st.IndexReads)

	min, max, err = MinMax(s, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 12, min)
	assert.Equal(t, 12, max)

	_, _, err = MinMax(s, 1, 1)
	assert.That(t, err != nil)
}

func TestSpread(t *testing.T) {
	assert.Equal(t, uint64(10), Spread(-5, 5))
	assert.Equal(t, uint64(math.MaxUint64), Spread(math.MinInt64, math.MaxInt64))
	assert.Equal(t, uint64(255), Spread(int8(math.MinInt8), int8(math.MaxInt8)))
	assert.Equal(t, uint64(0), Spread(uint16(9), uint16(9)))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 5, Offset(-5, 10))
	assert.Equal(t, int8(math.MaxInt8), Offset(int8(math.MinInt8), 255))
	assert.Equal(t, uint8(3), Offset(uint8(1), 2))
}
