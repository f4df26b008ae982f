package stats

import (
	"sync"
	"testing"

	"github.com/zeebo/assert"
)

func TestRecord(t *testing.T) {
	var st T

	st.RecordReads(3)
	st.RecordWrites(2)
	st.RecordCompares(5)
	st.RecordSwaps(1)
	st.RecordReads(1)

	assert.Equal(t, uint64(4), st.IndexReads)
	assert.Equal(t, uint64(2), st.IndexWrites)
	assert.Equal(t, uint64(5), st.Compares)
	assert.Equal(t, uint64(1), st.Swaps)
	assert.Equal(t, uint64(12), st.Total())
}

func TestMerge(t *testing.T) {
	var a, b T
	a.RecordReads(1)
	a.RecordSwaps(2)
	b.RecordReads(10)
	b.RecordCompares(7)

	a.Merge(b)

	assert.Equal(t, uint64(11), a.IndexReads)
	assert.Equal(t, uint64(0), a.IndexWrites)
	assert.Equal(t, uint64(7), a.Compares)
	assert.Equal(t, uint64(2), a.Swaps)
}

func TestRecordSnapshot(t *testing.T) {
	var st T
	Record(&st, T{IndexReads: 1, IndexWrites: 2, Compares: 3, Swaps: 4})
	Record(&st, T{IndexReads: 1})

	assert.Equal(t, T{IndexReads: 2, IndexWrites: 2, Compares: 3, Swaps: 4}, st)
}

func TestDiscard(t *testing.T) {
	// must accept anything and keep nothing
	d := Discard{}
	d.RecordReads(100)
	d.RecordWrites(100)
	d.RecordCompares(100)
	d.RecordSwaps(100)
}

func TestAtomic(t *testing.T) {
	const (
		workers = 8
		rounds  = 1000
	)

	var a Atomic
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				a.RecordReads(2)
				a.RecordWrites(1)
				a.RecordCompares(1)
				a.RecordSwaps(1)
			}
		}()
	}
	wg.Wait()

	snap := a.Snapshot()
	assert.Equal(t, uint64(workers*rounds*2), snap.IndexReads)
	assert.Equal(t, uint64(workers*rounds), snap.IndexWrites)
	assert.Equal(t, uint64(workers*rounds), snap.Compares)
	assert.Equal(t, uint64(workers*rounds), snap.Swaps)
}
