package sort

import (
	"math/rand"
	stdsort "sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intEngine(buf []int) *engine {
	return sliceEngine(buf, func(a, b int) bool { return a < b })
}

// runs returns the buffer ranges of the runs in e.queue, in queue order,
// without consuming the queue.
func runs(e *engine) [][2]int {
	var result [][2]int
	for k := 0; k < e.queue.len(); k++ {
		r := e.queue.runs[(e.queue.head+k)&e.queue.mask]
		result = append(result, [2]int{e.arena[r.first].from, e.arena[r.first].to})
	}
	return result
}

func collect(e *engine, buf []int, r run) []int {
	var result []int
	e.arena.each(r, func(iv interval) {
		result = append(result, buf[iv.from:iv.to+1]...)
	})
	return result
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		buf  []int
		runs [][2]int
	}{
		{"Pair", []int{2, 1}, []int{1, 2}, [][2]int{{0, 1}}},
		{"Ascending", []int{1, 2, 2, 3, 9}, []int{1, 2, 2, 3, 9}, [][2]int{{0, 4}}},
		{"Descending", []int{9, 7, 5, 3, 1}, []int{1, 3, 5, 7, 9}, [][2]int{{0, 4}}},
		{"TwoAscending", []int{2, 4, 5, 1, 3, 4}, []int{2, 4, 5, 1, 3, 4}, [][2]int{{0, 2}, {3, 5}}},
		{"DescendingPairs", []int{5, 3, 1, 4, 2}, []int{1, 3, 5, 2, 4}, [][2]int{{0, 2}, {3, 4}}},
		{"DescendingThenDescending", []int{3, 2, 1, 6, 5, 4}, []int{1, 2, 3, 4, 5, 6}, [][2]int{{0, 5}}},
		{"DescendingThenAscending", []int{3, 2, 1, 4, 5}, []int{1, 2, 3, 4, 5}, [][2]int{{0, 4}}},
		{"AscendingThenDescending", []int{1, 3, 8, 7, 6, 5}, []int{1, 3, 8, 5, 6, 7}, [][2]int{{0, 2}, {3, 5}}},
		{"TrailingSingle", []int{1, 2, 0}, []int{1, 2, 0}, [][2]int{{0, 1}, {2, 2}}},
		{"TrailingJoined", []int{2, 1, 3}, []int{1, 2, 3}, [][2]int{{0, 2}}},
		{"EqualNotReversed", []int{2, 2, 1, 1}, []int{2, 2, 1, 1}, [][2]int{{0, 1}, {2, 3}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := append([]int(nil), c.in...)
			e := intEngine(buf)
			e.detect(len(buf))
			assert.Equal(t, c.buf, buf)
			assert.Equal(t, c.runs, runs(e))
		})
	}
}

func TestDetectCoversBuffer(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 2; n < 200; n++ {
		buf := make([]int, n)
		for i := range buf {
			buf[i] = r.Intn(5)
		}
		e := intEngine(buf)
		e.detect(n)
		next := 0
		for _, rg := range runs(e) {
			require.Equal(t, next, rg[0], "n=%d", n)
			require.True(t, IntsAreSorted(buf[rg[0]:rg[1]+1]), "n=%d run %v", n, rg)
			next = rg[1] + 1
		}
		require.Equal(t, n, next)
		require.LessOrEqual(t, e.queue.len(), n/2+1)
	}
}

func TestMerge(t *testing.T) {
	buf := []int{1, 3, 5, 2, 4}
	e := intEngine(buf)
	e.arena = newIntervals(len(buf))
	m := e.merge(e.arena.newRun(0, 2), e.arena.newRun(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(e, buf, m))
	assert.Equal(t, 1, e.merges)
	assert.Equal(t, 3, e.splits)
	assert.Equal(t, nilInterval, e.arena[m.first].prev)
	assert.Equal(t, nilInterval, e.arena[m.last].next)
}

func TestMergeAppendsWholeIntervals(t *testing.T) {
	buf := []int{1, 2, 3, 3, 4, 5}
	e := intEngine(buf)
	e.arena = newIntervals(len(buf))
	m := e.merge(e.arena.newRun(0, 3), e.arena.newRun(4, 5))
	assert.Equal(t, buf, collect(e, buf, m))
	assert.Equal(t, 0, e.splits)

	// b entirely before a
	buf = []int{7, 8, 9, 1, 2}
	e = intEngine(buf)
	e.arena = newIntervals(len(buf))
	m = e.merge(e.arena.newRun(0, 2), e.arena.newRun(3, 4))
	assert.Equal(t, []int{1, 2, 7, 8, 9}, collect(e, buf, m))
	assert.Equal(t, 0, e.splits)
}

func TestMergeStable(t *testing.T) {
	type item struct{ key, tag int }
	buf := []item{{1, 0}, {2, 1}, {2, 2}, {3, 3}, {2, 4}, {2, 5}, {3, 6}}
	e := sliceEngine(buf, func(a, b item) bool { return a.key < b.key })
	e.arena = newIntervals(len(buf))
	m := e.merge(e.arena.newRun(0, 3), e.arena.newRun(4, 6))
	var tags []int
	e.arena.each(m, func(iv interval) {
		for i := iv.from; i <= iv.to; i++ {
			tags = append(tags, buf[i].tag)
		}
	})
	assert.Equal(t, []int{0, 1, 2, 4, 5, 3, 6}, tags)
}

func TestPresortedInputDoesNotMerge(t *testing.T) {
	for _, n := range []int{2, 3, 10, 1001} {
		asc := make([]int, n)
		desc := make([]int, n)
		for i := range asc {
			asc[i] = i
			desc[i] = n - i
		}
		for _, buf := range [][]int{asc, desc} {
			e := intEngine(buf)
			var out []int
			e.sort(n, func(i, j, k int) {
				require.Equal(t, len(out), i)
				out = append(out, buf[j:j+k]...)
			})
			assert.Equal(t, 0, e.merges, "n=%d", n)
			assert.Equal(t, 0, e.splits, "n=%d", n)
			assert.True(t, IntsAreSorted(out))
			assert.Len(t, out, n)
		}
	}
}

func TestDrainMergesAdjacentRuns(t *testing.T) {
	// Six runs: in the second pass the third run has no partner.
	buf := []int{9, 10, 7, 8, 5, 6, 3, 4, 1, 2, 0}
	e := intEngine(buf)
	e.detect(len(buf))
	require.Equal(t, 6, e.queue.len())
	r := e.drain()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, collect(e, buf, r))
	assert.Equal(t, 5, e.merges)
	assert.Equal(t, 0, e.queue.len())
}

func TestGallop(t *testing.T) {
	buf := []int{1, 2, 2, 2, 3, 5, 8, 9, 2, 0, 10, 8}
	e := intEngine(buf)
	assert.Equal(t, 1, e.gallopLower(0, 8, 8))
	assert.Equal(t, 4, e.gallopUpper(0, 8, 8))
	assert.Equal(t, 0, e.gallopLower(0, 8, 9))
	assert.Equal(t, 0, e.gallopUpper(0, 8, 9))
	assert.Equal(t, 8, e.gallopLower(0, 8, 10))
	assert.Equal(t, 8, e.gallopUpper(0, 8, 10))
	assert.Equal(t, 6, e.gallopLower(0, 8, 11))
	assert.Equal(t, 7, e.gallopUpper(0, 8, 11))
	assert.Equal(t, 6, e.gallopLower(5, 8, 11))
}

func TestGallopMatchesBinarySearch(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for m := 1; m < 100; m++ {
		buf := make([]int, m+1)
		for i := 0; i < m; i++ {
			buf[i] = r.Intn(m)
		}
		stdsort.Ints(buf[:m])
		e := intEngine(buf)
		for probe := -1; probe <= m; probe++ {
			buf[m] = probe
			lo := r.Intn(m)
			require.Equal(t, lo+stdsort.SearchInts(buf[lo:m], probe), e.gallopLower(lo, m, m))
			require.Equal(t, lo+stdsort.SearchInts(buf[lo:m], probe+1), e.gallopUpper(lo, m, m))
		}
	}
}

func TestRunQueue(t *testing.T) {
	q := newRunQueue(3)
	assert.Len(t, q.runs, 4)
	assert.Equal(t, 0, q.len())

	for i := 0; i < 4; i++ {
		q.enqueue(run{first: i, last: i})
	}
	assert.Panics(t, func() { q.enqueue(run{}) })
	assert.Equal(t, run{0, 0}, q.dequeue())
	assert.Equal(t, run{1, 1}, q.dequeue())

	// wrap around
	q.enqueue(run{4, 4})
	q.enqueue(run{5, 5})
	assert.Equal(t, 4, q.len())
	for i := 2; i < 6; i++ {
		assert.Equal(t, run{i, i}, q.dequeue())
	}
	assert.Panics(t, func() { q.dequeue() })
}

func TestRunQueueExtendLast(t *testing.T) {
	a := newIntervals(10)
	q := newRunQueue(2)
	q.enqueue(a.newRun(0, 1))
	q.enqueue(a.newRun(2, 4))
	q.extendLast(a, 3)
	assert.Equal(t, interval{from: 2, to: 7, prev: nilInterval, next: nilInterval}, a[1])
	assert.Equal(t, 2, a[0].len())

	// The last run is found across the wrap-around of the ring buffer.
	q.dequeue()
	q.enqueue(a.newRun(8, 8))
	q.extendLast(a, 1)
	assert.Equal(t, 9, a[2].to)
}

func TestChain(t *testing.T) {
	a := newIntervals(4)
	x := a.newInterval(0, 0)
	y := a.newInterval(1, 2)
	z := a.newInterval(3, 3)
	c := newChain()
	c.push(a, y)
	c.push(a, x)
	r := c.spliceRest(a, z, z)
	assert.Equal(t, run{first: y, last: z}, r)
	var got []interval
	a.each(r, func(iv interval) { got = append(got, iv) })
	require.Len(t, got, 3)
	assert.Equal(t, [2]int{1, 2}, [2]int{got[0].from, got[0].to})
	assert.Equal(t, [2]int{0, 0}, [2]int{got[1].from, got[1].to})
	assert.Equal(t, x, a[z].prev)
	assert.Equal(t, y, a[x].prev)
}
