package sort

// nilInterval marks the absence of a neighbour in an interval chain.
const nilInterval = -1

// An interval is a non-empty, ascending block buf[from..to] (both
// inclusive) of the working buffer, linked into exactly one run at a
// time.
type interval struct {
	from, to   int
	prev, next int
}

func (iv interval) len() int {
	return iv.to - iv.from + 1
}

// A run is a chain of intervals whose concatenation, in chain order, is
// ascending. The intervals need not be adjacent in the working buffer.
type run struct {
	first, last int
}

// intervals is the arena that owns every interval of one sort call.
// Intervals are never freed: each one covers at least one buffer index
// and no two cover the same index, so the arena never grows beyond the
// buffer length.
type intervals []interval

func newIntervals(n int) intervals {
	return make(intervals, 0, n)
}

// newInterval appends a detached interval and returns its index.
func (a *intervals) newInterval(from, to int) int {
	*a = append(*a, interval{from: from, to: to, prev: nilInterval, next: nilInterval})
	return len(*a) - 1
}

// newRun creates a run that consists of the single interval from..to.
func (a *intervals) newRun(from, to int) run {
	i := a.newInterval(from, to)
	return run{first: i, last: i}
}

// chain collects the intervals of a run under construction.
type chain struct {
	head, tail int
}

func newChain() chain {
	return chain{head: nilInterval, tail: nilInterval}
}

// push appends interval i to the tail of the chain. The next link of i
// is left as is; it is overwritten by the following push or by spliceRest.
func (c *chain) push(a intervals, i int) {
	a[i].prev = c.tail
	if c.tail == nilInterval {
		c.head = i
	} else {
		a[c.tail].next = i
	}
	c.tail = i
}

// spliceRest appends the remainder of a run, starting at interval i and
// ending at last, and returns the completed run.
func (c *chain) spliceRest(a intervals, i, last int) run {
	c.push(a, i)
	return run{first: c.head, last: last}
}

// each calls f for every interval of r, in chain order.
func (a intervals) each(r run, f func(iv interval)) {
	for i := r.first; i != nilInterval; i = a[i].next {
		f(a[i])
		if i == r.last {
			return
		}
	}
}
