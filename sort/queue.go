package sort

import "github.com/exascience/adaptsort/internal"

// runQueue is a FIFO of runs on top of a ring buffer. The capacity is a
// power of two, so that positions wrap with a bit mask instead of a
// modulo. The queue never grows: it must be created with room for the
// largest number of runs it will ever hold.
type runQueue struct {
	runs       []run
	mask       int
	head, tail int
	size       int
}

// newRunQueue returns an empty queue that can hold at least capacity
// runs.
func newRunQueue(capacity int) *runQueue {
	capacity = internal.CeilPowerOfTwo(capacity)
	return &runQueue{
		runs: make([]run, capacity),
		mask: capacity - 1,
	}
}

func (q *runQueue) len() int {
	return q.size
}

func (q *runQueue) enqueue(r run) {
	if q.size == len(q.runs) {
		panic("run queue overflow")
	}
	q.runs[q.tail] = r
	q.tail = (q.tail + 1) & q.mask
	q.size++
}

func (q *runQueue) dequeue() run {
	if q.size == 0 {
		panic("run queue underflow")
	}
	r := q.runs[q.head]
	q.head = (q.head + 1) & q.mask
	q.size--
	return r
}

// extendLast grows the leading interval of the most recently enqueued
// run by n elements. It is only valid while that run still consists of
// a single interval whose upper end is the end of the scanned prefix.
func (q *runQueue) extendLast(a intervals, n int) {
	r := q.runs[(q.tail-1)&q.mask]
	a[r.first].to += n
}
