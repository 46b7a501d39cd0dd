package sort

import "github.com/exascience/adaptsort/internal"

// detect scans the n >= 2 elements of the working buffer once from left
// to right and fills e.queue with its monotonic runs, in order.
// Descending runs are strictly descending, so reversing them in place
// keeps the sort stable.
func (e *engine) detect(n int) {
	e.arena = newIntervals(n)
	e.queue = newRunQueue(internal.MaxRuns(n))

	last := n - 1
	left := 0
	// The pair straddling two runs is never compared during the scan.
	// After an ascending run it is known to be descending, so only a run
	// that follows a descending one may continue the run before it.
	prevDescending := false
	for left < last {
		head := left
		descending := e.less(left+1, left)
		left++
		if descending {
			for left < last && e.less(left+1, left) {
				left++
			}
			e.reverse(head, left)
		} else {
			for left < last && !e.less(left+1, left) {
				left++
			}
		}
		if prevDescending && !e.less(head, head-1) {
			e.queue.extendLast(e.arena, left-head+1)
		} else {
			e.queue.enqueue(e.arena.newRun(head, left))
		}
		prevDescending = descending
		left++
	}

	if left == last {
		// A single element is left over at the very end.
		if !e.less(last, last-1) {
			e.queue.extendLast(e.arena, 1)
		} else {
			e.queue.enqueue(e.arena.newRun(last, last))
		}
	}
}

func (e *engine) reverse(i, j int) {
	for ; i < j; i, j = i+1, j-1 {
		e.swap(i, j)
	}
}
