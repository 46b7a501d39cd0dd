package sort

import "cmp"

// engine holds the state of one adaptive merge sort over a working
// buffer that is addressed only through less and swap.
type engine struct {
	less func(i, j int) bool
	swap func(i, j int)

	arena intervals
	queue *runQueue

	// merges and splits count merge calls and interval splits.
	merges, splits int
}

// sort sorts the n elements of the working buffer and hands the result
// to assign, one interval at a time: assign(i, j, len) must copy len
// elements of the working buffer starting at j to the destination
// starting at i, with i relative to the destination range.
func (e *engine) sort(n int, assign func(i, j, len int)) {
	if n < 2 {
		return
	}
	e.detect(n)
	e.writeBack(e.drain(), assign)
}

// drain merges the runs in the queue pairwise, pass by pass, until only
// one run is left, and returns that run. Runs are always taken from the
// head of the queue two at a time, so the two runs of a merge are
// neighbours in the original order, and results are appended at the
// tail in the same order.
func (e *engine) drain() run {
	// runsLeft is the number of runs not yet processed in the current pass.
	runsLeft := e.queue.len()
	for e.queue.len() > 1 {
		switch runsLeft {
		case 0:
			runsLeft = e.queue.len()
		case 1:
			// The last run of a pass has no partner: move it behind the
			// runs merged during this pass and start the next pass.
			e.queue.enqueue(e.queue.dequeue())
			runsLeft = e.queue.len()
		default:
			a := e.queue.dequeue()
			b := e.queue.dequeue()
			e.queue.enqueue(e.merge(a, b))
			runsLeft -= 2
		}
	}
	return e.queue.dequeue()
}

func (e *engine) writeBack(r run, assign func(i, j, len int)) {
	index := 0
	e.arena.each(r, func(iv interval) {
		assign(index, iv.from, iv.len())
		index += iv.len()
	})
}

func sliceEngine[E any](buf []E, less func(a, b E) bool) *engine {
	return &engine{
		less: func(i, j int) bool { return less(buf[i], buf[j]) },
		swap: func(i, j int) { buf[i], buf[j] = buf[j], buf[i] },
	}
}

func sortSlice[S ~[]E, E any](x S, fromIndex, toIndex int, less func(a, b E) bool) {
	n := toIndex - fromIndex
	if n < 2 {
		return
	}
	buf := make([]E, n)
	copy(buf, x[fromIndex:toIndex])
	dst := x[fromIndex:toIndex]
	sliceEngine(buf, less).sort(n, func(i, j, len int) {
		copy(dst[i:i+len], buf[j:j+len])
	})
}

/*
Sort sorts x in ascending order with an adaptive merge sort. The sort
is stable.

Sort first splits x into maximal monotonic runs, reversing descending
runs in place, and then merges neighbouring runs pass by pass. Merges
relink sorted intervals of a private copy of x instead of moving
elements, and split intervals with exponential searches, so that
presorted, reverse sorted and nearly sorted input is sorted with far
fewer comparisons than n log n. The worst case is O(n log n).

Floating-point NaNs are ordered before all other values.
*/
func Sort[S ~[]E, E cmp.Ordered](x S) {
	sortSlice(x, 0, len(x), cmp.Less[E])
}

/*
SortRange sorts the half-open range x[fromIndex:toIndex] like Sort and
leaves the elements outside of the range untouched. Ranges of length 0
or 1 are left as is.

SortRange returns an error wrapping ErrInvalidRange if fromIndex >
toIndex, or ErrOutOfBounds if fromIndex < 0 or toIndex > len(x). In
both cases x is not modified.
*/
func SortRange[S ~[]E, E cmp.Ordered](x S, fromIndex, toIndex int) error {
	if err := checkRange(len(x), fromIndex, toIndex); err != nil {
		return err
	}
	sortSlice(x, fromIndex, toIndex, cmp.Less[E])
	return nil
}

// SortFunc sorts x in ascending order as determined by cmp, which must
// implement a strict weak ordering and return a negative number when a <
// b, a positive number when a > b, and zero otherwise. The sort is
// stable. SortFunc returns an error wrapping ErrNilInput if cmp is nil.
func SortFunc[S ~[]E, E any](x S, cmp func(a, b E) int) error {
	return SortRangeFunc(x, 0, len(x), cmp)
}

// SortRangeFunc sorts x[fromIndex:toIndex] as determined by cmp. It
// reports the same errors as SortRange and SortFunc.
func SortRangeFunc[S ~[]E, E any](x S, fromIndex, toIndex int, cmp func(a, b E) int) error {
	if cmp == nil {
		return errNilComparator
	}
	if err := checkRange(len(x), fromIndex, toIndex); err != nil {
		return err
	}
	sortSlice(x, fromIndex, toIndex, func(a, b E) bool { return cmp(a, b) < 0 })
	return nil
}

// Stable sorts data with the same adaptive merge sort as Sort. It needs
// one temporary collection, obtained with data.NewTemp. Stable returns
// an error wrapping ErrNilInput if data is nil.
func Stable(data StableSorter) error {
	if data == nil {
		return errNilData
	}
	return StableRange(data, 0, data.Len())
}

// StableRange sorts the elements of data with indices in [i, j) and
// leaves all other elements untouched. It reports the same errors as
// SortRange, and returns an error wrapping ErrNilInput if data is nil.
func StableRange(data StableSorter, i, j int) error {
	if data == nil {
		return errNilData
	}
	if err := checkRange(data.Len(), i, j); err != nil {
		return err
	}
	n := j - i
	if n < 2 {
		return nil
	}
	temp := data.NewTemp()
	temp.Assign(data)(0, i, n)
	e := &engine{less: temp.Less, swap: temp.Swap}
	assign := data.Assign(temp)
	e.sort(n, func(k, l, len int) {
		assign(i+k, l, len)
	})
	return nil
}

// CountRuns returns the number of ascending runs that Sort starts with
// for x, after reversing descending runs and joining runs that continue
// each other. It is 1 for sorted and reverse sorted input, and grows
// with the disorder of x. x is not modified.
func CountRuns[S ~[]E, E cmp.Ordered](x S) int {
	return countRuns(x, cmp.Less[E])
}

// CountRunsFunc is like CountRuns, with the order determined by cmp.
func CountRunsFunc[S ~[]E, E any](x S, cmp func(a, b E) int) int {
	return countRuns(x, func(a, b E) bool { return cmp(a, b) < 0 })
}

func countRuns[S ~[]E, E any](x S, less func(a, b E) bool) int {
	if len(x) < 2 {
		return len(x)
	}
	buf := make([]E, len(x))
	copy(buf, x)
	e := sliceEngine(buf, less)
	e.detect(len(buf))
	return e.queue.len()
}
