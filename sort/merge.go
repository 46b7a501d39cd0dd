package sort

// merge combines two runs into one ascending run. a must precede b in
// the original order: on ties, elements of a come first. Only interval
// metadata is touched; the working buffer is left as is.
func (e *engine) merge(a, b run) run {
	e.merges++
	out := newChain()
	i, j := a.first, b.first
	for i != nilInterval && j != nilInterval {
		ivA, ivB := e.arena[i], e.arena[j]
		if !e.less(ivB.from, ivA.from) {
			if !e.less(ivB.from, ivA.to) {
				// The whole interval of a goes before the head of b.
				next := ivA.next
				out.push(e.arena, i)
				i = next
				continue
			}
			// Peel off the elements of a that are <= the head of b.
			k := e.gallopUpper(ivA.from, ivA.to+1, ivB.from)
			peeled := e.arena.newInterval(ivA.from, k-1)
			out.push(e.arena, peeled)
			e.arena[i].from = k
		} else {
			if e.less(ivB.to, ivA.from) {
				next := ivB.next
				out.push(e.arena, j)
				j = next
				continue
			}
			// Peel off the elements of b that are < the head of a.
			k := e.gallopLower(ivB.from, ivB.to+1, ivA.from)
			peeled := e.arena.newInterval(ivB.from, k-1)
			out.push(e.arena, peeled)
			e.arena[j].from = k
		}
		e.splits++
	}
	if i != nilInterval {
		return out.spliceRest(e.arena, i, a.last)
	}
	return out.spliceRest(e.arena, j, b.last)
}

// gallopLower returns the smallest index k in [lo, hi) such that
// buf[k] is not less than buf[x], or hi if there is none. The range must
// be ascending.
//
// The search first doubles an offset from lo until it passes the
// answer, and then searches the last doubling step with a binary search.
// The cost is logarithmic in the distance of the answer from lo instead
// of in the length of the range.
func (e *engine) gallopLower(lo, hi, x int) int {
	bound := 1
	for bound < hi-lo && e.less(lo+bound, x) {
		bound <<= 1
	}
	return e.lowerBound(lo+bound/2, min(hi, lo+bound), x)
}

// gallopUpper returns the smallest index k in [lo, hi) such that buf[k]
// is greater than buf[x], or hi if there is none.
func (e *engine) gallopUpper(lo, hi, x int) int {
	bound := 1
	for bound < hi-lo && !e.less(x, lo+bound) {
		bound <<= 1
	}
	return e.upperBound(lo+bound/2, min(hi, lo+bound), x)
}

func (e *engine) lowerBound(low, high, x int) int {
	for low < high {
		mid := int(uint(low+high) >> 1)
		if e.less(mid, x) {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}

func (e *engine) upperBound(low, high, x int) int {
	for low < high {
		mid := int(uint(low+high) >> 1)
		if e.less(x, mid) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}
