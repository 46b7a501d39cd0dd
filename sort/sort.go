/*
Package sort provides a stable, adaptive merge sort.

The sort detects ascending and descending runs that are already
present in the input and merges them, so that its cost depends on the
amount of disorder in the input rather than on its length alone.
Sorted and reverse sorted input is handled in linear time, and the
worst case is O(n log n) comparisons.

Slices of ordered types are sorted with Sort and SortRange, and slices
of any type with SortFunc and SortRangeFunc. Other indexable
collections can be sorted by implementing StableSorter.

All functions are sequential. They may be called concurrently on
distinct collections, but not on the same one.
*/
package sort

import "math"

/*
StableSorter is a type, typically a collection, that can be sorted by
Stable and StableRange in this package. The methods require that
ranges of elements of the collection can be enumerated by integer
indices.
*/
type StableSorter interface {
	// Len is the number of elements in the collection.
	Len() int

	// Less reports whether the element with index i should sort
	// before the element with index j.
	Less(i, j int) bool

	// Swap swaps the elements with indexes i and j.
	Swap(i, j int)

	// NewTemp creates a new collection that can hold as many elements
	// as the original collection. This is temporary memory needed by
	// Stable, but not needed anymore afterwards. The temporary
	// collection does not need to be initialized.
	NewTemp() StableSorter

	// Assign returns a function that assigns ranges from source to the
	// receiver collection. The element with index i is the first
	// element in the receiver to assign to, and the element with index
	// j is the first element in the source collection to assign from,
	// with len determining the number of elements to assign. The effect
	// should be the same as receiver[i:i+len] = source[j:j+len].
	Assign(source StableSorter) func(i, j, len int)
}

/*
IsSorted determines whether data is sorted in ascending order.
*/
func IsSorted(data StableSorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}

/*
IntSlice attaches the methods of StableSorter to []int, sorting in
increasing order.
*/
type IntSlice []int

func (s IntSlice) Len() int {
	return len(s)
}

func (s IntSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s IntSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// NewTemp implements the method of the StableSorter interface.
func (s IntSlice) NewTemp() StableSorter {
	return IntSlice(make([]int, len(s)))
}

// Assign implements the method of the StableSorter interface.
func (s IntSlice) Assign(source StableSorter) func(i, j, len int) {
	dst, src := s, source.(IntSlice)
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

/*
IntsAreSorted determines whether a slice of ints is sorted in
increasing order.
*/
func IntsAreSorted(a []int) bool {
	return IsSorted(IntSlice(a))
}

/*
Float64Slice attaches the methods of StableSorter to []float64,
sorting in increasing order, with not-a-number values ordered before
other values.
*/
type Float64Slice []float64

func (s Float64Slice) Len() int {
	return len(s)
}

func (s Float64Slice) Less(i, j int) bool {
	return s[i] < s[j] || (math.IsNaN(s[i]) && !math.IsNaN(s[j]))
}

func (s Float64Slice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// NewTemp implements the method of the StableSorter interface.
func (s Float64Slice) NewTemp() StableSorter {
	return Float64Slice(make([]float64, len(s)))
}

// Assign implements the method of the StableSorter interface.
func (s Float64Slice) Assign(source StableSorter) func(i, j, len int) {
	dst, src := s, source.(Float64Slice)
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

/*
Float64sAreSorted determines whether a slice of float64s is sorted in
increasing order.
*/
func Float64sAreSorted(a []float64) bool {
	return IsSorted(Float64Slice(a))
}

/*
StringSlice attaches the methods of StableSorter to []string, sorting
in increasing order.
*/
type StringSlice []string

func (s StringSlice) Len() int {
	return len(s)
}

func (s StringSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s StringSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// NewTemp implements the method of the StableSorter interface.
func (s StringSlice) NewTemp() StableSorter {
	return StringSlice(make([]string, len(s)))
}

// Assign implements the method of the StableSorter interface.
func (s StringSlice) Assign(source StableSorter) func(i, j, len int) {
	dst, src := s, source.(StringSlice)
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

/*
StringsAreSorted determines whether a slice of strings is sorted in
increasing order.
*/
func StringsAreSorted(a []string) bool {
	return IsSorted(StringSlice(a))
}
