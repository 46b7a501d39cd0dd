// Package adaptsort provides a stable, adaptive merge sort for Go slices
// and indexable collections.
//
// The sort scans its input once for ascending and descending runs, and
// then merges neighbouring runs pass by pass. Merges relink sorted
// intervals of a private working copy instead of moving elements, and
// find split points with exponential searches, so the number of
// comparisons grows with the disorder of the input: sorted and reverse
// sorted input takes linear time, and no input takes more than
// O(n log n).
//
// Adaptsort provides the following subpackages:
//
// adaptsort/sort provides the sorting functions, for slices of ordered
// types, for slices with a comparison function, and for any collection
// that implements sort.StableSorter.
//
// adaptsort/cmd/sortbench is a command that times the sort against the
// standard library's stable sort on inputs with various degrees of
// presortedness.
//
// The run-adaptive merge strategy follows natural merge sort; see
// Estivill-Castro and Wood, "A Survey of Adaptive Sorting Algorithms",
// ACM Computing Surveys 24(4), 1992, for background.
package adaptsort
