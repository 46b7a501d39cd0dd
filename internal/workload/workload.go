// Package workload generates integer inputs with a known amount of
// presortedness, for tests, benchmarks and the sortbench command.
package workload

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// A Pattern describes the shape of a generated input.
type Pattern int

const (
	// Random is uniformly distributed over a range much larger than n.
	Random Pattern = iota
	// Sorted is ascending with duplicates.
	Sorted
	// Reversed is strictly descending.
	Reversed
	// Sawtooth consists of about sqrt(n) ascending runs.
	Sawtooth
	// OrganPipe ascends to the middle and descends from there.
	OrganPipe
	// Noisy is ascending with about 1% of the elements displaced.
	Noisy
	// FewUnique draws from only eight distinct values.
	FewUnique
)

// Patterns lists every Pattern.
var Patterns = []Pattern{Random, Sorted, Reversed, Sawtooth, OrganPipe, Noisy, FewUnique}

var names = [...]string{"random", "sorted", "reversed", "sawtooth", "organpipe", "noisy", "fewunique"}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(names) {
		return "unknown"
	}
	return names[p]
}

// ErrUnknownPattern is returned by ParsePattern for unknown names.
var ErrUnknownPattern = errors.New("workload: unknown pattern")

// ParsePattern returns the Pattern with the given name, ignoring case.
func ParsePattern(name string) (Pattern, error) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return Pattern(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownPattern, "%q", name)
}

// Ints returns n ints of pattern p, drawing randomness from r.
func Ints(p Pattern, n int, r *rand.Rand) []int {
	result := make([]int, n)
	switch p {
	case Random:
		for i := range result {
			result[i] = r.Intn(100*n + 1)
		}
	case Sorted:
		for i := range result {
			result[i] = i / 2
		}
	case Reversed:
		for i := range result {
			result[i] = n - i
		}
	case Sawtooth:
		width := 1
		for width*width < n {
			width++
		}
		for i := range result {
			result[i] = (i % width) * 3
		}
	case OrganPipe:
		for i := range result {
			if i < n/2 {
				result[i] = i
			} else {
				result[i] = n - i
			}
		}
	case Noisy:
		for i := range result {
			result[i] = i
		}
		for k := n / 100; k > 0; k-- {
			i, j := r.Intn(n), r.Intn(n)
			result[i], result[j] = result[j], result[i]
		}
	case FewUnique:
		for i := range result {
			result[i] = r.Intn(8)
		}
	default:
		panic(errors.Wrapf(ErrUnknownPattern, "%d", int(p)))
	}
	return result
}
