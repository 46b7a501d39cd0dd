package internal

import (
	"fmt"
	"math/bits"
)

// MaxRuns is the largest number of runs a left-to-right run scan can produce
// over n elements: every run but the last covers at least two elements.
func MaxRuns(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("invalid length: %v", n))
	}
	return n/2 + 1
}

// CeilPowerOfTwo returns the smallest power of two that is >= n. For n <= 1
// the result is 1.
func CeilPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
