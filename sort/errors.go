package sort

import "github.com/pkg/errors"

var (
	// ErrNilInput indicates that the collection or the comparator to sort
	// with is nil.
	ErrNilInput = errors.New("sort: nil input")
	// ErrInvalidRange indicates a range with fromIndex > toIndex.
	ErrInvalidRange = errors.New("sort: invalid range")
	// ErrOutOfBounds indicates a range that does not lie within the
	// collection.
	ErrOutOfBounds = errors.New("sort: index out of bounds")
)

var (
	errNilData       = errors.Wrap(ErrNilInput, "data is nil")
	errNilComparator = errors.Wrap(ErrNilInput, "comparator is nil")
)

// checkRange validates the half-open range [fromIndex, toIndex) against a
// collection of the given length.
func checkRange(length, fromIndex, toIndex int) error {
	if fromIndex > toIndex {
		return errors.Wrapf(ErrInvalidRange, "fromIndex(%d) > toIndex(%d)", fromIndex, toIndex)
	}
	if fromIndex < 0 {
		return errors.Wrapf(ErrOutOfBounds, "fromIndex = %d", fromIndex)
	}
	if toIndex > length {
		return errors.Wrapf(ErrOutOfBounds, "toIndex = %d, length = %d", toIndex, length)
	}
	return nil
}
