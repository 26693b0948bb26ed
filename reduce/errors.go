package reduce

import (
	"errors"

	"github.com/cwbudde/algo-colsum/column"
)

var (
	// ErrShapeMismatch reports group-index or weight vectors whose length
	// disagrees with the values.
	ErrShapeMismatch = errors.New("length mismatch")

	// ErrUnsupportedType reports values or weights that are not numeric.
	ErrUnsupportedType = column.ErrUnsupportedKind

	// ErrIntegerOverflow reports a grouped integer sum outside
	// [-2147483647, 2147483647].
	ErrIntegerOverflow = errors.New("integer overflow in one or more groups: group sums must lie in [-2147483647, 2147483647]")
)
