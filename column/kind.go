package column

import (
	"errors"
	"fmt"
)

// Kind identifies the element type of a column.
type Kind int

const (
	// KindInt32 is a 32-bit signed integer column.
	KindInt32 Kind = iota
	// KindFloat64 is an IEEE 754 double precision column.
	KindFloat64
	// KindBool is a logical column, summed as integers (true = 1).
	KindBool
	// KindString is a character column. It cannot be summed.
	KindString
)

// ErrUnsupportedKind is returned when a column kind cannot take part in a
// numeric operation.
var ErrUnsupportedKind = errors.New("unsupported column type")

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Numeric reports whether columns of this kind can be summed.
func (k Kind) Numeric() bool {
	return k == KindInt32 || k == KindFloat64 || k == KindBool
}

// Column is the common read-only view over a typed column.
type Column interface {
	// Kind returns the element type.
	Kind() Kind
	// Len returns the number of elements.
	Len() int
	// Missing reports whether element i is absent.
	Missing(i int) bool
}
