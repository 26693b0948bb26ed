package column

import (
	"fmt"
	"math"
)

// AsFloat64 returns c as a floating column. Integer and logical columns are
// converted with missing elements mapped to NaN; a Float64 column is returned
// unchanged.
func AsFloat64(c Column) (*Float64, error) {
	switch cc := c.(type) {
	case *Float64:
		return cc, nil
	case *Int32:
		out := make([]float64, len(cc.Values))
		nan := math.NaN()
		for i, v := range cc.Values {
			if cc.Validity.IsValid(i) {
				out[i] = float64(v)
			} else {
				out[i] = nan
			}
		}
		return &Float64{Values: out}, nil
	case *Bool:
		out := make([]float64, len(cc.Values))
		nan := math.NaN()
		for i, v := range cc.Values {
			switch {
			case !cc.Validity.IsValid(i):
				out[i] = nan
			case v:
				out[i] = 1
			}
		}
		return &Float64{Values: out}, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %s to float64", ErrUnsupportedKind, kindOf(c))
	}
}

// AsInt32 returns c as an integer column. Logical columns map true to 1 and
// share their validity bitmap; an Int32 column is returned unchanged.
func AsInt32(c Column) (*Int32, error) {
	switch cc := c.(type) {
	case *Int32:
		return cc, nil
	case *Bool:
		out := make([]int32, len(cc.Values))
		for i, v := range cc.Values {
			if v {
				out[i] = 1
			}
		}
		return &Int32{Values: out, Validity: cc.Validity}, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %s to int32", ErrUnsupportedKind, kindOf(c))
	}
}

// Slice returns the sub-column [lo, hi) of a numeric column.
func Slice(c Column, lo, hi int) (Column, error) {
	switch cc := c.(type) {
	case *Int32:
		return cc.Slice(lo, hi), nil
	case *Float64:
		return cc.Slice(lo, hi), nil
	case *Bool:
		return cc.Slice(lo, hi), nil
	default:
		return nil, fmt.Errorf("%w: cannot slice %s", ErrUnsupportedKind, kindOf(c))
	}
}

func kindOf(c Column) string {
	if c == nil {
		return "nil column"
	}
	return c.Kind().String()
}
