package reduce

import (
	"fmt"

	"github.com/cwbudde/algo-colsum/column"
)

// Sum reduces x to one value per group, or to a single value when g is nil
// or has no groups. When w is non-nil every element contributes x[i]*w[i]
// and the result is Float64.
//
// An empty x is returned unchanged. Without weights a Float64 x yields a
// Float64 result. An Int32 or Bool x yields an Int32 result, except that an
// ungrouped sum outside the 32-bit range is promoted to Float64 and a
// grouped one fails with ErrIntegerOverflow.
func Sum(x column.Column, g *column.Groups, w column.Column, opts ...Option) (column.Column, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: nil values", ErrUnsupportedType)
	}
	n := x.Len()
	if n < 1 {
		return x, nil
	}
	if err := checkShape(n, g, w); err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)
	if w != nil {
		return sumWeightedColumn(x, g, w, cfg)
	}

	switch x.Kind() {
	case column.KindFloat64:
		xf, err := column.AsFloat64(x)
		if err != nil {
			return nil, err
		}
		out := make([]float64, max(g.Count(), 1))
		sumFloatInto(out, xf.Masked(), groupIndex(g), cfg.SkipMissing, cfg.threadsFor(n))
		return column.NewFloat64(out), nil
	case column.KindInt32, column.KindBool:
		xi, err := column.AsInt32(x)
		if err != nil {
			return nil, err
		}
		if g.Count() > 0 {
			return sumIntGroupedColumn(xi, g, cfg)
		}
		return sumIntColumn(xi, cfg), nil
	default:
		return nil, fmt.Errorf("%w: cannot sum %s values", ErrUnsupportedType, x.Kind())
	}
}

// checkShape validates grouping and weights against n values before any
// accumulation happens.
func checkShape(n int, g *column.Groups, w column.Column) error {
	if g.Count() > 0 && g.Len() != n {
		return fmt.Errorf("%w: group index has length %d, values %d", ErrShapeMismatch, g.Len(), n)
	}
	if w == nil {
		return nil
	}
	if !w.Kind().Numeric() {
		return fmt.Errorf("%w: weights must be float64 or integer, got %s", ErrUnsupportedType, w.Kind())
	}
	if w.Len() != n {
		return fmt.Errorf("%w: weights have length %d, values %d", ErrShapeMismatch, w.Len(), n)
	}
	return nil
}

// groupIndex returns the group-index slice, nil for an ungrouped reduction.
func groupIndex(g *column.Groups) []int32 {
	if g.Count() == 0 {
		return nil
	}
	return g.Index
}

func sumWeightedColumn(x column.Column, g *column.Groups, w column.Column, cfg Config) (column.Column, error) {
	if !x.Kind().Numeric() {
		return nil, fmt.Errorf("%w: cannot sum %s values", ErrUnsupportedType, x.Kind())
	}
	xf, err := column.AsFloat64(x)
	if err != nil {
		return nil, err
	}
	wf, err := column.AsFloat64(w)
	if err != nil {
		return nil, err
	}

	px, pw := xf.Masked(), wf.Masked()
	out := make([]float64, max(g.Count(), 1))
	sumWeightedInto(out, px, pw, make([]float64, len(px)), groupIndex(g), cfg.SkipMissing)
	return column.NewFloat64(out), nil
}

func sumIntGroupedColumn(x *column.Int32, g *column.Groups, cfg Config) (column.Column, error) {
	out := make([]int32, g.N)
	present := make([]bool, g.N)
	if err := sumIntGrouped(out, present, x.Values, x.Validity, g.Index, cfg.SkipMissing); err != nil {
		return nil, err
	}
	return &column.Int32{Values: out, Validity: column.BitmapFromBools(present)}, nil
}

// sumIntColumn returns the ungrouped integer sum, promoted to Float64 when it
// does not fit the integer range.
func sumIntColumn(x *column.Int32, cfg Config) column.Column {
	var (
		s  int64
		ok bool
	)
	if threads := cfg.threadsFor(x.Len()); threads > 1 {
		s, ok = sumIntParallel(x.Values, x.Validity, cfg.SkipMissing, threads)
	} else {
		s, ok = sumInt(x.Values, x.Validity, cfg.SkipMissing)
	}

	switch {
	case !ok:
		return &column.Int32{Values: []int32{0}, Validity: column.BitmapFromBools([]bool{false})}
	case !inIntRange(s):
		return column.NewFloat64([]float64{float64(s)})
	default:
		return column.NewInt32([]int32{int32(s)})
	}
}
