package reduce

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-colsum/column"
)

// SumTable reduces every column of t with Sum and returns a table of the
// per-column results, keeping t's names. An empty table is returned unchanged.
func SumTable(t *column.Table, g *column.Groups, w column.Column, opts ...Option) (*column.Table, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrUnsupportedType)
	}
	if len(t.Columns) == 0 {
		return t, nil
	}

	out := make([]column.Column, len(t.Columns))
	for j, c := range t.Columns {
		r, err := Sum(c, g, w, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", columnLabel(t, j), err)
		}
		out[j] = r
	}
	return &column.Table{Names: t.Names, Columns: out}, nil
}

// SumTableFlat reduces every column of t to one ungrouped sum and collapses
// the results into a single Float64 column, one element per table column.
// Missing integer sums become NaN.
func SumTableFlat(t *column.Table, w column.Column, opts ...Option) (*column.Float64, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrUnsupportedType)
	}

	out := make([]float64, len(t.Columns))
	for j, c := range t.Columns {
		r, err := Sum(c, nil, w, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", columnLabel(t, j), err)
		}
		if r.Len() == 0 {
			out[j] = math.NaN()
			continue
		}
		out[j] = scalarFloat(r)
	}
	return column.NewFloat64(out), nil
}

// scalarFloat returns element 0 of a reduction result as a float, NaN when
// it is missing.
func scalarFloat(c column.Column) float64 {
	if c.Missing(0) {
		return math.NaN()
	}
	switch cc := c.(type) {
	case *column.Float64:
		return cc.Values[0]
	case *column.Int32:
		return float64(cc.Values[0])
	default:
		return math.NaN()
	}
}

func columnLabel(t *column.Table, j int) string {
	if j < len(t.Names) && t.Names[j] != "" {
		return fmt.Sprintf("column %q", t.Names[j])
	}
	return fmt.Sprintf("column %d", j+1)
}
