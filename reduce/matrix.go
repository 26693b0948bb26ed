package reduce

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-colsum/column"
)

// SumMatrix reduces every column of m. The result has max(ng, 1) rows and
// m.Cols columns; column j holds the reduction of m's column j.
//
// Weights and groups apply to the rows and must have length m.Rows. The
// result type is uniform across columns: an ungrouped Int32 matrix keeps
// Int32 only when no column overflows, otherwise the whole result is Float64.
func SumMatrix(m *column.Matrix, g *column.Groups, w column.Column, opts ...Option) (*column.Matrix, error) {
	if m == nil || m.Data == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrUnsupportedType)
	}
	if m.Data.Len() != m.Rows*m.Cols {
		return nil, fmt.Errorf("%w: %d elements for a %dx%d matrix", column.ErrDimensionMismatch, m.Data.Len(), m.Rows, m.Cols)
	}
	if m.Rows < 1 {
		return m, nil
	}
	if err := checkShape(m.Rows, g, w); err != nil {
		return nil, err
	}
	kind := m.Data.Kind()
	if !kind.Numeric() {
		return nil, fmt.Errorf("%w: cannot sum %s matrix", ErrUnsupportedType, kind)
	}

	cfg := ApplyOptions(opts...)
	ng := g.Count()
	stride := max(ng, 1)
	result := &column.Matrix{Rows: stride, Cols: m.Cols, ColNames: m.ColNames}

	switch {
	case w != nil:
		data, err := sumMatrixWeighted(m, g, w, cfg)
		if err != nil {
			return nil, err
		}
		result.Data = data
	case kind == column.KindFloat64:
		xf, err := column.AsFloat64(m.Data)
		if err != nil {
			return nil, err
		}
		px := xf.Masked()
		out := make([]float64, stride*m.Cols)
		threads := cfg.threadsFor(m.Rows)
		for j := 0; j < m.Cols; j++ {
			sumFloatInto(out[j*stride:(j+1)*stride], px[j*m.Rows:(j+1)*m.Rows], groupIndex(g), cfg.SkipMissing, threads)
		}
		result.Data = column.NewFloat64(out)
	case ng > 0:
		data, err := sumMatrixIntGrouped(m, g, cfg)
		if err != nil {
			return nil, err
		}
		result.Data = data
	default:
		data, err := sumMatrixInt(m, cfg)
		if err != nil {
			return nil, err
		}
		result.Data = data
	}
	return result, nil
}

func sumMatrixWeighted(m *column.Matrix, g *column.Groups, w column.Column, cfg Config) (column.Column, error) {
	xf, err := column.AsFloat64(m.Data)
	if err != nil {
		return nil, err
	}
	wf, err := column.AsFloat64(w)
	if err != nil {
		return nil, err
	}

	px, pw := xf.Masked(), wf.Masked()
	stride := max(g.Count(), 1)
	out := make([]float64, stride*m.Cols)
	prod := make([]float64, m.Rows)
	for j := 0; j < m.Cols; j++ {
		sumWeightedInto(out[j*stride:(j+1)*stride], px[j*m.Rows:(j+1)*m.Rows], pw, prod, groupIndex(g), cfg.SkipMissing)
	}
	return column.NewFloat64(out), nil
}

func sumMatrixIntGrouped(m *column.Matrix, g *column.Groups, cfg Config) (column.Column, error) {
	out := make([]int32, g.N*m.Cols)
	present := make([]bool, g.N*m.Cols)
	for j := 0; j < m.Cols; j++ {
		col, err := intCol(m, j)
		if err != nil {
			return nil, err
		}
		lo, hi := j*g.N, (j+1)*g.N
		if err := sumIntGrouped(out[lo:hi], present[lo:hi], col.Values, col.Validity, g.Index, cfg.SkipMissing); err != nil {
			return nil, fmt.Errorf("column %d: %w", j+1, err)
		}
	}
	return &column.Int32{Values: out, Validity: column.BitmapFromBools(present)}, nil
}

// sumMatrixInt reduces each integer column in 64 bits, then picks one output
// representation for all columns.
func sumMatrixInt(m *column.Matrix, cfg Config) (column.Column, error) {
	sums := make([]int64, m.Cols)
	present := make([]bool, m.Cols)
	overflow := false
	threads := cfg.threadsFor(m.Rows)
	for j := 0; j < m.Cols; j++ {
		col, err := intCol(m, j)
		if err != nil {
			return nil, err
		}
		if threads > 1 {
			sums[j], present[j] = sumIntParallel(col.Values, col.Validity, cfg.SkipMissing, threads)
		} else {
			sums[j], present[j] = sumInt(col.Values, col.Validity, cfg.SkipMissing)
		}
		if present[j] && !inIntRange(sums[j]) {
			overflow = true
		}
	}

	if overflow {
		out := make([]float64, m.Cols)
		for j, s := range sums {
			out[j] = float64(s)
			if !present[j] {
				out[j] = math.NaN()
			}
		}
		return column.NewFloat64(out), nil
	}

	out := make([]int32, m.Cols)
	for j, s := range sums {
		if present[j] {
			out[j] = int32(s)
		}
	}
	return &column.Int32{Values: out, Validity: column.BitmapFromBools(present)}, nil
}

func intCol(m *column.Matrix, j int) (*column.Int32, error) {
	c, err := m.Col(j)
	if err != nil {
		return nil, err
	}
	return column.AsInt32(c)
}
