package reduce

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-colsum/column"
)

// values returns the elements of a reduction result as floats, NaN where
// missing.
func values(t *testing.T, c column.Column) []float64 {
	t.Helper()
	out := make([]float64, c.Len())
	for i := range out {
		if c.Missing(i) {
			out[i] = math.NaN()
			continue
		}
		switch cc := c.(type) {
		case *column.Float64:
			out[i] = cc.Values[i]
		case *column.Int32:
			out[i] = float64(cc.Values[i])
		default:
			t.Fatalf("unexpected result type %T", c)
		}
	}
	return out
}

func mustGroups(t *testing.T, index []int32, n int) *column.Groups {
	t.Helper()
	g, err := column.NewGroups(index, n)
	if err != nil {
		t.Fatalf("NewGroups: %v", err)
	}
	return g
}

func parallelOpts(skip bool) []Option {
	return []Option{
		WithSkipMissing(skip),
		WithThreads(4),
		WithThreadBounds(1, 4),
		WithParallelThreshold(0),
	}
}

var nan = math.NaN()
