package column

import "math"

// Float64 is a double precision column. An element is missing when its
// validity bit is cleared or its value is NaN.
type Float64 struct {
	Values   []float64
	Validity Bitmap
}

// NewFloat64 returns a column over values. NaN elements count as missing.
func NewFloat64(values []float64) *Float64 {
	return &Float64{Values: values}
}

// Kind implements Column.
func (c *Float64) Kind() Kind { return KindFloat64 }

// Len implements Column.
func (c *Float64) Len() int { return len(c.Values) }

// Missing implements Column.
func (c *Float64) Missing(i int) bool {
	return math.IsNaN(c.Values[i]) || !c.Validity.IsValid(i)
}

// Masked returns the values with every missing element replaced by NaN.
// Without a validity bitmap the backing slice is returned as is, so the
// result must be treated as read-only.
func (c *Float64) Masked() []float64 {
	if c.Validity == nil {
		return c.Values
	}
	out := make([]float64, len(c.Values))
	copy(out, c.Values)
	nan := math.NaN()
	for i := range out {
		if !c.Validity.IsValid(i) {
			out[i] = nan
		}
	}
	return out
}

// Slice returns the sub-column [lo, hi). Values are shared with c.
func (c *Float64) Slice(lo, hi int) *Float64 {
	return &Float64{Values: c.Values[lo:hi], Validity: c.Validity.Slice(lo, hi)}
}
