package column

import "math"

// NAInt32 is the in-band missing marker used by sentinel-encoded integer data.
const NAInt32 int32 = math.MinInt32

// Int32 is a 32-bit integer column.
type Int32 struct {
	Values   []int32
	Validity Bitmap
}

// NewInt32 returns a column over values with every element present.
func NewInt32(values []int32) *Int32 {
	return &Int32{Values: values}
}

// Int32FromSentinel builds a column from sentinel-encoded data: every element
// equal to NAInt32 is marked missing. values is not copied.
func Int32FromSentinel(values []int32) *Int32 {
	c := &Int32{Values: values}
	for i, v := range values {
		if v != NAInt32 {
			continue
		}
		if c.Validity == nil {
			c.Validity = NewBitmap(len(values))
		}
		c.Validity.Set(i, false)
	}
	return c
}

// Kind implements Column.
func (c *Int32) Kind() Kind { return KindInt32 }

// Len implements Column.
func (c *Int32) Len() int { return len(c.Values) }

// Missing implements Column.
func (c *Int32) Missing(i int) bool { return !c.Validity.IsValid(i) }

// Sentinel returns a copy of the values with missing elements set to NAInt32.
func (c *Int32) Sentinel() []int32 {
	out := make([]int32, len(c.Values))
	copy(out, c.Values)
	if c.Validity != nil {
		for i := range out {
			if !c.Validity.IsValid(i) {
				out[i] = NAInt32
			}
		}
	}
	return out
}

// Slice returns the sub-column [lo, hi). Values are shared with c.
func (c *Int32) Slice(lo, hi int) *Int32 {
	return &Int32{Values: c.Values[lo:hi], Validity: c.Validity.Slice(lo, hi)}
}
