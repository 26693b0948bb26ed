package column

import "github.com/apache/arrow/go/v7/arrow/bitutil"

// Bitmap is a validity bitmap in Arrow layout: bit i set means element i is
// present. A nil Bitmap marks every element present.
type Bitmap []byte

// NewBitmap returns a bitmap of n bits, all set.
func NewBitmap(n int) Bitmap {
	b := make(Bitmap, (n+7)/8)
	for i := range b {
		b[i] = 0xFF
	}
	return b
}

// BitmapFromBools builds a bitmap from a per-element validity slice.
// It returns nil when every element is valid.
func BitmapFromBools(valid []bool) Bitmap {
	var b Bitmap
	for i, ok := range valid {
		if ok {
			continue
		}
		if b == nil {
			b = NewBitmap(len(valid))
		}
		bitutil.ClearBit(b, i)
	}
	return b
}

// IsValid reports whether bit i is set. A nil bitmap is valid everywhere.
func (b Bitmap) IsValid(i int) bool {
	return b == nil || bitutil.BitIsSet(b, i)
}

// Set marks element i as present or missing. b must not be nil.
func (b Bitmap) Set(i int, valid bool) {
	bitutil.SetBitTo(b, i, valid)
}

// NullCount returns the number of cleared bits among the first n elements.
func (b Bitmap) NullCount(n int) int {
	if b == nil || n == 0 {
		return 0
	}
	return n - bitutil.CountSetBits(b, 0, n)
}

// Slice returns a bitmap covering elements [lo, hi), re-based to start at bit 0.
// It returns nil if b is nil or the range has no missing element.
func (b Bitmap) Slice(lo, hi int) Bitmap {
	if b == nil {
		return nil
	}
	var out Bitmap
	for i := lo; i < hi; i++ {
		if bitutil.BitIsSet(b, i) {
			continue
		}
		if out == nil {
			out = NewBitmap(hi - lo)
		}
		bitutil.ClearBit(out, i-lo)
	}
	return out
}
