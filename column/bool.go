package column

// Bool is a logical column.
type Bool struct {
	Values   []bool
	Validity Bitmap
}

// NewBool returns a column over values with every element present.
func NewBool(values []bool) *Bool {
	return &Bool{Values: values}
}

// Kind implements Column.
func (c *Bool) Kind() Kind { return KindBool }

// Len implements Column.
func (c *Bool) Len() int { return len(c.Values) }

// Missing implements Column.
func (c *Bool) Missing(i int) bool { return !c.Validity.IsValid(i) }

// Slice returns the sub-column [lo, hi). Values are shared with c.
func (c *Bool) Slice(lo, hi int) *Bool {
	return &Bool{Values: c.Values[lo:hi], Validity: c.Validity.Slice(lo, hi)}
}

// String is a character column. It is carried through tables but rejected by
// every numeric operation.
type String struct {
	Values   []string
	Validity Bitmap
}

// Kind implements Column.
func (c *String) Kind() Kind { return KindString }

// Len implements Column.
func (c *String) Len() int { return len(c.Values) }

// Missing implements Column.
func (c *String) Missing(i int) bool { return !c.Validity.IsValid(i) }
