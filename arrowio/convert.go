package arrowio

import (
	"fmt"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/memory"

	"github.com/cwbudde/algo-colsum/column"
	"github.com/cwbudde/algo-colsum/reduce"
)

// FromArrow converts an Arrow array to a column. Narrow integer types widen
// to Int32 and Float32 widens to Float64; Float64 and Int32 share a's buffers.
func FromArrow(a arrow.Array) (column.Column, error) {
	validity := validityOf(a)

	switch aa := a.(type) {
	case *array.Float64:
		return &column.Float64{Values: aa.Float64Values(), Validity: validity}, nil
	case *array.Float32:
		out := make([]float64, aa.Len())
		for i, v := range aa.Float32Values() {
			out[i] = float64(v)
		}
		return &column.Float64{Values: out, Validity: validity}, nil
	case *array.Int32:
		return &column.Int32{Values: aa.Int32Values(), Validity: validity}, nil
	case *array.Int16:
		return &column.Int32{Values: widen(aa.Int16Values()), Validity: validity}, nil
	case *array.Int8:
		return &column.Int32{Values: widen(aa.Int8Values()), Validity: validity}, nil
	case *array.Uint16:
		return &column.Int32{Values: widen(aa.Uint16Values()), Validity: validity}, nil
	case *array.Uint8:
		return &column.Int32{Values: widen(aa.Uint8Values()), Validity: validity}, nil
	case *array.Boolean:
		out := make([]bool, aa.Len())
		for i := range out {
			out[i] = aa.Value(i)
		}
		return &column.Bool{Values: out, Validity: validity}, nil
	case *array.String:
		out := make([]string, aa.Len())
		for i := range out {
			out[i] = aa.Value(i)
		}
		return &column.String{Values: out, Validity: validity}, nil
	default:
		return nil, fmt.Errorf("%w: arrow type %s", reduce.ErrUnsupportedType, a.DataType())
	}
}

func widen[T int8 | int16 | uint8 | uint16](in []T) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

// validityOf copies a's null bitmap, re-based to a's offset.
func validityOf(a arrow.Array) column.Bitmap {
	if a.NullN() == 0 {
		return nil
	}
	b := column.NewBitmap(a.Len())
	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) {
			b.Set(i, false)
		}
	}
	return b
}

// ToArrow builds an Arrow array from c. Missing elements, including NaN
// floats, become nulls.
func ToArrow(mem memory.Allocator, c column.Column) (arrow.Array, error) {
	valid := validBools(c)

	switch cc := c.(type) {
	case *column.Float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		b.AppendValues(cc.Values, valid)
		return b.NewArray(), nil
	case *column.Int32:
		b := array.NewInt32Builder(mem)
		defer b.Release()
		b.AppendValues(cc.Values, valid)
		return b.NewArray(), nil
	case *column.Bool:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		b.AppendValues(cc.Values, valid)
		return b.NewArray(), nil
	case *column.String:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		b.AppendValues(cc.Values, valid)
		return b.NewArray(), nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T to arrow", reduce.ErrUnsupportedType, c)
	}
}

// validBools returns the per-element validity of c, nil when nothing is
// missing.
func validBools(c column.Column) []bool {
	var valid []bool
	for i := 0; i < c.Len(); i++ {
		if !c.Missing(i) {
			continue
		}
		if valid == nil {
			valid = make([]bool, c.Len())
			for j := range valid {
				valid[j] = true
			}
		}
		valid[i] = false
	}
	return valid
}

// FromRecord converts every column of rec, keeping the field names.
func FromRecord(rec arrow.Record) (*column.Table, error) {
	n := int(rec.NumCols())
	names := make([]string, n)
	cols := make([]column.Column, n)
	for j := 0; j < n; j++ {
		names[j] = rec.ColumnName(j)
		c, err := FromArrow(rec.Column(j))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", names[j], err)
		}
		cols[j] = c
	}
	return column.NewTable(names, cols)
}

// ToRecord builds a record batch from t. Unnamed columns are called V1, V2,
// and so on by position. The caller owns the returned record.
func ToRecord(mem memory.Allocator, t *column.Table) (arrow.Record, error) {
	fields := make([]arrow.Field, len(t.Columns))
	arrs := make([]arrow.Array, 0, len(t.Columns))
	defer func() {
		for _, a := range arrs {
			a.Release()
		}
	}()

	for j, c := range t.Columns {
		a, err := ToArrow(mem, c)
		if err != nil {
			return nil, err
		}
		arrs = append(arrs, a)

		name := fmt.Sprintf("V%d", j+1)
		if j < len(t.Names) && t.Names[j] != "" {
			name = t.Names[j]
		}
		fields[j] = arrow.Field{Name: name, Type: a.DataType(), Nullable: true}
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, arrs, int64(t.NumRows())), nil
}
