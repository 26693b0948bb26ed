package column

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a matrix or table is built from
// parts whose sizes disagree.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Matrix is a column-major 2-D block: column j occupies
// Data[j*Rows : (j+1)*Rows].
type Matrix struct {
	Rows, Cols int
	Data       Column
	ColNames   []string
}

// NewMatrix wraps data as a rows x cols matrix.
func NewMatrix(data Column, rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrDimensionMismatch, rows, cols)
	}
	if data == nil || data.Len() != rows*cols {
		n := 0
		if data != nil {
			n = data.Len()
		}
		return nil, fmt.Errorf("%w: %d elements for a %dx%d matrix", ErrDimensionMismatch, n, rows, cols)
	}
	return &Matrix{Rows: rows, Cols: cols, Data: data}, nil
}

// Col returns column j as a view over the matrix data.
func (m *Matrix) Col(j int) (Column, error) {
	return Slice(m.Data, j*m.Rows, (j+1)*m.Rows)
}

// Table is an ordered collection of equally long, possibly heterogeneous
// columns.
type Table struct {
	Names   []string
	Columns []Column
}

// NewTable builds a table. names may be nil; otherwise it must name every
// column.
func NewTable(names []string, cols []Column) (*Table, error) {
	if names != nil && len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrDimensionMismatch, len(names), len(cols))
	}
	for j, c := range cols {
		if c == nil {
			return nil, fmt.Errorf("%w: column %d is nil", ErrDimensionMismatch, j+1)
		}
		if n := cols[0].Len(); c.Len() != n {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", ErrDimensionMismatch, j+1, c.Len(), n)
		}
	}
	return &Table{Names: names, Columns: cols}, nil
}

// NumRows returns the length of the first column, 0 for an empty table.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}
