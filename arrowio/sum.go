package arrowio

import (
	"errors"
	"fmt"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/memory"

	"github.com/cwbudde/algo-colsum/column"
	"github.com/cwbudde/algo-colsum/reduce"
)

// ErrNoSuchField is returned when a named grouping or weight field is not
// part of the record.
var ErrNoSuchField = errors.New("no such field")

// SumRecord sums every field of rec and returns a record with the same field
// names and max(ng, 1) rows. Field types follow reduce.Sum. The caller owns
// the returned record.
func SumRecord(rec arrow.Record, g *column.Groups, w column.Column, opts ...reduce.Option) (arrow.Record, error) {
	t, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	out, err := reduce.SumTable(t, g, w, opts...)
	if err != nil {
		return nil, err
	}
	return ToRecord(memory.DefaultAllocator, out)
}

// SumRecordBy groups rec by the field named by and weights it by the field
// named weight, either of which may be empty. The grouping and weight fields
// are not summed. When grouped, the result starts with a string field named
// by holding each group's key, in order of first appearance.
func SumRecordBy(rec arrow.Record, by, weight string, opts ...reduce.Option) (arrow.Record, error) {
	t, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}

	var (
		g    *column.Groups
		keys []string
		w    column.Column
	)
	skip := map[string]bool{}
	if by != "" {
		c, err := field(t, by)
		if err != nil {
			return nil, err
		}
		if g, keys, err = column.GroupsFromColumn(c); err != nil {
			return nil, err
		}
		skip[by] = true
	}
	if weight != "" {
		if w, err = field(t, weight); err != nil {
			return nil, err
		}
		skip[weight] = true
	}

	values := &column.Table{}
	for j, name := range t.Names {
		if skip[name] {
			continue
		}
		values.Names = append(values.Names, name)
		values.Columns = append(values.Columns, t.Columns[j])
	}

	summed, err := reduce.SumTable(values, g, w, opts...)
	if err != nil {
		return nil, err
	}
	if g != nil {
		summed.Names = append([]string{by}, summed.Names...)
		summed.Columns = append([]column.Column{&column.String{Values: keys}}, summed.Columns...)
	}
	return ToRecord(memory.DefaultAllocator, summed)
}

func field(t *column.Table, name string) (column.Column, error) {
	for j, n := range t.Names {
		if n == name {
			return t.Columns[j], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoSuchField, name)
}
