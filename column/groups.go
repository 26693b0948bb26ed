package column

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidGroups is returned when a group-index vector does not describe
// groups 1..N.
var ErrInvalidGroups = errors.New("invalid group index")

// Groups assigns every row of a column to one of N output slots.
// Index holds 1-based group ids, one per row.
//
// A nil *Groups, or one with N == 0, means the column is not grouped.
type Groups struct {
	Index []int32
	N     int
}

// NewGroups validates index against n and returns the grouping.
// Bounds are checked once here; the kernels do not re-check them.
func NewGroups(index []int32, n int) (*Groups, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: group count must be >= 0: %d", ErrInvalidGroups, n)
	}
	for i, g := range index {
		if g < 1 || int(g) > n {
			return nil, fmt.Errorf("%w: row %d has group %d, want 1..%d", ErrInvalidGroups, i, g, n)
		}
	}
	return &Groups{Index: index, N: n}, nil
}

// Count returns the number of groups, 0 for an ungrouped reduction.
func (g *Groups) Count() int {
	if g == nil {
		return 0
	}
	return g.N
}

// Len returns the length of the group-index vector.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Index)
}

// GroupsFromKeys numbers distinct keys in order of first appearance and
// returns the grouping together with the key of each group.
func GroupsFromKeys(keys []string) (*Groups, []string) {
	ids := make(map[string]int32, 16)
	index := make([]int32, len(keys))
	var names []string
	for i, k := range keys {
		id, ok := ids[k]
		if !ok {
			names = append(names, k)
			id = int32(len(names))
			ids[k] = id
		}
		index[i] = id
	}
	return &Groups{Index: index, N: len(names)}, names
}

// GroupsFromPositions converts per-group row lists into a group-index vector
// of the given length. positions[j] holds the 1-based rows of group j+1.
// Rows claimed by no group, or by more than one, are rejected.
func GroupsFromPositions(positions [][]int32, length int) (*Groups, error) {
	index := make([]int32, length)
	for j := len(positions) - 1; j >= 0; j-- {
		id := int32(j + 1)
		for _, row := range positions[j] {
			if row < 1 || int(row) > length {
				return nil, fmt.Errorf("%w: group %d lists row %d outside 1..%d", ErrInvalidGroups, id, row, length)
			}
			if index[row-1] != 0 {
				return nil, fmt.Errorf("%w: row %d belongs to groups %d and %d", ErrInvalidGroups, row, index[row-1], id)
			}
			index[row-1] = id
		}
	}
	for i, g := range index {
		if g == 0 {
			return nil, fmt.Errorf("%w: row %d belongs to no group", ErrInvalidGroups, i+1)
		}
	}
	return &Groups{Index: index, N: len(positions)}, nil
}

// GroupsFromColumn groups the rows of c by value, formatting every key as a
// string. Missing elements share the key "NA".
func GroupsFromColumn(c Column) (*Groups, []string, error) {
	keys := make([]string, c.Len())
	for i := range keys {
		if c.Missing(i) {
			keys[i] = "NA"
			continue
		}
		switch cc := c.(type) {
		case *String:
			keys[i] = cc.Values[i]
		case *Int32:
			keys[i] = strconv.FormatInt(int64(cc.Values[i]), 10)
		case *Float64:
			keys[i] = strconv.FormatFloat(cc.Values[i], 'g', -1, 64)
		case *Bool:
			keys[i] = strconv.FormatBool(cc.Values[i])
		default:
			return nil, nil, fmt.Errorf("%w: cannot group by %s", ErrUnsupportedKind, kindOf(c))
		}
	}
	g, names := GroupsFromKeys(keys)
	return g, names, nil
}
