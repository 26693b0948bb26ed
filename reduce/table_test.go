package reduce

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-colsum/column"
	"github.com/cwbudde/algo-colsum/internal/testutil"
)

func testTable(t *testing.T) *column.Table {
	t.Helper()
	tbl, err := column.NewTable(
		[]string{"a", "b", "c"},
		[]column.Column{
			column.NewFloat64([]float64{1, 2, nan, 4}),
			column.Int32FromSentinel([]int32{10, column.NAInt32, 30, 40}),
			&column.Bool{Values: []bool{true, true, false, true}},
		},
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func TestSumTableKeepsColumnTypes(t *testing.T) {
	tbl := testTable(t)
	g := mustGroups(t, []int32{1, 1, 2, 2}, 2)

	got, err := SumTable(tbl, g, nil)
	if err != nil {
		t.Fatalf("SumTable: %v", err)
	}
	if len(got.Columns) != 3 || got.Names[1] != "b" {
		t.Fatalf("SumTable returned %d columns named %v", len(got.Columns), got.Names)
	}

	wantKinds := []column.Kind{column.KindFloat64, column.KindInt32, column.KindInt32}
	wantValues := [][]float64{{3, 4}, {10, 70}, {2, 1}}
	for j, c := range got.Columns {
		if c.Kind() != wantKinds[j] {
			t.Fatalf("column %d kind %v, want %v", j, c.Kind(), wantKinds[j])
		}
		testutil.RequireSliceNearlyEqual(t, values(t, c), wantValues[j], 0)
	}
}

func TestSumTableWeighted(t *testing.T) {
	tbl := testTable(t)
	w := column.NewFloat64([]float64{1, 1, 1, 0.5})

	got, err := SumTable(tbl, nil, w, WithSkipMissing(false))
	if err != nil {
		t.Fatalf("SumTable: %v", err)
	}
	want := [][]float64{{nan}, {nan}, {2.5}}
	for j, c := range got.Columns {
		if c.Kind() != column.KindFloat64 {
			t.Fatalf("column %d kind %v, want float64", j, c.Kind())
		}
		testutil.RequireSliceNearlyEqual(t, values(t, c), want[j], 0)
	}
}

func TestSumTableErrorNamesColumn(t *testing.T) {
	tbl, err := column.NewTable(
		[]string{"x", "label"},
		[]column.Column{
			column.NewFloat64([]float64{1}),
			&column.String{Values: []string{"a"}},
		},
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	_, err = SumTable(tbl, nil, nil)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
	if !strings.Contains(err.Error(), `"label"`) {
		t.Fatalf("error %q does not name the column", err)
	}
}

func TestSumTableEmpty(t *testing.T) {
	tbl := &column.Table{}
	got, err := SumTable(tbl, nil, nil)
	if err != nil {
		t.Fatalf("SumTable: %v", err)
	}
	if got != tbl {
		t.Fatal("empty table was not returned unchanged")
	}
}

func TestSumTableFlat(t *testing.T) {
	tbl := testTable(t)

	got, err := SumTableFlat(tbl, nil)
	if err != nil {
		t.Fatalf("SumTableFlat: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Values, []float64{7, 80, 3}, 0)

	prop, err := SumTableFlat(tbl, nil, WithSkipMissing(false))
	if err != nil {
		t.Fatalf("SumTableFlat: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, prop.Values, []float64{nan, nan, 3}, 0)
}

func TestSumTableFlatEmptyColumn(t *testing.T) {
	tbl := &column.Table{Columns: []column.Column{column.NewFloat64(nil)}}
	got, err := SumTableFlat(tbl, nil)
	if err != nil {
		t.Fatalf("SumTableFlat: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Values, []float64{nan}, 0)
}
