package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/memory"

	"github.com/cwbudde/algo-colsum/arrowio"
	"github.com/cwbudde/algo-colsum/column"
)

var errEmptyInput = errors.New("input has no header row")

// readInput loads path as a record batch, by extension: *.arrow is an Arrow
// IPC stream, anything else CSV.
func readInput(path string) (arrow.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mem := memory.NewGoAllocator()
	if strings.EqualFold(filepath.Ext(path), ".arrow") {
		return arrowio.ReadRecord(f, mem)
	}
	t, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return arrowio.ToRecord(mem, t)
}

// readCSV parses a CSV table with a header row. Empty and NA cells are
// missing. A column whose present cells all parse as 32-bit integers is
// Int32, one whose cells all parse as numbers is Float64, anything else is
// kept as strings.
func readCSV(r io.Reader) (*column.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errEmptyInput
	}

	header, rows := records[0], records[1:]
	cols := make([]column.Column, len(header))
	cells := make([]string, len(rows))
	for j := range header {
		for i, row := range rows {
			cells[i] = strings.TrimSpace(row[j])
		}
		cols[j] = parseColumn(cells)
	}
	return column.NewTable(header, cols)
}

func isMissingCell(s string) bool {
	return s == "" || s == "NA"
}

func parseColumn(cells []string) column.Column {
	if c, ok := parseInt32(cells); ok {
		return c
	}
	if c, ok := parseFloat64(cells); ok {
		return c
	}
	values := make([]string, len(cells))
	valid := make([]bool, len(cells))
	for i, s := range cells {
		values[i] = s
		valid[i] = !isMissingCell(s)
	}
	return &column.String{Values: values, Validity: column.BitmapFromBools(valid)}
}

func parseInt32(cells []string) (*column.Int32, bool) {
	values := make([]int32, len(cells))
	valid := make([]bool, len(cells))
	for i, s := range cells {
		if isMissingCell(s) {
			continue
		}
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil || v == math.MinInt32 {
			return nil, false
		}
		values[i] = int32(v)
		valid[i] = true
	}
	return &column.Int32{Values: values, Validity: column.BitmapFromBools(valid)}, true
}

func parseFloat64(cells []string) (*column.Float64, bool) {
	values := make([]float64, len(cells))
	for i, s := range cells {
		if isMissingCell(s) {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return column.NewFloat64(values), true
}
