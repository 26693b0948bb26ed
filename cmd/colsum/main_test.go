package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-colsum/column"
	"github.com/cwbudde/algo-colsum/reduce"
)

const salesCSV = `region,units,price,share
north,3,1.5,1
south,4,2,1
north,NA,2.5,2
south,10,,0.5
east,1,4,1
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes colsum with args and returns stdout split into fields per line.
func run(t *testing.T, args ...string) ([][]string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	var lines [][]string
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line != "" {
			lines = append(lines, strings.Fields(line))
		}
	}
	return lines, err
}

func TestReadCSVInfersTypes(t *testing.T) {
	tbl, err := readCSV(strings.NewReader(salesCSV))
	require.NoError(t, err)
	require.Equal(t, []string{"region", "units", "price", "share"}, tbl.Names)

	assert.Equal(t, column.KindString, tbl.Columns[0].Kind())
	assert.Equal(t, column.KindInt32, tbl.Columns[1].Kind())
	assert.Equal(t, column.KindFloat64, tbl.Columns[2].Kind())
	assert.Equal(t, column.KindFloat64, tbl.Columns[3].Kind())

	assert.True(t, tbl.Columns[1].Missing(2))
	assert.True(t, tbl.Columns[2].Missing(3))
	assert.False(t, tbl.Columns[2].Missing(0))
}

func TestReadCSVIntegerRangeFallsBackToFloat(t *testing.T) {
	tbl, err := readCSV(strings.NewReader("a,b\n-2147483648,2147483648\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, column.KindFloat64, tbl.Columns[0].Kind())
	assert.Equal(t, column.KindFloat64, tbl.Columns[1].Kind())
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := readCSV(strings.NewReader(""))
	require.ErrorIs(t, err, errEmptyInput)
}

func TestSumByGroup(t *testing.T) {
	path := writeFile(t, "sales.csv", salesCSV)

	lines, err := run(t, "sum", "--by", "region", path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"region", "units", "price", "share"},
		{"north", "3", "4", "3"},
		{"south", "14", "2", "1.5"},
		{"east", "1", "4", "1"},
	}, lines)
}

func TestSumKeepMissing(t *testing.T) {
	path := writeFile(t, "sales.csv", salesCSV)

	lines, err := run(t, "sum", "--by", "region", "--keep-missing", path)
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"north", "NA", "4", "3"}, lines[1])
	assert.Equal(t, []string{"south", "14", "NA", "1.5"}, lines[2])
}

func TestSumWeighted(t *testing.T) {
	path := writeFile(t, "sales.csv", salesCSV)

	lines, err := run(t, "sum", "--by", "region", "--weight", "share", path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"region", "units", "price"},
		{"north", "3", "6.5"},
		{"south", "9", "2"},
		{"east", "1", "4"},
	}, lines)
}

func TestSumUngroupedRejectsStringColumn(t *testing.T) {
	path := writeFile(t, "sales.csv", salesCSV)

	_, err := run(t, "sum", path)
	require.ErrorIs(t, err, reduce.ErrUnsupportedType)
}

func TestSumUngrouped(t *testing.T) {
	path := writeFile(t, "nums.csv", "a,b\n1,0.5\n2,NA\n,1.5\n")

	lines, err := run(t, "sum", "--threads", "2", path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"3", "2"}}, lines)
}

func TestSumConfigFile(t *testing.T) {
	data := writeFile(t, "sales.csv", salesCSV)
	cfg := writeFile(t, "colsum.yaml", "skip_missing: false\nby: region\nthreads: 2\n")

	lines, err := run(t, "sum", "--config", cfg, data)
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"north", "NA", "4", "3"}, lines[1])

	// Flags win over the file.
	lines, err = run(t, "sum", "--config", cfg, "--keep-missing=false", data)
	require.NoError(t, err)
	assert.Equal(t, []string{"north", "3", "4", "3"}, lines[1])
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, "colsum.yaml", "weight: share\nmax_threads: 3\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "share", cfg.Weight)
	assert.Equal(t, 3, cfg.MaxThreads)
	assert.True(t, cfg.SkipMissing)
	assert.Equal(t, reduce.DefaultParallelThreshold, cfg.ParallelThreshold)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = loadConfig(writeFile(t, "bad.yaml", "threads: [1, 2\n"))
	require.Error(t, err)
}

func TestSumArrowOutputRoundTrip(t *testing.T) {
	data := writeFile(t, "sales.csv", salesCSV)
	out := filepath.Join(t.TempDir(), "totals.arrow")

	first, err := run(t, "sum", "--by", "region", "--output", out, data)
	require.NoError(t, err)
	require.FileExists(t, out)

	// Summing the one-row-per-group totals again by region is the identity.
	second, err := run(t, "sum", "--by", "region", out)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSumRejectsBadThreads(t *testing.T) {
	path := writeFile(t, "nums.csv", "a\n1\n")
	_, err := run(t, "sum", "--threads", "0", path)
	require.Error(t, err)
}

func TestInfo(t *testing.T) {
	lines, err := run(t, "info")
	require.NoError(t, err)

	var sawKernel, sawSelected bool
	for _, l := range lines {
		if len(l) > 0 && l[0] == "kernel:" {
			sawKernel = true
		}
		if strings.Contains(strings.Join(l, " "), "(selected)") {
			sawSelected = true
		}
	}
	assert.True(t, sawKernel, "info output lacks the kernel line")
	assert.True(t, sawSelected, "info output marks no variant as selected")
}
