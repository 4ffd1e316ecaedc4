package dataio

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"statcalc/domain/stats"
	"statcalc/internal/errors"
)

func TestLoadCSVFromReader_TwoColumns(t *testing.T) {
	input := "a,b\n2,1\n4,2\n4,3\n4,4\n5,5\n"

	a, b, err := LoadCSVFromReader(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, stats.Sample{2, 4, 4, 4, 5}, a)
	assert.Equal(t, stats.Sample{1, 2, 3, 4, 5}, b)
}

func TestLoadCSVFromReader_NoHeader(t *testing.T) {
	opts := DefaultReaderOptions()
	opts.HasHeader = false

	a, b, err := LoadCSVFromReader(strings.NewReader("1.5,2.5\n3.5,4.5\n"), opts)
	require.NoError(t, err)

	assert.Equal(t, stats.Sample{1.5, 3.5}, a)
	assert.Equal(t, stats.Sample{2.5, 4.5}, b)
}

func TestLoadCSVFromReader_BlankCellsSkippedPerColumn(t *testing.T) {
	// Unequal sample lengths are legal at the reader level; the t-test
	// accepts them and correlation rejects them later.
	input := "a,b\n1,10\n2,\n3,30\n"

	a, b, err := LoadCSVFromReader(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Len(t, a, 3)
	assert.Len(t, b, 2)
}

func TestLoadCSVFromReader_NonNumericCell(t *testing.T) {
	_, _, err := LoadCSVFromReader(strings.NewReader("a,b\n1,2\nx,4\n"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "row 3")
}

func TestLoadCSVFromReader_EmptyInput(t *testing.T) {
	_, _, err := LoadCSVFromReader(strings.NewReader("a,b\n"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestDataReader_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "a"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "b"))
	values := [][]float64{{1, 2}, {2, 4}, {3, 6}}
	for i, row := range values {
		require.NoError(t, f.SetCellValue("Sheet1", cell("A", i+2), row[0]))
		require.NoError(t, f.SetCellValue("Sheet1", cell("B", i+2), row[1]))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	reader := NewDataReader(path, nil)
	a, b, err := reader.Load()
	require.NoError(t, err)

	assert.Equal(t, stats.Sample{1, 2, 3}, a)
	assert.Equal(t, stats.Sample{2, 4, 6}, b)
}

func TestDataReader_MissingFile(t *testing.T) {
	reader := NewDataReader(filepath.Join(t.TempDir(), "nope.csv"), nil)
	_, _, err := reader.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestParseInline(t *testing.T) {
	sample, err := ParseInline(" 2, 4,4,4, 5 ")
	require.NoError(t, err)
	assert.Equal(t, stats.Sample{2, 4, 4, 4, 5}, sample)

	_, err = ParseInline("1,two,3")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))

	_, err = ParseInline(" , ")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func cell(col string, row int) string {
	name, _ := excelize.JoinCellName(col, row)
	return name
}
