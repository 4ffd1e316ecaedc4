package dataio

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"statcalc/domain/stats"
	"statcalc/internal/errors"
)

// ReaderOptions holds options for loading a pair of samples from a file.
type ReaderOptions struct {
	HasHeader bool   // Whether the first row is a header (default: true)
	ColumnA   int    // Zero-based column index of the first sample
	ColumnB   int    // Zero-based column index of the second sample
	Delimiter rune   // CSV field delimiter (default: ',')
	Sheet     string // Excel sheet name (default: "Sheet1")
}

// DefaultReaderOptions returns the defaults: header row present, first two
// columns, comma-delimited, Sheet1.
func DefaultReaderOptions() *ReaderOptions {
	return &ReaderOptions{
		HasHeader: true,
		ColumnA:   0,
		ColumnB:   1,
		Delimiter: ',',
		Sheet:     "Sheet1",
	}
}

// DataReader loads two sample columns from Excel or CSV files.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	opts     *ReaderOptions
}

// NewDataReader creates a reader for the given file, sniffing the format from
// the extension.
func NewDataReader(filePath string, opts *ReaderOptions) *DataReader {
	if opts == nil {
		opts = DefaultReaderOptions()
	}
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, opts: opts}
}

// Load reads the two sample columns. It implements ports.SampleSource.
func (r *DataReader) Load() (stats.Sample, stats.Sample, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, errors.InvalidInputf("input file not found: %s", r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.loadCSV()
	case "xlsx":
		return r.loadExcel()
	default:
		return nil, nil, errors.InvalidInputf("unsupported file type: %s", r.fileType)
	}
}

func (r *DataReader) loadCSV() (stats.Sample, stats.Sample, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	return LoadCSVFromReader(file, r.opts)
}

// LoadCSVFromReader reads two sample columns from CSV content.
func LoadCSVFromReader(src io.Reader, opts *ReaderOptions) (stats.Sample, stats.Sample, error) {
	if opts == nil {
		opts = DefaultReaderOptions()
	}

	reader := csv.NewReader(src)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to parse CSV input")
		}
		rows = append(rows, record)
	}

	return samplesFromRows(rows, opts)
}

func (r *DataReader) loadExcel() (stats.Sample, stats.Sample, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	rows, err := f.GetRows(r.opts.Sheet)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read sheet %s", r.opts.Sheet)
	}

	return samplesFromRows(rows, r.opts)
}

// samplesFromRows extracts the two configured columns from raw rows. Blank
// cells are skipped per column, so the samples may end up with different
// lengths; the calculators decide whether that matters.
func samplesFromRows(rows [][]string, opts *ReaderOptions) (stats.Sample, stats.Sample, error) {
	start := 0
	if opts.HasHeader && len(rows) > 0 {
		start = 1
	}

	var a, b stats.Sample
	for i := start; i < len(rows); i++ {
		v, ok, err := parseCell(rows[i], opts.ColumnA, i)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			a = append(a, v)
		}

		v, ok, err = parseCell(rows[i], opts.ColumnB, i)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			b = append(b, v)
		}
	}

	if len(a) == 0 || len(b) == 0 {
		return nil, nil, errors.InvalidInput("input contains no numeric rows")
	}
	return a, b, nil
}

func parseCell(row []string, col, rowIdx int) (float64, bool, error) {
	if col >= len(row) {
		return 0, false, nil
	}
	cell := strings.TrimSpace(row[col])
	if cell == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false, errors.InvalidInputf("row %d column %d: %q is not a number", rowIdx+1, col+1, cell)
	}
	return v, true, nil
}

// ParseInline parses a comma-separated list of numbers, the format the CLI
// accepts for samples given directly on the command line.
func ParseInline(input string) (stats.Sample, error) {
	parts := strings.Split(input, ",")
	sample := make(stats.Sample, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, errors.InvalidInputf("%q is not a number", trimmed)
		}
		sample = append(sample, v)
	}
	if len(sample) == 0 {
		return nil, errors.InvalidInput("no numbers given")
	}
	return sample, nil
}
