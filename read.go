package visualizer

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
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrMissingColumn is returned when a table lacks a column of its schema.
	ErrMissingColumn = errors.New("missing column")

	// ErrEmptyTable is returned for input without a header row.
	ErrEmptyTable = errors.New("empty table")

	// ErrUnsupportedFormat is returned for files which are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported table format")
)

// Column describes one expected column of a table.
type Column struct {
	Name string
	Type FieldType
}

// Schema lists the columns read from a table, in the order they are
// added to the data frame. Table columns not in the schema are ignored.
type Schema []Column

// Names returns the column names of s.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// ReadOptions control parsing of tables.
type ReadOptions struct {
	// Delimiter separates CSV fields. Zero means ','.
	Delimiter rune

	// Sheet is the XLSX sheet to read. Empty means the first sheet.
	Sheet string

	// DateLayout parses Time columns. Empty means "2006-01-02".
	DateLayout string
}

// ParseError reports a cell which cannot be converted to its column type.
type ParseError struct {
	Row    int // 1-based data row, the header is row 0
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %s: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadTable reads the file at path into a data frame. The format is
// determined by the extension: ".csv" or ".xlsx".
func ReadTable(path string, schema Schema, opts ReadOptions) (*DataFrame, error) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer file.Close()
		return ReadCSV(file, name, schema, opts)
	case ".xlsx":
		return ReadXLSX(path, schema, opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// ReadCSV reads CSV data with a header row from r.
func ReadCSV(r io.Reader, name string, schema Schema, opts ReadOptions) (*DataFrame, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data %s: %w", name, err)
	}
	return fromRows(name, rows, schema, opts)
}

// ReadXLSX reads a sheet with a header row from an Excel workbook.
func ReadXLSX(path string, schema Schema, opts ReadOptions) (*DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s has no sheets", ErrEmptyTable, path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return fromRows(filepath.Base(path), rows, schema, opts)
}

// fromRows converts raw string rows, the first being the header, into
// a data frame according to schema.
func fromRows(name string, rows [][]string, schema Schema, opts ReadOptions) (*DataFrame, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTable, name)
	}

	header := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		header[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, c := range schema {
		if _, ok := header[c.Name]; !ok {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w in %s: %s", ErrMissingColumn, name, fieldList(missing))
	}

	layout := opts.DateLayout
	if layout == "" {
		layout = "2006-01-02"
	}

	data := rows[1:]
	df := NewDataFrame(name, nil)
	df.N = len(data)
	for _, c := range schema {
		col := header[c.Name]
		field := NewField(df.N, c.Type, df.Pool)
		for i, row := range data {
			cell := ""
			if col < len(row) {
				cell = strings.TrimSpace(row[col])
			}
			x, err := parseCell(cell, c.Type, layout, df.Pool)
			if err != nil {
				return nil, &ParseError{Row: i + 1, Column: c.Name, Value: cell, Err: err}
			}
			field.Data[i] = x
		}
		df.Add(c.Name, field)
	}
	return df, nil
}

func parseCell(cell string, t FieldType, layout string, pool *StringPool) (float64, error) {
	switch t {
	case Int:
		x, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return 0, err
		}
		if x != math.Trunc(x) {
			return 0, errors.New("not an integer")
		}
		return x, nil
	case Float:
		return strconv.ParseFloat(cell, 64)
	case String:
		return float64(pool.Add(cell)), nil
	case Time:
		tm, err := time.Parse(layout, cell)
		if err != nil {
			return 0, err
		}
		return float64(tm.Unix()), nil
	}
	return 0, fmt.Errorf("unknown field type %s", t)
}
