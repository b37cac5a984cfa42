// Package table holds a loaded CSV file in memory: one header row and any
// number of data rows, all cells kept as strings.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table is the in-memory CSV. Rows are not normalized to the header width;
// a ragged input row stays ragged.
type Table struct {
	Header []string
	Rows   [][]string
}

// ParseError reports a file that could not be opened or parsed.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error reading CSV file %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("error reading CSV file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failed write.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("error writing CSV file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Width is the number of header columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}
	return len(t.Header)
}

// Len is the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether nothing has been loaded, not even a header.
func (t *Table) Empty() bool {
	return t == nil || len(t.Header) == 0
}

// Cell returns the value at data row row, column col.
func (t *Table) Cell(row, col int) (string, bool) {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return "", false
	}
	return r[col], true
}

// SetCell replaces an existing cell. It never grows a row, so a ragged row
// can only be edited where it has cells. The return value reports whether
// the cell exists and its value actually changed.
func (t *Table) SetCell(row, col int, value string) bool {
	old, ok := t.Cell(row, col)
	if !ok || old == value {
		return false
	}
	t.Rows[row][col] = value
	return true
}

// Records returns header followed by rows, the shape encoding/csv works with.
func (t *Table) Records() [][]string {
	if t.Empty() {
		return nil
	}
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Header)
	out = append(out, t.Rows...)
	return out
}

// Read parses CSV from r. An empty input yields an empty table.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// Write serializes t to w, header first, preserving row and column order.
func Write(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	for _, record := range t.Records() {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Load reads the CSV file at path.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer file.Close()

	t, err := Read(file)
	if err != nil {
		pe := &ParseError{Path: path, Err: err}
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			pe.Line = csvErr.Line
		}
		return nil, pe
	}
	return t, nil
}

// Save writes t to path, replacing any existing file.
func Save(path string, t *Table) error {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := Write(file, t); err != nil {
		file.Close()
		return &IOError{Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// FormatRow encodes one record as a CSV line without the trailing newline.
func FormatRow(row []string) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)
	if err := writer.Write(row); err != nil {
		return "", err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}
