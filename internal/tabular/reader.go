// Package tabular reads and writes the comma-separated files that carry
// teacher records in and out of a run.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"teachreach/internal/frame"
	"teachreach/internal/record"
)

var (
	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("input is empty: no header row found")
	// ErrNoDataRows is returned when the input has a header but no records.
	ErrNoDataRows = errors.New("input contains no data rows")
)

// Warning is a non-fatal problem found while parsing. Row is the 1-based
// record number, the header being record 1.
type Warning struct {
	Row     int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}

// Table is a parsed file: a header and rows of equal width.
type Table struct {
	Header   []string
	Rows     [][]string
	Warnings []Warning
	Encoding string
}

// ReadFile reads and parses the whole file at path.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return t, nil
}

// Parse decodes data and splits it into a header and rows. Ragged rows are
// padded or truncated to the header width with a warning; rows the reader
// cannot parse are skipped with a warning.
func Parse(data []byte) (*Table, error) {
	decoded, enc, err := Decode(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}

		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	t := &Table{Header: header, Encoding: enc}
	width := len(header)
	line := 1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		line++

		if err != nil {
			t.warn(line, fmt.Sprintf("parse error: %v", err))
			continue
		}

		switch {
		case len(row) < width:
			t.warn(line, fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), width))

			padded := make([]string, width)
			copy(padded, row)
			row = padded
		case len(row) > width:
			t.warn(line, fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), width))
			row = row[:width]
		}

		t.Rows = append(t.Rows, row)
	}

	if len(t.Rows) == 0 {
		return nil, ErrNoDataRows
	}

	return t, nil
}

func (t *Table) warn(row int, msg string) {
	t.Warnings = append(t.Warnings, Warning{Row: row, Message: msg})
}

// Teachers returns one raw record per row.
func (t *Table) Teachers() []*record.Teacher {
	out := make([]*record.Teacher, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = record.NewTeacher(t.Header, row)
	}

	return out
}

// Frame returns the table as a frame of string cells.
func (t *Table) Frame() *frame.Frame {
	return frame.FromStrings(t.Header, t.Rows)
}
