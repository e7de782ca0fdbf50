// Package frame provides a small column-oriented batch of nullable cells,
// the shape in which records are standardized, validated and written.
package frame

import (
	"fmt"
	"slices"
	"sort"

	"teachreach/internal/record"
)

// Frame is a batch of rows stored column by column. A nil cell is null.
// A column is either absent or holds exactly Rows cells.
type Frame struct {
	rows    int
	columns []string
	cells   map[string][]any
}

// New creates an empty frame with the given number of rows.
func New(rows int) *Frame {
	return &Frame{rows: rows, cells: map[string][]any{}}
}

// FromRecords builds a frame from transformed records. Columns appear in
// first-seen order, keys of each record taken in sorted order; cells of
// records lacking a column are null.
func FromRecords(recs []record.Transformed) *Frame {
	f := New(len(recs))

	for i, rec := range recs {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			if !f.Has(k) {
				f.Set(k, make([]any, f.rows))
			}

			f.cells[k][i] = rec[k]
		}
	}

	return f
}

// FromStrings builds a frame from a header and string rows. Short rows
// read as empty strings.
func FromStrings(header []string, rows [][]string) *Frame {
	f := New(len(rows))

	for c, name := range header {
		if f.Has(name) {
			continue
		}

		cells := make([]any, len(rows))
		for r, row := range rows {
			if c < len(row) {
				cells[r] = row[c]
			} else {
				cells[r] = ""
			}
		}

		f.Set(name, cells)
	}

	return f
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	return f.rows
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return slices.Clone(f.columns)
}

// Has reports whether the column is present.
func (f *Frame) Has(col string) bool {
	_, ok := f.cells[col]
	return ok
}

// Column returns a copy of a column's cells.
func (f *Frame) Column(col string) ([]any, bool) {
	cells, ok := f.cells[col]
	if !ok {
		return nil, false
	}

	return slices.Clone(cells), true
}

// Set adds or replaces a column. It panics when the cell count does not
// match the row count, which is a programming error.
func (f *Frame) Set(col string, cells []any) {
	if len(cells) != f.rows {
		panic(fmt.Sprintf("frame: column %q has %d cells, want %d", col, len(cells), f.rows))
	}

	if !f.Has(col) {
		f.columns = append(f.columns, col)
	}

	f.cells[col] = slices.Clone(cells)
}

// Fill sets every cell of a column to v.
func (f *Frame) Fill(col string, v any) {
	cells := make([]any, f.rows)
	for i := range cells {
		cells[i] = v
	}

	f.Set(col, cells)
}

// Cell returns one cell, or nil when the column is absent.
func (f *Frame) Cell(row int, col string) any {
	cells, ok := f.cells[col]
	if !ok || row < 0 || row >= f.rows {
		return nil
	}

	return cells[row]
}

// Row returns the cells of one row in column order.
func (f *Frame) Row(i int) []any {
	out := make([]any, len(f.columns))
	for c, col := range f.columns {
		out[c] = f.cells[col][i]
	}

	return out
}

// Select returns a new frame with the given columns in the given order.
// Missing columns are skipped.
func (f *Frame) Select(cols []string) *Frame {
	out := New(f.rows)

	for _, c := range cols {
		if cells, ok := f.cells[c]; ok {
			out.Set(c, cells)
		}
	}

	return out
}

// AllNull reports whether every cell is null. An empty slice is all null.
func AllNull(cells []any) bool {
	return !slices.ContainsFunc(cells, func(c any) bool { return c != nil })
}

// IsBlank reports whether a cell is null or renders to an empty string.
func IsBlank(cell any) bool {
	return record.IsEmptyValue(cell)
}
