// Package report summarizes a standardized output file for human review.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"teachreach/internal/match"
	"teachreach/internal/schema"
	"teachreach/internal/tabular"
)

// maxSuggestions bounds the canonical columns offered per unexpected header.
const maxSuggestions = 3

// ColumnCount pairs a column with a number of cells.
type ColumnCount struct {
	Column string
	Count  int
}

// HeaderGroup lists headers that differ only by case.
type HeaderGroup struct {
	Key      string
	Variants []string
}

// Analysis describes the content of one output file.
type Analysis struct {
	Records          int
	Columns          []string
	Missing          []string
	Unexpected       []string
	Suggestions      map[string][]string
	CaseDuplicates   []HeaderGroup
	EmptyCounts      []ColumnCount
	UnknownNames     int
	UnknownLocations []ColumnCount
	FirstRecord      map[string]string
}

// Analyze inspects a parsed output file.
func Analyze(tbl *tabular.Table, tables *schema.Tables) *Analysis {
	a := &Analysis{
		Records:     len(tbl.Rows),
		Columns:     slices.Clone(tbl.Header),
		Suggestions: map[string][]string{},
	}

	for _, col := range tables.Columns() {
		if !slices.Contains(tbl.Header, col) {
			a.Missing = append(a.Missing, col)
		}
	}

	for _, h := range tbl.Header {
		if tables.IsCanonical(h) || slices.Contains(a.Unexpected, h) {
			continue
		}

		a.Unexpected = append(a.Unexpected, h)
		if s := match.Suggest(h, tables.Columns(), maxSuggestions); len(s) > 0 {
			a.Suggestions[h] = s
		}
	}

	a.CaseDuplicates = caseDuplicates(tbl.Header)

	for c, h := range tbl.Header {
		empty := 0
		unknown := 0

		for _, row := range tbl.Rows {
			v := strings.TrimSpace(row[c])
			if v == "" {
				empty++
			}

			if v == "Unknown" {
				unknown++
			}
		}

		if empty > 0 {
			a.EmptyCounts = append(a.EmptyCounts, ColumnCount{Column: h, Count: empty})
		}

		lower := strings.ToLower(h)
		if strings.Contains(lower, "country") || strings.Contains(lower, "city") {
			a.UnknownLocations = append(a.UnknownLocations, ColumnCount{Column: h, Count: unknown})
		}
	}

	if c := slices.Index(tbl.Header, schema.Name); c >= 0 {
		for _, row := range tbl.Rows {
			if row[c] == schema.UnknownTeacher {
				a.UnknownNames++
			}
		}
	}

	if len(tbl.Rows) > 0 {
		a.FirstRecord = make(map[string]string, len(tbl.Header))
		for c, h := range tbl.Header {
			if _, seen := a.FirstRecord[h]; !seen {
				a.FirstRecord[h] = tbl.Rows[0][c]
			}
		}
	}

	return a
}

func caseDuplicates(header []string) []HeaderGroup {
	var groups []HeaderGroup

	index := map[string]int{}

	for _, h := range header {
		key := strings.ToLower(h)

		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, HeaderGroup{Key: key, Variants: []string{h}})

			continue
		}

		groups[i].Variants = append(groups[i].Variants, h)
	}

	return slices.DeleteFunc(groups, func(g HeaderGroup) bool { return len(g.Variants) < 2 })
}

// Clean reports whether the file has the canonical header set and no
// case-insensitive duplicates.
func (a *Analysis) Clean() bool {
	return len(a.Missing) == 0 && len(a.Unexpected) == 0 && len(a.CaseDuplicates) == 0
}

// WriteText renders the analysis as plain text.
func (a *Analysis) WriteText(w io.Writer) error {
	var sb strings.Builder

	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&sb, "%s\nOUTPUT ANALYSIS\n%s\n\n", rule, rule)
	fmt.Fprintf(&sb, "Records: %d\n", a.Records)
	fmt.Fprintf(&sb, "Columns: %d\n\n", len(a.Columns))

	fmt.Fprintf(&sb, "Missing canonical columns: %s\n", listOrNone(a.Missing))
	fmt.Fprintf(&sb, "Unexpected columns: %s\n", listOrNone(a.Unexpected))

	for _, h := range a.Unexpected {
		if s, ok := a.Suggestions[h]; ok {
			fmt.Fprintf(&sb, "  %s: did you mean %s?\n", h, strings.Join(s, ", "))
		}
	}

	sb.WriteString("Duplicate headers (case-insensitive): ")

	if len(a.CaseDuplicates) == 0 {
		sb.WriteString("none\n")
	} else {
		sb.WriteString("\n")

		for _, g := range a.CaseDuplicates {
			fmt.Fprintf(&sb, "  %s: %s\n", g.Key, strings.Join(g.Variants, ", "))
		}
	}

	sb.WriteString("\nColumns with empty values:\n")

	if len(a.EmptyCounts) == 0 {
		sb.WriteString("  none\n")
	}

	for _, c := range a.EmptyCounts {
		fmt.Fprintf(&sb, "  %-32s %d of %d\n", c.Column, c.Count, a.Records)
	}

	sb.WriteString("\nData consistency:\n")
	fmt.Fprintf(&sb, "  Records named %q: %d of %d\n", schema.UnknownTeacher, a.UnknownNames, a.Records)

	for _, c := range a.UnknownLocations {
		fmt.Fprintf(&sb, "  Records with \"Unknown\" %s: %d of %d\n", c.Column, c.Count, a.Records)
	}

	sb.WriteString(rule + "\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

// Dump writes a detailed dump of the first record.
func (a *Analysis) Dump(w io.Writer) {
	spew.Fdump(w, a.FirstRecord)
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}

	return strings.Join(items, ", ")
}
