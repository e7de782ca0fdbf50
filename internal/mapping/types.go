package mapping

import (
	"slices"
	"strings"

	"teachreach/internal/common"
)

// InferenceToken marks an entry whose value comes from the inference gateway.
const InferenceToken = "AI"

// combinationSep joins the parts of a combination source.
const combinationSep = "+"

//go:generate go tool stringer -type=SpecKind -trimprefix=Spec -output=speckind_string.go

// SpecKind classifies a source specification.
type SpecKind int

const (
	SpecDirect SpecKind = iota
	SpecCombination
	SpecInferred
)

// ParseSpec classifies a source specification.
func ParseSpec(source string) SpecKind {
	switch {
	case strings.EqualFold(strings.TrimSpace(source), InferenceToken):
		return SpecInferred
	case strings.Contains(source, combinationSep):
		return SpecCombination
	default:
		return SpecDirect
	}
}

// Entry is one (source specification, destination column) pair.
type Entry struct {
	Source      string
	Destination string
}

// Kind returns the kind of the entry's source specification.
func (e Entry) Kind() SpecKind {
	return ParseSpec(e.Source)
}

// Parts returns the trimmed attribute names of a combination source.
// Empty parts are kept as "" so callers can report them.
func (e Entry) Parts() []string {
	raw := strings.Split(e.Source, combinationSep)
	parts := make([]string, len(raw))

	for i, p := range raw {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}

// Table is an ordered list of mapping entries.
type Table struct {
	entries []Entry
}

// NewTable creates a table holding the given entries in order.
func NewTable(entries ...Entry) *Table {
	return &Table{entries: slices.Clone(entries)}
}

// Add appends an entry.
func (t *Table) Add(source, destination string) {
	t.entries = append(t.entries, Entry{Source: source, Destination: destination})
}

// Entries returns a copy of the entries in order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}

	return slices.Clone(t.entries)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// InferredDestinations returns the destinations of the "AI" entries in
// order, without duplicates.
func (t *Table) InferredDestinations() []string {
	var out []string

	for _, e := range t.Entries() {
		if e.Kind() == SpecInferred {
			out = common.AppendUnique(out, e.Destination)
		}
	}

	return out
}

// Destinations returns every distinct destination in first-seen order.
func (t *Table) Destinations() []string {
	var out []string

	for _, e := range t.Entries() {
		out = common.AppendUnique(out, e.Destination)
	}

	return out
}

// IsEmpty returns true if the table has no entries.
func (t *Table) IsEmpty() bool {
	return common.IsEmpty(t.Entries())
}
