package mapping

import (
	"fmt"
	"strings"

	"teachreach/internal/diagnostic"
	"teachreach/internal/match"
	"teachreach/internal/schema"
)

// maxSuggestions bounds the number of closest columns reported.
const maxSuggestions = 3

// Validate checks a mapping table for structural problems. Findings never
// stop a run; the resolver skips what it cannot use.
func Validate(t *Table, tables *schema.Tables) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("mapping_is_nil", "mapping table is nil", "", diagnostic.NoRow)
		return res
	}

	if t.IsEmpty() {
		res.AddWarning("empty_mapping", "mapping table has no entries", "", diagnostic.NoRow)
		return res
	}

	writers := map[string]int{}
	inferred := map[string]int{}

	for i, e := range t.Entries() {
		if strings.TrimSpace(e.Source) == "" {
			res.AddError("empty_source", fmt.Sprintf("entry %d has no source", i+1), e.Destination, diagnostic.NoRow)
			continue
		}

		if strings.TrimSpace(e.Destination) == "" {
			res.AddError("empty_destination", fmt.Sprintf("entry %d (%s) has no destination", i+1, e.Source), "", diagnostic.NoRow)
			continue
		}

		switch e.Kind() {
		case SpecInferred:
			inferred[e.Destination]++
			if inferred[e.Destination] == 2 {
				res.AddInfo("duplicate_inference", "destination is requested from inference more than once", e.Destination, diagnostic.NoRow)
			}
		case SpecCombination:
			validateCombination(res, e)
			countWriter(res, writers, e.Destination)
		case SpecDirect:
			countWriter(res, writers, e.Destination)
		}

		if tables != nil {
			validateDestination(res, e.Destination, tables)
		}
	}

	return res
}

func countWriter(res *diagnostic.Diagnostics, writers map[string]int, destination string) {
	writers[destination]++
	if writers[destination] == 2 {
		res.AddInfo("shared_destination", "destination is written by more than one entry; the last one wins", destination, diagnostic.NoRow)
	}
}

func validateCombination(res *diagnostic.Diagnostics, e Entry) {
	for _, p := range e.Parts() {
		if p == "" {
			res.AddWarning("empty_combination_part",
				fmt.Sprintf("combination %q has an empty part", e.Source), e.Destination, diagnostic.NoRow)

			return
		}
	}
}

// validateDestination warns about destinations the standardizer will not
// carry into the output and suggests the closest canonical columns.
func validateDestination(res *diagnostic.Diagnostics, destination string, tables *schema.Tables) {
	if tables.IsKnownColumn(destination) {
		return
	}

	suggestions := match.Suggest(CleanColumnName(destination), tables.Columns(), maxSuggestions)
	res.AddWarningWithSuggestions("unknown_destination",
		"destination is not a canonical or legacy column and will be dropped from the output",
		destination, suggestions)
}
