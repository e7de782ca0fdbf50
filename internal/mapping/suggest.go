package mapping

import (
	"fmt"
	"slices"
	"strings"

	"teachreach/internal/diagnostic"
	"teachreach/internal/match"
	"teachreach/internal/schema"
)

// SuggestConfig controls automatic matching of input headers to columns.
type SuggestConfig struct {
	MinConfidence      float64
	MinGap             float64
	AmbiguityThreshold float64
	MaxCandidates      int
}

// DefaultSuggestConfig returns the thresholds used by the CLI.
func DefaultSuggestConfig() SuggestConfig {
	return SuggestConfig{
		MinConfidence:      0.75,
		MinGap:             match.DefaultMinGap,
		AmbiguityThreshold: match.DefaultAmbiguityThreshold,
		MaxCandidates:      3,
	}
}

// UnmappedHeader is an input header no entry reads, with its closest columns.
type UnmappedHeader struct {
	Header     string
	Candidates match.CandidateList
	Reason     string
}

// Suggestion is a draft mapping table built on top of an existing one.
type Suggestion struct {
	Table       *Table
	AutoMatched []Entry
	Unmapped    []UnmappedHeader
	Diagnostics diagnostic.Diagnostics
}

// derivedColumns are produced by the pipeline itself and never matched.
var derivedColumns = []string{schema.CreatedAt, schema.SubjectsCount}

// Suggest extends base with direct entries for input headers that clearly
// match a canonical column, by canonical or legacy name. Columns already
// written by base, always-empty columns and derived columns are left
// alone. A nil base starts from an empty table.
func Suggest(header []string, base *Table, tables *schema.Tables, cfg SuggestConfig) *Suggestion {
	if base == nil {
		base = NewTable()
	}

	s := &Suggestion{Table: NewTable(base.Entries()...)}

	taken := map[string]bool{}
	used := map[string]bool{}

	for _, e := range base.Entries() {
		taken[tables.Canonical(e.Destination)] = true

		if e.Kind() != SpecInferred {
			used[e.Source] = true
			for _, p := range e.Parts() {
				used[p] = true
			}
		}
	}

	names, targetOf := matchNames(tables)

	for _, h := range header {
		if strings.TrimSpace(h) == "" || used[h] {
			continue
		}

		candidates := collapse(match.RankColumns(h, names), targetOf, taken)
		best := candidates.HighConfidence(cfg.MinConfidence, cfg.MinGap)

		if best != nil {
			e := Entry{Source: h, Destination: best.Column}
			s.Table.Add(e.Source, e.Destination)
			s.AutoMatched = append(s.AutoMatched, e)
			taken[best.Column] = true
			used[h] = true

			s.Diagnostics.AddInfo("auto_matched",
				fmt.Sprintf("auto-matched: %s -> %s (score: %.2f)", h, best.Column, best.Score),
				best.Column, diagnostic.NoRow)

			continue
		}

		reason := unmappedReason(candidates, cfg)
		s.Unmapped = append(s.Unmapped, UnmappedHeader{
			Header:     h,
			Candidates: candidates.Top(cfg.MaxCandidates),
			Reason:     reason,
		})

		s.Diagnostics.AddWarning("unmapped_header",
			fmt.Sprintf("input header %q: %s", h, reason), h, diagnostic.NoRow)
	}

	return s
}

// matchNames returns every name a header may match, canonical columns
// first, with the canonical column each name stands for.
func matchNames(tables *schema.Tables) ([]string, map[string]string) {
	targetOf := map[string]string{}

	var names []string

	for _, a := range tables.Aliases() {
		target := a.Target
		if tables.IsAlwaysEmpty(target) || slices.Contains(derivedColumns, target) {
			continue
		}

		name := CleanColumnName(a.Source)
		if _, seen := targetOf[name]; seen {
			continue
		}

		targetOf[name] = target
		names = append(names, name)
	}

	return names, targetOf
}

// collapse maps ranked names onto their columns, keeping the best score
// per column and dropping columns that are already taken.
func collapse(ranked match.CandidateList, targetOf map[string]string, taken map[string]bool) match.CandidateList {
	var out match.CandidateList

	seen := map[string]bool{}

	for _, c := range ranked {
		target := targetOf[c.Column]
		if taken[target] || seen[target] {
			continue
		}

		seen[target] = true
		c.Column = target
		out = append(out, c)
	}

	return out
}

func unmappedReason(candidates match.CandidateList, cfg SuggestConfig) string {
	switch {
	case len(candidates) == 0:
		return "every matching column is already mapped"
	case candidates.IsAmbiguous(cfg.AmbiguityThreshold):
		return fmt.Sprintf("ambiguous: top candidates %q (%.2f) and %q (%.2f) are too close",
			candidates[0].Column, candidates[0].Score, candidates[1].Column, candidates[1].Score)
	case candidates[0].Score < cfg.MinConfidence:
		return fmt.Sprintf("best match %q (%.2f) below threshold %.2f",
			candidates[0].Column, candidates[0].Score, cfg.MinConfidence)
	default:
		return "no high-confidence match"
	}
}
