package match

import (
	"sort"
	"strings"
)

// Candidate is a canonical column scored against a header.
type Candidate struct {
	Column string
	Score  float64

	NormalizedHeader string
	NormalizedColumn string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankColumns scores every column against header and returns the candidates
// sorted by score, best first. Shared tokens can only raise a score, so
// "Linkedin URL" prefers linkedin_profile_url over a shorter edit distance.
func RankColumns(header string, columns []string) CandidateList {
	headerNorm := NormalizeIdent(header)
	headerTokens := TokenizeIdent(header)

	candidates := make(CandidateList, 0, len(columns))

	for _, col := range columns {
		colNorm := NormalizeIdent(col)

		score := max(
			LevenshteinNormalized(headerNorm, colNorm),
			NormalizedLevenshteinScoreWithSuffixStrip(header, col),
		)

		overlap := tokenOverlap(headerTokens, TokenizeIdent(col))
		score = max(score, score*scoreWeight+overlap*overlapWeight)

		candidates = append(candidates, Candidate{
			Column:           col,
			Score:            score,
			NormalizedHeader: headerNorm,
			NormalizedColumn: colNorm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

const (
	scoreWeight   = 0.7
	overlapWeight = 0.3
)

// tokenOverlap returns the share of header tokens found among column tokens.
func tokenOverlap(header, column []string) float64 {
	if len(header) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(column))
	for _, t := range column {
		set[t] = struct{}{}
	}

	hits := 0

	for _, t := range header {
		if _, ok := set[t]; ok {
			hits++
		}
	}

	return float64(hits) / float64(len(header))
}

// Suggest returns up to n column names whose score reaches DefaultMinScore.
func Suggest(header string, columns []string, n int) []string {
	var out []string

	for _, c := range RankColumns(header, columns).AboveThreshold(DefaultMinScore).Top(n) {
		out = append(out, c.Column)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by column name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return strings.Compare(c[i].Column, c[j].Column) < 0
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// AboveThreshold returns candidates with a score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// HighConfidence returns the best candidate if it clearly beats the others.
// Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if len(c) > 1 && c[0].Score-c[1].Score < minGap {
		return nil
	}

	return best
}

// Confidence thresholds for header suggestions.
const (
	// DefaultMinScore is the minimum score for a suggestion.
	DefaultMinScore = 0.6
	// DefaultMinGap is the minimum score gap for a confident match.
	DefaultMinGap = 0.1
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.05
)
