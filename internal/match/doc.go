// Package match provides column-name normalization, Levenshtein similarity
// and candidate ranking used to suggest the canonical column a misspelled
// or legacy header most likely refers to.
//
// Key functions:
//   - NormalizeIdent: normalizes headers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankColumns: ranks canonical columns against a header
package match
