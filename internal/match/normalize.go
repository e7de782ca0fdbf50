package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeIdent normalizes a column name for fuzzy matching.
// The normalization pipeline:
// 1. Fold accents (é -> e).
// 2. Tokenize CamelCase and separators.
// 3. Case-fold to lower.
// 4. Strip separators.
func NormalizeIdent(s string) string {
	tokens := tokenizeCamelCase(foldAccents(s))

	joined := strings.Join(tokens, "")
	joined = strings.ToLower(joined)

	return stripSeparators(joined)
}

// NormalizeIdentWithSuffixStrip normalizes and strips one common trailing
// token such as "url" or "id".
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	// longer suffixes first so "ids" is not cut to "s"
	suffixes := []string{"address", "url", "ids", "id", "at"}
	for _, suffix := range suffixes {
		if strings.HasSuffix(normalized, suffix) && len(normalized) > len(suffix) {
			normalized = strings.TrimSuffix(normalized, suffix)

			break
		}
	}

	return normalized
}

// foldAccents removes combining marks after canonical decomposition.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// tokenizeCamelCase splits a CamelCase or separated string into tokens.
// Examples:
//   - "linkedinURL" -> ["linkedin", "URL"]
//   - "first_name" -> ["first", "name"]
//   - "Current school" -> ["Current", "school"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	rs := []rune(s)
	for i, r := range rs {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(rs, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune separates words in a header.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '/', '.', '(', ')':
		return true
	default:
		return false
	}
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(rs []rune, i int) bool {
	r := rs[i]
	prev := rs[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// lower to upper: "linkedinURL" splits before 'U'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// end of acronym: "URLField" splits before 'F'
	hasNextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

// stripSeparators removes separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// TokenizeIdent splits a column name into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(foldAccents(s))
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}
