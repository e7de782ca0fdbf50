package common

import "strings"

// IsBlank returns true if s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SplitTrim splits s on sep, trims every part and drops the empty ones.
// It returns nil when no non-empty part remains.
func SplitTrim(s, sep string) []string {
	var out []string

	for part := range strings.SplitSeq(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
