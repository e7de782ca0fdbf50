// Package diagnostic provides structured errors, warnings and infos
// collected while loading mapping tables and checking standardized output.
//
// Key capabilities:
//   - Findings tagged with a stable code, column and row
//   - Closest-column suggestions for unknown headers
//   - Merging of findings from independent checks
package diagnostic
