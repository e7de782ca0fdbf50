// Package mapping provides the mapping table that tells the resolver which
// source attribute feeds which output column, together with its loaders and
// structural validation.
//
// # Source specifications
//
// Each entry pairs a source specification with a destination column:
//
//   - a single attribute name copies the value verbatim ("Headline (FS)")
//   - a "+"-joined list concatenates the non-empty parts with one space
//     ("First (FP) + Last (FV)")
//   - the token "AI" (any case) requests the value from the inference gateway
//
// The table is an ordered list, not a map: several entries may share the
// source "AI" and later entries targeting the same destination win.
//
// # File formats
//
// The tab-separated format has a header line followed by
// "source<TAB>destination" lines. Blank lines and lines starting with
// "Inferred" are skipped.
//
// The YAML format mirrors it:
//
//	version: "1"
//	# one-to-one shorthand, applied first in key order
//	121:
//	  Headline (FS): headline
//	mappings:
//	  - source: [First (FP), Last (FV)]
//	    target: name
//	  - source: AI
//	    target: Nationality
package mapping
