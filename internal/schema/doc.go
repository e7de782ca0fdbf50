// Package schema defines the canonical output columns of a teacher roster
// and the static tables that drive defaulting: required-field defaults,
// global column defaults, inference fallbacks, legacy column aliases and the
// curriculum and grade-level vocabularies.
//
// All tables live in an immutable Tables value built once by DefaultTables
// and handed to every component that needs it.
package schema
