// Package validate runs data-quality checks over a standardized frame.
//
// Each check is independent and reports pass or fail together with row
// level diagnostics. Checks never stop a transformation; callers decide
// what a failed report means.
package validate
