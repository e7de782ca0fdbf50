package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// NoRow marks a diagnostic that is not tied to a particular record.
const NoRow = -1

// Diagnostics holds all findings of one check or load step.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Column names the column or mapping destination this relates to (if any).
	Column string
	// Row is the zero-based record index, or NoRow.
	Row int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, column string, row int) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, column, row))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, column string, row int) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, column, row))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, column string, row int) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, column, row))
}

// AddWarningWithSuggestions adds a warning that carries alternatives.
func (d *Diagnostics) AddWarningWithSuggestions(code, message, column string, suggestions []string) {
	diag := newDiagnostic(SeverityWarning, code, message, column, NoRow)
	diag.Suggestions = suggestions
	d.Warnings = append(d.Warnings, diag)
}

func newDiagnostic(severity Severity, code, message, column string, row int) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Column:   column,
		Row:      row,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Len returns the total number of findings.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every finding, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Column != "" {
		prefix = append(prefix, "["+d.Column+"]")
	}

	if d.Row != NoRow {
		prefix = append(prefix, fmt.Sprintf("row %d", d.Row+1))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
