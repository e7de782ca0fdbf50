package validate

import (
	"fmt"
	"strings"

	"teachreach/internal/diagnostic"
)

// Check names.
const (
	CheckHeaderOrder          = "header_order"
	CheckRequiredPopulated    = "required_populated"
	CheckTeacherIDFormat      = "teacher_id_format"
	CheckCurriculumVocabulary = "curriculum_vocabulary"
	CheckGradeLevelVocabulary = "grade_level_vocabulary"
	CheckURLFormat            = "url_format"
	CheckEmailFormat          = "email_format"
	CheckAlwaysEmpty          = "always_empty"
	CheckCreatedAtFormat      = "created_at_format"
	CheckSubjectsCountFormat  = "subjects_count_format"
)

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name        string
	Passed      bool
	Diagnostics diagnostic.Diagnostics
}

// Report collects the results of every check run over a frame.
type Report struct {
	Rows   int
	Checks []CheckResult
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}

	return true
}

// Failed returns the names of the failed checks in run order.
func (r *Report) Failed() []string {
	var out []string

	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c.Name)
		}
	}

	return out
}

// Check returns the result of the named check.
func (r *Report) Check(name string) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}

	return CheckResult{}, false
}

// Diagnostics merges the diagnostics of every check.
func (r *Report) Diagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics

	for _, c := range r.Checks {
		all.Merge(c.Diagnostics)
	}

	return all
}

// String renders the report as a short human-readable summary.
func (r *Report) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "validated %d records\n", r.Rows)

	for _, c := range r.Checks {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}

		fmt.Fprintf(&sb, "  %-24s %s\n", c.Name, status)

		for _, d := range c.Diagnostics.All() {
			fmt.Fprintf(&sb, "    %s\n", d)
		}
	}

	return sb.String()
}
