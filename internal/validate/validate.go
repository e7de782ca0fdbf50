package validate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"teachreach/internal/common"
	"teachreach/internal/diagnostic"
	"teachreach/internal/frame"
	"teachreach/internal/record"
	"teachreach/internal/schema"
)

// maxRowFindings caps per-row diagnostics of a single check.
const maxRowFindings = 20

// Validator runs the data-quality checks.
type Validator struct {
	tables *schema.Tables
	v      *validator.Validate
}

// New creates a validator backed by the given tables.
func New(tables *schema.Tables) *Validator {
	return &Validator{
		tables: tables,
		v:      validator.New(),
	}
}

// Run executes every check against the frame.
func (val *Validator) Run(f *frame.Frame) *Report {
	checks := []struct {
		name string
		fn   func(*frame.Frame, *findings)
	}{
		{CheckHeaderOrder, val.checkHeaderOrder},
		{CheckRequiredPopulated, val.checkRequiredPopulated},
		{CheckTeacherIDFormat, val.checkTeacherID},
		{CheckCurriculumVocabulary, val.checkCurriculum},
		{CheckGradeLevelVocabulary, val.checkGradeLevel},
		{CheckURLFormat, val.checkURLs},
		{CheckEmailFormat, val.checkEmail},
		{CheckAlwaysEmpty, val.checkAlwaysEmpty},
		{CheckCreatedAtFormat, val.checkCreatedAt},
		{CheckSubjectsCountFormat, val.checkSubjectsCount},
	}

	report := &Report{Rows: f.Rows()}

	for _, c := range checks {
		fs := &findings{}
		c.fn(f, fs)
		fs.flush()

		report.Checks = append(report.Checks, CheckResult{
			Name:        c.name,
			Passed:      !fs.HasErrors(),
			Diagnostics: fs.Diagnostics,
		})
	}

	return report
}

func (val *Validator) checkHeaderOrder(f *frame.Frame, fs *findings) {
	want := val.tables.Columns()
	got := f.Columns()

	if slices.Equal(want, got) {
		return
	}

	for _, col := range want {
		if !f.Has(col) {
			fs.AddError("missing_column", "canonical column is missing", col, diagnostic.NoRow)
		}
	}

	for _, col := range got {
		if !val.tables.IsCanonical(col) {
			fs.AddError("unexpected_column", "column is not part of the canonical schema", col, diagnostic.NoRow)
		}
	}

	if !fs.HasErrors() {
		fs.AddError("column_order", fmt.Sprintf("columns are out of order, want %s", strings.Join(want, ", ")), "", diagnostic.NoRow)
	}
}

func (val *Validator) checkRequiredPopulated(f *frame.Frame, fs *findings) {
	for _, col := range val.tables.OutputRequired() {
		cells, ok := f.Column(col)
		if !ok {
			fs.AddError("missing_column", "required column is missing", col, diagnostic.NoRow)
			continue
		}

		for i, c := range cells {
			text := strings.TrimSpace(record.Render(c))

			switch {
			case text == "":
				fs.row(i, "empty_required", "required value is empty", col)
			case val.tables.IsPlaceholder(text):
				fs.row(i, "placeholder_value", fmt.Sprintf("required value is a placeholder: %q", text), col)
			}
		}
	}
}

func (val *Validator) checkTeacherID(f *frame.Frame, fs *findings) {
	cells, ok := f.Column(schema.TeacherID)
	if !ok {
		return
	}

	seen := map[string]int{}

	for i, c := range cells {
		id := strings.TrimSpace(record.Render(c))
		if id == "" {
			continue
		}

		if !isTeacherID(id) {
			fs.row(i, "malformed_id", fmt.Sprintf("teacher_id %q is not a UUID", id), schema.TeacherID)
		}

		if first, dup := seen[id]; dup {
			fs.row(i, "duplicate_id", fmt.Sprintf("teacher_id %q already used by row %d", id, first+1), schema.TeacherID)
			continue
		}

		seen[id] = i
	}
}

// isTeacherID accepts RFC 4122 UUIDs and any five hyphen-delimited segments.
func isTeacherID(id string) bool {
	if _, err := uuid.Parse(id); err == nil {
		return true
	}

	parts := strings.Split(id, "-")

	return len(parts) == 5 && !slices.Contains(parts, "")
}

func (val *Validator) checkCurriculum(f *frame.Frame, fs *findings) {
	val.checkVocabulary(f, fs, schema.PreferredCurriculumExperience, "unknown_curriculum", val.tables.IsCurriculum)
}

func (val *Validator) checkGradeLevel(f *frame.Frame, fs *findings) {
	val.checkVocabulary(f, fs, schema.PreferredGradeLevel, "unknown_grade_level", val.tables.IsGradeLevel)
}

func (val *Validator) checkVocabulary(f *frame.Frame, fs *findings, col, code string, known func(string) bool) {
	cells, ok := f.Column(col)
	if !ok {
		return
	}

	for i, c := range cells {
		for _, item := range common.SplitTrim(record.Render(c), ",") {
			if !known(item) {
				fs.row(i, code, fmt.Sprintf("%q is not a recognized value", item), col)
			}
		}
	}
}

func (val *Validator) checkURLs(f *frame.Frame, fs *findings) {
	for _, col := range val.tables.URLColumns() {
		cells, ok := f.Column(col)
		if !ok {
			continue
		}

		for i, c := range cells {
			text := strings.TrimSpace(record.Render(c))
			if text == "" || val.tables.IsPlaceholder(text) {
				continue
			}

			if !val.isWebURL(text) {
				fs.row(i, "malformed_url", fmt.Sprintf("%q is not an http(s) URL", text), col)
			}
		}
	}
}

func (val *Validator) isWebURL(s string) bool {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}

	return val.v.Var(s, "url") == nil
}

func (val *Validator) checkEmail(f *frame.Frame, fs *findings) {
	cells, ok := f.Column(schema.Email)
	if !ok {
		return
	}

	for i, c := range cells {
		text := strings.TrimSpace(record.Render(c))
		if text == "" {
			continue
		}

		if err := val.v.Var(text, "email"); err != nil {
			fs.row(i, "malformed_email", fmt.Sprintf("%q is not an email address", text), schema.Email)
		}
	}
}

func (val *Validator) checkAlwaysEmpty(f *frame.Frame, fs *findings) {
	for _, col := range val.tables.AlwaysEmpty() {
		cells, ok := f.Column(col)
		if !ok {
			continue
		}

		for i, c := range cells {
			if !val.allowedEmpty(c) {
				fs.row(i, "unexpected_value", fmt.Sprintf("always-empty column holds %q", record.Render(c)), col)
			}
		}
	}
}

// allowedEmpty also accepts the textual forms of numeric and boolean
// defaults, as found in frames read back from a file.
func (val *Validator) allowedEmpty(c any) bool {
	if val.tables.IsAllowedEmptyValue(c) {
		return true
	}

	s, ok := c.(string)
	if !ok {
		return false
	}

	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return val.tables.IsAllowedEmptyValue(n)
	}

	if b, err := strconv.ParseBool(s); err == nil {
		return val.tables.IsAllowedEmptyValue(b)
	}

	return false
}

func (val *Validator) checkCreatedAt(f *frame.Frame, fs *findings) {
	cells, ok := f.Column(schema.CreatedAt)
	if !ok {
		return
	}

	for i, c := range cells {
		text := record.Render(c)
		if strings.TrimSpace(text) == "" {
			continue
		}

		if !strings.ContainsAny(text, "T ") {
			fs.row(i, "malformed_timestamp", fmt.Sprintf("created_at %q has no date/time separator", text), schema.CreatedAt)
		}
	}
}

func (val *Validator) checkSubjectsCount(f *frame.Frame, fs *findings) {
	cells, ok := f.Column(schema.SubjectsCount)
	if !ok {
		return
	}

	for i, c := range cells {
		if frame.IsBlank(c) {
			continue
		}

		if !isNonNegativeInt(c) {
			fs.row(i, "malformed_count", fmt.Sprintf("subjects_count %q is not a non-negative integer", record.Render(c)), schema.SubjectsCount)
		}
	}
}

func isNonNegativeInt(c any) bool {
	switch v := c.(type) {
	case int:
		return v >= 0
	case int64:
		return v >= 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return err == nil && n >= 0
	default:
		return false
	}
}
