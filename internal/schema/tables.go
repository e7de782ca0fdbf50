package schema

import (
	"slices"
	"strings"
)

// Default pairs a column with its static value.
type Default struct {
	Column string
	Value  any
}

// Alias maps a source column onto a canonical column.
type Alias struct {
	Source string
	Target string
}

// Tables is the immutable set of lookup tables shared by the pipeline stages.
// The zero value is not usable; call DefaultTables.
type Tables struct {
	columns        []string
	columnIndex    map[string]int
	required       []Default
	outputRequired []string
	alwaysEmpty    map[string]struct{}
	allowedEmpty   []any
	calculated     []string
	globalDefaults map[string]any
	aliases        []Alias
	canonicalOf    map[string]string
	fallbacks      map[string]any
	fallbackOther  string
	emptyValues    map[string]any
	placeholders   map[string]struct{}
	curricula      map[string]struct{}
	gradeLevels    map[string]struct{}
}

// UnknownTeacher is the name given to records without any usable name.
const UnknownTeacher = "Unknown Teacher"

// DefaultTables builds the tables used by a standard run.
func DefaultTables() *Tables {
	t := &Tables{
		columns:        slices.Clone(canonicalColumns),
		columnIndex:    make(map[string]int, len(canonicalColumns)),
		outputRequired: slices.Clone(outputRequiredColumns),
		alwaysEmpty:    toSet(alwaysEmptyColumns, false),
		calculated:     slices.Clone(calculatedColumns),
		canonicalOf:    map[string]string{},
		fallbackOther:  "Unknown",
		placeholders:   toSet(placeholderValues, true),
		curricula:      toSet(curriculumVocabulary, true),
		gradeLevels:    toSet(gradeLevelVocabulary, true),
	}

	for i, col := range t.columns {
		t.columnIndex[col] = i
	}

	// teacher_id has no static value; it is generated per record.
	t.required = []Default{
		{Column: TeacherID},
		{Column: Name, Value: UnknownTeacher},
		{Column: Subject, Value: "General Education"},
		{Column: Headline, Value: "Teacher"},
		{Column: CurrentLocationCountry, Value: "Unknown"},
		{Column: CurrentLocationCity, Value: "Unknown"},
		{Column: Bio, Value: "No biography provided"},
		{Column: PreferredCurriculumExperience, Value: "Not specified"},
		{Column: YearsOfTeachingExperience, Value: "0"},
		{Column: LinkedInProfileURL, Value: "Not provided"},
	}

	t.allowedEmpty = []any{nil, "", 0, false, "unknown", "not_verified", "private"}

	// teacher_id, created_at and name are resolved by dedicated steps.
	t.globalDefaults = map[string]any{
		Subject:                       "",
		Headline:                      "",
		Bio:                           "",
		PreferredCurriculumExperience: "",
		YearsOfTeachingExperience:     "0",
		CurrentLocationCountry:        "",
		CurrentLocationCity:           "",
		LinkedInProfileURL:            "",
		PreferredGradeLevel:           "",
		SubjectsCount:                 0,
		Embeddings:                    "",
		Nationality:                   "",
		CurrentSchool:                 "",
		SchoolWebsite:                 "",
		Email:                         "",
		SourceID:                      "",
	}
	for _, col := range alwaysEmptyColumns {
		t.globalDefaults[col] = nil
	}

	for _, col := range t.columns {
		t.aliases = append(t.aliases, Alias{Source: col, Target: col})
	}

	t.aliases = append(t.aliases,
		Alias{Source: LegacyRawID, Target: SourceID},
		Alias{Source: LegacyName, Target: Name},
		Alias{Source: LegacyHeadline, Target: Headline},
		Alias{Source: LegacyLinkedIn, Target: LinkedInProfileURL},
		Alias{Source: LegacyGradeLevel, Target: PreferredGradeLevel},
		Alias{Source: LegacyEmail, Target: Email},
		Alias{Source: LegacySourceID, Target: SourceID},
		Alias{Source: LegacySchool, Target: CurrentSchool},
		Alias{Source: LegacyWebsite, Target: SchoolWebsite},
		Alias{Source: LegacyCountry, Target: CurrentLocationCountry},
		Alias{Source: LegacyCity, Target: CurrentLocationCity},
		Alias{Source: LegacyTeacherID, Target: TeacherID},
		Alias{Source: LegacyYears, Target: YearsOfTeachingExperience},
		Alias{Source: LegacySubjects, Target: Subject},
		Alias{Source: LegacyCurriculum, Target: PreferredCurriculumExperience},
		Alias{Source: LegacyNationality, Target: Nationality},
	)

	for _, a := range t.aliases {
		t.canonicalOf[a.Source] = a.Target
	}

	t.fallbacks = map[string]any{
		YearsOfTeachingExperience:     5,
		Subject:                       []string{"General Education"},
		PreferredCurriculumExperience: "British",
		Nationality:                   "International",
		PreferredGradeLevel:           "Elementary",
	}

	t.emptyValues = map[string]any{
		SubjectsCount:               0,
		ProfileCompletionPercentage: 0,
		HourlyRate:                  0,
		MonthlySalaryExpectation:    0,
		WillingToRelocate:           false,
	}

	return t
}

// Columns returns the canonical columns in output order.
func (t *Tables) Columns() []string {
	return slices.Clone(t.columns)
}

// IsCanonical reports whether col is one of the canonical columns.
func (t *Tables) IsCanonical(col string) bool {
	_, ok := t.columnIndex[col]
	return ok
}

// RequiredDefaults returns the required fields of an assembled record with
// their static defaults, in application order. A nil Value means the value
// is generated rather than static.
func (t *Tables) RequiredDefaults() []Default {
	return slices.Clone(t.required)
}

// OutputRequired returns the columns that must be non-empty in standardized output.
func (t *Tables) OutputRequired() []string {
	return slices.Clone(t.outputRequired)
}

// AlwaysEmpty returns the columns that source data can never populate.
func (t *Tables) AlwaysEmpty() []string {
	return slices.Clone(alwaysEmptyColumns)
}

// IsAlwaysEmpty reports whether col must stay empty.
func (t *Tables) IsAlwaysEmpty(col string) bool {
	_, ok := t.alwaysEmpty[col]
	return ok
}

// IsAllowedEmptyValue reports whether v may appear in an always-empty column.
func (t *Tables) IsAllowedEmptyValue(v any) bool {
	if s, ok := v.(string); ok {
		v = strings.ToLower(strings.TrimSpace(s))
	}

	return slices.Contains(t.allowedEmpty, v)
}

// Calculated returns the columns initialized to "" when nothing populated them.
func (t *Tables) Calculated() []string {
	return slices.Clone(t.calculated)
}

// GlobalDefault returns the declared default of a canonical column.
// The value may be nil, which keeps cells null.
func (t *Tables) GlobalDefault(col string) (any, bool) {
	v, ok := t.globalDefaults[col]
	return v, ok
}

// Aliases returns the source-to-canonical column pairs in application order.
// Every canonical column maps onto itself first.
func (t *Tables) Aliases() []Alias {
	return slices.Clone(t.aliases)
}

// Canonical returns the canonical column for name, or name itself when it
// is not a known alias.
func (t *Tables) Canonical(name string) string {
	if c, ok := t.canonicalOf[name]; ok {
		return c
	}

	return name
}

// IsKnownColumn reports whether name is canonical or a legacy alias.
func (t *Tables) IsKnownColumn(name string) bool {
	_, ok := t.canonicalOf[name]
	return ok
}

// SourcesOf returns every alias source that feeds the canonical column, in
// application order.
func (t *Tables) SourcesOf(canonical string) []string {
	var out []string

	for _, a := range t.aliases {
		if a.Target == canonical {
			out = append(out, a.Source)
		}
	}

	return out
}

// Fallback returns the static substitute for an inferred field.
// Legacy names resolve through the alias table.
func (t *Tables) Fallback(field string) any {
	v, ok := t.fallbacks[t.Canonical(field)]
	if !ok {
		return t.fallbackOther
	}

	if list, isList := v.([]string); isList {
		return slices.Clone(list)
	}

	return v
}

// EmptyValue returns the type-appropriate empty value for a canonical column.
func (t *Tables) EmptyValue(col string) any {
	if v, ok := t.emptyValues[col]; ok {
		return v
	}

	return ""
}

// IsPlaceholder reports whether s is a placeholder rather than real data.
func (t *Tables) IsPlaceholder(s string) bool {
	_, ok := t.placeholders[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsCurriculum reports whether item belongs to the curriculum vocabulary.
func (t *Tables) IsCurriculum(item string) bool {
	_, ok := t.curricula[strings.ToLower(strings.TrimSpace(item))]
	return ok
}

// IsGradeLevel reports whether item belongs to the grade-level vocabulary.
func (t *Tables) IsGradeLevel(item string) bool {
	_, ok := t.gradeLevels[strings.ToLower(strings.TrimSpace(item))]
	return ok
}

// URLColumns returns the columns that hold web addresses.
func (t *Tables) URLColumns() []string {
	return slices.Clone(urlColumns)
}

func toSet(values []string, fold bool) map[string]struct{} {
	set := make(map[string]struct{}, len(values))

	for _, v := range values {
		if fold {
			v = strings.ToLower(v)
		}

		set[v] = struct{}{}
	}

	return set
}
