package standardize

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"teachreach/internal/frame"
	"teachreach/internal/record"
	"teachreach/internal/schema"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStandardizer(opts ...Option) *Standardizer {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(schema.DefaultTables(), opts...)
}

func rows(f *frame.Frame) [][]any {
	out := make([][]any, f.Rows())
	for i := range out {
		out[i] = f.Row(i)
	}

	return out
}

func TestStandardize_CanonicalShape(t *testing.T) {
	t.Parallel()

	src := frame.FromRecords([]record.Transformed{
		{
			schema.TeacherID:           "11111111-2222-3333-4444-555555555555",
			schema.Name:                "John Doe",
			schema.Subject:             []string{"Math", "Physics"},
			schema.CurrentLocationCity: "Dubai",
			schema.LegacyCountry:       "UAE",
			schema.LegacySourceID:      "12345",
			"first_name":               "John",
		},
	})

	out, err := newTestStandardizer().Standardize(src)
	require.NoError(t, err)

	tables := schema.DefaultTables()
	assert.Equal(t, tables.Columns(), out.Columns())
	assert.Len(t, out.Columns(), 30)
	assert.False(t, out.Has("first_name"))

	assert.Equal(t, "John Doe", out.Cell(0, schema.Name))
	assert.Equal(t, []string{"Math", "Physics"}, out.Cell(0, schema.Subject))
	assert.Equal(t, "UAE", out.Cell(0, schema.CurrentLocationCountry))
	assert.Equal(t, "12345", out.Cell(0, schema.SourceID))
	assert.Equal(t, "2025-03-01T12:00:00Z", out.Cell(0, schema.CreatedAt))
	assert.Equal(t, "0", out.Cell(0, schema.YearsOfTeachingExperience))
	assert.Equal(t, 0, out.Cell(0, schema.SubjectsCount))
	assert.Nil(t, out.Cell(0, schema.HourlyRate))
	assert.Equal(t, "", out.Cell(0, schema.Bio))
}

func TestStandardize_LegacyOverwritesOnlyNonNull(t *testing.T) {
	t.Parallel()

	src := frame.FromRecords([]record.Transformed{
		{schema.TeacherID: "a-b-c-d-e", schema.Name: "Canonical", schema.LegacyName: "Legacy"},
		{schema.TeacherID: "a-b-c-d-f", schema.Name: "Kept"},
	})

	out, err := newTestStandardizer().Standardize(src)
	require.NoError(t, err)

	name, _ := out.Column(schema.Name)
	assert.Equal(t, []any{"Legacy", "Kept"}, name)
}

func TestStandardize_BlankLegacyKeepsCanonical(t *testing.T) {
	t.Parallel()

	src := frame.FromRecords([]record.Transformed{
		{
			schema.TeacherID:              "a-b-c-d-e",
			schema.CurrentLocationCountry: "Unknown",
			schema.LegacyCountry:          "",
			schema.Headline:               "Teacher",
			schema.LegacyHeadline:         "   ",
			schema.Subject:                []string{"Math"},
			schema.LegacySubjects:         []string{},
		},
		{
			schema.TeacherID:              "a-b-c-d-f",
			schema.CurrentLocationCountry: "Unknown",
			schema.LegacyCountry:          "UAE",
			schema.Headline:               "Teacher",
			schema.LegacyHeadline:         "Science Lead",
			schema.Subject:                []string{"Math"},
			schema.LegacySubjects:         []string{"Physics"},
		},
	})

	out, err := newTestStandardizer().Standardize(src)
	require.NoError(t, err)

	country, _ := out.Column(schema.CurrentLocationCountry)
	assert.Equal(t, []any{"Unknown", "UAE"}, country)

	headline, _ := out.Column(schema.Headline)
	assert.Equal(t, []any{"Teacher", "Science Lead"}, headline)

	subject, _ := out.Column(schema.Subject)
	assert.Equal(t, []any{[]string{"Math"}, []string{"Physics"}}, subject)
}

func TestStandardize_NameFallback(t *testing.T) {
	t.Parallel()

	src := frame.FromRecords([]record.Transformed{
		{schema.TeacherID: "a-b-c-d-e", schema.Name: "Jane"},
		{schema.TeacherID: "a-b-c-d-f"},
	})

	out, err := newTestStandardizer().Standardize(src)
	require.NoError(t, err)

	name, _ := out.Column(schema.Name)
	assert.Equal(t, []any{"Jane", schema.UnknownTeacher}, name)
}

func TestStandardize_MissingTeacherID(t *testing.T) {
	t.Parallel()

	src := frame.FromRecords([]record.Transformed{{schema.Name: "Jane"}})

	_, err := newTestStandardizer().Standardize(src)
	require.ErrorIs(t, err, ErrMissingTeacherID)
}

func TestStandardize_LegacyTeacherID(t *testing.T) {
	t.Parallel()

	src := frame.FromRecords([]record.Transformed{{schema.LegacyTeacherID: "a-b-c-d-e"}})

	out, err := newTestStandardizer().Standardize(src)
	require.NoError(t, err)
	assert.Equal(t, "a-b-c-d-e", out.Cell(0, schema.TeacherID))
}

func TestStandardize_KeepsExistingCreatedAt(t *testing.T) {
	t.Parallel()

	src := frame.FromRecords([]record.Transformed{
		{schema.TeacherID: "a-b-c-d-e", schema.CreatedAt: "2024-01-01T00:00:00Z"},
		{schema.TeacherID: "a-b-c-d-f"},
	})

	out, err := newTestStandardizer().Standardize(src)
	require.NoError(t, err)

	created, _ := out.Column(schema.CreatedAt)
	assert.Equal(t, []any{"2024-01-01T00:00:00Z", "2025-03-01T12:00:00Z"}, created)
}

func TestStandardize_AlwaysEmptyEnforcement(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)

	src := frame.FromRecords([]record.Transformed{
		{schema.TeacherID: "a-b-c-d-e", schema.HourlyRate: 45, schema.ProfileVisibility: "private"},
		{schema.TeacherID: "a-b-c-d-f", schema.HourlyRate: 0, schema.ProfileVisibility: "public"},
	})

	out, err := newTestStandardizer(WithLogger(zap.New(core))).Standardize(src)
	require.NoError(t, err)

	rate, _ := out.Column(schema.HourlyRate)
	assert.Equal(t, []any{nil, 0}, rate)

	visibility, _ := out.Column(schema.ProfileVisibility)
	assert.Equal(t, []any{"private", nil}, visibility)

	assert.Equal(t, 2, logs.FilterMessage("always-empty column had values, cleared").Len())
}

func TestStandardize_Idempotent(t *testing.T) {
	t.Parallel()

	src := frame.FromRecords([]record.Transformed{
		{
			schema.TeacherID:          "a-b-c-d-e",
			schema.LegacyName:         "Jane Roe",
			schema.Subject:            "Science",
			schema.LegacyYears:        "7",
			schema.WillingToRelocate:  true,
			schema.LegacyNationality:  "British",
			schema.LegacyGradeLevel:   "Grade 5",
			schema.LegacyCurriculum:   "British",
			schema.LinkedInProfileURL: "https://linkedin.com/in/jane",
		},
		{schema.TeacherID: "a-b-c-d-f"},
	})

	s := newTestStandardizer()

	first, err := s.Standardize(src)
	require.NoError(t, err)

	second, err := s.Standardize(first)
	require.NoError(t, err)

	assert.Equal(t, first.Columns(), second.Columns())

	if diff := cmp.Diff(rows(first), rows(second)); diff != "" {
		t.Errorf("second pass changed the frame (-first +second):\n%s", diff)
	}
}

func TestStandardize_EmptyBatch(t *testing.T) {
	t.Parallel()

	out, err := newTestStandardizer().Standardize(frame.New(0))
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultTables().Columns(), out.Columns())
	assert.Zero(t, out.Rows())
}
