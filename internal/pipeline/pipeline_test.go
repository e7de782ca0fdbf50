package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"teachreach/internal/assemble"
	"teachreach/internal/frame"
	"teachreach/internal/infer"
	"teachreach/internal/mapping"
	"teachreach/internal/record"
	"teachreach/internal/schema"
	"teachreach/internal/standardize"
	"teachreach/internal/tabular"
	"teachreach/internal/validate"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleTable() *mapping.Table {
	return mapping.NewTable(
		mapping.Entry{Source: "first_name + last_name", Destination: schema.Name},
		mapping.Entry{Source: "country", Destination: schema.CurrentLocationCountry},
		mapping.Entry{Source: "city", Destination: schema.CurrentLocationCity},
	)
}

func newTestPipeline(table *mapping.Table, opts ...Option) *Pipeline {
	tables := schema.DefaultTables()
	clock := func() time.Time { return fixedNow }

	base := []Option{
		WithAssembler(assemble.New(tables, assemble.WithClock(clock))),
		WithStandardizer(standardize.New(tables, standardize.WithClock(clock))),
	}

	return New(tables, table, infer.NewGateway(nil, tables), append(base, opts...)...)
}

func TestTransform_EndToEnd(t *testing.T) {
	t.Parallel()

	recs := []*record.Teacher{
		record.FromPairs("first_name", "John", "last_name", "Doe", "country", "UAE", "city", "Dubai"),
		record.FromPairs("first_name", "Jane", "last_name", "Roe", "city", "Paris"),
	}

	out, err := newTestPipeline(sampleTable()).Transform(t.Context(), recs)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Rows())
	assert.Equal(t, schema.DefaultTables().Columns(), out.Columns())

	assert.Equal(t, "John Doe", out.Cell(0, schema.Name))
	assert.Equal(t, "UAE", out.Cell(0, schema.CurrentLocationCountry))
	assert.Equal(t, "Dubai", out.Cell(0, schema.CurrentLocationCity))
	assert.Equal(t, "Unknown", out.Cell(1, schema.CurrentLocationCountry))

	id0, ok := out.Cell(0, schema.TeacherID).(string)
	require.True(t, ok)

	_, err = uuid.Parse(id0)
	require.NoError(t, err)
	assert.NotEqual(t, id0, out.Cell(1, schema.TeacherID))

	created, ok := out.Cell(0, schema.CreatedAt).(string)
	require.True(t, ok)
	assert.Contains(t, created, "T")

	for _, col := range []string{schema.Subject, schema.Headline, schema.Bio, schema.LinkedInProfileURL} {
		assert.False(t, frame.IsBlank(out.Cell(1, col)), col)
	}
}

func TestTransform_DefaultMapping(t *testing.T) {
	t.Parallel()

	tables := schema.DefaultTables()

	tests := []struct {
		name         string
		rec          *record.Teacher
		want         map[string]any
		placeholders bool
	}{
		{
			name: "populated row",
			rec: record.FromPairs(
				"First (FP)", "John", "Last (FV)", "Doe",
				"Headline (FS)", "Math Teacher",
				"Country (B)", "UAE", "City (A)", "Dubai",
				"Linkedin URL (FW)", "https://www.linkedin.com/in/johndoe",
				"ID", "12345",
			),
			want: map[string]any{
				schema.Name:                   "John Doe",
				schema.Headline:               "Math Teacher",
				schema.CurrentLocationCountry: "UAE",
				schema.CurrentLocationCity:    "Dubai",
				schema.SourceID:               "12345",
				schema.Nationality:            "International",
				schema.PreferredGradeLevel:    "Elementary",
			},
		},
		{
			name: "blank cells",
			rec: record.FromPairs(
				"First (FP)", "", "Last (FV)", "",
				"Headline (FS)", "", "Country (B)", "", "City (A)", "",
				"Linkedin URL (FW)", " ", "ID", "12346",
			),
			want: map[string]any{
				schema.Name:                   schema.UnknownTeacher,
				schema.Headline:               "Teacher",
				schema.CurrentLocationCountry: "Unknown",
				schema.CurrentLocationCity:    "Unknown",
				schema.LinkedInProfileURL:     "Not provided",
				schema.SourceID:               "12346",
			},
			placeholders: true,
		},
		{
			name: "missing columns",
			rec:  record.FromPairs("First (FP)", "Ann", "ID", "12347"),
			want: map[string]any{
				schema.Name:                   "Ann",
				schema.Headline:               "Teacher",
				schema.CurrentLocationCountry: "Unknown",
				schema.SourceID:               "12347",
			},
			placeholders: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := newTestPipeline(mapping.Default()).Transform(t.Context(), []*record.Teacher{tt.rec})
			require.NoError(t, err)
			require.Equal(t, tables.Columns(), out.Columns())

			for col, want := range tt.want {
				assert.Equal(t, want, out.Cell(0, col), col)
			}

			for _, col := range tables.OutputRequired() {
				assert.False(t, frame.IsBlank(out.Cell(0, col)), col)
			}

			rep := validate.New(tables).Run(out)

			for _, name := range []string{validate.CheckHeaderOrder, validate.CheckTeacherIDFormat, validate.CheckAlwaysEmpty} {
				res, ok := rep.Check(name)
				require.True(t, ok, name)
				assert.True(t, res.Passed, "%s: %v", name, res.Diagnostics.Errors)
			}

			required, ok := rep.Check(validate.CheckRequiredPopulated)
			require.True(t, ok)

			for _, d := range required.Diagnostics.Errors {
				assert.NotEqual(t, "empty_required", d.Code, d.Column)
			}

			assert.Equal(t, !tt.placeholders, required.Passed, "%v", required.Diagnostics.Errors)
		})
	}
}

func TestTransform_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	recs := make([]*record.Teacher, 50)
	for i := range recs {
		recs[i] = record.FromPairs(
			"first_name", "Teacher",
			"last_name", strings.Repeat("x", i+1),
			"country", "UAE",
		)
	}

	seq, err := newTestPipeline(sampleTable()).Transform(t.Context(), recs)
	require.NoError(t, err)

	par, err := newTestPipeline(sampleTable(), WithWorkers(8)).Transform(t.Context(), recs)
	require.NoError(t, err)

	strip := func(f *frame.Frame) [][]any {
		cols := f.Columns()[1:]
		sel := f.Select(cols)

		out := make([][]any, sel.Rows())
		for i := range out {
			out[i] = sel.Row(i)
		}

		return out
	}

	require.Equal(t, schema.TeacherID, seq.Columns()[0])

	if diff := cmp.Diff(strip(seq), strip(par)); diff != "" {
		t.Errorf("parallel output differs from sequential (-seq +par):\n%s", diff)
	}
}

func TestTransformRecords_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	recs := []*record.Teacher{record.FromPairs("city", "Dubai")}

	for _, workers := range []int{1, 4} {
		_, err := newTestPipeline(sampleTable(), WithWorkers(workers)).TransformRecords(ctx, recs)
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out", "teachers.csv")

	require.NoError(t, os.WriteFile(input, []byte(
		"first_name,last_name,country,city\n"+
			"John,Doe,UAE,Dubai\n"+
			"Jane,Roe\n"), 0o600))

	core, logs := observer.New(zapcore.InfoLevel)

	sum, err := newTestPipeline(sampleTable(), WithLogger(zap.New(core))).Run(t.Context(), input, output)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Records)
	assert.Equal(t, 1, sum.Warnings)
	assert.Equal(t, tabular.EncodingUTF8, sum.Encoding)
	require.NotNil(t, sum.Report)
	assert.Equal(t, 1, logs.FilterMessage("input row adjusted").Len())

	back, err := tabular.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultTables().Columns(), back.Header)
	require.Len(t, back.Rows, 2)

	f := back.Frame()
	assert.Equal(t, "John Doe", f.Cell(0, schema.Name))
	assert.Equal(t, "Unknown", f.Cell(1, schema.CurrentLocationCity))
	assert.Equal(t, "2025-03-01T12:00:00Z", f.Cell(0, schema.CreatedAt))
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, "out.csv")

	_, err := newTestPipeline(sampleTable()).Run(t.Context(), filepath.Join(dir, "missing.csv"), output)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(output)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestLoadMapping(t *testing.T) {
	t.Parallel()

	tables := schema.DefaultTables()
	dir := t.TempDir()

	t.Run("missing file falls back", func(t *testing.T) {
		t.Parallel()

		core, logs := observer.New(zapcore.WarnLevel)

		table := LoadMapping(filepath.Join(dir, "missing.tsv"), tables, zap.New(core))
		assert.Equal(t, mapping.Default().Entries(), table.Entries())
		assert.Equal(t, 1, logs.FilterMessage("mapping file not found, using built-in mapping").Len())
	})

	t.Run("empty file falls back", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "empty.tsv")
		require.NoError(t, os.WriteFile(path, []byte("Source\tDestination\n"), 0o600))

		core, logs := observer.New(zapcore.WarnLevel)

		table := LoadMapping(path, tables, zap.New(core))
		assert.Equal(t, mapping.Default().Entries(), table.Entries())
		assert.Equal(t, 1, logs.FilterMessage("mapping file unusable, using built-in mapping").Len())
	})

	t.Run("loaded file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "mapping.tsv")
		require.NoError(t, mapping.WriteFile(sampleTable(), path))

		table := LoadMapping(path, tables, nil)
		assert.Equal(t, sampleTable().Entries(), table.Entries())
	})

	t.Run("no path", func(t *testing.T) {
		t.Parallel()

		table := LoadMapping("", tables, nil)
		assert.Equal(t, mapping.Default().Entries(), table.Entries())
	})
}
