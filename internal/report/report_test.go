package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teachreach/internal/schema"
	"teachreach/internal/tabular"
)

func canonicalTable(rows ...[]string) *tabular.Table {
	return &tabular.Table{Header: schema.DefaultTables().Columns(), Rows: rows}
}

func row(overrides map[string]string) []string {
	cols := schema.DefaultTables().Columns()

	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = "x"
		if v, ok := overrides[c]; ok {
			out[i] = v
		}
	}

	return out
}

func TestAnalyze_Canonical(t *testing.T) {
	t.Parallel()

	tbl := canonicalTable(
		row(map[string]string{schema.Name: schema.UnknownTeacher, schema.CurrentLocationCountry: "Unknown"}),
		row(map[string]string{schema.Bio: "", schema.CurrentLocationCity: "Unknown"}),
	)

	a := Analyze(tbl, schema.DefaultTables())

	assert.True(t, a.Clean())
	assert.Equal(t, 2, a.Records)
	assert.Equal(t, 1, a.UnknownNames)
	assert.Equal(t, []ColumnCount{{Column: schema.Bio, Count: 1}}, a.EmptyCounts)
	assert.Equal(t, []ColumnCount{
		{Column: schema.CurrentLocationCountry, Count: 1},
		{Column: schema.CurrentLocationCity, Count: 1},
	}, a.UnknownLocations)
	assert.Equal(t, schema.UnknownTeacher, a.FirstRecord[schema.Name])

	var buf bytes.Buffer
	require.NoError(t, a.WriteText(&buf))
	assert.Contains(t, buf.String(), "Missing canonical columns: none")
	assert.Contains(t, buf.String(), `Records named "Unknown Teacher": 1 of 2`)
}

func TestAnalyze_HeaderProblems(t *testing.T) {
	t.Parallel()

	tbl := &tabular.Table{
		Header: []string{"teacher_id", "Name", "name", "Nationality (Z)"},
		Rows:   [][]string{{"a-b-c-d-e", "Jane", "Jane", "British"}},
	}

	a := Analyze(tbl, schema.DefaultTables())

	assert.False(t, a.Clean())
	assert.Contains(t, a.Missing, schema.Subject)
	assert.NotContains(t, a.Missing, schema.Name)
	assert.Equal(t, []string{"Name", "Nationality (Z)"}, a.Unexpected)
	assert.Equal(t, schema.Nationality, a.Suggestions["Nationality (Z)"][0])
	assert.Equal(t, []HeaderGroup{{Key: "name", Variants: []string{"Name", "name"}}}, a.CaseDuplicates)

	var buf bytes.Buffer
	require.NoError(t, a.WriteText(&buf))
	assert.Contains(t, buf.String(), "Nationality (Z): did you mean Nationality")
	assert.Contains(t, buf.String(), "name: Name, name")

	buf.Reset()
	a.Dump(&buf)
	assert.Contains(t, buf.String(), "a-b-c-d-e")
}
