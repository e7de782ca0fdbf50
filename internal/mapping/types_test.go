package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		want   SpecKind
	}{
		{"first_name", SpecDirect},
		{"First (FP) + Last (FV)", SpecCombination},
		{"first+last", SpecCombination},
		{"AI", SpecInferred},
		{"ai", SpecInferred},
		{" Ai ", SpecInferred},
		{"AIR", SpecDirect},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSpec(tt.source))
		})
	}

	assert.Equal(t, "Combination", SpecCombination.String())
	assert.Equal(t, "SpecKind(9)", SpecKind(9).String())
}

func TestEntry_Parts(t *testing.T) {
	t.Parallel()

	e := Entry{Source: " first_name +last_name + ", Destination: "name"}
	assert.Equal(t, []string{"first_name", "last_name", ""}, e.Parts())
}

func TestTable_InferredDestinations(t *testing.T) {
	t.Parallel()

	tbl := NewTable(
		Entry{Source: "AI", Destination: "subject"},
		Entry{Source: "country", Destination: "current_location_country"},
		Entry{Source: "ai", Destination: "Nationality"},
		Entry{Source: "AI", Destination: "subject"},
	)

	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, []string{"subject", "Nationality"}, tbl.InferredDestinations())
	assert.Equal(t, []string{"subject", "current_location_country", "Nationality"}, tbl.Destinations())

	entries := tbl.Entries()
	entries[0].Destination = "mutated"
	assert.Equal(t, "subject", tbl.Entries()[0].Destination)
}

func TestDefault_KeepsEveryInferenceDestination(t *testing.T) {
	t.Parallel()

	tbl := Default()

	assert.Equal(t, []string{
		"Years of experience (P)",
		"Subject (Array) (c)",
		"Preferred curriculumn (O)",
		"Nationality (Z)",
		"Preferred age range (V)",
	}, tbl.InferredDestinations())
}

func TestCleanColumnName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Name (b)", "Name"},
		{"Source ID (AD)", "Source ID"},
		{"Subject (Array) (c)", "Subject (Array)"},
		{"organization website", "organization website"},
		{"Email E", "Email E"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanColumnName(tt.in))
		})
	}
}
