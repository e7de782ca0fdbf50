package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("unknown_destination", "not a canonical column", "Nme", NoRow)
	d.AddInfo("shared_destination", "written twice", "name", NoRow)
	assert.True(t, d.IsValid())

	var other Diagnostics
	other.AddError("required_empty", "value is empty", "name", 2)

	d.Merge(other)
	assert.True(t, d.HasErrors())
	assert.Equal(t, 3, d.Len())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[name] row 3: [required_empty] value is empty", err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "message only",
			diag: Diagnostic{Message: "empty batch", Row: NoRow},
			want: "empty batch",
		},
		{
			name: "column and code",
			diag: Diagnostic{Code: "header_order", Message: "out of order", Column: "bio", Row: NoRow},
			want: "[bio]: [header_order] out of order",
		},
		{
			name: "suggestions",
			diag: Diagnostic{
				Code:        "unknown_destination",
				Message:     "not canonical",
				Column:      "nme",
				Row:         NoRow,
				Suggestions: []string{"name"},
			},
			want: "[nme]: [unknown_destination] not canonical (did you mean: name?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}
