package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teachreach/internal/schema"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	base := NewTable(
		Entry{Source: "First Name + Last Name", Destination: schema.Name},
		Entry{Source: "AI", Destination: schema.Subject},
	)

	header := []string{
		"First Name", "Last Name", "Country", "City", "LinkedIn URL",
		"Email Address", "Headline", "Bio", "zzqx", "Subjects", "",
	}

	s := Suggest(header, base, schema.DefaultTables(), DefaultSuggestConfig())

	assert.Equal(t, []Entry{
		{Source: "Country", Destination: schema.CurrentLocationCountry},
		{Source: "City", Destination: schema.CurrentLocationCity},
		{Source: "LinkedIn URL", Destination: schema.LinkedInProfileURL},
		{Source: "Email Address", Destination: schema.Email},
		{Source: "Headline", Destination: schema.Headline},
		{Source: "Bio", Destination: schema.Bio},
	}, s.AutoMatched)

	assert.Equal(t, append(base.Entries(), s.AutoMatched...), s.Table.Entries())
	assert.Len(t, base.Entries(), 2, "base table is not modified")

	require.Len(t, s.Unmapped, 2)
	assert.Equal(t, "zzqx", s.Unmapped[0].Header)
	assert.Equal(t, "Subjects", s.Unmapped[1].Header)

	for _, c := range s.Unmapped[1].Candidates {
		assert.NotEqual(t, schema.Subject, c.Column, "columns fed by inference are taken")
	}

	assert.Len(t, s.Diagnostics.Infos, 6)
	assert.Len(t, s.Diagnostics.Warnings, 2)
}

func TestSuggest_NilBase(t *testing.T) {
	t.Parallel()

	s := Suggest([]string{"created_at", "hourly_rate", "name"}, nil, schema.DefaultTables(), DefaultSuggestConfig())

	assert.Equal(t, []Entry{{Source: "name", Destination: schema.Name}}, s.AutoMatched)
	assert.Len(t, s.Unmapped, 2)
}
