package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"name", "name", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"nme", "name", 1},
		{"café", "cafe", 1},
		{"Nationality", "nationality", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, LevenshteinNormalized("", ""), 1e-9)
	assert.InDelta(t, 1.0, LevenshteinNormalized("city", "city"), 1e-9)
	assert.InDelta(t, 0.75, LevenshteinNormalized("nme", "name"), 1e-9)
	assert.InDelta(t, 0.0, LevenshteinNormalized("abc", "xyz"), 1e-9)
}

func TestNormalizedLevenshteinScore(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, NormalizedLevenshteinScore("first_name", "FirstName"), 1e-9)
	assert.InDelta(t, 1.0, NormalizedLevenshteinScoreWithSuffixStrip("linkedin_url", "Linkedin"), 1e-9)
}
