package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"first_name", "firstname"},
		{"First Name", "firstname"},
		{"firstName", "firstname"},
		{"linkedinURL", "linkedinurl"},
		{"Linkedin URL (FW)", "linkedinurlfw"},
		{"Current school", "currentschool"},
		{"employment_history/0/title", "employmenthistory0title"},
		{"Nationalité", "nationalite"},
		{"ID", "id"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"linkedin_profile_url", "linkedinprofile"},
		{"created_at", "created"},
		{"Source ID", "source"},
		{"email_address", "email"},
		{"teacher_ids", "teacher"},
		{"ID", "id"},
		{"name", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdentWithSuffixStrip(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"linkedin", "url", "fw"}, TokenizeIdent("Linkedin URL (FW)"))
	assert.Equal(t, []string{"years", "of", "teaching", "experience"}, TokenizeIdent("years_of_teaching_experience"))
	assert.Nil(t, TokenizeIdent(""))
}
