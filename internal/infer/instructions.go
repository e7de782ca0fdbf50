package infer

import (
	"fmt"
	"strings"

	"teachreach/internal/schema"
)

// SystemPrompt frames every inference request.
const SystemPrompt = "You are a helpful assistant for inferring information about teachers based on their profile data. " +
	"Respond in JSON format with the requested fields."

const bioInstruction = `A professional summary of the teacher's experience (target 70-150 words).
Privacy rules:
1. Do not include proper nouns: no names of people, institutions, schools, organizations or locations.
2. Use general terms such as 'educational institution', 'learning center' or 'academic organization'.
3. Focus on skills, teaching philosophies, curriculum types and pedagogical approaches.
4. No cities, regions, specific years, certification providers or specific courses.`

// instructions holds the per-field guidance keyed by canonical column.
var instructions = map[string]string{
	schema.Name: "Full name (e.g., 'Jane Doe'), extracted from the text. Must not be 'Unknown Teacher'. Minimum two words.",
	schema.Subject: "Primary subject(s) taught (e.g., 'Mathematics', 'English, History'). Up to 3, comma-separated. " +
		"Must not be 'General Education'; prefer a specific subject, or 'Elementary Education' / 'Primary Subjects' for generalists.",
	schema.Headline: "A concise professional headline (2-7 words, e.g., 'Experienced IB Chemistry Educator'). Not just 'Teacher'.",
	schema.Bio:      bioInstruction,
	schema.PreferredCurriculumExperience: "Comma-separated list of curricula. Valid options only: " +
		"British, American, IB, Indian, CBSE, ICSE, UAE. Prefer CBSE or ICSE over Indian when the context allows. " +
		"If nothing can be determined, respond with 'Not Specified'.",
	schema.YearsOfTeachingExperience: "Total number of years of teaching experience as an integer (e.g., 7 or 12).",
	schema.CurrentLocationCountry:    "Current country of residence (e.g., 'United Arab Emirates', 'India'). Do not use 'Unknown'; use 'Not Specified' if it cannot be inferred.",
	schema.CurrentLocationCity:       "Current city of residence (e.g., 'Dubai', 'Mumbai'). Do not use 'Unknown'; use 'Not Specified' if it cannot be inferred.",
	schema.LinkedInProfileURL: "LinkedIn profile URL (e.g., 'https://linkedin.com/in/username'). Prefer a URL from the data, " +
		"otherwise build a plausible one from the name. Return only the URL.",
	schema.PreferredGradeLevel: "Comma-separated list of grade levels, chosen only from: " +
		strings.Join(schema.GradeLevelNames(), ", ") +
		". Never leave it empty; use 'Elementary' or 'Primary' when nothing can be inferred.",
	schema.Nationality: "The teacher's nationality as a common demonym (e.g., 'Irish', 'Indian'). Required. " +
		"Infer from name, location or language if not stated; otherwise use 'International' or a regional term such as 'European'. " +
		"Do not use 'Unknown'.",
	schema.CurrentSchool: "The current educational institution. Leave blank unless it is explicitly stated in the data.",
	schema.SchoolWebsite: "URL of the school website. Leave blank unless it is explicitly stated in the data.",
	schema.Email:         "The teacher's email address. Leave blank unless it is explicitly stated in the data.",
}

// Instruction returns the guidance for a field. Legacy column names use the
// guidance of their canonical column.
func Instruction(tables *schema.Tables, field string) string {
	if s, ok := instructions[tables.Canonical(field)]; ok {
		return s
	}

	return fmt.Sprintf("Infer a suitable value for '%s'.", field)
}

// BuildPrompt assembles the request for the given fields and record summary.
func BuildPrompt(tables *schema.Tables, fields []string, summary string) string {
	quoted := make([]string, len(fields))

	var guidance strings.Builder

	for i, f := range fields {
		quoted[i] = "'" + f + "'"
		fmt.Fprintf(&guidance, "\n- For '%s': %s", f, Instruction(tables, f))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Based on the following teacher profile, infer the values for these fields: %s.\n\n", strings.Join(quoted, ", "))
	fmt.Fprintf(&b, "Teacher information summary:\n%s\n\n", summary)
	fmt.Fprintf(&b, "Follow these instructions for each field:%s\n\n", guidance.String())
	b.WriteString("Respond with a single valid JSON object whose keys are exactly the requested fields.\n")

	return b.String()
}
