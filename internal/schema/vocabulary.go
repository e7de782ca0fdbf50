package schema

// curriculumVocabulary lists accepted curriculum names.
var curriculumVocabulary = []string{
	"British", "American", "IB", "Indian", "CBSE", "ICSE", "UAE", "SABIS", "Other", "Not Specified",
}

var gradeLevelVocabulary = []string{
	// American, IB and UAE
	"KG", "Kindergarten", "Elementary", "Middle School", "High School",
	"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5", "Grade 6",
	"Grade 7", "Grade 8", "Grade 9", "Grade 10", "Grade 11", "Grade 12",
	"KG - Grade 5", "Grade 1-5", "Grade 6-10", "Grade 11-12", "Grade 6-9", "Grade 10-12",
	"Grade 1-6", "Grade 1-4", "Grade 1-3", "Grade 1-2", "Grade 2-5", "Grade 3-5",
	// British
	"FS1", "FS2", "Year 1", "Year 2", "Year 3", "Year 4", "Year 5", "Year 6",
	"Year 7", "Year 8", "Year 9", "Year 10", "Year 11", "Year 12", "Year 13",
	"Year 1-2", "Year 3-6", "Year 7-9", "Year 10-11", "Year 12-13", "Year 1-4", "Year 4-6",
	// Indian
	"Pre-Primary", "Primary", "Middle", "Secondary", "Senior Secondary",
}

var placeholderValues = []string{
	"unknown", "unknown teacher", "not provided", "n/a", "na", "none", "null", "nan",
}

// CurriculumNames returns the curriculum vocabulary in display form.
func CurriculumNames() []string {
	return append([]string(nil), curriculumVocabulary...)
}

// GradeLevelNames returns the grade-level vocabulary in display form.
func GradeLevelNames() []string {
	return append([]string(nil), gradeLevelVocabulary...)
}
