package mapping

import "teachreach/internal/schema"

// Default returns the built-in mapping table used when no mapping file is
// given or the given one cannot be read. Destinations use the legacy coded
// column names; the standardizer folds them into canonical columns.
func Default() *Table {
	return NewTable(
		Entry{Source: "-", Destination: schema.LegacyTeacherID},
		Entry{Source: "First (FP) + Last (FV)", Destination: schema.LegacyName},
		Entry{Source: "Headline (FS)", Destination: schema.LegacyHeadline},
		Entry{Source: "Country (B)", Destination: schema.LegacyCountry},
		Entry{Source: "City (A)", Destination: schema.LegacyCity},
		Entry{Source: "Linkedin URL (FW)", Destination: schema.LegacyLinkedIn},
		Entry{Source: "organization (U)", Destination: schema.LegacySchool},
		Entry{Source: "organization website", Destination: schema.LegacyWebsite},
		Entry{Source: "Email E", Destination: schema.LegacyEmail},
		Entry{Source: "ID", Destination: schema.LegacySourceID},
		Entry{Source: InferenceToken, Destination: schema.LegacyYears},
		Entry{Source: InferenceToken, Destination: schema.LegacySubjects},
		Entry{Source: InferenceToken, Destination: schema.LegacyCurriculum},
		Entry{Source: InferenceToken, Destination: schema.LegacyNationality},
		Entry{Source: InferenceToken, Destination: schema.LegacyGradeLevel},
	)
}
