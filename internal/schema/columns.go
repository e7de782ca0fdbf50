package schema

// Canonical output columns.
const (
	TeacherID                     = "teacher_id"
	Name                          = "name"
	Subject                       = "subject"
	Headline                      = "headline"
	Bio                           = "bio"
	ProfileCompletionPercentage   = "profile_completion_percentage"
	ProfileVisibility             = "profile_visibility"
	PreferredTeachingModes        = "preferred_teaching_modes"
	WillingToRelocate             = "willing_to_relocate"
	HourlyRate                    = "hourly_rate"
	MonthlySalaryExpectation      = "monthly_salary_expectation"
	AvailableStartDate            = "available_start_date"
	CVResumeURL                   = "cv_resume_url"
	VideoIntroURL                 = "video_intro_url"
	PreferredCurriculumExperience = "preferred_curriculum_experience"
	YearsOfTeachingExperience     = "years_of_teaching_experience"
	WorkAuthorizationStatus       = "work_authorization_status"
	CurrentLocationCountry        = "current_location_country"
	CurrentLocationCity           = "current_location_city"
	BackgroundCheckStatus         = "background_check_status"
	LinkedInProfileURL            = "linkedin_profile_url"
	PreferredGradeLevel           = "preferred_grade_level"
	SubjectsCount                 = "subjects_count"
	CreatedAt                     = "created_at"
	Embeddings                    = "Embeddings"
	Nationality                   = "Nationality"
	CurrentSchool                 = "Current school"
	SchoolWebsite                 = "School website"
	Email                         = "Email"
	SourceID                      = "Source ID"
)

// Legacy coded column names still produced by older mapping tables.
const (
	LegacyTeacherID   = "ID (a)"
	LegacyName        = "Name (b)"
	LegacyHeadline    = "Headline (d)"
	LegacyCountry     = "country (R)"
	LegacyCity        = "city (s)"
	LegacyLinkedIn    = "Linkedin URL (u)"
	LegacyGradeLevel  = "Preferred age range (V)"
	LegacySchool      = "School (AA)"
	LegacyWebsite     = "school website (AB)"
	LegacyEmail       = "Email (AC)"
	LegacySourceID    = "Source ID (AD)"
	LegacyYears       = "Years of experience (P)"
	LegacySubjects    = "Subject (Array) (c)"
	LegacyCurriculum  = "Preferred curriculumn (O)"
	LegacyNationality = "Nationality (Z)"
	LegacyRawID       = "ID"
)

// canonicalColumns is the fixed output order.
var canonicalColumns = []string{
	TeacherID,
	Name,
	Subject,
	Headline,
	Bio,
	ProfileCompletionPercentage,
	ProfileVisibility,
	PreferredTeachingModes,
	WillingToRelocate,
	HourlyRate,
	MonthlySalaryExpectation,
	AvailableStartDate,
	CVResumeURL,
	VideoIntroURL,
	PreferredCurriculumExperience,
	YearsOfTeachingExperience,
	WorkAuthorizationStatus,
	CurrentLocationCountry,
	CurrentLocationCity,
	BackgroundCheckStatus,
	LinkedInProfileURL,
	PreferredGradeLevel,
	SubjectsCount,
	CreatedAt,
	Embeddings,
	Nationality,
	CurrentSchool,
	SchoolWebsite,
	Email,
	SourceID,
}

// alwaysEmptyColumns can never be populated from source data.
var alwaysEmptyColumns = []string{
	ProfileCompletionPercentage,
	ProfileVisibility,
	PreferredTeachingModes,
	WillingToRelocate,
	HourlyRate,
	MonthlySalaryExpectation,
	AvailableStartDate,
	CVResumeURL,
	VideoIntroURL,
	WorkAuthorizationStatus,
	BackgroundCheckStatus,
}

// calculatedColumns are initialized to "" by the standardizer when nothing populated them.
var calculatedColumns = []string{
	PreferredTeachingModes,
	AvailableStartDate,
	CVResumeURL,
	VideoIntroURL,
	PreferredCurriculumExperience,
	YearsOfTeachingExperience,
	Embeddings,
	Nationality,
}

// outputRequiredColumns must be non-empty in every standardized record.
var outputRequiredColumns = []string{
	TeacherID,
	Name,
	Subject,
	Headline,
	CurrentLocationCountry,
	CurrentLocationCity,
	LinkedInProfileURL,
	PreferredGradeLevel,
	SubjectsCount,
	CreatedAt,
	Nationality,
	SourceID,
}

// urlColumns hold web addresses.
var urlColumns = []string{
	LinkedInProfileURL,
	SchoolWebsite,
	CVResumeURL,
	VideoIntroURL,
}
