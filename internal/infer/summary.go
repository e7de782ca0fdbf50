package infer

import (
	"fmt"
	"strings"

	"teachreach/internal/record"
)

// maxHistoryEntries bounds the employment history listed in a summary.
const maxHistoryEntries = 5

const historyPrefix = "employment_history/"

// Summarize renders the parts of a record that help inference as plain
// text lines. Absent or empty attributes are skipped.
func Summarize(rec *record.Teacher) string {
	var lines []string

	if name := joinNonEmpty(" ", rec.Value("first_name"), rec.Value("last_name")); name != "" {
		lines = append(lines, "Name: "+name)
	}

	if v := strings.TrimSpace(rec.Value("headline")); v != "" {
		lines = append(lines, "Headline: "+v)
	}

	if loc := joinNonEmpty(", ", rec.Value("city"), rec.Value("country")); loc != "" {
		lines = append(lines, "Location: "+loc)
	}

	if v := strings.TrimSpace(rec.Value("organization_name")); v != "" {
		lines = append(lines, "Current School/Organization: "+v)
	}

	if history := employmentHistory(rec); len(history) > 0 {
		lines = append(lines, "Employment History:")
		for _, job := range history[:min(len(history), maxHistoryEntries)] {
			lines = append(lines, "- "+job)
		}

		if extra := len(history) - maxHistoryEntries; extra > 0 {
			lines = append(lines, fmt.Sprintf("- ... and %d more positions", extra))
		}
	}

	for _, key := range []string{"departments/0", "functions/0"} {
		if v := strings.TrimSpace(rec.Value(key)); v != "" {
			label := strings.TrimSuffix(key, "/0")
			lines = append(lines, strings.ToUpper(label[:1])+label[1:]+": "+v)
		}
	}

	return strings.Join(lines, "\n")
}

// employmentHistory lists "title at organization (from date)" entries in
// column order, one per employment_history/<i>/title attribute.
func employmentHistory(rec *record.Teacher) []string {
	var jobs []string

	for key, title := range rec.All() {
		title = strings.TrimSpace(title)
		if title == "" || !strings.HasPrefix(key, historyPrefix) || !strings.HasSuffix(key, "/title") {
			continue
		}

		parts := strings.Split(key, "/")
		if len(parts) != 3 {
			continue
		}

		prefix := historyPrefix + parts[1] + "/"

		job := title
		if org := strings.TrimSpace(rec.Value(prefix + "organization_name")); org != "" {
			job += " at " + org
		}

		if start := strings.TrimSpace(rec.Value(prefix + "start_date")); start != "" {
			job += " (from " + start + ")"
		}

		jobs = append(jobs, job)
	}

	return jobs
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))

	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, sep)
}
