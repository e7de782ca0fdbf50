package infer

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"teachreach/internal/common"
	"teachreach/internal/schema"
)

var firstIntRe = regexp.MustCompile(`\d+`)

// decodeAnswer extracts the JSON object from a provider answer. Markdown
// code fences around the object are tolerated.
func decodeAnswer(raw string) (map[string]any, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	var out map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &out); err != nil {
		return nil, fmt.Errorf("failed to decode inference answer: %w", err)
	}

	return out, nil
}

// normalizeValue converts a decoded JSON value into a record value for
// field. It reports false when nothing usable remains.
func normalizeValue(tables *schema.Tables, field string, v any) (any, bool) {
	switch tables.Canonical(field) {
	case schema.YearsOfTeachingExperience:
		return parseYears(v)
	case schema.Subject:
		subjects := parseList(v)
		return subjects, len(subjects) > 0
	}

	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		s := strings.TrimSpace(val)
		return s, s != ""
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < math.MaxInt32 {
			return int(val), true
		}

		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return val, true
	case []any:
		list := parseList(val)
		return list, len(list) > 0
	default:
		return fmt.Sprint(val), true
	}
}

// parseYears returns the first integer found in v.
func parseYears(v any) (any, bool) {
	switch val := v.(type) {
	case float64:
		if val < 0 || val >= math.MaxInt32 || math.IsNaN(val) {
			return nil, false
		}

		return int(val), true
	case string:
		m := firstIntRe.FindString(val)
		if m == "" {
			return nil, false
		}

		n, err := strconv.Atoi(m)
		if err != nil || n >= math.MaxInt32 {
			return nil, false
		}

		return n, true
	default:
		return nil, false
	}
}

// parseList turns a comma-separated string or a JSON array into trimmed,
// non-empty strings.
func parseList(v any) []string {
	switch val := v.(type) {
	case string:
		return common.SplitTrim(val, ",")
	case []any:
		var out []string

		for _, item := range val {
			if item == nil {
				continue
			}

			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}
