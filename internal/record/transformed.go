package record

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"teachreach/internal/common"
)

// Transformed maps destination fields to values. Values are string, int,
// bool or []string.
type Transformed map[string]any

// Get returns the value of a field and whether it is set.
func (t Transformed) Get(field string) (any, bool) {
	v, ok := t[field]
	return v, ok
}

// IsSet reports whether the field holds a non-empty value.
func (t Transformed) IsSet(field string) bool {
	v, ok := t[field]
	return ok && !IsEmptyValue(v)
}

// SetIfMissing stores v unless the field already holds a non-empty value.
// It reports whether v was stored.
func (t Transformed) SetIfMissing(field string, v any) bool {
	if t.IsSet(field) {
		return false
	}

	t[field] = v

	return true
}

// Clone returns a copy with list values duplicated.
func (t Transformed) Clone() Transformed {
	out := make(Transformed, len(t))

	for k, v := range t {
		if list, ok := v.([]string); ok {
			v = slices.Clone(list)
		}

		out[k] = v
	}

	return out
}

// IsEmptyValue reports whether v counts as missing: nil, a blank string or
// an empty list.
func IsEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return common.IsBlank(val)
	case []string:
		return len(val) == 0
	default:
		return false
	}
}

// Render formats a value as a single output cell.
func Render(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}

// CountItems returns the number of entries in a list value or a
// comma-separated string.
func CountItems(v any) int {
	switch val := v.(type) {
	case []string:
		n := 0

		for _, s := range val {
			if !common.IsBlank(s) {
				n++
			}
		}

		return n
	case string:
		return len(common.SplitTrim(val, ","))
	default:
		return 0
	}
}
