package common

import "slices"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// AppendUnique appends v unless the slice already holds it, keeping
// first-seen order.
func AppendUnique[S ~[]E, E comparable](s S, v E) S {
	if slices.Contains(s, v) {
		return s
	}

	return append(s, v)
}
