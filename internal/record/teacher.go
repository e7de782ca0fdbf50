package record

import (
	"iter"
	"maps"
	"slices"
)

// Teacher is one input row: an ordered set of named attributes.
// It is never mutated after construction.
type Teacher struct {
	keys   []string
	values map[string]string
}

// NewTeacher builds a record from a header and the matching cells.
// Missing cells read as empty and surplus cells are dropped.
// When a header repeats, the first occurrence wins.
func NewTeacher(header, cells []string) *Teacher {
	t := &Teacher{
		keys:   make([]string, 0, len(header)),
		values: make(map[string]string, len(header)),
	}

	for i, key := range header {
		if _, dup := t.values[key]; dup {
			continue
		}

		var v string
		if i < len(cells) {
			v = cells[i]
		}

		t.keys = append(t.keys, key)
		t.values[key] = v
	}

	return t
}

// FromPairs builds a record from alternating key/value arguments.
// A trailing key without a value is stored as empty.
func FromPairs(kv ...string) *Teacher {
	header := make([]string, 0, len(kv)/2+1)
	cells := make([]string, 0, len(kv)/2+1)

	for i := 0; i < len(kv); i += 2 {
		header = append(header, kv[i])

		if i+1 < len(kv) {
			cells = append(cells, kv[i+1])
		} else {
			cells = append(cells, "")
		}
	}

	return NewTeacher(header, cells)
}

// Get returns the attribute value and whether the attribute exists.
func (t *Teacher) Get(name string) (string, bool) {
	if t == nil {
		return "", false
	}

	v, ok := t.values[name]

	return v, ok
}

// Value returns the attribute value, or "" when absent.
func (t *Teacher) Value(name string) string {
	v, _ := t.Get(name)
	return v
}

// Has reports whether the attribute exists.
func (t *Teacher) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Keys returns the attribute names in input order.
func (t *Teacher) Keys() []string {
	if t == nil {
		return nil
	}

	return slices.Clone(t.keys)
}

// Len returns the number of attributes.
func (t *Teacher) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// All iterates over the attributes in input order.
func (t *Teacher) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if t == nil {
			return
		}

		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// Map returns a flattened copy of the attributes.
func (t *Teacher) Map() map[string]string {
	if t == nil {
		return map[string]string{}
	}

	return maps.Clone(t.values)
}
