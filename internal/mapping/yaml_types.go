package mapping

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"teachreach/internal/common"
)

// File is the YAML form of a mapping table.
type File struct {
	Version string `yaml:"version"`
	// OneToOne is the shorthand source -> destination map.
	OneToOne map[string]string `yaml:"121,omitempty"`
	Mappings []FileEntry       `yaml:"mappings"`
}

// FileEntry is one YAML mapping entry.
type FileEntry struct {
	Source StringOrArray `yaml:"source"`
	Target string        `yaml:"target"`
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str == "" {
			*s = StringOrArray{}
		} else {
			*s = StringOrArray{str}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array at line %d, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise a list.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// Spec returns the source specification: a list becomes a combination.
func (s StringOrArray) Spec() string {
	return strings.Join(s, " "+combinationSep+" ")
}

// toTable expands the shorthand and the entries into an ordered table.
func (f *File) toTable() *Table {
	t := NewTable()

	keys := make([]string, 0, len(f.OneToOne))
	for k := range f.OneToOne {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		t.Add(k, f.OneToOne[k])
	}

	for _, m := range f.Mappings {
		t.Add(m.Source.Spec(), m.Target)
	}

	return t
}

// fileFromTable converts a table into its YAML form. Combinations become
// lists so the file stays readable.
func fileFromTable(t *Table) *File {
	f := &File{Version: "1"}

	for _, e := range t.Entries() {
		src := StringOrArray{strings.TrimSpace(e.Source)}
		if e.Kind() == SpecCombination {
			src = e.Parts()
		}

		f.Mappings = append(f.Mappings, FileEntry{Source: src, Target: e.Destination})
	}

	return f
}
