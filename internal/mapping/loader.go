package mapping

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyTable is returned when a mapping file yields no entries.
var ErrEmptyTable = errors.New("mapping table has no entries")

// skipPrefix marks commentary lines in tab-separated mapping files.
const skipPrefix = "Inferred"

// LoadFile loads a mapping table from path. Files ending in .yaml or .yml
// are parsed as YAML, everything else as tab-separated text.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	var t *Table

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		t, err = ParseYAML(data)
	default:
		t, err = ParseTSV(bytes.NewReader(data))
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load mapping file %s: %w", path, err)
	}

	return t, nil
}

// ParseTSV reads a tab-separated mapping table. The first line is a header
// and is ignored. Lines that are blank, start with "Inferred", or lack a
// non-empty source and destination are skipped.
func ParseTSV(r io.Reader) (*Table, error) {
	t := NewTable()
	sc := bufio.NewScanner(r)

	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			first = false
			continue
		}

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, skipPrefix) {
			continue
		}

		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) < 2 {
			continue
		}

		source := strings.TrimSpace(parts[0])
		destination := strings.TrimSpace(parts[1])

		if source != "" && destination != "" {
			t.Add(source, destination)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan mapping table: %w", err)
	}

	if t.IsEmpty() {
		return nil, ErrEmptyTable
	}

	return t, nil
}

// ParseYAML parses a YAML mapping file.
func ParseYAML(data []byte) (*Table, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&f)

	t := f.toTable()
	if t.IsEmpty() {
		return nil, ErrEmptyTable
	}

	return t, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a table to YAML.
func Marshal(t *Table) ([]byte, error) {
	return yaml.Marshal(fileFromTable(t))
}

// WriteTSV writes a table in the tab-separated format, header included.
func WriteTSV(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("Source\tDestination\n"); err != nil {
		return fmt.Errorf("failed to write mapping header: %w", err)
	}

	for _, e := range t.Entries() {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", e.Source, e.Destination); err != nil {
			return fmt.Errorf("failed to write mapping entry: %w", err)
		}
	}

	return bw.Flush()
}

// WriteFile writes a table to path, as YAML for .yaml/.yml files and as
// tab-separated text otherwise.
func WriteFile(t *Table, path string) error {
	var buf bytes.Buffer

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal mapping: %w", err)
		}

		buf.Write(data)
	default:
		if err := WriteTSV(&buf, t); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
