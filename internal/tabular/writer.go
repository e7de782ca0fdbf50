package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"teachreach/internal/frame"
	"teachreach/internal/record"
)

// Write renders the frame as CSV: a header row, then one row per record.
// Null cells become empty fields and lists are joined with ", ".
func Write(w io.Writer, f *frame.Frame) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(f.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	line := make([]string, len(f.Columns()))

	for i := range f.Rows() {
		for c, cell := range f.Row(i) {
			line[c] = record.Render(cell)
		}

		if err := cw.Write(line); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// WriteFile writes the frame to path, creating parent directories.
func WriteFile(path string, f *frame.Frame) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(file, f); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
