// Package standardize reshapes a batch of transformed records into the
// canonical output frame.
package standardize

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"teachreach/internal/frame"
	"teachreach/internal/schema"
)

// TimestampLayout is the textual form of stamped created_at values.
const TimestampLayout = time.RFC3339

// ErrMissingTeacherID is returned when no teacher_id can be found for the batch.
var ErrMissingTeacherID = errors.New("teacher_id is missing from the batch")

// Standardizer maps arbitrary columns onto the canonical schema.
type Standardizer struct {
	tables *schema.Tables
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Standardizer.
type Option func(*Standardizer)

// WithClock replaces the clock used to stamp created_at.
func WithClock(f func() time.Time) Option {
	return func(s *Standardizer) {
		if f != nil {
			s.now = f
		}
	}
}

// WithLogger sets the logger used for enforcement warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Standardizer) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a standardizer backed by the given tables.
func New(tables *schema.Tables, opts ...Option) *Standardizer {
	s := &Standardizer{
		tables: tables,
		now:    time.Now,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Standardize returns a frame holding exactly the canonical columns in
// canonical order. Applying it to its own output changes nothing.
func (s *Standardizer) Standardize(src *frame.Frame) (*frame.Frame, error) {
	out := frame.New(src.Rows())

	s.applyAliases(src, out)
	s.applyGlobalDefaults(out)

	for _, col := range s.tables.Calculated() {
		if !out.Has(col) {
			out.Fill(col, "")
		}
	}

	if src.Rows() > 0 {
		if err := s.ensureTeacherID(src, out); err != nil {
			return nil, err
		}
	}

	s.ensureCreatedAt(src, out)

	for _, col := range s.tables.Columns() {
		if col == schema.Name {
			continue
		}

		if !out.Has(col) {
			out.Fill(col, s.tables.EmptyValue(col))
		}
	}

	s.applyNameFallback(src, out)
	s.enforceAlwaysEmpty(out)

	return out.Select(s.tables.Columns()), nil
}

func (s *Standardizer) applyAliases(src, out *frame.Frame) {
	for _, a := range s.tables.Aliases() {
		cells, ok := src.Column(a.Source)
		if !ok || frame.AllNull(cells) {
			continue
		}

		existing, present := out.Column(a.Target)
		if !present {
			out.Set(a.Target, cells)
			continue
		}

		// a blank alias cell never replaces a value already folded in
		for i, c := range cells {
			if !frame.IsBlank(c) {
				existing[i] = c
			}
		}

		out.Set(a.Target, existing)
	}
}

func (s *Standardizer) applyGlobalDefaults(out *frame.Frame) {
	for _, col := range s.tables.Columns() {
		def, declared := s.tables.GlobalDefault(col)
		if !declared {
			continue
		}

		cells, ok := out.Column(col)
		if !ok || frame.AllNull(cells) {
			out.Fill(col, def)
			continue
		}

		for i, c := range cells {
			if c == nil {
				cells[i] = def
			}
		}

		out.Set(col, cells)
	}
}

func (s *Standardizer) ensureTeacherID(src, out *frame.Frame) error {
	if cells, ok := out.Column(schema.TeacherID); ok && !frame.AllNull(cells) {
		return nil
	}

	cells, ok := src.Column(schema.TeacherID)
	if !ok || frame.AllNull(cells) {
		return ErrMissingTeacherID
	}

	out.Set(schema.TeacherID, cells)

	return nil
}

func (s *Standardizer) ensureCreatedAt(src, out *frame.Frame) {
	cells, ok := out.Column(schema.CreatedAt)
	if !ok || frame.AllNull(cells) {
		if srcCells, found := src.Column(schema.CreatedAt); found && !frame.AllNull(srcCells) {
			cells = srcCells
		} else {
			cells = make([]any, out.Rows())
		}
	}

	stamp := s.now().Format(TimestampLayout)

	for i, c := range cells {
		if c == nil {
			cells[i] = stamp
		}
	}

	out.Set(schema.CreatedAt, cells)
}

func (s *Standardizer) applyNameFallback(src, out *frame.Frame) {
	cells, ok := out.Column(schema.Name)
	if !ok {
		cells = make([]any, out.Rows())
	}

	for i, c := range cells {
		if !frame.IsBlank(c) {
			continue
		}

		if legacy, isStr := src.Cell(i, schema.LegacyName).(string); isStr && strings.TrimSpace(legacy) != "" {
			cells[i] = legacy
		} else {
			cells[i] = schema.UnknownTeacher
		}
	}

	out.Set(schema.Name, cells)
}

func (s *Standardizer) enforceAlwaysEmpty(out *frame.Frame) {
	for _, col := range s.tables.AlwaysEmpty() {
		cells, ok := out.Column(col)
		if !ok {
			continue
		}

		cleared := 0

		for i, c := range cells {
			if !s.tables.IsAllowedEmptyValue(c) {
				cells[i] = nil
				cleared++
			}
		}

		if cleared > 0 {
			s.logger.Warn("always-empty column had values, cleared",
				zap.String("column", col),
				zap.Int("cells", cleared),
			)
			out.Set(col, cells)
		}
	}
}
