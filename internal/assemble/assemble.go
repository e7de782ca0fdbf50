// Package assemble merges resolver output, inferred values and static
// defaults into one complete transformed record.
package assemble

import (
	"time"

	"github.com/google/uuid"

	"teachreach/internal/record"
	"teachreach/internal/schema"
)

// TimestampLayout is the textual form of created_at.
const TimestampLayout = time.RFC3339

// Assembler builds complete transformed records.
type Assembler struct {
	tables *schema.Tables
	newID  func() string
	now    func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithIDGenerator replaces the teacher_id generator.
func WithIDGenerator(f func() string) Option {
	return func(a *Assembler) {
		if f != nil {
			a.newID = f
		}
	}
}

// WithClock replaces the clock used for created_at.
func WithClock(f func() time.Time) Option {
	return func(a *Assembler) {
		if f != nil {
			a.now = f
		}
	}
}

// New creates an assembler backed by the given tables.
func New(tables *schema.Tables, opts ...Option) *Assembler {
	a := &Assembler{
		tables: tables,
		newID:  uuid.NewString,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Assemble merges the inputs in precedence order: resolved values, then
// inferred values, then required-field defaults, then the derived subject
// count and the creation stamp. A step never replaces a non-empty value set
// by an earlier one. The inputs are not modified.
func (a *Assembler) Assemble(resolved record.Transformed, inferred map[string]any) record.Transformed {
	out := resolved.Clone()

	if !out.IsSet(schema.TeacherID) {
		out[schema.TeacherID] = a.newID()
	}

	for field, v := range inferred {
		if !record.IsEmptyValue(v) {
			out.SetIfMissing(field, v)
		}
	}

	for _, d := range a.tables.RequiredDefaults() {
		if out.IsSet(d.Column) {
			continue
		}

		if d.Value == nil {
			out[d.Column] = a.newID()
		} else {
			out[d.Column] = d.Value
		}
	}

	if !out.IsSet(schema.SubjectsCount) {
		out[schema.SubjectsCount] = a.subjectsCount(out)
	}

	out.SetIfMissing(schema.CreatedAt, a.now().Format(TimestampLayout))

	return out
}

// subjectsCount counts the subjects the standardizer will keep: the last
// alias of subject, in alias order, that holds any subject.
func (a *Assembler) subjectsCount(rec record.Transformed) int {
	count := 0

	for _, src := range a.tables.SourcesOf(schema.Subject) {
		if n := record.CountItems(rec[src]); n > 0 {
			count = n
		}
	}

	return count
}
