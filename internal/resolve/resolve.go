// Package resolve turns one input record into a partial transformed record
// by walking the mapping table in order.
package resolve

import (
	"strings"

	"go.uber.org/zap"

	"teachreach/internal/common"
	"teachreach/internal/mapping"
	"teachreach/internal/record"
)

// Result is the outcome of resolving one record.
type Result struct {
	// Values holds the destinations set from source attributes.
	Values record.Transformed
	// Pending lists the destinations that must come from inference, in
	// table order and without duplicates.
	Pending []string
}

// Resolver applies a mapping table to input records.
type Resolver struct {
	table  *mapping.Table
	logger *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for skipped entries.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a resolver for the given table.
func New(table *mapping.Table, opts ...Option) *Resolver {
	r := &Resolver{table: table, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve maps one record. It never fails: entries whose source attribute
// is absent are skipped.
//
// An attribute named exactly like the source specification is copied
// verbatim, even when the name contains "+" or equals "AI". Otherwise a
// combination joins its non-empty parts with one space and leaves the
// destination unset when every part is empty, and an "AI" source queues
// the destination for inference.
func (r *Resolver) Resolve(rec *record.Teacher) Result {
	res := Result{Values: record.Transformed{}}

	for _, e := range r.table.Entries() {
		if v, ok := rec.Get(e.Source); ok {
			res.Values[e.Destination] = v
			continue
		}

		switch e.Kind() {
		case mapping.SpecCombination:
			if v := combine(rec, e.Parts()); v != "" {
				res.Values[e.Destination] = v
			}
		case mapping.SpecInferred:
			res.Pending = common.AppendUnique(res.Pending, e.Destination)
		case mapping.SpecDirect:
			r.logger.Debug("source attribute absent, entry skipped",
				zap.String("source", e.Source),
				zap.String("destination", e.Destination))
		}
	}

	return res
}

// combine joins the non-empty values of parts with a single space.
func combine(rec *record.Teacher, parts []string) string {
	values := make([]string, 0, len(parts))

	for _, p := range parts {
		if p == "" {
			continue
		}

		if v := strings.TrimSpace(rec.Value(p)); v != "" {
			values = append(values, v)
		}
	}

	return strings.Join(values, " ")
}
