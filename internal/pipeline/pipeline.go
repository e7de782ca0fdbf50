package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"teachreach/internal/assemble"
	"teachreach/internal/frame"
	"teachreach/internal/infer"
	"teachreach/internal/mapping"
	"teachreach/internal/record"
	"teachreach/internal/resolve"
	"teachreach/internal/schema"
	"teachreach/internal/standardize"
)

// Pipeline turns raw teacher records into a standardized frame.
type Pipeline struct {
	tables       *schema.Tables
	resolver     *resolve.Resolver
	gateway      *infer.Gateway
	assembler    *assemble.Assembler
	standardizer *standardize.Standardizer
	workers      int
	logger       *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the number of rows processed concurrently. Values
// below 2 process rows one at a time.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = n
	}
}

// WithLogger sets the logger passed to every stage.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithAssembler replaces the row assembler.
func WithAssembler(a *assemble.Assembler) Option {
	return func(p *Pipeline) {
		if a != nil {
			p.assembler = a
		}
	}
}

// WithStandardizer replaces the output standardizer.
func WithStandardizer(s *standardize.Standardizer) Option {
	return func(p *Pipeline) {
		if s != nil {
			p.standardizer = s
		}
	}
}

// New creates a pipeline for the given mapping table and inference gateway.
func New(tables *schema.Tables, table *mapping.Table, gateway *infer.Gateway, opts ...Option) *Pipeline {
	p := &Pipeline{
		tables:  tables,
		gateway: gateway,
		workers: 1,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.resolver = resolve.New(table, resolve.WithLogger(p.logger.Named("resolve")))

	if p.assembler == nil {
		p.assembler = assemble.New(tables)
	}

	if p.standardizer == nil {
		p.standardizer = standardize.New(tables, standardize.WithLogger(p.logger.Named("standardize")))
	}

	return p
}

// Transform processes the batch and returns the standardized frame.
func (p *Pipeline) Transform(ctx context.Context, recs []*record.Teacher) (*frame.Frame, error) {
	rows, err := p.TransformRecords(ctx, recs)
	if err != nil {
		return nil, err
	}

	out, err := p.standardizer.Standardize(frame.FromRecords(rows))
	if err != nil {
		return nil, fmt.Errorf("failed to standardize output: %w", err)
	}

	return out, nil
}

// TransformRecords runs every record through resolution, inference and
// assembly. Results keep the input order regardless of worker count.
func (p *Pipeline) TransformRecords(ctx context.Context, recs []*record.Teacher) ([]record.Transformed, error) {
	out := make([]record.Transformed, len(recs))

	if p.workers < 2 {
		for i, rec := range recs {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("transformation interrupted at row %d: %w", i+1, err)
			}

			out[i] = p.transformOne(ctx, i, rec)
		}

		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, rec := range recs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("transformation interrupted at row %d: %w", i+1, err)
			}

			out[i] = p.transformOne(gctx, i, rec)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (p *Pipeline) transformOne(ctx context.Context, i int, rec *record.Teacher) record.Transformed {
	res := p.resolver.Resolve(rec)

	var inferred map[string]any
	if len(res.Pending) > 0 {
		inferred = p.gateway.Infer(ctx, res.Pending, rec)
	}

	p.logger.Debug("record transformed",
		zap.Int("row", i+1),
		zap.Int("resolved", len(res.Values)),
		zap.Strings("inferred", res.Pending))

	return p.assembler.Assemble(res.Values, inferred)
}
