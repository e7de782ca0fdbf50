package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"teachreach/internal/mapping"
	"teachreach/internal/schema"
	"teachreach/internal/tabular"
	"teachreach/internal/validate"
)

// Summary describes a completed file run.
type Summary struct {
	Input    string
	Output   string
	Encoding string
	Records  int
	Warnings int
	Report   *validate.Report
}

// LoadMapping reads the mapping table at path. An empty path, an
// unreadable file or an empty table falls back to the built-in table.
// Structural findings are logged and never stop the run.
func LoadMapping(path string, tables *schema.Tables, logger *zap.Logger) *mapping.Table {
	if logger == nil {
		logger = zap.NewNop()
	}

	table := mapping.Default()

	if path != "" {
		loaded, err := mapping.LoadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Warn("mapping file not found, using built-in mapping", zap.String("path", path))
		case err != nil:
			logger.Warn("mapping file unusable, using built-in mapping", zap.String("path", path), zap.Error(err))
		default:
			table = loaded
		}
	}

	res := mapping.Validate(table, tables)
	for _, d := range res.Errors {
		logger.Warn("mapping entry ignored", zap.String("finding", d.String()))
	}

	for _, d := range res.Warnings {
		logger.Warn("mapping finding", zap.String("finding", d.String()))
	}

	for _, d := range res.Infos {
		logger.Debug("mapping finding", zap.String("finding", d.String()))
	}

	logger.Info("mapping loaded",
		zap.Int("entries", table.Len()),
		zap.Int("inferred", len(table.InferredDestinations())))

	return table
}

// Run reads input, transforms every record and writes the standardized
// output. Nothing is written unless the whole batch succeeds.
func (p *Pipeline) Run(ctx context.Context, input, output string) (*Summary, error) {
	tbl, err := tabular.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}

	for _, w := range tbl.Warnings {
		p.logger.Warn("input row adjusted", zap.Int("row", w.Row), zap.String("reason", w.Message))
	}

	p.logger.Info("input loaded",
		zap.String("path", input),
		zap.String("encoding", tbl.Encoding),
		zap.Int("records", len(tbl.Rows)),
		zap.Int("columns", len(tbl.Header)),
		zap.Bool("inference", p.gateway.Live()))

	out, err := p.Transform(ctx, tbl.Teachers())
	if err != nil {
		return nil, err
	}

	report := validate.New(p.tables).Run(out)
	if failed := report.Failed(); len(failed) > 0 {
		p.logger.Warn("output failed validation checks", zap.Strings("checks", failed))
	}

	if err := tabular.WriteFile(output, out); err != nil {
		return nil, fmt.Errorf("failed to save output: %w", err)
	}

	p.logger.Info("output written", zap.String("path", output), zap.Int("records", out.Rows()))

	return &Summary{
		Input:    input,
		Output:   output,
		Encoding: tbl.Encoding,
		Records:  out.Rows(),
		Warnings: len(tbl.Warnings),
		Report:   report,
	}, nil
}
