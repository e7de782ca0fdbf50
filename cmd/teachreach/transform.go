package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teachreach/internal/infer"
	"teachreach/internal/pipeline"
)

var transformFlags struct {
	input    string
	output   string
	mapping  string
	provider string
	model    string
	workers  int
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform an input CSV into the canonical roster CSV",
	Long: `Runs every input record through the mapping table, inference, row
assembly and standardization, then writes the canonical CSV.

Flags override the config file, which overrides the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runTransform,
}

func init() {
	f := transformCmd.Flags()
	f.StringVarP(&transformFlags.input, "input", "i", "", "Input CSV path")
	f.StringVarP(&transformFlags.output, "output", "o", "", "Output CSV path")
	f.StringVarP(&transformFlags.mapping, "mapping", "m", "", "Mapping table (TSV, or YAML by extension)")
	f.StringVar(&transformFlags.provider, "provider", "", "Inference provider: none, openai or gemini")
	f.StringVar(&transformFlags.model, "model", "", "Inference model name")
	f.IntVarP(&transformFlags.workers, "workers", "w", 0, "Rows processed concurrently")
}

func applyTransformFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if flags.Changed("input") {
		cfg.Paths.Input = transformFlags.input
	}

	if flags.Changed("output") {
		cfg.Paths.Output = transformFlags.output
	}

	if flags.Changed("mapping") {
		cfg.Paths.Mapping = transformFlags.mapping
	}

	if flags.Changed("provider") {
		cfg.Inference.Provider = transformFlags.provider
	}

	if flags.Changed("model") {
		cfg.Inference.Model = transformFlags.model
	}

	if flags.Changed("workers") {
		cfg.Pipeline.Workers = transformFlags.workers
	}

	return cfg.Validate()
}

func runTransform(cmd *cobra.Command, _ []string) error {
	if err := applyTransformFlags(cmd); err != nil {
		return err
	}

	ctx := cmd.Context()

	provider, err := infer.NewProvider(ctx, cfg.Inference.Provider, cfg.ProviderConfig())
	switch {
	case errors.Is(err, infer.ErrNoCredential):
		logger.Warn("no inference credential configured, using fallback values",
			zap.String("provider", cfg.Inference.Provider))
	case err != nil:
		return fmt.Errorf("failed to create inference provider: %w", err)
	}

	gateway := infer.NewGateway(provider, tables,
		infer.WithTimeout(cfg.Inference.Timeout),
		infer.WithLogger(logger.Named("infer")))

	table := pipeline.LoadMapping(cfg.Paths.Mapping, tables, logger.Named("mapping"))

	p := pipeline.New(tables, table, gateway,
		pipeline.WithWorkers(cfg.Pipeline.Workers),
		pipeline.WithLogger(logger))

	sum, err := p.Run(ctx, cfg.Paths.Input, cfg.Paths.Output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Transformed %d records from %s to %s\n", sum.Records, sum.Input, sum.Output)

	if sum.Warnings > 0 {
		fmt.Fprintf(out, "%d input rows were adjusted, see the log for details\n", sum.Warnings)
	}

	if failed := sum.Report.Failed(); len(failed) > 0 {
		fmt.Fprintf(out, "Validation checks failed: %v (run 'teachreach validate %s' for details)\n", failed, sum.Output)
	}

	return nil
}
