package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"teachreach/internal/tabular"
	"teachreach/internal/validate"
)

var errValidationFailed = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate [output.csv]",
	Short: "Run the data-quality checks against a standardized CSV",
	Long: `Checks header order, required values, teacher_id format and uniqueness,
vocabularies, URL and email shapes, always-empty columns, timestamps and
subject counts. Exits non-zero when any check fails.

Without an argument the configured output path is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := cfg.Paths.Output
	if len(args) == 1 {
		path = args[0]
	}

	tbl, err := tabular.ReadFile(path)
	if err != nil {
		return err
	}

	report := validate.New(tables).Run(tbl.Frame())

	fmt.Fprint(cmd.OutOrStdout(), report.String())

	if !report.Passed() {
		return fmt.Errorf("%w: %v", errValidationFailed, report.Failed())
	}

	return nil
}
