package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teachreach/internal/mapping"
	"teachreach/internal/pipeline"
	"teachreach/internal/tabular"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Inspect, check and convert mapping tables",
}

var mappingShowCmd = &cobra.Command{
	Use:   "show [mapping-file]",
	Short: "Print a mapping table as TSV, the configured or built-in one without an argument",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadMappingArg(args)
		if err != nil {
			return err
		}

		return mapping.WriteTSV(cmd.OutOrStdout(), table)
	},
}

var mappingValidateCmd = &cobra.Command{
	Use:   "validate [mapping-file]",
	Short: "Report structural problems of a mapping table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadMappingArg(args)
		if err != nil {
			return err
		}

		res := mapping.Validate(table, tables)

		out := cmd.OutOrStdout()
		for _, d := range res.All() {
			fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
		}

		fmt.Fprintf(out, "%d entries, %d errors, %d warnings\n", table.Len(), len(res.Errors), len(res.Warnings))

		return res.Error()
	},
}

var mappingConvertCmd = &cobra.Command{
	Use:   "convert <from> <to>",
	Short: "Convert a mapping table between TSV and YAML by file extension",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := mapping.LoadFile(args[0])
		if err != nil {
			return err
		}

		if err := mapping.WriteFile(table, args[1]); err != nil {
			return err
		}

		logger.Info("mapping converted",
			zap.String("from", args[0]),
			zap.String("to", args[1]),
			zap.Int("entries", table.Len()))

		return nil
	},
}

var mappingSuggestFlags struct {
	base string
	out  string
}

var mappingSuggestCmd = &cobra.Command{
	Use:   "suggest <input.csv>",
	Short: "Draft mapping entries for input headers that match canonical columns",
	Long: `Reads the header of an input CSV and proposes a direct entry for every
header that clearly matches a canonical or legacy column name. Entries of
the base table are kept and the columns they write are never re-matched.
Headers without a confident match are listed with their closest columns.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := tabular.ReadFile(args[0])
		if err != nil {
			return err
		}

		var base *mapping.Table
		if mappingSuggestFlags.base != "" {
			if base, err = mapping.LoadFile(mappingSuggestFlags.base); err != nil {
				return err
			}
		}

		s := mapping.Suggest(tbl.Header, base, tables, mapping.DefaultSuggestConfig())

		out := cmd.OutOrStdout()
		for _, u := range s.Unmapped {
			fmt.Fprintf(out, "# unmapped %q: %s\n", u.Header, u.Reason)

			for _, c := range u.Candidates {
				fmt.Fprintf(out, "#   %s (%.2f)\n", c.Column, c.Score)
			}
		}

		if mappingSuggestFlags.out != "" {
			if err := mapping.WriteFile(s.Table, mappingSuggestFlags.out); err != nil {
				return err
			}

			fmt.Fprintf(out, "%d entries written to %s (%d auto-matched)\n",
				s.Table.Len(), mappingSuggestFlags.out, len(s.AutoMatched))

			return nil
		}

		return mapping.WriteTSV(out, s.Table)
	},
}

func init() {
	mappingSuggestCmd.Flags().StringVar(&mappingSuggestFlags.base, "base", "", "Mapping table to extend")
	mappingSuggestCmd.Flags().StringVarP(&mappingSuggestFlags.out, "output", "o", "", "Write the draft table to this file")

	mappingCmd.AddCommand(mappingSuggestCmd)
	mappingCmd.AddCommand(mappingShowCmd)
	mappingCmd.AddCommand(mappingValidateCmd)
	mappingCmd.AddCommand(mappingConvertCmd)
}

func loadMappingArg(args []string) (*mapping.Table, error) {
	if len(args) == 0 {
		return pipeline.LoadMapping(cfg.Paths.Mapping, tables, logger), nil
	}

	return mapping.LoadFile(args[0])
}
