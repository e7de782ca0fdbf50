package main

import (
	"github.com/spf13/cobra"

	"teachreach/internal/report"
	"teachreach/internal/tabular"
)

var analyzeDump bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [output.csv]",
	Short: "Summarize the headers and content of a standardized CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Paths.Output
		if len(args) == 1 {
			path = args[0]
		}

		tbl, err := tabular.ReadFile(path)
		if err != nil {
			return err
		}

		a := report.Analyze(tbl, tables)

		out := cmd.OutOrStdout()
		if err := a.WriteText(out); err != nil {
			return err
		}

		if analyzeDump {
			a.Dump(out)
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeDump, "dump", false, "Dump the first record in detail")
}
