// Package main provides the CLI entrypoint for teachreach.
//
// teachreach turns teacher-candidate spreadsheets into a fixed-schema
// roster:
//   - Maps source columns through a configurable mapping table
//   - Infers missing attributes with a text-generation service, or static fallbacks
//   - Standardizes the batch onto the canonical columns
//   - Validates and analyzes the result
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teachreach/internal/config"
	"teachreach/internal/logging"
	"teachreach/internal/schema"
)

var (
	// Global flags
	verbose    bool
	configPath string
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
	tables = schema.DefaultTables()
)

var rootCmd = &cobra.Command{
	Use:   "teachreach",
	Short: "Transform teacher-candidate spreadsheets into the canonical roster format",
	Long: `teachreach reads a CSV of teacher candidates, maps its columns onto the
canonical roster schema, fills gaps through inference or static fallbacks,
and writes a standardized CSV.

Inference uses OPENAI_API_KEY or GEMINI_API_KEY when set; without a key
every inferred field takes its fallback value.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}

		format := cfg.Logging.Format
		if cmd.Flags().Changed("log-format") {
			format = logFormat
		}

		logger, err = logging.New(level, format)

		return err
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatJSON, "Log format: json or console")

	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(mappingCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
