// Package main provides the CLI entry point for taxagent.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/taxagent-go/pkg/taxagent"
)

// defaultInput is read when no workbook is named.
const defaultInput = "доход2023.xlsx"

var (
	configPath  string
	outputDir   string
	batchSize   int
	logLevel    string
	logFormat   string
	dryRun      bool
	printConfig bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taxagent [input.xlsx]",
		Short: "Convert payroll workbooks into tax agent JSON filings",
		Long: `taxagent reads per-person monthly income and tax figures from the active
sheet of an Excel workbook and writes them as pckagent JSON documents,
at most batch-size persons per file.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with filer constants and sheet layout")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", taxagent.DefaultOutputDir, "Existing directory for the JSON files")
	rootCmd.Flags().IntVar(&batchSize, "batch-size", taxagent.DefaultConfig().BatchSize, "Maximum persons per file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "auto", "Log format: auto, text, json")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and plan batches without writing files")
	rootCmd.Flags().BoolVar(&printConfig, "print-config", false, "Print the default configuration and exit")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if printConfig {
		fmt.Fprint(cmd.OutOrStdout(), taxagent.SampleConfig())
		return nil
	}

	inputPath := defaultInput
	if len(args) == 1 {
		inputPath = args[0]
	}

	logger, err := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
	if err != nil {
		return err
	}

	cfg, err := taxagent.LoadConfig(configPath)
	if err != nil {
		return err
	}
	// Flags given explicitly win over the config file.
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = batchSize
	}

	opts := taxagent.Options{
		Config: cfg,
		Logger: logger,
		DryRun: dryRun,
	}

	result, err := taxagent.Convert(inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(result, dryRun))
	return nil
}
