// Package main provides the CLI entry point for excelpivot-go.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/superrnovae/excelpivot-go/internal/config"
	"github.com/superrnovae/excelpivot-go/internal/logging"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/output"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/sink"
)

var (
	configFile string
	outputPath string
	pretty     bool
	sheetsDir  string
)

func main() {
	// Variables from .env never override the environment
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelpivot",
		Short: "Export query results to Excel tables and pivot tables",
		Long: `excelpivot-go writes the result of a SQL query to an xlsx workbook as a
structured table, optionally adding a pivot table sheet described in YAML.

Configuration Sources (in order of precedence):
1. Command line flags
2. Environment variables (EXCELPIVOT_*, also read from .env)
3. Configuration file (--config, or ./excelpivot.yaml)`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newExportCommand(), newInspectCommand())
	return rootCmd
}

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run a query and write the workbook",
		Example: `  excelpivot export --driver sqlite --dsn file:sales.db \
    --query "SELECT region, year, amount FROM sales" \
    --output sales.xlsx --pivot pivot.yaml`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Configuration file path")
	flags.String(config.KeyDriver, config.DriverPostgres, "Record source driver: postgres, sqlite, sqlserver")
	flags.String(config.KeyDSN, "", "Connection string")
	flags.String(config.KeyQuery, "", "SQL query producing the records")
	flags.StringP(config.KeyOutput, "o", "", "Workbook output path")
	flags.String(config.KeyPivot, "", "YAML file with pivot settings")
	flags.StringSlice(config.KeyInclude, nil, "Columns to write, in order")
	flags.StringSlice(config.KeyExclude, nil, "Columns to leave out")
	flags.Bool(config.KeyStrict, false, "Fail on pivot labels that name no column")
	flags.String(config.KeySheet, excelpivot.DefaultDataSheetName, "Data sheet name")
	flags.String(config.KeyDateTimeFormat, "", "Number format of date-time cells")
	flags.Duration(config.KeyLockTimeout, sink.DefaultLockTimeout, "Wait limit for the output file lock")
	flags.String(config.KeyLogLevel, "info", "Log level: debug, info, warn, error")
	flags.String(config.KeyLogFormat, "text", "Log format: text, json")

	return cmd
}

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print a JSON summary of a workbook",
		Long: `inspect reads a workbook back and prints its sheets, cell values,
declared tables and pivot tables (fields, axes and cached items) as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	v, err := config.New(configFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.WithFields("driver", cfg.Driver, "output", cfg.Output)

	opts := excelpivot.DefaultOptions()
	opts.Include = cfg.Include
	opts.Exclude = cfg.Exclude
	opts.DataSheetName = cfg.Sheet
	opts.DateTimeFormat = cfg.DateTimeFormat
	opts.StrictLabels = cfg.Strict
	opts.Logger = logger
	if cfg.PivotFile != "" {
		settings, err := models.LoadPivotSettings(cfg.PivotFile)
		if err != nil {
			return err
		}
		opts.Pivot = &settings
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reader, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s source: %w", cfg.Driver, err)
	}
	defer closeSource()

	lockCtx := ctx
	if cfg.LockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, cfg.LockTimeout)
		defer cancel()
	}
	out, err := sink.OpenFile(lockCtx, cfg.Output)
	if err != nil {
		return err
	}

	if err := excelpivot.Write(out, reader, opts); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	logger.Info("workbook written", "pivot", opts.Pivot != nil)
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	wb, err := excelpivot.Inspect(inputPath)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(wb *models.WorkbookSummary, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
