// Package main provides the CLI entry point for tablerepair.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/output"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/source"
)

var (
	outputPath  string
	pretty      bool
	format      string
	configPath  string
	concurrency int
	tablesDir   string
	xlsxPath    string
	preview     bool
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tablerepair [input.json|input.xlsx]",
		Short: "Repair extracted tables into clean row/column structures",
		Long: `tablerepair reads tables from a docling JSON export or an Excel workbook,
rebuilds header rows and column names, splits multi-value cells and outputs JSON.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "", "Output shape: detailed, structured, both (default: from config, else structured)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with options and heuristics")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 0, "Tables parsed in parallel (default: from config)")
	rootCmd.Flags().StringVar(&tablesDir, "tables-dir", "", "Directory for per-table output files")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write repaired tables to this workbook")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "Render repaired tables to stderr")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("tablerepair failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(verbose)
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", tablerepair.ErrFileNotFound, inputPath)
	}

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	doc, err := parseInput(cmd.Context(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	jsonData, err := output.DocumentToJSON(doc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Info().Str("path", outputPath).Msg("output written")
	} else if tablesDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if tablesDir != "" {
		if err := writeTableFiles(doc, tablesDir); err != nil {
			return fmt.Errorf("failed to write table files: %w", err)
		}
	}

	if xlsxPath != "" {
		if err := writeWorkbook(doc, xlsxPath); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	if preview {
		for _, res := range doc.Tables {
			if res.Table == nil {
				continue
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s (%s)\n%s\n\n", res.ID, res.Source, output.Preview(res.Table))
		}
	}

	return nil
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func loadOptions() (tablerepair.Options, error) {
	opts := tablerepair.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = tablerepair.LoadOptions(configPath); err != nil {
			return opts, err
		}
	}

	if format != "" {
		f, err := tablerepair.ParseFormat(format)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}
	if concurrency > 0 {
		opts.Concurrency = concurrency
	}
	return opts, nil
}

func parseInput(ctx context.Context, path string, opts tablerepair.Options) (*models.DocumentData, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		in, err := source.ReadWorkbook(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", tablerepair.ErrInvalidFormat, err)
		}
		results, err := tablerepair.ParseTables(ctx, in.Name, in.Tables, opts)
		if err != nil {
			return nil, err
		}
		return &models.DocumentData{Name: in.Name, Tables: results}, nil
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return tablerepair.ParseDocument(ctx, f, opts)
	}
	return nil, fmt.Errorf("%w: unsupported extension %q", tablerepair.ErrInvalidFormat, filepath.Ext(path))
}

func writeTableFiles(doc *models.DocumentData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, res := range doc.Tables {
		jsonData, err := output.ToJSON(res, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("table%d.json", res.Index+1))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writeWorkbook(doc *models.DocumentData, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteXLSX(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
