package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a résumé document",
	Long: `Extracts the text of a PDF, DOCX, HTML or plain-text résumé and reports its ATS score, missing components, improvement suggestions, skills and, with --company, the match against a company profile.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath    string
	analyzeFile          string
	analyzeCompany       string
	analyzeCompaniesFile string
	analyzeOutDir        string
	analyzeJSON          bool
	analyzeVerbose       bool
	analyzeDatabaseURL   string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to the résumé document")
	analyzeCmd.Flags().StringVarP(&analyzeCompany, "company", "c", "", "Company to match against (optional)")
	analyzeCmd.Flags().StringVar(&analyzeCompaniesFile, "companies", "", "Path to a JSON array of extra company profiles")
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Directory for cleaned text, metadata and analysis JSON (optional)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print progress while analyzing")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL URL with stored company profiles (optional)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(analyzeConfigPath, analyzeVerbose)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("file") {
		cfg.File = analyzeFile
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = analyzeCompany
	}
	if cmd.Flags().Changed("companies") {
		cfg.Companies = analyzeCompaniesFile
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = analyzeOutDir
	}
	if cmd.Flags().Changed("json") {
		cfg.JSON = analyzeJSON
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}

	if cfg.File == "" {
		return fmt.Errorf("--file is required (or set \"file\" in --config)")
	}

	ctx := cmd.Context()
	analyzer, err := newAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}

	doc, err := ingestion.IngestFromFile(cfg.File)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Text:     doc.Text,
		Filename: filepath.Base(cfg.File),
		Company:  cfg.Company,
	}
	if cfg.Verbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stderr, "[%s] %s\n", e.Step, e.Message)
		}
	}

	result, err := analyzer.Run(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.OutDir != "" {
		if err := ingestion.WriteOutput(cfg.OutDir, doc); err != nil {
			return err
		}
		f, err := os.Create(filepath.Join(cfg.OutDir, "resume.analysis.json"))
		if err != nil {
			return fmt.Errorf("failed to create analysis file: %w", err)
		}
		defer f.Close() //nolint:errcheck
		if err := writeJSON(f, result); err != nil {
			return err
		}
		if cfg.Verbose {
			_, _ = fmt.Fprintf(os.Stderr, "Wrote analysis to %s\n", cfg.OutDir)
		}
	}

	if cfg.JSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(result)
	return nil
}
