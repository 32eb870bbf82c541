package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/spf13/cobra"
)

var matchCompanyCmd = &cobra.Command{
	Use:   "match-company",
	Short: "Match a résumé against a company profile",
	Long:  "Scores a résumé against a company's technical skills, soft skills and cultural values. Unknown companies receive a generic analysis with general recommendations.",
	RunE:  runMatchCompany,
}

var (
	matchCompanyConfigPath  string
	matchCompanyFile        string
	matchCompanyText        string
	matchCompanyCompany     string
	matchCompanyCompanies   string
	matchCompanyJSON        bool
	matchCompanyDatabaseURL string
)

func init() {
	matchCompanyCmd.Flags().StringVar(&matchCompanyConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCompanyCmd.Flags().StringVarP(&matchCompanyFile, "file", "f", "", "Path to the résumé document")
	matchCompanyCmd.Flags().StringVar(&matchCompanyText, "text", "", "Résumé text (alternative to --file)")
	matchCompanyCmd.Flags().StringVarP(&matchCompanyCompany, "company", "c", "", "Company to match against")
	matchCompanyCmd.Flags().StringVar(&matchCompanyCompanies, "companies", "", "Path to a JSON array of extra company profiles")
	matchCompanyCmd.Flags().BoolVar(&matchCompanyJSON, "json", false, "Print the analysis as JSON")
	matchCompanyCmd.Flags().StringVar(&matchCompanyDatabaseURL, "db-url", "", "PostgreSQL URL with stored company profiles (optional)")

	rootCmd.AddCommand(matchCompanyCmd)
}

func runMatchCompany(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(matchCompanyConfigPath, false)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("file") {
		cfg.File = matchCompanyFile
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = matchCompanyCompany
	}
	if cmd.Flags().Changed("companies") {
		cfg.Companies = matchCompanyCompanies
	}
	if cmd.Flags().Changed("json") {
		cfg.JSON = matchCompanyJSON
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = matchCompanyDatabaseURL
	}

	if cfg.Company == "" {
		return fmt.Errorf("--company is required (or set \"company\" in --config)")
	}

	text := matchCompanyText
	if text == "" {
		if cfg.File == "" {
			return fmt.Errorf("either --file or --text is required")
		}
		doc, err := ingestion.IngestFromFile(cfg.File)
		if err != nil {
			return err
		}
		text = doc.Text
	}

	analyzer, err := newAnalyzer(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	result := analyzer.Companies().Match(text, cfg.Company)
	if result.Message != "" {
		_, _ = fmt.Fprintf(os.Stderr, "Note: %s\n", result.Message)
	}

	if cfg.JSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintCompanyAnalysis(&result)
	return nil
}
