package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/company"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var requirementsCmd = &cobra.Command{
	Use:   "requirements [company]",
	Short: "Show a company's requirement profile",
	Long: `Prints the technical skills, soft skills, cultural values, education and experience a company looks for. With --list, prints the ids of every known company.

With --stored, the profile is read directly from the company_profiles table instead of the merged knowledge base.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRequirements,
}

var (
	requirementsCompanies   string
	requirementsList        bool
	requirementsStored      bool
	requirementsJSON        bool
	requirementsDatabaseURL string
)

func init() {
	requirementsCmd.Flags().StringVar(&requirementsCompanies, "companies", "", "Path to a JSON array of extra company profiles")
	requirementsCmd.Flags().BoolVar(&requirementsList, "list", false, "List known company ids")
	requirementsCmd.Flags().BoolVar(&requirementsStored, "stored", false, "Show only the profile stored in the database (requires --db-url or DATABASE_URL)")
	requirementsCmd.Flags().BoolVar(&requirementsJSON, "json", false, "Print the profile as JSON")
	requirementsCmd.Flags().StringVar(&requirementsDatabaseURL, "db-url", "", "PostgreSQL URL with stored company profiles (optional)")

	rootCmd.AddCommand(requirementsCmd)
}

func runRequirements(cmd *cobra.Command, args []string) error {
	if !requirementsList && len(args) == 0 {
		return cmd.Usage()
	}

	out := cmd.OutOrStdout()

	var record types.RequirementsRecord
	switch {
	case requirementsStored:
		if len(args) == 0 {
			return fmt.Errorf("--stored needs a company id")
		}
		dbURL := requirementsDatabaseURL
		if dbURL == "" {
			dbURL = os.Getenv("DATABASE_URL")
		}
		if dbURL == "" {
			return fmt.Errorf("--stored requires --db-url or DATABASE_URL")
		}

		database, err := db.Connect(cmd.Context(), dbURL)
		if err != nil {
			return err
		}
		defer database.Close()

		stored, updatedAt, err := storedRequirements(cmd.Context(), database, args[0])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Stored profile updated %s\n", updatedAt.Format(time.RFC3339))
		record = *stored

	default:
		cfg := config.Config{
			Companies:   requirementsCompanies,
			DatabaseURL: requirementsDatabaseURL,
		}
		base, err := companyBase(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		matcher := company.NewMatcher(base)

		if requirementsList {
			known := matcher.Known()
			if requirementsJSON {
				return writeJSON(out, known)
			}
			_, err := out.Write([]byte(strings.Join(known, "\n") + "\n"))
			return err
		}
		record = matcher.Requirements(args[0])
	}

	if requirementsJSON {
		return writeJSON(out, record)
	}
	observability.NewPrinter(out).PrintRequirements(&record)
	return nil
}

// storedRequirements reads one company profile from the database. A missing or invalid
// row is an error.
func storedRequirements(ctx context.Context, database *db.DB, id string) (*types.RequirementsRecord, time.Time, error) {
	row, err := database.GetCompanyProfile(ctx, id)
	if err != nil {
		return nil, time.Time{}, err
	}
	if row == nil {
		return nil, time.Time{}, fmt.Errorf("no stored profile for %q", id)
	}

	profiles, rejected := db.DecodeProfiles([]db.CompanyProfileRow{*row})
	if len(rejected) > 0 {
		return nil, time.Time{}, rejected[0]
	}

	return &types.RequirementsRecord{
		Company:      textnorm.Title(strings.TrimSpace(id)),
		Available:    true,
		Requirements: &profiles[0],
	}, row.UpdatedAt, nil
}
