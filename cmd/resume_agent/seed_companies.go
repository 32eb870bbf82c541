package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var seedCompaniesCmd = &cobra.Command{
	Use:   "seed-companies",
	Short: "Store company profiles in PostgreSQL",
	Long: `Creates the company_profiles table if needed and upserts the built-in company profiles, or the profiles in --companies. With --delete, the named profiles are removed instead.

The database URL is taken from --db-url or DATABASE_URL.`,
	RunE: runSeedCompanies,
}

var (
	seedCompaniesDatabaseURL string
	seedCompaniesFile        string
	seedCompaniesDelete      []string
)

func init() {
	seedCompaniesCmd.Flags().StringVar(&seedCompaniesDatabaseURL, "db-url", "", "PostgreSQL URL (defaults to DATABASE_URL)")
	seedCompaniesCmd.Flags().StringVar(&seedCompaniesFile, "companies", "", "Path to a JSON array of company profiles (defaults to the built-in profiles)")

	seedCompaniesCmd.Flags().StringSliceVar(&seedCompaniesDelete, "delete", nil, "Company ids to remove from the database instead of seeding")

	rootCmd.AddCommand(seedCompaniesCmd)
}

func runSeedCompanies(cmd *cobra.Command, _ []string) error {
	dbURL := seedCompaniesDatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("--db-url or DATABASE_URL is required")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	if len(seedCompaniesDelete) > 0 {
		return deleteProfiles(ctx, database, seedCompaniesDelete, cmd.OutOrStdout())
	}

	profiles, err := seedProfiles(seedCompaniesFile)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if err := database.UpsertCompanyProfile(ctx, p); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", p.ID)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d company profiles\n", len(profiles))
	return nil
}

// deleteProfiles removes each stored profile and reports it on out.
func deleteProfiles(ctx context.Context, database *db.DB, ids []string, out io.Writer) error {
	for _, id := range ids {
		if err := database.DeleteCompanyProfile(ctx, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Deleted %s\n", knowledge.NormalizeID(id))
	}
	return nil
}

// seedProfiles returns the profiles in path, or every built-in profile when path is empty.
func seedProfiles(path string) ([]types.CompanyRequirements, error) {
	if path != "" {
		return loadCompanyFile(path)
	}

	base := knowledge.Companies()
	ids := base.IDs()
	profiles := make([]types.CompanyRequirements, 0, len(ids))
	for _, id := range ids {
		p, ok := base.Lookup(id)
		if !ok {
			continue
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}
