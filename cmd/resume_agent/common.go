package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// loadCommandConfig loads and validates a --config file. An empty path yields an empty config.
func loadCommandConfig(path string, verbose bool) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	if verbose {
		_, _ = fmt.Fprintf(os.Stderr, "Loaded config from: %s\n", path)
	}
	return *loaded, nil
}

// loadCompanyFile reads a JSON array of company profiles, validating each against the
// company profile schema.
func loadCompanyFile(path string) ([]types.CompanyRequirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read companies file: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("companies file %s must contain a JSON array: %w", path, err)
	}

	profiles := make([]types.CompanyRequirements, 0, len(raw))
	for i, doc := range raw {
		if err := schemas.ValidateCompanyProfile(doc); err != nil {
			return nil, fmt.Errorf("company profile %d in %s: %w", i, path, err)
		}
		var p types.CompanyRequirements
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("company profile %d in %s: %w", i, path, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// companyBase returns the embedded company base overlaid with profiles from the
// companies file and then the database, when configured.
func companyBase(ctx context.Context, cfg config.Config) (*knowledge.CompanyBase, error) {
	base := knowledge.Companies()

	if cfg.Companies != "" {
		profiles, err := loadCompanyFile(cfg.Companies)
		if err != nil {
			return nil, err
		}
		base = base.WithOverrides(profiles)
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer database.Close()

		profiles, rejected, err := database.LoadCompanyProfiles(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range rejected {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: skipping stored profile: %v\n", r)
		}
		base = base.WithOverrides(profiles)
	}

	return base, nil
}

// newAnalyzer builds an analyzer over the skill base and the configured company base.
func newAnalyzer(ctx context.Context, cfg config.Config) (*pipeline.Analyzer, error) {
	companies, err := companyBase(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pipeline.NewAnalyzer(knowledge.Skills(), companies), nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
