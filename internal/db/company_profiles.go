package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// CompanyProfileRow is a stored company profile before validation.
type CompanyProfileRow struct {
	ID        string          `json:"id"`
	Profile   json.RawMessage `json:"profile"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProfileError reports a stored profile that failed validation.
type ProfileError struct {
	ID    string
	Cause error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("company profile %q: %v", e.ID, e.Cause)
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}

// ListCompanyProfiles returns every stored profile ordered by id.
func (db *DB) ListCompanyProfiles(ctx context.Context) ([]CompanyProfileRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, profile, updated_at FROM company_profiles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list company profiles: %w", err)
	}
	defer rows.Close()

	var result []CompanyProfileRow
	for rows.Next() {
		var r CompanyProfileRow
		if err := rows.Scan(&r.ID, &r.Profile, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company profile: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate company profiles: %w", err)
	}
	return result, nil
}

// GetCompanyProfile returns the stored profile with the given id, or nil when absent.
func (db *DB) GetCompanyProfile(ctx context.Context, id string) (*CompanyProfileRow, error) {
	var r CompanyProfileRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, profile, updated_at FROM company_profiles WHERE id = $1`,
		knowledge.NormalizeID(id),
	).Scan(&r.ID, &r.Profile, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}
	return &r, nil
}

// UpsertCompanyProfile validates and stores a profile under its normalized id.
func (db *DB) UpsertCompanyProfile(ctx context.Context, profile types.CompanyRequirements) error {
	profile = withEmptySlices(profile)
	profile.ID = knowledge.NormalizeID(profile.ID)

	document, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal company profile: %w", err)
	}
	if err := schemas.ValidateCompanyProfile(document); err != nil {
		return &ProfileError{ID: profile.ID, Cause: err}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO company_profiles (id, profile)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET profile = $2, updated_at = NOW()`,
		profile.ID, document,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert company profile %s: %w", profile.ID, err)
	}
	return nil
}

// DeleteCompanyProfile removes a stored profile. Deleting an absent id is not an error.
func (db *DB) DeleteCompanyProfile(ctx context.Context, id string) error {
	if _, err := db.pool.Exec(ctx,
		`DELETE FROM company_profiles WHERE id = $1`, knowledge.NormalizeID(id)); err != nil {
		return fmt.Errorf("failed to delete company profile: %w", err)
	}
	return nil
}

// LoadCompanyProfiles returns every stored profile that passes schema validation,
// together with one ProfileError per rejected row.
func (db *DB) LoadCompanyProfiles(ctx context.Context) ([]types.CompanyRequirements, []error, error) {
	rows, err := db.ListCompanyProfiles(ctx)
	if err != nil {
		return nil, nil, err
	}
	profiles, rejected := DecodeProfiles(rows)
	return profiles, rejected, nil
}

// DecodeProfiles validates each row against the company profile schema and decodes the
// valid ones. The row id wins over any id inside the document.
func DecodeProfiles(rows []CompanyProfileRow) ([]types.CompanyRequirements, []error) {
	profiles := make([]types.CompanyRequirements, 0, len(rows))
	var rejected []error

	for _, row := range rows {
		if err := schemas.ValidateCompanyProfile(row.Profile); err != nil {
			rejected = append(rejected, &ProfileError{ID: row.ID, Cause: err})
			continue
		}
		var profile types.CompanyRequirements
		if err := json.Unmarshal(row.Profile, &profile); err != nil {
			rejected = append(rejected, &ProfileError{ID: row.ID, Cause: err})
			continue
		}
		profile.ID = knowledge.NormalizeID(row.ID)
		profiles = append(profiles, profile)
	}

	return profiles, rejected
}

// withEmptySlices replaces nil lists so the stored document never carries JSON nulls.
func withEmptySlices(p types.CompanyRequirements) types.CompanyRequirements {
	if p.TechnicalSkills == nil {
		p.TechnicalSkills = []types.TechnicalRequirement{}
	}
	if p.SoftSkills == nil {
		p.SoftSkills = []types.SoftSkillRequirement{}
	}
	if p.CulturalValues == nil {
		p.CulturalValues = []string{}
	}
	return p
}
