package company

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Requirements returns the full profile of a known company, or an unavailable record with
// general research advice.
func (m *Matcher) Requirements(companyID string) types.RequirementsRecord {
	if profile, ok := m.kb.Lookup(companyID); ok {
		req := *profile
		return types.RequirementsRecord{
			Company:      displayName(companyID),
			Available:    true,
			Requirements: &req,
		}
	}

	return types.RequirementsRecord{
		Company:       displayName(companyID),
		Available:     false,
		Message:       fmt.Sprintf("Detailed requirements for %s not available", companyID),
		GeneralAdvice: append([]string{}, m.kb.Generic.GeneralAdvice...),
	}
}

// Known returns the identifiers of every company with a profile.
func (m *Matcher) Known() []string {
	return m.kb.IDs()
}
