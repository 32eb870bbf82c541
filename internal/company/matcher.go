// Package company matches résumé text against curated company requirement profiles.
package company

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights of the technical and soft-skill scores in the overall match.
const (
	technicalWeight = 0.7
	softSkillWeight = 0.3
)

const (
	maxMissingSkills      = 8
	maxRecommendations    = 5
	criticalSkillsToName  = 3
	softSkillsToHighlight = 2
	techScoreThreshold    = 70
	softScoreThreshold    = 60
)

// Matcher compares résumé text with company profiles. It holds only read-only data and
// is safe for concurrent use.
type Matcher struct {
	kb *knowledge.CompanyBase
}

// NewMatcher creates a Matcher backed by the given company knowledge base.
func NewMatcher(kb *knowledge.CompanyBase) *Matcher {
	return &Matcher{kb: kb}
}

// Match scores the text against the company's profile. Unknown companies get a generic
// analysis instead of an error.
func (m *Matcher) Match(text, companyID string) types.CompanyAnalysis {
	profile, ok := m.kb.Lookup(companyID)
	if !ok {
		return m.generic(companyID)
	}

	lower := textnorm.Lower(text)

	tech := m.technicalMatch(lower, profile.TechnicalSkills)
	soft := m.softSkillMatch(lower, profile.SoftSkills)
	overall := textnorm.Round1(tech.Score*technicalWeight + soft.Score*softSkillWeight)

	return types.CompanyAnalysis{
		CompanyName:      displayName(companyID),
		MatchPercentage:  overall,
		TechnicalMatch:   tech,
		SoftSkillsMatch:  soft,
		MissingSkills:    m.missingSkills(lower, profile),
		Recommendations:  recommendations(tech, soft, profile, companyID),
		CulturalFitScore: m.culturalFit(lower, profile.CulturalValues),
		RoleSpecificFeedback: types.RoleFeedback{
			EducationMatch:              m.educationMatch(lower),
			ExperienceLevel:             m.experienceLevel(lower),
			CompanySpecificTechnologies: techStackHits(lower, profile.TechStack),
		},
	}
}

// technicalMatch weights each requirement by importance and scores the matched share.
func (m *Matcher) technicalMatch(lower string, required []types.TechnicalRequirement) *types.TechnicalMatch {
	match := &types.TechnicalMatch{
		MatchedSkills:   []types.TechnicalRequirement{},
		MissingSkills:   []types.TechnicalRequirement{},
		CriticalMissing: []types.TechnicalRequirement{},
	}

	total, matched := 0, 0
	for _, req := range required {
		w := types.Weight(req.Importance)
		total += w
		if m.skillMentioned(lower, req) {
			match.MatchedSkills = append(match.MatchedSkills, req)
			matched += w
			continue
		}
		match.MissingSkills = append(match.MissingSkills, req)
		if req.Importance == types.ImportanceHigh {
			match.CriticalMissing = append(match.CriticalMissing, req)
		}
	}

	if total > 0 {
		match.Score = textnorm.Round1(float64(matched) / float64(total) * 100)
	}
	return match
}

// softSkillMatch scores the share of soft skills with at least one keyword present.
// A company without soft-skill requirements scores 100.
func (m *Matcher) softSkillMatch(lower string, required []types.SoftSkillRequirement) *types.SoftSkillMatch {
	match := &types.SoftSkillMatch{
		Score:         100,
		MatchedSkills: []types.SoftSkillRequirement{},
		MissingSkills: []types.SoftSkillRequirement{},
	}

	for _, req := range required {
		if m.softSkillPresent(lower, req.Skill) {
			match.MatchedSkills = append(match.MatchedSkills, req)
		} else {
			match.MissingSkills = append(match.MissingSkills, req)
		}
	}

	if len(required) > 0 {
		match.Score = textnorm.Round1(float64(len(match.MatchedSkills)) / float64(len(required)) * 100)
	}
	return match
}

// skillMentioned tests the skill name, its known variations and its alternatives as
// whole words.
func (m *Matcher) skillMentioned(lower string, req types.TechnicalRequirement) bool {
	name := strings.ToLower(req.Skill)
	variations := append([]string{name}, m.kb.SkillVariations[name]...)
	variations = append(variations, req.Alternatives...)

	for _, v := range variations {
		if textnorm.ContainsWord(lower, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// softSkillPresent reports whether any keyword of the skill's group is a substring of the
// text. Skills without a group use their own lowercased name.
func (m *Matcher) softSkillPresent(lower, skill string) bool {
	return textnorm.ContainsAny(lower, keywordsFor(m.kb.SoftSkillKeywords, skill))
}

// missingSkills lists unmatched high-importance technical skills followed by unmatched
// high-importance soft skills, capped at 8.
func (m *Matcher) missingSkills(lower string, profile *types.CompanyRequirements) []string {
	missing := []string{}

	for _, req := range profile.TechnicalSkills {
		if req.Importance == types.ImportanceHigh && !m.skillMentioned(lower, req) {
			missing = append(missing, req.Skill)
		}
	}
	for _, req := range profile.SoftSkills {
		if req.Importance == types.ImportanceHigh && !m.softSkillPresent(lower, req.Skill) {
			missing = append(missing, req.Skill)
		}
	}

	return missing[:min(maxMissingSkills, len(missing))]
}

func recommendations(tech *types.TechnicalMatch, soft *types.SoftSkillMatch, profile *types.CompanyRequirements, companyID string) []string {
	recs := []string{}

	if tech.Score < techScoreThreshold && len(tech.CriticalMissing) > 0 {
		names := make([]string, 0, criticalSkillsToName)
		for _, req := range tech.CriticalMissing[:min(criticalSkillsToName, len(tech.CriticalMissing))] {
			names = append(names, req.Skill)
		}
		recs = append(recs, fmt.Sprintf("Focus on learning %s's core technologies: %s",
			strings.TrimSpace(companyID), strings.Join(names, ", ")))
	}

	if soft.Score < softScoreThreshold && len(soft.MissingSkills) > 0 {
		names := make([]string, 0, softSkillsToHighlight)
		for _, req := range soft.MissingSkills[:min(softSkillsToHighlight, len(soft.MissingSkills))] {
			names = append(names, req.Skill)
		}
		recs = append(recs, fmt.Sprintf("Highlight experiences that demonstrate %s", strings.Join(names, ", ")))
	}

	if profile.Advice != "" {
		recs = append(recs, profile.Advice)
	}

	return recs[:min(maxRecommendations, len(recs))]
}

// generic returns the fallback analysis for a company without a profile.
func (m *Matcher) generic(companyID string) types.CompanyAnalysis {
	g := m.kb.Generic
	return types.CompanyAnalysis{
		CompanyName:      companyID,
		MatchPercentage:  g.MatchPercentage,
		MissingSkills:    []string{},
		Recommendations:  append([]string{}, g.Recommendations...),
		CulturalFitScore: g.CulturalFitScore,
		RoleSpecificFeedback: types.RoleFeedback{
			EducationMatch:              true,
			ExperienceLevel:             g.ExperienceLevel,
			CompanySpecificTechnologies: []string{},
		},
		Message: fmt.Sprintf("Analysis for %s not available. Showing general tech recommendations.", companyID),
	}
}

// displayName title-cases a company identifier, e.g. "goldman sachs" -> "Goldman Sachs".
func displayName(companyID string) string {
	return textnorm.Title(strings.TrimSpace(companyID))
}

// keywordsFor returns the keyword group of a label, or the lowercased label itself.
func keywordsFor(groups map[string][]string, label string) []string {
	key := strings.ToLower(label)
	if kws, ok := groups[key]; ok {
		return kws
	}
	return []string{key}
}
