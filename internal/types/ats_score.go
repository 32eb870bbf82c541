// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Importance tiers shared by missing components and company requirements.
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

// ATSScore holds the five bounded sub-scores and their weighted combination.
// All values lie in [0, 100] and are rounded to one decimal place.
type ATSScore struct {
	Overall     float64 `json:"overall_score"`
	Formatting  float64 `json:"formatting_score"`
	Keyword     float64 `json:"keyword_score"`
	Content     float64 `json:"content_score"`
	Readability float64 `json:"readability_score"`
	Section     float64 `json:"section_score"`
}

// MissingComponent describes a résumé element that was not detected.
type MissingComponent struct {
	Component   string `json:"component"`
	Importance  string `json:"importance"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

// ImprovementSuggestion is a prioritized, actionable recommendation.
type ImprovementSuggestion struct {
	Category   string   `json:"category"`
	Priority   string   `json:"priority"`
	Suggestion string   `json:"suggestion"`
	Impact     string   `json:"impact"`
	Examples   []string `json:"examples,omitempty"`
}

// ResumeAnalysis aggregates every analyzer's output for a single résumé.
type ResumeAnalysis struct {
	ID                uuid.UUID               `json:"analysis_id"`
	ATSScore          ATSScore                `json:"ats_score"`
	MissingComponents []MissingComponent      `json:"missing_components"`
	Suggestions       []ImprovementSuggestion `json:"suggestions"`
	SkillAnalysis     SkillAnalysis           `json:"skill_analysis"`
	CompanyAnalysis   *CompanyAnalysis        `json:"company_analysis,omitempty"`
	ExtractedText     string                  `json:"extracted_text,omitempty"`
	Timestamp         time.Time               `json:"analysis_timestamp"`
}
