package types

// TechnicalRequirement is a required technical skill for a company.
type TechnicalRequirement struct {
	Skill        string   `json:"skill" yaml:"skill"`
	Importance   string   `json:"importance" yaml:"importance"`
	Description  string   `json:"description" yaml:"description"`
	Alternatives []string `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// SoftSkillRequirement is a required soft skill for a company.
type SoftSkillRequirement struct {
	Skill       string `json:"skill" yaml:"skill"`
	Importance  string `json:"importance" yaml:"importance"`
	Description string `json:"description" yaml:"description"`
}

// CompanyRequirements is a knowledge-base entry describing what a company looks for.
type CompanyRequirements struct {
	ID              string                 `json:"id" yaml:"id"`
	TechnicalSkills []TechnicalRequirement `json:"technical_skills" yaml:"technical_skills"`
	SoftSkills      []SoftSkillRequirement `json:"soft_skills" yaml:"soft_skills"`
	CulturalValues  []string               `json:"cultural_values" yaml:"cultural_values"`
	Education       string                 `json:"education" yaml:"education"`
	ExperienceLevel string                 `json:"experience_level" yaml:"experience_level"`
	TechStack       []string               `json:"tech_stack,omitempty" yaml:"tech_stack,omitempty"`
	Advice          string                 `json:"advice,omitempty" yaml:"advice,omitempty"`
}

// Weight returns the scoring weight for an importance tier (high=3, medium=2, otherwise 1).
func Weight(importance string) int {
	switch importance {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	default:
		return 1
	}
}

// TechnicalMatch details how a résumé covers a company's technical requirements.
type TechnicalMatch struct {
	Score           float64                `json:"score"`
	MatchedSkills   []TechnicalRequirement `json:"matched_skills"`
	MissingSkills   []TechnicalRequirement `json:"missing_skills"`
	CriticalMissing []TechnicalRequirement `json:"critical_missing"`
}

// SoftSkillMatch details how a résumé covers a company's soft-skill requirements.
type SoftSkillMatch struct {
	Score         float64                `json:"score"`
	MatchedSkills []SoftSkillRequirement `json:"matched_skills"`
	MissingSkills []SoftSkillRequirement `json:"missing_skills"`
}

// RoleFeedback summarises education, seniority and tech-stack signals.
type RoleFeedback struct {
	EducationMatch              bool     `json:"education_match"`
	ExperienceLevel             string   `json:"experience_level"`
	CompanySpecificTechnologies []string `json:"company_specific_technologies"`
}

// CompanyAnalysis is the result of matching a résumé against one company.
// TechnicalMatch and SoftSkillsMatch are nil for the generic fallback.
type CompanyAnalysis struct {
	CompanyName          string          `json:"company_name"`
	MatchPercentage      float64         `json:"match_percentage"`
	TechnicalMatch       *TechnicalMatch `json:"technical_match,omitempty"`
	SoftSkillsMatch      *SoftSkillMatch `json:"soft_skills_match,omitempty"`
	MissingSkills        []string        `json:"missing_skills"`
	Recommendations      []string        `json:"recommendations"`
	CulturalFitScore     float64         `json:"cultural_fit_score"`
	RoleSpecificFeedback RoleFeedback    `json:"role_specific_feedback"`
	Message              string          `json:"message,omitempty"`
}

// RequirementsRecord is returned when a caller asks for a company's requirements.
type RequirementsRecord struct {
	Company       string               `json:"company"`
	Available     bool                 `json:"available"`
	Requirements  *CompanyRequirements `json:"requirements,omitempty"`
	Message       string               `json:"message,omitempty"`
	GeneralAdvice []string             `json:"general_advice,omitempty"`
}
