package types

// SkillCategory lists the skills found for one knowledge-base category,
// in knowledge-base order.
type SkillCategory struct {
	Category    string   `json:"category"`
	Skills      []string `json:"skills"`
	Proficiency string   `json:"proficiency_level,omitempty"`
}

// SkillAnalysis is the full result of scanning a résumé for skills.
type SkillAnalysis struct {
	IdentifiedSkills       []SkillCategory `json:"identified_skills"`
	TechnicalSkills        []string        `json:"technical_skills"`
	SoftSkills             []string        `json:"soft_skills"`
	IndustryRelevantSkills []string        `json:"industry_relevant_skills"`
	MissingSkills          []string        `json:"missing_skills"`
	Recommendations        []string        `json:"skill_recommendations"`
}

// HasCategory reports whether a category with the given display name was identified.
func (a *SkillAnalysis) HasCategory(name string) bool {
	for _, c := range a.IdentifiedSkills {
		if c.Category == name {
			return true
		}
	}
	return false
}

// SkillSuggestion recommends a skill to learn together with resources.
type SkillSuggestion struct {
	Skill             string   `json:"skill"`
	Category          string   `json:"category"`
	Importance        string   `json:"importance"`
	LearningResources []string `json:"learning_resources"`
	MarketDemand      string   `json:"market_demand"`
}

// SkillSuggestions groups suggestions into trending and role-specific buckets.
type SkillSuggestions struct {
	Industry     string            `json:"industry,omitempty"`
	Role         string            `json:"role,omitempty"`
	Trending     []SkillSuggestion `json:"trending_skills"`
	RoleSpecific []SkillSuggestion `json:"role_specific_skills"`
}
