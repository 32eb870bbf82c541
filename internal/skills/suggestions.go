package skills

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Suggestions returns the top trending skills and the skills suggested for a role.
// The role must equal one of the known role names; any other role, including an empty
// one, gets the default soft-skill bucket.
func (a *Analyzer) Suggestions(industry, role string) types.SkillSuggestions {
	out := types.SkillSuggestions{
		Industry:     industry,
		Role:         role,
		Trending:     []types.SkillSuggestion{},
		RoleSpecific: []types.SkillSuggestion{},
	}

	trending := a.kb.CurrentTrending()
	for _, skill := range trending[:min(trendingSuggestions, len(trending))] {
		out.Trending = append(out.Trending, types.SkillSuggestion{
			Skill:      skill,
			Category:   "Trending",
			Importance: types.ImportanceHigh,
			LearningResources: []string{
				fmt.Sprintf("Online courses for %s", skill),
				fmt.Sprintf("Official %s documentation", skill),
				fmt.Sprintf("%s certification programs", skill),
			},
			MarketDemand: types.ImportanceHigh,
		})
	}

	for _, skill := range a.kb.RoleSkills(role) {
		out.RoleSpecific = append(out.RoleSpecific, types.SkillSuggestion{
			Skill:      skill,
			Category:   "Role-Specific",
			Importance: types.ImportanceMedium,
			LearningResources: []string{
				fmt.Sprintf("Practice %s projects", skill),
				fmt.Sprintf("%s tutorials and guides", skill),
				fmt.Sprintf("Join %s communities", skill),
			},
			MarketDemand: types.ImportanceMedium,
		})
	}

	return out
}
