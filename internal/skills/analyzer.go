// Package skills identifies résumé skills against the skill knowledge base and
// produces gap lists, recommendations and learning suggestions.
package skills

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	maxMissingSkills       = 10
	maxRecommendations     = 5
	trendingSuggestions    = 5
	aliasesPerMissingSkill = 2
)

// Proficiency labels used when no indicator word is present.
const (
	ProficiencyExperienced  = "experienced"
	ProficiencyIntermediate = "intermediate"
	ProficiencyFamiliar     = "familiar"
)

// Analyzer scans résumé text for skills. It holds only read-only data and is safe for
// concurrent use.
type Analyzer struct {
	kb *knowledge.SkillBase
}

// NewAnalyzer creates an Analyzer backed by the given skill knowledge base.
func NewAnalyzer(kb *knowledge.SkillBase) *Analyzer {
	return &Analyzer{kb: kb}
}

// identified is a matched category together with its knowledge-base definition.
type identified struct {
	category knowledge.Category
	skills   []string
}

// Analyze identifies skills by category and derives technical, soft and trending skills,
// missing skills and recommendations.
func (a *Analyzer) Analyze(text string) types.SkillAnalysis {
	lower := textnorm.Lower(text)
	found := a.identify(lower)

	analysis := types.SkillAnalysis{
		IdentifiedSkills:       make([]types.SkillCategory, 0, len(found)),
		TechnicalSkills:        []string{},
		SoftSkills:             []string{},
		IndustryRelevantSkills: []string{},
	}

	names := make(map[string]bool)
	for _, f := range found {
		analysis.IdentifiedSkills = append(analysis.IdentifiedSkills, types.SkillCategory{
			Category:    f.category.DisplayName(),
			Skills:      f.skills,
			Proficiency: a.proficiency(lower, f.skills),
		})
		if f.category.Technical {
			analysis.TechnicalSkills = append(analysis.TechnicalSkills, f.skills...)
		}
		if f.category.Soft {
			analysis.SoftSkills = append(analysis.SoftSkills, f.skills...)
		}
		for _, s := range f.skills {
			names[strings.ToLower(s)] = true
		}
	}

	for _, trending := range a.kb.CurrentTrending() {
		if names[strings.ToLower(trending)] {
			analysis.IndustryRelevantSkills = append(analysis.IndustryRelevantSkills, trending)
		}
	}

	analysis.MissingSkills = a.missingSkills(names)
	analysis.Recommendations = a.recommendations(found, len(analysis.TechnicalSkills), len(analysis.SoftSkills), analysis.MissingSkills)

	return analysis
}

// identify returns the categories with at least one whole-word match, in knowledge-base
// order. Skills within a category keep their knowledge-base order.
func (a *Analyzer) identify(lower string) []identified {
	var found []identified
	for _, c := range a.kb.Categories {
		var matched []string
		for _, skill := range c.Skills {
			if textnorm.ContainsWord(lower, strings.ToLower(skill)) {
				matched = append(matched, skill)
			}
		}
		if len(matched) > 0 {
			found = append(found, identified{category: c, skills: matched})
		}
	}
	return found
}

// proficiency returns the first tier whose indicator appears anywhere in the text, or a
// label derived from how often the matched skills are mentioned.
func (a *Analyzer) proficiency(lower string, skills []string) string {
	for _, tier := range a.kb.ProficiencyTiers {
		if textnorm.ContainsAny(lower, tier.Indicators) {
			return tier.Level
		}
	}

	mentions := 0
	for _, s := range skills {
		mentions += strings.Count(lower, strings.ToLower(s))
	}
	switch {
	case mentions >= 5:
		return ProficiencyExperienced
	case mentions >= 2:
		return ProficiencyIntermediate
	default:
		return ProficiencyFamiliar
	}
}

// missingSkills adds the first two aliases of every essential group with no identified
// alias, then the top trending skills not identified, capped at 10.
func (a *Analyzer) missingSkills(names map[string]bool) []string {
	missing := []string{}

	for _, group := range a.kb.EssentialGroups {
		covered := false
		for _, term := range group.Terms {
			if names[term] {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, group.Terms[:min(aliasesPerMissingSkill, len(group.Terms))]...)
		}
	}

	trending := a.kb.CurrentTrending()
	for _, skill := range trending[:min(trendingSuggestions, len(trending))] {
		if !names[strings.ToLower(skill)] {
			missing = append(missing, skill)
		}
	}

	return missing[:min(maxMissingSkills, len(missing))]
}

func (a *Analyzer) recommendations(found []identified, technical, soft int, missing []string) []string {
	recs := []string{}

	if technical > soft*3 {
		recs = append(recs, "Add more soft skills like leadership, communication, and teamwork")
	} else if soft > technical {
		recs = append(recs, "Include more technical skills relevant to your field")
	}

	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Consider learning trending skills: %s", strings.Join(missing[:min(3, len(missing))], ", ")))
	}

	has := make(map[string]bool, len(found))
	for _, f := range found {
		has[f.category.Key] = true
	}
	if has["programming_languages"] && !has["cloud_platforms"] {
		recs = append(recs, "Add cloud platform experience (AWS, Azure, Google Cloud)")
	}
	if has["web_technologies"] && !has["devops_tools"] {
		recs = append(recs, "Include DevOps tools like Docker, Kubernetes, or CI/CD pipelines")
	}

	if len(found) < 3 {
		recs = append(recs, "Expand your skill set across multiple technology categories")
	}

	return recs[:min(maxRecommendations, len(recs))]
}
