package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(knowledge.Skills())
}

func categoryNames(analysis types.SkillAnalysis) []string {
	names := make([]string, len(analysis.IdentifiedSkills))
	for i, c := range analysis.IdentifiedSkills {
		names[i] = c.Category
	}
	return names
}

func TestAnalyze_Scenario(t *testing.T) {
	text := "Developed and led a team, increased revenue by 20%, managed AWS infrastructure, " +
		"Python, Java, 5 years experience, contact: a@b.com, 555-123-4567"

	analysis := newTestAnalyzer().Analyze(text)

	require.Len(t, analysis.IdentifiedSkills, 2)
	assert.Equal(t, types.SkillCategory{
		Category:    "Programming Languages",
		Skills:      []string{"python", "java"},
		Proficiency: ProficiencyIntermediate,
	}, analysis.IdentifiedSkills[0])
	assert.Equal(t, types.SkillCategory{
		Category:    "Cloud Platforms",
		Skills:      []string{"aws"},
		Proficiency: ProficiencyFamiliar,
	}, analysis.IdentifiedSkills[1])

	assert.Equal(t, []string{"python", "java", "aws"}, analysis.TechnicalSkills)
	assert.Empty(t, analysis.SoftSkills)
	assert.Empty(t, analysis.IndustryRelevantSkills)

	assert.Equal(t, []string{
		"git", "github", "communication", "presentation",
		"problem solving", "analytical thinking", "teamwork", "collaboration",
		"artificial intelligence", "machine learning",
	}, analysis.MissingSkills)

	assert.Equal(t, []string{
		"Add more soft skills like leadership, communication, and teamwork",
		"Consider learning trending skills: git, github, communication",
		"Expand your skill set across multiple technology categories",
	}, analysis.Recommendations)
}

func TestAnalyze_EmptyText(t *testing.T) {
	analysis := newTestAnalyzer().Analyze("")

	assert.Empty(t, analysis.IdentifiedSkills)
	assert.NotNil(t, analysis.TechnicalSkills)
	assert.Empty(t, analysis.TechnicalSkills)
	assert.NotNil(t, analysis.SoftSkills)
	assert.Empty(t, analysis.SoftSkills)
	assert.Len(t, analysis.MissingSkills, 10)
	assert.Contains(t, analysis.Recommendations, "Expand your skill set across multiple technology categories")
}

func TestAnalyze_WordBoundaries(t *testing.T) {
	analysis := newTestAnalyzer().Analyze("I write JavaScript every day")

	require.Len(t, analysis.IdentifiedSkills, 1)
	assert.Equal(t, []string{"javascript"}, analysis.IdentifiedSkills[0].Skills)
}

func TestAnalyze_Proficiency(t *testing.T) {
	analyzer := newTestAnalyzer()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"expert indicator wins", "Senior engineer, beginner in rust, python", "expert"},
		{"indicator matched as substring", "leadership in python", "expert"},
		{"intermediate indicator", "proficient python developer", "intermediate"},
		{"beginner indicator", "basic python", "beginner"},
		{"five mentions", "python python python python python", ProficiencyExperienced},
		{"two mentions", "python and python", ProficiencyIntermediate},
		{"single mention", "python", ProficiencyFamiliar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := analyzer.Analyze(tt.text)
			require.NotEmpty(t, analysis.IdentifiedSkills)
			assert.Equal(t, tt.expected, analysis.IdentifiedSkills[0].Proficiency)
		})
	}
}

func TestAnalyze_IndustryRelevantSkills(t *testing.T) {
	analysis := newTestAnalyzer().Analyze("machine learning with kubernetes and microservices")

	assert.Equal(t, []string{"Devops Tools", "Data Science", "Methodologies"}, categoryNames(analysis))
	assert.Equal(t, []string{"machine learning", "kubernetes", "microservices"}, analysis.IndustryRelevantSkills)
	assert.Equal(t, []string{"kubernetes", "machine learning"}, analysis.TechnicalSkills)

	require.Len(t, analysis.MissingSkills, 10)
	assert.NotContains(t, analysis.MissingSkills, "machine learning")
	assert.Equal(t, []string{"artificial intelligence", "generative ai"}, analysis.MissingSkills[8:])
}

func TestAnalyze_SoftHeavyResume(t *testing.T) {
	analysis := newTestAnalyzer().Analyze("communication and teamwork and problem solving")

	assert.Equal(t, []string{"communication", "teamwork", "problem solving"}, analysis.SoftSkills)
	assert.Equal(t, []string{
		"git", "github",
		"artificial intelligence", "machine learning", "generative ai", "large language models", "prompt engineering",
	}, analysis.MissingSkills)
	assert.Equal(t, []string{
		"Include more technical skills relevant to your field",
		"Consider learning trending skills: git, github, artificial intelligence",
		"Expand your skill set across multiple technology categories",
	}, analysis.Recommendations)
}

func TestAnalyze_RecommendationsCappedAtFive(t *testing.T) {
	analysis := newTestAnalyzer().Analyze("react and python")

	assert.Equal(t, []string{
		"Add more soft skills like leadership, communication, and teamwork",
		"Consider learning trending skills: git, github, communication",
		"Add cloud platform experience (AWS, Azure, Google Cloud)",
		"Include DevOps tools like Docker, Kubernetes, or CI/CD pipelines",
		"Expand your skill set across multiple technology categories",
	}, analysis.Recommendations)
}

func TestAnalyze_Idempotent(t *testing.T) {
	analyzer := newTestAnalyzer()
	text := "Senior Go and Python engineer. Docker, Kubernetes, AWS, PostgreSQL, React, leadership, mentoring."

	first := analyzer.Analyze(text)
	second := analyzer.Analyze(text)
	assert.Equal(t, first, second)
	assert.LessOrEqual(t, len(first.MissingSkills), 10)
	assert.LessOrEqual(t, len(first.Recommendations), 5)
}

func TestSuggestions(t *testing.T) {
	analyzer := newTestAnalyzer()

	t.Run("software engineer", func(t *testing.T) {
		got := analyzer.Suggestions("software_engineering", "Software Engineer")

		assert.Equal(t, "software_engineering", got.Industry)
		require.Len(t, got.Trending, 5)
		assert.Equal(t, types.SkillSuggestion{
			Skill:      "artificial intelligence",
			Category:   "Trending",
			Importance: "high",
			LearningResources: []string{
				"Online courses for artificial intelligence",
				"Official artificial intelligence documentation",
				"artificial intelligence certification programs",
			},
			MarketDemand: "high",
		}, got.Trending[0])

		require.Len(t, got.RoleSpecific, 10)
		assert.Equal(t, "python", got.RoleSpecific[0].Skill)
		assert.Equal(t, "Role-Specific", got.RoleSpecific[0].Category)
		assert.Equal(t, "medium", got.RoleSpecific[0].Importance)
		assert.Equal(t, []string{
			"Practice python projects",
			"python tutorials and guides",
			"Join python communities",
		}, got.RoleSpecific[0].LearningResources)
		assert.Equal(t, "html", got.RoleSpecific[5].Skill)
	})

	t.Run("data scientist", func(t *testing.T) {
		got := analyzer.Suggestions("", "data scientist")
		require.Len(t, got.RoleSpecific, 7)
		assert.Equal(t, "machine learning", got.RoleSpecific[0].Skill)
	})

	t.Run("unknown role uses soft skills", func(t *testing.T) {
		got := analyzer.Suggestions("", "")
		require.Len(t, got.RoleSpecific, 5)
		assert.Equal(t, "leadership", got.RoleSpecific[0].Skill)
		assert.Len(t, got.Trending, 5)
	})
}
