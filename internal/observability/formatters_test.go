package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintATSScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSScore(&types.ATSScore{
		Overall:     72.5,
		Formatting:  100,
		Keyword:     40,
		Content:     65.3,
		Readability: 80,
		Section:     50,
	})
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "Overall       72.5")
	assert.Contains(t, output, "Formatting   100.0")
	assert.Contains(t, output, "Keywords      40.0  ████████░░░░░░░░░░░░")
	assert.Contains(t, output, "Readability")
}

func TestPrintATSScore_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSScore(nil)

	assert.Empty(t, buf.String())
}

func TestScoreBar_Bounds(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", 20), scoreBar(-5))
	assert.Equal(t, strings.Repeat("█", 20), scoreBar(150))
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("░", 10), scoreBar(50))
}

func TestPrintMissingComponents(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMissingComponents([]types.MissingComponent{
		{Component: "Contact Information", Importance: types.ImportanceHigh, Suggestion: "Add email and phone"},
		{Component: "Summary", Importance: types.ImportanceMedium, Suggestion: "Add a summary"},
	})
	output := buf.String()

	assert.Contains(t, output, "MISSING COMPONENTS")
	assert.Contains(t, output, "Found 2 missing components")
	assert.Contains(t, output, "⚠ Contact Information [high]")
	assert.Contains(t, output, "Add a summary")
}

func TestPrintMissingComponents_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMissingComponents(nil)

	assert.Contains(t, buf.String(), "NO MISSING COMPONENTS")
}

func TestPrintSuggestions_Overflow(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	suggestions := make([]types.ImprovementSuggestion, 7)
	for i := range suggestions {
		suggestions[i] = types.ImprovementSuggestion{
			Category:   "Keywords",
			Priority:   types.ImportanceHigh,
			Suggestion: "Add industry keywords",
			Impact:     "Improves ATS ranking",
		}
	}

	p.PrintSuggestions(suggestions)
	output := buf.String()

	assert.Contains(t, output, "IMPROVEMENT SUGGESTIONS")
	assert.Contains(t, output, "#1  Keywords (high priority)")
	assert.Contains(t, output, "#5")
	assert.NotContains(t, output, "#6")
	assert.Contains(t, output, "... and 2 more suggestions")
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSkillAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillAnalysis(&types.SkillAnalysis{
		IdentifiedSkills: []types.SkillCategory{
			{Category: "Programming Languages", Skills: []string{"Python", "Go"}, Proficiency: "Intermediate"},
		},
		IndustryRelevantSkills: []string{"Python"},
		MissingSkills:          []string{"Docker", "Kubernetes"},
		Recommendations:        []string{"Learn containers"},
	})
	output := buf.String()

	assert.Contains(t, output, "SKILL ANALYSIS")
	assert.Contains(t, output, "Programming Languages: Python, Go (Intermediate)")
	assert.Contains(t, output, "Missing:")
	assert.Contains(t, output, "• Kubernetes")
	assert.Contains(t, output, "Learn containers")
}

func TestPrintSkillAnalysis_NoSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillAnalysis(&types.SkillAnalysis{})

	assert.Contains(t, buf.String(), "No skills identified")
}

func TestPrintCompanyAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompanyAnalysis(&types.CompanyAnalysis{
		CompanyName:      "Google",
		MatchPercentage:  17.5,
		TechnicalMatch:   &types.TechnicalMatch{Score: 14.3},
		SoftSkillsMatch:  &types.SoftSkillMatch{Score: 25},
		MissingSkills:    []string{"Java"},
		Recommendations:  []string{"Emphasize algorithmic thinking"},
		CulturalFitScore: 25,
		RoleSpecificFeedback: types.RoleFeedback{
			ExperienceLevel: "Junior",
		},
	})
	output := buf.String()

	assert.Contains(t, output, "COMPANY MATCH")
	assert.Contains(t, output, "Google")
	assert.Contains(t, output, "17.5%")
	assert.Contains(t, output, "Technical:     14.3%")
	assert.Contains(t, output, "Junior")
	assert.Contains(t, output, "• Java")
}

func TestPrintCompanyAnalysis_Generic(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompanyAnalysis(&types.CompanyAnalysis{
		CompanyName:     "Initech",
		MatchPercentage: 75,
		Message:         "Analysis for Initech not available.",
	})
	output := buf.String()

	assert.Contains(t, output, "Analysis for Initech not available.")
	assert.NotContains(t, output, "Technical:")
	assert.NotContains(t, output, "Soft skills:")
}

func TestPrintCompanyAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompanyAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(&types.RequirementsRecord{
		Company:   "Amazon",
		Available: true,
		Requirements: &types.CompanyRequirements{
			ID:              "amazon",
			TechnicalSkills: []types.TechnicalRequirement{{Skill: "Java", Importance: types.ImportanceHigh}},
			SoftSkills:      []types.SoftSkillRequirement{{Skill: "Ownership", Importance: types.ImportanceHigh}},
			CulturalValues:  []string{"Customer Obsession"},
			Education:       "BS in Computer Science",
		},
	})
	output := buf.String()

	assert.Contains(t, output, "COMPANY REQUIREMENTS")
	assert.Contains(t, output, "• Java (high)")
	assert.Contains(t, output, "• Ownership (high)")
	assert.Contains(t, output, "Customer Obsession")
	assert.Contains(t, output, "BS in Computer Science")
}

func TestPrintRequirements_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(&types.RequirementsRecord{
		Company:       "Initech",
		Message:       "Detailed requirements for initech not available",
		GeneralAdvice: []string{"Research the company's tech stack and values"},
	})
	output := buf.String()

	assert.Contains(t, output, "Detailed requirements for initech not available")
	assert.Contains(t, output, "General advice:")
	assert.Contains(t, output, "Research the company's tech stack")
}

func TestPrintSkillSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillSuggestions(&types.SkillSuggestions{
		Industry: "technology",
		Role:     "software engineer",
		Trending: []types.SkillSuggestion{
			{Skill: "Kubernetes", Importance: "high", MarketDemand: "Very High"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "SKILL SUGGESTIONS")
	assert.Contains(t, output, "Industry:  technology")
	assert.Contains(t, output, "• Kubernetes (high, Very High demand)")
	assert.NotContains(t, output, "Role specific:")
}

func TestPrintSkillSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillSuggestions(&types.SkillSuggestions{})

	assert.Contains(t, buf.String(), "No suggestions available")
}

func TestPrintIndustryFocus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIndustryFocus("data_science", []string{"Data Science", "Programming Languages"}, []string{"Methodologies"})
	output := buf.String()

	assert.Contains(t, output, "INDUSTRY FOCUS")
	assert.Contains(t, output, "Industry:  data_science")
	assert.Contains(t, output, "• Programming Languages")
	assert.Contains(t, output, "Preferred:")
	assert.Contains(t, output, "• Methodologies")
}

func TestPrintIndustryFocus_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIndustryFocus("basket weaving", nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintTemplates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTemplates([]types.Template{
		{ID: "modern", Name: "Modern Professional", Description: "Clean layout"},
		{ID: "classic", Name: "Classic Executive", Description: "Traditional layout"},
	}, "classic")
	output := buf.String()

	assert.Contains(t, output, "RESUME TEMPLATES")
	assert.Contains(t, output, "  modern     Modern Professional")
	assert.Contains(t, output, "★ classic    Classic Executive")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.ResumeAnalysis{
		ATSScore: types.ATSScore{Overall: 50},
		CompanyAnalysis: &types.CompanyAnalysis{
			CompanyName: "Meta",
		},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "NO MISSING COMPONENTS")
	assert.Contains(t, output, "SKILL ANALYSIS")
	assert.Contains(t, output, "COMPANY MATCH")
	assert.NotContains(t, output, "IMPROVEMENT SUGGESTIONS")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}
