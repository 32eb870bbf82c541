package ats

import (
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	minWords           = 300
	maxWords           = 800
	maxPassiveMarkers  = 10
	minKeywordScore    = 50
	maxSpecialChars    = 50
	categoryLength     = "Content Length"
	categoryStyle      = "Writing Style"
	categoryKeywords   = "Keywords"
	categoryFormatting = "Formatting"
)

// SuggestImprovements returns the triggered suggestions in the order: content length,
// passive voice, keywords, formatting.
func (e *Engine) SuggestImprovements(text string) []types.ImprovementSuggestion {
	suggestions := []types.ImprovementSuggestion{}
	lower := textnorm.Lower(text)

	words := textnorm.WordCount(text)
	if words < minWords {
		suggestions = append(suggestions, types.ImprovementSuggestion{
			Category:   categoryLength,
			Priority:   types.ImportanceHigh,
			Suggestion: "Your resume is too short. Expand on your experiences and achievements.",
			Impact:     "ATS systems prefer resumes with sufficient detail (300-800 words)",
			Examples: []string{
				"Add more bullet points under each job",
				"Include project descriptions",
				"Expand on your achievements",
			},
		})
	} else if words > maxWords {
		suggestions = append(suggestions, types.ImprovementSuggestion{
			Category:   categoryLength,
			Priority:   types.ImportanceMedium,
			Suggestion: "Your resume might be too long. Consider condensing information.",
			Impact:     "Keep it concise while maintaining important details",
			Examples: []string{
				"Remove redundant information",
				"Combine similar achievements",
				"Focus on most relevant experiences",
			},
		})
	}

	if textnorm.CountSubstrings(lower, passiveMarkers) > maxPassiveMarkers {
		suggestions = append(suggestions, types.ImprovementSuggestion{
			Category:   categoryStyle,
			Priority:   types.ImportanceMedium,
			Suggestion: "Reduce use of passive voice and use more active language.",
			Impact:     "Active voice makes your accomplishments more impactful",
			Examples: []string{
				"'Led a team' instead of 'Was responsible for leading'",
				"'Developed software' instead of 'Software was developed'",
			},
		})
	}

	if e.keywordScore(text) < minKeywordScore {
		suggestions = append(suggestions, types.ImprovementSuggestion{
			Category:   categoryKeywords,
			Priority:   types.ImportanceHigh,
			Suggestion: "Include more industry-relevant keywords and skills.",
			Impact:     "ATS systems scan for specific keywords related to the job",
			Examples: []string{
				"Add technical skills",
				"Include industry buzzwords",
				"Use job posting keywords",
			},
		})
	}

	if countSpecialChars(text) > maxSpecialChars {
		suggestions = append(suggestions, types.ImprovementSuggestion{
			Category:   categoryFormatting,
			Priority:   types.ImportanceMedium,
			Suggestion: "Simplify formatting by removing excessive special characters.",
			Impact:     "Clean formatting improves ATS readability",
			Examples: []string{
				"Use simple bullet points",
				"Avoid complex symbols",
				"Use standard fonts",
			},
		})
	}

	return suggestions
}
