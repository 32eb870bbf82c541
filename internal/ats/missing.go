package ats

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	minQuantifiedAchievements = 3
	minActionVerbs            = 5
)

// FindMissingComponents lists absent required sections (in declaration order), followed by
// a missing email, phone number, quantified achievements and action verbs.
func (e *Engine) FindMissingComponents(text string) []types.MissingComponent {
	missing := []types.MissingComponent{}

	present := detectSections(text)
	for _, rule := range sectionRules {
		if !rule.required || present[rule.name] {
			continue
		}
		importance := types.ImportanceMedium
		if rule.name == SectionContact || rule.name == SectionExperience {
			importance = types.ImportanceHigh
		}
		missing = append(missing, types.MissingComponent{
			Component:   textnorm.Title(rule.name) + " Section",
			Importance:  importance,
			Description: fmt.Sprintf("No %s section found in the resume", rule.name),
			Suggestion:  fmt.Sprintf("Add a dedicated %s section with relevant information", rule.name),
		})
	}

	if !hasEmail(text) {
		missing = append(missing, types.MissingComponent{
			Component:   "Email Address",
			Importance:  types.ImportanceHigh,
			Description: "No email address found",
			Suggestion:  "Include a professional email address in your contact information",
		})
	}

	if !hasPhone(text) {
		missing = append(missing, types.MissingComponent{
			Component:   "Phone Number",
			Importance:  types.ImportanceHigh,
			Description: "No phone number found",
			Suggestion:  "Include a phone number in your contact information",
		})
	}

	if countQuantified(text) < minQuantifiedAchievements {
		missing = append(missing, types.MissingComponent{
			Component:   "Quantifiable Achievements",
			Importance:  types.ImportanceMedium,
			Description: "Limited quantifiable achievements found",
			Suggestion:  "Include specific numbers, percentages, and metrics to demonstrate impact",
		})
	}

	if e.actionVerbCount(textnorm.Lower(text)) < minActionVerbs {
		missing = append(missing, types.MissingComponent{
			Component:   "Action Verbs",
			Importance:  types.ImportanceMedium,
			Description: "Limited use of strong action verbs",
			Suggestion:  "Use more action verbs like 'achieved', 'developed', 'implemented' to describe your experience",
		})
	}

	return missing
}
