// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for human-readable CLI mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit bulleted items followed by an overflow line.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// scoreBar renders a 0-100 score as a 20-cell bar.
func scoreBar(score float64) string {
	filled := int(score / 5)
	filled = max(0, min(20, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

// PrintATSScore outputs the overall score and each sub-score.
func (p *Printer) PrintATSScore(score *types.ATSScore) {
	if score == nil {
		return
	}

	rows := []struct {
		label string
		value float64
	}{
		{"Overall", score.Overall},
		{"Formatting", score.Formatting},
		{"Keywords", score.Keyword},
		{"Content", score.Content},
		{"Readability", score.Readability},
		{"Sections", score.Section},
	}

	var sb strings.Builder
	for i, r := range rows {
		sb.WriteString(fmt.Sprintf("%-12s %5.1f  %s", r.label, r.value, scoreBar(r.value)))
		if i == 0 {
			sb.WriteString("\n")
		}
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ATS SCORE", sb.String())
}

// PrintMissingComponents outputs each missing résumé component with its importance.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMissingComponents(components []types.MissingComponent) {
	if len(components) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO MISSING COMPONENTS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d missing components:\n\n", len(components)))

	for i, c := range components {
		sb.WriteString(fmt.Sprintf("⚠ %s [%s]\n", c.Component, c.Importance))
		sb.WriteString(fmt.Sprintf("  %s", c.Suggestion))
		if i < len(components)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("MISSING COMPONENTS", sb.String())
}

// PrintSuggestions outputs the prioritized improvement suggestions.
func (p *Printer) PrintSuggestions(suggestions []types.ImprovementSuggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s priority)\n", i+1, s.Category, s.Priority))
		sb.WriteString(fmt.Sprintf("    %s\n", s.Suggestion))
		sb.WriteString(fmt.Sprintf("    Impact: %s", s.Impact))
		if i < count-1 {
			sb.WriteString("\n\n")
		}
	}

	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more suggestions", len(suggestions)-maxItemsToShow))
	}

	p.printBox("IMPROVEMENT SUGGESTIONS", sb.String())
}

// PrintSkillAnalysis outputs identified skill categories and skill gaps.
func (p *Printer) PrintSkillAnalysis(analysis *types.SkillAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	if len(analysis.IdentifiedSkills) == 0 {
		sb.WriteString("No skills identified\n\n")
	}
	for _, c := range analysis.IdentifiedSkills {
		line := fmt.Sprintf("%s: %s", c.Category, strings.Join(c.Skills, ", "))
		if c.Proficiency != "" {
			line += fmt.Sprintf(" (%s)", c.Proficiency)
		}
		sb.WriteString(line + "\n")
	}
	if len(analysis.IdentifiedSkills) > 0 {
		sb.WriteString("\n")
	}

	writeList(&sb, "Industry relevant", analysis.IndustryRelevantSkills, maxItemsToShow)
	writeList(&sb, "Missing", analysis.MissingSkills, maxItemsToShow)
	writeList(&sb, "Recommendations", analysis.Recommendations, 3)

	p.printBox("SKILL ANALYSIS", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintCompanyAnalysis outputs the match against a company profile.
func (p *Printer) PrintCompanyAnalysis(analysis *types.CompanyAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:       %s\n", analysis.CompanyName))
	sb.WriteString(fmt.Sprintf("Match:         %.1f%%\n", analysis.MatchPercentage))
	if analysis.TechnicalMatch != nil {
		sb.WriteString(fmt.Sprintf("Technical:     %.1f%%\n", analysis.TechnicalMatch.Score))
	}
	if analysis.SoftSkillsMatch != nil {
		sb.WriteString(fmt.Sprintf("Soft skills:   %.1f%%\n", analysis.SoftSkillsMatch.Score))
	}
	sb.WriteString(fmt.Sprintf("Cultural fit:  %.1f%%\n", analysis.CulturalFitScore))
	sb.WriteString(fmt.Sprintf("Experience:    %s\n", analysis.RoleSpecificFeedback.ExperienceLevel))
	sb.WriteString("\n")

	if analysis.Message != "" {
		sb.WriteString(analysis.Message + "\n\n")
	}

	writeList(&sb, "Missing skills", analysis.MissingSkills, maxItemsToShow)
	writeList(&sb, "Recommendations", analysis.Recommendations, maxItemsToShow)

	p.printBox("COMPANY MATCH", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintRequirements outputs a company's requirement profile or the general advice
// returned for unknown companies.
func (p *Printer) PrintRequirements(record *types.RequirementsRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n\n", record.Company))

	if !record.Available || record.Requirements == nil {
		sb.WriteString(record.Message + "\n\n")
		writeList(&sb, "General advice", record.GeneralAdvice, maxItemsToShow)
		p.printBox("COMPANY REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n\n"))
		return
	}

	req := record.Requirements
	tech := make([]string, len(req.TechnicalSkills))
	for i, s := range req.TechnicalSkills {
		tech[i] = fmt.Sprintf("%s (%s)", s.Skill, s.Importance)
	}
	soft := make([]string, len(req.SoftSkills))
	for i, s := range req.SoftSkills {
		soft[i] = fmt.Sprintf("%s (%s)", s.Skill, s.Importance)
	}

	writeList(&sb, "Technical skills", tech, len(tech))
	writeList(&sb, "Soft skills", soft, len(soft))
	writeList(&sb, "Cultural values", req.CulturalValues, len(req.CulturalValues))
	if req.Education != "" {
		sb.WriteString(fmt.Sprintf("Education:   %s\n", req.Education))
	}
	if req.ExperienceLevel != "" {
		sb.WriteString(fmt.Sprintf("Experience:  %s\n", req.ExperienceLevel))
	}

	p.printBox("COMPANY REQUIREMENTS", strings.TrimRight(sb.String(), "\n"))
}

// PrintSkillSuggestions outputs trending and role-specific skills to learn.
func (p *Printer) PrintSkillSuggestions(suggestions *types.SkillSuggestions) {
	if suggestions == nil {
		return
	}

	var sb strings.Builder
	if suggestions.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry:  %s\n", suggestions.Industry))
	}
	if suggestions.Role != "" {
		sb.WriteString(fmt.Sprintf("Role:      %s\n", suggestions.Role))
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}

	describe := func(list []types.SkillSuggestion) []string {
		out := make([]string, len(list))
		for i, s := range list {
			out[i] = fmt.Sprintf("%s (%s, %s demand)", s.Skill, s.Importance, s.MarketDemand)
		}
		return out
	}
	writeList(&sb, "Trending", describe(suggestions.Trending), maxItemsToShow)
	writeList(&sb, "Role specific", describe(suggestions.RoleSpecific), maxItemsToShow)

	if len(suggestions.Trending) == 0 && len(suggestions.RoleSpecific) == 0 {
		sb.WriteString("No suggestions available\n\n")
	}

	p.printBox("SKILL SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintIndustryFocus outputs the skill categories an industry treats as essential and
// preferred.
func (p *Printer) PrintIndustryFocus(industry string, essential, preferred []string) {
	if len(essential) == 0 && len(preferred) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Industry:  %s\n\n", industry))
	writeList(&sb, "Essential", essential, len(essential))
	writeList(&sb, "Preferred", preferred, len(preferred))

	p.printBox("INDUSTRY FOCUS", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintTemplates outputs the available résumé templates, marking the suggested one.
func (p *Printer) PrintTemplates(templates []types.Template, suggested string) {
	if len(templates) == 0 {
		return
	}

	var sb strings.Builder
	for i, t := range templates {
		marker := " "
		if t.ID == suggested {
			marker = "★"
		}
		sb.WriteString(fmt.Sprintf("%s %-10s %s\n", marker, t.ID, t.Name))
		sb.WriteString(fmt.Sprintf("    %s", t.Description))
		if i < len(templates)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME TEMPLATES", sb.String())
}

// PrintAnalysis outputs every section of a full résumé analysis.
func (p *Printer) PrintAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	p.PrintATSScore(&analysis.ATSScore)
	p.PrintMissingComponents(analysis.MissingComponents)
	p.PrintSuggestions(analysis.Suggestions)
	p.PrintSkillAnalysis(&analysis.SkillAnalysis)
	p.PrintCompanyAnalysis(analysis.CompanyAnalysis)
}
