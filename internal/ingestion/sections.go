package ingestion

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

// Section keys returned by ExtractSections.
const (
	SectionContact        = "contact_info"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionOther          = "other"
)

// maxHeaderWords bounds how long a line may be and still count as a section header.
const maxHeaderWords = 4

var sectionHeaders = []struct {
	key      string
	keywords []string
}{
	{SectionContact, []string{"contact", "personal information", "details"}},
	{SectionSummary, []string{"summary", "objective", "profile"}},
	{SectionExperience, []string{"experience", "work history", "employment"}},
	{SectionEducation, []string{"education", "academic"}},
	{SectionSkills, []string{"skills", "technical skills", "competencies"}},
	{SectionProjects, []string{"projects", "portfolio"}},
	{SectionCertifications, []string{"certifications", "certificates", "licenses"}},
}

// ExtractSections splits résumé text into sections at header lines. Every section key
// is present in the result, empty when the résumé has no such header. Text before the
// first header is returned under "other" when there is any. Repeated headers for the
// same section have their bodies joined.
func ExtractSections(text string) map[string]string {
	bodies := make(map[string][]string, len(sectionHeaders)+1)
	current := SectionOther

	for _, line := range strings.Split(text, "\n") {
		if key, ok := headerKey(line); ok {
			current = key
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			bodies[current] = append(bodies[current], trimmed)
		}
	}

	sections := make(map[string]string, len(sectionHeaders)+1)
	for _, h := range sectionHeaders {
		sections[h.key] = strings.Join(bodies[h.key], "\n")
	}
	if other := bodies[SectionOther]; len(other) > 0 {
		sections[SectionOther] = strings.Join(other, "\n")
	}
	return sections
}

// headerKey reports which section a line introduces. Headers are short lines without
// digits or addresses that name a section keyword.
func headerKey(line string) (string, bool) {
	normalized := strings.TrimRight(textnorm.Lower(strings.TrimSpace(line)), ":")
	if normalized == "" || textnorm.WordCount(normalized) > maxHeaderWords {
		return "", false
	}
	if strings.ContainsAny(normalized, "0123456789@") {
		return "", false
	}

	for _, h := range sectionHeaders {
		if textnorm.ContainsAnyWord(normalized, h.keywords) {
			return h.key, true
		}
	}
	return "", false
}
