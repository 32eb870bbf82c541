package company

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

// Experience level labels.
const (
	LevelSenior = "Senior"
	LevelMid    = "Mid-level"
	LevelJunior = "Junior"
)

var yearsPattern = regexp.MustCompile(`(\d+)[\s\-]*(?:years?|yrs?)`)

// culturalFit scores the share of cultural values with an indicator present in the text.
// A company without cultural values scores 100.
func (m *Matcher) culturalFit(lower string, values []string) float64 {
	if len(values) == 0 {
		return 100
	}

	matches := 0
	for _, v := range values {
		if textnorm.ContainsAny(lower, keywordsFor(m.kb.CulturalIndicators, v)) {
			matches++
		}
	}
	return textnorm.Round1(float64(matches) / float64(len(values)) * 100)
}

func (m *Matcher) educationMatch(lower string) bool {
	return textnorm.ContainsAny(lower, m.kb.EducationKeywords)
}

// experienceLevel derives seniority from the largest "N years" mention or, without one,
// from the number of job-title mentions.
func (m *Matcher) experienceLevel(lower string) string {
	if matches := yearsPattern.FindAllStringSubmatch(lower, -1); len(matches) > 0 {
		maxYears := 0
		for _, match := range matches {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				// Atoi only fails here on overflow.
				years = math.MaxInt
			}
			maxYears = max(maxYears, years)
		}
		return levelFor(maxYears, 5, 2)
	}

	positions := textnorm.CountSubstrings(lower, m.kb.PositionTitles)
	return levelFor(positions, 3, 2)
}

func levelFor(n, senior, mid int) string {
	switch {
	case n >= senior:
		return LevelSenior
	case n >= mid:
		return LevelMid
	default:
		return LevelJunior
	}
}

// techStackHits returns the company technologies present as substrings, in stack order.
func techStackHits(lower string, stack []string) []string {
	hits := []string{}
	for _, tech := range stack {
		if strings.Contains(lower, strings.ToLower(tech)) {
			hits = append(hits, tech)
		}
	}
	return hits
}
