package ats

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

const (
	maxLineLength = 120

	// readabilityFallback is returned when readability metrics cannot be computed.
	readabilityFallback = 50.0
)

// formattingScore starts at 100, deducts for special characters and long lines, and adds
// bonuses for bullets, an email and a phone number. The raw score may exceed 100 before
// the final clamp.
func formattingScore(text string) float64 {
	score := 100.0

	if special := countSpecialChars(text); special > 50 {
		score -= math.Min(20, float64(special)*0.4)
	}

	longLines := 0
	for _, line := range strings.Split(text, "\n") {
		if utf8.RuneCountInString(line) > maxLineLength {
			longLines++
		}
	}
	if longLines > 5 {
		score -= math.Min(15, float64(longLines)*3)
	}

	if bulletPattern.MatchString(text) {
		score += 10
	}
	if hasEmail(text) {
		score += 5
	}
	if hasPhone(text) {
		score += 5
	}

	return textnorm.Clamp(score, 0, 100)
}

// keywordScore is the percentage of ATS keywords present plus a bonus of 2 per action verb
// (at most 20), capped at 100.
func (e *Engine) keywordScore(text string) float64 {
	lower := textnorm.Lower(text)
	total := e.keywords.Total()
	if total == 0 {
		return 0
	}

	verbs := e.actionVerbCount(lower)
	found := verbs +
		countPresent(lower, e.keywords.TechnicalSkills) +
		countPresent(lower, e.keywords.SoftSkills)

	density := float64(found) / float64(total) * 100
	actionBonus := math.Min(20, float64(verbs)*2)

	return math.Min(100, density+actionBonus)
}

// actionVerbCount counts distinct action verbs present in already lowercased text.
func (e *Engine) actionVerbCount(lower string) int {
	return countPresent(lower, e.keywords.ActionVerbs)
}

// contentScore rewards a 300-800 word length, quantified achievements, sentence length
// of 15-25 words and vocabulary variety.
func contentScore(text string) float64 {
	score := 0.0

	words := textnorm.WordCount(text)
	switch {
	case words >= 300 && words <= 800:
		score += 30
	case (words >= 200 && words < 300) || (words > 800 && words <= 1000):
		score += 20
	default:
		score += 10
	}

	score += math.Min(25, float64(countQuantified(text))*5)

	if avg, ok := textnorm.AverageSentenceLength(text); ok {
		if avg >= 15 && avg <= 25 {
			score += 20
		} else {
			score += 10
		}
	}

	score += textnorm.VocabularyRatio(text) * 25

	return math.Min(100, score)
}

// readabilityScore combines Flesch Reading Ease, Flesch-Kincaid grade and average
// sentence length into a score out of 100. It returns 50 when the metrics cannot be
// computed.
func readabilityScore(text string) float64 {
	stats, err := textnorm.Readability(text)
	if err != nil {
		return readabilityFallback
	}

	score := 0.0

	ease := stats.ReadingEase
	switch {
	case ease >= 60 && ease <= 70:
		score += 40
	case (ease >= 50 && ease < 60) || (ease > 70 && ease <= 80):
		score += 30
	default:
		score += 20
	}

	grade := stats.GradeLevel
	switch {
	case grade >= 8 && grade <= 12:
		score += 30
	case (grade >= 6 && grade < 8) || (grade > 12 && grade <= 15):
		score += 20
	default:
		score += 10
	}

	if avg, ok := textnorm.AverageSentenceLength(text); ok {
		switch {
		case avg >= 15 && avg <= 20:
			score += 30
		case (avg >= 10 && avg < 15) || (avg > 20 && avg <= 25):
			score += 20
		default:
			score += 10
		}
	}

	return math.Min(100, score)
}

// sectionScore awards 70 points spread over the required sections and 15 per optional
// section, capped at 100.
func sectionScore(text string) float64 {
	present := detectSections(text)

	required, optional, requiredTotal := 0, 0, 0
	for _, rule := range sectionRules {
		if rule.required {
			requiredTotal++
		}
		if !present[rule.name] {
			continue
		}
		if rule.required {
			required++
		} else {
			optional++
		}
	}

	requiredPct := float64(required) / float64(requiredTotal) * 70
	return math.Min(100, requiredPct+float64(optional)*15)
}

// detectSections reports which sections have a header keyword in the text.
func detectSections(text string) map[string]bool {
	lower := textnorm.Lower(text)
	present := make(map[string]bool, len(sectionRules))
	for _, rule := range sectionRules {
		present[rule.name] = rule.pattern.MatchString(lower)
	}
	return present
}

func countSpecialChars(text string) int {
	return len(specialCharPattern.FindAllStringIndex(text, -1))
}

func countQuantified(text string) int {
	return countQuantities(text)
}

func hasEmail(text string) bool {
	return containsEmail(text)
}

func hasPhone(text string) bool {
	return phonePattern.MatchString(text)
}

// countPresent counts the keywords that occur as substrings of lower.
func countPresent(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			n++
		}
	}
	return n
}
