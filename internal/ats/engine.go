// Package ats scores résumé text against heuristics that approximate how
// Applicant Tracking Systems filter candidates.
package ats

import (
	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights of the sub-scores in the overall score.
const (
	formattingWeight  = 0.20
	keywordWeight     = 0.25
	contentWeight     = 0.25
	readabilityWeight = 0.15
	sectionWeight     = 0.15
)

// Engine computes ATS scores, missing components and improvement suggestions.
// It holds only read-only data and is safe for concurrent use.
type Engine struct {
	keywords knowledge.ATSKeywords
}

// New creates an Engine using the ATS keyword lists of the given skill base.
func New(kb *knowledge.SkillBase) *Engine {
	return &Engine{keywords: kb.ATSKeywords}
}

// Score computes the five sub-scores and their weighted overall score.
// All values are in [0,100] and rounded to one decimal place.
func (e *Engine) Score(text string) types.ATSScore {
	formatting := formattingScore(text)
	keyword := e.keywordScore(text)
	content := contentScore(text)
	readability := readabilityScore(text)
	section := sectionScore(text)

	overall := formatting*formattingWeight +
		keyword*keywordWeight +
		content*contentWeight +
		readability*readabilityWeight +
		section*sectionWeight

	return types.ATSScore{
		Overall:     textnorm.Round1(overall),
		Formatting:  textnorm.Round1(formatting),
		Keyword:     textnorm.Round1(keyword),
		Content:     textnorm.Round1(content),
		Readability: textnorm.Round1(readability),
		Section:     textnorm.Round1(section),
	}
}
