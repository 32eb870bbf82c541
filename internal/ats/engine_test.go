package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const scenarioResume = "Developed and led a team, increased revenue by 20%, managed AWS infrastructure, " +
	"Python, Java, 5 years experience, contact: a@b.com, 555-123-4567"

const fullResume = `Jane Doe
Contact: jane.doe@example.com | (555) 123-4567 | linkedin.com/in/janedoe

Professional Summary
Senior software engineer with 8 years of experience building distributed systems in Python and Go.

Experience
Acme Corp, Staff Engineer
- Led a team of 6 engineers and delivered a payments platform that increased revenue by 35%.
- Designed and implemented a Kafka pipeline processing 2 million events per day.
- Optimized PostgreSQL queries and decreased latency by 40%.

Education
B.S. Computer Science, State University

Skills
Python, Go, Docker, Kubernetes, AWS, SQL, Agile, communication, leadership, teamwork

Projects
Open source contributor to several developer tools.

Certifications
AWS Certified Solutions Architect`

func newTestEngine() *Engine {
	return New(knowledge.Skills())
}

func assertBounded(t *testing.T, score types.ATSScore) {
	t.Helper()
	for name, v := range map[string]float64{
		"overall":     score.Overall,
		"formatting":  score.Formatting,
		"keyword":     score.Keyword,
		"content":     score.Content,
		"readability": score.Readability,
		"section":     score.Section,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
}

func TestScore_BoundedAndWeighted(t *testing.T) {
	engine := newTestEngine()

	texts := []string{
		"",
		"   ",
		"lorem ipsum",
		scenarioResume,
		fullResume,
		strings.Repeat("#$^&* ", 200),
		strings.Repeat("developed python leadership 50% ", 400),
		strings.Repeat(strings.Repeat("x", 130)+"\n", 10),
	}

	for _, text := range texts {
		score := engine.Score(text)
		assertBounded(t, score)

		weighted := 0.20*score.Formatting + 0.25*score.Keyword + 0.25*score.Content +
			0.15*score.Readability + 0.15*score.Section
		assert.InDelta(t, weighted, score.Overall, 0.1)
	}
}

func TestScore_EmptyText(t *testing.T) {
	score := newTestEngine().Score("")

	assert.Equal(t, 100.0, score.Formatting)
	assert.Equal(t, 0.0, score.Keyword)
	assert.Equal(t, 10.0, score.Content)
	assert.Equal(t, 50.0, score.Readability)
	assert.Equal(t, 0.0, score.Section)
	assert.Equal(t, 20.0+2.5+7.5, score.Overall)
}

func TestScore_Idempotent(t *testing.T) {
	engine := newTestEngine()
	assert.Equal(t, engine.Score(fullResume), engine.Score(fullResume))
}

func TestScore_FullResume(t *testing.T) {
	score := newTestEngine().Score(fullResume)

	assert.Equal(t, 100.0, score.Formatting)
	assert.Equal(t, 100.0, score.Section)
	assert.Greater(t, score.Keyword, 45.0)
	assert.Greater(t, score.Overall, 60.0)
}

func TestFormattingScore(t *testing.T) {
	t.Run("clean text with bullet, email and phone is capped at 100", func(t *testing.T) {
		text := "• Built things\njane@example.com\n555-123-4567"
		assert.Equal(t, 100.0, formattingScore(text))
	})

	t.Run("scenario text earns email and phone bonuses", func(t *testing.T) {
		assert.True(t, hasEmail(scenarioResume))
		assert.True(t, hasPhone(scenarioResume))
		assert.Equal(t, 100.0, formattingScore(scenarioResume))
	})

	t.Run("special characters deduct at most 20", func(t *testing.T) {
		assert.Equal(t, 80.0, formattingScore(strings.Repeat("#", 60)))
	})

	t.Run("fifty special characters are tolerated", func(t *testing.T) {
		assert.Equal(t, 100.0, formattingScore(strings.Repeat("#", 50)))
	})

	t.Run("more than five long lines deduct at most 15", func(t *testing.T) {
		text := strings.Repeat(strings.Repeat("a", 121)+"\n", 6)
		assert.Equal(t, 85.0, formattingScore(text))
	})

	t.Run("five long lines are tolerated", func(t *testing.T) {
		text := strings.Repeat(strings.Repeat("a", 121)+"\n", 5)
		assert.Equal(t, 100.0, formattingScore(text))
	})

	t.Run("accented letters are not special characters", func(t *testing.T) {
		assert.Equal(t, 0, countSpecialChars("José Müller, Zürich (Ünïcode) straße_1 über-naïve"))
	})
}

func TestKeywordScore(t *testing.T) {
	engine := newTestEngine()

	t.Run("density plus action verb bonus", func(t *testing.T) {
		// led, developed, python: 3 of 44 keywords, 2 action verbs
		got := engine.keywordScore("Led and developed Python")
		assert.InDelta(t, 3.0/44*100+4, got, 0.0001)
	})

	t.Run("substring presence without word boundaries", func(t *testing.T) {
		assert.InDelta(t, 1.0/44*100, engine.keywordScore("pythonic"), 0.0001)
	})

	t.Run("each keyword counts once", func(t *testing.T) {
		assert.Equal(t, engine.keywordScore("python"), engine.keywordScore("python python python"))
	})

	t.Run("capped at 100", func(t *testing.T) {
		kw := knowledge.Skills().ATSKeywords
		all := strings.Join(append(append(append([]string{}, kw.ActionVerbs...), kw.TechnicalSkills...), kw.SoftSkills...), " ")
		assert.Equal(t, 100.0, engine.keywordScore(all))
	})
}

func TestContentScore(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		assert.Equal(t, 10.0, contentScore(""))
	})

	t.Run("quantified achievements add at most 25", func(t *testing.T) {
		few := contentScore("Grew revenue 10% and 20%.")
		many := contentScore("Grew revenue 10% and 20% and 30% and 40% and 50% and 60% and 70%.")
		assert.Greater(t, many, few)
		assert.LessOrEqual(t, many, 100.0)
	})
}

func TestCountQuantified(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"increased revenue by 20%, managed AWS", 1},
		{"saved 5 million dollars", 1},
		{"grew to 10k users and 3 thousand customers", 2},
		{"raised 2m in funding", 1},
		{"5 years experience", 0},
		{"12 months", 0},
		{"percentages: 50 percent", 1},
		{"no numbers here", 0},
		{"20%30%", 2},
		{"café20% growth", 0},
		{"grew ٢٠% more", 1},
		{"5 millions", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, countQuantified(tt.text), tt.text)
	}
}

func TestHasEmail_UnicodeBoundaries(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"contact: jo@x.com", true},
		{"(jane.doe@example.co.uk)", true},
		{".jo@x.com", true},
		{"éjo@x.com", false},
		{"jo@x.comé", false},
		{"jo@x.c", false},
		{"jo@.com", false},
		{"no address here @ all", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, hasEmail(tt.text), tt.text)
	}
}

func TestReadabilityScore(t *testing.T) {
	t.Run("fallback for empty text", func(t *testing.T) {
		assert.Equal(t, 50.0, readabilityScore(""))
		assert.Equal(t, 50.0, readabilityScore("... --- !!!"))
	})

	t.Run("components sum between 40 and 100", func(t *testing.T) {
		got := readabilityScore(fullResume)
		assert.GreaterOrEqual(t, got, 40.0)
		assert.LessOrEqual(t, got, 100.0)
		assert.Zero(t, int(got)%10)
	})
}

func TestSectionScore(t *testing.T) {
	t.Run("no sections", func(t *testing.T) {
		assert.Equal(t, 0.0, sectionScore("lorem ipsum dolor sit amet"))
		assert.Equal(t, 0.0, sectionScore(""))
	})

	t.Run("required sections only", func(t *testing.T) {
		text := "Contact\nSummary\nExperience\nEducation\nSkills"
		assert.Equal(t, 70.0, sectionScore(text))
	})

	t.Run("partial required plus optional", func(t *testing.T) {
		// contact + skills = 2/5*70 = 28, projects = 15
		assert.InDelta(t, 43.0, sectionScore("EMAIL me for my SKILLS and PROJECTS"), 0.0001)
	})

	t.Run("capped at 100", func(t *testing.T) {
		assert.Equal(t, 100.0, sectionScore(fullResume))
	})
}

func TestFindMissingComponents(t *testing.T) {
	engine := newTestEngine()

	t.Run("scenario text", func(t *testing.T) {
		missing := engine.FindMissingComponents(scenarioResume)

		names := make([]string, len(missing))
		for i, m := range missing {
			names[i] = m.Component
		}
		assert.Equal(t, []string{
			"Summary Section",
			"Education Section",
			"Skills Section",
			"Quantifiable Achievements",
			"Action Verbs",
		}, names)
		assert.Equal(t, types.ImportanceMedium, missing[0].Importance)
		assert.Equal(t, "No summary section found in the resume", missing[0].Description)
		assert.Equal(t, "Add a dedicated summary section with relevant information", missing[0].Suggestion)
	})

	t.Run("empty text misses everything", func(t *testing.T) {
		missing := engine.FindMissingComponents("")
		require.Len(t, missing, 9)

		assert.Equal(t, "Contact Section", missing[0].Component)
		assert.Equal(t, types.ImportanceHigh, missing[0].Importance)
		assert.Equal(t, "Experience Section", missing[2].Component)
		assert.Equal(t, types.ImportanceHigh, missing[2].Importance)
		assert.Equal(t, "Email Address", missing[5].Component)
		assert.Equal(t, "Phone Number", missing[6].Component)
		assert.Equal(t, types.ImportanceHigh, missing[6].Importance)
		assert.Equal(t, "Quantifiable Achievements", missing[7].Component)
		assert.Equal(t, "Action Verbs", missing[8].Component)
	})

	t.Run("complete resume", func(t *testing.T) {
		text := fullResume + "\nAchieved 10% growth, managed 5 million budget, created 3k signups."
		assert.Empty(t, engine.FindMissingComponents(text))
	})
}

func TestSuggestImprovements(t *testing.T) {
	engine := newTestEngine()

	t.Run("short text with few keywords", func(t *testing.T) {
		suggestions := engine.SuggestImprovements("Hello world")
		require.Len(t, suggestions, 2)

		assert.Equal(t, "Content Length", suggestions[0].Category)
		assert.Equal(t, types.ImportanceHigh, suggestions[0].Priority)
		assert.Len(t, suggestions[0].Examples, 3)
		assert.Equal(t, "Keywords", suggestions[1].Category)
		assert.Equal(t, types.ImportanceHigh, suggestions[1].Priority)
	})

	t.Run("long text", func(t *testing.T) {
		suggestions := engine.SuggestImprovements(strings.Repeat("word ", 801))
		require.NotEmpty(t, suggestions)
		assert.Equal(t, "Content Length", suggestions[0].Category)
		assert.Equal(t, types.ImportanceMedium, suggestions[0].Priority)
	})

	t.Run("passive voice", func(t *testing.T) {
		text := strings.Repeat("It was done. ", 11)
		suggestions := engine.SuggestImprovements(text)
		require.Len(t, suggestions, 3)
		assert.Equal(t, "Writing Style", suggestions[1].Category)
		assert.Len(t, suggestions[1].Examples, 2)
	})

	t.Run("formatting", func(t *testing.T) {
		suggestions := engine.SuggestImprovements(strings.Repeat("#", 51))
		require.Len(t, suggestions, 3)
		assert.Equal(t, "Formatting", suggestions[2].Category)
	})

	t.Run("no length suggestion inside 300-800 words", func(t *testing.T) {
		kw := knowledge.Skills().ATSKeywords
		text := strings.Join(kw.ActionVerbs, " ") + " " + strings.Join(kw.TechnicalSkills, " ") + " " +
			strings.Repeat("word ", 300)
		assert.Empty(t, engine.SuggestImprovements(text))
	})
}
