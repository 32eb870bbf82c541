// Package pipeline orchestrates a full résumé analysis: text extraction followed by ATS
// scoring, skill analysis and optional company matching running in parallel.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/company"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Step names reported in progress events.
const (
	StepExtract           = "extract_text"
	StepATSScore          = "ats_score"
	StepMissingComponents = "missing_components"
	StepSuggestions       = "suggestions"
	StepSkillAnalysis     = "skill_analysis"
	StepCompanyAnalysis   = "company_analysis"
)

// Step categories reported in progress events.
const (
	CategoryIngestion = "ingestion"
	CategoryATS       = "ats"
	CategorySkills    = "skills"
	CategoryCompany   = "company"
)

// PreviewLength is the number of characters of extracted text echoed in results.
const PreviewLength = 500

// ErrEmptyText is returned when a document yields no text to analyze.
var ErrEmptyText = errors.New("could not extract text from the file")

// ProgressEvent represents a progress update during an analysis
type ProgressEvent struct {
	Step       string `json:"step"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	AnalysisID string `json:"analysis_id,omitempty"`
	Content    any    `json:"content,omitempty"`
}

// ProgressCallback is called when analysis progress occurs. Calls are serialized.
type ProgressCallback func(event ProgressEvent)

// Options describes one analysis. Either Text or Filename and Data must be set; Text wins
// when both are.
type Options struct {
	Text       string
	Filename   string
	Data       []byte
	Company    string
	OnProgress ProgressCallback
}

// Analyzer runs the analysis pipeline. It is safe for concurrent use.
type Analyzer struct {
	ats       *ats.Engine
	skills    *skills.Analyzer
	companies *company.Matcher
}

// NewAnalyzer creates an Analyzer over the given knowledge bases.
func NewAnalyzer(skillBase *knowledge.SkillBase, companyBase *knowledge.CompanyBase) *Analyzer {
	return &Analyzer{
		ats:       ats.New(skillBase),
		skills:    skills.NewAnalyzer(skillBase),
		companies: company.NewMatcher(companyBase),
	}
}

// Companies returns the company matcher used by the pipeline.
func (a *Analyzer) Companies() *company.Matcher {
	return a.companies
}

// Skills returns the skill analyzer used by the pipeline.
func (a *Analyzer) Skills() *skills.Analyzer {
	return a.skills
}

// progress serializes callback invocations from concurrent stages.
type progress struct {
	mu         sync.Mutex
	analysisID string
	callback   ProgressCallback
}

func (p *progress) emit(step, category, message string, content any) {
	if p.callback == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callback(ProgressEvent{
		Step:       step,
		Category:   category,
		Message:    message,
		AnalysisID: p.analysisID,
		Content:    content,
	})
}

// Run extracts the résumé text when needed and runs every analyzer over it. The three
// analyzers run concurrently; cancelling ctx stops stages that have not started.
func (a *Analyzer) Run(ctx context.Context, opts Options) (*types.ResumeAnalysis, error) {
	analysisID := uuid.New()
	prog := &progress{analysisID: analysisID.String(), callback: opts.OnProgress}

	text := opts.Text
	if strings.TrimSpace(text) == "" && opts.Data != nil {
		extracted, err := ingestion.ExtractText(opts.Filename, opts.Data)
		if err != nil {
			return nil, fmt.Errorf("text extraction failed: %w", err)
		}
		text = extracted
		prog.emit(StepExtract, CategoryIngestion,
			fmt.Sprintf("Extracted %d characters from %s", utf8.RuneCountInString(text), opts.Filename), nil)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	result := &types.ResumeAnalysis{
		ID:            analysisID,
		ExtractedText: Preview(text),
	}
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		score := a.ats.Score(text)
		prog.emit(StepATSScore, CategoryATS, fmt.Sprintf("ATS score: %.1f", score.Overall), score)

		missing := a.ats.FindMissingComponents(text)
		prog.emit(StepMissingComponents, CategoryATS, fmt.Sprintf("Found %d missing components", len(missing)), nil)

		suggestions := a.ats.SuggestImprovements(text)
		prog.emit(StepSuggestions, CategoryATS, fmt.Sprintf("Generated %d suggestions", len(suggestions)), nil)

		mu.Lock()
		result.ATSScore = score
		result.MissingComponents = missing
		result.Suggestions = suggestions
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		analysis := a.skills.Analyze(text)
		prog.emit(StepSkillAnalysis, CategorySkills,
			fmt.Sprintf("Identified %d skill categories", len(analysis.IdentifiedSkills)), nil)

		mu.Lock()
		result.SkillAnalysis = analysis
		mu.Unlock()
		return nil
	})

	if companyID := strings.TrimSpace(opts.Company); companyID != "" {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			match := a.companies.Match(text, companyID)
			prog.emit(StepCompanyAnalysis, CategoryCompany,
				fmt.Sprintf("Match for %s: %.1f%%", match.CompanyName, match.MatchPercentage), nil)

			mu.Lock()
			result.CompanyAnalysis = &match
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Timestamp = time.Now().UTC()
	log.Printf("[analyze] %s: overall=%.1f categories=%d company=%q",
		analysisID, result.ATSScore.Overall, len(result.SkillAnalysis.IdentifiedSkills), opts.Company)

	return result, nil
}

// Preview returns the first PreviewLength characters of text followed by "..." when the
// text is longer.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}
	return string([]rune(text)[:PreviewLength]) + "..."
}
