package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/rendering"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// TemplateSuggestion is the response for /templates/suggest
type TemplateSuggestion struct {
	Role      string         `json:"role,omitempty"`
	Company   string         `json:"company,omitempty"`
	Suggested types.Template `json:"suggested_template"`
}

// handleSkillSuggestions returns trending and role-specific skills to learn
func (s *Server) handleSkillSuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	industry := strings.TrimSpace(q.Get("industry"))
	role := strings.TrimSpace(q.Get("role"))

	s.jsonResponse(w, http.StatusOK, s.analyzer.Skills().Suggestions(industry, role))
}

// handleTemplates lists the available résumé templates
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": rendering.Templates()})
}

// handleSuggestTemplate picks a template for a target role and company
func (s *Server) handleSuggestTemplate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	role := strings.TrimSpace(q.Get("role"))
	company := strings.TrimSpace(q.Get("company"))

	s.jsonResponse(w, http.StatusOK, TemplateSuggestion{
		Role:      role,
		Company:   company,
		Suggested: rendering.GetTemplate(rendering.SuggestTemplate(role, company)),
	})
}
