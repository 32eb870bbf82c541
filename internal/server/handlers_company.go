package server

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// requireJSON rejects requests that declare a content type other than JSON.
func requireJSON(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != "application/json" {
		return &ErrUnsupportedMedia{ContentType: ct}
	}
	return nil
}

// decodeJSON decodes a JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if err := requireJSON(r); err != nil {
		return err
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// handleCompanyAnalysis matches résumé text against a company profile
func (s *Server) handleCompanyAnalysis(w http.ResponseWriter, r *http.Request) {
	var req types.CompanyAnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	req.Company = strings.TrimSpace(req.Company)
	if err := req.Validate(); err != nil {
		s.writeError(w, fromValidator(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Companies().Match(req.ResumeText, req.Company))
}

// handleCompanyRequirements returns the requirement profile of a company
func (s *Server) handleCompanyRequirements(w http.ResponseWriter, r *http.Request) {
	company := strings.TrimSpace(r.PathValue("company"))
	if company == "" {
		s.errorResponse(w, http.StatusBadRequest, "company is required")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Companies().Requirements(company))
}
