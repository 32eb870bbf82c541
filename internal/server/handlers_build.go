package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/rendering"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxBuildRequestBytes bounds the JSON body of /build-resume.
const maxBuildRequestBytes = 1 << 20

// handleBuildResume renders a structured résumé to LaTeX and returns it as an attachment
func (s *Server) handleBuildResume(w http.ResponseWriter, r *http.Request) {
	if err := requireJSON(r); err != nil {
		s.writeError(w, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBuildRequestBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := schemas.ValidateResumeRequest(body); err != nil {
		s.writeError(w, err)
		return
	}

	var req types.ResumeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, fromValidator(err))
		return
	}

	templateID := req.Template()
	if q := strings.TrimSpace(r.URL.Query().Get("template")); q != "" {
		templateID = strings.ToLower(q)
	}

	tex, err := rendering.Render(&req, templateID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	renderID := uuid.New().String()
	filename := fmt.Sprintf("resume-%s.tex", renderID[:8])

	w.Header().Set("Content-Type", "application/x-tex; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Template-ID", rendering.GetTemplate(templateID).ID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(tex); err != nil {
		log.Printf("[build] failed to write %s: %v", filename, err)
	}
}
