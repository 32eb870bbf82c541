package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

const uploadField = "file"

// readUpload reads the résumé file and the optional company field from a multipart form.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return pipeline.Options{}, err
		}
		return pipeline.Options{}, &ErrValidation{Field: uploadField, Message: "multipart form with a file is required"}
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return pipeline.Options{}, &ErrValidation{Field: uploadField, Message: "file is required"}
	}
	defer file.Close() //nolint:errcheck

	if !ingestion.IsUploadAllowed(header.Filename) {
		return pipeline.Options{}, &ErrValidation{Field: uploadField, Message: "only PDF and DOCX files are supported"}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("failed to read upload: %w", err)
	}

	return pipeline.Options{
		Filename: header.Filename,
		Data:     data,
		Company:  r.FormValue("company"),
	}, nil
}

// handleAnalyzeResume analyzes an uploaded résumé and returns the full analysis
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	opts, err := s.readUpload(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.analyzer.Run(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeResumeStream analyzes an uploaded résumé and streams progress via SSE
func (s *Server) handleAnalyzeResumeStream(w http.ResponseWriter, r *http.Request) {
	opts, err := s.readUpload(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	opts.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent(eventProgress, event); err != nil {
			log.Printf("[analyze] failed to write progress event: %v", err)
		}
	}

	result, err := s.analyzer.Run(r.Context(), opts)
	if err != nil {
		if HTTPStatus(err) >= http.StatusInternalServerError {
			log.Printf("[analyze] stream failed: %v", err)
			sse.WriteError("internal server error")
			return
		}
		sse.WriteError(err.Error())
		return
	}

	sse.WriteComplete(result)
}
