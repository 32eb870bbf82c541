package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCompanyAnalysis(t *testing.T) {
	s := newTestServer(t)

	w := serve(s, jsonRequest(http.MethodPost, "/company-analysis",
		`{"resume_text": "Python and teamwork", "company": " google "}`))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result types.CompanyAnalysis
	decodeBody(t, w, &result)

	assert.Equal(t, "Google", result.CompanyName)
	assert.Equal(t, 17.5, result.MatchPercentage)
	assert.Equal(t, 14.3, result.TechnicalMatch.Score)
	assert.Equal(t, 25.0, result.SoftSkillsMatch.Score)
}

func TestCompanyAnalysis_UnknownCompany(t *testing.T) {
	s := newTestServer(t)

	w := serve(s, jsonRequest(http.MethodPost, "/company-analysis",
		`{"resume_text": "Python", "company": "Initech"}`))

	require.Equal(t, http.StatusOK, w.Code)
	var result types.CompanyAnalysis
	decodeBody(t, w, &result)
	assert.Equal(t, 75.0, result.MatchPercentage)
	assert.Nil(t, result.TechnicalMatch)
	assert.NotEmpty(t, result.Message)
}

func TestCompanyAnalysis_Invalid(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"missing company", `{"resume_text": "Python"}`, http.StatusBadRequest, "validation error: Company - required"},
		{"blank company", `{"resume_text": "Python", "company": "   "}`, http.StatusBadRequest, "validation error: Company - required"},
		{"missing text", `{"company": "google"}`, http.StatusBadRequest, "validation error: ResumeText - required"},
		{"malformed", `{"company": `, http.StatusBadRequest, "invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(s, jsonRequest(http.MethodPost, "/company-analysis", tt.body))

			assert.Equal(t, tt.status, w.Code)
			var resp map[string]string
			decodeBody(t, w, &resp)
			assert.Contains(t, resp["error"], tt.message)
		})
	}
}

func TestCompanyAnalysis_WrongContentType(t *testing.T) {
	s := newTestServer(t)
	req := jsonRequest(http.MethodPost, "/company-analysis", `{"resume_text": "x", "company": "google"}`)
	req.Header.Set("Content-Type", "text/plain")

	w := serve(s, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestCompanyAnalysis_JSONWithCharset(t *testing.T) {
	s := newTestServer(t)
	req := jsonRequest(http.MethodPost, "/company-analysis", `{"resume_text": "x", "company": "google"}`)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	w := serve(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCompanyRequirements(t *testing.T) {
	s := newTestServer(t)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/company-requirements/Google", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var record types.RequirementsRecord
	decodeBody(t, w, &record)
	assert.True(t, record.Available)
	assert.Equal(t, "Google", record.Company)
	require.NotNil(t, record.Requirements)
	assert.Len(t, record.Requirements.TechnicalSkills, 8)
}

func TestCompanyRequirements_Unknown(t *testing.T) {
	s := newTestServer(t)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/company-requirements/initech%20corp", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var record types.RequirementsRecord
	decodeBody(t, w, &record)
	assert.False(t, record.Available)
	assert.Equal(t, "Initech Corp", record.Company)
	assert.Equal(t, "Detailed requirements for initech corp not available", record.Message)
	assert.Len(t, record.GeneralAdvice, 4)
}
