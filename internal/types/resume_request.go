package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultTemplateID is used when a build request names no template.
const DefaultTemplateID = "modern"

// PersonalInfo holds contact details rendered in the résumé header.
type PersonalInfo struct {
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Location  string `json:"location" validate:"required"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// Experience is one position held by the candidate.
type Experience struct {
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
}

// Education is one degree or program.
type Education struct {
	Institution    string   `json:"institution" validate:"required"`
	Degree         string   `json:"degree" validate:"required"`
	FieldOfStudy   string   `json:"field_of_study"`
	GraduationDate string   `json:"graduation_date"`
	GPA            string   `json:"gpa,omitempty"`
	Honors         []string `json:"honors,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
	GitHubURL    string   `json:"github_url,omitempty" validate:"omitempty,url"`
}

// Certification is a credential held by the candidate.
type Certification struct {
	Name         string `json:"name" validate:"required"`
	Issuer       string `json:"issuer" validate:"required"`
	Date         string `json:"date"`
	CredentialID string `json:"credential_id,omitempty"`
	URL          string `json:"url,omitempty" validate:"omitempty,url"`
}

// ResumeRequest is the structured résumé submitted for rendering.
type ResumeRequest struct {
	PersonalInfo        PersonalInfo    `json:"personal_info" validate:"required"`
	ProfessionalSummary string          `json:"professional_summary"`
	Experience          []Experience    `json:"experience" validate:"dive"`
	Education           []Education     `json:"education" validate:"dive"`
	Skills              []SkillCategory `json:"skills"`
	Projects            []Project       `json:"projects,omitempty" validate:"omitempty,dive"`
	Certifications      []Certification `json:"certifications,omitempty" validate:"omitempty,dive"`
	TemplateID          string          `json:"template_id,omitempty"`
	TargetRole          string          `json:"target_role,omitempty"`
	TargetCompany       string          `json:"target_company,omitempty"`
}

// Validate validates the ResumeRequest using the validator.
func (r *ResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Template returns the requested template id, or the default when empty.
func (r *ResumeRequest) Template() string {
	if id := strings.TrimSpace(r.TemplateID); id != "" {
		return strings.ToLower(id)
	}
	return DefaultTemplateID
}

// CompanyAnalysisRequest asks for a résumé to be matched against a company.
type CompanyAnalysisRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	Company    string `json:"company" validate:"required"`
}

// Validate validates the CompanyAnalysisRequest using the validator.
func (r *CompanyAnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Template describes a résumé layout offered by the renderer.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PreviewURL  string   `json:"preview_url"`
	Category    string   `json:"category"`
	SuitableFor []string `json:"suitable_for"`
}
