// Package rendering turns structured résumés into LaTeX documents using a catalogue of
// templates.
package rendering

import (
	"embed"
	"strings"
	"sync"
	"text/template"

	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed templates/resume.tex.tmpl
var templateFS embed.FS

const templateFile = "templates/resume.tex.tmpl"

var (
	resumeTemplate     *template.Template
	resumeTemplateErr  error
	resumeTemplateOnce sync.Once
)

// TemplateData is the escaped view of a résumé passed to the LaTeX template.
type TemplateData struct {
	Layout         layout
	Name           string
	RoleTitle      string
	Contact        string
	Summary        string
	Experience     []ExperienceSection
	Education      []EducationSection
	Skills         []SkillLine
	FlatSkills     string
	Projects       []ProjectSection
	Certifications []CertificationSection
}

// ExperienceSection is one position in the experience section.
type ExperienceSection struct {
	Position     string
	Company      string
	Dates        string
	Bullets      []string
	Technologies string
}

// EducationSection is one degree in the education section.
type EducationSection struct {
	Degree         string
	Institution    string
	GraduationDate string
	GPA            string
	Honors         string
}

// SkillLine is one category row in the skills section.
type SkillLine struct {
	Category string
	Skills   string
}

// ProjectSection is one project entry.
type ProjectSection struct {
	Name         string
	URL          string
	Description  string
	Technologies string
}

// CertificationSection is one certification entry.
type CertificationSection struct {
	Name   string
	Issuer string
	Date   string
}

// Render produces the LaTeX source of a résumé. An empty templateID uses the request's
// template; unknown ids fall back to the modern template.
func Render(req *types.ResumeRequest, templateID string) ([]byte, error) {
	if req == nil {
		return nil, &RenderError{TemplateID: templateID, Reason: "resume request is nil"}
	}
	if strings.TrimSpace(templateID) == "" {
		templateID = req.Template()
	}
	entry := lookup(strings.ToLower(strings.TrimSpace(templateID)))

	tmpl, err := parseTemplate()
	if err != nil {
		return nil, err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(req, entry.layout)); err != nil {
		return nil, &TemplateError{TemplateID: entry.info.ID, Stage: StageExecute, Cause: err}
	}

	return []byte(result.String()), nil
}

// parseTemplate parses the embedded template once per process.
func parseTemplate() (*template.Template, error) {
	resumeTemplateOnce.Do(func() {
		content, err := templateFS.ReadFile(templateFile)
		if err != nil {
			resumeTemplateErr = &TemplateError{Stage: StageRead, Cause: err}
			return
		}
		resumeTemplate, resumeTemplateErr = newTemplate(string(content))
	})
	return resumeTemplate, resumeTemplateErr
}

// newTemplate parses LaTeX template source. Actions use << >> so LaTeX braces need no
// quoting.
func newTemplate(source string) (*template.Template, error) {
	tmpl, err := template.New("resume").Delims("<<", ">>").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(source)
	if err != nil {
		return nil, &TemplateError{Stage: StageParse, Cause: err}
	}
	return tmpl, nil
}

// buildTemplateData escapes every user-supplied field and arranges it for the layout.
func buildTemplateData(req *types.ResumeRequest, l layout) *TemplateData {
	info := req.PersonalInfo

	name := info.FullName
	if l.NameUpper {
		name = strings.ToUpper(name)
	}

	data := &TemplateData{
		Layout:  l,
		Name:    EscapeLaTeX(name),
		Contact: contactLine(info, l.ContactSep),
		Summary: EscapeLaTeX(strings.TrimSpace(req.ProfessionalSummary)),
	}
	if l.ShowRoleTitle {
		data.RoleTitle = EscapeLaTeX(strings.TrimSpace(req.TargetRole))
	}

	for _, exp := range req.Experience {
		bullets := make([]string, 0, len(exp.Description))
		for _, desc := range exp.Description {
			if desc = strings.TrimSpace(desc); desc != "" {
				bullets = append(bullets, EscapeLaTeX(desc))
			}
		}
		data.Experience = append(data.Experience, ExperienceSection{
			Position:     EscapeLaTeX(exp.Position),
			Company:      EscapeLaTeX(exp.Company),
			Dates:        EscapeLaTeX(dateRange(exp)),
			Bullets:      bullets,
			Technologies: joinEscaped(exp.Technologies, ", "),
		})
	}

	for _, edu := range req.Education {
		degree := edu.Degree
		if edu.FieldOfStudy != "" {
			degree += " in " + edu.FieldOfStudy
		}
		data.Education = append(data.Education, EducationSection{
			Degree:         EscapeLaTeX(degree),
			Institution:    EscapeLaTeX(edu.Institution),
			GraduationDate: EscapeLaTeX(edu.GraduationDate),
			GPA:            EscapeLaTeX(edu.GPA),
			Honors:         joinEscaped(edu.Honors, ", "),
		})
	}

	var allSkills []string
	for _, cat := range req.Skills {
		if len(cat.Skills) == 0 {
			continue
		}
		allSkills = append(allSkills, cat.Skills...)
		data.Skills = append(data.Skills, SkillLine{
			Category: EscapeLaTeX(cat.Category),
			Skills:   joinEscaped(cat.Skills, ", "),
		})
	}
	data.FlatSkills = joinEscaped(allSkills, ", ")

	for _, p := range req.Projects {
		data.Projects = append(data.Projects, ProjectSection{
			Name:         EscapeLaTeX(p.Name),
			URL:          EscapeLaTeX(p.URL),
			Description:  EscapeLaTeX(p.Description),
			Technologies: joinEscaped(p.Technologies, ", "),
		})
	}

	for _, c := range req.Certifications {
		data.Certifications = append(data.Certifications, CertificationSection{
			Name:   EscapeLaTeX(c.Name),
			Issuer: EscapeLaTeX(c.Issuer),
			Date:   EscapeLaTeX(c.Date),
		})
	}

	return data
}

// contactLine joins the non-empty contact fields with the layout's separator.
func contactLine(info types.PersonalInfo, sep string) string {
	fields := []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.GitHub, info.Portfolio}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, EscapeLaTeX(f))
		}
	}
	return strings.Join(parts, sep)
}

// dateRange formats a position's dates; current or open-ended positions end in "Present".
func dateRange(exp types.Experience) string {
	end := strings.TrimSpace(exp.EndDate)
	if exp.Current || end == "" {
		end = "Present"
	}
	return exp.StartDate + " - " + end
}
