package rendering

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Template identifiers.
const (
	TemplateModern      = "modern"
	TemplateTraditional = "traditional"
	TemplateCreative    = "creative"
	TemplateMinimal     = "minimal"
	TemplateExecutive   = "executive"
)

// rgb is a colour with components in [0, 1].
type rgb [3]float64

func (c rgb) String() string {
	return fmt.Sprintf("%.1f,%.1f,%.1f", c[0], c[1], c[2])
}

// layout holds the presentation choices that distinguish one template from another.
type layout struct {
	Primary, Secondary, Accent rgb

	NameUpper     bool
	ShowRoleTitle bool
	FlatSkills    bool
	ContactSep    string

	SummaryHeading        string
	ExperienceHeading     string
	EducationHeading      string
	SkillsHeading         string
	ProjectsHeading       string
	CertificationsHeading string
}

type catalogEntry struct {
	info   types.Template
	layout layout
}

var catalog = []catalogEntry{
	{
		info: types.Template{
			ID:          TemplateModern,
			Name:        "Modern Professional",
			Description: "Clean and modern design with accent colors",
			Category:    "modern",
			SuitableFor: []string{"Software Engineering", "Data Science", "Design", "Marketing"},
		},
		layout: layout{
			Primary: rgb{0.2, 0.4, 0.8}, Secondary: rgb{0.3, 0.3, 0.3}, Accent: rgb{0.8, 0.8, 0.8},
			ContactSep:            " | ",
			SummaryHeading:        "PROFESSIONAL SUMMARY",
			ExperienceHeading:     "PROFESSIONAL EXPERIENCE",
			EducationHeading:      "EDUCATION",
			SkillsHeading:         "TECHNICAL SKILLS",
			ProjectsHeading:       "PROJECTS",
			CertificationsHeading: "CERTIFICATIONS",
		},
	},
	{
		info: types.Template{
			ID:          TemplateTraditional,
			Name:        "Classic Traditional",
			Description: "Traditional black and white professional format",
			Category:    "traditional",
			SuitableFor: []string{"Finance", "Legal", "Healthcare", "Education"},
		},
		layout: layout{
			Primary: rgb{0, 0, 0}, Secondary: rgb{0.3, 0.3, 0.3}, Accent: rgb{0.7, 0.7, 0.7},
			NameUpper:             true,
			FlatSkills:            true,
			ContactSep:            ` $\bullet$ `,
			SummaryHeading:        "OBJECTIVE",
			ExperienceHeading:     "EXPERIENCE",
			EducationHeading:      "EDUCATION",
			SkillsHeading:         "SKILLS",
			ProjectsHeading:       "PROJECTS",
			CertificationsHeading: "CERTIFICATIONS",
		},
	},
	{
		info: types.Template{
			ID:          TemplateCreative,
			Name:        "Creative Designer",
			Description: "Bold and creative layout for creative professionals",
			Category:    "creative",
			SuitableFor: []string{"Graphic Design", "Marketing", "Media", "Arts"},
		},
		layout: layout{
			Primary: rgb{0.8, 0.2, 0.4}, Secondary: rgb{0.2, 0.6, 0.8}, Accent: rgb{0.9, 0.9, 0.9},
			ContactSep:            " | ",
			SummaryHeading:        "ABOUT ME",
			ExperienceHeading:     "WHERE I'VE WORKED",
			EducationHeading:      "EDUCATION",
			SkillsHeading:         "TOOLKIT",
			ProjectsHeading:       "SELECTED WORK",
			CertificationsHeading: "CERTIFICATIONS",
		},
	},
	{
		info: types.Template{
			ID:          TemplateMinimal,
			Name:        "Minimal Clean",
			Description: "Minimalist design focusing on content",
			Category:    "minimal",
			SuitableFor: []string{"Research", "Academia", "Consulting", "Engineering"},
		},
		layout: layout{
			Primary: rgb{0.1, 0.1, 0.1}, Secondary: rgb{0.5, 0.5, 0.5}, Accent: rgb{0.9, 0.9, 0.9},
			ContactSep:            " | ",
			SummaryHeading:        "Summary",
			ExperienceHeading:     "Experience",
			EducationHeading:      "Education",
			SkillsHeading:         "Skills",
			ProjectsHeading:       "Projects",
			CertificationsHeading: "Certifications",
		},
	},
	{
		info: types.Template{
			ID:          TemplateExecutive,
			Name:        "Executive Leadership",
			Description: "Professional layout for senior positions",
			Category:    "executive",
			SuitableFor: []string{"Management", "Executive", "Leadership", "Business"},
		},
		layout: layout{
			Primary: rgb{0.1, 0.2, 0.4}, Secondary: rgb{0.4, 0.4, 0.4}, Accent: rgb{0.8, 0.8, 0.8},
			ShowRoleTitle:         true,
			ContactSep:            " | ",
			SummaryHeading:        "EXECUTIVE PROFILE",
			ExperienceHeading:     "LEADERSHIP EXPERIENCE",
			EducationHeading:      "EDUCATION",
			SkillsHeading:         "CORE COMPETENCIES",
			ProjectsHeading:       "KEY INITIATIVES",
			CertificationsHeading: "CERTIFICATIONS",
		},
	},
}

var (
	modernCompanies      = []string{"google", "meta", "microsoft", "amazon"}
	minimalCompanies     = []string{"apple", "netflix"}
	traditionalCompanies = []string{"goldman sachs", "jpmorgan", "deloitte"}

	creativeRoleKeywords    = []string{"designer", "creative", "marketing"}
	executiveRoleKeywords   = []string{"ceo", "cto", "vp", "director", "manager"}
	minimalRoleKeywords     = []string{"researcher", "scientist", "academic"}
	traditionalRoleKeywords = []string{"finance", "legal", "consultant"}
)

// PreviewURL returns the preview path advertised for a template.
func PreviewURL(id string) string {
	return fmt.Sprintf("/api/templates/%s/preview", id)
}

// Templates lists every available template in catalogue order.
func Templates() []types.Template {
	templates := make([]types.Template, 0, len(catalog))
	for _, entry := range catalog {
		templates = append(templates, describe(entry))
	}
	return templates
}

// GetTemplate returns the template with the given id, or the modern template when the id
// is unknown.
func GetTemplate(id string) types.Template {
	return describe(lookup(id))
}

// IsKnownTemplate reports whether id names a catalogue template.
func IsKnownTemplate(id string) bool {
	_, ok := find(id)
	return ok
}

// SuggestTemplate picks a template for a target role and company. Company preferences
// win over role keywords; technology roles default to modern.
func SuggestTemplate(role, company string) string {
	roleLower := strings.ToLower(role)
	companyLower := strings.ToLower(company)

	switch {
	case slices.Contains(modernCompanies, companyLower):
		return TemplateModern
	case slices.Contains(minimalCompanies, companyLower):
		return TemplateMinimal
	case slices.Contains(traditionalCompanies, companyLower):
		return TemplateTraditional
	}

	switch {
	case textnorm.ContainsAny(roleLower, creativeRoleKeywords):
		return TemplateCreative
	case textnorm.ContainsAny(roleLower, executiveRoleKeywords):
		return TemplateExecutive
	case textnorm.ContainsAny(roleLower, minimalRoleKeywords):
		return TemplateMinimal
	case textnorm.ContainsAny(roleLower, traditionalRoleKeywords):
		return TemplateTraditional
	default:
		return TemplateModern
	}
}

func find(id string) (catalogEntry, bool) {
	for _, entry := range catalog {
		if entry.info.ID == id {
			return entry, true
		}
	}
	return catalogEntry{}, false
}

func lookup(id string) catalogEntry {
	if entry, ok := find(id); ok {
		return entry
	}
	entry, _ := find(TemplateModern)
	return entry
}

func describe(entry catalogEntry) types.Template {
	t := entry.info
	t.SuitableFor = append([]string{}, t.SuitableFor...)
	t.PreviewURL = PreviewURL(t.ID)
	return t
}
