// Package knowledge provides the static skill and company knowledge bases.
// Both are stored as YAML files embedded at compile time and decoded once per process.
package knowledge

import (
	"embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed skills.yaml companies.yaml
var dataFiles embed.FS

const (
	skillsFile    = "skills.yaml"
	companiesFile = "companies.yaml"
)

// LoadError is returned when a knowledge-base file cannot be read or decoded.
type LoadError struct {
	File  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load knowledge base %s: %v", e.File, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Category is an ordered list of canonical skill names.
type Category struct {
	Key       string   `yaml:"key"`
	Technical bool     `yaml:"technical"`
	Soft      bool     `yaml:"soft"`
	Skills    []string `yaml:"skills"`
}

// DisplayName returns the title-cased category name, e.g. "devops_tools" -> "Devops Tools".
func (c Category) DisplayName() string {
	return textnorm.Title(strings.ReplaceAll(c.Key, "_", " "))
}

// IndustryFocus lists the category keys an industry treats as essential or preferred.
type IndustryFocus struct {
	Essential []string `yaml:"essential" json:"essential"`
	Preferred []string `yaml:"preferred" json:"preferred"`
}

// ProficiencyTier maps a proficiency level to the words that indicate it.
type ProficiencyTier struct {
	Level      string   `yaml:"level"`
	Indicators []string `yaml:"indicators"`
}

// SkillGroup is a set of alias terms for one essential skill.
type SkillGroup struct {
	Key   string   `yaml:"key"`
	Terms []string `yaml:"terms"`
}

// RoleSource takes the first Take skills of a category.
type RoleSource struct {
	Category string `yaml:"category"`
	Take     int    `yaml:"take"`
}

// RoleBucket maps a set of role names to the skills suggested for them.
type RoleBucket struct {
	Roles   []string     `yaml:"roles"`
	Sources []RoleSource `yaml:"sources"`
}

// ATSKeywords holds the keyword lists used for ATS keyword density.
type ATSKeywords struct {
	ActionVerbs     []string `yaml:"action_verbs"`
	TechnicalSkills []string `yaml:"technical_skills"`
	SoftSkills      []string `yaml:"soft_skills"`
}

// Total returns the number of keywords across all three lists.
func (k ATSKeywords) Total() int {
	return len(k.ActionVerbs) + len(k.TechnicalSkills) + len(k.SoftSkills)
}

// SkillBase is the skill knowledge base. It is read-only after loading.
type SkillBase struct {
	Categories        []Category               `yaml:"categories"`
	Industries        map[string]IndustryFocus `yaml:"industries"`
	TrendingYear      string                   `yaml:"trending_year"`
	Trending          map[string][]string      `yaml:"trending"`
	ProficiencyTiers  []ProficiencyTier        `yaml:"proficiency_tiers"`
	EssentialGroups   []SkillGroup             `yaml:"essential_groups"`
	RoleBuckets       []RoleBucket             `yaml:"role_buckets"`
	DefaultRoleBucket []RoleSource             `yaml:"default_role_bucket"`
	ATSKeywords       ATSKeywords              `yaml:"ats_keywords"`
}

// Category returns the category with the given key.
func (b *SkillBase) Category(key string) (Category, bool) {
	for _, c := range b.Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// CurrentTrending returns the trending skills for the configured year.
func (b *SkillBase) CurrentTrending() []string {
	return b.Trending[b.TrendingYear]
}

// Industry returns the focus areas of an industry key such as "software_engineering".
// Spaces and hyphens in the key are treated as underscores.
func (b *SkillBase) Industry(name string) (IndustryFocus, bool) {
	key := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(name)))
	focus, ok := b.Industries[key]
	return focus, ok
}

// RoleSkills returns the suggested skills for a role. The role must equal one of a
// bucket's role names (case-insensitive); otherwise the default bucket is used.
func (b *SkillBase) RoleSkills(role string) []string {
	role = strings.ToLower(strings.TrimSpace(role))
	sources := b.DefaultRoleBucket
	for _, bucket := range b.RoleBuckets {
		if slices.Contains(bucket.Roles, role) {
			sources = bucket.Sources
			break
		}
	}

	var skills []string
	for _, src := range sources {
		c, ok := b.Category(src.Category)
		if !ok {
			continue
		}
		skills = append(skills, c.Skills[:min(src.Take, len(c.Skills))]...)
	}
	return skills
}

func (b *SkillBase) validate() error {
	if len(b.Categories) == 0 {
		return fmt.Errorf("no skill categories defined")
	}
	for _, c := range b.Categories {
		if c.Key == "" {
			return fmt.Errorf("skill category without key")
		}
		if len(c.Skills) == 0 {
			return fmt.Errorf("skill category %s has no skills", c.Key)
		}
	}
	if _, ok := b.Trending[b.TrendingYear]; !ok {
		return fmt.Errorf("no trending skills for year %s", b.TrendingYear)
	}
	if b.ATSKeywords.Total() == 0 {
		return fmt.Errorf("no ATS keywords defined")
	}
	sources := append([]RoleSource(nil), b.DefaultRoleBucket...)
	for _, bucket := range b.RoleBuckets {
		sources = append(sources, bucket.Sources...)
	}
	for _, src := range sources {
		if _, ok := b.Category(src.Category); !ok {
			return fmt.Errorf("role bucket references unknown category %s", src.Category)
		}
	}
	return nil
}

// GenericProfile holds the fallback values used for companies without an entry.
type GenericProfile struct {
	MatchPercentage  float64  `yaml:"match_percentage"`
	CulturalFitScore float64  `yaml:"cultural_fit_score"`
	ExperienceLevel  string   `yaml:"experience_level"`
	Recommendations  []string `yaml:"recommendations"`
	GeneralAdvice    []string `yaml:"general_advice"`
}

// CompanyBase is the company requirements knowledge base. It is read-only after loading;
// WithOverrides returns a new base instead of modifying the receiver.
type CompanyBase struct {
	Companies          []types.CompanyRequirements `yaml:"companies"`
	SkillVariations    map[string][]string         `yaml:"skill_variations"`
	SoftSkillKeywords  map[string][]string         `yaml:"soft_skill_keywords"`
	CulturalIndicators map[string][]string         `yaml:"cultural_indicators"`
	EducationKeywords  []string                    `yaml:"education_keywords"`
	PositionTitles     []string                    `yaml:"position_titles"`
	Generic            GenericProfile              `yaml:"generic"`

	index map[string]int
}

// NormalizeID lowercases and trims a company identifier.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Lookup returns the requirements for a company identifier (case-insensitive).
func (b *CompanyBase) Lookup(id string) (*types.CompanyRequirements, bool) {
	i, ok := b.index[NormalizeID(id)]
	if !ok {
		return nil, false
	}
	return &b.Companies[i], true
}

// IDs returns the company identifiers in knowledge-base order.
func (b *CompanyBase) IDs() []string {
	ids := make([]string, len(b.Companies))
	for i, c := range b.Companies {
		ids[i] = c.ID
	}
	return ids
}

// WithOverrides returns a copy of the base where each profile replaces the entry with the
// same identifier, or is appended when no such entry exists.
func (b *CompanyBase) WithOverrides(profiles []types.CompanyRequirements) *CompanyBase {
	out := *b
	out.Companies = append([]types.CompanyRequirements(nil), b.Companies...)
	out.index = make(map[string]int, len(b.Companies)+len(profiles))
	for k, v := range b.index {
		out.index[k] = v
	}

	for _, p := range profiles {
		p.ID = NormalizeID(p.ID)
		if p.ID == "" {
			continue
		}
		if i, ok := out.index[p.ID]; ok {
			out.Companies[i] = p
			continue
		}
		out.index[p.ID] = len(out.Companies)
		out.Companies = append(out.Companies, p)
	}
	return &out
}

func (b *CompanyBase) buildIndex() error {
	b.index = make(map[string]int, len(b.Companies))
	for i := range b.Companies {
		id := NormalizeID(b.Companies[i].ID)
		if id == "" {
			return fmt.Errorf("company entry %d has no id", i)
		}
		if _, dup := b.index[id]; dup {
			return fmt.Errorf("duplicate company id %s", id)
		}
		b.Companies[i].ID = id
		b.index[id] = i
	}
	return nil
}

// ParseSkills decodes a skill knowledge base from YAML.
func ParseSkills(data []byte) (*SkillBase, error) {
	var base SkillBase
	if err := yaml.Unmarshal(data, &base); err != nil {
		return nil, &LoadError{File: skillsFile, Cause: err}
	}
	if err := base.validate(); err != nil {
		return nil, &LoadError{File: skillsFile, Cause: err}
	}
	return &base, nil
}

// ParseCompanies decodes a company knowledge base from YAML.
func ParseCompanies(data []byte) (*CompanyBase, error) {
	var base CompanyBase
	if err := yaml.Unmarshal(data, &base); err != nil {
		return nil, &LoadError{File: companiesFile, Cause: err}
	}
	if err := base.buildIndex(); err != nil {
		return nil, &LoadError{File: companiesFile, Cause: err}
	}
	return &base, nil
}

var (
	skillsOnce sync.Once
	skillBase  *SkillBase

	companiesOnce sync.Once
	companyBase   *CompanyBase
)

// Skills returns the embedded skill knowledge base.
// It panics if the embedded data is invalid, which is a build defect.
func Skills() *SkillBase {
	skillsOnce.Do(func() {
		data, err := dataFiles.ReadFile(skillsFile)
		if err != nil {
			panic(&LoadError{File: skillsFile, Cause: err})
		}
		base, err := ParseSkills(data)
		if err != nil {
			panic(err)
		}
		skillBase = base
	})
	return skillBase
}

// Companies returns the embedded company knowledge base.
// It panics if the embedded data is invalid, which is a build defect.
func Companies() *CompanyBase {
	companiesOnce.Do(func() {
		data, err := dataFiles.ReadFile(companiesFile)
		if err != nil {
			panic(&LoadError{File: companiesFile, Cause: err})
		}
		base, err := ParseCompanies(data)
		if err != nil {
			panic(err)
		}
		companyBase = base
	})
	return companyBase
}

