package knowledge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestSkills_EmbeddedBase(t *testing.T) {
	base := Skills()
	require.NotNil(t, base)

	keys := make([]string, 0, len(base.Categories))
	technical := 0
	for _, c := range base.Categories {
		keys = append(keys, c.Key)
		if c.Technical {
			technical++
		}
	}
	assert.Equal(t, []string{
		"programming_languages", "web_technologies", "databases", "cloud_platforms",
		"devops_tools", "data_science", "mobile_development", "soft_skills",
		"methodologies", "design_tools", "testing",
	}, keys)
	assert.Equal(t, 9, technical)

	assert.Len(t, base.CurrentTrending(), 13)
	assert.Len(t, base.ATSKeywords.ActionVerbs, 16)
	assert.Len(t, base.ATSKeywords.TechnicalSkills, 17)
	assert.Len(t, base.ATSKeywords.SoftSkills, 11)
	assert.Equal(t, 44, base.ATSKeywords.Total())
	assert.Len(t, base.EssentialGroups, 4)

	langs, ok := base.Category("programming_languages")
	require.True(t, ok)
	assert.Equal(t, "python", langs.Skills[0])
	assert.Equal(t, "Programming Languages", langs.DisplayName())
}

func TestSkills_ReturnsSameInstance(t *testing.T) {
	assert.Same(t, Skills(), Skills())
}

func TestSkillBase_RoleSkills(t *testing.T) {
	base := Skills()

	t.Run("software engineer", func(t *testing.T) {
		got := base.RoleSkills("Software Engineer")
		assert.Equal(t, []string{
			"python", "java", "javascript", "typescript", "c++",
			"html", "css", "react", "angular", "vue.js",
		}, got)
	})

	t.Run("devops", func(t *testing.T) {
		got := base.RoleSkills(" devops ")
		assert.Len(t, got, 7)
		assert.Equal(t, "docker", got[0])
	})

	t.Run("unknown role falls back to soft skills", func(t *testing.T) {
		got := base.RoleSkills("senior software engineer")
		assert.Equal(t, []string{"leadership", "communication", "teamwork", "problem solving", "analytical thinking"}, got)
	})
}

func TestSkillBase_Industry(t *testing.T) {
	focus, ok := Skills().Industry("Software Engineering")
	require.True(t, ok)
	assert.Contains(t, focus.Essential, "programming_languages")

	_, ok = Skills().Industry("basket weaving")
	assert.False(t, ok)
}

func TestParseSkills_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseSkills([]byte("categories: [unclosed"))
		var loadErr *LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, "skills.yaml", loadErr.File)
	})

	t.Run("missing trending year", func(t *testing.T) {
		data := []byte(`
categories:
  - key: languages
    skills: [go]
trending_year: "2030"
ats_keywords:
  action_verbs: [led]
`)
		_, err := ParseSkills(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no trending skills for year 2030")
	})
}

func TestCompanies_EmbeddedBase(t *testing.T) {
	base := Companies()
	assert.Equal(t, []string{"google", "microsoft", "amazon", "meta", "apple", "netflix"}, base.IDs())
	assert.Len(t, base.CulturalIndicators, 7)
	assert.Len(t, base.EducationKeywords, 10)
	assert.Equal(t, 75.0, base.Generic.MatchPercentage)
	assert.Equal(t, 75.0, base.Generic.CulturalFitScore)

	google, ok := base.Lookup("  GOOGLE ")
	require.True(t, ok)
	assert.Len(t, google.TechnicalSkills, 8)
	assert.Equal(t, "Python", google.TechnicalSkills[0].Skill)
	assert.Equal(t, types.ImportanceHigh, google.TechnicalSkills[0].Importance)

	_, ok = base.Lookup("initech")
	assert.False(t, ok)
}

func TestCompanyBase_WithOverrides(t *testing.T) {
	base := Companies()

	overridden := base.WithOverrides([]types.CompanyRequirements{
		{ID: "Google", Education: "Any degree"},
		{ID: "Initech", CulturalValues: []string{"Quality"}},
		{ID: "  "},
	})

	g, ok := overridden.Lookup("google")
	require.True(t, ok)
	assert.Equal(t, "Any degree", g.Education)

	i, ok := overridden.Lookup("initech")
	require.True(t, ok)
	assert.Equal(t, []string{"Quality"}, i.CulturalValues)
	assert.Len(t, overridden.IDs(), 7)

	// The original base is unchanged.
	orig, _ := base.Lookup("google")
	assert.Equal(t, "Computer Science or related field preferred", orig.Education)
	_, ok = base.Lookup("initech")
	assert.False(t, ok)
}

func TestParseCompanies_DuplicateID(t *testing.T) {
	_, err := ParseCompanies([]byte(`
companies:
  - id: acme
  - id: ACME
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate company id acme")
}
