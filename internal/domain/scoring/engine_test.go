package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/resume"
)

func reqSkills(names ...string) []job.SkillRequirement {
	out := make([]job.SkillRequirement, 0, len(names))
	for _, n := range names {
		out = append(out, job.SkillRequirement{Name: n, Importance: job.ImportanceMustHave})
	}
	return out
}

func candSkills(names ...string) []resume.Skill {
	out := make([]resume.Skill, 0, len(names))
	for _, n := range names {
		out = append(out, resume.Skill{Name: n, Category: resume.CategoryTechnical, ProficiencyLevel: resume.ProficiencyIntermediate})
	}
	return out
}

func TestCalculateSkillsMatchHalf(t *testing.T) {
	got := CalculateSkillsMatch(candSkills("Go", "Redis"), reqSkills("Go", "Redis", "Kafka", "Terraform"))
	// 2 of 4 matched: min(10, 0.5*8+2).
	assert.Equal(t, 6.0, got.Score)
	require.Len(t, got.MatchedSkills, 2)
	assert.True(t, got.MatchedSkills[0].Match)
	assert.Equal(t, resume.ProficiencyIntermediate, got.MatchedSkills[0].CandidateLevel)
	assert.ElementsMatch(t, []string{"Kafka", "Terraform"}, got.MissingSkills)
}

func TestCalculateSkillsMatchFull(t *testing.T) {
	got := CalculateSkillsMatch(candSkills("Go", "PostgreSQL"), reqSkills("go", "postgresql"))
	assert.Equal(t, 10.0, got.Score)
	assert.Empty(t, got.MissingSkills)
}

func TestCalculateSkillsMatchNone(t *testing.T) {
	got := CalculateSkillsMatch(candSkills("Cobol"), reqSkills("Go"))
	assert.Equal(t, 2.0, got.Score)
	assert.Equal(t, []string{"Go"}, got.MissingSkills)
}

func TestCalculateSkillsMatchSubstring(t *testing.T) {
	// Containment works in both directions.
	got := CalculateSkillsMatch(candSkills("React Native"), reqSkills("React"))
	assert.Equal(t, 10.0, got.Score)

	got = CalculateSkillsMatch(candSkills("SQL"), reqSkills("PostgreSQL"))
	assert.Equal(t, 10.0, got.Score)
}

func TestCalculateSkillsMatchNoRequirements(t *testing.T) {
	got := CalculateSkillsMatch(candSkills("Go"), nil)
	assert.Equal(t, 8.0, got.Score)
	assert.NotNil(t, got.MatchedSkills)
	assert.NotNil(t, got.MissingSkills)
}

func TestCalculateExperienceMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate float64
		required  float64
		want      float64
	}{
		{"surplus", 5, 3, 8.0},
		{"exact", 3, 3, 7.0},
		{"large surplus capped", 20, 3, 10.0},
		{"deficit floored", 1, 5, 1.0},
		{"small deficit", 4, 5, 5.5},
		{"no requirement", 0, 0, 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateExperienceMatch(tt.candidate, tt.required, nil)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, tt.candidate, got.CandidateExperience)
		})
	}
}

func TestCalculateExperienceMatchRelevantEntries(t *testing.T) {
	entries := []resume.ExperienceEntry{
		{Position: "backend engineer", Company: "acme"},
		{},
	}
	got := CalculateExperienceMatch(5, 3, entries)
	require.Len(t, got.RelevantExperience, 2)
	assert.Equal(t, "acme", got.RelevantExperience[0].Company)
	assert.Equal(t, 7.0, got.RelevantExperience[0].RelevanceScore)
	assert.Equal(t, "Unknown", got.RelevantExperience[1].Company)
	assert.Equal(t, "Unknown", got.RelevantExperience[1].Position)
}

func TestCalculateEducationMatch(t *testing.T) {
	degree := []resume.EducationEntry{{Degree: "Bachelor of Science in CS", FieldOfStudy: "Unknown"}}

	met := CalculateEducationMatch(degree, "Bachelor's degree in Computer Science")
	assert.Equal(t, 8.0, met.Score)
	assert.True(t, met.Meets)
	assert.Equal(t, "Bachelor of Science in CS", met.CandidateEducation)

	unmet := CalculateEducationMatch(nil, "Master's degree")
	assert.Equal(t, 5.0, unmet.Score)
	assert.False(t, unmet.Meets)
	assert.Equal(t, "Not specified", unmet.CandidateEducation)

	lenient := CalculateEducationMatch(nil, "High school diploma")
	assert.Equal(t, 8.0, lenient.Score)
	assert.True(t, lenient.Meets)

	none := CalculateEducationMatch(nil, "")
	assert.Equal(t, 8.0, none.Score)
	assert.True(t, none.Meets)
}

func TestCalculateNeutralAcrossDimensions(t *testing.T) {
	got := Calculate(resume.ExtractedProfile{}, job.Requirements{})
	assert.Equal(t, 8.0, got.SkillsMatch.Score)
	assert.Equal(t, 8.0, got.ExperienceMatch.Score)
	assert.Equal(t, 8.0, got.EducationMatch.Score)
}
