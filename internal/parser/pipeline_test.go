package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john.smith@example.com
(123) 456-7890

Summary
Backend engineer focused on distributed systems

Skills
go, postgresql, docker

Experience
Software Engineer at Acme Corp
2018 - 2020
Built internal services

Education
Bachelor of Science 2016`

func TestParseResumeTxt(t *testing.T) {
	e := NewExtractorAt(func() time.Time { return fixedNow })

	result, err := e.ParseResume([]byte(sampleResume), "resume.txt", "TXT")
	require.NoError(t, err)

	assert.Equal(t, sampleResume, result.RawText)
	assert.Equal(t, "resume.txt", result.Metadata.FileName)
	assert.Equal(t, "txt", result.Metadata.FileType)
	assert.Equal(t, fixedNow, result.Metadata.ParsedAt)
	assert.Greater(t, result.Metadata.WordCount, 0)

	p := result.Profile
	assert.Equal(t, "John Smith", p.Name)
	assert.Equal(t, "john.smith@example.com", p.Email)
	assert.Equal(t, "(123) 456-7890", p.Phone)
	assert.Equal(t, "backend engineer focused on distributed systems", p.Summary)
	assert.Equal(t, 2.0, p.TotalExperienceYears)

	require.Len(t, p.Skills, 3)
	names := []string{p.Skills[0].Name, p.Skills[1].Name, p.Skills[2].Name}
	assert.ElementsMatch(t, []string{"Go", "Postgresql", "Docker"}, names)

	require.Len(t, p.Experience, 1)
	assert.Equal(t, "software engineer", p.Experience[0].Position)
	assert.Equal(t, "acme corp", p.Experience[0].Company)

	require.Len(t, p.Education, 1)
	assert.Equal(t, 2016, p.Education[0].GraduationYear)
	assert.Empty(t, p.Certifications)
}

func TestParseResumeUnsupportedType(t *testing.T) {
	e := NewExtractor()
	_, err := e.ParseResume([]byte("whatever"), "resume.docx", "docx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestExtractSummaryTruncated(t *testing.T) {
	text := "summary\n"
	for i := 0; i < 60; i++ {
		text += "a ten char\n"
	}
	got := extractSummary(Normalize(text))
	assert.Len(t, got, 500)
}
