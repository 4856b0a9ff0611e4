package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	in := "Senior   Engineer\r\n\r\n\r\nWorked  on\tDistributed Systems\n"
	want := "senior engineer\nworked on distributed systems"
	assert.Equal(t, want, Normalize(in))
}

func TestExtractSections(t *testing.T) {
	text := Normalize(`Summary
Seasoned backend engineer.

Skills:
Go, PostgreSQL, Redis

Experience
Software Engineer at Acme
2018-2020

Education
BS Computer Science 2016`)

	skills := ExtractSections(text, []string{"skills", "technical skills"})
	require.Len(t, skills, 1)
	assert.Equal(t, "go, postgresql, redis", skills[0])

	experience := ExtractSections(text, []string{"experience", "work experience"})
	require.Len(t, experience, 1)
	assert.Contains(t, experience[0], "software engineer at acme")
	assert.NotContains(t, experience[0], "bs computer science")

	summary := ExtractSections(text, []string{"summary", "objective"})
	require.Len(t, summary, 1)
	assert.Equal(t, "seasoned backend engineer.", summary[0])
}

func TestExtractSectionsMissingHeader(t *testing.T) {
	text := Normalize("just a paragraph of text with no headers at all")
	assert.Empty(t, ExtractSections(text, []string{"certifications", "licenses"}))
}

func TestExtractSectionsHeaderWithColon(t *testing.T) {
	text := "skills:\npython\nexperience\nnothing"
	sections := ExtractSections(text, []string{"skills"})
	require.Len(t, sections, 1)
	assert.Equal(t, "python", sections[0])
}
