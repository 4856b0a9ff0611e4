package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	text := Normalize(`Education
Bachelor of Science in Computer Science 2016 GPA: 3.8
attended evening lectures online
Skills
go`)

	entries := ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "bachelor of science in computer science 2016 gpa: 3.8", entries[0].Degree)
	assert.Equal(t, 2016, entries[0].GraduationYear)
	assert.Equal(t, "3.8", entries[0].GPA)
	assert.Equal(t, "Unknown", entries[0].Institution)
	assert.Equal(t, "Unknown", entries[0].FieldOfStudy)
}

func TestExtractEducationMissingSection(t *testing.T) {
	assert.Empty(t, ExtractEducation("no education section here at all"))
}

func TestExtractCertifications(t *testing.T) {
	text := Normalize(`Certifications
AWS Certified Solutions Architect
CKA
Google Professional Cloud Architect`)

	entries := ExtractCertifications(text)
	require.Len(t, entries, 2)
	assert.Equal(t, "aws certified solutions architect", entries[0].Name)
	assert.Equal(t, "Unknown", entries[0].Issuer)
	// Three characters is below the noise threshold.
	assert.Equal(t, "google professional cloud architect", entries[1].Name)
}
