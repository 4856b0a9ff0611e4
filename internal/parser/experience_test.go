package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestExtractExperience(t *testing.T) {
	text := Normalize(`Experience
Software Engineer at Acme Corp
2018 - 2020
Built billing and invoicing systems for enterprise customers
Senior Developer | Globex
2021 - present`)

	entries := ExtractExperience(text, fixedNow)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "software engineer", first.Position)
	assert.Equal(t, "acme corp", first.Company)
	assert.Equal(t, "2018 - 2020", first.Duration)
	require.NotNil(t, first.StartDate)
	require.NotNil(t, first.EndDate)
	assert.Equal(t, 2018, first.StartDate.Year())
	assert.Equal(t, 2020, first.EndDate.Year())
	assert.False(t, first.IsCurrent)
	assert.Contains(t, first.Description, "billing and invoicing")

	second := entries[1]
	assert.Equal(t, "senior developer", second.Position)
	assert.Equal(t, "globex", second.Company)
	assert.True(t, second.IsCurrent)
	require.NotNil(t, second.StartDate)
	assert.Equal(t, 2021, second.StartDate.Year())
	require.NotNil(t, second.EndDate)
	assert.Equal(t, fixedNow, *second.EndDate)
}

func TestExtractExperienceNoSeparator(t *testing.T) {
	text := "experience\nproduct manager\n2019 - 2021"
	entries := ExtractExperience(text, fixedNow)
	require.Len(t, entries, 1)
	assert.Equal(t, "product manager", entries[0].Position)
	assert.Equal(t, "Unknown", entries[0].Company)
}

func TestCalculateTotalExperienceExplicit(t *testing.T) {
	// The explicit mention wins over any year ranges in the text.
	text := Normalize(`5 years of experience in backend development
Experience
Software Engineer at Acme
2010 - 2020 shipped a lot of software over this period`)
	assert.Equal(t, 5.0, CalculateTotalExperience(text, fixedNow))
}

func TestCalculateTotalExperienceExplicitMax(t *testing.T) {
	text := "3 years experience with go and 7+ years of exp overall"
	assert.Equal(t, 7.0, CalculateTotalExperience(text, fixedNow))
}

func TestCalculateTotalExperienceImplausibleExplicit(t *testing.T) {
	assert.Equal(t, 0.0, CalculateTotalExperience("100 years of experience", fixedNow))
}

func TestCalculateTotalExperienceRanges(t *testing.T) {
	text := Normalize(`Work Experience
Software Engineer at Acme Corp
2018-2020 building payment services
Senior Engineer at Globex
2021-present running a platform team
Education
BS Computer Science`)
	// 2 years from the closed range plus 3 years to the pinned clock.
	assert.Equal(t, 5.0, CalculateTotalExperience(text, fixedNow))
}

func TestCalculateTotalExperienceRangeOutlierExcluded(t *testing.T) {
	text := Normalize(`Experience
Staff Engineer at Initech working on mainframes
2000-2021 the long haul
Consultant at Initrode
2019-2021 short engagement`)
	// The 21-year range exceeds the per-range cap and is dropped.
	assert.Equal(t, 2.0, CalculateTotalExperience(text, fixedNow))
}

func TestCalculateTotalExperienceBareYears(t *testing.T) {
	text := Normalize(`Experience
Software Engineer at Acme Corporation in Boston
joined in 2019 and promoted after the 2021 review cycle`)
	assert.Equal(t, 5.0, CalculateTotalExperience(text, fixedNow))
}

func TestCalculateTotalExperienceFreshGraduate(t *testing.T) {
	assert.Equal(t, 0.0, CalculateTotalExperience("recent graduate seeking a first role", fixedNow))
}
