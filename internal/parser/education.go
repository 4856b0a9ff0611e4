package parser

import (
	"regexp"
	"strconv"
	"strings"

	"resume-screener/internal/domain/resume"
)

var reGPA = regexp.MustCompile(`(?i)gpa\s*:?\s*(\d+\.?\d*)`)

// ExtractEducation pulls degree lines out of the education section. The line
// itself is kept as the degree; institution and field of study cannot be
// reliably separated by these heuristics and stay "Unknown".
func ExtractEducation(normText string) []resume.EducationEntry {
	var entries []resume.EducationEntry
	for _, section := range ExtractSections(normText, educationSectionHeaders) {
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || !isDegreeLine(line) {
				continue
			}
			entries = append(entries, parseDegreeLine(line))
		}
	}
	return entries
}

func isDegreeLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func parseDegreeLine(line string) resume.EducationEntry {
	entry := resume.EducationEntry{
		Degree:       line,
		Institution:  "Unknown",
		FieldOfStudy: "Unknown",
	}

	if year := reFourDigitYear.FindString(line); year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			entry.GraduationYear = y
		}
	}
	if m := reGPA.FindStringSubmatch(line); m != nil {
		entry.GPA = m[1]
	}

	return entry
}

// ExtractCertifications treats every substantial line of the certifications
// section as one entry. Issuers and dates are not parsed.
func ExtractCertifications(normText string) []resume.CertificationEntry {
	var entries []resume.CertificationEntry
	for _, section := range ExtractSections(normText, certificationSectionHeaders) {
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if len(line) <= 5 {
				continue
			}
			entries = append(entries, resume.CertificationEntry{
				Name:   line,
				Issuer: "Unknown",
			})
		}
	}
	return entries
}
