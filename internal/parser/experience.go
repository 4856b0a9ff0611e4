package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-screener/internal/domain/resume"
)

var (
	reDateLine       = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|\d{1,2}/\d{1,4}|\d{4})\b`)
	reFourDigitYear  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	reTitleSeparator = regexp.MustCompile(`(?i)\sat\s|\s-\s|\s\|\s`)

	reExplicitYears = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(of\s*)?(experience|exp)`)
	reYearRange     = regexp.MustCompile(`(?i)\b(20\d{2})\s*[-–—]\s*(20\d{2}|present|current)`)
	reModernYear    = regexp.MustCompile(`\b(20\d{2})\b`)
)

// ExtractExperience parses the experience section bodies into job entries
// using line classification: a line naming a role starts a new entry, a line
// carrying dates attaches to the open entry, anything else of substance joins
// its description.
func ExtractExperience(normText string, now time.Time) []resume.ExperienceEntry {
	var entries []resume.ExperienceEntry
	for _, section := range ExtractSections(normText, []string{"experience", "work experience", "employment", "career history"}) {
		entries = append(entries, parseExperienceSection(section, now)...)
	}
	return entries
}

func parseExperienceSection(section string, now time.Time) []resume.ExperienceEntry {
	var jobs []resume.ExperienceEntry
	var current *resume.ExperienceEntry

	flush := func() {
		if current != nil {
			jobs = append(jobs, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case isJobTitleLine(line):
			flush()
			entry := parseJobTitleLine(line)
			current = &entry
		case current != nil && reDateLine.MatchString(line):
			applyDates(current, line, now)
		case current != nil && len(line) > 10:
			if current.Description != "" {
				current.Description += " "
			}
			current.Description += line
		}
	}
	flush()

	return jobs
}

func isJobTitleLine(line string) bool {
	lower := strings.ToLower(line)
	for _, indicator := range roleIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func parseJobTitleLine(line string) resume.ExperienceEntry {
	parts := reTitleSeparator.Split(line, -1)
	if len(parts) >= 2 {
		return resume.ExperienceEntry{
			Position: strings.TrimSpace(parts[0]),
			Company:  strings.TrimSpace(parts[1]),
		}
	}
	return resume.ExperienceEntry{
		Position: strings.TrimSpace(line),
		Company:  "Unknown",
	}
}

func applyDates(entry *resume.ExperienceEntry, line string, now time.Time) {
	entry.Duration = strings.TrimSpace(line)

	years := reFourDigitYear.FindAllString(line, -1)
	switch {
	case len(years) >= 2:
		entry.StartDate = janFirst(years[0])
		entry.EndDate = janFirst(years[1])
	case len(years) == 1:
		entry.StartDate = janFirst(years[0])
		lower := strings.ToLower(line)
		if strings.Contains(lower, "present") || strings.Contains(lower, "current") {
			entry.IsCurrent = true
			end := now
			entry.EndDate = &end
		}
	}
}

func janFirst(year string) *time.Time {
	y, err := strconv.Atoi(year)
	if err != nil {
		return nil
	}
	t := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

// CalculateTotalExperience derives total years of experience with a
// three-tier fallback:
//
//  1. an explicit "N years of experience" mention anywhere in the text (the
//     largest N wins; N > 50 is treated as unreliable and yields 0),
//  2. summed YYYY-YYYY/present ranges within the experience section, each
//     range accepted only when 0-20 years,
//  3. current year minus the earliest bare year in the section when at least
//     two years appear.
//
// A missing or near-empty experience section means fresh graduate: 0.
func CalculateTotalExperience(normText string, now time.Time) float64 {
	if matches := reExplicitYears.FindAllStringSubmatch(normText, -1); len(matches) > 0 {
		maxYears := 0
		for _, m := range matches {
			if n, err := strconv.Atoi(m[1]); err == nil && n > maxYears {
				maxYears = n
			}
		}
		if maxYears > 50 {
			return 0
		}
		return float64(maxYears)
	}

	section := experienceSection(normText)
	if len(section) < 50 {
		return 0
	}

	if ranges := reYearRange.FindAllStringSubmatch(section, -1); len(ranges) > 0 {
		total := 0.0
		for _, r := range ranges {
			start, err := strconv.Atoi(r[1])
			if err != nil {
				continue
			}
			end := now.Year()
			endToken := strings.ToLower(r[2])
			if endToken != "present" && endToken != "current" {
				if y, err := strconv.Atoi(r[2]); err == nil {
					end = y
				}
			}
			duration := float64(end - start)
			if duration >= 0 && duration <= 20 {
				total += duration
			}
		}
		if total > 50 {
			return 50
		}
		return total
	}

	if years := reModernYear.FindAllString(section, -1); len(years) >= 2 {
		earliest := now.Year()
		for _, y := range years {
			if n, err := strconv.Atoi(y); err == nil && n < earliest {
				earliest = n
			}
		}
		calculated := float64(now.Year() - earliest)
		if calculated >= 0 && calculated <= 50 {
			return calculated
		}
	}

	return 0
}

// experienceSection isolates the experience block by prefix-matching header
// lines, deliberately looser than ExtractSections: the header line itself is
// included and the block runs to the next major section.
func experienceSection(normText string) string {
	lines := strings.Split(normText, "\n")

	start := -1
	for i, line := range lines {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		for _, header := range experienceSectionHeaders {
			if trimmed == header || strings.HasPrefix(trimmed, header) {
				start = i
				break
			}
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return ""
	}

	terminators := []string{
		"education", "skills", "certifications", "projects",
		"publications", "awards", "references", "interests",
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.ToLower(strings.TrimSpace(lines[i]))
		for _, header := range terminators {
			if trimmed == header || strings.HasPrefix(trimmed, header) {
				end = i
				break
			}
		}
		if end != len(lines) {
			break
		}
	}

	return strings.Join(lines[start:end], "\n")
}
