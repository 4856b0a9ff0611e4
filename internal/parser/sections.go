package parser

import (
	"regexp"
	"strings"
)

// Headers that terminate any section body. This list is the authoritative
// contract; non-standard headers ("Professional Background") are not inferred.
var canonicalHeaders = []string{
	"experience", "education", "skills", "certifications", "projects",
	"achievements", "awards", "languages", "interests", "references",
}

var canonicalHeaderPatterns = compileHeaderPatterns(canonicalHeaders)

func compileHeaderPatterns(headers []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(headers))
	for _, h := range headers {
		out = append(out, regexp.MustCompile(`(?i)^\s*`+regexp.QuoteMeta(h)+`\s*:?\s*$`))
	}
	return out
}

func isSectionHeader(line string) bool {
	for _, p := range canonicalHeaderPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// ExtractSections returns the body of each section whose header line matches
// one of the given synonyms (equality modulo surrounding whitespace and an
// optional trailing colon). A body runs up to the next canonical header.
func ExtractSections(text string, headers []string) []string {
	lines := strings.Split(text, "\n")
	var sections []string

	for _, pattern := range compileHeaderPatterns(headers) {
		headerIndex := -1
		for i, line := range lines {
			if pattern.MatchString(line) {
				headerIndex = i
				break
			}
		}
		if headerIndex == -1 {
			continue
		}

		var b strings.Builder
		for i := headerIndex + 1; i < len(lines); i++ {
			line := strings.TrimSpace(lines[i])
			if isSectionHeader(line) {
				break
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		if body := strings.TrimSpace(b.String()); body != "" {
			sections = append(sections, body)
		}
	}

	return sections
}
