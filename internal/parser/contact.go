package parser

import (
	"regexp"
	"strings"
)

var (
	reEmail       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	reEmailStrict = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// Progressively looser digit groupings, tried in order.
	rePhonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\d{10}`),
		regexp.MustCompile(`\d{10}`),
	}
	reNonDigit = regexp.MustCompile(`\D`)

	reNameSkipLine  = regexp.MustCompile(`(?i)@|http|www|\+?\d{10}|linkedin|github`)
	reNameStrict    = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})$`)
	reTitleCaseWord = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// ExtractEmail returns the first token in the original-case text that fully
// matches the strict localpart@domain.tld shape, folded to lowercase. Empty
// string means no email was found.
func ExtractEmail(text string) string {
	for _, candidate := range reEmail.FindAllString(text, -1) {
		if reEmailStrict.MatchString(candidate) {
			return strings.ToLower(candidate)
		}
	}
	return ""
}

// ExtractPhone returns the first phone-looking token whose digit-only length
// is at least 10, trying the grouping patterns loosest-last.
func ExtractPhone(text string) string {
	for _, pattern := range rePhonePatterns {
		m := pattern.FindString(text)
		if m == "" {
			continue
		}
		phone := strings.TrimSpace(m)
		if len(reNonDigit.ReplaceAllString(phone, "")) >= 10 {
			return phone
		}
	}
	return ""
}

// ExtractName inspects the first five non-empty lines of the original-case
// text. Lines carrying contact noise (emails, URLs, long digit runs) are
// skipped; the first line of 2-4 Title-Case words wins.
func ExtractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	limit := len(lines)
	if limit > 5 {
		limit = 5
	}

	for i := 0; i < limit; i++ {
		line := lines[i]
		if reNameSkipLine.MatchString(line) {
			continue
		}

		if m := reNameStrict.FindStringSubmatch(line); m != nil {
			if len(m[1]) >= 4 && len(m[1]) <= 50 {
				return m[1]
			}
		}

		// More permissive check, first three lines only.
		if i < 3 {
			words := strings.Fields(line)
			if len(words) >= 2 && len(words) <= 4 {
				likelyName := true
				for _, w := range words {
					if len(w) < 2 || !reTitleCaseWord.MatchString(w) {
						likelyName = false
						break
					}
				}
				if likelyName {
					return strings.Join(words, " ")
				}
			}
		}
	}

	return ""
}
