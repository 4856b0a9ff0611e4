package llm

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"resume-screener/internal/domain/match"
)

const (
	defaultScore     = 5
	defaultReasoning = "Analysis completed successfully."
	maxReasoningLen  = 500
	maxListItems     = 5
)

var (
	reJSONBlock = regexp.MustCompile(`(?s)\{.*\}`)

	reReasoningPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)(?i:reasoning)[:\s]+(.*?)(?:\n\n|\n[A-Z]|$)`),
		regexp.MustCompile(`(?s)(?i:explanation)[:\s]+(.*?)(?:\n\n|\n[A-Z]|$)`),
		regexp.MustCompile(`(?s)(?i:analysis)[:\s]+(.*?)(?:\n\n|\n[A-Z]|$)`),
	}

	reScorePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)overall\s*score[:\s]*(\d+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)score[:\s]*(\d+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)rate[:\s]*(\d+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*/\s*10`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*out\s*of\s*10`),
	}

	reSectionHeader = regexp.MustCompile(`^[A-Z][A-Za-z\s]+:`)
	reBulletLine    = regexp.MustCompile(`^[-•*]\s|^\d+\.\s`)
	reBulletStrip   = regexp.MustCompile(`^[-•*\d+.\s]+`)
)

// ParseResponse extracts a structured verdict from whatever text the
// assistant returned. It tries the JSON block first, falls back to text
// heuristics per field, and never fails: catastrophic input still yields a
// best-effort verdict with default scores.
func ParseResponse(content, prompt string) match.Verdict {
	var parsed map[string]any
	if block := reJSONBlock.FindString(content); block != "" {
		if err := json.Unmarshal([]byte(block), &parsed); err != nil {
			parsed = nil
		}
	}

	v := match.Verdict{
		Prompt:   prompt,
		Response: content,
	}

	if reasoning, ok := stringField(parsed, "reasoning"); ok {
		v.Reasoning = reasoning
	} else {
		v.Reasoning = extractReasoning(content)
	}

	if score, ok := scoreField(parsed, "overallScore"); ok {
		v.OverallScore = score
	} else {
		v.OverallScore = extractScore(content)
	}
	v.SkillsScore = scoreOrDefault(parsed, "skillsScore")
	v.ExperienceScore = scoreOrDefault(parsed, "experienceScore")
	v.EducationScore = scoreOrDefault(parsed, "educationScore")

	v.Strengths = listField(parsed, "strengths", func() []string { return extractList(content, "strength") })
	v.Weaknesses = listField(parsed, "weaknesses", func() []string { return extractList(content, "weakness") })
	v.Recommendations = listField(parsed, "recommendations", func() []string { return extractList(content, "recommend") })
	v.MatchedSkills = listField(parsed, "matchedSkills", emptyList)
	v.MissingSkills = listField(parsed, "missingSkills", emptyList)
	v.ExperienceHighlights = listField(parsed, "experienceHighlights", emptyList)
	v.RiskFactors = listField(parsed, "riskFactors", emptyList)

	return v
}

func emptyList() []string { return []string{} }

func stringField(parsed map[string]any, key string) (string, bool) {
	raw, ok := parsed[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return truncate(s, maxReasoningLen), true
}

// scoreField validates a structured score: parseable as a number and within
// [1,10], otherwise treated as absent so the text fallback kicks in.
func scoreField(parsed map[string]any, key string) (float64, bool) {
	raw, ok := parsed[key]
	if !ok {
		return 0, false
	}

	var score float64
	switch n := raw.(type) {
	case float64:
		score = n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		score = f
	default:
		return 0, false
	}

	if score < 1 || score > 10 {
		return 0, false
	}
	return score, true
}

func scoreOrDefault(parsed map[string]any, key string) float64 {
	if score, ok := scoreField(parsed, key); ok {
		return score
	}
	return defaultScore
}

func listField(parsed map[string]any, key string, fallback func() []string) []string {
	raw, ok := parsed[key]
	if ok {
		if items, ok := raw.([]any); ok {
			out := make([]string, 0, len(items))
			for _, item := range items {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return fallback()
}

func extractReasoning(text string) string {
	for _, pattern := range reReasoningPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
			return truncate(strings.TrimSpace(m[1]), maxReasoningLen)
		}
	}

	// Fall back to the first substantial paragraph.
	for _, p := range strings.Split(text, "\n\n") {
		if len(p) > 50 {
			return truncate(p, maxReasoningLen)
		}
	}
	return defaultReasoning
}

func extractScore(text string) float64 {
	for _, pattern := range reScorePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if score, err := strconv.ParseFloat(m[1], 64); err == nil && score >= 1 && score <= 10 {
				return score
			}
		}
	}
	return defaultScore
}

// extractList finds the line mentioning the keyword, then collects the
// bullet lines that follow until a new section header appears.
func extractList(text, keyword string) []string {
	items := []string{}
	keywordPattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))

	inSection := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inSection {
			if keywordPattern.MatchString(trimmed) {
				inSection = true
			}
			continue
		}

		if reSectionHeader.MatchString(trimmed) && !keywordPattern.MatchString(trimmed) {
			break
		}

		if reBulletLine.MatchString(trimmed) {
			item := strings.TrimSpace(reBulletStrip.ReplaceAllString(trimmed, ""))
			if len(item) > 5 && len(item) < 200 {
				items = append(items, item)
			}
		}

		if len(items) >= maxListItems {
			break
		}
	}

	return items
}
