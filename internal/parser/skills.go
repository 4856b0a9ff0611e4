package parser

import (
	"regexp"
	"strings"

	"resume-screener/internal/domain/resume"
)

var (
	reSkillItemSplit = regexp.MustCompile(`[,;•\n]`)
	reBulletPrefix   = regexp.MustCompile(`^[-•]\s*`)
)

// ExtractSkills runs two complementary passes over normalized text: a
// word-boundary match against the static taxonomy, then a free-form parse of
// the skills section body. Results are unioned with case-insensitive dedup by
// name; the first occurrence wins.
func ExtractSkills(normText string) []resume.Skill {
	var skills []resume.Skill
	seen := make(map[string]struct{})

	add := func(s resume.Skill) {
		key := strings.ToLower(s.Name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		skills = append(skills, s)
	}

	for _, bucket := range skillTaxonomy {
		for _, skill := range bucket.Skills {
			pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
			if !pattern.MatchString(normText) {
				continue
			}
			add(resume.Skill{
				Name:             titleCase(skill),
				Category:         bucket.Category,
				ProficiencyLevel: estimateProficiency(normText, skill),
			})
		}
	}

	for _, section := range ExtractSections(normText, skillSectionHeaders) {
		for _, s := range parseSkillSection(section) {
			add(s)
		}
	}

	return skills
}

// estimateProficiency inspects a 50-character window around every occurrence
// of the skill for level words. Absent any signal the level is beginner.
func estimateProficiency(normText, skill string) string {
	pattern := regexp.MustCompile(`(?i).{0,50}\b` + regexp.QuoteMeta(skill) + `\b.{0,50}`)
	context := strings.ToLower(strings.Join(pattern.FindAllString(normText, -1), " "))

	switch {
	case strings.Contains(context, "expert") || strings.Contains(context, "advanced") || strings.Contains(context, "lead"):
		return resume.ProficiencyExpert
	case strings.Contains(context, "proficient") || strings.Contains(context, "experienced"):
		return resume.ProficiencyAdvanced
	case strings.Contains(context, "intermediate") || strings.Contains(context, "working knowledge"):
		return resume.ProficiencyIntermediate
	default:
		return resume.ProficiencyBeginner
	}
}

func parseSkillSection(section string) []resume.Skill {
	var skills []resume.Skill

	for _, item := range reSkillItemSplit.Split(section, -1) {
		skill := reBulletPrefix.ReplaceAllString(strings.TrimSpace(item), "")
		if len(skill) <= 1 || len(skill) >= 50 {
			continue
		}
		skills = append(skills, resume.Skill{
			Name:             titleCase(skill),
			Category:         categorizeSkill(skill),
			ProficiencyLevel: resume.ProficiencyIntermediate,
		})
	}

	return skills
}

// categorizeSkill buckets a free-form skill by substring containment in
// either direction against the taxonomy lists.
func categorizeSkill(skill string) string {
	lower := strings.ToLower(skill)
	for _, bucket := range skillTaxonomy {
		for _, s := range bucket.Skills {
			if strings.Contains(lower, s) || strings.Contains(s, lower) {
				return bucket.Category
			}
		}
	}
	return resume.CategoryOther
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
