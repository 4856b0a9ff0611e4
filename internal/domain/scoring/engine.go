package scoring

import (
	"math"
	"strings"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/match"
	"resume-screener/internal/domain/resume"
)

// neutralScore is awarded for a dimension the job places no requirement on;
// absence of requirements must not penalize the candidate.
const neutralScore = 8

// Calculate produces the rule-based scoring channel for one candidate/job
// pair. Pure and deterministic; the overall match score comes from the
// assistant verdict, not from these three dimensions.
func Calculate(profile resume.ExtractedProfile, reqs job.Requirements) match.DetailedScoring {
	return match.DetailedScoring{
		SkillsMatch:     CalculateSkillsMatch(profile.Skills, reqs.RequiredSkills),
		ExperienceMatch: CalculateExperienceMatch(profile.TotalExperienceYears, reqs.MinimumExperience, profile.Experience),
		EducationMatch:  CalculateEducationMatch(profile.Education, reqs.EducationRequirement),
	}
}

// CalculateSkillsMatch matches required skills against candidate skills by
// case-insensitive substring containment in either direction. The score
// scales the match percentage onto 2-10: a floor of 2 at zero matches, 10
// only at a full match.
func CalculateSkillsMatch(candidate []resume.Skill, required []job.SkillRequirement) match.SkillsMatch {
	if len(required) == 0 {
		return match.SkillsMatch{
			Score:         neutralScore,
			MatchedSkills: []match.MatchedSkillDetail{},
			MissingSkills: []string{},
		}
	}

	matched := make([]match.MatchedSkillDetail, 0, len(required))
	missing := make([]string, 0)

	for _, req := range required {
		reqLower := strings.ToLower(req.Name)
		var found *resume.Skill
		for i := range candidate {
			candLower := strings.ToLower(candidate[i].Name)
			if strings.Contains(candLower, reqLower) || strings.Contains(reqLower, candLower) {
				found = &candidate[i]
				break
			}
		}

		if found != nil {
			matched = append(matched, match.MatchedSkillDetail{
				Skill:          req.Name,
				CandidateLevel: found.ProficiencyLevel,
				RequiredLevel:  "required",
				Match:          true,
			})
		} else {
			missing = append(missing, req.Name)
		}
	}

	matchPercentage := float64(len(matched)) / float64(len(required))
	score := math.Min(10, matchPercentage*8+2)

	return match.SkillsMatch{
		Score:         round1(score),
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// CalculateExperienceMatch rewards surplus years with a diminishing bonus
// and penalizes a deficit steeply, floored at 1. The relevance score per
// entry is a fixed placeholder; relevance analysis is out of scope here.
func CalculateExperienceMatch(candidateYears, requiredYears float64, entries []resume.ExperienceEntry) match.ExperienceMatch {
	if requiredYears == 0 {
		return match.ExperienceMatch{
			Score:               neutralScore,
			CandidateExperience: candidateYears,
			RequiredExperience:  0,
			RelevantExperience:  []match.RelevantExperience{},
		}
	}

	var score float64
	if candidateYears >= requiredYears {
		score = math.Min(10, 7+(candidateYears-requiredYears)*0.5)
	} else {
		deficit := requiredYears - candidateYears
		score = math.Max(1, 7-deficit*1.5)
	}

	relevant := make([]match.RelevantExperience, 0, len(entries))
	for _, e := range entries {
		company := e.Company
		if company == "" {
			company = "Unknown"
		}
		position := e.Position
		if position == "" {
			position = "Unknown"
		}
		relevant = append(relevant, match.RelevantExperience{
			Company:        company,
			Position:       position,
			RelevanceScore: 7,
		})
	}

	return match.ExperienceMatch{
		Score:               round1(score),
		CandidateExperience: candidateYears,
		RequiredExperience:  requiredYears,
		RelevantExperience:  relevant,
	}
}

// CalculateEducationMatch is deliberately coarse: 8 when the requirement is
// met (or absent), 5 otherwise.
func CalculateEducationMatch(education []resume.EducationEntry, requirement string) match.EducationMatch {
	if requirement == "" {
		return match.EducationMatch{
			Score:              neutralScore,
			CandidateEducation: "Not specified",
			RequiredEducation:  "Not specified",
			Meets:              true,
		}
	}

	var b strings.Builder
	for _, edu := range education {
		b.WriteString(strings.ToLower(edu.Degree + " " + edu.FieldOfStudy))
		b.WriteString(" ")
	}
	educationString := b.String()
	requiredLower := strings.ToLower(requirement)

	meets := strings.Contains(educationString, "bachelor") ||
		strings.Contains(educationString, "master") ||
		strings.Contains(educationString, "phd") ||
		strings.Contains(requiredLower, "high school") ||
		strings.Contains(requiredLower, "any degree")

	score := 5.0
	if meets {
		score = neutralScore
	}

	candidateEducation := "Not specified"
	if len(education) > 0 {
		candidateEducation = education[0].Degree
	}

	return match.EducationMatch{
		Score:              score,
		CandidateEducation: candidateEducation,
		RequiredEducation:  requirement,
		Meets:              meets,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
