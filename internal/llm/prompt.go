package llm

import (
	"fmt"
	"strings"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/resume"
)

// SystemPrompt fixes the evaluator persona, scoring rubric and required JSON
// shape. The response parser depends on this contract.
const SystemPrompt = `You are an expert HR recruiter and technical hiring manager with deep expertise in resume analysis and candidate evaluation. Your task is to analyze resumes against job descriptions with precision and provide actionable insights.

ANALYSIS FRAMEWORK:
1. Skills Assessment (40% weight): Evaluate technical and soft skills match
2. Experience Relevance (35% weight): Assess work history alignment
3. Education & Certifications (15% weight): Review educational background
4. Cultural & Role Fit (10% weight): Overall suitability assessment

SCORING GUIDELINES:
- 9-10: Exceptional match, ideal candidate
- 7-8: Strong match, highly recommended
- 5-6: Good match with some gaps, consider with reservations
- 3-4: Moderate match, significant skill gaps
- 1-2: Poor match, not recommended

RESPONSE FORMAT:
Provide your analysis in the following JSON structure:
{
  "overallScore": number (1-10),
  "skillsScore": number (1-10),
  "experienceScore": number (1-10),
  "educationScore": number (1-10),
  "reasoning": "Detailed explanation of the score",
  "strengths": ["List of candidate strengths"],
  "weaknesses": ["List of areas for improvement"],
  "recommendations": ["Actionable hiring recommendations"],
  "matchedSkills": ["Skills that align with requirements"],
  "missingSkills": ["Critical skills the candidate lacks"],
  "experienceHighlights": ["Relevant experience points"],
  "riskFactors": ["Potential concerns or red flags"]
}

Be objective, specific, and provide concrete examples to support your assessment.`

// BuildComparisonPrompt assembles the user prompt from formatted candidate
// and job sections.
func BuildComparisonPrompt(r resume.Resume, j job.Job) string {
	return fmt.Sprintf(`
RESUME ANALYSIS REQUEST

CANDIDATE PROFILE:
Name: %s
Total Experience: %g years

SKILLS:
%s

EXPERIENCE:
%s

EDUCATION:
%s

CERTIFICATIONS:
%s

SUMMARY:
%s

---

JOB DESCRIPTION TO MATCH:

POSITION: %s
COMPANY: %s
EXPERIENCE LEVEL: %s
MINIMUM EXPERIENCE: %g years

REQUIRED SKILLS:
%s

PREFERRED SKILLS:
%s

JOB DESCRIPTION:
%s

RESPONSIBILITIES:
%s

REQUIREMENTS:
Education: %s
Certifications: %s

---

ANALYSIS REQUEST:
Compare this resume with the job description and rate the candidate's fit on a scale of 1-10 with detailed justification. Focus on:

1. Technical skill alignment and proficiency levels
2. Relevant work experience and achievements
3. Educational background compatibility
4. Overall role suitability and growth potential

Provide specific examples and be constructive in your feedback. Consider both current fit and future potential.`,
		orDefault(r.CandidateName, "Not specified"),
		r.Extracted.TotalExperienceYears,
		formatSkills(r.Extracted.Skills),
		formatExperience(r.Extracted.Experience),
		formatEducation(r.Extracted.Education),
		formatCertifications(r.Extracted.Certifications),
		orDefault(r.Extracted.Summary, "No summary available"),
		j.Title,
		j.Company,
		j.ExperienceLevel,
		j.Requirements.MinimumExperience,
		formatJobSkills(j.Requirements.RequiredSkills),
		formatJobSkills(j.Requirements.PreferredSkills),
		j.Description,
		orDefault(strings.Join(j.Responsibilities, "\n• "), "Not specified"),
		orDefault(j.Requirements.EducationRequirement, "Not specified"),
		orDefault(strings.Join(j.Requirements.Certifications, ", "), "Not specified"),
	)
}

// BuildSkillGapPrompt asks for learning recommendations over the gap between
// the candidate's skills and the job's requirements.
func BuildSkillGapPrompt(candidateSkills []resume.Skill, requiredSkills []job.SkillRequirement) string {
	var cand strings.Builder
	for _, s := range candidateSkills {
		fmt.Fprintf(&cand, "• %s (%s)\n", s.Name, s.ProficiencyLevel)
	}
	var req strings.Builder
	for _, s := range requiredSkills {
		importance := s.Importance
		if importance == "" {
			importance = "required"
		}
		fmt.Fprintf(&req, "• %s (%s)\n", s.Name, importance)
	}

	return fmt.Sprintf(`
SKILL GAP ANALYSIS

CANDIDATE SKILLS:
%s
REQUIRED SKILLS:
%s
Please analyze:
1. Which required skills the candidate has and their proficiency levels
2. Which critical skills are missing
3. Skill development recommendations with priority levels
4. Estimated timeline for skill gap closure

Provide specific, actionable advice for both the candidate and hiring manager.`,
		cand.String(), req.String())
}

// SkillGapSystemPrompt frames the skill-gap analysis persona.
const SkillGapSystemPrompt = "You are a technical skills assessment expert. Analyze skill gaps and provide specific learning recommendations."

func formatSkills(skills []resume.Skill) string {
	if len(skills) == 0 {
		return "No skills listed"
	}

	order := make([]string, 0, 4)
	grouped := make(map[string][]string)
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = resume.CategoryOther
		}
		level := s.ProficiencyLevel
		if level == "" {
			level = "unknown"
		}
		if _, ok := grouped[category]; !ok {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], fmt.Sprintf("%s (%s)", s.Name, level))
	}

	lines := make([]string, 0, len(order))
	for _, category := range order {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(category), strings.Join(grouped[category], ", ")))
	}
	return strings.Join(lines, "\n")
}

func formatExperience(entries []resume.ExperienceEntry) string {
	if len(entries) == 0 {
		return "No experience listed"
	}

	blocks := make([]string, 0, len(entries))
	for _, exp := range entries {
		duration := exp.Duration
		if duration == "" {
			switch {
			case exp.StartDate != nil && exp.IsCurrent:
				duration = fmt.Sprintf("%d - Present", exp.StartDate.Year())
			case exp.StartDate != nil && exp.EndDate != nil:
				duration = fmt.Sprintf("%d - %d", exp.StartDate.Year(), exp.EndDate.Year())
			default:
				duration = "Unknown duration"
			}
		}

		description := "No description"
		if exp.Description != "" {
			description = truncate(exp.Description, 200) + "..."
		}

		blocks = append(blocks, fmt.Sprintf("• %s at %s (%s)\n  %s",
			orDefault(exp.Position, "Unknown Position"),
			orDefault(exp.Company, "Unknown Company"),
			duration, description))
	}
	return strings.Join(blocks, "\n\n")
}

func formatEducation(entries []resume.EducationEntry) string {
	if len(entries) == 0 {
		return "No education listed"
	}

	lines := make([]string, 0, len(entries))
	for _, edu := range entries {
		year := "Unknown Year"
		if edu.GraduationYear != 0 {
			year = fmt.Sprintf("%d", edu.GraduationYear)
		}
		lines = append(lines, fmt.Sprintf("• %s - %s (%s)",
			orDefault(edu.Degree, "Unknown Degree"),
			orDefault(edu.Institution, "Unknown Institution"),
			year))
	}
	return strings.Join(lines, "\n")
}

func formatCertifications(entries []resume.CertificationEntry) string {
	if len(entries) == 0 {
		return "No certifications listed"
	}

	lines := make([]string, 0, len(entries))
	for _, cert := range entries {
		lines = append(lines, fmt.Sprintf("• %s - %s", cert.Name, orDefault(cert.Issuer, "Unknown Issuer")))
	}
	return strings.Join(lines, "\n")
}

func formatJobSkills(skills []job.SkillRequirement) string {
	if len(skills) == 0 {
		return "None specified"
	}

	lines := make([]string, 0, len(skills))
	for _, s := range skills {
		importance := ""
		if s.Importance != "" {
			importance = fmt.Sprintf(" (%s)", s.Importance)
		}
		lines = append(lines, fmt.Sprintf("• %s%s", s.Name, importance))
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
