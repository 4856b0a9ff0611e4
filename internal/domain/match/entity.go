package match

import (
	"time"

	"github.com/google/uuid"
)

type MatchedSkillDetail struct {
	Skill          string `json:"skill"`
	CandidateLevel string `json:"candidateLevel"`
	RequiredLevel  string `json:"requiredLevel"`
	Match          bool   `json:"match"`
}

type SkillsMatch struct {
	Score         float64              `json:"score"`
	MatchedSkills []MatchedSkillDetail `json:"matchedSkills"`
	MissingSkills []string             `json:"missingSkills"`
}

type RelevantExperience struct {
	Company        string  `json:"company"`
	Position       string  `json:"position"`
	RelevanceScore float64 `json:"relevanceScore"`
}

type ExperienceMatch struct {
	Score               float64              `json:"score"`
	CandidateExperience float64              `json:"candidateExperience"`
	RequiredExperience  float64              `json:"requiredExperience"`
	RelevantExperience  []RelevantExperience `json:"relevantExperience"`
}

type EducationMatch struct {
	Score              float64 `json:"score"`
	CandidateEducation string  `json:"candidateEducation"`
	RequiredEducation  string  `json:"requiredEducation"`
	Meets              bool    `json:"meets"`
}

// DetailedScoring is the deterministic, explainable scoring channel. It is
// stored alongside the assistant verdict and never averaged into the overall
// score.
type DetailedScoring struct {
	SkillsMatch     SkillsMatch     `json:"skillsMatch"`
	ExperienceMatch ExperienceMatch `json:"experienceMatch"`
	EducationMatch  EducationMatch  `json:"educationMatch"`
}

// Verdict is the structured reading of the assistant's free-text evaluation.
// Every field is always populated; parse failures degrade to defaults rather
// than errors.
type Verdict struct {
	Prompt               string   `json:"prompt,omitempty"`
	Response             string   `json:"response,omitempty"`
	Reasoning            string   `json:"reasoning"`
	OverallScore         float64  `json:"overallScore"`
	SkillsScore          float64  `json:"skillsScore"`
	ExperienceScore      float64  `json:"experienceScore"`
	EducationScore       float64  `json:"educationScore"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	Recommendations      []string `json:"recommendations"`
	MatchedSkills        []string `json:"matchedSkills"`
	MissingSkills        []string `json:"missingSkills"`
	ExperienceHighlights []string `json:"experienceHighlights"`
	RiskFactors          []string `json:"riskFactors"`
	Notes                string   `json:"notes,omitempty"`
}

type Result struct {
	ID            uuid.UUID       `json:"id"`
	JobID         uuid.UUID       `json:"jobId"`
	ResumeID      uuid.UUID       `json:"resumeId"`
	OverallScore  float64         `json:"overallScore"`
	Detailed      DetailedScoring `json:"detailedScoring"`
	Analysis      Verdict         `json:"llmAnalysis"`
	Status        string          `json:"matchStatus"`
	IsShortlisted bool            `json:"isShortlisted"`
	MatchedAt     time.Time       `json:"matchedAt"`
}
