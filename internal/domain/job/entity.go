package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	ImportanceMustHave   = "must-have"
	ImportanceNiceToHave = "nice-to-have"
)

type SkillRequirement struct {
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	Importance string `json:"importance,omitempty"`
}

type Requirements struct {
	RequiredSkills       []SkillRequirement `json:"requiredSkills"`
	PreferredSkills      []SkillRequirement `json:"preferredSkills"`
	MinimumExperience    float64            `json:"minimumExperience"`
	EducationRequirement string             `json:"educationRequirement,omitempty"`
	Certifications       []string           `json:"certifications,omitempty"`
}

type Job struct {
	ID               uuid.UUID    `json:"id"`
	Title            string       `json:"title"`
	Company          string       `json:"company"`
	Department       string       `json:"department,omitempty"`
	Location         string       `json:"location,omitempty"`
	EmploymentType   string       `json:"employmentType,omitempty"`
	ExperienceLevel  string       `json:"experienceLevel"`
	Description      string       `json:"description"`
	Requirements     Requirements `json:"requirements"`
	Responsibilities []string     `json:"responsibilities,omitempty"`
	SourceURL        string       `json:"sourceUrl,omitempty"`
	IsActive         bool         `json:"isActive"`
	CreatedBy        string       `json:"createdBy,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}
