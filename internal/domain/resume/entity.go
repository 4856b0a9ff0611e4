package resume

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryDomain    = "domain"
	CategoryOther     = "other"
)

const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

type Skill struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel string `json:"proficiencyLevel"`
}

type ExperienceEntry struct {
	Position    string     `json:"position"`
	Company     string     `json:"company"`
	Duration    string     `json:"duration"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsCurrent   bool       `json:"isCurrent"`
}

type EducationEntry struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	GraduationYear int    `json:"graduationYear,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

type CertificationEntry struct {
	Name       string     `json:"name"`
	Issuer     string     `json:"issuer"`
	IssueDate  *time.Time `json:"issueDate,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

// ExtractedProfile is the structured view of one resume. It is produced in a
// single pass at upload or reparse time and replaced wholesale, never merged.
// Skill names are pairwise case-insensitively distinct.
type ExtractedProfile struct {
	Name                 string               `json:"name,omitempty"`
	Email                string               `json:"email,omitempty"`
	Phone                string               `json:"phone,omitempty"`
	Skills               []Skill              `json:"skills"`
	Experience           []ExperienceEntry    `json:"experience"`
	Education            []EducationEntry     `json:"education"`
	Certifications       []CertificationEntry `json:"certifications"`
	TotalExperienceYears float64              `json:"totalExperienceYears"`
	Summary              string               `json:"summary"`
}

type Metadata struct {
	FileName  string    `json:"fileName"`
	FileType  string    `json:"fileType"`
	ParsedAt  time.Time `json:"parsedAt"`
	WordCount int       `json:"wordCount"`
}

type Resume struct {
	ID               uuid.UUID        `json:"id"`
	CandidateName    string           `json:"candidateName"`
	Email            string           `json:"email,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	OriginalFileName string           `json:"originalFileName"`
	FileType         string           `json:"fileType"`
	RawText          string           `json:"rawText,omitempty"`
	Extracted        ExtractedProfile `json:"extractedData"`
	Metadata         Metadata         `json:"metadata"`
	UploadedAt       time.Time        `json:"uploadedAt"`
	IsActive         bool             `json:"isActive"`
}
