package dto

import (
	"resume-screener/internal/domain/job"
)

type JobListResponse struct {
	Items []job.Job `json:"items"`
	Meta  PageMeta  `json:"meta"`
}

// CreateJobRequest is shared by create and update; update replaces every
// mutable field.
type CreateJobRequest struct {
	Title            string           `json:"title"`
	Company          string           `json:"company"`
	Department       string           `json:"department"`
	Location         string           `json:"location"`
	EmploymentType   string           `json:"employmentType"`
	ExperienceLevel  string           `json:"experienceLevel"`
	Description      string           `json:"description"`
	Requirements     job.Requirements `json:"requirements"`
	Responsibilities []string         `json:"responsibilities"`
}

type ImportJobRequest struct {
	URL string `json:"url"`
}
