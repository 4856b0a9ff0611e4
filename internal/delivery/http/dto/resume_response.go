package dto

import (
	"time"

	"github.com/google/uuid"

	"resume-screener/internal/domain/resume"
)

// ResumeListItem omits raw text and the full extracted profile; list views
// only need the identity fields and a skill overview.
type ResumeListItem struct {
	ID                   uuid.UUID `json:"id"`
	CandidateName        string    `json:"candidateName"`
	Email                string    `json:"email,omitempty"`
	Phone                string    `json:"phone,omitempty"`
	OriginalFileName     string    `json:"originalFileName"`
	FileType             string    `json:"fileType"`
	TotalExperienceYears float64   `json:"totalExperienceYears"`
	Skills               []string  `json:"skills"`
	UploadedAt           time.Time `json:"uploadedAt"`
}

type ResumeListResponse struct {
	Items []ResumeListItem `json:"items"`
	Meta  PageMeta         `json:"meta"`
}

func NewResumeListItem(r resume.Resume) ResumeListItem {
	skills := make([]string, 0, len(r.Extracted.Skills))
	for _, s := range r.Extracted.Skills {
		skills = append(skills, s.Name)
	}
	return ResumeListItem{
		ID:                   r.ID,
		CandidateName:        r.CandidateName,
		Email:                r.Email,
		Phone:                r.Phone,
		OriginalFileName:     r.OriginalFileName,
		FileType:             r.FileType,
		TotalExperienceYears: r.Extracted.TotalExperienceYears,
		Skills:               skills,
		UploadedAt:           r.UploadedAt,
	}
}

func NewResumeListResponse(items []resume.Resume, meta PageMeta) ResumeListResponse {
	out := make([]ResumeListItem, 0, len(items))
	for _, r := range items {
		out = append(out, NewResumeListItem(r))
	}
	return ResumeListResponse{Items: out, Meta: meta}
}

// ResumeDetail carries the full extracted profile but still hides raw text,
// which can run to hundreds of kilobytes.
type ResumeDetail struct {
	ID               uuid.UUID               `json:"id"`
	CandidateName    string                  `json:"candidateName"`
	Email            string                  `json:"email,omitempty"`
	Phone            string                  `json:"phone,omitempty"`
	OriginalFileName string                  `json:"originalFileName"`
	FileType         string                  `json:"fileType"`
	RawText          string                  `json:"rawText,omitempty"`
	Extracted        resume.ExtractedProfile `json:"extractedData"`
	Metadata         resume.Metadata         `json:"metadata"`
	UploadedAt       time.Time               `json:"uploadedAt"`
	IsActive         bool                    `json:"isActive"`
}

func NewResumeDetail(r resume.Resume) ResumeDetail {
	return ResumeDetail{
		ID:               r.ID,
		CandidateName:    r.CandidateName,
		Email:            r.Email,
		Phone:            r.Phone,
		OriginalFileName: r.OriginalFileName,
		FileType:         r.FileType,
		Extracted:        r.Extracted,
		Metadata:         r.Metadata,
		UploadedAt:       r.UploadedAt,
		IsActive:         r.IsActive,
	}
}
