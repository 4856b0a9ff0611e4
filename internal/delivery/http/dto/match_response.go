package dto

import (
	"github.com/google/uuid"

	"resume-screener/internal/domain/match"
)

type MatchRequest struct {
	ResumeID       uuid.UUID `json:"resumeId"`
	ForceReprocess bool      `json:"forceReprocess"`
}

type BulkMatchRequest struct {
	ForceReprocess bool `json:"forceReprocess"`
}

type ShortlistRequest struct {
	IsShortlisted bool `json:"isShortlisted"`
}

type MatchListResponse struct {
	JobID uuid.UUID      `json:"jobId"`
	Items []match.Result `json:"items"`
}

type SkillGapResponse struct {
	JobID    uuid.UUID `json:"jobId"`
	ResumeID uuid.UUID `json:"resumeId"`
	Analysis string    `json:"analysis"`
}
