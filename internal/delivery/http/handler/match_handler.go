package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-screener/internal/delivery/http/dto"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/pkg/response"
	"resume-screener/internal/usecase"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

// RegisterJobRoutes mounts the match operations that hang off a job.
func (h *MatchHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/match", h.MatchOne)
	r.Post("/:id/match-all", h.MatchAll)
	r.Get("/:id/matches", h.ResultsForJob)
	r.Get("/:id/matches/stats", h.Stats)
	r.Get("/:id/skill-gap/:resumeId", h.SkillGap)
}

// RegisterMatchRoutes mounts the operations addressed by match id or resume.
func (h *MatchHandler) RegisterMatchRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/:id/shortlist", h.SetShortlist)
	r.Get("/resume/:resumeId", h.ResultsForResume)
}

func (h *MatchHandler) MatchOne(c fiber.Ctx) error {
	jobID, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.ResumeID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "resumeId is required", nil, nil)
	}

	result, err := h.uc.MatchOne(c.Context(), jobID, req.ResumeID, req.ForceReprocess)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *MatchHandler) MatchAll(c fiber.Ctx) error {
	jobID, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	var req dto.BulkMatchRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	summary, err := h.uc.MatchAll(c.Context(), jobID, req.ForceReprocess)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}

func (h *MatchHandler) ResultsForJob(c fiber.Ctx) error {
	jobID, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	results, err := h.uc.ResultsForJob(c.Context(), usecase.MatchResultsInput{
		JobID:           jobID,
		ShortlistedOnly: fiber.Query[bool](c, "shortlisted", false),
		MinScore:        fiber.Query[float64](c, "minScore", 0),
		Page:            fiber.Query[int](c, "page", 1),
		Limit:           fiber.Query[int](c, "limit", 20),
	})
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	payload := dto.MatchListResponse{JobID: jobID, Items: results}
	return response.Success(c, fiber.StatusOK, response.MessageOK, payload)
}

func (h *MatchHandler) ResultsForResume(c fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("resumeId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	results, err := h.uc.ResultsForResume(c.Context(), resumeID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, results)
}

func (h *MatchHandler) SetShortlist(c fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match id", nil, nil)
	}

	var req dto.ShortlistRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.SetShortlist(c.Context(), id, req.IsShortlisted)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *MatchHandler) Stats(c fiber.Ctx) error {
	jobID, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	stats, err := h.uc.Stats(c.Context(), jobID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}

func (h *MatchHandler) SkillGap(c fiber.Ctx) error {
	jobID, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}
	resumeID, err := uuid.Parse(c.Params("resumeId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	analysis, err := h.uc.SkillGap(c.Context(), jobID, resumeID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	payload := dto.SkillGapResponse{JobID: jobID, ResumeID: resumeID, Analysis: analysis}
	return response.Success(c, fiber.StatusOK, response.MessageOK, payload)
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, usecase.ErrBulkMatchInProgress):
		return middleware.NewAppError(fiber.StatusConflict, "Bulk match already in progress for this job", nil, err)
	case errors.Is(err, usecase.ErrAssistantFailed):
		return middleware.NewAppError(fiber.StatusBadGateway, "Analysis service unavailable", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
