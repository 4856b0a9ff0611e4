package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"resume-screener/internal/delivery/http/dto"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/pkg/response"
	"resume-screener/internal/usecase"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router, admin fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Post("/import", h.Import)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete, admin)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Create(c.Context(), createJobInput(req, userEmailFromCtx(c)))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, j)
}

func (h *JobHandler) Import(c fiber.Ctx) error {
	var req dto.ImportJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.ImportFromURL(c.Context(), req.URL, userEmailFromCtx(c))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, j)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	page := fiber.Query[int](c, "page", 1)
	limit := fiber.Query[int](c, "limit", 20)

	items, total, err := h.uc.List(c.Context(), usecase.ListJobsInput{
		Search:          c.Query("search"),
		ExperienceLevel: c.Query("experienceLevel"),
		Page:            page,
		Limit:           limit,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	payload := dto.JobListResponse{Items: items, Meta: dto.NewPageMeta(page, limit, total)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, payload)
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Update(c.Context(), id, createJobInput(req, ""))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func createJobInput(req dto.CreateJobRequest, createdBy string) usecase.CreateJobInput {
	return usecase.CreateJobInput{
		Title:            req.Title,
		Company:          req.Company,
		Department:       req.Department,
		Location:         req.Location,
		EmploymentType:   req.EmploymentType,
		ExperienceLevel:  req.ExperienceLevel,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		CreatedBy:        createdBy,
	}
}

func userEmailFromCtx(c fiber.Ctx) string {
	if email, ok := c.Locals(middleware.CtxEmailKey).(string); ok {
		return email
	}
	return ""
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrJobPageEmpty):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Job page had no usable content", nil, err)
	case errors.Is(err, usecase.ErrJobPageFetch):
		return middleware.NewAppError(fiber.StatusBadGateway, "Job page could not be fetched", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
