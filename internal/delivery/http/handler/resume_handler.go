package handler

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-screener/internal/delivery/http/dto"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/pkg/response"
	"resume-screener/internal/usecase"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router, admin fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/", h.Upload)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/:id/reparse", h.Reparse)
	r.Delete("/:id", h.Delete, admin)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file field", nil, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable upload", nil, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable upload", nil, err)
	}

	res, err := h.uc.Upload(c.Context(), usecase.UploadResumeInput{
		FileName: fileHeader.Filename,
		FileType: fileTypeFromName(fileHeader.Filename),
		Data:     data,
	})
	if err != nil {
		return mapResumeUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewResumeDetail(res))
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	page := fiber.Query[int](c, "page", 1)
	limit := fiber.Query[int](c, "limit", 20)

	var skills []string
	if raw := strings.TrimSpace(c.Query("skills")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}

	items, total, err := h.uc.List(c.Context(), usecase.ListResumesInput{
		Search:        c.Query("search"),
		Skills:        skills,
		MinExperience: fiber.Query[float64](c, "minExperience", 0),
		MaxExperience: fiber.Query[float64](c, "maxExperience", 0),
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return mapResumeUsecaseError(err)
	}

	payload := dto.NewResumeListResponse(items, dto.NewPageMeta(page, limit, total))
	return response.Success(c, fiber.StatusOK, response.MessageOK, payload)
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, nil)
	}

	res, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapResumeUsecaseError(err)
	}

	detail := dto.NewResumeDetail(res)
	if fiber.Query[bool](c, "includeRawText", false) {
		detail.RawText = res.RawText
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, detail)
}

func (h *ResumeHandler) Reparse(c fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, nil)
	}

	res, err := h.uc.Reparse(c.Context(), id)
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeDetail(res))
}

func (h *ResumeHandler) Delete(c fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func parseIDParam(c fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

func fileTypeFromName(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 && idx < len(name)-1 {
		return strings.ToLower(name[idx+1:])
	}
	return ""
}

func mapResumeUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported file type, expected pdf or txt", nil, err)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, response.MessagePayloadTooLarge, nil, err)
	case errors.Is(err, usecase.ErrResumeUnparsable):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Resume could not be parsed", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
