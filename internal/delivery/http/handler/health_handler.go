package handler

import (
	"github.com/gofiber/fiber/v3"

	"resume-screener/internal/database"
	"resume-screener/internal/infrastructure/cache"
	"resume-screener/internal/pkg/response"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, redisCache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: redisCache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports component status. The cache is optional so a Redis outage
// degrades the report without failing the check.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	dbStatus := "ok"
	status := fiber.StatusOK
	if h.db == nil || h.db.Ping(c.Context()) != nil {
		dbStatus = "unreachable"
		status = fiber.StatusServiceUnavailable
	}

	cacheStatus := "ok"
	if h.cache == nil || h.cache.Ping(c.Context()) != nil {
		cacheStatus = "unreachable"
	}

	data := map[string]any{
		"database": dbStatus,
		"cache":    cacheStatus,
	}
	if status != fiber.StatusOK {
		return response.Error(c, status, "Service degraded", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
