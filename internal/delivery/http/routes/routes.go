package routes

import (
	"github.com/gofiber/fiber/v3"

	"resume-screener/internal/delivery/http/handler"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/ws"
)

type Registry struct {
	health  *handler.HealthHandler
	auth    *handler.AuthHandler
	resumes *handler.ResumeHandler
	jobs    *handler.JobHandler
	matches *handler.MatchHandler
	wsh     *ws.Handler

	authMW *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	resumes *handler.ResumeHandler,
	jobs *handler.JobHandler,
	matches *handler.MatchHandler,
	wsh *ws.Handler,
	authMW *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:  health,
		auth:    auth,
		resumes: resumes,
		jobs:    jobs,
		matches: matches,
		wsh:     wsh,
		authMW:  authMW,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/ws/matches", r.wsh.HandleMatchesWS)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.auth.RegisterRoutes(v1.Group("/auth"))

	authed := r.authMW.Middleware()
	admin := r.authMW.RequireAdmin()
	r.resumes.RegisterRoutes(v1.Group("/resumes", authed), admin)

	jobsGroup := v1.Group("/jobs", authed)
	r.jobs.RegisterRoutes(jobsGroup, admin)
	r.matches.RegisterJobRoutes(jobsGroup)

	r.matches.RegisterMatchRoutes(v1.Group("/matches", authed))
}
