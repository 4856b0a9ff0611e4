package app

import (
	"context"
	"log"
	"os"
	"time"

	"resume-screener/internal/config"
	"resume-screener/internal/database"
	"resume-screener/internal/database/migration"
	dbpostgres "resume-screener/internal/database/postgres"
	"resume-screener/internal/database/seeder"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/infrastructure/ai/gemini"
	"resume-screener/internal/infrastructure/cache"
	"resume-screener/internal/infrastructure/fetch"
	"resume-screener/internal/parser"
	"resume-screener/internal/pkg/jwt"
	"resume-screener/internal/repository"
	"resume-screener/internal/usecase"
	"resume-screener/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	AuthMW *middleware.AuthMiddleware

	AuthUC   usecase.AuthUsecase
	ResumeUC usecase.ResumeUsecase
	JobUC    usecase.JobUsecase
	MatchUC  usecase.MatchUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := seeder.New(db, logger).Run(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	assistant, err := gemini.NewClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	jwtSvc := jwt.NewHMACService(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn, cfg.Auth.RefreshExpiresIn)

	users := repository.NewPostgresUserRepository(db)
	resumes := repository.NewPostgresResumeRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	matches := repository.NewPostgresMatchRepository(db)

	hub := ws.NewHub(logger)
	notifier := ws.NewHubNotifier(hub)

	maxFileBytes := int64(cfg.Upload.MaxFileSizeMB) * 1024 * 1024

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		AuthMW: middleware.NewAuthMiddleware(jwtSvc),

		AuthUC:   usecase.NewAuthUsecase(users, jwtSvc),
		ResumeUC: usecase.NewResumeUsecase(resumes, parser.NewExtractor(), maxFileBytes, logger),
		JobUC:    usecase.NewJobUsecase(jobs, fetch.NewCollyFetcher(), logger),
		MatchUC: usecase.NewMatchUsecase(jobs, resumes, matches, assistant, redisCache,
			notifier, cfg.LLM.BulkMatchDelay, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
