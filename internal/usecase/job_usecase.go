package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/infrastructure/fetch"
	"resume-screener/internal/parser"
	"resume-screener/internal/repository"
)

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrJobPageFetch = errors.New("job page could not be fetched")
	ErrJobPageEmpty = errors.New("job page had no usable content")
)

type CreateJobInput struct {
	Title            string
	Company          string
	Department       string
	Location         string
	EmploymentType   string
	ExperienceLevel  string
	Description      string
	Requirements     job.Requirements
	Responsibilities []string
	CreatedBy        string
}

type ListJobsInput struct {
	Search          string
	ExperienceLevel string
	Page            int
	Limit           int
}

type JobUsecase interface {
	Create(ctx context.Context, in CreateJobInput) (job.Job, error)
	List(ctx context.Context, in ListJobsInput) ([]job.Job, int64, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	Update(ctx context.Context, id uuid.UUID, in CreateJobInput) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ImportFromURL(ctx context.Context, pageURL, createdBy string) (job.Job, error)
}

type Jobs struct {
	repo    repository.JobRepository
	fetcher fetch.PageFetcher
	logger  *log.Logger
	now     func() time.Time
}

func NewJobUsecase(repo repository.JobRepository, fetcher fetch.PageFetcher, logger *log.Logger) *Jobs {
	return &Jobs{repo: repo, fetcher: fetcher, logger: logger, now: time.Now}
}

func (u *Jobs) Create(ctx context.Context, in CreateJobInput) (job.Job, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return job.Job{}, ErrInvalidInput
	}

	j := job.Job{
		ID:               uuid.New(),
		Title:            strings.TrimSpace(in.Title),
		Company:          strings.TrimSpace(in.Company),
		Department:       in.Department,
		Location:         in.Location,
		EmploymentType:   in.EmploymentType,
		ExperienceLevel:  in.ExperienceLevel,
		Description:      in.Description,
		Requirements:     in.Requirements,
		Responsibilities: in.Responsibilities,
		IsActive:         true,
		CreatedBy:        in.CreatedBy,
		CreatedAt:        u.now().UTC(),
	}

	if err := u.repo.Create(ctx, j); err != nil {
		u.logger.Printf("Job create failed | title=%s error=%v", j.Title, err)
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) List(ctx context.Context, in ListJobsInput) ([]job.Job, int64, error) {
	filter := repository.JobListFilter{
		Search:          strings.TrimSpace(in.Search),
		ExperienceLevel: strings.TrimSpace(in.ExperienceLevel),
		ActiveOnly:      true,
		Limit:           in.Limit,
		Offset:          pageOffset(in.Page, in.Limit),
	}

	items, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, ErrInternal
	}
	total, err := u.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, ErrInternal
	}
	return items, total, nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) Update(ctx context.Context, id uuid.UUID, in CreateJobInput) (job.Job, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return job.Job{}, err
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return job.Job{}, ErrInvalidInput
	}

	existing.Title = strings.TrimSpace(in.Title)
	existing.Company = strings.TrimSpace(in.Company)
	existing.Department = in.Department
	existing.Location = in.Location
	existing.EmploymentType = in.EmploymentType
	existing.ExperienceLevel = in.ExperienceLevel
	existing.Description = in.Description
	existing.Requirements = in.Requirements
	existing.Responsibilities = in.Responsibilities

	if err := u.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return existing, nil
}

func (u *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	return nil
}

// ImportFromURL fetches a public posting page and drafts a job from it.
// Skills recognized in the page text become must-have requirements; the rest
// of the posting is left for the reviewer to fill in via Update.
func (u *Jobs) ImportFromURL(ctx context.Context, pageURL, createdBy string) (job.Job, error) {
	if strings.TrimSpace(pageURL) == "" {
		return job.Job{}, ErrInvalidInput
	}

	page, err := u.fetcher.FetchJobPage(ctx, pageURL)
	if err != nil {
		if errors.Is(err, fetch.ErrEmptyPage) {
			return job.Job{}, ErrJobPageEmpty
		}
		u.logger.Printf("Job import fetch failed | url=%s error=%v", pageURL, err)
		return job.Job{}, ErrJobPageFetch
	}

	description := truncateRunes(page.Description, 10000)
	skills := parser.ExtractSkills(parser.Normalize(description))
	required := make([]job.SkillRequirement, 0, len(skills))
	for _, s := range skills {
		required = append(required, job.SkillRequirement{
			Name:       s.Name,
			Category:   s.Category,
			Importance: job.ImportanceMustHave,
		})
	}

	j := job.Job{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(page.Title),
		Description: description,
		Requirements: job.Requirements{
			RequiredSkills:  required,
			PreferredSkills: []job.SkillRequirement{},
		},
		SourceURL: pageURL,
		IsActive:  true,
		CreatedBy: createdBy,
		CreatedAt: u.now().UTC(),
	}
	if j.Title == "" {
		j.Title = "Imported Job"
	}

	if err := u.repo.Create(ctx, j); err != nil {
		u.logger.Printf("Job import create failed | url=%s error=%v", pageURL, err)
		return job.Job{}, ErrInternal
	}

	u.logger.Printf("Job imported | id=%s url=%s skills=%d", j.ID, pageURL, len(required))
	return j, nil
}

func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
