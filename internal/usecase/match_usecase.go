package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/match"
	"resume-screener/internal/domain/resume"
	"resume-screener/internal/domain/scoring"
	"resume-screener/internal/infrastructure/cache"
	"resume-screener/internal/llm"
	"resume-screener/internal/repository"
	"resume-screener/internal/ws"
)

var (
	ErrMatchNotFound       = errors.New("match not found")
	ErrAssistantFailed     = errors.New("assistant request failed")
	ErrBulkMatchInProgress = errors.New("bulk match already in progress")
)

const (
	bulkMatchLockTTL = 10 * time.Minute
	statsCacheTTL    = 5 * time.Minute
	matchPageSize    = 100
)

type BulkMatchError struct {
	ResumeID uuid.UUID `json:"resumeId"`
	Message  string    `json:"message"`
}

// BulkMatchSummary reports one bulk run. A run always completes the batch;
// per-resume failures are collected here instead of aborting it.
type BulkMatchSummary struct {
	JobID          uuid.UUID        `json:"jobId"`
	ProcessedCount int              `json:"processedCount"`
	MatchesFound   int              `json:"matchesFound"`
	SkippedCount   int              `json:"skippedCount"`
	ErrorCount     int              `json:"errorCount"`
	Errors         []BulkMatchError `json:"errors"`
}

type MatchResultsInput struct {
	JobID           uuid.UUID
	ShortlistedOnly bool
	MinScore        float64
	Page            int
	Limit           int
}

type MatchUsecase interface {
	MatchOne(ctx context.Context, jobID, resumeID uuid.UUID, force bool) (match.Result, error)
	MatchAll(ctx context.Context, jobID uuid.UUID, force bool) (BulkMatchSummary, error)
	ResultsForJob(ctx context.Context, in MatchResultsInput) ([]match.Result, error)
	ResultsForResume(ctx context.Context, resumeID uuid.UUID) ([]match.Result, error)
	SetShortlist(ctx context.Context, id uuid.UUID, shortlisted bool) (match.Result, error)
	Stats(ctx context.Context, jobID uuid.UUID) (repository.MatchStats, error)
	SkillGap(ctx context.Context, jobID, resumeID uuid.UUID) (string, error)
}

type Matches struct {
	jobs      repository.JobRepository
	resumes   repository.ResumeRepository
	matches   repository.MatchRepository
	assistant llm.Assistant
	cache     *cache.Redis
	notifier  ws.Notifier
	delay     time.Duration
	logger    *log.Logger
	now       func() time.Time
}

func NewMatchUsecase(
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	matches repository.MatchRepository,
	assistant llm.Assistant,
	redisCache *cache.Redis,
	notifier ws.Notifier,
	delay time.Duration,
	logger *log.Logger,
) *Matches {
	return &Matches{
		jobs:      jobs,
		resumes:   resumes,
		matches:   matches,
		assistant: assistant,
		cache:     redisCache,
		notifier:  notifier,
		delay:     delay,
		logger:    logger,
		now:       time.Now,
	}
}

// MatchOne evaluates one resume against one job. An existing result is
// returned as-is unless force is set, in which case it is recomputed and
// overwritten in place.
func (u *Matches) MatchOne(ctx context.Context, jobID, resumeID uuid.UUID, force bool) (match.Result, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return match.Result{}, ErrJobNotFound
		}
		return match.Result{}, ErrInternal
	}

	res, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return match.Result{}, ErrResumeNotFound
		}
		return match.Result{}, ErrInternal
	}

	if !force {
		existing, err := u.matches.GetByJobAndResume(ctx, jobID, resumeID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrMatchNotFound) {
			return match.Result{}, ErrInternal
		}
	}

	result, err := u.evaluate(ctx, j.ID, res, j)
	if err != nil {
		return match.Result{}, err
	}

	u.invalidateStats(ctx, jobID)
	return result, nil
}

// MatchAll runs every active resume against the job sequentially, pausing
// between assistant calls to respect provider rate limits. Concurrent runs
// for the same job are rejected via a cache lock.
func (u *Matches) MatchAll(ctx context.Context, jobID uuid.UUID, force bool) (BulkMatchSummary, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return BulkMatchSummary{}, ErrJobNotFound
		}
		return BulkMatchSummary{}, ErrInternal
	}

	lockKey := bulkMatchLockKey(jobID)
	acquired, err := u.cache.SetIfNotExists(ctx, lockKey, u.now().UTC().Format(time.RFC3339), bulkMatchLockTTL)
	if err == nil && !acquired {
		return BulkMatchSummary{}, ErrBulkMatchInProgress
	}
	defer func() {
		_ = u.cache.Delete(context.WithoutCancel(ctx), lockKey)
	}()

	candidates, err := u.listActiveResumes(ctx)
	if err != nil {
		return BulkMatchSummary{}, ErrInternal
	}

	summary := BulkMatchSummary{JobID: jobID, Errors: []BulkMatchError{}}
	total := len(candidates)
	u.logger.Printf("Bulk match started | job_id=%s candidates=%d force=%t", jobID, total, force)

	for i, res := range candidates {
		if ctx.Err() != nil {
			u.logger.Printf("Bulk match cancelled | job_id=%s processed=%d", jobID, summary.ProcessedCount)
			break
		}

		if !force {
			if _, err := u.matches.GetByJobAndResume(ctx, jobID, res.ID); err == nil {
				summary.SkippedCount++
				u.notifyProgress(jobID, i+1, total, &summary)
				continue
			}
		}

		summary.ProcessedCount++
		if _, err := u.evaluate(ctx, jobID, res, j); err != nil {
			summary.ErrorCount++
			summary.Errors = append(summary.Errors, BulkMatchError{
				ResumeID: res.ID,
				Message:  err.Error(),
			})
			u.logger.Printf("Bulk match item failed | job_id=%s resume_id=%s error=%v", jobID, res.ID, err)
		} else {
			summary.MatchesFound++
		}

		u.notifyProgress(jobID, i+1, total, &summary)

		if u.delay > 0 && i < total-1 {
			select {
			case <-time.After(u.delay):
			case <-ctx.Done():
			}
		}
	}

	u.invalidateStats(ctx, jobID)
	u.logger.Printf("Bulk match finished | job_id=%s processed=%d matched=%d skipped=%d errors=%d",
		jobID, summary.ProcessedCount, summary.MatchesFound, summary.SkippedCount, summary.ErrorCount)
	return summary, nil
}

func (u *Matches) ResultsForJob(ctx context.Context, in MatchResultsInput) ([]match.Result, error) {
	if _, err := u.jobs.GetByID(ctx, in.JobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	results, err := u.matches.ListByJob(ctx, repository.MatchListFilter{
		JobID:           in.JobID,
		ShortlistedOnly: in.ShortlistedOnly,
		MinScore:        in.MinScore,
		Limit:           in.Limit,
		Offset:          pageOffset(in.Page, in.Limit),
	})
	if err != nil {
		return nil, ErrInternal
	}
	return results, nil
}

func (u *Matches) ResultsForResume(ctx context.Context, resumeID uuid.UUID) ([]match.Result, error) {
	if _, err := u.resumes.GetByID(ctx, resumeID); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, ErrInternal
	}

	results, err := u.matches.ListByResume(ctx, resumeID)
	if err != nil {
		return nil, ErrInternal
	}
	return results, nil
}

// SetShortlist overrides the automatic shortlist decision for one match.
func (u *Matches) SetShortlist(ctx context.Context, id uuid.UUID, shortlisted bool) (match.Result, error) {
	if err := u.matches.SetShortlisted(ctx, id, shortlisted); err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return match.Result{}, ErrMatchNotFound
		}
		return match.Result{}, ErrInternal
	}

	updated, err := u.matches.GetByID(ctx, id)
	if err != nil {
		return match.Result{}, ErrInternal
	}

	u.invalidateStats(ctx, updated.JobID)
	return updated, nil
}

func (u *Matches) Stats(ctx context.Context, jobID uuid.UUID) (repository.MatchStats, error) {
	key := statsCacheKey(jobID)
	var cached repository.MatchStats
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.MatchStats{}, ErrJobNotFound
		}
		return repository.MatchStats{}, ErrInternal
	}

	stats, err := u.matches.StatsByJob(ctx, jobID)
	if err != nil {
		return repository.MatchStats{}, ErrInternal
	}

	_ = u.cache.SetJSON(ctx, key, stats, statsCacheTTL)
	return stats, nil
}

// SkillGap asks the assistant for learning recommendations over the gap
// between one candidate's skills and the job's requirements. The response is
// returned verbatim and not persisted.
func (u *Matches) SkillGap(ctx context.Context, jobID, resumeID uuid.UUID) (string, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return "", ErrJobNotFound
		}
		return "", ErrInternal
	}

	res, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return "", ErrResumeNotFound
		}
		return "", ErrInternal
	}

	prompt := llm.BuildSkillGapPrompt(res.Extracted.Skills, j.Requirements.RequiredSkills)
	analysis, err := u.assistant.Generate(ctx, llm.SkillGapSystemPrompt, prompt)
	if err != nil {
		u.logger.Printf("Skill gap generation failed | job_id=%s resume_id=%s error=%v", jobID, resumeID, err)
		return "", ErrAssistantFailed
	}
	return analysis, nil
}

// evaluate performs the full scoring of one resume against one job: assistant
// verdict, deterministic detail scoring, policy decision, upsert.
func (u *Matches) evaluate(ctx context.Context, jobID uuid.UUID, res resume.Resume, j job.Job) (match.Result, error) {
	prompt := llm.BuildComparisonPrompt(res, j)
	raw, err := u.assistant.Generate(ctx, llm.SystemPrompt, prompt)
	if err != nil {
		return match.Result{}, fmt.Errorf("%w: %v", ErrAssistantFailed, err)
	}

	verdict := llm.ParseResponse(raw, prompt)
	detailed := scoring.Calculate(res.Extracted, j.Requirements)
	status := match.DetermineStatus(verdict.OverallScore)

	result := match.Result{
		JobID:         jobID,
		ResumeID:      res.ID,
		OverallScore:  verdict.OverallScore,
		Detailed:      detailed,
		Analysis:      verdict,
		Status:        status,
		IsShortlisted: match.ShouldShortlist(verdict.OverallScore, status),
		MatchedAt:     u.now().UTC(),
	}

	stored, err := u.matches.Upsert(ctx, result)
	if err != nil {
		return match.Result{}, fmt.Errorf("persist match: %w", err)
	}
	return stored, nil
}

func (u *Matches) listActiveResumes(ctx context.Context) ([]resume.Resume, error) {
	var all []resume.Resume
	for offset := 0; ; offset += matchPageSize {
		page, err := u.resumes.List(ctx, repository.ResumeListFilter{
			ActiveOnly: true,
			Limit:      matchPageSize,
			Offset:     offset,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < matchPageSize {
			return all, nil
		}
	}
}

func (u *Matches) notifyProgress(jobID uuid.UUID, processed, total int, s *BulkMatchSummary) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyMatchProgress(jobID, processed, total, s.MatchesFound, s.ErrorCount)
}

func (u *Matches) invalidateStats(ctx context.Context, jobID uuid.UUID) {
	_ = u.cache.Delete(ctx, statsCacheKey(jobID))
}

func bulkMatchLockKey(jobID uuid.UUID) string {
	return "match:bulk:lock:" + jobID.String()
}

func statsCacheKey(jobID uuid.UUID) string {
	return "match:stats:" + jobID.String()
}
