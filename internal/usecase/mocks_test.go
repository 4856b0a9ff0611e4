package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/match"
	"resume-screener/internal/domain/resume"
	"resume-screener/internal/infrastructure/fetch"
	"resume-screener/internal/repository"
)

type mockResumeRepo struct {
	mu      sync.Mutex
	items   map[uuid.UUID]resume.Resume
	lastF   repository.ResumeListFilter
	failAll bool
}

func newMockResumeRepo() *mockResumeRepo {
	return &mockResumeRepo{items: map[uuid.UUID]resume.Resume{}}
}

func (m *mockResumeRepo) Create(_ context.Context, r resume.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("create failed")
	}
	m.items[r.ID] = r
	return nil
}

func (m *mockResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return resume.Resume{}, repository.ErrResumeNotFound
	}
	return r, nil
}

func (m *mockResumeRepo) List(_ context.Context, f repository.ResumeListFilter) ([]resume.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastF = f
	out := make([]resume.Resume, 0, len(m.items))
	for _, r := range m.items {
		if f.ActiveOnly && !r.IsActive {
			continue
		}
		out = append(out, r)
	}
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *mockResumeRepo) Count(_ context.Context, _ repository.ResumeListFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

func (m *mockResumeRepo) UpdateExtracted(_ context.Context, r resume.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[r.ID]; !ok {
		return repository.ErrResumeNotFound
	}
	m.items[r.ID] = r
	return nil
}

func (m *mockResumeRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return repository.ErrResumeNotFound
	}
	delete(m.items, id)
	return nil
}

type mockJobRepo struct {
	items map[uuid.UUID]job.Job
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{items: map[uuid.UUID]job.Job{}}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	m.items[j.ID] = j
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.items[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) List(_ context.Context, _ repository.JobListFilter) ([]job.Job, error) {
	out := make([]job.Job, 0, len(m.items))
	for _, j := range m.items {
		out = append(out, j)
	}
	return out, nil
}

func (m *mockJobRepo) Count(_ context.Context, _ repository.JobListFilter) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) error {
	if _, ok := m.items[j.ID]; !ok {
		return repository.ErrJobNotFound
	}
	m.items[j.ID] = j
	return nil
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrJobNotFound
	}
	delete(m.items, id)
	return nil
}

type matchKey struct {
	jobID    uuid.UUID
	resumeID uuid.UUID
}

type mockMatchRepo struct {
	mu      sync.Mutex
	items   map[matchKey]match.Result
	upserts int
}

func newMockMatchRepo() *mockMatchRepo {
	return &mockMatchRepo{items: map[matchKey]match.Result{}}
}

func (m *mockMatchRepo) Upsert(_ context.Context, r match.Result) (match.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	key := matchKey{jobID: r.JobID, resumeID: r.ResumeID}
	if existing, ok := m.items[key]; ok {
		r.ID = existing.ID
	} else if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	m.items[key] = r
	return r, nil
}

func (m *mockMatchRepo) GetByID(_ context.Context, id uuid.UUID) (match.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.items {
		if r.ID == id {
			return r, nil
		}
	}
	return match.Result{}, repository.ErrMatchNotFound
}

func (m *mockMatchRepo) GetByJobAndResume(_ context.Context, jobID, resumeID uuid.UUID) (match.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[matchKey{jobID: jobID, resumeID: resumeID}]
	if !ok {
		return match.Result{}, repository.ErrMatchNotFound
	}
	return r, nil
}

func (m *mockMatchRepo) ListByJob(_ context.Context, f repository.MatchListFilter) ([]match.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]match.Result, 0, len(m.items))
	for key, r := range m.items {
		if key.jobID != f.JobID {
			continue
		}
		if f.ShortlistedOnly && !r.IsShortlisted {
			continue
		}
		if r.OverallScore < f.MinScore {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockMatchRepo) ListByResume(_ context.Context, resumeID uuid.UUID) ([]match.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]match.Result, 0)
	for key, r := range m.items {
		if key.resumeID == resumeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockMatchRepo) SetShortlisted(_ context.Context, id uuid.UUID, shortlisted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, r := range m.items {
		if r.ID == id {
			r.IsShortlisted = shortlisted
			m.items[key] = r
			return nil
		}
	}
	return repository.ErrMatchNotFound
}

func (m *mockMatchRepo) DeleteByJob(_ context.Context, jobID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for key := range m.items {
		if key.jobID == jobID {
			delete(m.items, key)
			n++
		}
	}
	return n, nil
}

func (m *mockMatchRepo) StatsByJob(_ context.Context, jobID uuid.UUID) (repository.MatchStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := repository.MatchStats{StatusCounts: map[string]int64{}}
	for key, r := range m.items {
		if key.jobID != jobID {
			continue
		}
		stats.TotalMatches++
		if r.IsShortlisted {
			stats.Shortlisted++
		}
		stats.StatusCounts[r.Status]++
	}
	return stats, nil
}

// fakeAssistant returns a canned response and can be told to fail for
// specific prompts by substring.
type fakeAssistant struct {
	mu       sync.Mutex
	response string
	failOn   string
	calls    int
}

func (f *fakeAssistant) Generate(_ context.Context, _, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failOn != "" && strings.Contains(userPrompt, f.failOn) {
		return "", errors.New("assistant timeout")
	}
	return f.response, nil
}

type progressEvent struct {
	processed    int
	total        int
	matchesFound int
	errorCount   int
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []progressEvent
}

func (f *fakeNotifier) NotifyMatchProgress(_ uuid.UUID, processed, total, matchesFound, errorCount int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, progressEvent{
		processed:    processed,
		total:        total,
		matchesFound: matchesFound,
		errorCount:   errorCount,
	})
}

type fakeFetcher struct {
	page fetch.JobPage
	err  error
}

func (f *fakeFetcher) FetchJobPage(_ context.Context, _ string) (fetch.JobPage, error) {
	if f.err != nil {
		return fetch.JobPage{}, f.err
	}
	return f.page, nil
}
