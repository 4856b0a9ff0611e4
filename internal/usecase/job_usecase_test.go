package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/infrastructure/fetch"
)

func newTestJobUsecase(repo *mockJobRepo, fetcher *fakeFetcher) *Jobs {
	if fetcher == nil {
		fetcher = &fakeFetcher{}
	}
	return NewJobUsecase(repo, fetcher, testLogger())
}

func TestCreateJobRequiresTitleAndDescription(t *testing.T) {
	uc := newTestJobUsecase(newMockJobRepo(), nil)

	_, err := uc.Create(context.Background(), CreateJobInput{Title: "  ", Description: "something"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	_, err = uc.Create(context.Background(), CreateJobInput{Title: "Backend Engineer", Description: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateJobPersistsActiveJob(t *testing.T) {
	repo := newMockJobRepo()
	uc := newTestJobUsecase(repo, nil)

	j, err := uc.Create(context.Background(), CreateJobInput{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Build services",
		Requirements: job.Requirements{
			RequiredSkills:    []job.SkillRequirement{{Name: "Go", Importance: job.ImportanceMustHave}},
			MinimumExperience: 3,
		},
		CreatedBy: "hr@acme.test",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !j.IsActive {
		t.Fatalf("expected active job")
	}
	stored, ok := repo.items[j.ID]
	if !ok {
		t.Fatalf("job not persisted")
	}
	if stored.CreatedBy != "hr@acme.test" {
		t.Fatalf("createdBy = %q", stored.CreatedBy)
	}
}

func TestUpdateJobUnknownID(t *testing.T) {
	uc := newTestJobUsecase(newMockJobRepo(), nil)

	_, err := uc.Update(context.Background(), uuid.New(), CreateJobInput{Title: "T", Description: "D"})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
}

func TestImportFromURLDraftsJobWithExtractedSkills(t *testing.T) {
	repo := newMockJobRepo()
	fetcher := &fakeFetcher{page: fetch.JobPage{
		URL:         "https://jobs.example.com/backend",
		Title:       "Senior Backend Engineer",
		Description: "We build services in Go and Python on Kubernetes with PostgreSQL.",
	}}
	uc := newTestJobUsecase(repo, fetcher)

	j, err := uc.ImportFromURL(context.Background(), "https://jobs.example.com/backend", "hr@acme.test")
	if err != nil {
		t.Fatalf("ImportFromURL: %v", err)
	}

	if j.Title != "Senior Backend Engineer" {
		t.Fatalf("title = %q", j.Title)
	}
	if j.SourceURL != "https://jobs.example.com/backend" {
		t.Fatalf("sourceURL = %q", j.SourceURL)
	}

	names := make(map[string]string, len(j.Requirements.RequiredSkills))
	for _, s := range j.Requirements.RequiredSkills {
		names[s.Name] = s.Importance
	}
	for _, want := range []string{"Go", "Python", "Kubernetes", "Postgresql"} {
		if names[want] != job.ImportanceMustHave {
			t.Fatalf("skill %s = %q, want must-have (got %v)", want, names[want], names)
		}
	}
	if _, ok := repo.items[j.ID]; !ok {
		t.Fatalf("imported job not persisted")
	}
}

func TestImportFromURLEmptyPage(t *testing.T) {
	fetcher := &fakeFetcher{err: fetch.ErrEmptyPage}
	uc := newTestJobUsecase(newMockJobRepo(), fetcher)

	_, err := uc.ImportFromURL(context.Background(), "https://jobs.example.com/gone", "")
	if !errors.Is(err, ErrJobPageEmpty) {
		t.Fatalf("err = %v, want ErrJobPageEmpty", err)
	}
}

func TestImportFromURLFallbackTitle(t *testing.T) {
	fetcher := &fakeFetcher{page: fetch.JobPage{
		URL:         "https://jobs.example.com/untitled",
		Description: "Maintain legacy systems.",
	}}
	uc := newTestJobUsecase(newMockJobRepo(), fetcher)

	j, err := uc.ImportFromURL(context.Background(), "https://jobs.example.com/untitled", "")
	if err != nil {
		t.Fatalf("ImportFromURL: %v", err)
	}
	if j.Title != "Imported Job" {
		t.Fatalf("title = %q, want Imported Job", j.Title)
	}
}
