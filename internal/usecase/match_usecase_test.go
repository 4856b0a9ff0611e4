package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/resume"
)

const goodVerdict = `{
	"overallScore": 8,
	"skillsScore": 8,
	"experienceScore": 7,
	"educationScore": 8,
	"reasoning": "Strong alignment with the role.",
	"strengths": ["Go expertise"],
	"weaknesses": [],
	"recommendations": ["Proceed to interview"],
	"matchedSkills": ["Go"],
	"missingSkills": [],
	"experienceHighlights": ["Backend services"],
	"riskFactors": []
}`

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func seedJob(jobs *mockJobRepo) job.Job {
	j := job.Job{
		ID:    uuid.New(),
		Title: "Backend Engineer",
		Requirements: job.Requirements{
			RequiredSkills:    []job.SkillRequirement{{Name: "Go"}},
			MinimumExperience: 3,
		},
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	jobs.items[j.ID] = j
	return j
}

func seedResume(resumes *mockResumeRepo, name string) resume.Resume {
	r := resume.Resume{
		ID:            uuid.New(),
		CandidateName: name,
		IsActive:      true,
		Extracted: resume.ExtractedProfile{
			Name:                 name,
			Skills:               []resume.Skill{{Name: "Go", Category: resume.CategoryTechnical, ProficiencyLevel: resume.ProficiencyAdvanced}},
			TotalExperienceYears: 4,
		},
	}
	resumes.items[r.ID] = r
	return r
}

func newTestMatchUsecase(jobs *mockJobRepo, resumes *mockResumeRepo, matches *mockMatchRepo, assistant *fakeAssistant, notifier *fakeNotifier) *Matches {
	return NewMatchUsecase(jobs, resumes, matches, assistant, nil, notifier, 0, testLogger())
}

func TestMatchOneStoresVerdictAndDecision(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	matches := newMockMatchRepo()
	assistant := &fakeAssistant{response: goodVerdict}

	j := seedJob(jobs)
	r := seedResume(resumes, "Jane Doe")

	uc := newTestMatchUsecase(jobs, resumes, matches, assistant, &fakeNotifier{})
	result, err := uc.MatchOne(context.Background(), j.ID, r.ID, false)
	if err != nil {
		t.Fatalf("MatchOne: %v", err)
	}

	if result.OverallScore != 8 {
		t.Fatalf("overall score = %v, want 8", result.OverallScore)
	}
	if result.Status != "good" {
		t.Fatalf("status = %q, want good", result.Status)
	}
	if !result.IsShortlisted {
		t.Fatalf("expected shortlisted")
	}
	if result.Detailed.SkillsMatch.Score != 10 {
		t.Fatalf("skills match score = %v, want 10", result.Detailed.SkillsMatch.Score)
	}
	if result.ID == uuid.Nil {
		t.Fatalf("expected persisted id")
	}
}

func TestMatchOneReturnsExistingWithoutForce(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	matches := newMockMatchRepo()
	assistant := &fakeAssistant{response: goodVerdict}

	j := seedJob(jobs)
	r := seedResume(resumes, "Jane Doe")

	uc := newTestMatchUsecase(jobs, resumes, matches, assistant, &fakeNotifier{})
	first, err := uc.MatchOne(context.Background(), j.ID, r.ID, false)
	if err != nil {
		t.Fatalf("first MatchOne: %v", err)
	}

	second, err := uc.MatchOne(context.Background(), j.ID, r.ID, false)
	if err != nil {
		t.Fatalf("second MatchOne: %v", err)
	}

	if assistant.calls != 1 {
		t.Fatalf("assistant calls = %d, want 1", assistant.calls)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same result id on repeat")
	}
}

func TestMatchOneForceRecomputes(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	matches := newMockMatchRepo()
	assistant := &fakeAssistant{response: goodVerdict}

	j := seedJob(jobs)
	r := seedResume(resumes, "Jane Doe")

	uc := newTestMatchUsecase(jobs, resumes, matches, assistant, &fakeNotifier{})
	if _, err := uc.MatchOne(context.Background(), j.ID, r.ID, false); err != nil {
		t.Fatalf("first MatchOne: %v", err)
	}
	if _, err := uc.MatchOne(context.Background(), j.ID, r.ID, true); err != nil {
		t.Fatalf("forced MatchOne: %v", err)
	}

	if assistant.calls != 2 {
		t.Fatalf("assistant calls = %d, want 2", assistant.calls)
	}
	if matches.upserts != 2 {
		t.Fatalf("upserts = %d, want 2", matches.upserts)
	}
	if len(matches.items) != 1 {
		t.Fatalf("stored results = %d, want 1", len(matches.items))
	}
}

func TestMatchOneUnknownJob(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	r := seedResume(resumes, "Jane Doe")

	uc := newTestMatchUsecase(jobs, resumes, newMockMatchRepo(), &fakeAssistant{response: goodVerdict}, &fakeNotifier{})
	_, err := uc.MatchOne(context.Background(), uuid.New(), r.ID, false)
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
}

func TestMatchAllCompletesDespiteFailures(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	matches := newMockMatchRepo()
	notifier := &fakeNotifier{}
	assistant := &fakeAssistant{response: goodVerdict, failOn: "Flaky Candidate"}

	j := seedJob(jobs)
	seedResume(resumes, "Jane Doe")
	seedResume(resumes, "John Smith")
	failing := seedResume(resumes, "Flaky Candidate")

	uc := newTestMatchUsecase(jobs, resumes, matches, assistant, notifier)
	summary, err := uc.MatchAll(context.Background(), j.ID, false)
	if err != nil {
		t.Fatalf("MatchAll: %v", err)
	}

	if summary.ProcessedCount != 3 {
		t.Fatalf("processed = %d, want 3", summary.ProcessedCount)
	}
	if summary.MatchesFound != 2 {
		t.Fatalf("matched = %d, want 2", summary.MatchesFound)
	}
	if summary.ErrorCount != 1 {
		t.Fatalf("errors = %d, want 1", summary.ErrorCount)
	}
	if len(summary.Errors) != 1 || summary.Errors[0].ResumeID != failing.ID {
		t.Fatalf("error detail = %+v, want failure for %s", summary.Errors, failing.ID)
	}
	if len(matches.items) != 2 {
		t.Fatalf("stored results = %d, want 2", len(matches.items))
	}
	if len(notifier.events) != 3 {
		t.Fatalf("progress events = %d, want 3", len(notifier.events))
	}
	last := notifier.events[len(notifier.events)-1]
	if last.processed != 3 || last.total != 3 {
		t.Fatalf("final progress = %+v, want processed=3 total=3", last)
	}
}

func TestMatchAllSkipsExistingWithoutForce(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	matches := newMockMatchRepo()
	assistant := &fakeAssistant{response: goodVerdict}

	j := seedJob(jobs)
	existing := seedResume(resumes, "Jane Doe")
	seedResume(resumes, "John Smith")

	uc := newTestMatchUsecase(jobs, resumes, matches, assistant, &fakeNotifier{})
	if _, err := uc.MatchOne(context.Background(), j.ID, existing.ID, false); err != nil {
		t.Fatalf("seed MatchOne: %v", err)
	}

	summary, err := uc.MatchAll(context.Background(), j.ID, false)
	if err != nil {
		t.Fatalf("MatchAll: %v", err)
	}

	if summary.SkippedCount != 1 {
		t.Fatalf("skipped = %d, want 1", summary.SkippedCount)
	}
	if summary.ProcessedCount != 1 {
		t.Fatalf("processed = %d, want 1", summary.ProcessedCount)
	}
	if assistant.calls != 2 {
		t.Fatalf("assistant calls = %d, want 2", assistant.calls)
	}
}

func TestMatchAllForceReprocessesEverything(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	matches := newMockMatchRepo()
	assistant := &fakeAssistant{response: goodVerdict}

	j := seedJob(jobs)
	existing := seedResume(resumes, "Jane Doe")
	seedResume(resumes, "John Smith")

	uc := newTestMatchUsecase(jobs, resumes, matches, assistant, &fakeNotifier{})
	if _, err := uc.MatchOne(context.Background(), j.ID, existing.ID, false); err != nil {
		t.Fatalf("seed MatchOne: %v", err)
	}

	summary, err := uc.MatchAll(context.Background(), j.ID, true)
	if err != nil {
		t.Fatalf("MatchAll: %v", err)
	}

	if summary.ProcessedCount != 2 {
		t.Fatalf("processed = %d, want 2", summary.ProcessedCount)
	}
	if summary.SkippedCount != 0 {
		t.Fatalf("skipped = %d, want 0", summary.SkippedCount)
	}
	if len(matches.items) != 2 {
		t.Fatalf("stored results = %d, want 2", len(matches.items))
	}
}

func TestSetShortlistOverridesDecision(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	matches := newMockMatchRepo()

	j := seedJob(jobs)
	r := seedResume(resumes, "Jane Doe")

	uc := newTestMatchUsecase(jobs, resumes, matches, &fakeAssistant{response: goodVerdict}, &fakeNotifier{})
	result, err := uc.MatchOne(context.Background(), j.ID, r.ID, false)
	if err != nil {
		t.Fatalf("MatchOne: %v", err)
	}
	if !result.IsShortlisted {
		t.Fatalf("precondition: expected shortlisted")
	}

	updated, err := uc.SetShortlist(context.Background(), result.ID, false)
	if err != nil {
		t.Fatalf("SetShortlist: %v", err)
	}
	if updated.IsShortlisted {
		t.Fatalf("expected shortlist override to false")
	}
}

func TestSkillGapReturnsAnalysis(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()

	j := seedJob(jobs)
	r := seedResume(resumes, "Jane Doe")

	assistant := &fakeAssistant{response: "Focus on Kubernetes fundamentals."}
	uc := newTestMatchUsecase(jobs, resumes, newMockMatchRepo(), assistant, &fakeNotifier{})

	analysis, err := uc.SkillGap(context.Background(), j.ID, r.ID)
	if err != nil {
		t.Fatalf("SkillGap: %v", err)
	}
	if analysis != "Focus on Kubernetes fundamentals." {
		t.Fatalf("analysis = %q", analysis)
	}
}
