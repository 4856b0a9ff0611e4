package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"resume-screener/internal/parser"
)

const sampleResumeText = `Jane Doe
jane.doe@example.com
+1 (555) 123-4567

Summary
Backend engineer focused on reliable services.

Skills
go, postgresql, docker

Experience
Software Engineer - Acme Corp
2019 - 2022
Built APIs in Go against PostgreSQL.

Education
Bachelor of Science in Computer Science - State University
2018`

func fixedClock() func() time.Time {
	at := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func newTestResumeUsecase(repo *mockResumeRepo, maxBytes int64) *Resumes {
	uc := NewResumeUsecase(repo, parser.NewExtractorAt(fixedClock()), maxBytes, testLogger())
	uc.now = fixedClock()
	return uc
}

func TestUploadTxtResume(t *testing.T) {
	repo := newMockResumeRepo()
	uc := newTestResumeUsecase(repo, 1<<20)

	res, err := uc.Upload(context.Background(), UploadResumeInput{
		FileName: "jane_doe.txt",
		FileType: "txt",
		Data:     []byte(sampleResumeText),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if res.CandidateName != "Jane Doe" {
		t.Fatalf("candidate name = %q, want Jane Doe", res.CandidateName)
	}
	if res.Email != "jane.doe@example.com" {
		t.Fatalf("email = %q", res.Email)
	}
	if !res.IsActive {
		t.Fatalf("expected active resume")
	}
	if len(res.Extracted.Skills) != 3 {
		t.Fatalf("skills = %d, want 3", len(res.Extracted.Skills))
	}
	if _, ok := repo.items[res.ID]; !ok {
		t.Fatalf("resume not persisted")
	}
}

func TestUploadFallsBackToFileNameWhenNameMissing(t *testing.T) {
	repo := newMockResumeRepo()
	uc := newTestResumeUsecase(repo, 1<<20)

	res, err := uc.Upload(context.Background(), UploadResumeInput{
		FileName: "anonymous_candidate.txt",
		FileType: "txt",
		Data:     []byte("skills\ngo, docker\n"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if res.CandidateName != "anonymous_candidate" {
		t.Fatalf("candidate name = %q, want anonymous_candidate", res.CandidateName)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	uc := newTestResumeUsecase(newMockResumeRepo(), 1<<20)

	_, err := uc.Upload(context.Background(), UploadResumeInput{
		FileName: "resume.docx",
		FileType: "docx",
		Data:     []byte("content"),
	})
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("err = %v, want ErrUnsupportedFileType", err)
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	uc := newTestResumeUsecase(newMockResumeRepo(), 16)

	_, err := uc.Upload(context.Background(), UploadResumeInput{
		FileName: "resume.txt",
		FileType: "txt",
		Data:     []byte(strings.Repeat("x", 17)),
	})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestListCanonicalizesSkillFilters(t *testing.T) {
	repo := newMockResumeRepo()
	uc := newTestResumeUsecase(repo, 1<<20)

	if _, _, err := uc.List(context.Background(), ListResumesInput{
		Skills: []string{"k8s", "Golang", " "},
		Page:   2,
		Limit:  10,
	}); err != nil {
		t.Fatalf("List: %v", err)
	}

	got := repo.lastF
	if len(got.Skills) != 2 || got.Skills[0] != "kubernetes" || got.Skills[1] != "go" {
		t.Fatalf("skills filter = %v, want [kubernetes go]", got.Skills)
	}
	if got.Offset != 10 {
		t.Fatalf("offset = %d, want 10", got.Offset)
	}
	if !got.ActiveOnly {
		t.Fatalf("expected active-only filter")
	}
}

func TestReparseReplacesProfile(t *testing.T) {
	repo := newMockResumeRepo()
	uc := newTestResumeUsecase(repo, 1<<20)

	uploaded, err := uc.Upload(context.Background(), UploadResumeInput{
		FileName: "jane_doe.txt",
		FileType: "txt",
		Data:     []byte(sampleResumeText),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	// Simulate a stale profile from an earlier extractor version.
	stale := repo.items[uploaded.ID]
	stale.Extracted.Skills = nil
	repo.items[uploaded.ID] = stale

	reparsed, err := uc.Reparse(context.Background(), uploaded.ID)
	if err != nil {
		t.Fatalf("Reparse: %v", err)
	}
	if len(reparsed.Extracted.Skills) != 3 {
		t.Fatalf("skills after reparse = %d, want 3", len(reparsed.Extracted.Skills))
	}
	if repo.items[uploaded.ID].Extracted.TotalExperienceYears != reparsed.Extracted.TotalExperienceYears {
		t.Fatalf("persisted profile differs from returned one")
	}
}

func TestReparseUnknownResume(t *testing.T) {
	uc := newTestResumeUsecase(newMockResumeRepo(), 1<<20)

	_, err := uc.Reparse(context.Background(), uuid.New())
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("err = %v, want ErrResumeNotFound", err)
	}
}
