package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-screener/internal/domain/resume"
	"resume-screener/internal/parser"
	"resume-screener/internal/repository"
	"resume-screener/internal/search"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrResumeNotFound      = errors.New("resume not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrResumeUnparsable    = errors.New("resume could not be parsed")
)

type UploadResumeInput struct {
	FileName string
	FileType string
	Data     []byte
}

type ListResumesInput struct {
	Search        string
	Skills        []string
	MinExperience float64
	MaxExperience float64
	Page          int
	Limit         int
}

type ResumeUsecase interface {
	Upload(ctx context.Context, in UploadResumeInput) (resume.Resume, error)
	List(ctx context.Context, in ListResumesInput) ([]resume.Resume, int64, error)
	Get(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	Reparse(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Resumes struct {
	repo         repository.ResumeRepository
	extractor    *parser.Extractor
	maxFileBytes int64
	logger       *log.Logger
	now          func() time.Time
}

func NewResumeUsecase(repo repository.ResumeRepository, extractor *parser.Extractor, maxFileBytes int64, logger *log.Logger) *Resumes {
	return &Resumes{
		repo:         repo,
		extractor:    extractor,
		maxFileBytes: maxFileBytes,
		logger:       logger,
		now:          time.Now,
	}
}

func (u *Resumes) Upload(ctx context.Context, in UploadResumeInput) (resume.Resume, error) {
	if strings.TrimSpace(in.FileName) == "" || len(in.Data) == 0 {
		return resume.Resume{}, ErrInvalidInput
	}
	if u.maxFileBytes > 0 && int64(len(in.Data)) > u.maxFileBytes {
		return resume.Resume{}, ErrFileTooLarge
	}

	parsed, err := u.extractor.ParseResume(in.Data, in.FileName, in.FileType)
	if err != nil {
		if errors.Is(err, parser.ErrUnsupportedFileType) {
			return resume.Resume{}, ErrUnsupportedFileType
		}
		u.logger.Printf("Resume parse failed | file=%s error=%v", in.FileName, err)
		return resume.Resume{}, ErrResumeUnparsable
	}

	candidateName := parsed.Profile.Name
	if candidateName == "" {
		candidateName = fileBaseName(in.FileName)
	}

	res := resume.Resume{
		ID:               uuid.New(),
		CandidateName:    candidateName,
		Email:            parsed.Profile.Email,
		Phone:            parsed.Profile.Phone,
		OriginalFileName: in.FileName,
		FileType:         strings.ToLower(in.FileType),
		RawText:          parsed.RawText,
		Extracted:        parsed.Profile,
		Metadata:         parsed.Metadata,
		UploadedAt:       u.now().UTC(),
		IsActive:         true,
	}

	if err := u.repo.Create(ctx, res); err != nil {
		u.logger.Printf("Resume create failed | file=%s error=%v", in.FileName, err)
		return resume.Resume{}, ErrInternal
	}

	u.logger.Printf("Resume uploaded | id=%s candidate=%s skills=%d", res.ID, res.CandidateName, len(res.Extracted.Skills))
	return res, nil
}

func (u *Resumes) List(ctx context.Context, in ListResumesInput) ([]resume.Resume, int64, error) {
	filter := repository.ResumeListFilter{
		Search:        strings.TrimSpace(in.Search),
		Skills:        search.CanonicalSkills(in.Skills),
		MinExperience: in.MinExperience,
		MaxExperience: in.MaxExperience,
		ActiveOnly:    true,
		Limit:         in.Limit,
		Offset:        pageOffset(in.Page, in.Limit),
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

func (u *Resumes) Get(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	res, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	return res, nil
}

// Reparse reruns extraction over the stored raw text and replaces the profile
// wholesale. Used after parser improvements without requiring a re-upload.
func (u *Resumes) Reparse(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	res, err := u.Get(ctx, id)
	if err != nil {
		return resume.Resume{}, err
	}

	res.Extracted = u.extractor.Extract(res.RawText)
	if res.Extracted.Name != "" {
		res.CandidateName = res.Extracted.Name
	}
	res.Email = res.Extracted.Email
	res.Phone = res.Extracted.Phone
	res.Metadata.ParsedAt = u.now().UTC()
	res.Metadata.WordCount = len(strings.Split(res.RawText, " "))

	if err := u.repo.UpdateExtracted(ctx, res); err != nil {
		u.logger.Printf("Resume reparse persist failed | id=%s error=%v", id, err)
		return resume.Resume{}, ErrInternal
	}

	u.logger.Printf("Resume reparsed | id=%s skills=%d", id, len(res.Extracted.Skills))
	return res, nil
}

func (u *Resumes) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrInternal
	}
	return nil
}

func fileBaseName(fileName string) string {
	base := fileName
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}
	return base
}

func pageOffset(page, limit int) int {
	if page < 2 {
		return 0
	}
	if limit <= 0 {
		limit = 20
	}
	return (page - 1) * limit
}
