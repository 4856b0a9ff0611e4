package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-screener/internal/database"
	"resume-screener/internal/domain/resume"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeListFilter struct {
	// Search matches candidate name, email and raw text, case-insensitive.
	Search string
	// Skills restricts to resumes whose extracted profile contains every
	// listed skill name (case-insensitive).
	Skills []string
	// Experience bounds apply to the extracted total years; zero means unset.
	MinExperience float64
	MaxExperience float64

	ActiveOnly bool
	Limit      int
	Offset     int
}

type ResumeRepository interface {
	Create(ctx context.Context, r resume.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	List(ctx context.Context, f ResumeListFilter) ([]resume.Resume, error)
	Count(ctx context.Context, f ResumeListFilter) (int64, error)
	UpdateExtracted(ctx context.Context, r resume.Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Create(ctx context.Context, res resume.Resume) error {
	extracted, err := json.Marshal(res.Extracted)
	if err != nil {
		return err
	}
	metadata, err := json.Marshal(res.Metadata)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO resumes
			(id, file_name, file_type, candidate_name, email, phone, raw_text, extracted, metadata, is_active, uploaded_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11)`,
		res.ID,
		res.OriginalFileName,
		res.FileType,
		res.CandidateName,
		res.Email,
		res.Phone,
		res.RawText,
		extracted,
		metadata,
		res.IsActive,
		res.UploadedAt.UTC(),
	)
	return err
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, file_name, file_type, candidate_name, email, phone, raw_text, extracted, metadata, is_active, uploaded_at
		 FROM resumes WHERE id = $1`,
		id,
	)
	return scanResume(row, true)
}

func (r *PostgresResumeRepository) List(ctx context.Context, f ResumeListFilter) ([]resume.Resume, error) {
	where, args := buildResumeFilter(f)

	args = append(args, normalizeLimit(f.Limit), f.Offset)
	query := `SELECT id, file_name, file_type, candidate_name, email, phone, extracted, metadata, is_active, uploaded_at
		 FROM resumes` + where +
		` ORDER BY uploaded_at DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []resume.Resume
	for rows.Next() {
		res, err := scanResumeRow(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *PostgresResumeRepository) Count(ctx context.Context, f ResumeListFilter) (int64, error) {
	where, args := buildResumeFilter(f)

	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes`+where, args...).Scan(&n)
	return n, err
}

// UpdateExtracted replaces the structured profile wholesale, as after a
// reparse.
func (r *PostgresResumeRepository) UpdateExtracted(ctx context.Context, res resume.Resume) error {
	extracted, err := json.Marshal(res.Extracted)
	if err != nil {
		return err
	}
	metadata, err := json.Marshal(res.Metadata)
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx,
		`UPDATE resumes SET
			candidate_name = $2, email = $3, phone = $4,
			extracted = $5, metadata = $6, updated_at = $7
		 WHERE id = $1`,
		res.ID, res.CandidateName, res.Email, res.Phone, extracted, metadata, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrResumeNotFound
	}
	return nil
}

// Delete deactivates the resume; rows are kept so existing match results stay
// explainable.
func (r *PostgresResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE resumes SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active = TRUE`,
		id, time.Now().UTC())
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func buildResumeFilter(f ResumeListFilter) (string, []any) {
	conds := []string{}
	args := []any{}

	if f.ActiveOnly {
		conds = append(conds, "is_active = TRUE")
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		p := itoa(len(args))
		conds = append(conds, "(candidate_name ILIKE $"+p+" OR email ILIKE $"+p+" OR raw_text ILIKE $"+p+")")
	}
	if f.MinExperience > 0 {
		args = append(args, f.MinExperience)
		conds = append(conds, "COALESCE((extracted->>'totalExperienceYears')::numeric, 0) >= $"+itoa(len(args)))
	}
	if f.MaxExperience > 0 {
		args = append(args, f.MaxExperience)
		conds = append(conds, "COALESCE((extracted->>'totalExperienceYears')::numeric, 0) <= $"+itoa(len(args)))
	}
	for _, skill := range f.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		args = append(args, skill)
		conds = append(conds,
			`EXISTS (SELECT 1 FROM jsonb_array_elements(extracted->'skills') AS s WHERE lower(s->>'name') = $`+itoa(len(args))+`)`)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanResume(row database.Row, withRawText bool) (resume.Resume, error) {
	return scanResumeRow(rowScanner{row}, withRawText)
}

type scanner interface {
	Scan(dest ...any) error
}

type rowScanner struct {
	database.Row
}

func scanResumeRow(s scanner, withRawText bool) (resume.Resume, error) {
	var (
		res       resume.Resume
		extracted []byte
		metadata  []byte
	)

	dest := []any{&res.ID, &res.OriginalFileName, &res.FileType, &res.CandidateName, &res.Email, &res.Phone}
	if withRawText {
		dest = append(dest, &res.RawText)
	}
	dest = append(dest, &extracted, &metadata, &res.IsActive, &res.UploadedAt)

	if err := s.Scan(dest...); err != nil {
		if isNoRows(err) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, err
	}

	if err := json.Unmarshal(extracted, &res.Extracted); err != nil {
		return resume.Resume{}, err
	}
	if err := json.Unmarshal(metadata, &res.Metadata); err != nil {
		return resume.Resume{}, err
	}
	return res, nil
}
