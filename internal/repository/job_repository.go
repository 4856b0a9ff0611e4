package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-screener/internal/database"
	"resume-screener/internal/domain/job"
)

var ErrJobNotFound = errors.New("job not found")

type JobListFilter struct {
	Search          string
	ExperienceLevel string
	ActiveOnly      bool
	Limit           int
	Offset          int
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context, f JobListFilter) ([]job.Job, error)
	Count(ctx context.Context, f JobListFilter) (int64, error)
	Update(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, department, location, employment_type, description,
	experience_level, responsibilities, requirements, source_url, is_active, created_by, created_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	requirements, responsibilities, err := marshalJobJSON(j)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs
			(id, title, company, department, location, employment_type, description,
			 experience_level, responsibilities, requirements, source_url, is_active, created_by, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$14)`,
		j.ID, j.Title, j.Company, j.Department, j.Location, j.EmploymentType, j.Description,
		j.ExperienceLevel, responsibilities, requirements, j.SourceURL, j.IsActive, j.CreatedBy, j.CreatedAt.UTC(),
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) List(ctx context.Context, f JobListFilter) ([]job.Job, error) {
	where, args := buildJobFilter(f)

	args = append(args, normalizeLimit(f.Limit), f.Offset)
	query := `SELECT ` + jobColumns + ` FROM jobs` + where +
		` ORDER BY created_at DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []job.Job
	for rows.Next() {
		j, err := scanJobRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepository) Count(ctx context.Context, f JobListFilter) (int64, error) {
	where, args := buildJobFilter(f)

	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`+where, args...).Scan(&n)
	return n, err
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	requirements, responsibilities, err := marshalJobJSON(j)
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET
			title = $2, company = $3, department = $4, location = $5, employment_type = $6,
			description = $7, experience_level = $8, responsibilities = $9, requirements = $10,
			is_active = $11, updated_at = $12
		 WHERE id = $1`,
		j.ID, j.Title, j.Company, j.Department, j.Location, j.EmploymentType,
		j.Description, j.ExperienceLevel, responsibilities, requirements,
		j.IsActive, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete deactivates the job; match history against it is preserved.
func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active = TRUE`,
		id, time.Now().UTC())
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func buildJobFilter(f JobListFilter) (string, []any) {
	conds := []string{}
	args := []any{}

	if f.ActiveOnly {
		conds = append(conds, "is_active = TRUE")
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		p := itoa(len(args))
		conds = append(conds, "(title ILIKE $"+p+" OR company ILIKE $"+p+")")
	}
	if lvl := strings.TrimSpace(f.ExperienceLevel); lvl != "" {
		args = append(args, lvl)
		conds = append(conds, "experience_level = $"+itoa(len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func marshalJobJSON(j job.Job) (requirements, responsibilities []byte, err error) {
	requirements, err = json.Marshal(j.Requirements)
	if err != nil {
		return nil, nil, err
	}
	resp := j.Responsibilities
	if resp == nil {
		resp = []string{}
	}
	responsibilities, err = json.Marshal(resp)
	if err != nil {
		return nil, nil, err
	}
	return requirements, responsibilities, nil
}

func scanJob(row database.Row) (job.Job, error) {
	return scanJobRow(rowScanner{row})
}

func scanJobRow(s scanner) (job.Job, error) {
	var (
		j                job.Job
		responsibilities []byte
		requirements     []byte
	)

	err := s.Scan(
		&j.ID, &j.Title, &j.Company, &j.Department, &j.Location, &j.EmploymentType, &j.Description,
		&j.ExperienceLevel, &responsibilities, &requirements, &j.SourceURL, &j.IsActive, &j.CreatedBy, &j.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}

	if err := json.Unmarshal(responsibilities, &j.Responsibilities); err != nil {
		return job.Job{}, err
	}
	if err := json.Unmarshal(requirements, &j.Requirements); err != nil {
		return job.Job{}, err
	}
	return j, nil
}
