package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"resume-screener/internal/database"
	"resume-screener/internal/domain/match"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchListFilter struct {
	JobID           uuid.UUID
	ShortlistedOnly bool
	MinScore        float64
	Limit           int
	Offset          int
}

type MatchStats struct {
	TotalMatches int64            `json:"totalMatches"`
	Shortlisted  int64            `json:"shortlisted"`
	AverageScore float64          `json:"averageScore"`
	HighestScore float64          `json:"highestScore"`
	LowestScore  float64          `json:"lowestScore"`
	StatusCounts map[string]int64 `json:"statusCounts"`
}

type MatchRepository interface {
	Upsert(ctx context.Context, m match.Result) (match.Result, error)
	GetByID(ctx context.Context, id uuid.UUID) (match.Result, error)
	GetByJobAndResume(ctx context.Context, jobID, resumeID uuid.UUID) (match.Result, error)
	ListByJob(ctx context.Context, f MatchListFilter) ([]match.Result, error)
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]match.Result, error)
	SetShortlisted(ctx context.Context, id uuid.UUID, shortlisted bool) error
	DeleteByJob(ctx context.Context, jobID uuid.UUID) (int64, error)
	StatsByJob(ctx context.Context, jobID uuid.UUID) (MatchStats, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

const matchColumns = `id, job_id, resume_id, overall_score, status, is_shortlisted, detailed, analysis, matched_at`

// Upsert writes one result per (job, resume) pair; a rematch overwrites the
// previous verdict. The stored row (with its surviving id) is returned.
func (r *PostgresMatchRepository) Upsert(ctx context.Context, m match.Result) (match.Result, error) {
	detailed, err := json.Marshal(m.Detailed)
	if err != nil {
		return match.Result{}, err
	}
	analysis, err := json.Marshal(m.Analysis)
	if err != nil {
		return match.Result{}, err
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO match_results
			(id, job_id, resume_id, overall_score, status, is_shortlisted, detailed, analysis, matched_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (job_id, resume_id) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			status = EXCLUDED.status,
			is_shortlisted = EXCLUDED.is_shortlisted,
			detailed = EXCLUDED.detailed,
			analysis = EXCLUDED.analysis,
			matched_at = EXCLUDED.matched_at
		 RETURNING `+matchColumns,
		m.ID, m.JobID, m.ResumeID, m.OverallScore, m.Status, m.IsShortlisted, detailed, analysis, m.MatchedAt.UTC(),
	)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (match.Result, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM match_results WHERE id = $1`, id)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) GetByJobAndResume(ctx context.Context, jobID, resumeID uuid.UUID) (match.Result, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM match_results WHERE job_id = $1 AND resume_id = $2`,
		jobID, resumeID,
	)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) ListByJob(ctx context.Context, f MatchListFilter) ([]match.Result, error) {
	conds := []string{"job_id = $1"}
	args := []any{f.JobID}

	if f.ShortlistedOnly {
		conds = append(conds, "is_shortlisted = TRUE")
	}
	if f.MinScore > 0 {
		args = append(args, f.MinScore)
		conds = append(conds, "overall_score >= $"+itoa(len(args)))
	}

	args = append(args, normalizeLimit(f.Limit), f.Offset)
	query := `SELECT ` + matchColumns + ` FROM match_results WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY overall_score DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	return r.queryMatches(ctx, query, args...)
}

func (r *PostgresMatchRepository) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]match.Result, error) {
	return r.queryMatches(ctx,
		`SELECT `+matchColumns+` FROM match_results WHERE resume_id = $1 ORDER BY overall_score DESC`,
		resumeID,
	)
}

func (r *PostgresMatchRepository) SetShortlisted(ctx context.Context, id uuid.UUID, shortlisted bool) error {
	n, err := r.db.Exec(ctx, `UPDATE match_results SET is_shortlisted = $2 WHERE id = $1`, id, shortlisted)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *PostgresMatchRepository) DeleteByJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM match_results WHERE job_id = $1`, jobID)
}

func (r *PostgresMatchRepository) StatsByJob(ctx context.Context, jobID uuid.UUID) (MatchStats, error) {
	stats := MatchStats{StatusCounts: map[string]int64{}}

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE is_shortlisted),
			COALESCE(AVG(overall_score), 0),
			COALESCE(MAX(overall_score), 0),
			COALESCE(MIN(overall_score), 0)
		 FROM match_results WHERE job_id = $1`,
		jobID,
	).Scan(&stats.TotalMatches, &stats.Shortlisted, &stats.AverageScore, &stats.HighestScore, &stats.LowestScore)
	if err != nil {
		return MatchStats{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM match_results WHERE job_id = $1 GROUP BY status`,
		jobID,
	)
	if err != nil {
		return MatchStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return MatchStats{}, err
		}
		stats.StatusCounts[status] = n
	}
	return stats, rows.Err()
}

func (r *PostgresMatchRepository) queryMatches(ctx context.Context, query string, args ...any) ([]match.Result, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []match.Result
	for rows.Next() {
		m, err := scanMatchRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMatch(row database.Row) (match.Result, error) {
	return scanMatchRow(rowScanner{row})
}

func scanMatchRow(s scanner) (match.Result, error) {
	var (
		m        match.Result
		detailed []byte
		analysis []byte
	)

	err := s.Scan(&m.ID, &m.JobID, &m.ResumeID, &m.OverallScore, &m.Status, &m.IsShortlisted, &detailed, &analysis, &m.MatchedAt)
	if err != nil {
		if isNoRows(err) {
			return match.Result{}, ErrMatchNotFound
		}
		return match.Result{}, err
	}

	if err := json.Unmarshal(detailed, &m.Detailed); err != nil {
		return match.Result{}, err
	}
	if err := json.Unmarshal(analysis, &m.Analysis); err != nil {
		return match.Result{}, err
	}
	return m, nil
}
