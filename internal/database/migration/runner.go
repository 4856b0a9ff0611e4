package migration

import (
	"context"
	"errors"
	"fmt"

	"resume-screener/internal/database"
)

// advisoryLockKey serializes schema bootstrap across concurrently starting
// instances.
const advisoryLockKey = 831204517

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'hr',
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS resumes (
		id UUID PRIMARY KEY,
		file_name TEXT NOT NULL,
		file_type TEXT NOT NULL,
		candidate_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		raw_text TEXT NOT NULL DEFAULT '',
		extracted JSONB NOT NULL DEFAULT '{}'::jsonb,
		metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_resumes_email ON resumes (email)`,
	`CREATE INDEX IF NOT EXISTS idx_resumes_uploaded_at ON resumes (uploaded_at DESC)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		employment_type TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		experience_level TEXT NOT NULL DEFAULT '',
		created_by TEXT NOT NULL DEFAULT '',
		responsibilities JSONB NOT NULL DEFAULT '[]'::jsonb,
		requirements JSONB NOT NULL DEFAULT '{}'::jsonb,
		source_url TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS match_results (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
		resume_id UUID NOT NULL REFERENCES resumes (id) ON DELETE CASCADE,
		overall_score DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL,
		is_shortlisted BOOLEAN NOT NULL DEFAULT FALSE,
		detailed JSONB NOT NULL DEFAULT '{}'::jsonb,
		analysis JSONB NOT NULL DEFAULT '{}'::jsonb,
		matched_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (job_id, resume_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_results_job_score ON match_results (job_id, overall_score DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_match_results_resume ON match_results (resume_id)`,
}

type Runner struct{}

// Run brings the schema up to date. Every statement is idempotent, so a rerun
// on an already provisioned database is a no-op.
func (Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockKey); err != nil {
		return err
	}
	defer func() {
		_, _ = db.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockKey)
	}()

	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i, err)
		}
	}

	return nil
}
