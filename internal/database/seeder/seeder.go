package seeder

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resume-screener/internal/database"
)

type Seeder struct {
	db     database.DB
	logger *log.Logger
}

func New(db database.DB, logger *log.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Run provisions the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no user exists yet with that email. Without the
// env vars seeding is skipped; registration stays the normal path.
func (s *Seeder) Run(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil db")
	}

	if err := ensureTableColumns(ctx, s.db, "users", "id", "email", "role", "password_hash"); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(ctx,
		`INSERT INTO users (id, email, full_name, role, password_hash, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New(), email, "Administrator", "admin", string(hash), now, now,
	)
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Printf("Seeder | admin account provisioned email=%s", email)
	}
	return nil
}

func ensureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
