package seeder

import (
	"context"
	"fmt"

	"talent-match/internal/database"
)

// SchemaSeeder creates the tables the other seeders and the repositories
// depend on. Statements are idempotent so the runner is safe on every boot.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'employee',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS skill_categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		category_id BIGINT NOT NULL REFERENCES skill_categories(id)
	)`,
	`CREATE TABLE IF NOT EXISTS job_roles (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS role_skill_requirements (
		role_id BIGINT NOT NULL REFERENCES job_roles(id) ON DELETE CASCADE,
		skill_id BIGINT NOT NULL REFERENCES skills(id),
		importance DOUBLE PRECISION NOT NULL,
		minimum_proficiency INT NOT NULL,
		PRIMARY KEY (role_id, skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_skills (
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		skill_id BIGINT NOT NULL REFERENCES skills(id),
		proficiency INT NOT NULL,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		source TEXT NOT NULL DEFAULT 'self-assessment',
		last_verified TIMESTAMPTZ,
		PRIMARY KEY (user_id, skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS match_history (
		id UUID PRIMARY KEY,
		candidate_id BIGINT NOT NULL,
		role_id BIGINT NOT NULL,
		match_percentage DOUBLE PRECISION NOT NULL,
		matched_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_history_matched_at ON match_history (matched_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_user_skills_skill_id ON user_skills (skill_id)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// EnsureTableColumns verifies the named columns exist before a data seeder
// writes to the table.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

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
