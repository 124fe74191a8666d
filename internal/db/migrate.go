package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements must be
// idempotent (CREATE ... IF NOT EXISTS) or tolerate re-runs.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id            TEXT PRIMARY KEY,
		student_name  TEXT NOT NULL,
		fields        TEXT NOT NULL DEFAULT '{}',
		ai_generated  TEXT NOT NULL DEFAULT '[]',
		critiques     TEXT NOT NULL DEFAULT '{}',
		suggestions   TEXT NOT NULL DEFAULT '{}',
		analysis      TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_updated ON plans(updated_at DESC)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		discipline     TEXT NOT NULL DEFAULT 'other',
		skills         TEXT NOT NULL DEFAULT '[]',
		needs          TEXT NOT NULL DEFAULT '[]',
		goal_tags      TEXT NOT NULL DEFAULT '[]',
		is_favorited   INTEGER NOT NULL DEFAULT 0,
		rating         TEXT NOT NULL DEFAULT '',
		comments       TEXT NOT NULL DEFAULT '',
		source_plan_id TEXT,
		created_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_source ON activities(source_plan_id)`,

	`CREATE TABLE IF NOT EXISTS support_documents (
		name     TEXT PRIMARY KEY,
		content  TEXT NOT NULL,
		selected INTEGER NOT NULL DEFAULT 0
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
