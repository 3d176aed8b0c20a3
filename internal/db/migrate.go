package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// whole list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		cycle_mode TEXT NOT NULL DEFAULT 'rotating'
		           CHECK(cycle_mode IN ('rotating','sequential')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS folders (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_folders_plan ON folders(plan_id)`,

	`CREATE TABLE IF NOT EXISTS disciplines (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		folder_id   TEXT REFERENCES folders(id) ON DELETE SET NULL,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_disciplines_plan ON disciplines(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_disciplines_folder ON disciplines(folder_id)`,

	`CREATE TABLE IF NOT EXISTS subjects (
		id            TEXT PRIMARY KEY,
		discipline_id TEXT NOT NULL REFERENCES disciplines(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		order_index   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subjects_discipline ON subjects(discipline_id)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		subject_id  TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		type        TEXT NOT NULL
		            CHECK(type IN ('LESSON','MATERIAL','QUESTION_SET','STATUTE_READING','SUMMARY','REVIEW')),
		order_index INTEGER NOT NULL DEFAULT 0,
		pages       INTEGER NOT NULL DEFAULT 0,
		repetitions INTEGER NOT NULL DEFAULT 0,
		manual_min  INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_subject ON goals(subject_id)`,

	`CREATE TABLE IF NOT EXISTS sub_lessons (
		id          TEXT PRIMARY KEY,
		goal_id     TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		minutes     INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sub_lessons_goal ON sub_lessons(goal_id)`,

	`CREATE TABLE IF NOT EXISTS cycles (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cycles_plan ON cycles(plan_id)`,

	`CREATE TABLE IF NOT EXISTS cycle_items (
		id             TEXT PRIMARY KEY,
		cycle_id       TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
		kind           TEXT NOT NULL
		               CHECK(kind IN ('discipline','folder','simulado')),
		target_id      TEXT NOT NULL,
		subjects_count INTEGER NOT NULL DEFAULT 1,
		order_index    INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cycle_items_cycle ON cycle_items(cycle_id)`,

	`CREATE TABLE IF NOT EXISTS simulados (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		total_questions INTEGER NOT NULL DEFAULT 0,
		order_index     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS simulado_attempts (
		id          TEXT PRIMARY KEY,
		simulado_id TEXT NOT NULL REFERENCES simulados(id) ON DELETE CASCADE,
		taken_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attempts_simulado ON simulado_attempts(simulado_id)`,

	`CREATE TABLE IF NOT EXISTS plan_configs (
		plan_id    TEXT PRIMARY KEY REFERENCES plans(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		is_paused  INTEGER NOT NULL DEFAULT 0,
		is_active  INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS completed_goals (
		goal_id      TEXT PRIMARY KEY,
		completed_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS completed_reviews (
		review_id    TEXT PRIMARY KEY,
		completed_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS study_time (
		plan_id TEXT PRIMARY KEY,
		seconds INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS progress_totals (
		id            INTEGER PRIMARY KEY CHECK(id = 1),
		total_seconds INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS routines (
		weekday INTEGER PRIMARY KEY CHECK(weekday BETWEEN 0 AND 6),
		minutes INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id    TEXT PRIMARY KEY,
		level TEXT NOT NULL DEFAULT 'beginner'
		      CHECK(level IN ('beginner','intermediate','advanced'))
	)`,
}
