package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo over the completion and
// study-time tables. Get assembles the aggregate; Save replaces the
// stored completion sets wholesale, so restart semantics reduce to
// Get, mutate, Save inside one transaction.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(dbtx db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: dbtx}
}

func (r *SQLiteProgressRepo) Get(ctx context.Context) (*domain.UserProgress, error) {
	up := domain.NewUserProgress()

	rows, err := r.db.QueryContext(ctx, `SELECT goal_id FROM completed_goals`)
	if err != nil {
		return nil, fmt.Errorf("listing completed goals: %w", err)
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning completed goal: %w", err)
		}
		up.CompletedGoals[id] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating completed goals: %w", err)
	}
	rows.Close()

	rows, err = r.db.QueryContext(ctx, `SELECT review_id FROM completed_reviews`)
	if err != nil {
		return nil, fmt.Errorf("listing completed reviews: %w", err)
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning completed review: %w", err)
		}
		up.CompletedReviews[id] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating completed reviews: %w", err)
	}
	rows.Close()

	rows, err = r.db.QueryContext(ctx, `SELECT plan_id, seconds FROM study_time`)
	if err != nil {
		return nil, fmt.Errorf("listing study time: %w", err)
	}
	for rows.Next() {
		var planID string
		var seconds int64
		if err := rows.Scan(&planID, &seconds); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning study time: %w", err)
		}
		up.PlanSeconds[planID] = seconds
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating study time: %w", err)
	}
	rows.Close()

	err = r.db.QueryRowContext(ctx,
		`SELECT total_seconds FROM progress_totals WHERE id = 1`).Scan(&up.TotalSeconds)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scanning total seconds: %w", err)
	}

	return up, nil
}

func (r *SQLiteProgressRepo) Save(ctx context.Context, up *domain.UserProgress) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM completed_goals`); err != nil {
		return fmt.Errorf("clearing completed goals: %w", err)
	}
	now := nowUTC()
	for id := range up.CompletedGoals {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO completed_goals (goal_id, completed_at) VALUES (?, ?)`, id, now,
		); err != nil {
			return fmt.Errorf("saving completed goal: %w", err)
		}
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM completed_reviews`); err != nil {
		return fmt.Errorf("clearing completed reviews: %w", err)
	}
	for id := range up.CompletedReviews {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO completed_reviews (review_id, completed_at) VALUES (?, ?)`, id, now,
		); err != nil {
			return fmt.Errorf("saving completed review: %w", err)
		}
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_time`); err != nil {
		return fmt.Errorf("clearing study time: %w", err)
	}
	for planID, seconds := range up.PlanSeconds {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO study_time (plan_id, seconds) VALUES (?, ?)`, planID, seconds,
		); err != nil {
			return fmt.Errorf("saving study time: %w", err)
		}
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO progress_totals (id, total_seconds) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET total_seconds = excluded.total_seconds`,
		up.TotalSeconds,
	); err != nil {
		return fmt.Errorf("saving total seconds: %w", err)
	}
	return nil
}
