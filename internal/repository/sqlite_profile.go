package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo. The profile is a singleton
// row holding the user's proficiency level.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	var p domain.UserProfile
	var levelStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, level FROM user_profile LIMIT 1`).Scan(&p.ID, &levelStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.Level = domain.Level(levelStr)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_profile (id, level) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET level = excluded.level`,
		p.ID, string(p.Level),
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
