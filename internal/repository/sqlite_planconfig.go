package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/domain"
)

// SQLitePlanConfigRepo implements PlanConfigRepo.
type SQLitePlanConfigRepo struct {
	db db.DBTX
}

// NewSQLitePlanConfigRepo creates a new SQLitePlanConfigRepo.
func NewSQLitePlanConfigRepo(dbtx db.DBTX) *SQLitePlanConfigRepo {
	return &SQLitePlanConfigRepo{db: dbtx}
}

const planConfigCols = `plan_id, start_date, is_paused, is_active, updated_at`

func (r *SQLitePlanConfigRepo) scanConfig(row *sql.Row) (*domain.PlanConfig, error) {
	var c domain.PlanConfig
	var startDateStr, updatedAtStr string
	var isPaused, isActive int
	err := row.Scan(&c.PlanID, &startDateStr, &isPaused, &isActive, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan config: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan config: %w", err)
	}
	c.StartDate = parseTimeOr(startDateStr, dateLayout)
	c.IsPaused = intToBool(isPaused)
	c.IsActive = intToBool(isActive)
	c.UpdatedAt = parseTimeOr(updatedAtStr, time.RFC3339)
	return &c, nil
}

func (r *SQLitePlanConfigRepo) Get(ctx context.Context, planID string) (*domain.PlanConfig, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+planConfigCols+` FROM plan_configs WHERE plan_id = ?`, planID)
	return r.scanConfig(row)
}

func (r *SQLitePlanConfigRepo) GetActive(ctx context.Context) (*domain.PlanConfig, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+planConfigCols+` FROM plan_configs WHERE is_active = 1 LIMIT 1`)
	return r.scanConfig(row)
}

func (r *SQLitePlanConfigRepo) Upsert(ctx context.Context, c *domain.PlanConfig) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plan_configs (plan_id, start_date, is_paused, is_active, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(plan_id) DO UPDATE SET
			start_date = excluded.start_date,
			is_paused  = excluded.is_paused,
			is_active  = excluded.is_active,
			updated_at = excluded.updated_at`,
		c.PlanID, c.StartDate.Format(dateLayout),
		boolToInt(c.IsPaused), boolToInt(c.IsActive),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting plan config: %w", err)
	}
	return nil
}

// Deactivate clears the active flag on every plan. SwitchPlan runs this
// before activating the new target so at most one config is active.
func (r *SQLitePlanConfigRepo) Deactivate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE plan_configs SET is_active = 0, updated_at = ? WHERE is_active = 1`,
		nowUTC(),
	); err != nil {
		return fmt.Errorf("deactivating plan configs: %w", err)
	}
	return nil
}
