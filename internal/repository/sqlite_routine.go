package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/domain"
)

// SQLiteRoutineRepo implements RoutineRepo. The routine is a single
// global seven-row table keyed by weekday.
type SQLiteRoutineRepo struct {
	db db.DBTX
}

// NewSQLiteRoutineRepo creates a new SQLiteRoutineRepo.
func NewSQLiteRoutineRepo(dbtx db.DBTX) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: dbtx}
}

func (r *SQLiteRoutineRepo) Get(ctx context.Context) (domain.Routine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT weekday, minutes FROM routines`)
	if err != nil {
		return nil, fmt.Errorf("loading routine: %w", err)
	}
	defer rows.Close()

	routine := make(domain.Routine)
	for rows.Next() {
		var weekday, minutes int
		if err := rows.Scan(&weekday, &minutes); err != nil {
			return nil, fmt.Errorf("scanning routine row: %w", err)
		}
		routine[time.Weekday(weekday)] = minutes
	}
	return routine, rows.Err()
}

func (r *SQLiteRoutineRepo) Set(ctx context.Context, routine domain.Routine) error {
	for weekday, minutes := range routine {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO routines (weekday, minutes) VALUES (?, ?)
			 ON CONFLICT(weekday) DO UPDATE SET minutes = excluded.minutes`,
			int(weekday), minutes,
		); err != nil {
			return fmt.Errorf("saving routine for weekday %d: %w", weekday, err)
		}
	}
	return nil
}
