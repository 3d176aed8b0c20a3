package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/domain"
)

// SQLiteSimuladoRepo implements SimuladoRepo.
type SQLiteSimuladoRepo struct {
	db db.DBTX
}

// NewSQLiteSimuladoRepo creates a new SQLiteSimuladoRepo.
func NewSQLiteSimuladoRepo(dbtx db.DBTX) *SQLiteSimuladoRepo {
	return &SQLiteSimuladoRepo{db: dbtx}
}

func (r *SQLiteSimuladoRepo) Create(ctx context.Context, s *domain.Simulado) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO simulados (id, title, total_questions, order_index) VALUES (?, ?, ?, ?)`,
		s.ID, s.Title, s.TotalQuestions, s.Order,
	)
	if err != nil {
		return fmt.Errorf("inserting simulado: %w", err)
	}
	return nil
}

func (r *SQLiteSimuladoRepo) List(ctx context.Context) ([]domain.Simulado, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, total_questions, order_index FROM simulados ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("listing simulados: %w", err)
	}
	defer rows.Close()

	var out []domain.Simulado
	for rows.Next() {
		var s domain.Simulado
		if err := rows.Scan(&s.ID, &s.Title, &s.TotalQuestions, &s.Order); err != nil {
			return nil, fmt.Errorf("scanning simulado: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SQLiteAttemptRepo implements AttemptRepo.
type SQLiteAttemptRepo struct {
	db db.DBTX
}

// NewSQLiteAttemptRepo creates a new SQLiteAttemptRepo.
func NewSQLiteAttemptRepo(dbtx db.DBTX) *SQLiteAttemptRepo {
	return &SQLiteAttemptRepo{db: dbtx}
}

func (r *SQLiteAttemptRepo) Record(ctx context.Context, a *domain.SimuladoAttempt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO simulado_attempts (id, simulado_id, taken_at) VALUES (?, ?, ?)`,
		a.ID, a.SimuladoID, a.TakenAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording attempt: %w", err)
	}
	return nil
}

func (r *SQLiteAttemptRepo) List(ctx context.Context) ([]domain.SimuladoAttempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, simulado_id, taken_at FROM simulado_attempts ORDER BY taken_at`)
	if err != nil {
		return nil, fmt.Errorf("listing attempts: %w", err)
	}
	defer rows.Close()

	var out []domain.SimuladoAttempt
	for rows.Next() {
		var a domain.SimuladoAttempt
		var takenAtStr string
		if err := rows.Scan(&a.ID, &a.SimuladoID, &takenAtStr); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		a.TakenAt = parseTimeOr(takenAtStr, time.RFC3339)
		out = append(out, a)
	}
	return out, rows.Err()
}
