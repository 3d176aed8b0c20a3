package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*db.SQLiteUnitOfWork, func(goalID string) bool) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	hasGoal := func(goalID string) bool {
		var n int
		err := database.QueryRow(
			`SELECT COUNT(*) FROM completed_goals WHERE goal_id = ?`, goalID).Scan(&n)
		require.NoError(t, err)
		return n > 0
	}
	return db.NewSQLiteUnitOfWork(database), hasGoal
}

func markGoal(ctx context.Context, tx db.DBTX, goalID string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO completed_goals (goal_id, completed_at) VALUES (?, ?)`,
		goalID, "2026-08-01T00:00:00Z")
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, hasGoal := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return markGoal(ctx, tx, "g-1")
	})
	require.NoError(t, err)
	assert.True(t, hasGoal("g-1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, hasGoal := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := markGoal(ctx, tx, "g-2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, hasGoal("g-2"), "row must not survive the rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, hasGoal := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = markGoal(ctx, tx, "g-3")
			panic("boom")
		})
	})
	assert.False(t, hasGoal("g-3"), "row must not survive the panic")
}
