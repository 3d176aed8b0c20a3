package service

import (
	"context"
	"testing"
	"time"

	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/repository"
	"github.com/mateusrangel/ciclo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineService_SetAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRoutineService(repository.NewSQLiteRoutineRepo(database))
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, domain.Routine{time.Monday: 60, time.Sunday: 0}))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, got.MinutesOn(time.Monday))
	assert.Equal(t, 0, got.MinutesOn(time.Sunday))
}

func TestRoutineService_RejectsNegativeMinutes(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRoutineService(repository.NewSQLiteRoutineRepo(database))

	err := svc.Set(context.Background(), domain.Routine{time.Tuesday: -10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}
