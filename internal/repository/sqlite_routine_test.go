package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineRepo_SetAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(database)
	ctx := context.Background()

	empty, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Set(ctx, domain.Routine{
		time.Monday:   90,
		time.Saturday: 240,
	}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, got.MinutesOn(time.Monday))
	assert.Equal(t, 240, got.MinutesOn(time.Saturday))
	assert.Equal(t, 0, got.MinutesOn(time.Sunday))

	// Set upserts per weekday; untouched days keep their value.
	require.NoError(t, repo.Set(ctx, domain.Routine{time.Monday: 45}))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, got.MinutesOn(time.Monday))
	assert.Equal(t, 240, got.MinutesOn(time.Saturday))
}
