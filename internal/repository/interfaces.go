package repository

import (
	"context"
	"errors"

	"github.com/mateusrangel/ciclo/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// PlanSummary is the shallow listing view of a plan, joined with its
// lifecycle config when one exists.
type PlanSummary struct {
	Plan     domain.StudyPlan // content slices left empty
	Config   *domain.PlanConfig
	GoalsNum int
}

type PlanRepo interface {
	// Create persists the whole content tree of a plan.
	Create(ctx context.Context, p *domain.StudyPlan) error
	// GetByID loads the full content tree, sorted by the order invariant.
	GetByID(ctx context.Context, id string) (*domain.StudyPlan, error)
	List(ctx context.Context) ([]PlanSummary, error)
	Delete(ctx context.Context, id string) error
}

type SimuladoRepo interface {
	Create(ctx context.Context, s *domain.Simulado) error
	List(ctx context.Context) ([]domain.Simulado, error)
}

type AttemptRepo interface {
	Record(ctx context.Context, a *domain.SimuladoAttempt) error
	List(ctx context.Context) ([]domain.SimuladoAttempt, error)
}

type ProgressRepo interface {
	Get(ctx context.Context) (*domain.UserProgress, error)
	// Save replaces the stored progress with the given snapshot. Callers
	// needing atomicity run Get+Save inside a unit of work.
	Save(ctx context.Context, u *domain.UserProgress) error
}

type PlanConfigRepo interface {
	Get(ctx context.Context, planID string) (*domain.PlanConfig, error)
	GetActive(ctx context.Context) (*domain.PlanConfig, error)
	Upsert(ctx context.Context, c *domain.PlanConfig) error
	// Deactivate clears the active flag everywhere; at most one config is
	// active at a time.
	Deactivate(ctx context.Context) error
}

type RoutineRepo interface {
	Get(ctx context.Context) (domain.Routine, error)
	Set(ctx context.Context, r domain.Routine) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
