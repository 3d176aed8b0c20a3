package service

import (
	"context"

	"github.com/mateusrangel/ciclo/internal/contract"
	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/importer"
	"github.com/mateusrangel/ciclo/internal/repository"
)

type ScheduleService interface {
	Build(ctx context.Context, req contract.BuildScheduleRequest) (*contract.BuildScheduleResponse, error)
}

type PlanService interface {
	List(ctx context.Context) ([]repository.PlanSummary, error)
	// Lifecycle operations resolve an empty planID to the active plan.
	Pause(ctx context.Context, planID string) error
	Resume(ctx context.Context, planID string) error
	Reschedule(ctx context.Context, planID string) error
	Restart(ctx context.Context, planID string) (*contract.RestartResult, error)
	Switch(ctx context.Context, planID string) error
	Delete(ctx context.Context, planID string) error
	SetLevel(ctx context.Context, level domain.Level) error
}

type ProgressService interface {
	MarkGoalDone(ctx context.Context, goalID string, minutes int) error
	UndoGoal(ctx context.Context, goalID string) error
	MarkReviewDone(ctx context.Context, goalID string, revisionIndex int, minutes int) error
	RecordAttempt(ctx context.Context, simuladoID string) error
	Stats(ctx context.Context) (*contract.ProgressStats, error)
}

type RoutineService interface {
	Get(ctx context.Context) (domain.Routine, error)
	Set(ctx context.Context, r domain.Routine) error
}

// ImportResult holds the outcome of a plan import.
type ImportResult struct {
	Plan          *domain.StudyPlan
	GoalCount     int
	SimuladoCount int
	Activated     bool
}

type ImportService interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPlanFromSchema(ctx context.Context, schema *importer.PlanSchema) (*ImportResult, error)
}
