package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mateusrangel/ciclo/internal/contract"
	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/repository"
)

type progressService struct {
	progress repository.ProgressRepo
	configs  repository.PlanConfigRepo
	attempts repository.AttemptRepo
	uow      db.UnitOfWork
}

func NewProgressService(
	progress repository.ProgressRepo,
	configs repository.PlanConfigRepo,
	attempts repository.AttemptRepo,
	uow db.UnitOfWork,
) ProgressService {
	return &progressService{progress: progress, configs: configs, attempts: attempts, uow: uow}
}

// MarkGoalDone records a completion and credits the studied minutes to
// the active plan. Get and Save run in one transaction so concurrent
// marks cannot lose each other's writes.
func (s *progressService) MarkGoalDone(ctx context.Context, goalID string, minutes int) error {
	if goalID == "" {
		return fmt.Errorf("goal id is required")
	}
	planID, err := s.activePlanID(ctx)
	if err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		progress, err := txProgress.Get(ctx)
		if err != nil {
			return err
		}
		progress.MarkGoalDone(goalID, planID, int64(minutes)*60)
		return txProgress.Save(ctx, progress)
	})
}

// UndoGoal removes a completion. Studied time already credited stays;
// the clock never runs backwards.
func (s *progressService) UndoGoal(ctx context.Context, goalID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		progress, err := txProgress.Get(ctx)
		if err != nil {
			return err
		}
		if !progress.CompletedGoals[goalID] {
			return fmt.Errorf("goal %q is not marked done", goalID)
		}
		delete(progress.CompletedGoals, goalID)
		return txProgress.Save(ctx, progress)
	})
}

func (s *progressService) MarkReviewDone(ctx context.Context, goalID string, revisionIndex int, minutes int) error {
	if goalID == "" {
		return fmt.Errorf("goal id is required")
	}
	if revisionIndex < 0 {
		return fmt.Errorf("revision index must not be negative")
	}
	planID, err := s.activePlanID(ctx)
	if err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		progress, err := txProgress.Get(ctx)
		if err != nil {
			return err
		}
		progress.MarkReviewDone(goalID, revisionIndex)
		progress.AddStudyTime(planID, int64(minutes)*60)
		return txProgress.Save(ctx, progress)
	})
}

func (s *progressService) RecordAttempt(ctx context.Context, simuladoID string) error {
	if simuladoID == "" {
		return fmt.Errorf("simulado id is required")
	}
	return s.attempts.Record(ctx, &domain.SimuladoAttempt{
		ID:         uuid.New().String(),
		SimuladoID: simuladoID,
		TakenAt:    time.Now().UTC(),
	})
}

func (s *progressService) Stats(ctx context.Context) (*contract.ProgressStats, error) {
	progress, err := s.progress.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &contract.ProgressStats{
		CompletedGoals:   len(progress.CompletedGoals),
		CompletedReviews: len(progress.CompletedReviews),
		TotalSeconds:     progress.TotalSeconds,
		PlanSeconds:      progress.PlanSeconds,
	}, nil
}

func (s *progressService) activePlanID(ctx context.Context) (string, error) {
	cfg, err := s.configs.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("no active plan")
		}
		return "", err
	}
	return cfg.PlanID, nil
}
