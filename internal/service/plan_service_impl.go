package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/contract"
	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/repository"
)

// defaultProfileID keys the singleton user profile row.
const defaultProfileID = "default"

type planService struct {
	plans    repository.PlanRepo
	configs  repository.PlanConfigRepo
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
}

func NewPlanService(
	plans repository.PlanRepo,
	configs repository.PlanConfigRepo,
	profiles repository.ProfileRepo,
	uow db.UnitOfWork,
) PlanService {
	return &planService{plans: plans, configs: configs, profiles: profiles, uow: uow}
}

func (s *planService) List(ctx context.Context) ([]repository.PlanSummary, error) {
	return s.plans.List(ctx)
}

func (s *planService) Pause(ctx context.Context, planID string) error {
	cfg, err := s.resolveConfig(ctx, planID)
	if err != nil {
		return err
	}
	cfg.IsPaused = true
	cfg.UpdatedAt = time.Now().UTC()
	return s.configs.Upsert(ctx, cfg)
}

func (s *planService) Resume(ctx context.Context, planID string) error {
	cfg, err := s.resolveConfig(ctx, planID)
	if err != nil {
		return err
	}
	cfg.IsPaused = false
	cfg.UpdatedAt = time.Now().UTC()
	return s.configs.Upsert(ctx, cfg)
}

// Reschedule moves the plan's start date to today and unpauses it. The
// cursor-free generator regenerates everything from the new date; no
// stored schedule needs touching.
func (s *planService) Reschedule(ctx context.Context, planID string) error {
	cfg, err := s.resolveConfig(ctx, planID)
	if err != nil {
		return err
	}
	cfg.StartDate = today()
	cfg.IsPaused = false
	cfg.UpdatedAt = time.Now().UTC()
	return s.configs.Upsert(ctx, cfg)
}

// Restart wipes the plan's completions and accumulated time and resets
// its start date, all in one transaction. Completions belonging to other
// plans and the global time total are untouched.
func (s *planService) Restart(ctx context.Context, planID string) (*contract.RestartResult, error) {
	cfg, err := s.resolveConfig(ctx, planID)
	if err != nil {
		return nil, err
	}

	result := &contract.RestartResult{PlanID: cfg.PlanID}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txProgress := repository.NewSQLiteProgressRepo(tx)
		txConfigs := repository.NewSQLitePlanConfigRepo(tx)

		plan, err := txPlans.GetByID(ctx, cfg.PlanID)
		if err != nil {
			return err
		}
		progress, err := txProgress.Get(ctx)
		if err != nil {
			return err
		}

		result.RemovedCompletions = progress.StripPlan(plan.ID, plan.GoalIDs())
		if err := txProgress.Save(ctx, progress); err != nil {
			return err
		}

		cfg.StartDate = today()
		cfg.IsPaused = false
		cfg.UpdatedAt = time.Now().UTC()
		return txConfigs.Upsert(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Switch pauses the currently active plan and activates the target,
// creating a fresh config starting today when the target has never been
// scheduled before.
func (s *planService) Switch(ctx context.Context, planID string) error {
	if _, err := s.plans.GetByID(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("plan %q not found", planID)
		}
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txConfigs := repository.NewSQLitePlanConfigRepo(tx)

		old, err := txConfigs.GetActive(ctx)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if old != nil && old.PlanID != planID {
			old.IsActive = false
			old.IsPaused = true
			old.UpdatedAt = time.Now().UTC()
			if err := txConfigs.Upsert(ctx, old); err != nil {
				return err
			}
		}
		if err := txConfigs.Deactivate(ctx); err != nil {
			return err
		}

		cfg, err := txConfigs.Get(ctx, planID)
		if errors.Is(err, repository.ErrNotFound) {
			cfg = &domain.PlanConfig{PlanID: planID, StartDate: today()}
		} else if err != nil {
			return err
		}
		cfg.IsActive = true
		cfg.IsPaused = false
		cfg.UpdatedAt = time.Now().UTC()
		return txConfigs.Upsert(ctx, cfg)
	})
}

func (s *planService) Delete(ctx context.Context, planID string) error {
	if _, err := s.plans.GetByID(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("plan %q not found", planID)
		}
		return err
	}
	return s.plans.Delete(ctx, planID)
}

func (s *planService) SetLevel(ctx context.Context, level domain.Level) error {
	if !domain.ValidLevels[string(level)] {
		return fmt.Errorf("invalid level %q (expected beginner, intermediate or advanced)", level)
	}
	return s.profiles.Upsert(ctx, &domain.UserProfile{ID: defaultProfileID, Level: level})
}

func (s *planService) resolveConfig(ctx context.Context, planID string) (*domain.PlanConfig, error) {
	if planID != "" {
		cfg, err := s.configs.Get(ctx, planID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("plan %q has no configuration; switch to it first", planID)
			}
			return nil, err
		}
		return cfg, nil
	}
	cfg, err := s.configs.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("no active plan")
		}
		return nil, err
	}
	return cfg, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
