package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/contract"
	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/repository"
	"github.com/mateusrangel/ciclo/internal/scheduler"
)

type scheduleService struct {
	plans     repository.PlanRepo
	configs   repository.PlanConfigRepo
	routines  repository.RoutineRepo
	progress  repository.ProgressRepo
	profiles  repository.ProfileRepo
	simulados repository.SimuladoRepo
	attempts  repository.AttemptRepo
}

func NewScheduleService(
	plans repository.PlanRepo,
	configs repository.PlanConfigRepo,
	routines repository.RoutineRepo,
	progress repository.ProgressRepo,
	profiles repository.ProfileRepo,
	simulados repository.SimuladoRepo,
	attempts repository.AttemptRepo,
) ScheduleService {
	return &scheduleService{
		plans:     plans,
		configs:   configs,
		routines:  routines,
		progress:  progress,
		profiles:  profiles,
		simulados: simulados,
		attempts:  attempts,
	}
}

func (s *scheduleService) Build(ctx context.Context, req contract.BuildScheduleRequest) (*contract.BuildScheduleResponse, error) {
	if req.Days < 0 {
		return nil, &contract.ScheduleError{Code: contract.ErrInvalidWindow, Message: "days must not be negative"}
	}

	cfg, err := s.resolveConfig(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, cfg.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.ScheduleError{Code: contract.ErrPlanNotFound, Message: fmt.Sprintf("plan %q not found", cfg.PlanID)}
		}
		return nil, err
	}

	routine, err := s.routines.Get(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.progress.Get(ctx)
	if err != nil {
		return nil, err
	}

	level := domain.LevelBeginner
	if profile, err := s.profiles.Get(ctx); err == nil {
		level = profile.Level
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	exams, err := s.simulados.List(ctx)
	if err != nil {
		return nil, err
	}
	attempts, err := s.attempts.List(ctx)
	if err != nil {
		return nil, err
	}

	gen := scheduler.Generate(scheduler.GenerateInput{
		Plan:      plan,
		Routine:   routine,
		StartDate: cfg.StartDate,
		Completed: progress.CompletedGoals,
		Level:     level,
		IsPaused:  cfg.IsPaused,
		Exams:     exams,
		Attempts:  attempts,
	})

	resp := &contract.BuildScheduleResponse{
		GeneratedAt: time.Now().UTC(),
		PlanID:      plan.ID,
		PlanName:    plan.Name,
		StartDate:   cfg.StartDate,
		Level:       level,
		IsPaused:    cfg.IsPaused,
		Days:        gen.Days,
		Cursors:     gen.Cursors,
		Warnings:    gen.Warnings,
	}
	if cfg.IsPaused {
		resp.Warnings = append(resp.Warnings, "plan is paused; resume it to get a schedule")
	} else if !routine.HasStudyDay() {
		resp.Warnings = append(resp.Warnings, "routine has no study days; set weekly minutes to get a schedule")
	}

	applyWindow(resp, req, cfg.StartDate)
	return resp, nil
}

func (s *scheduleService) resolveConfig(ctx context.Context, planID string) (*domain.PlanConfig, error) {
	if planID != "" {
		cfg, err := s.configs.Get(ctx, planID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &contract.ScheduleError{Code: contract.ErrPlanNotFound, Message: fmt.Sprintf("plan %q has no configuration", planID)}
			}
			return nil, err
		}
		return cfg, nil
	}
	cfg, err := s.configs.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.ScheduleError{Code: contract.ErrNoActivePlan, Message: "no active plan; import one or switch to an existing plan"}
		}
		return nil, err
	}
	return cfg, nil
}

// applyWindow trims the generated horizon to the requested display
// window. Generation itself always runs the full horizon so cursor state
// stays identical regardless of the window asked for.
func applyWindow(resp *contract.BuildScheduleResponse, req contract.BuildScheduleRequest, startDate time.Time) {
	from := startDate
	if req.From != nil {
		from = *req.From
	}
	fromKey := from.Format("2006-01-02")

	var untilKey string
	if req.Days > 0 {
		untilKey = from.AddDate(0, 0, req.Days).Format("2006-01-02")
	}

	for key := range resp.Days {
		if key < fromKey || (untilKey != "" && key >= untilKey) {
			delete(resp.Days, key)
		}
	}
}
