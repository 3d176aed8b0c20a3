package service

import (
	"context"
	"fmt"

	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/repository"
)

type routineService struct {
	routines repository.RoutineRepo
}

func NewRoutineService(routines repository.RoutineRepo) RoutineService {
	return &routineService{routines: routines}
}

func (s *routineService) Get(ctx context.Context) (domain.Routine, error) {
	return s.routines.Get(ctx)
}

func (s *routineService) Set(ctx context.Context, r domain.Routine) error {
	for weekday, minutes := range r {
		if minutes < 0 {
			return fmt.Errorf("minutes for %s must not be negative", weekday)
		}
	}
	return s.routines.Set(ctx, r)
}
