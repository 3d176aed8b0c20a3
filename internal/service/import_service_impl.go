package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/importer"
	"github.com/mateusrangel/ciclo/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadPlanSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportPlanFromSchema(ctx context.Context, schema *importer.PlanSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

// importSchema validates, converts and persists a plan in one
// transaction. The imported plan becomes active only when no other plan
// already is.
func (s *importService) importSchema(ctx context.Context, schema *importer.PlanSchema) (*ImportResult, error) {
	if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated := importer.Convert(schema)

	result := &ImportResult{
		Plan:          generated.Plan,
		GoalCount:     generated.GoalCount,
		SimuladoCount: len(generated.Simulados),
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txSimulados := repository.NewSQLiteSimuladoRepo(tx)
		txConfigs := repository.NewSQLitePlanConfigRepo(tx)

		if err := txPlans.Create(ctx, generated.Plan); err != nil {
			return fmt.Errorf("creating plan: %w", err)
		}
		for i := range generated.Simulados {
			if err := txSimulados.Create(ctx, &generated.Simulados[i]); err != nil {
				return fmt.Errorf("creating simulado %q: %w", generated.Simulados[i].Title, err)
			}
		}

		_, err := txConfigs.GetActive(ctx)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			result.Activated = true
		case err != nil:
			return err
		}

		cfg := &domain.PlanConfig{
			PlanID:    generated.Plan.ID,
			StartDate: today(),
			IsActive:  result.Activated,
			UpdatedAt: time.Now().UTC(),
		}
		return txConfigs.Upsert(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
