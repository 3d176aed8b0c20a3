package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mateusrangel/ciclo/internal/cli"
	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/repository"
	"github.com/mateusrangel/ciclo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ciclo/ciclo.db
	dbPath := os.Getenv("CICLO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ciclo", "ciclo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	planRepo := repository.NewSQLitePlanRepo(database)
	configRepo := repository.NewSQLitePlanConfigRepo(database)
	routineRepo := repository.NewSQLiteRoutineRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	simuladoRepo := repository.NewSQLiteSimuladoRepo(database)
	attemptRepo := repository.NewSQLiteAttemptRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Schedule: service.NewScheduleService(planRepo, configRepo, routineRepo, progressRepo, profileRepo, simuladoRepo, attemptRepo),
		Plans:    service.NewPlanService(planRepo, configRepo, profileRepo, uow),
		Progress: service.NewProgressService(progressRepo, configRepo, attemptRepo, uow),
		Routines: service.NewRoutineService(routineRepo),
		Import:   service.NewImportService(uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
