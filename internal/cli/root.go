package cli

import (
	"github.com/mateusrangel/ciclo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedule service.ScheduleService
	Plans    service.PlanService
	Progress service.ProgressService
	Routines service.RoutineService
	Import   service.ImportService

	// IsInteractive reports whether stdin is a terminal. Prompts and the
	// schedule browser are skipped when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ciclo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ciclo",
		Short: "Study-cycle planner and schedule generator",
	}

	root.AddCommand(
		newPlanCmd(app),
		newScheduleCmd(app),
		newRoutineCmd(app),
		newProgressCmd(app),
		newImportCmd(app),
	)

	return root
}
