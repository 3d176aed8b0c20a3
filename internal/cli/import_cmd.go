package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPlan(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported plan %s — %d goals, %d mock exams\n",
				result.Plan.Name, result.GoalCount, result.SimuladoCount)
			if result.Activated {
				fmt.Println("It is now the active plan.")
			} else {
				fmt.Printf("Activate it with `ciclo plan switch %s`.\n", result.Plan.ID[:8])
			}
			return nil
		},
	}
}
