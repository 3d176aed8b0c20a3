package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mateusrangel/ciclo/internal/cli/formatter"
	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/spf13/cobra"
)

// resolvePlanID accepts a plan id, an id prefix, or a case-insensitive
// plan name and resolves it to a full id. Empty input passes through so
// lifecycle commands fall back to the active plan.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", nil
	}

	summaries, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range summaries {
		if s.Plan.ID == input {
			return s.Plan.ID, nil
		}
	}
	for _, s := range summaries {
		if strings.EqualFold(s.Plan.Name, input) {
			return s.Plan.ID, nil
		}
	}

	var matches []string
	for _, s := range summaries {
		if strings.HasPrefix(s.Plan.ID, input) {
			matches = append(matches, s.Plan.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage study plans",
	}

	cmd.AddCommand(
		newPlanListCmd(app),
		newPlanSwitchCmd(app),
		newPlanPauseCmd(app),
		newPlanResumeCmd(app),
		newPlanRescheduleCmd(app),
		newPlanRestartCmd(app),
		newPlanRemoveCmd(app),
		newPlanLevelCmd(app),
	)

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("No plans found. Import one with `ciclo import`.")
				return nil
			}
			fmt.Print(formatter.FormatPlanList(summaries))
			return nil
		},
	}
}

func newPlanSwitchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "switch PLAN",
		Short: "Make a plan the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Switch(ctx, planID); err != nil {
				return err
			}
			fmt.Printf("Switched active plan to %s\n", planID)
			return nil
		},
	}
}

func newPlanPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause [PLAN]",
		Short: "Pause a plan (defaults to the active one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}
			if err := app.Plans.Pause(ctx, planID); err != nil {
				return err
			}
			fmt.Println("Plan paused. The schedule stays empty until you resume.")
			return nil
		},
	}
}

func newPlanResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume [PLAN]",
		Short: "Resume a paused plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}
			if err := app.Plans.Resume(ctx, planID); err != nil {
				return err
			}
			fmt.Println("Plan resumed.")
			return nil
		},
	}
}

func newPlanRescheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reschedule [PLAN]",
		Short: "Restart the calendar from today, keeping progress",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}
			if err := app.Plans.Reschedule(ctx, planID); err != nil {
				return err
			}
			fmt.Println("Plan rescheduled from today. Completed goals are kept.")
			return nil
		},
	}
}

func newPlanRestartCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restart [PLAN]",
		Short: "Wipe a plan's progress and start over from today",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}

			if !yes {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("restart wipes the plan's progress; pass --yes to confirm")
				}
				ok, err := confirm(
					"Restart this plan?",
					"Its completed goals, reviews and study time will be wiped. Other plans are untouched.",
				)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted.")
					return nil
				}
			}

			result, err := app.Plans.Restart(ctx, planID)
			if err != nil {
				return err
			}
			fmt.Printf("Plan restarted from today; %d completed goals wiped.\n", result.RemovedCompletions)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PLAN",
		Short: "Delete a plan and its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(ctx, planID); err != nil {
				return err
			}
			fmt.Printf("Removed plan %s\n", planID)
			return nil
		},
	}
}

func newPlanLevelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "level LEVEL",
		Short: "Set your proficiency level (beginner|intermediate|advanced)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := domain.Level(strings.ToLower(args[0]))
			if err := app.Plans.SetLevel(context.Background(), level); err != nil {
				return err
			}
			fmt.Printf("Level set to %s. Page-based goals are re-estimated on the next schedule.\n", level)
			return nil
		},
	}
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
