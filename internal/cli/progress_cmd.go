package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mateusrangel/ciclo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track completed goals and study time",
	}

	cmd.AddCommand(
		newProgressDoneCmd(app),
		newProgressUndoCmd(app),
		newProgressReviewCmd(app),
		newProgressAttemptCmd(app),
		newProgressStatsCmd(app),
	)

	return cmd
}

func newProgressDoneCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "done GOAL_ID",
		Short: "Mark a goal as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Progress.MarkGoalDone(context.Background(), args[0], minutes); err != nil {
				return err
			}
			fmt.Println("Goal marked done. Tomorrow's schedule moves on without it.")
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes actually studied (credited to the active plan)")

	return cmd
}

func newProgressUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo GOAL_ID",
		Short: "Remove a goal completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Progress.UndoGoal(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Completion removed. Study time already logged is kept.")
			return nil
		},
	}
}

func newProgressReviewCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "review GOAL_ID INDEX",
		Short: "Mark one review pass over a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid review index %q: %w", args[1], err)
			}
			if err := app.Progress.MarkReviewDone(context.Background(), args[0], idx, minutes); err != nil {
				return err
			}
			fmt.Printf("Review pass %d recorded.\n", idx)
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes spent on the review")

	return cmd
}

func newProgressAttemptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "attempt SIMULADO_ID",
		Short: "Record a mock exam attempt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Progress.RecordAttempt(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Attempt recorded. The exam leaves future schedules.")
			return nil
		},
	}
}

func newProgressStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Progress.Stats(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStats(stats))
			return nil
		},
	}
}
