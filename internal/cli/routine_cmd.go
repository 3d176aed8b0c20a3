package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mateusrangel/ciclo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var weekdayFlags = []struct {
	name string
	day  time.Weekday
}{
	{"sun", time.Sunday},
	{"mon", time.Monday},
	{"tue", time.Tuesday},
	{"wed", time.Wednesday},
	{"thu", time.Thursday},
	{"fri", time.Friday},
	{"sat", time.Saturday},
}

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage the weekly study routine",
	}

	cmd.AddCommand(
		newRoutineShowCmd(app),
		newRoutineSetCmd(app),
		newRoutineEditCmd(app),
	)

	return cmd
}

func newRoutineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show minutes per weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			routine, err := app.Routines.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRoutine(routine))
			return nil
		},
	}
}

func newRoutineSetCmd(app *App) *cobra.Command {
	minutes := make(map[time.Weekday]*int, 7)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set minutes for specific weekdays",
		Example: `  ciclo routine set --mon 120 --wed 120 --sat 240
  ciclo routine set --sun 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			routine, err := app.Routines.Get(ctx)
			if err != nil {
				return err
			}

			changed := false
			for _, wf := range weekdayFlags {
				if cmd.Flags().Changed(wf.name) {
					routine[wf.day] = *minutes[wf.day]
					changed = true
				}
			}
			if !changed {
				return fmt.Errorf("nothing to set; pass at least one weekday flag")
			}

			if err := app.Routines.Set(ctx, routine); err != nil {
				return err
			}
			fmt.Print(formatter.FormatRoutine(routine))
			return nil
		},
	}

	for _, wf := range weekdayFlags {
		v := new(int)
		minutes[wf.day] = v
		cmd.Flags().IntVar(v, wf.name, 0, fmt.Sprintf("Minutes on %s", wf.day))
	}

	return cmd
}

func newRoutineEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the whole week in a form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("routine edit requires a terminal; use `routine set` instead")
			}

			ctx := context.Background()
			routine, err := app.Routines.Get(ctx)
			if err != nil {
				return err
			}

			values := make([]string, 7)
			fields := make([]huh.Field, 0, 7)
			for _, wf := range weekdayFlags {
				i := int(wf.day)
				values[i] = strconv.Itoa(routine.MinutesOn(wf.day))
				fields = append(fields, huh.NewInput().
					Title(wf.day.String()).
					Description("minutes, 0 = rest day").
					Value(&values[i]).
					Validate(validateMinutes))
			}

			form := huh.NewForm(huh.NewGroup(fields...)).
				WithTheme(cicloHuhTheme()).
				WithShowHelp(false)
			if err := form.Run(); err != nil {
				return err
			}

			for _, wf := range weekdayFlags {
				m, err := strconv.Atoi(strings.TrimSpace(values[int(wf.day)]))
				if err != nil {
					return fmt.Errorf("invalid minutes for %s: %w", wf.day, err)
				}
				routine[wf.day] = m
			}

			if err := app.Routines.Set(ctx, routine); err != nil {
				return err
			}
			fmt.Print(formatter.FormatRoutine(routine))
			return nil
		},
	}
}

func validateMinutes(s string) error {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number of minutes")
	}
	if m < 0 {
		return fmt.Errorf("minutes must not be negative")
	}
	return nil
}
