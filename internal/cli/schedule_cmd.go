package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/cli/formatter"
	"github.com/mateusrangel/ciclo/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value for YYYY-MM-DD flags.
type dateValue struct {
	t   *time.Time
	set bool
}

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string {
	if !d.set {
		return ""
	}
	return d.t.Format("2006-01-02")
}

func (d *dateValue) Set(s string) error {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	*d.t = t
	d.set = true
	return nil
}

func (d *dateValue) Type() string { return "date" }

func newScheduleCmd(app *App) *cobra.Command {
	var plan string
	var days int
	var interactive bool
	from := dateValue{t: new(time.Time)}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and show the study calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.BuildScheduleRequest{PlanID: "", Days: days}

			if plan != "" {
				planID, err := resolvePlanID(context.Background(), app, plan)
				if err != nil {
					return err
				}
				req.PlanID = planID
			}
			if from.set {
				req.From = from.t
			}

			resp, err := app.Schedule.Build(context.Background(), req)
			if err != nil {
				return err
			}

			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				return runScheduleBrowser(resp)
			}

			fmt.Print(formatter.FormatSchedule(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Plan to schedule (defaults to the active plan)")
	cmd.Flags().Var(&from, "from", "First day to show (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 14, "Window length in days (0 shows the whole horizon)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Browse the schedule in a scrollable viewer")

	return cmd
}
