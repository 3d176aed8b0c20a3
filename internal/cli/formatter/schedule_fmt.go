package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mateusrangel/ciclo/internal/contract"
	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/repository"
)

// SortedDates returns the schedule's day keys in chronological order.
// Keys are ISO dates, so string order is date order.
func SortedDates(days map[string][]domain.ScheduledItem) []string {
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormatScheduleDay renders one day's block: a dated header followed by
// the item table.
func FormatScheduleDay(date string, items []domain.ScheduledItem) string {
	var b strings.Builder

	label := date
	if t, err := time.Parse("2006-01-02", date); err == nil {
		label = fmt.Sprintf("%s %s · %s", WeekdayShort(t.Weekday()), date, HumanDate(t))
	}
	total := 0
	for _, it := range items {
		total += it.Minutes
	}
	b.WriteString(Header(label) + "\n")

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		title := it.Title
		if it.Completed {
			title = StyleDim.Render(title + " ✔")
		}
		kind := GoalTypePill(it.Type)
		where := it.Discipline
		if it.Subject != "" {
			where += " / " + it.Subject
		}
		if it.Simulado != nil {
			kind = StyleRed.Render("■ Mock exam")
			where = fmt.Sprintf("%d questions", it.Simulado.TotalQuestions)
		}
		rows = append(rows, []string{
			kind,
			title,
			Dim(where),
			StyleYellow.Render(FormatMinutes(it.Minutes)),
		})
	}
	b.WriteString(RenderTable([]string{"Type", "Goal", "Where", "Time"}, rows))
	b.WriteString(Dim(fmt.Sprintf("total %s\n", FormatMinutes(total))))

	return b.String()
}

// FormatSchedule renders the whole response: warnings first, then one
// block per scheduled day.
func FormatSchedule(resp *contract.BuildScheduleResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Bold(resp.PlanName),
		Dim(fmt.Sprintf("(level %s, starts %s)", resp.Level, resp.StartDate.Format("2006-01-02")))))
	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("! "+w) + "\n")
	}
	b.WriteString("\n")

	dates := SortedDates(resp.Days)
	if len(dates) == 0 {
		b.WriteString(Dim("Nothing scheduled.\n"))
		return b.String()
	}
	for _, date := range dates {
		b.WriteString(FormatScheduleDay(date, resp.Days[date]))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPlanList renders the plan table shown by `ciclo plan list`.
func FormatPlanList(summaries []repository.PlanSummary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		start := "—"
		if s.Config != nil {
			start = s.Config.StartDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			TruncID(s.Plan.ID),
			Bold(s.Plan.Name),
			string(s.Plan.CycleMode),
			fmt.Sprintf("%d", s.GoalsNum),
			start,
			PlanStatusPill(s.Config),
		})
	}
	return RenderTable([]string{"ID", "Plan", "Mode", "Goals", "Start", "Status"}, rows)
}

// FormatRoutine renders the weekly minutes table in Sunday-first order.
func FormatRoutine(r domain.Routine) string {
	rows := make([][]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		minutes := r.MinutesOn(d)
		cell := FormatMinutes(minutes)
		if minutes <= 0 {
			cell = Dim("rest")
		}
		rows = append(rows, []string{d.String(), cell})
	}
	out := RenderTable([]string{"Day", "Study time"}, rows)
	return out + Dim(fmt.Sprintf("weekly total %s\n", FormatMinutes(r.WeeklyMinutes())))
}

// FormatStats renders the aggregate progress view.
func FormatStats(stats *contract.ProgressStats) string {
	var b strings.Builder
	b.WriteString(Header("Progress") + "\n")
	b.WriteString(fmt.Sprintf("%s goals done, %s review passes\n",
		Bold(fmt.Sprintf("%d", stats.CompletedGoals)),
		Bold(fmt.Sprintf("%d", stats.CompletedReviews))))
	b.WriteString(fmt.Sprintf("total study time %s\n", StyleGreen.Render(FormatSeconds(stats.TotalSeconds))))
	for planID, seconds := range stats.PlanSeconds {
		if seconds > 0 {
			b.WriteString(fmt.Sprintf("  %s %s\n", TruncID(planID), FormatSeconds(seconds)))
		}
	}
	return b.String()
}
