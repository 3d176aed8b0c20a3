package formatter

import (
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/domain"
)

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatSeconds converts accumulated seconds into the same shape as
// FormatMinutes, rounding down to whole minutes.
func FormatSeconds(seconds int64) string {
	return FormatMinutes(int(seconds / 60))
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	tomorrow := now.AddDate(0, 0, 1)
	y3, m3, d3 := tomorrow.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Tomorrow"
	}
	return t.Format("Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// GoalTypePill returns a colored label for a goal type.
func GoalTypePill(t domain.GoalType) string {
	switch t {
	case domain.GoalLesson:
		return StyleBlue.Render("▶ Lesson")
	case domain.GoalMaterial:
		return StyleFg.Render("▤ Material")
	case domain.GoalQuestionSet:
		return StyleYellow.Render("? Questions")
	case domain.GoalStatuteReading:
		return StylePurple.Render("§ Statute")
	case domain.GoalSummary:
		return StyleGreen.Render("✎ Summary")
	case domain.GoalReview:
		return StyleDim.Render("↻ Review")
	default:
		return StyleDim.Render(string(t))
	}
}

// PlanStatusPill returns a colored lifecycle indicator for a plan config.
func PlanStatusPill(cfg *domain.PlanConfig) string {
	switch {
	case cfg == nil:
		return StyleDim.Render("— Never scheduled")
	case cfg.IsActive && cfg.IsPaused:
		return StyleYellow.Render("○ Active (paused)")
	case cfg.IsActive:
		return StyleGreen.Render("● Active")
	case cfg.IsPaused:
		return StyleDim.Render("○ Paused")
	default:
		return StyleDim.Render("· Inactive")
	}
}

// WeekdayShort returns the three-letter weekday label.
func WeekdayShort(d time.Weekday) string {
	return d.String()[:3]
}
