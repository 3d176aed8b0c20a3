package formatter

import (
	"testing"
	"time"

	"github.com/mateusrangel/ciclo/internal/contract"
	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/mateusrangel/ciclo/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestSortedDates(t *testing.T) {
	days := map[string][]domain.ScheduledItem{
		"2026-03-09": nil,
		"2026-03-02": nil,
		"2026-03-03": nil,
	}
	assert.Equal(t, []string{"2026-03-02", "2026-03-03", "2026-03-09"}, SortedDates(days))
}

func TestFormatScheduleDay(t *testing.T) {
	items := []domain.ScheduledItem{
		{
			Date: "2026-03-02", GoalID: "g-1", Type: domain.GoalMaterial,
			Title: "Contratos", Discipline: "Direito", Subject: "Civil", Minutes: 50,
		},
		{
			Date: "2026-03-02", GoalID: "sim-1", Title: "Simulado 1", Minutes: 120,
			Simulado: &domain.Simulado{ID: "sim-1", Title: "Simulado 1", TotalQuestions: 40},
		},
	}

	out := FormatScheduleDay("2026-03-02", items)

	assert.Contains(t, out, "Mon 2026-03-02")
	assert.Contains(t, out, "Contratos")
	assert.Contains(t, out, "Direito / Civil")
	assert.Contains(t, out, "Mock exam")
	assert.Contains(t, out, "40 questions")
	assert.Contains(t, out, "total 2h 50m")
}

func TestFormatSchedule(t *testing.T) {
	resp := &contract.BuildScheduleResponse{
		PlanName:  "OAB",
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Level:     domain.LevelBeginner,
		Warnings:  []string{"routine has no study days; set weekly minutes to get a schedule"},
		Days: map[string][]domain.ScheduledItem{
			"2026-03-02": {{GoalID: "g-1", Type: domain.GoalMaterial, Title: "Contratos", Minutes: 50}},
		},
	}

	out := FormatSchedule(resp)
	assert.Contains(t, out, "OAB")
	assert.Contains(t, out, "level beginner")
	assert.Contains(t, out, "! routine has no study days")
	assert.Contains(t, out, "Contratos")
}

func TestFormatSchedule_Empty(t *testing.T) {
	resp := &contract.BuildScheduleResponse{
		PlanName:  "OAB",
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Level:     domain.LevelBeginner,
	}
	assert.Contains(t, FormatSchedule(resp), "Nothing scheduled.")
}

func TestFormatPlanList(t *testing.T) {
	summaries := []repository.PlanSummary{
		{
			Plan: domain.StudyPlan{ID: "abcdef1234567890", Name: "OAB", CycleMode: domain.CycleRotating},
			Config: &domain.PlanConfig{
				PlanID:    "abcdef1234567890",
				StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				IsActive:  true,
			},
			GoalsNum: 12,
		},
		{
			Plan:     domain.StudyPlan{ID: "0000111122223333", Name: "TJ", CycleMode: domain.CycleSequential},
			GoalsNum: 3,
		},
	}

	out := FormatPlanList(summaries)
	assert.Contains(t, out, "abcdef12")
	assert.Contains(t, out, "OAB")
	assert.Contains(t, out, "rotating")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "2026-03-02")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "Never scheduled")
}

func TestFormatRoutine(t *testing.T) {
	out := FormatRoutine(domain.Routine{time.Monday: 90, time.Saturday: 240})

	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "4h")
	assert.Contains(t, out, "rest")
	assert.Contains(t, out, "weekly total 5h 30m")
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(&contract.ProgressStats{
		CompletedGoals:   7,
		CompletedReviews: 2,
		TotalSeconds:     5400,
		PlanSeconds:      map[string]int64{"abcdef1234567890": 5400, "idle-plan": 0},
	})

	assert.Contains(t, out, "7")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "idle-pla", "plans with no time are omitted")
}
