package scheduler

import (
	"testing"
	"time"

	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is a fixed Monday used as the start date across generator tests.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// twoMaterialPlan is the worked example: one discipline with two subjects,
// each holding one 10-page MATERIAL goal (50 min at beginner), pulled by a
// single-quota cycle item.
func twoMaterialPlan(mode domain.CycleMode) *domain.StudyPlan {
	return &domain.StudyPlan{
		ID:        "plan-1",
		CycleMode: mode,
		Disciplines: []domain.Discipline{
			{ID: "d-1", PlanID: "plan-1", Name: "Direito", Order: 0, Subjects: []domain.Subject{
				{ID: "s-1", Name: "Civil", Order: 0, Goals: []domain.Goal{
					{ID: "g-1", Title: "Contratos", Type: domain.GoalMaterial, Order: 0,
						Size: domain.PageSizing{Pages: 10, Repetitions: 1}},
				}},
				{ID: "s-2", Name: "Penal", Order: 1, Goals: []domain.Goal{
					{ID: "g-2", Title: "Crimes", Type: domain.GoalMaterial, Order: 0,
						Size: domain.PageSizing{Pages: 10, Repetitions: 1}},
				}},
			}},
		},
		Cycles: []domain.Cycle{
			{ID: "c-1", PlanID: "plan-1", Order: 0, Items: []domain.CycleItem{
				{ID: "ci-1", Kind: domain.ItemDiscipline, TargetID: "d-1", SubjectsCount: 1, Order: 0},
			}},
		},
	}
}

func TestGenerate_FirstItemOverrideAcrossMondays(t *testing.T) {
	res := Generate(GenerateInput{
		Plan:      twoMaterialPlan(domain.CycleRotating),
		Routine:   domain.Routine{time.Monday: 40},
		StartDate: monday,
		Level:     domain.LevelBeginner,
	})

	require.Len(t, res.Days, 2)

	day0 := res.Days["2026-03-02"]
	require.Len(t, day0, 1)
	assert.Equal(t, "g-1", day0[0].GoalID)
	// 50 estimated minutes exceed the 40-minute budget: the day's first
	// item is placed anyway.
	assert.Equal(t, 50, day0[0].Minutes)
	assert.Equal(t, "Direito", day0[0].Discipline)
	assert.Equal(t, "Civil", day0[0].Subject)

	day7 := res.Days["2026-03-09"]
	require.Len(t, day7, 1)
	assert.Equal(t, "g-2", day7[0].GoalID)
	assert.Equal(t, 50, day7[0].Minutes)

	assert.Equal(t, 2, res.Cursors["d-1"])
}

func TestGenerate_CompletedGoalSkipsAtZeroCost(t *testing.T) {
	res := Generate(GenerateInput{
		Plan:      twoMaterialPlan(domain.CycleRotating),
		Routine:   domain.Routine{time.Monday: 40},
		StartDate: monday,
		Level:     domain.LevelBeginner,
		Completed: map[string]bool{"g-1": true},
	})

	// The skip consumes no budget, so the second goal lands on day 0.
	day0 := res.Days["2026-03-02"]
	require.Len(t, day0, 1)
	assert.Equal(t, "g-2", day0[0].GoalID)

	_, hasDay7 := res.Days["2026-03-09"]
	assert.False(t, hasDay7, "no incomplete work left after day 0")
}

func TestGenerate_PausedReturnsEmpty(t *testing.T) {
	res := Generate(GenerateInput{
		Plan:      twoMaterialPlan(domain.CycleRotating),
		Routine:   domain.Routine{time.Monday: 120},
		StartDate: monday,
		Level:     domain.LevelBeginner,
		IsPaused:  true,
	})
	assert.Empty(t, res.Days)
	assert.Empty(t, res.Warnings)
}

func TestGenerate_ShortCircuits(t *testing.T) {
	routine := domain.Routine{time.Monday: 60}

	t.Run("nil plan", func(t *testing.T) {
		res := Generate(GenerateInput{Routine: routine, StartDate: monday})
		assert.Empty(t, res.Days)
	})

	t.Run("no cycles", func(t *testing.T) {
		plan := twoMaterialPlan(domain.CycleRotating)
		plan.Cycles = nil
		res := Generate(GenerateInput{Plan: plan, Routine: routine, StartDate: monday})
		assert.Empty(t, res.Days)
	})

	t.Run("routine without study days", func(t *testing.T) {
		res := Generate(GenerateInput{
			Plan:      twoMaterialPlan(domain.CycleRotating),
			Routine:   domain.Routine{time.Monday: 0, time.Tuesday: -30},
			StartDate: monday,
		})
		assert.Empty(t, res.Days)
	})
}

func TestGenerate_SequentialModeIsASinglePass(t *testing.T) {
	res := Generate(GenerateInput{
		Plan:      twoMaterialPlan(domain.CycleSequential),
		Routine:   domain.Routine{time.Monday: 40},
		StartDate: monday,
		Level:     domain.LevelBeginner,
	})

	// The single cycle item yields one subject and the list is spent: the
	// run ends on day 0 without reaching the second goal, and without
	// spinning on a drained cycle.
	require.Len(t, res.Days, 1)
	day0 := res.Days["2026-03-02"]
	require.Len(t, day0, 1)
	assert.Equal(t, "g-1", day0[0].GoalID)
	assert.Equal(t, 1, res.Cursors["d-1"])
	assert.Empty(t, res.Warnings)
}

func TestGenerate_RotatingDrainedContentWarnsOnce(t *testing.T) {
	res := Generate(GenerateInput{
		Plan:      twoMaterialPlan(domain.CycleRotating),
		Routine:   domain.Routine{time.Monday: 40},
		StartDate: monday,
		Level:     domain.LevelBeginner,
	})

	// From the second Monday on, the wrapped cycle only finds consumed
	// content and spins to the cap; the run reports that once, not per
	// day, and keeps whatever the day had already placed.
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "iteration cap")
	assert.Contains(t, res.Warnings[0], "2026-03-09")
	require.Len(t, res.Days["2026-03-09"], 1)
}

func TestGenerate_PacksMultipleGoalsWithinBudget(t *testing.T) {
	plan := twoMaterialPlan(domain.CycleRotating)
	plan.Cycles[0].Items[0].SubjectsCount = 2

	res := Generate(GenerateInput{
		Plan:      plan,
		Routine:   domain.Routine{time.Monday: 120},
		StartDate: monday,
		Level:     domain.LevelBeginner,
	})

	day0 := res.Days["2026-03-02"]
	require.Len(t, day0, 2)
	assert.Equal(t, "g-1", day0[0].GoalID)
	assert.Equal(t, "g-2", day0[1].GoalID)
}

func TestGenerate_FallbackMinutesForUnestimableGoal(t *testing.T) {
	plan := twoMaterialPlan(domain.CycleRotating)
	plan.Disciplines[0].Subjects[0].Goals[0] = domain.Goal{
		ID: "g-rev", Title: "Revisão geral", Type: domain.GoalReview, Order: 0,
		Size: domain.ManualSizing{},
	}

	res := Generate(GenerateInput{
		Plan:      plan,
		Routine:   domain.Routine{time.Monday: 120},
		StartDate: monday,
		Level:     domain.LevelBeginner,
	})

	day0 := res.Days["2026-03-02"]
	require.NotEmpty(t, day0)
	assert.Equal(t, "g-rev", day0[0].GoalID)
	assert.Equal(t, 30, day0[0].Minutes)
}

func TestGenerate_DanglingDisciplineAdvancesForFree(t *testing.T) {
	plan := twoMaterialPlan(domain.CycleRotating)
	plan.Cycles[0].Items = append([]domain.CycleItem{
		{ID: "ci-0", Kind: domain.ItemDiscipline, TargetID: "d-gone", SubjectsCount: 1, Order: 0},
	}, plan.Cycles[0].Items...)

	res := Generate(GenerateInput{
		Plan:      plan,
		Routine:   domain.Routine{time.Monday: 120},
		StartDate: monday,
		Level:     domain.LevelBeginner,
	})

	day0 := res.Days["2026-03-02"]
	require.NotEmpty(t, day0)
	assert.Equal(t, "g-1", day0[0].GoalID)
}

func simuladoPlan(items ...domain.CycleItem) *domain.StudyPlan {
	plan := twoMaterialPlan(domain.CycleRotating)
	plan.Cycles[0].Items = items
	return plan
}

func TestGenerate_ExamOwnsTheDay(t *testing.T) {
	exam := domain.Simulado{ID: "sim-1", Title: "Simulado 1", TotalQuestions: 100}
	plan := simuladoPlan(
		domain.CycleItem{ID: "ci-1", Kind: domain.ItemSimulado, TargetID: "sim-1", Order: 0},
		domain.CycleItem{ID: "ci-2", Kind: domain.ItemDiscipline, TargetID: "d-1", SubjectsCount: 2, Order: 1},
	)
	plan.CycleMode = domain.CycleSequential

	res := Generate(GenerateInput{
		Plan:      plan,
		Routine:   domain.Routine{time.Monday: 480},
		StartDate: monday,
		Level:     domain.LevelBeginner,
		Exams:     []domain.Simulado{exam},
	})

	day0 := res.Days["2026-03-02"]
	require.Len(t, day0, 1, "the exam consumes the whole day")
	assert.Equal(t, "sim-1", day0[0].GoalID)
	assert.Equal(t, 300, day0[0].Minutes, "3 minutes per question")
	require.NotNil(t, day0[0].Simulado)
	assert.Equal(t, 100, day0[0].Simulado.TotalQuestions)

	// Regular goals resume the following week.
	day7 := res.Days["2026-03-09"]
	require.Len(t, day7, 2)
	assert.Equal(t, "g-1", day7[0].GoalID)
}

func TestGenerate_AttemptedExamIsSkippedForFree(t *testing.T) {
	exam := domain.Simulado{ID: "sim-1", Title: "Simulado 1", TotalQuestions: 100}
	plan := simuladoPlan(
		domain.CycleItem{ID: "ci-1", Kind: domain.ItemSimulado, TargetID: "sim-1", Order: 0},
		domain.CycleItem{ID: "ci-2", Kind: domain.ItemDiscipline, TargetID: "d-1", SubjectsCount: 1, Order: 1},
	)

	res := Generate(GenerateInput{
		Plan:      plan,
		Routine:   domain.Routine{time.Monday: 120},
		StartDate: monday,
		Level:     domain.LevelBeginner,
		Exams:     []domain.Simulado{exam},
		Attempts:  []domain.SimuladoAttempt{{ID: "a-1", SimuladoID: "sim-1"}},
	})

	day0 := res.Days["2026-03-02"]
	require.NotEmpty(t, day0)
	assert.Equal(t, "g-1", day0[0].GoalID, "attempted exam gives way to regular work")
	assert.Nil(t, day0[0].Simulado)
}

func TestGenerate_MidDayExamNeedsOverAnHour(t *testing.T) {
	exam := domain.Simulado{ID: "sim-1", Title: "Simulado 1", TotalQuestions: 30}
	items := []domain.CycleItem{
		{ID: "ci-1", Kind: domain.ItemDiscipline, TargetID: "d-1", SubjectsCount: 1, Order: 0},
		{ID: "ci-2", Kind: domain.ItemSimulado, TargetID: "sim-1", Order: 1},
	}

	t.Run("exactly 60 left defers the exam", func(t *testing.T) {
		plan := simuladoPlan(items...)
		res := Generate(GenerateInput{
			Plan:      plan,
			Routine:   domain.Routine{time.Monday: 110, time.Tuesday: 30},
			StartDate: monday,
			Level:     domain.LevelBeginner,
			Exams:     []domain.Simulado{exam},
		})

		// Monday: the 50-minute goal leaves 60, not enough for a mid-day
		// exam. Tuesday: the exam is the first item and is placed.
		day0 := res.Days["2026-03-02"]
		require.Len(t, day0, 1)
		assert.Equal(t, "g-1", day0[0].GoalID)

		day1 := res.Days["2026-03-03"]
		require.Len(t, day1, 1)
		assert.Equal(t, "sim-1", day1[0].GoalID)
		assert.Equal(t, 90, day1[0].Minutes)
	})

	t.Run("61 left places the exam mid-day", func(t *testing.T) {
		plan := simuladoPlan(items...)
		res := Generate(GenerateInput{
			Plan:      plan,
			Routine:   domain.Routine{time.Monday: 111},
			StartDate: monday,
			Level:     domain.LevelBeginner,
			Exams:     []domain.Simulado{exam},
		})

		day0 := res.Days["2026-03-02"]
		require.Len(t, day0, 2)
		assert.Equal(t, "g-1", day0[0].GoalID)
		assert.Equal(t, "sim-1", day0[1].GoalID)
	})
}

func TestGenerate_HorizonIsOneYear(t *testing.T) {
	// A plan whose single goal repeats nothing: only day 0 is populated,
	// and nothing at or past the horizon regardless of routine.
	plan := twoMaterialPlan(domain.CycleSequential)

	res := Generate(GenerateInput{
		Plan:      plan,
		Routine:   domain.Routine{time.Monday: 500},
		StartDate: monday,
		Level:     domain.LevelBeginner,
	})

	limit := monday.AddDate(0, 0, horizonDays).Format("2006-01-02")
	for key := range res.Days {
		assert.Less(t, key, limit)
	}
}
