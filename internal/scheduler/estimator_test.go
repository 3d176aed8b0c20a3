package scheduler

import (
	"testing"

	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimate_LessonSumsSubLessons(t *testing.T) {
	g := domain.Goal{
		Type: domain.GoalLesson,
		Size: domain.LessonSizing{Lessons: []domain.SubLesson{
			{Minutes: 20}, {Minutes: 35}, {Minutes: 5},
		}},
	}
	assert.Equal(t, 60, Estimate(g, domain.LevelBeginner))
	// Level never affects lesson goals.
	assert.Equal(t, 60, Estimate(g, domain.LevelAdvanced))
}

func TestEstimate_LessonIgnoresNegativeDurations(t *testing.T) {
	g := domain.Goal{
		Type: domain.GoalLesson,
		Size: domain.LessonSizing{Lessons: []domain.SubLesson{
			{Minutes: 30}, {Minutes: -10}, {Minutes: 0},
		}},
	}
	assert.Equal(t, 30, Estimate(g, domain.LevelBeginner))
}

func TestEstimate_SummaryUsesManualMinutes(t *testing.T) {
	g := domain.Goal{Type: domain.GoalSummary, Size: domain.ManualSizing{Minutes: 45}}
	assert.Equal(t, 45, Estimate(g, domain.LevelIntermediate))

	g.Size = domain.ManualSizing{Minutes: -5}
	assert.Equal(t, 0, Estimate(g, domain.LevelIntermediate))
}

func TestEstimate_PageBasedTable(t *testing.T) {
	tests := []struct {
		name  string
		typ   domain.GoalType
		level domain.Level
		pages int
		want  int
	}{
		{"material beginner", domain.GoalMaterial, domain.LevelBeginner, 10, 50},
		{"material intermediate", domain.GoalMaterial, domain.LevelIntermediate, 10, 30},
		{"material advanced", domain.GoalMaterial, domain.LevelAdvanced, 10, 10},
		{"questions beginner", domain.GoalQuestionSet, domain.LevelBeginner, 4, 40},
		{"questions intermediate", domain.GoalQuestionSet, domain.LevelIntermediate, 4, 24},
		{"questions advanced", domain.GoalQuestionSet, domain.LevelAdvanced, 4, 8},
		{"statute beginner", domain.GoalStatuteReading, domain.LevelBeginner, 6, 30},
		{"statute advanced", domain.GoalStatuteReading, domain.LevelAdvanced, 6, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := domain.Goal{Type: tc.typ, Size: domain.PageSizing{Pages: tc.pages, Repetitions: 1}}
			assert.Equal(t, tc.want, Estimate(g, tc.level))
		})
	}
}

func TestEstimate_StatuteRepetitionMultiplier(t *testing.T) {
	g := domain.Goal{Type: domain.GoalStatuteReading, Size: domain.PageSizing{Pages: 10, Repetitions: 3}}
	assert.Equal(t, 150, Estimate(g, domain.LevelBeginner))

	// A single pass applies no multiplier; zero repetitions means one pass.
	g.Size = domain.PageSizing{Pages: 10, Repetitions: 1}
	assert.Equal(t, 50, Estimate(g, domain.LevelBeginner))
	g.Size = domain.PageSizing{Pages: 10}
	assert.Equal(t, 50, Estimate(g, domain.LevelBeginner))

	// Repetitions never multiply plain materials.
	g = domain.Goal{Type: domain.GoalMaterial, Size: domain.PageSizing{Pages: 10, Repetitions: 3}}
	assert.Equal(t, 50, Estimate(g, domain.LevelBeginner))
}

func TestEstimate_InvalidInputsYieldZero(t *testing.T) {
	tests := []struct {
		name string
		goal domain.Goal
	}{
		{"review has no duration rule", domain.Goal{Type: domain.GoalReview, Size: domain.ManualSizing{Minutes: 30}}},
		{"unknown type", domain.Goal{Type: domain.GoalType("PODCAST"), Size: domain.ManualSizing{Minutes: 30}}},
		{"zero pages", domain.Goal{Type: domain.GoalMaterial, Size: domain.PageSizing{Pages: 0}}},
		{"negative pages", domain.Goal{Type: domain.GoalMaterial, Size: domain.PageSizing{Pages: -3}}},
		{"nil sizing", domain.Goal{Type: domain.GoalMaterial}},
		{"mismatched sizing", domain.Goal{Type: domain.GoalMaterial, Size: domain.ManualSizing{Minutes: 30}}},
		{"unknown level", domain.Goal{Type: domain.GoalMaterial, Size: domain.PageSizing{Pages: 10}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := domain.LevelBeginner
			if tc.name == "unknown level" {
				level = domain.Level("expert")
			}
			assert.Equal(t, 0, Estimate(tc.goal, level))
		})
	}
}
