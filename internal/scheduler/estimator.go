package scheduler

import "github.com/mateusrangel/ciclo/internal/domain"

// minutesPerPage is the fixed per-page duration table by goal type and
// learner level.
var minutesPerPage = map[domain.GoalType]map[domain.Level]int{
	domain.GoalMaterial: {
		domain.LevelBeginner:     5,
		domain.LevelIntermediate: 3,
		domain.LevelAdvanced:     1,
	},
	domain.GoalQuestionSet: {
		domain.LevelBeginner:     10,
		domain.LevelIntermediate: 6,
		domain.LevelAdvanced:     2,
	},
	domain.GoalStatuteReading: {
		domain.LevelBeginner:     5,
		domain.LevelIntermediate: 3,
		domain.LevelAdvanced:     1,
	},
}

// Estimate maps a goal's sizing and the learner's level to expected
// minutes. Unknown types, mismatched sizing variants and invalid numbers
// all yield 0; the generator applies its own fallback when it needs a
// non-zero placeholder.
func Estimate(g domain.Goal, level domain.Level) int {
	switch g.Type {
	case domain.GoalLesson:
		size, ok := g.Size.(domain.LessonSizing)
		if !ok {
			return 0
		}
		total := 0
		for _, l := range size.Lessons {
			if l.Minutes > 0 {
				total += l.Minutes
			}
		}
		return total

	case domain.GoalSummary:
		size, ok := g.Size.(domain.ManualSizing)
		if !ok || size.Minutes < 0 {
			return 0
		}
		return size.Minutes

	case domain.GoalMaterial, domain.GoalQuestionSet, domain.GoalStatuteReading:
		size, ok := g.Size.(domain.PageSizing)
		if !ok || size.Pages <= 0 {
			return 0
		}
		perPage := minutesPerPage[g.Type][level]
		if perPage <= 0 {
			return 0
		}
		minutes := size.Pages * perPage
		if g.Type == domain.GoalStatuteReading && size.Repetitions > 1 {
			minutes *= size.Repetitions
		}
		return minutes
	}
	return 0
}
