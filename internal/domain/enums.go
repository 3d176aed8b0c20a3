package domain

type GoalType string

const (
	GoalLesson         GoalType = "LESSON"
	GoalMaterial       GoalType = "MATERIAL"
	GoalQuestionSet    GoalType = "QUESTION_SET"
	GoalStatuteReading GoalType = "STATUTE_READING"
	GoalSummary        GoalType = "SUMMARY"
	GoalReview         GoalType = "REVIEW"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"LESSON": true, "MATERIAL": true, "QUESTION_SET": true,
	"STATUTE_READING": true, "SUMMARY": true, "REVIEW": true,
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ValidLevels is the canonical set of accepted proficiency levels.
var ValidLevels = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

type CycleItemKind string

const (
	ItemDiscipline CycleItemKind = "discipline"
	ItemFolder     CycleItemKind = "folder"
	ItemSimulado   CycleItemKind = "simulado"
)

type CycleMode string

const (
	// CycleRotating wraps back to the first cycle when the last one is
	// exhausted, so content keeps flowing for the whole horizon.
	CycleRotating CycleMode = "rotating"
	// CycleSequential runs the cycle list once and then stops emitting.
	CycleSequential CycleMode = "sequential"
)
