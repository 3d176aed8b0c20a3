package domain

// ScheduledItem is one entry of the generated calendar: a goal (or mock
// exam) placed on a concrete date with its estimated minutes. Labels are a
// denormalized view produced by flattening; the underlying Goal is never
// mutated.
type ScheduledItem struct {
	Date       string // YYYY-MM-DD
	GoalID     string
	Type       GoalType
	Title      string
	Discipline string
	Subject    string
	Minutes    int
	Completed  bool

	// Simulado is set only when the item represents a mock exam; GoalID is
	// then the exam id and Type is empty.
	Simulado *Simulado
}
