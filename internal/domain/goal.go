package domain

// SubLesson is one video/segment inside a LESSON goal with its own runtime.
type SubLesson struct {
	ID      string
	Title   string
	Minutes int
}

// Sizing describes how big a goal is. Each goal type carries exactly one
// sizing variant, so a LESSON can never hold a page count and vice versa.
type Sizing interface {
	sizing()
}

// LessonSizing sizes a LESSON goal by the sum of its sub-lesson runtimes.
type LessonSizing struct {
	Lessons []SubLesson
}

// PageSizing sizes page-based goals (MATERIAL, QUESTION_SET,
// STATUTE_READING). Repetitions only applies to statute readings and is
// ignored unless it exceeds 1.
type PageSizing struct {
	Pages       int
	Repetitions int
}

// ManualSizing carries an admin-supplied minute value (SUMMARY goals).
type ManualSizing struct {
	Minutes int
}

func (LessonSizing) sizing() {}
func (PageSizing) sizing()   {}
func (ManualSizing) sizing() {}

// Goal is the atomic unit of study work. Content is immutable once
// authored; completion state lives in UserProgress, never on the Goal.
type Goal struct {
	ID        string
	SubjectID string
	Title     string
	Type      GoalType
	Order     int
	Size      Sizing
}
