package domain

import "time"

// Simulado is a mock exam, scheduled and attempted as a single unit
// distinct from goals.
type Simulado struct {
	ID             string
	Title          string
	TotalQuestions int
	Order          int
}

// SimuladoAttempt records that the learner already took a mock exam; its
// only scheduling effect is that the exam is skipped in later runs.
type SimuladoAttempt struct {
	ID         string
	SimuladoID string
	TakenAt    time.Time
}
