package contract

// RestartResult reports what a lifecycle restart removed.
type RestartResult struct {
	PlanID             string
	RemovedCompletions int
}

// ProgressStats is the aggregate view printed by the progress command.
type ProgressStats struct {
	CompletedGoals   int
	CompletedReviews int
	TotalSeconds     int64
	PlanSeconds      map[string]int64
}
