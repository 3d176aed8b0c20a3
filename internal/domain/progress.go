package domain

import (
	"fmt"
	"strings"
)

// UserProgress is the learner's completion state: finished goal ids,
// finished review passes ("goalID#revisionIndex"), and accumulated study
// time in seconds, total and per plan.
type UserProgress struct {
	CompletedGoals   map[string]bool
	CompletedReviews map[string]bool
	TotalSeconds     int64
	PlanSeconds      map[string]int64
}

// NewUserProgress returns an empty progress record with initialized sets.
func NewUserProgress() *UserProgress {
	return &UserProgress{
		CompletedGoals:   make(map[string]bool),
		CompletedReviews: make(map[string]bool),
		PlanSeconds:      make(map[string]int64),
	}
}

// ReviewKey builds the composite id of one review pass over a goal.
func ReviewKey(goalID string, revisionIndex int) string {
	return fmt.Sprintf("%s#%d", goalID, revisionIndex)
}

// GoalIDOfReview extracts the goal id embedded in a review key.
func GoalIDOfReview(reviewKey string) string {
	if i := strings.Index(reviewKey, "#"); i >= 0 {
		return reviewKey[:i]
	}
	return reviewKey
}

// MarkGoalDone records a goal completion and credits the study time to the
// plan and the running total.
func (u *UserProgress) MarkGoalDone(goalID, planID string, seconds int64) {
	u.CompletedGoals[goalID] = true
	u.AddStudyTime(planID, seconds)
}

// MarkReviewDone records one review pass over a goal.
func (u *UserProgress) MarkReviewDone(goalID string, revisionIndex int) {
	u.CompletedReviews[ReviewKey(goalID, revisionIndex)] = true
}

// AddStudyTime credits seconds to the plan bucket and the total.
func (u *UserProgress) AddStudyTime(planID string, seconds int64) {
	if seconds <= 0 {
		return
	}
	u.TotalSeconds += seconds
	u.PlanSeconds[planID] += seconds
}

// StripPlan removes every completion belonging to the given goal id set
// and zeroes the plan's accumulated seconds. This is the destructive half
// of the lifecycle restart; callers persist the result atomically.
func (u *UserProgress) StripPlan(planID string, goalIDs []string) int {
	inPlan := make(map[string]bool, len(goalIDs))
	for _, id := range goalIDs {
		inPlan[id] = true
	}

	removed := 0
	for id := range u.CompletedGoals {
		if inPlan[id] {
			delete(u.CompletedGoals, id)
			removed++
		}
	}
	for key := range u.CompletedReviews {
		if inPlan[GoalIDOfReview(key)] {
			delete(u.CompletedReviews, key)
		}
	}
	u.PlanSeconds[planID] = 0
	return removed
}
