package contract

import (
	"time"

	"github.com/mateusrangel/ciclo/internal/domain"
)

// BuildScheduleRequest selects which plan to schedule and which window of
// the generated horizon to return.
type BuildScheduleRequest struct {
	// PlanID selects an explicit plan; empty means the active plan.
	PlanID string
	// From trims days before this date from the response. Nil means the
	// plan's start date.
	From *time.Time
	// Days limits the response window; 0 means the whole horizon.
	Days int
}

// NewBuildScheduleRequest builds a request for the active plan's full
// horizon.
func NewBuildScheduleRequest() BuildScheduleRequest {
	return BuildScheduleRequest{}
}

// BuildScheduleResponse is one deterministic generation run: the day-keyed
// schedule plus enough context for a caller to render it.
type BuildScheduleResponse struct {
	GeneratedAt time.Time
	PlanID      string
	PlanName    string
	StartDate   time.Time
	Level       domain.Level
	IsPaused    bool
	Days        map[string][]domain.ScheduledItem
	Cursors     map[string]int
	Warnings    []string
}

type ScheduleErrorCode string

const (
	ErrNoActivePlan  ScheduleErrorCode = "NO_ACTIVE_PLAN"
	ErrPlanNotFound  ScheduleErrorCode = "PLAN_NOT_FOUND"
	ErrInvalidWindow ScheduleErrorCode = "INVALID_WINDOW"
	ErrInternalError ScheduleErrorCode = "INTERNAL_ERROR"
)

type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}
