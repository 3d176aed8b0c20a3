package domain

import "time"

// PlanConfig is the per-plan lifecycle state the generator is parametrized
// by: the anchor date of day 0 and the pause flag. Exactly one config is
// active at a time; switching plans pauses the previous one.
type PlanConfig struct {
	PlanID    string
	StartDate time.Time
	IsPaused  bool
	IsActive  bool
	UpdatedAt time.Time
}
