package domain

import "time"

// Routine maps each weekday to the minutes available for study that day.
// A missing or zero entry means no study on that day.
type Routine map[time.Weekday]int

// MinutesOn returns the available minutes for the given weekday.
func (r Routine) MinutesOn(day time.Weekday) int {
	m := r[day]
	if m < 0 {
		return 0
	}
	return m
}

// HasStudyDay reports whether any weekday has positive availability.
func (r Routine) HasStudyDay() bool {
	for _, m := range r {
		if m > 0 {
			return true
		}
	}
	return false
}

// WeeklyMinutes returns the total declared minutes across the week.
func (r Routine) WeeklyMinutes() int {
	total := 0
	for _, m := range r {
		if m > 0 {
			total += m
		}
	}
	return total
}
