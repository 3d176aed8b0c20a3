package scheduler

import (
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/domain"
)

const (
	dateLayout = "2006-01-02"

	// horizonDays caps the schedule at one year from the start date.
	horizonDays = 365

	// maxDayIterations bounds the per-day item-selection loop so malformed
	// cycles (only completed or empty content) cannot spin forever. On a
	// cap hit the day's partial result is kept.
	maxDayIterations = 500

	// fallbackMinutes stands in when the estimator yields 0 but the day
	// still needs a non-zero placeholder for the goal.
	fallbackMinutes = 30

	// examMinRemainingMin: a mock exam is only placed mid-day when more
	// than this many minutes remain (it always fits as the first item).
	examMinRemainingMin = 60

	// examMinutesPerQuestion sizes a mock exam by its question count.
	examMinutesPerQuestion = 3
)

// GenerateInput is everything one generation run consumes. Generate never
// mutates any of it.
type GenerateInput struct {
	Plan      *domain.StudyPlan
	Routine   domain.Routine
	StartDate time.Time
	Completed map[string]bool
	Level     domain.Level
	IsPaused  bool
	Exams     []domain.Simulado
	Attempts  []domain.SimuladoAttempt
}

// GenerateResult is the day-keyed schedule plus the state the run ended
// with. Cursors and warnings are returned rather than kept in ambient
// state so Generate stays referentially transparent.
type GenerateResult struct {
	Days     map[string][]domain.ScheduledItem
	Cursors  map[string]int
	Warnings []string
}

// Generate walks up to a year of calendar days, packing each study day
// with goals pulled through the plan's cycles. Per-discipline cursors and
// the cycle item pointer persist across the whole run: content is consumed
// in one continuous march, never revisited from the beginning, even when a
// rotating cycle list wraps.
func Generate(in GenerateInput) GenerateResult {
	res := GenerateResult{
		Days:    make(map[string][]domain.ScheduledItem),
		Cursors: make(map[string]int),
	}

	if in.IsPaused || in.Plan == nil || len(in.Plan.Cycles) == 0 || !in.Routine.HasStudyDay() {
		return res
	}

	examsByID := make(map[string]domain.Simulado, len(in.Exams))
	for _, e := range in.Exams {
		examsByID[e.ID] = e
	}
	attempted := make(map[string]bool, len(in.Attempts))
	for _, a := range in.Attempts {
		attempted[a.SimuladoID] = true
	}

	// Flattened goal sequences, computed once per discipline.
	flatCache := make(map[string][]FlatGoal)
	flatten := func(d *domain.Discipline) []FlatGoal {
		if flat, ok := flatCache[d.ID]; ok {
			return flat
		}
		flat := FlattenDiscipline(*d)
		flatCache[d.ID] = flat
		return flat
	}

	cycleIdx, itemIdx := 0, 0
	expanded := ExpandCycle(in.Plan.Cycles[0], in.Plan)

	capHits := 0
	firstCapDate := ""
	cyclesExhausted := false

	for dayOffset := 0; dayOffset < horizonDays && !cyclesExhausted; dayOffset++ {
		date := in.StartDate.AddDate(0, 0, dayOffset)
		minutesLeft := in.Routine.MinutesOn(date.Weekday())
		if minutesLeft <= 0 {
			continue
		}
		dateKey := date.Format(dateLayout)

		var dayItems []domain.ScheduledItem
		dayDone := false

		for iter := 0; !dayDone; iter++ {
			if iter >= maxDayIterations {
				capHits++
				if firstCapDate == "" {
					firstCapDate = dateKey
				}
				break
			}

			// Current cycle drained: move to the next, wrapping only when
			// the plan rotates.
			if itemIdx >= len(expanded) {
				cycleIdx++
				if cycleIdx >= len(in.Plan.Cycles) {
					if in.Plan.CycleMode != domain.CycleRotating {
						cyclesExhausted = true
						break
					}
					cycleIdx = 0
				}
				itemIdx = 0
				expanded = ExpandCycle(in.Plan.Cycles[cycleIdx], in.Plan)
				continue
			}

			item := expanded[itemIdx]
			switch item.Kind {
			case domain.ItemSimulado:
				exam, ok := examsByID[item.TargetID]
				if !ok || attempted[item.TargetID] {
					// Dangling reference or already taken: free skip.
					itemIdx++
					continue
				}
				if len(dayItems) == 0 || minutesLeft > examMinRemainingMin {
					e := exam
					dayItems = append(dayItems, domain.ScheduledItem{
						Date:     dateKey,
						GoalID:   exam.ID,
						Title:    exam.Title,
						Minutes:  exam.TotalQuestions * examMinutesPerQuestion,
						Simulado: &e,
					})
					// An exam owns the rest of the day.
					minutesLeft = 0
					itemIdx++
				}
				// Scheduled or not, the day ends here; an unplaced exam is
				// retried on a later day from this same pointer.
				dayDone = true

			case domain.ItemDiscipline:
				disc := in.Plan.DisciplineByID(item.TargetID)
				if disc == nil {
					itemIdx++
					continue
				}
				flat := flatten(disc)
				cursor := res.Cursors[disc.ID]
				taken := 0

				for taken < item.SubjectsCount && cursor < len(flat) {
					fg := flat[cursor]
					if in.Completed[fg.Goal.ID] {
						// Finished work advances the cursor at no time
						// cost; it must never eat the day's budget.
						cursor++
						continue
					}
					minutes := Estimate(fg.Goal, in.Level)
					if minutes == 0 {
						minutes = fallbackMinutes
					}
					if minutes > minutesLeft && len(dayItems) > 0 {
						// Does not fit and is not the day's first item:
						// leave the cursor here and retry tomorrow.
						dayDone = true
						break
					}
					dayItems = append(dayItems, domain.ScheduledItem{
						Date:       dateKey,
						GoalID:     fg.Goal.ID,
						Type:       fg.Goal.Type,
						Title:      fg.Goal.Title,
						Discipline: fg.Discipline,
						Subject:    fg.Subject,
						Minutes:    minutes,
					})
					minutesLeft -= minutes
					cursor++
					taken++
				}
				res.Cursors[disc.ID] = cursor
				if !dayDone {
					// Quota met or discipline drained: next cycle item.
					itemIdx++
				}

			default:
				itemIdx++
			}
		}

		if len(dayItems) > 0 {
			res.Days[dateKey] = dayItems
		}
	}

	if capHits > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"item selection hit the per-day iteration cap on %d day(s) (first on %s); cycles may reference only completed or empty content",
			capHits, firstCapDate))
	}

	return res
}
