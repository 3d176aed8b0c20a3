package scheduler

import (
	"sort"

	"github.com/mateusrangel/ciclo/internal/domain"
)

// FlatGoal is the enriched goal view produced by flattening: the goal plus
// the discipline and subject labels it was found under. The domain Goal is
// copied, never annotated in place.
type FlatGoal struct {
	Goal       domain.Goal
	Discipline string
	Subject    string
}

// FlattenDiscipline produces the discipline's full ordered goal sequence:
// subjects by their order, then each subject's goals by theirs, ties
// broken by original insertion order. Per-discipline cursors index into
// this sequence.
func FlattenDiscipline(d domain.Discipline) []FlatGoal {
	subjects := make([]domain.Subject, len(d.Subjects))
	copy(subjects, d.Subjects)
	sort.SliceStable(subjects, func(i, j int) bool {
		return subjects[i].Order < subjects[j].Order
	})

	var flat []FlatGoal
	for _, s := range subjects {
		goals := make([]domain.Goal, len(s.Goals))
		copy(goals, s.Goals)
		sort.SliceStable(goals, func(i, j int) bool {
			return goals[i].Order < goals[j].Order
		})
		for _, g := range goals {
			flat = append(flat, FlatGoal{
				Goal:       g,
				Discipline: d.Name,
				Subject:    s.Name,
			})
		}
	}
	return flat
}
