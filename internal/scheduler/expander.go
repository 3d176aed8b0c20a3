package scheduler

import "github.com/mateusrangel/ciclo/internal/domain"

// ExpandedItem is one concrete step of a cycle after folder expansion:
// either a discipline reference with its goal quota, or a mock exam.
type ExpandedItem struct {
	Kind          domain.CycleItemKind
	TargetID      string
	SubjectsCount int
}

// ExpandCycle turns a cycle's abstract item list into the concrete ordered
// sequence the generator walks. Folder items become one item per member
// discipline in discipline order, carrying the original SubjectsCount;
// discipline and exam items pass through unchanged. Folder membership is
// recomputed on every call, never cached, so authoring changes are picked
// up by the next expansion. A dangling folder expands to nothing.
func ExpandCycle(c domain.Cycle, plan *domain.StudyPlan) []ExpandedItem {
	var out []ExpandedItem
	for _, item := range c.Items {
		switch item.Kind {
		case domain.ItemFolder:
			for _, d := range plan.DisciplinesInFolder(item.TargetID) {
				out = append(out, ExpandedItem{
					Kind:          domain.ItemDiscipline,
					TargetID:      d.ID,
					SubjectsCount: item.SubjectsCount,
				})
			}
		case domain.ItemDiscipline:
			out = append(out, ExpandedItem{
				Kind:          domain.ItemDiscipline,
				TargetID:      item.TargetID,
				SubjectsCount: item.SubjectsCount,
			})
		case domain.ItemSimulado:
			out = append(out, ExpandedItem{
				Kind:     domain.ItemSimulado,
				TargetID: item.TargetID,
			})
		}
	}
	return out
}
