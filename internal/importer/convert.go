package importer

import (
	"time"

	"github.com/google/uuid"
	"github.com/mateusrangel/ciclo/internal/domain"
)

// GeneratedPlan bundles the domain objects produced by one conversion.
type GeneratedPlan struct {
	Plan      *domain.StudyPlan
	Simulados []domain.Simulado
	GoalCount int
}

// Convert transforms a validated PlanSchema into domain objects ready for
// persistence. Call ValidatePlanSchema first; Convert assumes the schema
// is valid. Order fields come from file position.
func Convert(schema *PlanSchema) *GeneratedPlan {
	now := time.Now().UTC()

	plan := &domain.StudyPlan{
		ID:        uuid.New().String(),
		Name:      schema.Plan.Name,
		CycleMode: domain.CycleMode(domain.CoalesceStr(schema.Plan.CycleMode, string(domain.CycleRotating))),
		CreatedAt: now,
		UpdatedAt: now,
	}

	refMap := make(map[string]string) // schema ref -> UUID

	for i, f := range schema.Folders {
		id := uuid.New().String()
		refMap[f.Ref] = id
		plan.Folders = append(plan.Folders, domain.Folder{
			ID:     id,
			PlanID: plan.ID,
			Name:   f.Name,
			Order:  i,
		})
	}

	goalCount := 0
	for i, d := range schema.Disciplines {
		id := uuid.New().String()
		refMap[d.Ref] = id

		var folderID *string
		if d.FolderRef != nil && *d.FolderRef != "" {
			if fid, ok := refMap[*d.FolderRef]; ok {
				folderID = &fid
			}
		}

		disc := domain.Discipline{
			ID:       id,
			PlanID:   plan.ID,
			Name:     d.Name,
			Order:    i,
			FolderID: folderID,
		}
		for j, s := range d.Subjects {
			subj := domain.Subject{
				ID:           uuid.New().String(),
				DisciplineID: disc.ID,
				Name:         s.Name,
				Order:        j,
			}
			for k, g := range s.Goals {
				subj.Goals = append(subj.Goals, convertGoal(subj.ID, k, g, schema.Defaults))
				goalCount++
			}
			disc.Subjects = append(disc.Subjects, subj)
		}
		plan.Disciplines = append(plan.Disciplines, disc)
	}

	var simulados []domain.Simulado
	for i, s := range schema.Simulados {
		id := uuid.New().String()
		refMap[s.Ref] = id
		simulados = append(simulados, domain.Simulado{
			ID:             id,
			Title:          s.Title,
			TotalQuestions: s.TotalQuestions,
			Order:          i,
		})
	}

	for i, c := range schema.Cycles {
		cycle := domain.Cycle{
			ID:     uuid.New().String(),
			PlanID: plan.ID,
			Name:   c.Name,
			Order:  i,
		}
		for j, item := range c.Items {
			cycle.Items = append(cycle.Items, convertCycleItem(cycle.ID, j, item, refMap, schema.Defaults))
		}
		plan.Cycles = append(plan.Cycles, cycle)
	}

	return &GeneratedPlan{Plan: plan, Simulados: simulados, GoalCount: goalCount}
}

func convertGoal(subjectID string, order int, g GoalImport, defaults *DefaultsImport) domain.Goal {
	goal := domain.Goal{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Title:     g.Title,
		Type:      domain.GoalType(g.Type),
		Order:     order,
	}

	switch goal.Type {
	case domain.GoalLesson:
		var lessons []domain.SubLesson
		for _, l := range g.Lessons {
			lessons = append(lessons, domain.SubLesson{
				ID:      uuid.New().String(),
				Title:   l.Title,
				Minutes: l.Minutes,
			})
		}
		goal.Size = domain.LessonSizing{Lessons: lessons}
	case domain.GoalMaterial, domain.GoalQuestionSet, domain.GoalStatuteReading:
		// Goal field wins over plan defaults, then a single pass.
		goal.Size = domain.PageSizing{
			Pages:       domain.IntFromPtrWithDefault(0, g.Pages),
			Repetitions: domain.IntFromPtrWithDefault(1, g.Repetitions, defaultRepetitions(defaults)),
		}
	default:
		goal.Size = domain.ManualSizing{Minutes: domain.IntFromPtrWithDefault(0, g.Minutes)}
	}

	return goal
}

func convertCycleItem(cycleID string, order int, item CycleItemImport, refMap map[string]string, defaults *DefaultsImport) domain.CycleItem {
	out := domain.CycleItem{
		ID:            uuid.New().String(),
		CycleID:       cycleID,
		Order:         order,
		SubjectsCount: domain.IntFromPtrWithDefault(1, item.SubjectsCount, defaultSubjectsCount(defaults)),
	}

	switch {
	case item.DisciplineRef != nil && *item.DisciplineRef != "":
		out.Kind = domain.ItemDiscipline
		out.TargetID = refMap[*item.DisciplineRef]
	case item.FolderRef != nil && *item.FolderRef != "":
		out.Kind = domain.ItemFolder
		out.TargetID = refMap[*item.FolderRef]
	case item.SimuladoRef != nil && *item.SimuladoRef != "":
		out.Kind = domain.ItemSimulado
		out.TargetID = refMap[*item.SimuladoRef]
	}

	return out
}

func defaultSubjectsCount(d *DefaultsImport) *int {
	if d == nil {
		return nil
	}
	return d.SubjectsCount
}

func defaultRepetitions(d *DefaultsImport) *int {
	if d == nil {
		return nil
	}
	return d.Repetitions
}
