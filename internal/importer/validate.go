package importer

import (
	"fmt"

	"github.com/mateusrangel/ciclo/internal/domain"
)

var validCycleModes = map[string]bool{"rotating": true, "sequential": true}

// ValidatePlanSchema checks the import schema for errors before
// conversion. Returns a slice of all validation errors found.
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error

	if schema.Plan.Name == "" {
		errs = append(errs, fmt.Errorf("plan.name is required"))
	}
	if schema.Plan.CycleMode != "" && !validCycleModes[schema.Plan.CycleMode] {
		errs = append(errs, fmt.Errorf("plan.cycle_mode: invalid value %q", schema.Plan.CycleMode))
	}
	if schema.Defaults != nil {
		if schema.Defaults.SubjectsCount != nil && *schema.Defaults.SubjectsCount <= 0 {
			errs = append(errs, fmt.Errorf("defaults.subjects_count must be positive"))
		}
		if schema.Defaults.Repetitions != nil && *schema.Defaults.Repetitions <= 0 {
			errs = append(errs, fmt.Errorf("defaults.repetitions must be positive"))
		}
	}

	folderRefs := make(map[string]bool)
	for i, f := range schema.Folders {
		prefix := fmt.Sprintf("folders[%d]", i)
		if f.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if folderRefs[f.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, f.Ref))
		} else {
			folderRefs[f.Ref] = true
		}
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	disciplineRefs := make(map[string]bool)
	errs = append(errs, validateDisciplines(schema.Disciplines, folderRefs, disciplineRefs)...)

	simuladoRefs := make(map[string]bool)
	for i, s := range schema.Simulados {
		prefix := fmt.Sprintf("simulados[%d]", i)
		if s.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if simuladoRefs[s.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, s.Ref))
		} else {
			simuladoRefs[s.Ref] = true
		}
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if s.TotalQuestions <= 0 {
			errs = append(errs, fmt.Errorf("%s.total_questions must be positive", prefix))
		}
	}

	if len(schema.Cycles) == 0 {
		errs = append(errs, fmt.Errorf("at least one cycle is required"))
	}
	errs = append(errs, validateCycles(schema.Cycles, folderRefs, disciplineRefs, simuladoRefs)...)

	return errs
}

func validateDisciplines(disciplines []DisciplineImport, folderRefs, disciplineRefs map[string]bool) []error {
	var errs []error

	for i, d := range disciplines {
		prefix := fmt.Sprintf("disciplines[%d]", i)

		if d.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if disciplineRefs[d.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, d.Ref))
		} else {
			disciplineRefs[d.Ref] = true
		}
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if d.FolderRef != nil && *d.FolderRef != "" && !folderRefs[*d.FolderRef] {
			errs = append(errs, fmt.Errorf("%s.folder_ref: ref %q not found in folders", prefix, *d.FolderRef))
		}

		for j, s := range d.Subjects {
			sPrefix := fmt.Sprintf("%s.subjects[%d]", prefix, j)
			if s.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", sPrefix))
			}
			for k, g := range s.Goals {
				errs = append(errs, validateGoal(fmt.Sprintf("%s.goals[%d]", sPrefix, k), g)...)
			}
		}
	}

	return errs
}

func validateGoal(prefix string, g GoalImport) []error {
	var errs []error

	if g.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if g.Type == "" {
		errs = append(errs, fmt.Errorf("%s.type is required", prefix))
		return errs
	}
	if !domain.ValidGoalTypes[g.Type] {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, g.Type))
		return errs
	}

	switch domain.GoalType(g.Type) {
	case domain.GoalLesson:
		if len(g.Lessons) == 0 {
			errs = append(errs, fmt.Errorf("%s: lesson goals require at least one lesson", prefix))
		}
		for j, l := range g.Lessons {
			if l.Title == "" {
				errs = append(errs, fmt.Errorf("%s.lessons[%d].title is required", prefix, j))
			}
			if l.Minutes < 0 {
				errs = append(errs, fmt.Errorf("%s.lessons[%d].minutes must not be negative", prefix, j))
			}
		}
	case domain.GoalSummary:
		if g.Minutes == nil {
			errs = append(errs, fmt.Errorf("%s: summary goals require minutes", prefix))
		} else if *g.Minutes < 0 {
			errs = append(errs, fmt.Errorf("%s.minutes must not be negative", prefix))
		}
	case domain.GoalMaterial, domain.GoalQuestionSet, domain.GoalStatuteReading:
		if g.Pages == nil {
			errs = append(errs, fmt.Errorf("%s: %s goals require pages", prefix, g.Type))
		} else if *g.Pages < 0 {
			errs = append(errs, fmt.Errorf("%s.pages must not be negative", prefix))
		}
		if g.Repetitions != nil && *g.Repetitions <= 0 {
			errs = append(errs, fmt.Errorf("%s.repetitions must be positive", prefix))
		}
	}

	return errs
}

func validateCycles(cycles []CycleImport, folderRefs, disciplineRefs, simuladoRefs map[string]bool) []error {
	var errs []error

	for i, c := range cycles {
		prefix := fmt.Sprintf("cycles[%d]", i)
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if len(c.Items) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one item is required", prefix))
		}

		for j, item := range c.Items {
			iPrefix := fmt.Sprintf("%s.items[%d]", prefix, j)

			set := 0
			if item.DisciplineRef != nil && *item.DisciplineRef != "" {
				set++
				if !disciplineRefs[*item.DisciplineRef] {
					errs = append(errs, fmt.Errorf("%s.discipline_ref: ref %q not found in disciplines", iPrefix, *item.DisciplineRef))
				}
			}
			if item.FolderRef != nil && *item.FolderRef != "" {
				set++
				if !folderRefs[*item.FolderRef] {
					errs = append(errs, fmt.Errorf("%s.folder_ref: ref %q not found in folders", iPrefix, *item.FolderRef))
				}
			}
			if item.SimuladoRef != nil && *item.SimuladoRef != "" {
				set++
				if !simuladoRefs[*item.SimuladoRef] {
					errs = append(errs, fmt.Errorf("%s.simulado_ref: ref %q not found in simulados", iPrefix, *item.SimuladoRef))
				}
			}
			if set != 1 {
				errs = append(errs, fmt.Errorf("%s: exactly one of discipline_ref, folder_ref, simulado_ref must be set", iPrefix))
			}
			if item.SubjectsCount != nil && *item.SubjectsCount <= 0 {
				errs = append(errs, fmt.Errorf("%s.subjects_count must be positive", iPrefix))
			}
		}
	}

	return errs
}
