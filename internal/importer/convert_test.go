package importer

import (
	"testing"

	"github.com/mateusrangel/ciclo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convertSchema() *PlanSchema {
	return &PlanSchema{
		Plan:    PlanImport{Name: "OAB 2026"},
		Folders: []FolderImport{{Ref: "base", Name: "Básicas"}},
		Disciplines: []DisciplineImport{
			{
				Ref: "port", Name: "Português", FolderRef: refStr("base"),
				Subjects: []SubjectImport{{
					Name: "Gramática",
					Goals: []GoalImport{
						{Title: "Aula 1", Type: "LESSON", Lessons: []SubLessonImport{
							{Title: "Vídeo 1", Minutes: 25},
							{Title: "Vídeo 2", Minutes: 15},
						}},
						{Title: "Apostila", Type: "MATERIAL", Pages: refInt(12)},
					},
				}},
			},
			{
				Ref: "penal", Name: "Direito Penal",
				Subjects: []SubjectImport{{
					Name: "Parte Geral",
					Goals: []GoalImport{
						{Title: "Lei seca", Type: "STATUTE_READING", Pages: refInt(8), Repetitions: refInt(3)},
						{Title: "Resumo", Type: "SUMMARY", Minutes: refInt(40)},
					},
				}},
			},
		},
		Cycles: []CycleImport{{Name: "Ciclo 1", Items: []CycleItemImport{
			{FolderRef: refStr("base"), SubjectsCount: refInt(2)},
			{DisciplineRef: refStr("penal")},
			{SimuladoRef: refStr("sim1")},
		}}},
		Simulados: []SimuladoImport{{Ref: "sim1", Title: "Simulado 1", TotalQuestions: 40}},
	}
}

func TestConvert_BuildsTheContentTree(t *testing.T) {
	out := Convert(convertSchema())

	p := out.Plan
	require.NotNil(t, p)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "OAB 2026", p.Name)
	assert.Equal(t, domain.CycleRotating, p.CycleMode, "cycle mode defaults to rotating")
	assert.Equal(t, 4, out.GoalCount)

	require.Len(t, p.Folders, 1)
	require.Len(t, p.Disciplines, 2)
	assert.Equal(t, 0, p.Disciplines[0].Order)
	assert.Equal(t, 1, p.Disciplines[1].Order, "order comes from file position")

	require.NotNil(t, p.Disciplines[0].FolderID)
	assert.Equal(t, p.Folders[0].ID, *p.Disciplines[0].FolderID)
	assert.Nil(t, p.Disciplines[1].FolderID)
}

func TestConvert_GoalSizing(t *testing.T) {
	out := Convert(convertSchema())

	port := out.Plan.Disciplines[0].Subjects[0].Goals
	require.Len(t, port, 2)

	lesson, ok := port[0].Size.(domain.LessonSizing)
	require.True(t, ok)
	require.Len(t, lesson.Lessons, 2)
	assert.Equal(t, "Vídeo 1", lesson.Lessons[0].Title)
	assert.Equal(t, 25, lesson.Lessons[0].Minutes)
	assert.NotEmpty(t, lesson.Lessons[0].ID)

	assert.Equal(t, domain.PageSizing{Pages: 12, Repetitions: 1}, port[1].Size,
		"repetitions default to a single pass")

	penal := out.Plan.Disciplines[1].Subjects[0].Goals
	assert.Equal(t, domain.PageSizing{Pages: 8, Repetitions: 3}, penal[0].Size)
	assert.Equal(t, domain.ManualSizing{Minutes: 40}, penal[1].Size)
}

func TestConvert_CycleItemsResolveRefs(t *testing.T) {
	out := Convert(convertSchema())
	p := out.Plan

	require.Len(t, p.Cycles, 1)
	items := p.Cycles[0].Items
	require.Len(t, items, 3)

	assert.Equal(t, domain.ItemFolder, items[0].Kind)
	assert.Equal(t, p.Folders[0].ID, items[0].TargetID)
	assert.Equal(t, 2, items[0].SubjectsCount)

	assert.Equal(t, domain.ItemDiscipline, items[1].Kind)
	assert.Equal(t, p.Disciplines[1].ID, items[1].TargetID)
	assert.Equal(t, 1, items[1].SubjectsCount, "subjects count defaults to one")

	require.Len(t, out.Simulados, 1)
	assert.Equal(t, domain.ItemSimulado, items[2].Kind)
	assert.Equal(t, out.Simulados[0].ID, items[2].TargetID)
	assert.Equal(t, "Simulado 1", out.Simulados[0].Title)
	assert.Equal(t, 40, out.Simulados[0].TotalQuestions)
}

func TestConvert_DefaultsCascade(t *testing.T) {
	schema := convertSchema()
	schema.Defaults = &DefaultsImport{SubjectsCount: refInt(3), Repetitions: refInt(2)}

	out := Convert(schema)

	items := out.Plan.Cycles[0].Items
	assert.Equal(t, 2, items[0].SubjectsCount, "an explicit item value wins over the default")
	assert.Equal(t, 3, items[1].SubjectsCount, "the plan default fills unset items")

	port := out.Plan.Disciplines[0].Subjects[0].Goals
	assert.Equal(t, domain.PageSizing{Pages: 12, Repetitions: 2}, port[1].Size,
		"the repetitions default reaches page goals")

	penal := out.Plan.Disciplines[1].Subjects[0].Goals
	assert.Equal(t, domain.PageSizing{Pages: 8, Repetitions: 3}, penal[0].Size,
		"an explicit goal value wins over the default")
}

func TestConvert_AssignsDistinctIDs(t *testing.T) {
	out := Convert(convertSchema())

	seen := map[string]bool{out.Plan.ID: true}
	track := func(id string) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	for _, f := range out.Plan.Folders {
		track(f.ID)
	}
	for _, d := range out.Plan.Disciplines {
		track(d.ID)
		for _, s := range d.Subjects {
			track(s.ID)
			for _, g := range s.Goals {
				track(g.ID)
			}
		}
	}
	for _, c := range out.Plan.Cycles {
		track(c.ID)
		for _, item := range c.Items {
			track(item.ID)
		}
	}
	for _, s := range out.Simulados {
		track(s.ID)
	}
}
