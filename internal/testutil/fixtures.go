package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mateusrangel/ciclo/internal/domain"
)

// Plan options
type PlanOption func(*domain.StudyPlan)

func WithCycleMode(m domain.CycleMode) PlanOption {
	return func(p *domain.StudyPlan) {
		p.CycleMode = m
	}
}

func WithPlanID(id string) PlanOption {
	return func(p *domain.StudyPlan) {
		p.ID = id
	}
}

func NewTestPlan(name string, opts ...PlanOption) *domain.StudyPlan {
	now := time.Now().UTC()
	p := &domain.StudyPlan{
		ID:        uuid.New().String(),
		Name:      name,
		CycleMode: domain.CycleRotating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestFolder(planID, name string, order int) domain.Folder {
	return domain.Folder{
		ID:     uuid.New().String(),
		PlanID: planID,
		Name:   name,
		Order:  order,
	}
}

// Discipline options
type DisciplineOption func(*domain.Discipline)

func InFolder(folderID string) DisciplineOption {
	return func(d *domain.Discipline) {
		d.FolderID = &folderID
	}
}

func NewTestDiscipline(planID, name string, order int, opts ...DisciplineOption) domain.Discipline {
	d := domain.Discipline{
		ID:     uuid.New().String(),
		PlanID: planID,
		Name:   name,
		Order:  order,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewTestSubject(disciplineID, name string, order int) domain.Subject {
	return domain.Subject{
		ID:           uuid.New().String(),
		DisciplineID: disciplineID,
		Name:         name,
		Order:        order,
	}
}

// Goal options
type GoalOption func(*domain.Goal)

func WithPages(pages, repetitions int) GoalOption {
	return func(g *domain.Goal) {
		g.Size = domain.PageSizing{Pages: pages, Repetitions: repetitions}
	}
}

func WithManualMinutes(minutes int) GoalOption {
	return func(g *domain.Goal) {
		g.Size = domain.ManualSizing{Minutes: minutes}
	}
}

// WithLessons builds one sub-lesson per given duration.
func WithLessons(minutes ...int) GoalOption {
	return func(g *domain.Goal) {
		var lessons []domain.SubLesson
		for _, m := range minutes {
			lessons = append(lessons, domain.SubLesson{
				ID:      uuid.New().String(),
				Title:   "lesson",
				Minutes: m,
			})
		}
		g.Size = domain.LessonSizing{Lessons: lessons}
	}
}

func WithGoalID(id string) GoalOption {
	return func(g *domain.Goal) {
		g.ID = id
	}
}

func NewTestGoal(subjectID, title string, typ domain.GoalType, order int, opts ...GoalOption) domain.Goal {
	g := domain.Goal{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Title:     title,
		Type:      typ,
		Order:     order,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

func NewTestCycle(planID, name string, order int) domain.Cycle {
	return domain.Cycle{
		ID:     uuid.New().String(),
		PlanID: planID,
		Name:   name,
		Order:  order,
	}
}

func DisciplineItem(cycleID, disciplineID string, subjectsCount, order int) domain.CycleItem {
	return domain.CycleItem{
		ID:            uuid.New().String(),
		CycleID:       cycleID,
		Kind:          domain.ItemDiscipline,
		TargetID:      disciplineID,
		SubjectsCount: subjectsCount,
		Order:         order,
	}
}

func FolderItem(cycleID, folderID string, subjectsCount, order int) domain.CycleItem {
	return domain.CycleItem{
		ID:            uuid.New().String(),
		CycleID:       cycleID,
		Kind:          domain.ItemFolder,
		TargetID:      folderID,
		SubjectsCount: subjectsCount,
		Order:         order,
	}
}

func SimuladoItem(cycleID, simuladoID string, order int) domain.CycleItem {
	return domain.CycleItem{
		ID:       uuid.New().String(),
		CycleID:  cycleID,
		Kind:     domain.ItemSimulado,
		TargetID: simuladoID,
		Order:    order,
	}
}

func NewTestSimulado(title string, totalQuestions, order int) domain.Simulado {
	return domain.Simulado{
		ID:             uuid.New().String(),
		Title:          title,
		TotalQuestions: totalQuestions,
		Order:          order,
	}
}

// EveryDay builds a routine with the same minutes on all seven days.
func EveryDay(minutes int) domain.Routine {
	r := make(domain.Routine)
	for d := time.Sunday; d <= time.Saturday; d++ {
		r[d] = minutes
	}
	return r
}

// Weekdays builds a routine with minutes Monday through Friday only.
func Weekdays(minutes int) domain.Routine {
	r := make(domain.Routine)
	for d := time.Monday; d <= time.Friday; d++ {
		r[d] = minutes
	}
	return r
}

// Config options
type ConfigOption func(*domain.PlanConfig)

func Paused() ConfigOption {
	return func(c *domain.PlanConfig) {
		c.IsPaused = true
	}
}

func Active() ConfigOption {
	return func(c *domain.PlanConfig) {
		c.IsActive = true
	}
}

func NewTestConfig(planID string, startDate time.Time, opts ...ConfigOption) *domain.PlanConfig {
	c := &domain.PlanConfig{
		PlanID:    planID,
		StartDate: startDate,
		UpdatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
