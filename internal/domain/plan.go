package domain

import (
	"sort"
	"time"
)

// Folder groups disciplines for cycle authoring. Membership is resolved at
// generation time and never persisted in expanded form.
type Folder struct {
	ID     string
	PlanID string
	Name   string
	Order  int
}

// Subject is a named, ordered container of goals within a discipline.
type Subject struct {
	ID           string
	DisciplineID string
	Name         string
	Order        int
	Goals        []Goal
}

// Discipline is a named, ordered container of subjects, optionally tagged
// with a folder.
type Discipline struct {
	ID       string
	PlanID   string
	Name     string
	Order    int
	FolderID *string
	Subjects []Subject
}

// CycleItem is one entry in a cycle: a discipline, a folder, or a mock
// exam. SubjectsCount means "advance this many not-yet-completed goals
// from the discipline before moving on"; it is ignored for exam items.
type CycleItem struct {
	ID            string
	CycleID       string
	Kind          CycleItemKind
	TargetID      string
	SubjectsCount int
	Order         int
}

// Cycle is an ordered rotation of cycle items.
type Cycle struct {
	ID     string
	PlanID string
	Name   string
	Order  int
	Items  []CycleItem
}

// StudyPlan is the full content tree consumed by the schedule generator.
// The generator only reads it; authoring happens elsewhere.
type StudyPlan struct {
	ID          string
	Name        string
	CycleMode   CycleMode
	Folders     []Folder
	Disciplines []Discipline
	Cycles      []Cycle
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisciplineByID returns the discipline with the given id, or nil.
func (p *StudyPlan) DisciplineByID(id string) *Discipline {
	for i := range p.Disciplines {
		if p.Disciplines[i].ID == id {
			return &p.Disciplines[i]
		}
	}
	return nil
}

// DisciplinesInFolder returns the member disciplines of a folder sorted by
// their order. Membership is recomputed on every call so that authoring
// changes are always visible to the next generation run.
func (p *StudyPlan) DisciplinesInFolder(folderID string) []Discipline {
	var members []Discipline
	for _, d := range p.Disciplines {
		if d.FolderID != nil && *d.FolderID == folderID {
			members = append(members, d)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Order < members[j].Order
	})
	return members
}

// GoalIDs collects every goal id in the plan's content tree. Used by the
// lifecycle restart to strip a plan's completions from user progress.
func (p *StudyPlan) GoalIDs() []string {
	var ids []string
	for _, d := range p.Disciplines {
		for _, s := range d.Subjects {
			for _, g := range s.Goals {
				ids = append(ids, g.ID)
			}
		}
	}
	return ids
}

// SortContent orders disciplines, subjects, goals, cycles and cycle items
// by their order fields, ties broken by original position. Repositories
// call this after assembling the tree so the scheduler can rely on the
// ordering invariant.
func (p *StudyPlan) SortContent() {
	sort.SliceStable(p.Disciplines, func(i, j int) bool {
		return p.Disciplines[i].Order < p.Disciplines[j].Order
	})
	for di := range p.Disciplines {
		d := &p.Disciplines[di]
		sort.SliceStable(d.Subjects, func(i, j int) bool {
			return d.Subjects[i].Order < d.Subjects[j].Order
		})
		for si := range d.Subjects {
			s := &d.Subjects[si]
			sort.SliceStable(s.Goals, func(i, j int) bool {
				return s.Goals[i].Order < s.Goals[j].Order
			})
		}
	}
	sort.SliceStable(p.Cycles, func(i, j int) bool {
		return p.Cycles[i].Order < p.Cycles[j].Order
	})
	for ci := range p.Cycles {
		c := &p.Cycles[ci]
		sort.SliceStable(c.Items, func(i, j int) bool {
			return c.Items[i].Order < c.Items[j].Order
		})
	}
}
