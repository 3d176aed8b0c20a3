package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlanSchema is the top-level JSON structure for plan import. Content
// authoring happens in an external editor; this file format is the
// ingestion edge.
type PlanSchema struct {
	Plan        PlanImport         `json:"plan"`
	Defaults    *DefaultsImport    `json:"defaults,omitempty"`
	Folders     []FolderImport     `json:"folders,omitempty"`
	Disciplines []DisciplineImport `json:"disciplines"`
	Cycles      []CycleImport      `json:"cycles"`
	Simulados   []SimuladoImport   `json:"simulados,omitempty"`
}

// PlanImport defines the plan-level fields in the import file.
type PlanImport struct {
	Name      string `json:"name"`
	CycleMode string `json:"cycle_mode,omitempty"`
}

// DefaultsImport defines plan-wide defaults that cascade to goals and
// cycle items.
type DefaultsImport struct {
	SubjectsCount *int `json:"subjects_count,omitempty"`
	Repetitions   *int `json:"repetitions,omitempty"`
}

// FolderImport defines a discipline folder in the import file.
type FolderImport struct {
	Ref  string `json:"ref"`
	Name string `json:"name"`
}

// DisciplineImport defines a discipline and its nested content.
type DisciplineImport struct {
	Ref       string          `json:"ref"`
	Name      string          `json:"name"`
	FolderRef *string         `json:"folder_ref,omitempty"`
	Subjects  []SubjectImport `json:"subjects"`
}

// SubjectImport defines a subject and its goals.
type SubjectImport struct {
	Name  string       `json:"name"`
	Goals []GoalImport `json:"goals"`
}

// GoalImport defines one goal. Which sizing fields apply depends on the
// goal type: lesson goals carry lessons, summary goals carry minutes,
// page-based goals carry pages and optionally repetitions.
type GoalImport struct {
	Title       string            `json:"title"`
	Type        string            `json:"type"`
	Pages       *int              `json:"pages,omitempty"`
	Repetitions *int              `json:"repetitions,omitempty"`
	Minutes     *int              `json:"minutes,omitempty"`
	Lessons     []SubLessonImport `json:"lessons,omitempty"`
}

// SubLessonImport defines one video lesson inside a lesson goal.
type SubLessonImport struct {
	Title   string `json:"title"`
	Minutes int    `json:"minutes"`
}

// CycleImport defines one study cycle.
type CycleImport struct {
	Name  string            `json:"name"`
	Items []CycleItemImport `json:"items"`
}

// CycleItemImport defines one cycle entry. Exactly one of the ref fields
// must be set.
type CycleItemImport struct {
	DisciplineRef *string `json:"discipline_ref,omitempty"`
	FolderRef     *string `json:"folder_ref,omitempty"`
	SimuladoRef   *string `json:"simulado_ref,omitempty"`
	SubjectsCount *int    `json:"subjects_count,omitempty"`
}

// SimuladoImport defines a mock exam entry in the catalog.
type SimuladoImport struct {
	Ref            string `json:"ref"`
	Title          string `json:"title"`
	TotalQuestions int    `json:"total_questions"`
}

// LoadPlanSchema reads and parses a plan import JSON file.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema PlanSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
