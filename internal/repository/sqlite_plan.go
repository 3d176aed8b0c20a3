package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mateusrangel/ciclo/internal/db"
	"github.com/mateusrangel/ciclo/internal/domain"
)

// SQLitePlanRepo implements PlanRepo over the normalized content tables.
// It accepts a db.DBTX so the same code serves both plain and
// transactional access.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(dbtx db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: dbtx}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.StudyPlan) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (id, name, cycle_mode, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, string(p.CycleMode),
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for _, f := range p.Folders {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO folders (id, plan_id, name, order_index) VALUES (?, ?, ?, ?)`,
			f.ID, p.ID, f.Name, f.Order,
		); err != nil {
			return fmt.Errorf("inserting folder %q: %w", f.Name, err)
		}
	}

	for _, d := range p.Disciplines {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO disciplines (id, plan_id, folder_id, name, order_index) VALUES (?, ?, ?, ?, ?)`,
			d.ID, p.ID, ptrToNullable(d.FolderID), d.Name, d.Order,
		); err != nil {
			return fmt.Errorf("inserting discipline %q: %w", d.Name, err)
		}
		for _, s := range d.Subjects {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO subjects (id, discipline_id, name, order_index) VALUES (?, ?, ?, ?)`,
				s.ID, d.ID, s.Name, s.Order,
			); err != nil {
				return fmt.Errorf("inserting subject %q: %w", s.Name, err)
			}
			for _, g := range s.Goals {
				if err := r.insertGoal(ctx, s.ID, g); err != nil {
					return err
				}
			}
		}
	}

	for _, c := range p.Cycles {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO cycles (id, plan_id, name, order_index) VALUES (?, ?, ?, ?)`,
			c.ID, p.ID, c.Name, c.Order,
		); err != nil {
			return fmt.Errorf("inserting cycle %q: %w", c.Name, err)
		}
		for _, item := range c.Items {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO cycle_items (id, cycle_id, kind, target_id, subjects_count, order_index)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				item.ID, c.ID, string(item.Kind), item.TargetID, item.SubjectsCount, item.Order,
			); err != nil {
				return fmt.Errorf("inserting cycle item: %w", err)
			}
		}
	}

	return nil
}

func (r *SQLitePlanRepo) insertGoal(ctx context.Context, subjectID string, g domain.Goal) error {
	pages, repetitions, manualMin := 0, 0, 0
	var lessons []domain.SubLesson
	switch size := g.Size.(type) {
	case domain.PageSizing:
		pages, repetitions = size.Pages, size.Repetitions
	case domain.ManualSizing:
		manualMin = size.Minutes
	case domain.LessonSizing:
		lessons = size.Lessons
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO goals (id, subject_id, title, type, order_index, pages, repetitions, manual_min)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, subjectID, g.Title, string(g.Type), g.Order, pages, repetitions, manualMin,
	); err != nil {
		return fmt.Errorf("inserting goal %q: %w", g.Title, err)
	}

	for i, l := range lessons {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO sub_lessons (id, goal_id, title, minutes, order_index) VALUES (?, ?, ?, ?, ?)`,
			l.ID, g.ID, l.Title, l.Minutes, i,
		); err != nil {
			return fmt.Errorf("inserting sub-lesson %q: %w", l.Title, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.StudyPlan, error) {
	var p domain.StudyPlan
	var modeStr, createdAtStr, updatedAtStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, cycle_mode, created_at, updated_at FROM plans WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &modeStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.CycleMode = domain.CycleMode(modeStr)
	p.CreatedAt = parseTimeOr(createdAtStr, time.RFC3339)
	p.UpdatedAt = parseTimeOr(updatedAtStr, time.RFC3339)

	if err := r.loadFolders(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.loadContentTree(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.loadCycles(ctx, &p); err != nil {
		return nil, err
	}

	p.SortContent()
	return &p, nil
}

func (r *SQLitePlanRepo) loadFolders(ctx context.Context, p *domain.StudyPlan) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, order_index FROM folders WHERE plan_id = ? ORDER BY order_index`, p.ID)
	if err != nil {
		return fmt.Errorf("listing folders: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		f := domain.Folder{PlanID: p.ID}
		if err := rows.Scan(&f.ID, &f.Name, &f.Order); err != nil {
			return fmt.Errorf("scanning folder: %w", err)
		}
		p.Folders = append(p.Folders, f)
	}
	return rows.Err()
}

func (r *SQLitePlanRepo) loadContentTree(ctx context.Context, p *domain.StudyPlan) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, folder_id, name, order_index FROM disciplines WHERE plan_id = ? ORDER BY order_index`, p.ID)
	if err != nil {
		return fmt.Errorf("listing disciplines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		d := domain.Discipline{PlanID: p.ID}
		var folderID sql.NullString
		if err := rows.Scan(&d.ID, &folderID, &d.Name, &d.Order); err != nil {
			return fmt.Errorf("scanning discipline: %w", err)
		}
		d.FolderID = nullableStrToPtr(folderID)
		p.Disciplines = append(p.Disciplines, d)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating disciplines: %w", err)
	}

	for di := range p.Disciplines {
		if err := r.loadSubjects(ctx, &p.Disciplines[di]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLitePlanRepo) loadSubjects(ctx context.Context, d *domain.Discipline) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, order_index FROM subjects WHERE discipline_id = ? ORDER BY order_index`, d.ID)
	if err != nil {
		return fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		s := domain.Subject{DisciplineID: d.ID}
		if err := rows.Scan(&s.ID, &s.Name, &s.Order); err != nil {
			return fmt.Errorf("scanning subject: %w", err)
		}
		d.Subjects = append(d.Subjects, s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating subjects: %w", err)
	}

	for si := range d.Subjects {
		if err := r.loadGoals(ctx, &d.Subjects[si]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLitePlanRepo) loadGoals(ctx context.Context, s *domain.Subject) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, type, order_index, pages, repetitions, manual_min
		 FROM goals WHERE subject_id = ? ORDER BY order_index`, s.ID)
	if err != nil {
		return fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	type rawGoal struct {
		goal                          domain.Goal
		pages, repetitions, manualMin int
	}
	var raw []rawGoal
	for rows.Next() {
		var rg rawGoal
		var typeStr string
		if err := rows.Scan(&rg.goal.ID, &rg.goal.Title, &typeStr, &rg.goal.Order,
			&rg.pages, &rg.repetitions, &rg.manualMin); err != nil {
			return fmt.Errorf("scanning goal: %w", err)
		}
		rg.goal.SubjectID = s.ID
		rg.goal.Type = domain.GoalType(typeStr)
		raw = append(raw, rg)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating goals: %w", err)
	}

	for _, rg := range raw {
		g := rg.goal
		switch g.Type {
		case domain.GoalLesson:
			lessons, err := r.loadSubLessons(ctx, g.ID)
			if err != nil {
				return err
			}
			g.Size = domain.LessonSizing{Lessons: lessons}
		case domain.GoalMaterial, domain.GoalQuestionSet, domain.GoalStatuteReading:
			g.Size = domain.PageSizing{Pages: rg.pages, Repetitions: rg.repetitions}
		default:
			g.Size = domain.ManualSizing{Minutes: rg.manualMin}
		}
		s.Goals = append(s.Goals, g)
	}
	return nil
}

func (r *SQLitePlanRepo) loadSubLessons(ctx context.Context, goalID string) ([]domain.SubLesson, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, minutes FROM sub_lessons WHERE goal_id = ? ORDER BY order_index`, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing sub-lessons: %w", err)
	}
	defer rows.Close()
	var lessons []domain.SubLesson
	for rows.Next() {
		var l domain.SubLesson
		if err := rows.Scan(&l.ID, &l.Title, &l.Minutes); err != nil {
			return nil, fmt.Errorf("scanning sub-lesson: %w", err)
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func (r *SQLitePlanRepo) loadCycles(ctx context.Context, p *domain.StudyPlan) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, order_index FROM cycles WHERE plan_id = ? ORDER BY order_index`, p.ID)
	if err != nil {
		return fmt.Errorf("listing cycles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		c := domain.Cycle{PlanID: p.ID}
		if err := rows.Scan(&c.ID, &c.Name, &c.Order); err != nil {
			return fmt.Errorf("scanning cycle: %w", err)
		}
		p.Cycles = append(p.Cycles, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating cycles: %w", err)
	}

	for ci := range p.Cycles {
		c := &p.Cycles[ci]
		itemRows, err := r.db.QueryContext(ctx,
			`SELECT id, kind, target_id, subjects_count, order_index
			 FROM cycle_items WHERE cycle_id = ? ORDER BY order_index`, c.ID)
		if err != nil {
			return fmt.Errorf("listing cycle items: %w", err)
		}
		for itemRows.Next() {
			item := domain.CycleItem{CycleID: c.ID}
			var kindStr string
			if err := itemRows.Scan(&item.ID, &kindStr, &item.TargetID, &item.SubjectsCount, &item.Order); err != nil {
				itemRows.Close()
				return fmt.Errorf("scanning cycle item: %w", err)
			}
			item.Kind = domain.CycleItemKind(kindStr)
			c.Items = append(c.Items, item)
		}
		if err := itemRows.Err(); err != nil {
			itemRows.Close()
			return fmt.Errorf("iterating cycle items: %w", err)
		}
		itemRows.Close()
	}
	return nil
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]PlanSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.name, p.cycle_mode, p.created_at, p.updated_at,
			c.start_date, c.is_paused, c.is_active, c.updated_at,
			(SELECT COUNT(*) FROM goals g
				JOIN subjects s ON g.subject_id = s.id
				JOIN disciplines d ON s.discipline_id = d.id
				WHERE d.plan_id = p.id)
		 FROM plans p
		 LEFT JOIN plan_configs c ON c.plan_id = p.id
		 ORDER BY p.created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var summaries []PlanSummary
	for rows.Next() {
		var sum PlanSummary
		var modeStr, createdAtStr, updatedAtStr string
		var startDateStr, cfgUpdatedStr sql.NullString
		var isPaused, isActive sql.NullInt64
		if err := rows.Scan(
			&sum.Plan.ID, &sum.Plan.Name, &modeStr, &createdAtStr, &updatedAtStr,
			&startDateStr, &isPaused, &isActive, &cfgUpdatedStr, &sum.GoalsNum,
		); err != nil {
			return nil, fmt.Errorf("scanning plan summary: %w", err)
		}
		sum.Plan.CycleMode = domain.CycleMode(modeStr)
		sum.Plan.CreatedAt = parseTimeOr(createdAtStr, time.RFC3339)
		sum.Plan.UpdatedAt = parseTimeOr(updatedAtStr, time.RFC3339)
		if startDateStr.Valid {
			sum.Config = &domain.PlanConfig{
				PlanID:    sum.Plan.ID,
				StartDate: parseTimeOr(startDateStr.String, dateLayout),
				IsPaused:  isPaused.Valid && isPaused.Int64 != 0,
				IsActive:  isActive.Valid && isActive.Int64 != 0,
			}
			if cfgUpdatedStr.Valid {
				sum.Config.UpdatedAt = parseTimeOr(cfgUpdatedStr.String, time.RFC3339)
			}
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan summaries: %w", err)
	}
	return summaries, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}
