package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"planpilot/internal/domain"
)

var planOrderColumns = map[domain.PlanOrder]string{
	domain.PlanOrderCreated: "created_at",
	domain.PlanOrderID:      "id",
	domain.PlanOrderTitle:   "title",
	domain.PlanOrderUpdated: "updated_at",
}

func loadPlan(tx *gorm.DB, id int64) (PlanModel, error) {
	var m PlanModel
	if err := tx.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, domain.NotFoundf("plan %d not found", id)
		}
		return m, fmt.Errorf("failed to load plan %d: %w", id, err)
	}
	return m, nil
}

// CreatePlanWithTree inserts a plan with all of its steps and goals
func (r *SQLiteRepository) CreatePlanWithTree(ctx context.Context, plan domain.NewPlan) (*domain.CreatePlanResult, error) {
	if err := validateNewPlan(plan); err != nil {
		return nil, err
	}

	var result *domain.CreatePlanResult
	err := r.write(ctx, "create plan", func(tx *gorm.DB) error {
		now := r.now()
		res := &domain.CreatePlanResult{}

		pm := PlanModel{
			Content:   strings.TrimSpace(plan.Content),
			CreatedAt: now,
			Status:    string(domain.StatusTodo),
			Title:     strings.TrimSpace(plan.Title),
			UpdatedAt: now,
		}
		if err := tx.Create(&pm).Error; err != nil {
			return fmt.Errorf("failed to insert plan: %w", err)
		}
		res.PlanID = pm.ID

		for i, ns := range plan.Steps {
			executor := ns.Executor
			if executor == "" {
				executor = domain.ExecutorAI
			}
			sm := StepModel{
				Content:   strings.TrimSpace(ns.Content),
				CreatedAt: now,
				Executor:  string(executor),
				PlanID:    pm.ID,
				SortOrder: i + 1,
				Status:    string(domain.StatusTodo),
				UpdatedAt: now,
			}
			if err := tx.Create(&sm).Error; err != nil {
				return fmt.Errorf("failed to insert step %d: %w", i+1, err)
			}
			res.StepIDs = append(res.StepIDs, sm.ID)

			for _, content := range ns.Goals {
				gm := GoalModel{
					Content:   strings.TrimSpace(content),
					CreatedAt: now,
					Status:    string(domain.StatusTodo),
					StepID:    sm.ID,
					UpdatedAt: now,
				}
				if err := tx.Create(&gm).Error; err != nil {
					return fmt.Errorf("failed to insert goal: %w", err)
				}
				res.GoalIDs = append(res.GoalIDs, gm.ID)
			}
		}

		res.StepCount = len(res.StepIDs)
		res.GoalCount = len(res.GoalIDs)
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func validateNewPlan(plan domain.NewPlan) error {
	if strings.TrimSpace(plan.Title) == "" {
		return domain.InvalidInputf("plan title is required")
	}
	if strings.TrimSpace(plan.Content) == "" {
		return domain.InvalidInputf("plan content is required")
	}
	for i, s := range plan.Steps {
		if strings.TrimSpace(s.Content) == "" {
			return domain.InvalidInputf("step %d content is required", i+1)
		}
		if s.Executor != "" && !s.Executor.Valid() {
			return domain.InvalidInputf("step %d has unknown executor %q", i+1, s.Executor)
		}
		for j, g := range s.Goals {
			if strings.TrimSpace(g) == "" {
				return domain.InvalidInputf("step %d goal %d content is required", i+1, j+1)
			}
		}
	}
	return nil
}

// ListPlans returns every plan sorted by the given key. Ties break by id.
func (r *SQLiteRepository) ListPlans(ctx context.Context, order domain.PlanOrder, desc bool) ([]domain.Plan, error) {
	column, ok := planOrderColumns[order]
	if !ok {
		return nil, domain.InvalidInputf("unknown plan order %q", order)
	}
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	var models []PlanModel
	query := r.db.WithContext(ctx).Order(column + " " + direction)
	if column != "id" {
		query = query.Order("id " + direction)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, domain.DBError("list plans", err)
	}

	plans := make([]domain.Plan, len(models))
	for i, m := range models {
		plans[i] = planModelToDomain(m)
	}
	return plans, nil
}

// GetPlan returns a plan by id
func (r *SQLiteRepository) GetPlan(ctx context.Context, id int64) (*domain.Plan, error) {
	m, err := loadPlan(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, domain.DBError("get plan", err)
	}
	plan := planModelToDomain(m)
	return &plan, nil
}

// GetPlanDetail returns a plan with its ordered steps and their goals
func (r *SQLiteRepository) GetPlanDetail(ctx context.Context, id int64) (*domain.PlanDetail, error) {
	db := r.db.WithContext(ctx)

	pm, err := loadPlan(db, id)
	if err != nil {
		return nil, domain.DBError("get plan detail", err)
	}

	var steps []StepModel
	if err := db.Where("plan_id = ?", id).Order("sort_order ASC, id ASC").Find(&steps).Error; err != nil {
		return nil, domain.DBError("get plan detail", err)
	}

	detail := &domain.PlanDetail{
		GoalsByStep: make(map[int64][]domain.Goal, len(steps)),
		Plan:        planModelToDomain(pm),
		Steps:       stepModelsToDomain(steps),
	}
	if len(steps) == 0 {
		return detail, nil
	}

	stepIDs := make([]int64, len(steps))
	for i, s := range steps {
		stepIDs[i] = s.ID
	}
	var goals []GoalModel
	if err := db.Where("step_id IN ?", stepIDs).Order("id ASC").Find(&goals).Error; err != nil {
		return nil, domain.DBError("get plan detail", err)
	}
	for _, g := range goals {
		detail.GoalsByStep[g.StepID] = append(detail.GoalsByStep[g.StepID], goalModelToDomain(g))
	}
	return detail, nil
}

// UpdatePlan applies a partial update. A plan's status may only be set
// directly while it has no steps.
func (r *SQLiteRepository) UpdatePlan(ctx context.Context, id int64, update domain.PlanUpdate) (domain.ChangeSet, error) {
	var changes domain.ChangeSet
	err := r.write(ctx, "update plan", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())

		pm, err := loadPlan(tx, id)
		if err != nil {
			return err
		}

		fields := map[string]any{}
		if update.Title != nil {
			title := strings.TrimSpace(*update.Title)
			if title == "" {
				return domain.InvalidInputf("plan title cannot be empty")
			}
			fields["title"] = title
		}
		if update.Content != nil {
			content := strings.TrimSpace(*update.Content)
			if content == "" {
				return domain.InvalidInputf("plan content cannot be empty")
			}
			fields["content"] = content
		}
		if update.Comment != nil {
			fields["comment"] = strings.TrimSpace(*update.Comment)
		}
		if len(fields) > 0 {
			fields["updated_at"] = rec.now
			if err := tx.Model(&PlanModel{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return fmt.Errorf("failed to update plan %d: %w", id, err)
			}
		}

		if update.Status != nil {
			if err := r.applyPlanStatus(rec, pm, *update.Status); err != nil {
				return err
			}
		}
		changes = rec.changes
		return nil
	})
	return changes, err
}

func (r *SQLiteRepository) applyPlanStatus(rec *recorder, pm PlanModel, status domain.Status) error {
	if !status.Valid() {
		return domain.InvalidInputf("unknown status %q", status)
	}

	total, done, err := countChildren(rec.tx, &StepModel{}, "plan_id", pm.ID)
	if err != nil {
		return err
	}
	if total > 0 {
		if status == domain.StatusDone && done < total {
			var pending StepModel
			if err := rec.tx.Where("plan_id = ? AND status = ?", pm.ID, domain.StatusTodo).
				Order("sort_order ASC, id ASC").First(&pending).Error; err != nil {
				return fmt.Errorf("failed to load pending step: %w", err)
			}
			return domain.InvalidInputf("cannot mark plan %d done: step %d (position %d) is still pending",
				pm.ID, pending.ID, pending.SortOrder)
		}
		if status == domain.StatusTodo && done == total {
			return domain.InvalidInputf("cannot reopen plan %d: its status follows its %d done steps", pm.ID, total)
		}
		// Already consistent with the children
		return nil
	}

	_, err = rec.setPlanStatus(pm, status, reasonManual)
	return err
}

// DeletePlan removes a plan together with its steps, goals and active pointer
func (r *SQLiteRepository) DeletePlan(ctx context.Context, id int64) (domain.ChangeSet, error) {
	var changes domain.ChangeSet
	err := r.write(ctx, "delete plan", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())

		if _, err := loadPlan(tx, id); err != nil {
			return err
		}
		if err := rec.clearActiveForPlan(id, "plan removed"); err != nil {
			return err
		}

		stepIDs := tx.Model(&StepModel{}).Select("id").Where("plan_id = ?", id)
		if err := tx.Where("step_id IN (?)", stepIDs).Delete(&GoalModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete goals: %w", err)
		}
		if err := tx.Where("plan_id = ?", id).Delete(&StepModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete steps: %w", err)
		}
		result := tx.Delete(&PlanModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete plan: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundf("plan %d not found", id)
		}
		changes = rec.changes
		return nil
	})
	return changes, err
}
