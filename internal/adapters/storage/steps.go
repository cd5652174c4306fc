package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"planpilot/internal/domain"
)

func loadStep(tx *gorm.DB, id int64) (StepModel, error) {
	var m StepModel
	if err := tx.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, domain.NotFoundf("step %d not found", id)
		}
		return m, fmt.Errorf("failed to load step %d: %w", id, err)
	}
	return m, nil
}

// normalizeSortOrder renumbers a plan's steps to 1..N, keeping their
// current relative order, and returns the ordered ids. Only rows whose
// position changes are written.
func normalizeSortOrder(tx *gorm.DB, planID int64, now time.Time) ([]int64, error) {
	var rows []StepModel
	if err := tx.Select("id", "sort_order").Where("plan_id = ?", planID).
		Order("sort_order ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load step order: %w", err)
	}

	ordered := make([]int64, len(rows))
	current := make(map[int64]int, len(rows))
	for i, row := range rows {
		ordered[i] = row.ID
		current[row.ID] = row.SortOrder
	}
	if err := applyPositions(tx, ordered, current, now); err != nil {
		return nil, err
	}
	return ordered, nil
}

// applyPositions writes the contiguous positions of ordered, skipping rows
// that already sit at their target position
func applyPositions(tx *gorm.DB, ordered []int64, current map[int64]int, now time.Time) error {
	for id, pos := range domain.Renumber(ordered) {
		if current[id] == pos {
			continue
		}
		err := tx.Model(&StepModel{}).Where("id = ?", id).
			Updates(map[string]any{"sort_order": pos, "updated_at": now}).Error
		if err != nil {
			return fmt.Errorf("failed to reorder step %d: %w", id, err)
		}
	}
	return nil
}

// ListSteps returns a plan's steps in sort order
func (r *SQLiteRepository) ListSteps(ctx context.Context, planID int64) ([]domain.Step, error) {
	db := r.db.WithContext(ctx)
	if _, err := loadPlan(db, planID); err != nil {
		return nil, domain.DBError("list steps", err)
	}

	var models []StepModel
	if err := db.Where("plan_id = ?", planID).Order("sort_order ASC, id ASC").Find(&models).Error; err != nil {
		return nil, domain.DBError("list steps", err)
	}
	return stepModelsToDomain(models), nil
}

// GetStep returns a step by id
func (r *SQLiteRepository) GetStep(ctx context.Context, id int64) (*domain.Step, error) {
	m, err := loadStep(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, domain.DBError("get step", err)
	}
	step := stepModelToDomain(m)
	return &step, nil
}

// NextStep returns the pending step with the lowest sort order
func (r *SQLiteRepository) NextStep(ctx context.Context, planID int64) (*domain.Step, error) {
	db := r.db.WithContext(ctx)
	if _, err := loadPlan(db, planID); err != nil {
		return nil, domain.DBError("next step", err)
	}

	var models []StepModel
	err := db.Where("plan_id = ? AND status = ?", planID, domain.StatusTodo).
		Order("sort_order ASC, id ASC").Limit(1).Find(&models).Error
	if err != nil {
		return nil, domain.DBError("next step", err)
	}
	if len(models) == 0 {
		return nil, nil
	}
	step := stepModelToDomain(models[0])
	return &step, nil
}

// AddSteps inserts a batch of steps at insertAt (1-based). A nil or
// out-of-range position appends.
func (r *SQLiteRepository) AddSteps(ctx context.Context, planID int64, contents []string, executor domain.Executor, insertAt *int) ([]int64, domain.ChangeSet, error) {
	if len(contents) == 0 {
		return nil, domain.ChangeSet{}, domain.InvalidInputf("at least one step is required")
	}
	for i, c := range contents {
		if strings.TrimSpace(c) == "" {
			return nil, domain.ChangeSet{}, domain.InvalidInputf("step %d content is required", i+1)
		}
	}
	if executor == "" {
		executor = domain.ExecutorAI
	}
	if !executor.Valid() {
		return nil, domain.ChangeSet{}, domain.InvalidInputf("unknown executor %q", executor)
	}

	var (
		ids     []int64
		changes domain.ChangeSet
	)
	err := r.write(ctx, "add steps", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())
		ids = nil

		if _, err := loadPlan(tx, planID); err != nil {
			return err
		}

		ordered, err := normalizeSortOrder(tx, planID, rec.now)
		if err != nil {
			return err
		}
		pos := domain.ClampInsertPosition(insertAt, len(ordered))

		if pos <= len(ordered) {
			err := tx.Model(&StepModel{}).
				Where("plan_id = ? AND sort_order >= ?", planID, pos).
				Updates(map[string]any{
					"sort_order": gorm.Expr("sort_order + ?", len(contents)),
					"updated_at": rec.now,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to shift steps: %w", err)
			}
		}

		for i, content := range contents {
			sm := StepModel{
				Content:   strings.TrimSpace(content),
				CreatedAt: rec.now,
				Executor:  string(executor),
				PlanID:    planID,
				SortOrder: pos + i,
				Status:    string(domain.StatusTodo),
				UpdatedAt: rec.now,
			}
			if err := tx.Create(&sm).Error; err != nil {
				return fmt.Errorf("failed to insert step: %w", err)
			}
			ids = append(ids, sm.ID)
		}

		if err := rec.recomputePlan(planID); err != nil {
			return err
		}
		changes = rec.changes
		return nil
	})
	if err != nil {
		return nil, domain.ChangeSet{}, err
	}
	return ids, changes, nil
}

// MoveStep moves a step to target (clamped to the plan's step count) and
// renumbers its siblings
func (r *SQLiteRepository) MoveStep(ctx context.Context, id int64, target int) error {
	return r.write(ctx, "move step", func(tx *gorm.DB) error {
		now := r.now()

		step, err := loadStep(tx, id)
		if err != nil {
			return err
		}

		ordered, err := normalizeSortOrder(tx, step.PlanID, now)
		if err != nil {
			return err
		}
		current := domain.Renumber(ordered)
		return applyPositions(tx, domain.MoveID(ordered, id, target), current, now)
	})
}

// DeleteSteps removes steps and their goals. Every id must exist.
func (r *SQLiteRepository) DeleteSteps(ctx context.Context, ids []int64) (domain.ChangeSet, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return domain.ChangeSet{}, domain.InvalidInputf("at least one step id is required")
	}

	var changes domain.ChangeSet
	err := r.write(ctx, "delete steps", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())

		var rows []StepModel
		if err := tx.Select("id", "plan_id").Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to load steps: %w", err)
		}
		found := make(map[int64]bool, len(rows))
		var planIDs []int64
		seenPlan := make(map[int64]bool)
		for _, row := range rows {
			found[row.ID] = true
			if !seenPlan[row.PlanID] {
				seenPlan[row.PlanID] = true
				planIDs = append(planIDs, row.PlanID)
			}
		}
		if missing := missingIDs(ids, found); len(missing) > 0 {
			return domain.MissingIDsError("step", missing)
		}

		if err := tx.Where("step_id IN ?", ids).Delete(&GoalModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete goals: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&StepModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete steps: %w", err)
		}

		for _, planID := range planIDs {
			if _, err := normalizeSortOrder(tx, planID, rec.now); err != nil {
				return err
			}
			if err := rec.recomputePlan(planID); err != nil {
				return err
			}
		}
		changes = rec.changes
		return nil
	})
	return changes, err
}

// UpdateStep applies a partial update. A step's status may only be set
// directly while it has no goals.
func (r *SQLiteRepository) UpdateStep(ctx context.Context, id int64, update domain.StepUpdate) (domain.ChangeSet, error) {
	var changes domain.ChangeSet
	err := r.write(ctx, "update step", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())

		step, err := loadStep(tx, id)
		if err != nil {
			return err
		}

		fields := map[string]any{}
		if update.Content != nil {
			content := strings.TrimSpace(*update.Content)
			if content == "" {
				return domain.InvalidInputf("step content cannot be empty")
			}
			fields["content"] = content
		}
		if update.Comment != nil {
			fields["comment"] = strings.TrimSpace(*update.Comment)
		}
		if update.Executor != nil {
			if !update.Executor.Valid() {
				return domain.InvalidInputf("unknown executor %q", *update.Executor)
			}
			fields["executor"] = string(*update.Executor)
		}
		if len(fields) > 0 {
			fields["updated_at"] = rec.now
			if err := tx.Model(&StepModel{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return fmt.Errorf("failed to update step %d: %w", id, err)
			}
		}

		if update.Status != nil {
			changed, err := applyStepStatus(rec, step, *update.Status)
			if err != nil {
				return err
			}
			if changed {
				if err := rec.recomputePlan(step.PlanID); err != nil {
					return err
				}
			}
		}
		changes = rec.changes
		return nil
	})
	return changes, err
}

func applyStepStatus(rec *recorder, step StepModel, status domain.Status) (bool, error) {
	if !status.Valid() {
		return false, domain.InvalidInputf("unknown status %q", status)
	}

	total, done, err := countChildren(rec.tx, &GoalModel{}, "step_id", step.ID)
	if err != nil {
		return false, err
	}
	if total > 0 {
		if status == domain.StatusDone && done < total {
			var pending GoalModel
			if err := rec.tx.Where("step_id = ? AND status = ?", step.ID, domain.StatusTodo).
				Order("id ASC").First(&pending).Error; err != nil {
				return false, fmt.Errorf("failed to load pending goal: %w", err)
			}
			return false, domain.InvalidInputf("cannot mark step %d done: goal %d is still pending", step.ID, pending.ID)
		}
		if status == domain.StatusTodo && done == total {
			return false, domain.InvalidInputf("cannot reopen step %d: its status follows its %d done goals", step.ID, total)
		}
		return false, nil
	}

	return rec.setStepStatus(step, status, reasonManual)
}

// SetStepDone marks a step done. With autoCompleteGoals every pending goal
// is completed first; otherwise pending goals block the transition.
func (r *SQLiteRepository) SetStepDone(ctx context.Context, id int64, autoCompleteGoals bool) (domain.ChangeSet, error) {
	var changes domain.ChangeSet
	err := r.write(ctx, "set step done", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())

		step, err := loadStep(tx, id)
		if err != nil {
			return err
		}

		if autoCompleteGoals {
			var goals []GoalModel
			if err := tx.Where("step_id = ? AND status = ?", id, domain.StatusTodo).Order("id ASC").Find(&goals).Error; err != nil {
				return fmt.Errorf("failed to load goals: %w", err)
			}
			for _, g := range goals {
				if _, err := rec.setGoalStatus(g, domain.StatusDone, fmt.Sprintf("step %d completed", id)); err != nil {
					return err
				}
			}
			if len(goals) > 0 {
				if err := rec.recomputeStep(id); err != nil {
					return err
				}
				if err := rec.recomputePlan(step.PlanID); err != nil {
					return err
				}
				changes = rec.changes
				return nil
			}
		}

		// Re-read: goals may have flipped the step already
		step, err = loadStep(tx, id)
		if err != nil {
			return err
		}
		if step.Status == string(domain.StatusDone) {
			changes = rec.changes
			return nil
		}
		if _, err := applyStepStatus(rec, step, domain.StatusDone); err != nil {
			return err
		}
		if err := rec.recomputePlan(step.PlanID); err != nil {
			return err
		}
		changes = rec.changes
		return nil
	})
	return changes, err
}

// SetStepWait stores a wake time on the step
func (r *SQLiteRepository) SetStepWait(ctx context.Context, id int64, until time.Time, reason string) error {
	return r.write(ctx, "set step wait", func(tx *gorm.DB) error {
		if _, err := loadStep(tx, id); err != nil {
			return err
		}
		until := until.UTC()
		return tx.Model(&StepModel{}).Where("id = ?", id).Updates(map[string]any{
			"updated_at":  r.now(),
			"wait_reason": strings.TrimSpace(reason),
			"wait_until":  &until,
		}).Error
	})
}

// ClearStepWait removes the step's wake time, if any
func (r *SQLiteRepository) ClearStepWait(ctx context.Context, id int64) error {
	return r.write(ctx, "clear step wait", func(tx *gorm.DB) error {
		if _, err := loadStep(tx, id); err != nil {
			return err
		}
		return tx.Model(&StepModel{}).Where("id = ?", id).Updates(map[string]any{
			"updated_at":  r.now(),
			"wait_reason": "",
			"wait_until":  gorm.Expr("NULL"),
		}).Error
	})
}
