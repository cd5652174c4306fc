package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"planpilot/internal/domain"
)

func loadGoal(tx *gorm.DB, id int64) (GoalModel, error) {
	var m GoalModel
	if err := tx.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, domain.NotFoundf("goal %d not found", id)
		}
		return m, fmt.Errorf("failed to load goal %d: %w", id, err)
	}
	return m, nil
}

// GetGoal returns a goal by id
func (r *SQLiteRepository) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	m, err := loadGoal(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, domain.DBError("get goal", err)
	}
	goal := goalModelToDomain(m)
	return &goal, nil
}

// ListGoals returns a step's goals in creation order
func (r *SQLiteRepository) ListGoals(ctx context.Context, stepID int64) ([]domain.Goal, error) {
	db := r.db.WithContext(ctx)
	if _, err := loadStep(db, stepID); err != nil {
		return nil, domain.DBError("list goals", err)
	}

	var models []GoalModel
	if err := db.Where("step_id = ?", stepID).Order("id ASC").Find(&models).Error; err != nil {
		return nil, domain.DBError("list goals", err)
	}
	return goalModelsToDomain(models), nil
}

// AddGoals appends goals to a step. A done step with new pending goals
// reverts to todo, and so does its plan.
func (r *SQLiteRepository) AddGoals(ctx context.Context, stepID int64, contents []string) ([]int64, domain.ChangeSet, error) {
	if len(contents) == 0 {
		return nil, domain.ChangeSet{}, domain.InvalidInputf("at least one goal is required")
	}
	for i, c := range contents {
		if strings.TrimSpace(c) == "" {
			return nil, domain.ChangeSet{}, domain.InvalidInputf("goal %d content is required", i+1)
		}
	}

	var (
		ids     []int64
		changes domain.ChangeSet
	)
	err := r.write(ctx, "add goals", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())
		ids = nil

		if _, err := loadStep(tx, stepID); err != nil {
			return err
		}
		for _, content := range contents {
			gm := GoalModel{
				Content:   strings.TrimSpace(content),
				CreatedAt: rec.now,
				Status:    string(domain.StatusTodo),
				StepID:    stepID,
				UpdatedAt: rec.now,
			}
			if err := tx.Create(&gm).Error; err != nil {
				return fmt.Errorf("failed to insert goal: %w", err)
			}
			ids = append(ids, gm.ID)
		}

		if err := rec.recomputeSteps([]int64{stepID}); err != nil {
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

// SetGoalsStatus transitions goals and recomputes their steps and plans
func (r *SQLiteRepository) SetGoalsStatus(ctx context.Context, ids []int64, status domain.Status) (domain.ChangeSet, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return domain.ChangeSet{}, domain.InvalidInputf("at least one goal id is required")
	}
	if !status.Valid() {
		return domain.ChangeSet{}, domain.InvalidInputf("unknown status %q", status)
	}

	var changes domain.ChangeSet
	err := r.write(ctx, "set goal status", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())

		goals, err := loadGoals(tx, ids)
		if err != nil {
			return err
		}

		var stepIDs []int64
		seen := make(map[int64]bool)
		for _, g := range goals {
			if _, err := rec.setGoalStatus(g, status, reasonManual); err != nil {
				return err
			}
			if !seen[g.StepID] {
				seen[g.StepID] = true
				stepIDs = append(stepIDs, g.StepID)
			}
		}

		if err := rec.recomputeSteps(stepIDs); err != nil {
			return err
		}
		changes = rec.changes
		return nil
	})
	return changes, err
}

// loadGoals returns the goals in the order of ids, failing with every
// missing id named
func loadGoals(tx *gorm.DB, ids []int64) ([]GoalModel, error) {
	var rows []GoalModel
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	byID := make(map[int64]GoalModel, len(rows))
	found := make(map[int64]bool, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
		found[row.ID] = true
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, domain.MissingIDsError("goal", missing)
	}

	goals := make([]GoalModel, len(ids))
	for i, id := range ids {
		goals[i] = byID[id]
	}
	return goals, nil
}

// UpdateGoal applies a partial update to a goal
func (r *SQLiteRepository) UpdateGoal(ctx context.Context, id int64, update domain.GoalUpdate) (domain.ChangeSet, error) {
	var changes domain.ChangeSet
	err := r.write(ctx, "update goal", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())

		goal, err := loadGoal(tx, id)
		if err != nil {
			return err
		}

		fields := map[string]any{}
		if update.Content != nil {
			content := strings.TrimSpace(*update.Content)
			if content == "" {
				return domain.InvalidInputf("goal content cannot be empty")
			}
			fields["content"] = content
		}
		if update.Comment != nil {
			fields["comment"] = strings.TrimSpace(*update.Comment)
		}
		if len(fields) > 0 {
			fields["updated_at"] = rec.now
			if err := tx.Model(&GoalModel{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return fmt.Errorf("failed to update goal %d: %w", id, err)
			}
		}

		if update.Status != nil {
			if !update.Status.Valid() {
				return domain.InvalidInputf("unknown status %q", *update.Status)
			}
			changed, err := rec.setGoalStatus(goal, *update.Status, reasonManual)
			if err != nil {
				return err
			}
			if changed {
				if err := rec.recomputeSteps([]int64{goal.StepID}); err != nil {
					return err
				}
			}
		}
		changes = rec.changes
		return nil
	})
	return changes, err
}

// DeleteGoals removes goals. Every id must exist.
func (r *SQLiteRepository) DeleteGoals(ctx context.Context, ids []int64) (domain.ChangeSet, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return domain.ChangeSet{}, domain.InvalidInputf("at least one goal id is required")
	}

	var changes domain.ChangeSet
	err := r.write(ctx, "delete goals", func(tx *gorm.DB) error {
		rec := newRecorder(tx, r.now())

		goals, err := loadGoals(tx, ids)
		if err != nil {
			return err
		}
		var stepIDs []int64
		seen := make(map[int64]bool)
		for _, g := range goals {
			if !seen[g.StepID] {
				seen[g.StepID] = true
				stepIDs = append(stepIDs, g.StepID)
			}
		}

		if err := tx.Where("id IN ?", ids).Delete(&GoalModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete goals: %w", err)
		}
		if err := rec.recomputeSteps(stepIDs); err != nil {
			return err
		}
		changes = rec.changes
		return nil
	})
	return changes, err
}
