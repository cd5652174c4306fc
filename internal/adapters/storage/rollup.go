package storage

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"planpilot/internal/domain"
)

const reasonManual = "manual"

// recorder persists status transitions made inside one transaction and
// collects them for the caller.
type recorder struct {
	changes domain.ChangeSet
	now     time.Time
	tx      *gorm.DB
}

func newRecorder(tx *gorm.DB, now time.Time) *recorder {
	return &recorder{tx: tx, now: now}
}

func (rec *recorder) record(entity domain.EntityType, id int64, from, to, reason string) error {
	row := StatusChangeModel{
		CreatedAt:  rec.now,
		EntityID:   id,
		EntityType: string(entity),
		FromStatus: from,
		Reason:     reason,
		ToStatus:   to,
	}
	if err := rec.tx.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}
	rec.changes.Add(domain.StatusChange{
		At:         rec.now,
		EntityID:   id,
		EntityType: entity,
		From:       from,
		Reason:     reason,
		To:         to,
	})
	return nil
}

// setGoalStatus writes a goal's status and records the transition.
// Returns false when the goal already had that status.
func (rec *recorder) setGoalStatus(goal GoalModel, status domain.Status, reason string) (bool, error) {
	if goal.Status == string(status) {
		return false, nil
	}
	err := rec.tx.Model(&GoalModel{}).Where("id = ?", goal.ID).
		Updates(map[string]any{"status": string(status), "updated_at": rec.now}).Error
	if err != nil {
		return false, fmt.Errorf("failed to update goal %d: %w", goal.ID, err)
	}
	return true, rec.record(domain.EntityGoal, goal.ID, goal.Status, string(status), reason)
}

// setStepStatus writes a step's status and records the transition
func (rec *recorder) setStepStatus(step StepModel, status domain.Status, reason string) (bool, error) {
	if step.Status == string(status) {
		return false, nil
	}
	err := rec.tx.Model(&StepModel{}).Where("id = ?", step.ID).
		Updates(map[string]any{"status": string(status), "updated_at": rec.now}).Error
	if err != nil {
		return false, fmt.Errorf("failed to update step %d: %w", step.ID, err)
	}
	return true, rec.record(domain.EntityStep, step.ID, step.Status, string(status), reason)
}

// setPlanStatus writes a plan's status and records the transition. A plan
// that becomes done is deactivated in whichever session holds it.
func (rec *recorder) setPlanStatus(plan PlanModel, status domain.Status, reason string) (bool, error) {
	if plan.Status == string(status) {
		return false, nil
	}
	err := rec.tx.Model(&PlanModel{}).Where("id = ?", plan.ID).
		Updates(map[string]any{"status": string(status), "updated_at": rec.now}).Error
	if err != nil {
		return false, fmt.Errorf("failed to update plan %d: %w", plan.ID, err)
	}
	if err := rec.record(domain.EntityPlan, plan.ID, plan.Status, string(status), reason); err != nil {
		return false, err
	}
	if status == domain.StatusDone {
		if err := rec.clearActiveForPlan(plan.ID, "plan completed"); err != nil {
			return false, err
		}
	}
	return true, nil
}

// clearActiveForPlan removes the active pointer to planID, if any
func (rec *recorder) clearActiveForPlan(planID int64, why string) error {
	var rows []ActivePlanModel
	if err := rec.tx.Where("plan_id = ?", planID).Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load active plan: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := rec.tx.Where("plan_id = ?", planID).Delete(&ActivePlanModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear active plan: %w", err)
	}
	for _, row := range rows {
		reason := fmt.Sprintf("%s (session %s)", why, row.SessionID)
		if err := rec.record(domain.EntityActivePlan, planID, "active", "cleared", reason); err != nil {
			return err
		}
	}
	return nil
}

// recomputeStep derives a step's status from its goals. A step without
// goals keeps its explicit status.
func (rec *recorder) recomputeStep(stepID int64) error {
	var step StepModel
	if err := rec.tx.First(&step, stepID).Error; err != nil {
		return fmt.Errorf("failed to load step %d: %w", stepID, err)
	}

	total, done, err := countChildren(rec.tx, &GoalModel{}, "step_id", stepID)
	if err != nil {
		return err
	}
	if total == 0 {
		return nil
	}

	target := domain.DeriveStatus(total, done)
	_, err = rec.setStepStatus(step, target, domain.RollupReason(domain.EntityGoal, total, done))
	return err
}

// recomputePlan derives a plan's status from its steps
func (rec *recorder) recomputePlan(planID int64) error {
	var plan PlanModel
	if err := rec.tx.First(&plan, planID).Error; err != nil {
		return fmt.Errorf("failed to load plan %d: %w", planID, err)
	}

	total, done, err := countChildren(rec.tx, &StepModel{}, "plan_id", planID)
	if err != nil {
		return err
	}
	if total == 0 {
		return nil
	}

	target := domain.DeriveStatus(total, done)
	_, err = rec.setPlanStatus(plan, target, domain.RollupReason(domain.EntityStep, total, done))
	return err
}

// recomputeSteps walks every touched step and then every owning plan
func (rec *recorder) recomputeSteps(stepIDs []int64) error {
	planIDs := make([]int64, 0, len(stepIDs))
	seen := make(map[int64]bool)
	for _, id := range stepIDs {
		if err := rec.recomputeStep(id); err != nil {
			return err
		}
		var step StepModel
		if err := rec.tx.Select("id", "plan_id").First(&step, id).Error; err != nil {
			return fmt.Errorf("failed to load step %d: %w", id, err)
		}
		if !seen[step.PlanID] {
			seen[step.PlanID] = true
			planIDs = append(planIDs, step.PlanID)
		}
	}
	for _, id := range planIDs {
		if err := rec.recomputePlan(id); err != nil {
			return err
		}
	}
	return nil
}

func countChildren(tx *gorm.DB, model any, fk string, parentID int64) (int, int, error) {
	var counts struct {
		Done  int
		Total int
	}
	err := tx.Model(model).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN status = 'done' THEN 1 ELSE 0 END), 0) AS done").
		Where(fk+" = ?", parentID).
		Scan(&counts).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count children: %w", err)
	}
	return counts.Total, counts.Done, nil
}
