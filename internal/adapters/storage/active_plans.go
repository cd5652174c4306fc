package storage

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"planpilot/internal/domain"
)

// GetActivePlan returns the session's active plan, or nil
func (r *SQLiteRepository) GetActivePlan(ctx context.Context, sessionID string) (*domain.ActivePlan, error) {
	var rows []ActivePlanModel
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Limit(1).Find(&rows).Error; err != nil {
		return nil, domain.DBError("get active plan", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	active := activePlanModelToDomain(rows[0])
	return &active, nil
}

// SetActivePlan points sessionID at planID. A plan held by another session
// can only be taken over explicitly.
func (r *SQLiteRepository) SetActivePlan(ctx context.Context, sessionID string, planID int64, takeover bool, cwd string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return domain.InvalidInputf("session id is required")
	}

	return r.write(ctx, "set active plan", func(tx *gorm.DB) error {
		now := r.now()

		plan, err := loadPlan(tx, planID)
		if err != nil {
			return err
		}
		if plan.Status == string(domain.StatusDone) {
			return domain.InvalidInputf("plan %d is already done", planID)
		}

		var holders []ActivePlanModel
		if err := tx.Where("plan_id = ?", planID).Find(&holders).Error; err != nil {
			return fmt.Errorf("failed to load active plan: %w", err)
		}
		for _, h := range holders {
			if h.SessionID != sessionID && !takeover {
				return domain.InvalidInputf("plan %d is active in session %s (use takeover to move it)", planID, h.SessionID)
			}
		}

		if err := tx.Where("session_id = ? OR plan_id = ?", sessionID, planID).Delete(&ActivePlanModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear active plan: %w", err)
		}
		row := ActivePlanModel{
			CreatedAt: now,
			PlanID:    planID,
			SessionID: sessionID,
			UpdatedAt: now,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert active plan: %w", err)
		}

		fields := map[string]any{"last_session_id": sessionID, "updated_at": now}
		if cwd = strings.TrimSpace(cwd); cwd != "" {
			fields["last_cwd"] = cwd
		}
		if err := tx.Model(&PlanModel{}).Where("id = ?", planID).Updates(fields).Error; err != nil {
			return fmt.Errorf("failed to touch plan %d: %w", planID, err)
		}
		return nil
	})
}

// ClearActivePlan deactivates the session's plan. It reports whether a
// pointer existed.
func (r *SQLiteRepository) ClearActivePlan(ctx context.Context, sessionID string) (bool, error) {
	var removed bool
	err := r.write(ctx, "clear active plan", func(tx *gorm.DB) error {
		result := tx.Where("session_id = ?", sessionID).Delete(&ActivePlanModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to clear active plan: %w", result.Error)
		}
		removed = result.RowsAffected > 0
		return nil
	})
	return removed, err
}
