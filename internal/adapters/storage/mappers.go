package storage

import (
	"planpilot/internal/domain"
)

// planModelToDomain converts a PlanModel (GORM) to domain.Plan
func planModelToDomain(m PlanModel) domain.Plan {
	return domain.Plan{
		Comment:       m.Comment,
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
		ID:            m.ID,
		LastCwd:       m.LastCwd,
		LastSessionID: m.LastSessionID,
		Status:        domain.Status(m.Status),
		Title:         m.Title,
		UpdatedAt:     m.UpdatedAt,
	}
}

// stepModelToDomain converts a StepModel (GORM) to domain.Step
func stepModelToDomain(m StepModel) domain.Step {
	step := domain.Step{
		Comment:    m.Comment,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
		Executor:   domain.Executor(m.Executor),
		ID:         m.ID,
		PlanID:     m.PlanID,
		SortOrder:  m.SortOrder,
		Status:     domain.Status(m.Status),
		UpdatedAt:  m.UpdatedAt,
		WaitReason: m.WaitReason,
	}
	if m.WaitUntil != nil {
		until := m.WaitUntil.UTC()
		step.WaitUntil = &until
	}
	return step
}

// goalModelToDomain converts a GoalModel (GORM) to domain.Goal
func goalModelToDomain(m GoalModel) domain.Goal {
	return domain.Goal{
		Comment:   m.Comment,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		Status:    domain.Status(m.Status),
		StepID:    m.StepID,
		UpdatedAt: m.UpdatedAt,
	}
}

// activePlanModelToDomain converts an ActivePlanModel (GORM) to domain.ActivePlan
func activePlanModelToDomain(m ActivePlanModel) domain.ActivePlan {
	return domain.ActivePlan{
		PlanID:    m.PlanID,
		SessionID: m.SessionID,
		UpdatedAt: m.UpdatedAt,
	}
}

func stepModelsToDomain(models []StepModel) []domain.Step {
	steps := make([]domain.Step, len(models))
	for i, m := range models {
		steps[i] = stepModelToDomain(m)
	}
	return steps
}

func goalModelsToDomain(models []GoalModel) []domain.Goal {
	goals := make([]domain.Goal, len(models))
	for i, m := range models {
		goals[i] = goalModelToDomain(m)
	}
	return goals
}
