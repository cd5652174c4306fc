package services

import "planpilot/internal/domain"

// AddStepsParams contains parameters for inserting steps into a plan
type AddStepsParams struct {
	Contents []string
	Executor string
	PlanID   int64
	// Position is the 1-based insertion point; nil appends
	Position *int
}

// ActivateParams contains parameters for pointing a session at a plan
type ActivateParams struct {
	Cwd       string
	PlanID    int64
	SessionID string
	Takeover  bool
}

// NextWork is the unit of work a session should pick up next
type NextWork struct {
	Goals []domain.Goal
	Plan  domain.Plan
	Step  *domain.Step
}
