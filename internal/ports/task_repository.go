package ports

import (
	"context"
	"time"

	"planpilot/internal/domain"
)

// PlanReader reads plans
type PlanReader interface {
	GetPlan(ctx context.Context, id int64) (*domain.Plan, error)
	GetPlanDetail(ctx context.Context, id int64) (*domain.PlanDetail, error)
	ListPlans(ctx context.Context, order domain.PlanOrder, desc bool) ([]domain.Plan, error)
}

// StepReader reads steps and goals
type StepReader interface {
	GetGoal(ctx context.Context, id int64) (*domain.Goal, error)
	GetStep(ctx context.Context, id int64) (*domain.Step, error)
	ListGoals(ctx context.Context, stepID int64) ([]domain.Goal, error)
	ListSteps(ctx context.Context, planID int64) ([]domain.Step, error)
	// NextStep returns the pending step with the lowest sort order, or nil
	// when every step is done.
	NextStep(ctx context.Context, planID int64) (*domain.Step, error)
}

// ActivePlanReader resolves the plan a session is working on
type ActivePlanReader interface {
	// GetActivePlan returns nil when the session has no active plan
	GetActivePlan(ctx context.Context, sessionID string) (*domain.ActivePlan, error)
}

// PlanWriter creates, updates and removes plans
type PlanWriter interface {
	CreatePlanWithTree(ctx context.Context, plan domain.NewPlan) (*domain.CreatePlanResult, error)
	DeletePlan(ctx context.Context, id int64) (domain.ChangeSet, error)
	UpdatePlan(ctx context.Context, id int64, update domain.PlanUpdate) (domain.ChangeSet, error)
}

// StepWriter mutates steps inside a plan
type StepWriter interface {
	AddSteps(ctx context.Context, planID int64, contents []string, executor domain.Executor, insertAt *int) ([]int64, domain.ChangeSet, error)
	ClearStepWait(ctx context.Context, id int64) error
	DeleteSteps(ctx context.Context, ids []int64) (domain.ChangeSet, error)
	MoveStep(ctx context.Context, id int64, target int) error
	SetStepDone(ctx context.Context, id int64, autoCompleteGoals bool) (domain.ChangeSet, error)
	SetStepWait(ctx context.Context, id int64, until time.Time, reason string) error
	UpdateStep(ctx context.Context, id int64, update domain.StepUpdate) (domain.ChangeSet, error)
}

// GoalWriter mutates goals inside a step
type GoalWriter interface {
	AddGoals(ctx context.Context, stepID int64, contents []string) ([]int64, domain.ChangeSet, error)
	DeleteGoals(ctx context.Context, ids []int64) (domain.ChangeSet, error)
	SetGoalsStatus(ctx context.Context, ids []int64, status domain.Status) (domain.ChangeSet, error)
	UpdateGoal(ctx context.Context, id int64, update domain.GoalUpdate) (domain.ChangeSet, error)
}

// ActivePlanWriter activates and deactivates plans per session
type ActivePlanWriter interface {
	ClearActivePlan(ctx context.Context, sessionID string) (bool, error)
	SetActivePlan(ctx context.Context, sessionID string, planID int64, takeover bool, cwd string) error
}

// WorkReader is what the auto-continue loop needs to find the next unit of work
type WorkReader interface {
	ActivePlanReader
	GetPlan(ctx context.Context, id int64) (*domain.Plan, error)
	ListGoals(ctx context.Context, stepID int64) ([]domain.Goal, error)
	NextStep(ctx context.Context, planID int64) (*domain.Step, error)
}

// TaskRepository is the composite interface
type TaskRepository interface {
	ActivePlanReader
	ActivePlanWriter
	GoalWriter
	PlanReader
	PlanWriter
	StepReader
	StepWriter
	Close() error
}
