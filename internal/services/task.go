package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"planpilot/internal/domain"
	"planpilot/internal/logging"
	"planpilot/internal/ports"
)

// TaskService validates input for the task engine and logs every status
// change it produces
type TaskService struct {
	clock ports.Clock
	repo  ports.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(repo ports.TaskRepository, clock ports.Clock) *TaskService {
	return &TaskService{
		clock: clock,
		repo:  repo,
	}
}

// CreatePlan creates a plan with its steps and goals in one transaction
func (s *TaskService) CreatePlan(ctx context.Context, plan domain.NewPlan) (*domain.CreatePlanResult, error) {
	plan.Title = strings.TrimSpace(plan.Title)
	plan.Content = strings.TrimSpace(plan.Content)
	if plan.Title == "" {
		return nil, domain.InvalidInputf("plan title is required")
	}
	if plan.Content == "" {
		return nil, domain.InvalidInputf("plan content is required")
	}

	steps := make([]domain.NewStep, 0, len(plan.Steps))
	for i, step := range plan.Steps {
		content := strings.TrimSpace(step.Content)
		if content == "" {
			return nil, domain.InvalidInputf("step %d content is required", i+1)
		}
		executor, err := domain.ParseExecutor(string(step.Executor))
		if err != nil {
			return nil, err
		}
		goals, err := cleanContents(fmt.Sprintf("step %d goal", i+1), step.Goals, true)
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain.NewStep{Content: content, Executor: executor, Goals: goals})
	}
	plan.Steps = steps

	logging.Logger.Info("Creating plan", "title", plan.Title, "steps", len(plan.Steps))
	result, err := s.repo.CreatePlanWithTree(ctx, plan)
	if err != nil {
		logging.Logger.Error("Failed to create plan", "title", plan.Title, "error", err)
		return nil, err
	}
	logging.Logger.Info("Plan created",
		"plan", result.PlanID,
		"steps", result.StepCount,
		"goals", result.GoalCount)
	return result, nil
}

// ListPlans lists plans ordered by the given key
func (s *TaskService) ListPlans(ctx context.Context, order string, desc bool) ([]domain.Plan, error) {
	planOrder, err := domain.ParsePlanOrder(order)
	if err != nil {
		return nil, err
	}
	return s.repo.ListPlans(ctx, planOrder, desc)
}

// GetPlan returns a plan
func (s *TaskService) GetPlan(ctx context.Context, id int64) (*domain.Plan, error) {
	if err := validID("plan", id); err != nil {
		return nil, err
	}
	return s.repo.GetPlan(ctx, id)
}

// GetPlanDetail returns a plan with its ordered steps and their goals
func (s *TaskService) GetPlanDetail(ctx context.Context, id int64) (*domain.PlanDetail, error) {
	if err := validID("plan", id); err != nil {
		return nil, err
	}
	return s.repo.GetPlanDetail(ctx, id)
}

// UpdatePlan applies a partial update to a plan
func (s *TaskService) UpdatePlan(ctx context.Context, id int64, update domain.PlanUpdate) (domain.ChangeSet, error) {
	if err := validID("plan", id); err != nil {
		return domain.ChangeSet{}, err
	}
	if update.Empty() {
		return domain.ChangeSet{}, domain.InvalidInputf("nothing to update for plan %d", id)
	}
	if err := requireText("plan title", update.Title); err != nil {
		return domain.ChangeSet{}, err
	}
	if err := requireText("plan content", update.Content); err != nil {
		return domain.ChangeSet{}, err
	}

	cs, err := s.repo.UpdatePlan(ctx, id, update)
	return s.logChanges("update plan", cs, err)
}

// DeletePlan removes a plan and everything under it
func (s *TaskService) DeletePlan(ctx context.Context, id int64) (domain.ChangeSet, error) {
	if err := validID("plan", id); err != nil {
		return domain.ChangeSet{}, err
	}
	logging.Logger.Info("Deleting plan", "plan", id)
	cs, err := s.repo.DeletePlan(ctx, id)
	return s.logChanges("delete plan", cs, err)
}

// ListSteps returns the steps of a plan in order
func (s *TaskService) ListSteps(ctx context.Context, planID int64) ([]domain.Step, error) {
	if err := validID("plan", planID); err != nil {
		return nil, err
	}
	return s.repo.ListSteps(ctx, planID)
}

// GetStep returns a step
func (s *TaskService) GetStep(ctx context.Context, id int64) (*domain.Step, error) {
	if err := validID("step", id); err != nil {
		return nil, err
	}
	return s.repo.GetStep(ctx, id)
}

// AddSteps inserts steps into a plan
func (s *TaskService) AddSteps(ctx context.Context, params AddStepsParams) ([]int64, domain.ChangeSet, error) {
	if err := validID("plan", params.PlanID); err != nil {
		return nil, domain.ChangeSet{}, err
	}
	contents, err := cleanContents("step", params.Contents, false)
	if err != nil {
		return nil, domain.ChangeSet{}, err
	}
	executor, err := domain.ParseExecutor(params.Executor)
	if err != nil {
		return nil, domain.ChangeSet{}, err
	}

	ids, cs, err := s.repo.AddSteps(ctx, params.PlanID, contents, executor, params.Position)
	if err != nil {
		logging.Logger.Error("Failed to add steps", "plan", params.PlanID, "error", err)
		return nil, cs, err
	}
	logging.Logger.Info("Steps added", "plan", params.PlanID, "ids", domain.FormatIDs(ids))
	cs, err = s.logChanges("add steps", cs, nil)
	return ids, cs, err
}

// MoveStep moves a step to a new 1-based position in its plan
func (s *TaskService) MoveStep(ctx context.Context, id int64, target int) error {
	if err := validID("step", id); err != nil {
		return err
	}
	logging.Logger.Info("Moving step", "step", id, "target", target)
	if err := s.repo.MoveStep(ctx, id, target); err != nil {
		logging.Logger.Error("Failed to move step", "step", id, "error", err)
		return err
	}
	return nil
}

// DeleteSteps removes steps and their goals
func (s *TaskService) DeleteSteps(ctx context.Context, ids []int64) (domain.ChangeSet, error) {
	if err := validIDs("step", ids); err != nil {
		return domain.ChangeSet{}, err
	}
	cs, err := s.repo.DeleteSteps(ctx, ids)
	return s.logChanges("delete steps", cs, err)
}

// UpdateStep applies a partial update to a step
func (s *TaskService) UpdateStep(ctx context.Context, id int64, update domain.StepUpdate) (domain.ChangeSet, error) {
	if err := validID("step", id); err != nil {
		return domain.ChangeSet{}, err
	}
	if update.Empty() {
		return domain.ChangeSet{}, domain.InvalidInputf("nothing to update for step %d", id)
	}
	if err := requireText("step content", update.Content); err != nil {
		return domain.ChangeSet{}, err
	}
	if update.Executor != nil && !update.Executor.Valid() {
		return domain.ChangeSet{}, domain.InvalidInputf("unknown executor %q (expected ai or human)", *update.Executor)
	}

	cs, err := s.repo.UpdateStep(ctx, id, update)
	return s.logChanges("update step", cs, err)
}

// SetStepDone marks a step done, optionally completing its goals first
func (s *TaskService) SetStepDone(ctx context.Context, id int64, allGoals bool) (domain.ChangeSet, error) {
	if err := validID("step", id); err != nil {
		return domain.ChangeSet{}, err
	}
	cs, err := s.repo.SetStepDone(ctx, id, allGoals)
	return s.logChanges("step done", cs, err)
}

// SetStepWait defers auto-continue for a step until now+delay
func (s *TaskService) SetStepWait(ctx context.Context, id int64, delay time.Duration, reason string) (*domain.StepWait, error) {
	if err := validID("step", id); err != nil {
		return nil, err
	}
	if delay <= 0 {
		return nil, domain.InvalidInputf("wait delay must be positive, got %s", delay)
	}

	wait := &domain.StepWait{
		Reason: strings.TrimSpace(reason),
		Until:  s.clock.Now().Add(delay).UTC(),
	}
	if err := s.repo.SetStepWait(ctx, id, wait.Until, wait.Reason); err != nil {
		logging.Logger.Error("Failed to set step wait", "step", id, "error", err)
		return nil, err
	}
	logging.Logger.Info("Step wait set", "step", id, "until", wait.Until, "reason", wait.Reason)
	return wait, nil
}

// ClearStepWait removes a step's wait marker
func (s *TaskService) ClearStepWait(ctx context.Context, id int64) error {
	if err := validID("step", id); err != nil {
		return err
	}
	if err := s.repo.ClearStepWait(ctx, id); err != nil {
		return err
	}
	logging.Logger.Info("Step wait cleared", "step", id)
	return nil
}

// GetStepWait returns the step's wait marker, or nil when none is set
func (s *TaskService) GetStepWait(ctx context.Context, id int64) (*domain.StepWait, error) {
	step, err := s.GetStep(ctx, id)
	if err != nil {
		return nil, err
	}
	return step.Wait(), nil
}

// GetGoal returns a goal
func (s *TaskService) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	if err := validID("goal", id); err != nil {
		return nil, err
	}
	return s.repo.GetGoal(ctx, id)
}

// ListGoals returns the goals of a step
func (s *TaskService) ListGoals(ctx context.Context, stepID int64) ([]domain.Goal, error) {
	if err := validID("step", stepID); err != nil {
		return nil, err
	}
	return s.repo.ListGoals(ctx, stepID)
}

// AddGoals appends goals to a step
func (s *TaskService) AddGoals(ctx context.Context, stepID int64, contents []string) ([]int64, domain.ChangeSet, error) {
	if err := validID("step", stepID); err != nil {
		return nil, domain.ChangeSet{}, err
	}
	contents, err := cleanContents("goal", contents, false)
	if err != nil {
		return nil, domain.ChangeSet{}, err
	}

	ids, cs, err := s.repo.AddGoals(ctx, stepID, contents)
	if err != nil {
		logging.Logger.Error("Failed to add goals", "step", stepID, "error", err)
		return nil, cs, err
	}
	logging.Logger.Info("Goals added", "step", stepID, "ids", domain.FormatIDs(ids))
	cs, err = s.logChanges("add goals", cs, nil)
	return ids, cs, err
}

// SetGoalsStatus transitions goals and recomputes their ancestors
func (s *TaskService) SetGoalsStatus(ctx context.Context, ids []int64, status string) (domain.ChangeSet, error) {
	if err := validIDs("goal", ids); err != nil {
		return domain.ChangeSet{}, err
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		return domain.ChangeSet{}, err
	}
	cs, err := s.repo.SetGoalsStatus(ctx, ids, st)
	return s.logChanges("set goals", cs, err)
}

// UpdateGoal applies a partial update to a goal
func (s *TaskService) UpdateGoal(ctx context.Context, id int64, update domain.GoalUpdate) (domain.ChangeSet, error) {
	if err := validID("goal", id); err != nil {
		return domain.ChangeSet{}, err
	}
	if update.Empty() {
		return domain.ChangeSet{}, domain.InvalidInputf("nothing to update for goal %d", id)
	}
	if err := requireText("goal content", update.Content); err != nil {
		return domain.ChangeSet{}, err
	}
	cs, err := s.repo.UpdateGoal(ctx, id, update)
	return s.logChanges("update goal", cs, err)
}

// DeleteGoals removes goals
func (s *TaskService) DeleteGoals(ctx context.Context, ids []int64) (domain.ChangeSet, error) {
	if err := validIDs("goal", ids); err != nil {
		return domain.ChangeSet{}, err
	}
	cs, err := s.repo.DeleteGoals(ctx, ids)
	return s.logChanges("delete goals", cs, err)
}

// Activate points a session at a plan
func (s *TaskService) Activate(ctx context.Context, params ActivateParams) error {
	sessionID := strings.TrimSpace(params.SessionID)
	if sessionID == "" {
		return domain.InvalidInputf("session id is required")
	}
	if err := validID("plan", params.PlanID); err != nil {
		return err
	}

	logging.Logger.Info("Activating plan",
		"session", sessionID,
		"plan", params.PlanID,
		"takeover", params.Takeover)
	if err := s.repo.SetActivePlan(ctx, sessionID, params.PlanID, params.Takeover, params.Cwd); err != nil {
		logging.Logger.Warn("Failed to activate plan", "session", sessionID, "plan", params.PlanID, "error", err)
		return err
	}
	return nil
}

// GetActivePlan returns the session's active plan pointer, or nil
func (s *TaskService) GetActivePlan(ctx context.Context, sessionID string) (*domain.ActivePlan, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, domain.InvalidInputf("session id is required")
	}
	return s.repo.GetActivePlan(ctx, sessionID)
}

// Deactivate clears the session's active plan. It reports whether there
// was one.
func (s *TaskService) Deactivate(ctx context.Context, sessionID string) (bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false, domain.InvalidInputf("session id is required")
	}
	removed, err := s.repo.ClearActivePlan(ctx, sessionID)
	if err != nil {
		return false, err
	}
	logging.Logger.Info("Active plan cleared", "session", sessionID, "removed", removed)
	return removed, nil
}

// Next resolves the session's active plan and its next pending step. Step
// is nil when every step of the plan is done.
func (s *TaskService) Next(ctx context.Context, sessionID string) (*NextWork, error) {
	active, err := s.GetActivePlan(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, domain.NotFoundf("session %s has no active plan", sessionID)
	}

	plan, err := s.repo.GetPlan(ctx, active.PlanID)
	if err != nil {
		return nil, err
	}
	work := &NextWork{Plan: *plan}

	step, err := s.repo.NextStep(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	if step == nil {
		return work, nil
	}
	work.Step = step

	goals, err := s.repo.ListGoals(ctx, step.ID)
	if err != nil {
		return nil, err
	}
	work.Goals = goals
	return work, nil
}

func (s *TaskService) logChanges(op string, cs domain.ChangeSet, err error) (domain.ChangeSet, error) {
	if err != nil {
		logging.Logger.Error("Task operation failed", "op", op, "error", err)
		return cs, err
	}
	for _, c := range cs.Changes {
		logging.Logger.Info("Status changed",
			"op", op,
			"entity", c.EntityType,
			"id", c.EntityID,
			"from", c.From,
			"to", c.To,
			"reason", c.Reason)
	}
	return cs, nil
}

func validID(entity string, id int64) error {
	if id <= 0 {
		return domain.InvalidInputf("invalid %s id %d", entity, id)
	}
	return nil
}

func validIDs(entity string, ids []int64) error {
	if len(ids) == 0 {
		return domain.InvalidInputf("at least one %s id is required", entity)
	}
	for _, id := range ids {
		if err := validID(entity, id); err != nil {
			return err
		}
	}
	return nil
}

func requireText(field string, value *string) error {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return domain.InvalidInputf("%s cannot be empty", field)
	}
	*value = trimmed
	return nil
}

// cleanContents trims every entry and rejects blank ones. allowEmpty
// permits an empty list.
func cleanContents(kind string, contents []string, allowEmpty bool) ([]string, error) {
	if len(contents) == 0 && !allowEmpty {
		return nil, domain.InvalidInputf("at least one %s is required", kind)
	}
	out := make([]string, 0, len(contents))
	for i, c := range contents {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, domain.InvalidInputf("%s %d content is required", kind, i+1)
		}
		out = append(out, c)
	}
	return out, nil
}
