package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"planpilot/internal/adapters/clock"
	"planpilot/internal/domain"
	portsmocks "planpilot/internal/ports/mocks"
)

func newTaskService(t *testing.T) (*TaskService, *portsmocks.MockTaskRepository, *clock.Fake) {
	repo := portsmocks.NewMockTaskRepository(t)
	clk := clock.NewFake(testStart)
	return NewTaskService(repo, clk), repo, clk
}

func TestTaskService_CreatePlanNormalizesInput(t *testing.T) {
	svc, repo, _ := newTaskService(t)

	want := domain.NewPlan{
		Title:   "Ship v2",
		Content: "Release work",
		Steps: []domain.NewStep{
			{Content: "Migrate", Executor: domain.ExecutorAI, Goals: []string{"Add columns"}},
			{Content: "Announce", Executor: domain.ExecutorHuman, Goals: []string{}},
		},
	}
	repo.EXPECT().CreatePlanWithTree(mock.Anything, want).
		Return(&domain.CreatePlanResult{PlanID: 1, StepCount: 2, GoalCount: 1}, nil)

	result, err := svc.CreatePlan(context.Background(), domain.NewPlan{
		Title:   "  Ship v2 ",
		Content: "Release work\n",
		Steps: []domain.NewStep{
			{Content: " Migrate", Goals: []string{"Add columns "}},
			{Content: "Announce", Executor: "Human"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.PlanID)
}

func TestTaskService_CreatePlanRejectsBlankText(t *testing.T) {
	tests := []struct {
		name string
		plan domain.NewPlan
		want string
	}{
		{"title", domain.NewPlan{Title: " ", Content: "c"}, "plan title is required"},
		{"content", domain.NewPlan{Title: "t"}, "plan content is required"},
		{"step", domain.NewPlan{Title: "t", Content: "c", Steps: []domain.NewStep{{Content: "a"}, {Content: "\t"}}}, "step 2 content is required"},
		{"goal", domain.NewPlan{Title: "t", Content: "c", Steps: []domain.NewStep{{Content: "a", Goals: []string{""}}}}, "step 1 goal 1 content is required"},
		{"executor", domain.NewPlan{Title: "t", Content: "c", Steps: []domain.NewStep{{Content: "a", Executor: "robot"}}}, `unknown executor "robot"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTaskService(t)

			_, err := svc.CreatePlan(context.Background(), tt.plan)

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTaskService_ListPlansValidatesOrder(t *testing.T) {
	svc, repo, _ := newTaskService(t)

	_, err := svc.ListPlans(context.Background(), "priority", false)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.EXPECT().ListPlans(mock.Anything, domain.PlanOrderTitle, true).Return([]domain.Plan{{ID: 2}}, nil)
	plans, err := svc.ListPlans(context.Background(), "Title", true)
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestTaskService_AddSteps(t *testing.T) {
	svc, repo, _ := newTaskService(t)
	pos := 2
	repo.EXPECT().AddSteps(mock.Anything, int64(7), []string{"a", "b"}, domain.ExecutorAI, &pos).
		Return([]int64{20, 21}, domain.ChangeSet{}, nil)

	ids, _, err := svc.AddSteps(context.Background(), AddStepsParams{
		PlanID:   7,
		Contents: []string{" a", "b "},
		Position: &pos,
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{20, 21}, ids)

	_, _, err = svc.AddSteps(context.Background(), AddStepsParams{PlanID: 7})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = svc.AddSteps(context.Background(), AddStepsParams{PlanID: 0, Contents: []string{"a"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_SetStepWait(t *testing.T) {
	svc, repo, _ := newTaskService(t)
	until := testStart.Add(5000 * time.Millisecond)
	repo.EXPECT().SetStepWait(mock.Anything, int64(3), until, "CI running").Return(nil)

	wait, err := svc.SetStepWait(context.Background(), 3, 5000*time.Millisecond, " CI running ")

	require.NoError(t, err)
	assert.Equal(t, until, wait.Until)
	assert.Equal(t, "CI running", wait.Reason)

	_, err = svc.SetStepWait(context.Background(), 3, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.SetStepWait(context.Background(), 3, -time.Second, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_GetStepWait(t *testing.T) {
	svc, repo, _ := newTaskService(t)
	until := testStart.Add(time.Minute)
	repo.EXPECT().GetStep(mock.Anything, int64(3)).
		Return(&domain.Step{ID: 3, WaitUntil: &until, WaitReason: "deploy"}, nil)
	repo.EXPECT().GetStep(mock.Anything, int64(4)).Return(&domain.Step{ID: 4}, nil)

	wait, err := svc.GetStepWait(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, &domain.StepWait{Until: until, Reason: "deploy"}, wait)

	wait, err = svc.GetStepWait(context.Background(), 4)
	require.NoError(t, err)
	assert.Nil(t, wait)
}

func TestTaskService_UpdateValidation(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()
	blank := "  "
	robot := domain.Executor("robot")

	_, err := svc.UpdatePlan(ctx, 1, domain.PlanUpdate{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.UpdatePlan(ctx, 1, domain.PlanUpdate{Title: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.UpdateStep(ctx, 1, domain.StepUpdate{Executor: &robot})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.UpdateGoal(ctx, 1, domain.GoalUpdate{Content: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.SetGoalsStatus(ctx, []int64{1}, "finished")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.DeleteGoals(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_SetGoalsStatusPassesChanges(t *testing.T) {
	svc, repo, _ := newTaskService(t)
	cs := domain.ChangeSet{}
	cs.Add(domain.StatusChange{EntityType: domain.EntityGoal, EntityID: 5, From: "todo", To: "done", Reason: "manual"})
	cs.Add(domain.StatusChange{EntityType: domain.EntityStep, EntityID: 2, From: "todo", To: "done", Reason: "all 1 goals done"})
	repo.EXPECT().SetGoalsStatus(mock.Anything, []int64{5}, domain.StatusDone).Return(cs, nil)

	got, err := svc.SetGoalsStatus(context.Background(), []int64{5}, "DONE")

	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
}

func TestTaskService_Activate(t *testing.T) {
	svc, repo, _ := newTaskService(t)
	repo.EXPECT().SetActivePlan(mock.Anything, "ses_1", int64(4), true, "/work").Return(nil)

	err := svc.Activate(context.Background(), ActivateParams{SessionID: " ses_1 ", PlanID: 4, Takeover: true, Cwd: "/work"})
	require.NoError(t, err)

	err = svc.Activate(context.Background(), ActivateParams{PlanID: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("no active plan", func(t *testing.T) {
		svc, repo, _ := newTaskService(t)
		repo.EXPECT().GetActivePlan(mock.Anything, "ses_1").Return(nil, nil)

		_, err := svc.Next(ctx, "ses_1")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("plan finished", func(t *testing.T) {
		svc, repo, _ := newTaskService(t)
		repo.EXPECT().GetActivePlan(mock.Anything, "ses_1").Return(&domain.ActivePlan{PlanID: 4}, nil)
		repo.EXPECT().GetPlan(mock.Anything, int64(4)).Return(&domain.Plan{ID: 4}, nil)
		repo.EXPECT().NextStep(mock.Anything, int64(4)).Return(nil, nil)

		work, err := svc.Next(ctx, "ses_1")

		require.NoError(t, err)
		assert.Nil(t, work.Step)
	})

	t.Run("next step with goals", func(t *testing.T) {
		svc, repo, _ := newTaskService(t)
		repo.EXPECT().GetActivePlan(mock.Anything, "ses_1").Return(&domain.ActivePlan{PlanID: 4}, nil)
		repo.EXPECT().GetPlan(mock.Anything, int64(4)).Return(&domain.Plan{ID: 4}, nil)
		repo.EXPECT().NextStep(mock.Anything, int64(4)).Return(&domain.Step{ID: 9, PlanID: 4}, nil)
		repo.EXPECT().ListGoals(mock.Anything, int64(9)).Return([]domain.Goal{{ID: 1}, {ID: 2}}, nil)

		work, err := svc.Next(ctx, "ses_1")

		require.NoError(t, err)
		require.NotNil(t, work.Step)
		assert.Equal(t, int64(9), work.Step.ID)
		assert.Len(t, work.Goals, 2)
	})
}
