package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"planpilot/internal/domain"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "planpilot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func createPlan(t *testing.T, repo *SQLiteRepository, steps ...domain.NewStep) *domain.CreatePlanResult {
	t.Helper()
	res, err := repo.CreatePlanWithTree(context.Background(), domain.NewPlan{
		Title:   "Ship release",
		Content: "Cut and publish v1",
		Steps:   steps,
	})
	require.NoError(t, err)
	return res
}

func stepContents(t *testing.T, repo *SQLiteRepository, planID int64) []string {
	t.Helper()
	steps, err := repo.ListSteps(context.Background(), planID)
	require.NoError(t, err)
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Content
	}
	return out
}

func assertContiguous(t *testing.T, repo *SQLiteRepository, planID int64) {
	t.Helper()
	steps, err := repo.ListSteps(context.Background(), planID)
	require.NoError(t, err)
	for i, s := range steps {
		assert.Equal(t, i+1, s.SortOrder, "step %d out of place", s.ID)
	}
}

func TestCreatePlanWithTree(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo,
		domain.NewStep{Content: "write code", Goals: []string{"tests pass", "lint clean"}},
		domain.NewStep{Content: "review", Executor: domain.ExecutorHuman},
	)

	assert.Equal(t, 2, res.StepCount)
	assert.Equal(t, 2, res.GoalCount)
	require.Len(t, res.StepIDs, 2)

	detail, err := repo.GetPlanDetail(ctx, res.PlanID)
	require.NoError(t, err)
	assert.Equal(t, "Ship release", detail.Plan.Title)
	assert.Equal(t, domain.StatusTodo, detail.Plan.Status)
	require.Len(t, detail.Steps, 2)
	assert.Equal(t, domain.ExecutorAI, detail.Steps[0].Executor)
	assert.Equal(t, domain.ExecutorHuman, detail.Steps[1].Executor)
	assert.Len(t, detail.GoalsByStep[res.StepIDs[0]], 2)
	assert.Empty(t, detail.GoalsByStep[res.StepIDs[1]])
}

func TestCreatePlanWithTree_RejectsEmptyContent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name string
		plan domain.NewPlan
	}{
		{"empty title", domain.NewPlan{Title: " ", Content: "c"}},
		{"empty content", domain.NewPlan{Title: "t", Content: ""}},
		{"empty step", domain.NewPlan{Title: "t", Content: "c", Steps: []domain.NewStep{{Content: "\t"}}}},
		{"empty goal", domain.NewPlan{Title: "t", Content: "c", Steps: []domain.NewStep{{Content: "s", Goals: []string{""}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreatePlanWithTree(ctx, tt.plan)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	plans, err := repo.ListPlans(ctx, domain.PlanOrderID, false)
	require.NoError(t, err)
	assert.Empty(t, plans, "rejected trees must not leave rows behind")
}

func TestGetMissingEntities(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetPlan(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetStep(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetGoal(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddSteps_InsertAtPosition(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo,
		domain.NewStep{Content: "old1"},
		domain.NewStep{Content: "old2"},
		domain.NewStep{Content: "old3"},
	)

	pos := 2
	ids, _, err := repo.AddSteps(ctx, res.PlanID, []string{"a", "b"}, domain.ExecutorAI, &pos)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	want := []string{"old1", "a", "b", "old2", "old3"}
	if diff := cmp.Diff(want, stepContents(t, repo, res.PlanID)); diff != "" {
		t.Errorf("step order mismatch (-want +got):\n%s", diff)
	}
	assertContiguous(t, repo, res.PlanID)
}

func TestAddSteps_AppendsByDefault(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "first"})

	_, _, err := repo.AddSteps(ctx, res.PlanID, []string{"second"}, "", nil)
	require.NoError(t, err)
	far := 99
	_, _, err = repo.AddSteps(ctx, res.PlanID, []string{"third"}, domain.ExecutorHuman, &far)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third"}, stepContents(t, repo, res.PlanID))
	assertContiguous(t, repo, res.PlanID)
}

func TestAddSteps_NormalizesGaps(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "x"}, domain.NewStep{Content: "y"})

	// Simulate a gap left by an older version
	require.NoError(t, repo.db.Model(&StepModel{}).Where("id = ?", res.StepIDs[1]).
		Update("sort_order", 7).Error)

	pos := 2
	_, _, err := repo.AddSteps(ctx, res.PlanID, []string{"mid"}, domain.ExecutorAI, &pos)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "mid", "y"}, stepContents(t, repo, res.PlanID))
	assertContiguous(t, repo, res.PlanID)
}

func TestAddSteps_ReopensDonePlan(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "only"})
	_, err := repo.SetStepDone(ctx, res.StepIDs[0], false)
	require.NoError(t, err)

	plan, err := repo.GetPlan(ctx, res.PlanID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDone, plan.Status)

	_, changes, err := repo.AddSteps(ctx, res.PlanID, []string{"more"}, domain.ExecutorAI, nil)
	require.NoError(t, err)

	planChanges := changes.For(domain.EntityPlan, res.PlanID)
	require.Len(t, planChanges, 1)
	assert.Equal(t, "todo", planChanges[0].To)
}

func TestMoveStep(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo,
		domain.NewStep{Content: "old1"},
		domain.NewStep{Content: "old2"},
		domain.NewStep{Content: "old3"},
	)

	require.NoError(t, repo.MoveStep(ctx, res.StepIDs[0], 3))

	want := []string{"old2", "old3", "old1"}
	if diff := cmp.Diff(want, stepContents(t, repo, res.PlanID)); diff != "" {
		t.Errorf("step order mismatch (-want +got):\n%s", diff)
	}
	assertContiguous(t, repo, res.PlanID)

	// Out of range targets clamp
	require.NoError(t, repo.MoveStep(ctx, res.StepIDs[0], -4))
	assert.Equal(t, []string{"old1", "old2", "old3"}, stepContents(t, repo, res.PlanID))
	require.NoError(t, repo.MoveStep(ctx, res.StepIDs[1], 50))
	assert.Equal(t, []string{"old1", "old3", "old2"}, stepContents(t, repo, res.PlanID))

	err := repo.MoveStep(ctx, 999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSteps_NamesEveryMissingID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "a"}, domain.NewStep{Content: "b"})

	_, err := repo.DeleteSteps(ctx, []int64{res.StepIDs[0], 404, 405})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "404, 405")

	// Nothing was removed
	assert.Equal(t, []string{"a", "b"}, stepContents(t, repo, res.PlanID))
}

func TestDeleteSteps_RenumbersAndCascades(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo,
		domain.NewStep{Content: "a", Goals: []string{"g1"}},
		domain.NewStep{Content: "b"},
		domain.NewStep{Content: "c"},
	)

	_, err := repo.DeleteSteps(ctx, []int64{res.StepIDs[0]})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c"}, stepContents(t, repo, res.PlanID))
	assertContiguous(t, repo, res.PlanID)

	_, err = repo.GetGoal(ctx, res.GoalIDs[0])
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSteps_CompletesPlanWhenOnlyDoneStepsRemain(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "a"}, domain.NewStep{Content: "b"})
	require.NoError(t, repo.SetActivePlan(ctx, "ses_1", res.PlanID, false, ""))
	_, err := repo.SetStepDone(ctx, res.StepIDs[0], false)
	require.NoError(t, err)

	changes, err := repo.DeleteSteps(ctx, []int64{res.StepIDs[1]})
	require.NoError(t, err)
	assert.True(t, changes.ActivePlanCleared())

	plan, err := repo.GetPlan(ctx, res.PlanID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, plan.Status)
}

func TestSortOrderStaysContiguous(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "s1"}, domain.NewStep{Content: "s2"})
	one, three := 1, 3

	ids, _, err := repo.AddSteps(ctx, res.PlanID, []string{"s3", "s4", "s5"}, domain.ExecutorAI, &one)
	require.NoError(t, err)
	assertContiguous(t, repo, res.PlanID)

	require.NoError(t, repo.MoveStep(ctx, ids[0], 5))
	assertContiguous(t, repo, res.PlanID)

	_, err = repo.DeleteSteps(ctx, []int64{ids[1], res.StepIDs[0]})
	require.NoError(t, err)
	assertContiguous(t, repo, res.PlanID)

	_, _, err = repo.AddSteps(ctx, res.PlanID, []string{"s6"}, domain.ExecutorAI, &three)
	require.NoError(t, err)
	assertContiguous(t, repo, res.PlanID)

	require.NoError(t, repo.MoveStep(ctx, res.StepIDs[1], 1))
	assertContiguous(t, repo, res.PlanID)
}

func TestRollup_GoalsDriveStepAndPlan(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo,
		domain.NewStep{Content: "a", Goals: []string{"g1", "g2"}},
		domain.NewStep{Content: "b", Goals: []string{"g3"}},
	)
	require.NoError(t, repo.SetActivePlan(ctx, "ses_1", res.PlanID, false, "/work"))

	changes, err := repo.SetGoalsStatus(ctx, []int64{res.GoalIDs[0]}, domain.StatusDone)
	require.NoError(t, err)
	assert.Len(t, changes.For(domain.EntityGoal, res.GoalIDs[0]), 1)
	assert.Empty(t, changes.For(domain.EntityStep, res.StepIDs[0]), "one of two goals done keeps the step pending")

	changes, err = repo.SetGoalsStatus(ctx, []int64{res.GoalIDs[1]}, domain.StatusDone)
	require.NoError(t, err)
	stepChanges := changes.For(domain.EntityStep, res.StepIDs[0])
	require.Len(t, stepChanges, 1)
	assert.Equal(t, "all 2 goals done", stepChanges[0].Reason)

	changes, err = repo.SetGoalsStatus(ctx, []int64{res.GoalIDs[2]}, domain.StatusDone)
	require.NoError(t, err)
	planChanges := changes.For(domain.EntityPlan, res.PlanID)
	require.Len(t, planChanges, 1)
	assert.Equal(t, "done", planChanges[0].To)
	assert.True(t, changes.ActivePlanCleared())

	active, err := repo.GetActivePlan(ctx, "ses_1")
	require.NoError(t, err)
	assert.Nil(t, active, "a done plan must not stay active")

	// Reopening a goal reverts the step and the plan
	changes, err = repo.SetGoalsStatus(ctx, []int64{res.GoalIDs[2]}, domain.StatusTodo)
	require.NoError(t, err)
	assert.Len(t, changes.For(domain.EntityStep, res.StepIDs[1]), 1)
	assert.Len(t, changes.For(domain.EntityPlan, res.PlanID), 1)

	plan, err := repo.GetPlan(ctx, res.PlanID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, plan.Status)

	var persisted int64
	require.NoError(t, repo.db.Model(&StatusChangeModel{}).Count(&persisted).Error)
	assert.Positive(t, persisted)
}

func TestRollup_Invariant(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo,
		domain.NewStep{Content: "a", Goals: []string{"g1", "g2"}},
		domain.NewStep{Content: "b", Goals: []string{"g3"}},
		domain.NewStep{Content: "c"},
	)

	check := func() {
		detail, err := repo.GetPlanDetail(ctx, res.PlanID)
		require.NoError(t, err)
		allSteps := len(detail.Steps) > 0
		for _, s := range detail.Steps {
			goals := detail.GoalsByStep[s.ID]
			if len(goals) > 0 {
				allGoals := true
				for _, g := range goals {
					allGoals = allGoals && g.Status == domain.StatusDone
				}
				assert.Equal(t, allGoals, s.Status == domain.StatusDone, "step %d", s.ID)
			}
			allSteps = allSteps && s.Status == domain.StatusDone
		}
		if len(detail.Steps) > 0 {
			assert.Equal(t, allSteps, detail.Plan.Status == domain.StatusDone)
		}
	}

	_, err := repo.SetGoalsStatus(ctx, res.GoalIDs, domain.StatusDone)
	require.NoError(t, err)
	check()

	_, err = repo.SetStepDone(ctx, res.StepIDs[2], false)
	require.NoError(t, err)
	check()

	_, _, err = repo.AddGoals(ctx, res.StepIDs[0], []string{"g4"})
	require.NoError(t, err)
	check()

	_, err = repo.DeleteGoals(ctx, []int64{res.GoalIDs[1]})
	require.NoError(t, err)
	check()

	_, err = repo.SetStepDone(ctx, res.StepIDs[0], true)
	require.NoError(t, err)
	check()

	plan, err := repo.GetPlan(ctx, res.PlanID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, plan.Status)
}

func TestUpdateStep_RejectsDirectDoneWithPendingGoals(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "a", Goals: []string{"g1"}})

	done := domain.StatusDone
	_, err := repo.UpdateStep(ctx, res.StepIDs[0], domain.StepUpdate{Status: &done})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "goal")

	_, err = repo.SetStepDone(ctx, res.StepIDs[0], false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	changes, err := repo.SetStepDone(ctx, res.StepIDs[0], true)
	require.NoError(t, err)
	assert.Len(t, changes.For(domain.EntityGoal, res.GoalIDs[0]), 1)
	assert.Len(t, changes.For(domain.EntityStep, res.StepIDs[0]), 1)
}

func TestUpdatePlan_StatusRules(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "a"}, domain.NewStep{Content: "b"})

	done, todo := domain.StatusDone, domain.StatusTodo
	_, err := repo.UpdatePlan(ctx, res.PlanID, domain.PlanUpdate{Status: &done})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "position 1")

	for _, id := range res.StepIDs {
		_, err = repo.SetStepDone(ctx, id, false)
		require.NoError(t, err)
	}
	_, err = repo.UpdatePlan(ctx, res.PlanID, domain.PlanUpdate{Status: &todo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// A plan without steps may be completed by hand
	empty, err := repo.CreatePlanWithTree(ctx, domain.NewPlan{Title: "notes", Content: "scratch"})
	require.NoError(t, err)
	changes, err := repo.UpdatePlan(ctx, empty.PlanID, domain.PlanUpdate{Status: &done})
	require.NoError(t, err)
	assert.Len(t, changes.For(domain.EntityPlan, empty.PlanID), 1)

	title := "  renamed "
	_, err = repo.UpdatePlan(ctx, empty.PlanID, domain.PlanUpdate{Title: &title})
	require.NoError(t, err)
	plan, err := repo.GetPlan(ctx, empty.PlanID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", plan.Title)
}

func TestSetActivePlan_Takeover(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "a"})

	require.NoError(t, repo.SetActivePlan(ctx, "ses_a", res.PlanID, false, "/repo"))

	err := repo.SetActivePlan(ctx, "ses_b", res.PlanID, false, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "ses_a")

	require.NoError(t, repo.SetActivePlan(ctx, "ses_b", res.PlanID, true, ""))

	prior, err := repo.GetActivePlan(ctx, "ses_a")
	require.NoError(t, err)
	assert.Nil(t, prior)

	current, err := repo.GetActivePlan(ctx, "ses_b")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, res.PlanID, current.PlanID)

	plan, err := repo.GetPlan(ctx, res.PlanID)
	require.NoError(t, err)
	assert.Equal(t, "ses_b", plan.LastSessionID)
	assert.Equal(t, "/repo", plan.LastCwd, "empty cwd keeps the previous value")
}

func TestSetActivePlan_ReplacesSessionPointer(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := createPlan(t, repo, domain.NewStep{Content: "a"})
	second := createPlan(t, repo, domain.NewStep{Content: "b"})

	require.NoError(t, repo.SetActivePlan(ctx, "ses_a", first.PlanID, false, ""))
	require.NoError(t, repo.SetActivePlan(ctx, "ses_a", second.PlanID, false, ""))

	active, err := repo.GetActivePlan(ctx, "ses_a")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.PlanID, active.PlanID)

	// The first plan is free again
	require.NoError(t, repo.SetActivePlan(ctx, "ses_b", first.PlanID, false, ""))

	removed, err := repo.ClearActivePlan(ctx, "ses_b")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.ClearActivePlan(ctx, "ses_b")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeletePlan_Cascades(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "a", Goals: []string{"g"}})
	require.NoError(t, repo.SetActivePlan(ctx, "ses_a", res.PlanID, false, ""))

	changes, err := repo.DeletePlan(ctx, res.PlanID)
	require.NoError(t, err)
	assert.True(t, changes.ActivePlanCleared())

	_, err = repo.GetStep(ctx, res.StepIDs[0])
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetGoal(ctx, res.GoalIDs[0])
	assert.ErrorIs(t, err, domain.ErrNotFound)
	active, err := repo.GetActivePlan(ctx, "ses_a")
	require.NoError(t, err)
	assert.Nil(t, active)

	_, err = repo.DeletePlan(ctx, res.PlanID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNextStep(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "a"}, domain.NewStep{Content: "b"})

	next, err := repo.NextStep(ctx, res.PlanID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, res.StepIDs[0], next.ID)

	_, err = repo.SetStepDone(ctx, res.StepIDs[0], false)
	require.NoError(t, err)
	next, err = repo.NextStep(ctx, res.PlanID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, res.StepIDs[1], next.ID)

	_, err = repo.SetStepDone(ctx, res.StepIDs[1], false)
	require.NoError(t, err)
	next, err = repo.NextStep(ctx, res.PlanID)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestStepWait(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res := createPlan(t, repo, domain.NewStep{Content: "a", Goals: []string{"g"}})
	until := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SetStepWait(ctx, res.StepIDs[0], until, "waiting for CI"))

	step, err := repo.GetStep(ctx, res.StepIDs[0])
	require.NoError(t, err)
	wait := step.Wait()
	require.NotNil(t, wait)
	assert.True(t, until.Equal(wait.Until))
	assert.Equal(t, "waiting for CI", wait.Reason)
	assert.Empty(t, step.Comment, "the wait marker lives outside the comment")

	require.NoError(t, repo.ClearStepWait(ctx, res.StepIDs[0]))
	step, err = repo.GetStep(ctx, res.StepIDs[0])
	require.NoError(t, err)
	assert.Nil(t, step.Wait())

	err = repo.SetStepWait(ctx, 999, until, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPlans_Order(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, title := range []string{"beta", "alpha", "gamma"} {
		_, err := repo.CreatePlanWithTree(ctx, domain.NewPlan{Title: title, Content: "c"})
		require.NoError(t, err)
	}

	plans, err := repo.ListPlans(ctx, domain.PlanOrderTitle, false)
	require.NoError(t, err)
	titles := make([]string, len(plans))
	for i, p := range plans {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, titles)

	plans, err = repo.ListPlans(ctx, domain.PlanOrderID, true)
	require.NoError(t, err)
	assert.Equal(t, "gamma", plans[0].Title)

	_, err = repo.ListPlans(ctx, domain.PlanOrder("priority"), false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMigration_AddsMissingColumns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	// Schema as shipped before sessions, executors and waits existed
	old, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, old.Exec(`CREATE TABLE plans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'todo',
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)
	require.NoError(t, old.Exec(`CREATE TABLE steps (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		plan_id INTEGER NOT NULL,
		content TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'todo',
		sort_order INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)
	require.NoError(t, old.Exec(`INSERT INTO plans (title, content) VALUES ('legacy', 'from v0')`).Error)
	require.NoError(t, old.Exec(`INSERT INTO steps (plan_id, content, sort_order) VALUES (1, 'legacy step', 1)`).Error)
	sqlDB, err := old.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	migrator := repo.db.Migrator()
	for _, m := range columnMigrations {
		assert.True(t, migrator.HasColumn(m.model, m.column), "missing column %s", m.column)
	}

	step, err := repo.NextStep(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, step)
	assert.Equal(t, domain.ExecutorAI, step.Executor)
	assert.Nil(t, step.Wait())

	// Reopening is a no-op
	require.NoError(t, repo.Close())
	again, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}
