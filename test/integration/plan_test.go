package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planpilot/test/integration/harness"
)

func TestPlanList(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "list empty returns success",
			args:         []string{"plan", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Total: 0 plans")
			},
		},
		{
			name: "list sorted by title",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "plan", "add", "Refactor storage"))
				harness.AssertSuccess(t, harness.RunCommand(t, env, "plan", "add", "Add search"))
			},
			args:         []string{"plan", "list", "--order", "title", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var plans []map[string]any
				harness.AssertValidJSON(t, result, &plans)
				require.Len(t, plans, 2)
				assert.Equal(t, "Add search", plans[0]["title"])
				assert.Equal(t, "Refactor storage", plans[1]["title"])
			},
		},
		{
			name:         "invalid order is rejected",
			args:         []string{"plan", "list", "--order", "priority"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)
			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}
			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestPlanLifecycle(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	var created struct {
		PlanID  float64   `json:"plan_id"`
		StepIDs []float64 `json:"step_ids"`
	}
	result := harness.RunCommand(t, env, "plan", "add", "Ship v1",
		"--step", "Write changelog", "--step", "Tag release", "--activate", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertValidJSON(t, result, &created)
	require.Len(t, created.StepIDs, 2)

	t.Run("next points at the first step", func(t *testing.T) {
		result := harness.RunCommand(t, env, "next")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Ship v1")
		harness.AssertStdoutContains(t, result, "Write changelog")
	})

	t.Run("goals roll up into the step", func(t *testing.T) {
		result := harness.RunCommand(t, env, "goal", "add", "1", "Draft", "Review")
		harness.AssertSuccess(t, result)

		result = harness.RunCommand(t, env, "goal", "set", "done", "1", "2")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "step #1")

		result = harness.RunCommand(t, env, "next")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Tag release")
	})

	t.Run("done with pending goals is rejected", func(t *testing.T) {
		harness.AssertSuccess(t, harness.RunCommand(t, env, "goal", "add", "2", "Push tag"))

		result := harness.RunCommand(t, env, "step", "done", "2")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "Error:")
	})

	t.Run("completing the plan clears the active plan", func(t *testing.T) {
		result := harness.RunCommand(t, env, "step", "done", "2", "--all-goals")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "plan #1")

		result = harness.RunCommand(t, env, "active", "show")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "has no active plan")
	})

	t.Run("plan show renders the tree", func(t *testing.T) {
		result := harness.RunCommand(t, env, "plan", "show", "1", "--format", "json")
		harness.AssertSuccess(t, result)
		harness.AssertJSONContains(t, result, "status", "done")
	})
}

func TestStepOrdering(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "plan", "add", "Order", "--step", "a", "--step", "b", "--step", "c"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "step", "add", "1", "first", "--at", "1"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "step", "move", "1", "99"))

	result := harness.RunCommand(t, env, "step", "list", "1", "--format", "json")
	harness.AssertSuccess(t, result)

	var steps []struct {
		Content  string `json:"content"`
		Position int    `json:"position"`
	}
	harness.AssertValidJSON(t, result, &steps)
	require.Len(t, steps, 4)

	got := make([]string, len(steps))
	for i, s := range steps {
		got[i] = s.Content
		assert.Equal(t, i+1, s.Position)
	}
	assert.Equal(t, []string{"first", "b", "c", "a"}, got)
}
