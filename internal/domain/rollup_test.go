package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		total, done int
		expected    Status
	}{
		{0, 0, StatusTodo},
		{3, 0, StatusTodo},
		{3, 2, StatusTodo},
		{3, 3, StatusDone},
		{1, 1, StatusDone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DeriveStatus(tt.total, tt.done), "total=%d done=%d", tt.total, tt.done)
	}
}

func TestRollupReason(t *testing.T) {
	assert.Equal(t, "all 2 goals done", RollupReason(EntityGoal, 2, 2))
	assert.Equal(t, "1/3 steps done", RollupReason(EntityStep, 3, 1))
	assert.Equal(t, "no goals remain", RollupReason(EntityGoal, 0, 0))
}

func TestChangeSet(t *testing.T) {
	var cs ChangeSet
	cs.Add(StatusChange{EntityType: EntityStep, EntityID: 4, From: "todo", To: "done"})
	cs.Merge(ChangeSet{Changes: []StatusChange{
		{EntityType: EntityPlan, EntityID: 1, From: "todo", To: "done"},
		{EntityType: EntityActivePlan, EntityID: 1, From: "s1", To: ""},
	}})

	assert.Equal(t, 3, cs.Len())
	assert.Len(t, cs.For(EntityPlan, 1), 1)
	assert.Empty(t, cs.For(EntityGoal, 4))
	assert.True(t, cs.ActivePlanCleared())
}

func TestParseHelpers(t *testing.T) {
	status, err := ParseStatus(" DONE ")
	assert.NoError(t, err)
	assert.Equal(t, StatusDone, status)

	_, err = ParseStatus("finished")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	executor, err := ParseExecutor("")
	assert.NoError(t, err)
	assert.Equal(t, ExecutorAI, executor)

	_, err = ParseExecutor("robot")
	assert.ErrorIs(t, err, ErrInvalidInput)

	order, err := ParsePlanOrder("Updated")
	assert.NoError(t, err)
	assert.Equal(t, PlanOrderUpdated, order)

	_, err = ParsePlanOrder("priority")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestErrorClassification(t *testing.T) {
	err := MissingIDsError("step", []int64{4, 9})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "4, 9")

	wrapped := DBError("insert plan", errors.New("disk full"))
	assert.ErrorIs(t, wrapped, ErrDB)
	assert.Contains(t, wrapped.Error(), "disk full")

	passthrough := DBError("update step", NotFoundf("step 3 not found"))
	assert.ErrorIs(t, passthrough, ErrNotFound)
	assert.NotErrorIs(t, passthrough, ErrDB)

	assert.NoError(t, DBError("noop", nil))
}
