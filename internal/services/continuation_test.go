package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planpilot/internal/domain"
)

func TestComposer_Default(t *testing.T) {
	c, err := NewComposer("")
	require.NoError(t, err)

	text, err := c.Compose(ContinuationData{
		Plan: domain.Plan{ID: 3, Title: "Refactor"},
		Step: domain.Step{ID: 8, SortOrder: 1, Content: "Split package", Comment: "keep API"},
		Goals: []domain.Goal{
			{ID: 1, Content: "Move types", Status: domain.StatusDone},
			{ID: 2, Content: "Fix imports", Status: domain.StatusTodo},
		},
		Detail: "send-retry 2/3",
	})

	require.NoError(t, err)
	assert.Contains(t, text, `plan #3 "Refactor"`)
	assert.Contains(t, text, "Note: keep API")
	assert.Contains(t, text, "- [x] #1 Move types\n- [ ] #2 Fix imports")
	assert.Contains(t, text, "Triggered by: send-retry 2/3")
	assert.NotContains(t, text, "wait on this step")
}

func TestComposer_Custom(t *testing.T) {
	c, err := NewComposer("next: {{.Step.Content}}{{if .Detail}} ({{.Detail}}){{end}}")
	require.NoError(t, err)

	text, err := c.Compose(ContinuationData{Step: domain.Step{Content: "ship"}})
	require.NoError(t, err)
	assert.Equal(t, "next: ship", text)

	_, err = NewComposer("{{.Step")
	assert.Error(t, err)
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{Delays: []time.Duration{2 * time.Second, 5 * time.Second}, Enabled: true, MaxAttempts: 4}

	assert.Equal(t, 2*time.Second, p.Delay(0))
	assert.Equal(t, 2*time.Second, p.Delay(1))
	assert.Equal(t, 5*time.Second, p.Delay(2))
	assert.Equal(t, 5*time.Second, p.Delay(4), "clamped to the last delay")
	assert.False(t, p.Exhausted(4))
	assert.True(t, p.Exhausted(5))
	assert.Zero(t, RetryPolicy{}.Delay(1))
}

func TestRetryDetail(t *testing.T) {
	assert.Equal(t, "send-retry 1/3", retryDetail("", 1, 3))
	assert.Equal(t, "error name=APIError | send-retry 2/3", retryDetail("error name=APIError", 2, 3))
}
