package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConversation_PicksLatestPerRole(t *testing.T) {
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	messages := []HostMessage{
		{ID: "u1", Role: RoleUser, Created: base, Agent: "build"},
		{ID: "a1", Role: RoleAssistant, Created: base.Add(time.Second), Completed: base.Add(2 * time.Second), Finish: "stop"},
		{ID: "u2", Role: RoleUser, Created: base.Add(3 * time.Second), Agent: "plan", Model: ModelRef{ProviderID: "anthropic", ModelID: "sonnet"}},
		{ID: "a2", Role: RoleAssistant, Created: base.Add(4 * time.Second), Finish: FinishToolCalls},
	}

	ctx := ResolveConversation(messages)

	require.NotNil(t, ctx.User)
	require.NotNil(t, ctx.Assistant)
	assert.Equal(t, "u2", ctx.User.ID)
	assert.Equal(t, "a2", ctx.Assistant.ID)
	assert.False(t, ctx.Ready(), "tool-calls finish is mid-turn")
	assert.Equal(t, "plan", ctx.Agent())
	assert.Equal(t, ModelRef{ProviderID: "anthropic", ModelID: "sonnet"}, ctx.Model())
}

func TestConversationContext_Ready(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name      string
		assistant *HostMessage
		ready     bool
		aborted   bool
	}{
		{"no assistant", nil, true, false},
		{"completed stop", &HostMessage{Role: RoleAssistant, Completed: now, Finish: "stop"}, true, false},
		{"still streaming", &HostMessage{Role: RoleAssistant}, false, false},
		{"unknown finish", &HostMessage{Role: RoleAssistant, Completed: now, Finish: FinishUnknown}, false, false},
		{"errored", &HostMessage{Role: RoleAssistant, ErrorName: "APIError"}, true, false},
		{"aborted", &HostMessage{Role: RoleAssistant, ErrorName: ErrorNameMessageAborted}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ConversationContext{User: &HostMessage{Role: RoleUser}, Assistant: tt.assistant}
			assert.Equal(t, tt.ready, ctx.Ready())
			assert.Equal(t, tt.aborted, ctx.Aborted())
		})
	}
}

func TestConversationContext_FallsBackToAssistant(t *testing.T) {
	ctx := ConversationContext{
		User:      &HostMessage{Role: RoleUser},
		Assistant: &HostMessage{Role: RoleAssistant, Agent: "build", Variant: "high", Model: ModelRef{ProviderID: "openai", ModelID: "gpt"}},
	}

	assert.Equal(t, "build", ctx.Agent())
	assert.Equal(t, "high", ctx.Variant())
	assert.Equal(t, "gpt", ctx.Model().ModelID)
}

func TestHostEventVariants(t *testing.T) {
	var ev HostEvent = NewMessageUpdatedEvent("s1", "m1", RoleAssistant, ErrorNameMessageAborted)
	assert.Equal(t, "s1", ev.Session())
	assert.True(t, ev.(MessageUpdatedEvent).Aborted())

	assert.False(t, NewMessageUpdatedEvent("s1", "m2", RoleUser, ErrorNameMessageAborted).Aborted())
	assert.True(t, NewPermissionRepliedEvent("s1", "p1", "reject").Rejected())
	assert.True(t, NewSessionStatusEvent("s1", "retry", 2, "overloaded", time.Time{}).IsRetry())
	assert.True(t, IsManualCancellation(ErrorNameAbort))
	assert.False(t, IsManualCancellation("APIError"))
}
