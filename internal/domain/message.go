package domain

import "time"

// Finish reasons that leave the assistant mid-turn
const (
	FinishToolCalls = "tool-calls"
	FinishUnknown   = "unknown"
)

// ModelRef identifies a provider model on the host
type ModelRef struct {
	ModelID    string
	ProviderID string
}

// IsZero reports whether no model is set
func (m ModelRef) IsZero() bool {
	return m.ModelID == "" && m.ProviderID == ""
}

// HostMessage is the subset of a conversation message the orchestrator reads
type HostMessage struct {
	Agent     string
	Completed time.Time
	Created   time.Time
	ErrorName string
	Finish    string
	ID        string
	Model     ModelRef
	Role      MessageRole
	Variant   string
}

// Aborted reports whether the message ended in a user abort
func (m HostMessage) Aborted() bool {
	return IsManualCancellation(m.ErrorName)
}

// Terminal reports whether an assistant message finished its turn: it
// completed (or failed) and did not stop to call tools.
func (m HostMessage) Terminal() bool {
	if m.Finish == FinishToolCalls || m.Finish == FinishUnknown {
		return false
	}
	return !m.Completed.IsZero() || m.ErrorName != ""
}

// ConversationContext is the latest user/assistant pair of a session
type ConversationContext struct {
	Assistant *HostMessage
	User      *HostMessage
}

// ResolveConversation picks the most recent user and assistant messages
// from a history slice (any order).
func ResolveConversation(messages []HostMessage) ConversationContext {
	var ctx ConversationContext
	for i := range messages {
		m := messages[i]
		switch m.Role {
		case RoleUser:
			if ctx.User == nil || !m.Created.Before(ctx.User.Created) {
				ctx.User = &m
			}
		case RoleAssistant:
			if ctx.Assistant == nil || !m.Created.Before(ctx.Assistant.Created) {
				ctx.Assistant = &m
			}
		}
	}
	return ctx
}

// Ready reports whether the assistant is between turns. A conversation
// whose assistant never replied counts as ready.
func (c ConversationContext) Ready() bool {
	if c.Assistant == nil {
		return true
	}
	return c.Assistant.Terminal()
}

// Aborted reports whether the assistant's last turn was cancelled by the user
func (c ConversationContext) Aborted() bool {
	return c.Assistant != nil && c.Assistant.Aborted()
}

// Agent returns the agent to continue with, preferring the user message
func (c ConversationContext) Agent() string {
	if c.User != nil && c.User.Agent != "" {
		return c.User.Agent
	}
	if c.Assistant != nil {
		return c.Assistant.Agent
	}
	return ""
}

// Model returns the model to continue with, preferring the user message
func (c ConversationContext) Model() ModelRef {
	if c.User != nil && !c.User.Model.IsZero() {
		return c.User.Model
	}
	if c.Assistant != nil {
		return c.Assistant.Model
	}
	return ModelRef{}
}

// Variant returns the model variant to continue with
func (c ConversationContext) Variant() string {
	if c.User != nil && c.User.Variant != "" {
		return c.User.Variant
	}
	if c.Assistant != nil {
		return c.Assistant.Variant
	}
	return ""
}

// ContinuationRequest is what the orchestrator submits to the host
type ContinuationRequest struct {
	Agent     string
	Model     ModelRef
	SessionID string
	Text      string
	Variant   string
}
