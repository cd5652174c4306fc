package opencode

import (
	"time"

	"planpilot/internal/domain"
)

// Wire shapes of the host's HTTP API. Only the fields planpilot reads are
// declared; everything else is ignored by encoding/json.

type wireTime struct {
	Completed int64 `json:"completed,omitempty"`
	Created   int64 `json:"created"`
}

type wireErrorData struct {
	IsRetryable *bool  `json:"isRetryable,omitempty"`
	Message     string `json:"message"`
	StatusCode  int    `json:"statusCode,omitempty"`
}

type wireError struct {
	Data wireErrorData `json:"data"`
	Name string        `json:"name"`
}

type wireModel struct {
	ModelID    string `json:"modelID"`
	ProviderID string `json:"providerID"`
}

type wireMessage struct {
	Agent      string     `json:"agent,omitempty"`
	Error      *wireError `json:"error,omitempty"`
	Finish     string     `json:"finish,omitempty"`
	ID         string     `json:"id"`
	Mode       string     `json:"mode,omitempty"`
	Model      *wireModel `json:"model,omitempty"`
	ModelID    string     `json:"modelID,omitempty"`
	ProviderID string     `json:"providerID,omitempty"`
	Role       string     `json:"role"`
	SessionID  string     `json:"sessionID"`
	Time       wireTime   `json:"time"`
	Variant    string     `json:"variant,omitempty"`
}

// wireMessageWithParts is one element of GET /session/{id}/message
type wireMessageWithParts struct {
	Info wireMessage `json:"info"`
}

type wireTextPart struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type wirePromptRequest struct {
	Agent   string         `json:"agent,omitempty"`
	Model   *wireModel     `json:"model,omitempty"`
	Parts   []wireTextPart `json:"parts"`
	Variant string         `json:"variant,omitempty"`
}

type wireLogRequest struct {
	Extra   map[string]any `json:"extra,omitempty"`
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Service string         `json:"service"`
}

func (e *wireError) name() string {
	if e == nil {
		return ""
	}
	return e.Name
}

func millis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// toDomain keeps the fields the orchestrator reads. Assistant messages
// carry the model flat and the agent as "mode"; user messages nest both.
func (m wireMessage) toDomain() domain.HostMessage {
	msg := domain.HostMessage{
		Agent:     m.Agent,
		Completed: millis(m.Time.Completed),
		Created:   millis(m.Time.Created),
		ErrorName: m.Error.name(),
		Finish:    m.Finish,
		ID:        m.ID,
		Role:      domain.MessageRole(m.Role),
		Variant:   m.Variant,
	}
	if msg.Agent == "" {
		msg.Agent = m.Mode
	}
	if m.Model != nil {
		msg.Model = domain.ModelRef{ModelID: m.Model.ModelID, ProviderID: m.Model.ProviderID}
	} else {
		msg.Model = domain.ModelRef{ModelID: m.ModelID, ProviderID: m.ProviderID}
	}
	return msg
}
