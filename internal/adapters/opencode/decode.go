package opencode

import (
	"encoding/json"
	"fmt"

	"planpilot/internal/domain"
)

type envelope struct {
	Properties json.RawMessage `json:"properties"`
	Type       string          `json:"type"`
}

type sessionProps struct {
	SessionID string `json:"sessionID"`
}

type messageUpdatedProps struct {
	Info wireMessage `json:"info"`
}

type sessionErrorProps struct {
	Error     *wireError `json:"error"`
	SessionID string     `json:"sessionID"`
}

type sessionStatusProps struct {
	SessionID string `json:"sessionID"`
	Status    struct {
		Attempt int    `json:"attempt"`
		Message string `json:"message"`
		Next    int64  `json:"next"`
		Type    string `json:"type"`
	} `json:"status"`
}

type permissionAskedProps struct {
	ID         string   `json:"id"`
	Patterns   []string `json:"patterns"`
	Permission string   `json:"permission"`
	SessionID  string   `json:"sessionID"`
	Title      string   `json:"title"`
	Type       string   `json:"type"`
}

type permissionRepliedProps struct {
	PermissionID string `json:"permissionID"`
	Reply        string `json:"reply"`
	RequestID    string `json:"requestID"`
	Response     string `json:"response"`
	SessionID    string `json:"sessionID"`
}

type questionOption struct {
	Label string `json:"label"`
}

type questionAskedProps struct {
	ID        string `json:"id"`
	Questions []struct {
		Header   string           `json:"header"`
		Options  []questionOption `json:"options"`
		Question string           `json:"question"`
	} `json:"questions"`
	SessionID string `json:"sessionID"`
}

type questionRejectedProps struct {
	RequestID string `json:"requestID"`
	SessionID string `json:"sessionID"`
}

// DecodeEvent turns one event payload into a host event. Unknown event
// types return nil without error.
func DecodeEvent(data []byte) (domain.HostEvent, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode event envelope: %w", err)
	}

	switch env.Type {
	case "session.idle":
		var p sessionProps
		if err := unmarshalProps(env, &p); err != nil {
			return nil, err
		}
		return domain.NewIdleEvent(p.SessionID), nil

	case "session.compacting":
		var p sessionProps
		if err := unmarshalProps(env, &p); err != nil {
			return nil, err
		}
		return domain.NewCompactingEvent(p.SessionID), nil

	case "message.updated":
		var p messageUpdatedProps
		if err := unmarshalProps(env, &p); err != nil {
			return nil, err
		}
		return domain.NewMessageUpdatedEvent(p.Info.SessionID, p.Info.ID,
			domain.MessageRole(p.Info.Role), p.Info.Error.name()), nil

	case "session.error":
		var p sessionErrorProps
		if err := unmarshalProps(env, &p); err != nil {
			return nil, err
		}
		if p.Error == nil {
			return domain.NewSessionErrorEvent(p.SessionID, "", "", 0, nil), nil
		}
		return domain.NewSessionErrorEvent(p.SessionID, p.Error.Name, p.Error.Data.Message,
			p.Error.Data.StatusCode, p.Error.Data.IsRetryable), nil

	case "session.status":
		var p sessionStatusProps
		if err := unmarshalProps(env, &p); err != nil {
			return nil, err
		}
		return domain.NewSessionStatusEvent(p.SessionID, p.Status.Type, p.Status.Attempt,
			p.Status.Message, millis(p.Status.Next)), nil

	case "permission.asked", "permission.updated":
		var p permissionAskedProps
		if err := unmarshalProps(env, &p); err != nil {
			return nil, err
		}
		permission := p.Permission
		if permission == "" {
			permission = p.Type
		}
		return domain.NewPermissionAskedEvent(p.SessionID, p.ID, permission, p.Title, p.Patterns), nil

	case "permission.replied":
		var p permissionRepliedProps
		if err := unmarshalProps(env, &p); err != nil {
			return nil, err
		}
		id := p.PermissionID
		if id == "" {
			id = p.RequestID
		}
		reply := p.Reply
		if reply == "" {
			reply = p.Response
		}
		return domain.NewPermissionRepliedEvent(p.SessionID, id, reply), nil

	case "question.asked":
		var p questionAskedProps
		if err := unmarshalProps(env, &p); err != nil {
			return nil, err
		}
		items := make([]domain.QuestionItem, 0, len(p.Questions))
		for _, q := range p.Questions {
			item := domain.QuestionItem{Header: q.Header, Question: q.Question}
			for _, o := range q.Options {
				item.Options = append(item.Options, o.Label)
			}
			items = append(items, item)
		}
		return domain.NewQuestionAskedEvent(p.SessionID, p.ID, items), nil

	case "question.rejected":
		var p questionRejectedProps
		if err := unmarshalProps(env, &p); err != nil {
			return nil, err
		}
		return domain.NewQuestionRejectedEvent(p.SessionID, p.RequestID), nil
	}
	return nil, nil
}

func unmarshalProps(env envelope, v any) error {
	if len(env.Properties) == 0 {
		return fmt.Errorf("event %s has no properties", env.Type)
	}
	if err := json.Unmarshal(env.Properties, v); err != nil {
		return fmt.Errorf("failed to decode %s event: %w", env.Type, err)
	}
	return nil
}
