package domain

import "time"

// Error names the host uses for user initiated cancellation
const (
	ErrorNameAbort          = "AbortError"
	ErrorNameMessageAborted = "MessageAbortedError"
)

// IsManualCancellation reports whether an error name describes a deliberate
// user abort rather than a transient failure.
func IsManualCancellation(name string) bool {
	return name == ErrorNameMessageAborted || name == ErrorNameAbort
}

// MessageRole is the author of a conversation message
type MessageRole string

const (
	RoleAssistant MessageRole = "assistant"
	RoleUser      MessageRole = "user"
)

// HostEvent is the closed set of notifications delivered by the host. Raw
// payloads are decoded into one of these variants at the adapter boundary.
type HostEvent interface {
	Session() string
	hostEvent()
}

type eventBase struct {
	SessionID string
}

func (e eventBase) Session() string { return e.SessionID }
func (eventBase) hostEvent()        {}

// IdleEvent fires when the assistant finished its turn
type IdleEvent struct {
	eventBase
}

// MessageUpdatedEvent fires whenever a message is created or updated
type MessageUpdatedEvent struct {
	eventBase
	ErrorName string
	MessageID string
	Role      MessageRole
}

// Aborted reports whether the message was cancelled by the user
func (e MessageUpdatedEvent) Aborted() bool {
	return e.Role == RoleAssistant && e.ErrorName == ErrorNameMessageAborted
}

// SessionErrorEvent reports a session-level failure
type SessionErrorEvent struct {
	eventBase
	Message    string
	Name       string
	Retryable  *bool
	StatusCode int
}

// SessionStatusEvent reports a session status transition (busy, idle, retry)
type SessionStatusEvent struct {
	eventBase
	Attempt int
	Message string
	Next    time.Time
	Type    string
}

// IsRetry reports whether the host is retrying a failed request
func (e SessionStatusEvent) IsRetry() bool {
	return e.Type == "retry"
}

// PermissionAskedEvent fires when a tool call needs user approval
type PermissionAskedEvent struct {
	eventBase
	Patterns     []string
	Permission   string
	PermissionID string
	Title        string
}

// PermissionRepliedEvent fires when a permission request was answered
type PermissionRepliedEvent struct {
	eventBase
	PermissionID string
	Reply        string
}

// Rejected reports whether the user denied the permission
func (e PermissionRepliedEvent) Rejected() bool {
	return e.Reply == "reject"
}

// QuestionItem is a single structured question asked by the assistant
type QuestionItem struct {
	Header   string
	Options  []string
	Question string
}

// QuestionAskedEvent fires when the assistant asks the user something
type QuestionAskedEvent struct {
	eventBase
	Questions []QuestionItem
	RequestID string
}

// QuestionRejectedEvent fires when the user dismissed a question
type QuestionRejectedEvent struct {
	eventBase
	RequestID string
}

// CompactingEvent fires right before the host compacts the conversation
type CompactingEvent struct {
	eventBase
}

// NewIdleEvent builds an IdleEvent
func NewIdleEvent(sessionID string) IdleEvent {
	return IdleEvent{eventBase{sessionID}}
}

// NewCompactingEvent builds a CompactingEvent
func NewCompactingEvent(sessionID string) CompactingEvent {
	return CompactingEvent{eventBase{sessionID}}
}

// NewMessageUpdatedEvent builds a MessageUpdatedEvent
func NewMessageUpdatedEvent(sessionID, messageID string, role MessageRole, errorName string) MessageUpdatedEvent {
	return MessageUpdatedEvent{eventBase: eventBase{sessionID}, MessageID: messageID, Role: role, ErrorName: errorName}
}

// NewSessionErrorEvent builds a SessionErrorEvent
func NewSessionErrorEvent(sessionID, name, message string, statusCode int, retryable *bool) SessionErrorEvent {
	return SessionErrorEvent{eventBase: eventBase{sessionID}, Name: name, Message: message, StatusCode: statusCode, Retryable: retryable}
}

// NewSessionStatusEvent builds a SessionStatusEvent
func NewSessionStatusEvent(sessionID, statusType string, attempt int, message string, next time.Time) SessionStatusEvent {
	return SessionStatusEvent{eventBase: eventBase{sessionID}, Type: statusType, Attempt: attempt, Message: message, Next: next}
}

// NewPermissionAskedEvent builds a PermissionAskedEvent
func NewPermissionAskedEvent(sessionID, permissionID, permission, title string, patterns []string) PermissionAskedEvent {
	return PermissionAskedEvent{eventBase: eventBase{sessionID}, PermissionID: permissionID, Permission: permission, Title: title, Patterns: patterns}
}

// NewPermissionRepliedEvent builds a PermissionRepliedEvent
func NewPermissionRepliedEvent(sessionID, permissionID, reply string) PermissionRepliedEvent {
	return PermissionRepliedEvent{eventBase: eventBase{sessionID}, PermissionID: permissionID, Reply: reply}
}

// NewQuestionAskedEvent builds a QuestionAskedEvent
func NewQuestionAskedEvent(sessionID, requestID string, questions []QuestionItem) QuestionAskedEvent {
	return QuestionAskedEvent{eventBase: eventBase{sessionID}, RequestID: requestID, Questions: questions}
}

// NewQuestionRejectedEvent builds a QuestionRejectedEvent
func NewQuestionRejectedEvent(sessionID, requestID string) QuestionRejectedEvent {
	return QuestionRejectedEvent{eventBase: eventBase{sessionID}, RequestID: requestID}
}
