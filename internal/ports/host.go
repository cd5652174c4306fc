package ports

import (
	"context"

	"planpilot/internal/domain"
)

// LogLevel is the severity passed to the host log
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogError LogLevel = "error"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
)

// Host is the RPC surface of the assistant host
type Host interface {
	// Log writes to the host's log. Best effort: callers ignore the error.
	Log(ctx context.Context, level LogLevel, message string, extra map[string]any) error

	// RecentMessages returns up to limit of the session's latest messages
	RecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.HostMessage, error)

	// SubmitContinuation asks the host to start a new turn. It returns once
	// the host accepted or rejected the request, not when the turn ends.
	SubmitContinuation(ctx context.Context, req domain.ContinuationRequest) error
}

// HostError is returned by Host implementations when the host rejected a
// request with a named error.
type HostError struct {
	Message    string
	Name       string
	StatusCode int
}

func (e *HostError) Error() string {
	if e.Name == "" {
		return e.Message
	}
	return e.Name + ": " + e.Message
}
