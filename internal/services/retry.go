package services

import (
	"context"
	"errors"
	"time"

	"planpilot/internal/config"
	"planpilot/internal/domain"
	"planpilot/internal/ports"
)

// RetryPolicy decides whether and when a failed continuation is resent
type RetryPolicy struct {
	Delays      []time.Duration
	Enabled     bool
	MaxAttempts int
}

// NewRetryPolicy builds the policy from settings
func NewRetryPolicy(s config.RetrySettings) RetryPolicy {
	return RetryPolicy{
		Delays:      append([]time.Duration(nil), s.Delays...),
		Enabled:     s.Enabled,
		MaxAttempts: s.MaxAttempts,
	}
}

// Delay returns the backoff for a 1-based attempt. Attempts past the end
// of the schedule reuse the last delay.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if len(p.Delays) == 0 {
		return 0
	}
	if attempt < 1 {
		attempt = 1
	}
	if attempt > len(p.Delays) {
		return p.Delays[len(p.Delays)-1]
	}
	return p.Delays[attempt-1]
}

// Exhausted reports whether attempt is past the allowed maximum
func (p RetryPolicy) Exhausted(attempt int) bool {
	return attempt > p.MaxAttempts
}

// isManualCancellation reports whether a submit failure came from the
// user stopping the session, which must never be retried
func isManualCancellation(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	var hostErr *ports.HostError
	if errors.As(err, &hostErr) {
		return domain.IsManualCancellation(hostErr.Name)
	}
	return false
}
