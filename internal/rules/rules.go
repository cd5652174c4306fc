// Package rules decides whether a host event should trigger an
// auto-continue. Everything here is pure: no I/O and no state.
package rules

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"planpilot/internal/config"
	"planpilot/internal/domain"
)

// Decision is the outcome of evaluating one rule against one event
type Decision struct {
	Force   bool
	Matched bool
	Reason  string
	Summary string
}

// EventRule is the common part of every configurable trigger
type EventRule struct {
	Enabled  bool
	Force    bool
	Keywords KeywordRule
}

// evaluate applies the enabled flag and keyword filter to a summary
func (r EventRule) evaluate(summary string) Decision {
	d := Decision{Summary: summary}
	if !r.Enabled {
		d.Reason = "rule disabled"
		return d
	}
	if !r.Keywords.Match(summary) {
		d.Reason = "keywords did not match"
		return d
	}
	d.Matched = true
	d.Force = r.Force
	d.Reason = "matched"
	return d
}

// ErrorRule gates session errors
type ErrorRule struct {
	EventRule
	ErrorNames    []string
	RetryableOnly bool
	StatusCodes   []int
}

// MatchError evaluates a session error. Each structured filter is skipped
// when it is empty.
func (r ErrorRule) MatchError(ev domain.SessionErrorEvent) Decision {
	s := newSummary("error")
	s.add("name", ev.Name)
	if ev.StatusCode != 0 {
		s.add("status", strconv.Itoa(ev.StatusCode))
	}
	if ev.Retryable != nil {
		s.add("retryable", strconv.FormatBool(*ev.Retryable))
	}
	s.add("message", ev.Message)
	summary := s.String()

	if !r.Enabled {
		return Decision{Summary: summary, Reason: "rule disabled"}
	}
	if len(r.ErrorNames) > 0 && !slices.Contains(r.ErrorNames, ev.Name) {
		return Decision{Summary: summary, Reason: fmt.Sprintf("error name %q not allowed", ev.Name)}
	}
	if len(r.StatusCodes) > 0 && !slices.Contains(r.StatusCodes, ev.StatusCode) {
		return Decision{Summary: summary, Reason: fmt.Sprintf("status code %d not allowed", ev.StatusCode)}
	}
	if r.RetryableOnly && (ev.Retryable == nil || !*ev.Retryable) {
		return Decision{Summary: summary, Reason: "error is not retryable"}
	}
	return r.evaluate(summary)
}

// RetryRule gates host retry notifications
type RetryRule struct {
	EventRule
	MinAttempt int
}

// MatchRetry evaluates a session status event. Only retry statuses with
// an attempt at or above MinAttempt pass.
func (r RetryRule) MatchRetry(ev domain.SessionStatusEvent) Decision {
	s := newSummary("retry")
	s.add("attempt", strconv.Itoa(ev.Attempt))
	s.add("message", ev.Message)
	summary := s.String()

	if !ev.IsRetry() {
		return Decision{Summary: summary, Reason: fmt.Sprintf("status %q is not a retry", ev.Type)}
	}
	if !r.Enabled {
		return Decision{Summary: summary, Reason: "rule disabled"}
	}
	if ev.Attempt < r.MinAttempt {
		return Decision{Summary: summary, Reason: fmt.Sprintf("attempt %d below minimum %d", ev.Attempt, r.MinAttempt)}
	}
	return r.evaluate(summary)
}

// MatchPermissionAsked evaluates a permission request
func (r EventRule) MatchPermissionAsked(ev domain.PermissionAskedEvent) Decision {
	return r.evaluate(permissionSummary("permission asked", ev))
}

// MatchPermissionRejected evaluates a permission reply. asked is the
// matching request when it is known and enriches the summary.
func (r EventRule) MatchPermissionRejected(ev domain.PermissionRepliedEvent, asked *domain.PermissionAskedEvent) Decision {
	var summary string
	if asked != nil {
		summary = permissionSummary("permission rejected", *asked)
	} else {
		s := newSummary("permission rejected")
		s.add("id", ev.PermissionID)
		summary = s.String()
	}
	if !ev.Rejected() {
		return Decision{Summary: summary, Reason: fmt.Sprintf("reply %q is not a rejection", ev.Reply)}
	}
	return r.evaluate(summary)
}

// MatchQuestionAsked evaluates a structured question
func (r EventRule) MatchQuestionAsked(ev domain.QuestionAskedEvent) Decision {
	return r.evaluate(questionSummary("question asked", ev.Questions))
}

// MatchQuestionRejected evaluates a dismissed question. asked is the
// original question when it is known.
func (r EventRule) MatchQuestionRejected(ev domain.QuestionRejectedEvent, asked *domain.QuestionAskedEvent) Decision {
	if asked != nil {
		return r.evaluate(questionSummary("question rejected", asked.Questions))
	}
	s := newSummary("question rejected")
	s.add("id", ev.RequestID)
	return r.evaluate(s.String())
}

func permissionSummary(kind string, ev domain.PermissionAskedEvent) string {
	s := newSummary(kind)
	s.add("permission", ev.Permission)
	s.add("title", ev.Title)
	s.add("patterns", strings.Join(ev.Patterns, ","))
	return s.String()
}

func questionSummary(kind string, questions []domain.QuestionItem) string {
	s := newSummary(kind)
	for _, q := range questions {
		s.add("header", q.Header)
		s.add("question", q.Question)
		s.add("options", strings.Join(q.Options, ","))
	}
	return s.String()
}

// summary renders "kind key=value key=value" on a single line
type summary struct {
	parts []string
}

func newSummary(kind string) *summary {
	return &summary{parts: []string{kind}}
}

func (s *summary) add(key, value string) {
	value = strings.Join(strings.Fields(value), " ")
	if value == "" {
		return
	}
	s.parts = append(s.parts, key+"="+value)
}

func (s *summary) String() string {
	return strings.Join(s.parts, " ")
}

// RuleSet bundles the configurable triggers
type RuleSet struct {
	PermissionAsked    EventRule
	PermissionRejected EventRule
	QuestionAsked      EventRule
	QuestionRejected   EventRule
	SessionError       ErrorRule
	SessionRetry       RetryRule
}

// NewRuleSet builds the rule set from settings
func NewRuleSet(t config.TriggersSettings) RuleSet {
	return RuleSet{
		PermissionAsked:    eventRule(t.PermissionAsked),
		PermissionRejected: eventRule(t.PermissionRejected),
		QuestionAsked:      eventRule(t.QuestionAsked),
		QuestionRejected:   eventRule(t.QuestionRejected),
		SessionError: ErrorRule{
			EventRule:     eventRule(t.SessionError.RuleSettings),
			ErrorNames:    t.SessionError.ErrorNames,
			RetryableOnly: t.SessionError.RetryableOnly,
			StatusCodes:   t.SessionError.StatusCodes,
		},
		SessionRetry: RetryRule{
			EventRule:  eventRule(t.SessionRetry.RuleSettings),
			MinAttempt: t.SessionRetry.MinAttempt,
		},
	}
}

func eventRule(s config.RuleSettings) EventRule {
	return EventRule{
		Enabled: s.Enabled,
		Force:   s.Force,
		Keywords: KeywordRule{
			All:           s.Keywords.All,
			Any:           s.Keywords.Any,
			CaseSensitive: s.Keywords.CaseSensitive,
			None:          s.Keywords.None,
		},
	}
}
