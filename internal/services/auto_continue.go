package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"planpilot/internal/config"
	"planpilot/internal/domain"
	"planpilot/internal/logging"
	"planpilot/internal/ports"
	"planpilot/internal/rules"
)

// Trigger sources
const (
	SourcePermissionAsked    = "permission.asked"
	SourcePermissionRejected = "permission.rejected"
	SourceQuestionAsked      = "question.asked"
	SourceQuestionRejected   = "question.rejected"
	SourceRetry              = "send.retry"
	SourceSessionError       = "session.error"
	SourceSessionRetry       = "session.retry"
)

// origin says what started a dispatch
type origin string

const (
	originIdle    origin = "idle"
	originRetry   origin = "retry"
	originTrigger origin = "trigger"
	originWait    origin = "wait"
)

// AutoContinueConfig is the immutable configuration of the loop
type AutoContinueConfig struct {
	Debounce       time.Duration
	DedupeWindow   time.Duration
	Enabled        bool
	HistoryLimit   int
	Retry          RetryPolicy
	Rules          rules.RuleSet
	SessionIdleTTL time.Duration
	Template       string
	TriggerTTL     time.Duration
}

// NewAutoContinueConfig builds the loop configuration from settings
func NewAutoContinueConfig(s config.AutoContinueSettings) AutoContinueConfig {
	return AutoContinueConfig{
		Debounce:       s.Debounce,
		DedupeWindow:   s.DedupeWindow,
		Enabled:        s.Enabled,
		HistoryLimit:   s.HistoryLimit,
		Retry:          NewRetryPolicy(s.Retry),
		Rules:          rules.NewRuleSet(s.Triggers),
		SessionIdleTTL: s.SessionIdleTTL,
		Template:       s.Template,
		TriggerTTL:     s.TriggerTTL,
	}
}

// AutoContinueService resumes host sessions when the active plan's next
// step can be carried out by the assistant.
//
// Event bookkeeping (stop guard, triggers, skip flag, debounce) happens
// synchronously in HandleEvent. Everything that touches the store or the
// host runs in a dispatch goroutine, at most one per session.
type AutoContinueService struct {
	cancel   context.CancelFunc
	cfg      AutoContinueConfig
	clock    ports.Clock
	closed   bool
	composer *Composer
	ctx      context.Context
	host     ports.Host
	registry *SessionRegistry
	wg       sync.WaitGroup
	work     ports.WorkReader
}

// NewAutoContinueService creates the orchestrator. A nil registry creates
// one from cfg.SessionIdleTTL.
func NewAutoContinueService(
	work ports.WorkReader,
	host ports.Host,
	clock ports.Clock,
	registry *SessionRegistry,
	cfg AutoContinueConfig,
) (*AutoContinueService, error) {
	composer, err := NewComposer(cfg.Template)
	if err != nil {
		return nil, err
	}
	if registry == nil {
		registry = NewSessionRegistry(cfg.SessionIdleTTL)
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = config.DefaultHistoryLimit
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &AutoContinueService{
		cancel:   cancel,
		cfg:      cfg,
		clock:    clock,
		composer: composer,
		ctx:      ctx,
		host:     host,
		registry: registry,
		work:     work,
	}, nil
}

// Registry exposes the session registry
func (s *AutoContinueService) Registry() *SessionRegistry {
	return s.registry
}

// HandleEvent updates session state for ev and starts a dispatch when the
// event calls for one
func (s *AutoContinueService) HandleEvent(ctx context.Context, ev domain.HostEvent) {
	if ctx.Err() != nil || !s.cfg.Enabled {
		return
	}
	sessionID := ev.Session()
	if sessionID == "" {
		return
	}

	switch e := ev.(type) {
	case domain.IdleEvent:
		s.dispatch(sessionID, originIdle)

	case domain.MessageUpdatedEvent:
		s.handleMessageUpdated(e)

	case domain.SessionErrorEvent:
		if domain.IsManualCancellation(e.Name) {
			s.armManualStop(sessionID, "session error "+e.Name)
			return
		}
		s.enqueueIfMatched(sessionID, SourceSessionError, s.cfg.Rules.SessionError.MatchError(e))

	case domain.SessionStatusEvent:
		if !e.IsRetry() {
			return
		}
		s.enqueueIfMatched(sessionID, SourceSessionRetry, s.cfg.Rules.SessionRetry.MatchRetry(e))

	case domain.PermissionAskedEvent:
		s.withSession(sessionID, func(st *sessionState) {
			now := s.clock.Now()
			st.pruneAsked(now, s.cfg.TriggerTTL)
			st.permAsked[e.PermissionID] = askedPermission{At: now, Event: e}
		})
		s.enqueueIfMatched(sessionID, SourcePermissionAsked, s.cfg.Rules.PermissionAsked.MatchPermissionAsked(e))

	case domain.PermissionRepliedEvent:
		var asked *domain.PermissionAskedEvent
		s.withSession(sessionID, func(st *sessionState) {
			if a, ok := st.permAsked[e.PermissionID]; ok {
				asked = &a.Event
				delete(st.permAsked, e.PermissionID)
			}
		})
		s.enqueueIfMatched(sessionID, SourcePermissionRejected,
			s.cfg.Rules.PermissionRejected.MatchPermissionRejected(e, asked))

	case domain.QuestionAskedEvent:
		s.withSession(sessionID, func(st *sessionState) {
			now := s.clock.Now()
			st.pruneAsked(now, s.cfg.TriggerTTL)
			st.questions[e.RequestID] = askedQuestion{At: now, Event: e}
		})
		s.enqueueIfMatched(sessionID, SourceQuestionAsked, s.cfg.Rules.QuestionAsked.MatchQuestionAsked(e))

	case domain.QuestionRejectedEvent:
		var asked *domain.QuestionAskedEvent
		s.withSession(sessionID, func(st *sessionState) {
			if a, ok := st.questions[e.RequestID]; ok {
				asked = &a.Event
				delete(st.questions, e.RequestID)
			}
		})
		s.enqueueIfMatched(sessionID, SourceQuestionRejected,
			s.cfg.Rules.QuestionRejected.MatchQuestionRejected(e, asked))

	case domain.CompactingEvent:
		s.withSession(sessionID, func(st *sessionState) {
			st.skipNext = true
		})
		logging.Logger.Info("Auto-continue will skip next dispatch", "session", sessionID, "reason", "compacting")
	}
}

// Wait blocks until every running dispatch has finished
func (s *AutoContinueService) Wait() {
	s.wg.Wait()
}

// Close stops every timer, cancels running host calls and waits for
// dispatches to return
func (s *AutoContinueService) Close() {
	s.registry.mu.Lock()
	s.closed = true
	s.registry.stopAll()
	s.registry.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func (s *AutoContinueService) withSession(sessionID string, fn func(st *sessionState)) {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	fn(s.registry.session(sessionID, s.clock.Now()))
}

func (s *AutoContinueService) handleMessageUpdated(e domain.MessageUpdatedEvent) {
	sessionID := e.Session()
	if e.Aborted() {
		s.armManualStop(sessionID, "assistant message aborted")
		return
	}
	if e.Role != domain.RoleUser {
		return
	}
	s.withSession(sessionID, func(st *sessionState) {
		if st.stop != nil {
			logging.Logger.Info("Manual stop cleared by user message",
				"session", sessionID,
				"reason", st.stop.Reason)
			st.stop = nil
		}
	})
}

// armManualStop suppresses dispatch until the next user message
func (s *AutoContinueService) armManualStop(sessionID, reason string) {
	s.withSession(sessionID, func(st *sessionState) {
		st.stop = &manualStop{At: s.clock.Now(), Reason: reason}
		st.pending = nil
		st.stopRetry()
		st.stopWait()
	})
	logging.Logger.Info("Manual stop armed", "session", sessionID, "reason", reason)
}

func (s *AutoContinueService) enqueueIfMatched(sessionID, source string, d rules.Decision) {
	if !d.Matched {
		logging.Logger.Debug("Trigger rule did not match",
			"session", sessionID,
			"source", source,
			"reason", d.Reason,
			"summary", d.Summary)
		return
	}
	s.withSession(sessionID, func(st *sessionState) {
		st.pending = &trigger{
			CreatedAt: s.clock.Now(),
			Detail:    d.Summary,
			Force:     d.Force,
			ID:        uuid.NewString(),
			Source:    source,
		}
	})
	logging.Logger.Info("Trigger enqueued",
		"session", sessionID,
		"source", source,
		"force", d.Force,
		"summary", d.Summary)
	s.dispatch(sessionID, originTrigger)
}

// dispatch runs the cheap gates under the registry lock and, when they
// pass, starts the dispatch goroutine
func (s *AutoContinueService) dispatch(sessionID string, from origin) {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	if s.closed {
		return
	}

	now := s.clock.Now()
	for _, id := range s.registry.evictIdle(now, s.cfg.TriggerTTL, sessionID) {
		logging.Logger.Debug("Session evicted", "session", id)
	}
	st := s.registry.session(sessionID, now)

	if st.inFlight {
		logging.Logger.Debug("Dispatch skipped", "session", sessionID, "origin", from, "reason", "in flight")
		return
	}
	if st.stop != nil {
		st.pending = nil
		logging.Logger.Info("Dispatch skipped", "session", sessionID, "origin", from, "reason", "manual stop")
		return
	}
	if st.skipNext {
		st.skipNext = false
		logging.Logger.Info("Dispatch skipped", "session", sessionID, "origin", from, "reason", "skip flag")
		return
	}
	if st.pending != nil && s.cfg.TriggerTTL > 0 && now.Sub(st.pending.CreatedAt) > s.cfg.TriggerTTL {
		logging.Logger.Info("Trigger expired",
			"session", sessionID,
			"source", st.pending.Source,
			"age", now.Sub(st.pending.CreatedAt))
		st.pending = nil
	}
	if from == originIdle && st.pending == nil {
		if !st.lastIdle.IsZero() && now.Sub(st.lastIdle) < s.cfg.Debounce {
			logging.Logger.Debug("Dispatch skipped", "session", sessionID, "origin", from, "reason", "debounce")
			return
		}
		st.lastIdle = now
	}

	var trig *trigger
	if st.pending != nil {
		t := *st.pending
		trig = &t
	}
	st.inFlight = true
	s.wg.Add(1)
	go s.run(sessionID, from, trig)
}

// run is one dispatch attempt. It always ends with inFlight cleared.
func (s *AutoContinueService) run(sessionID string, from origin, trig *trigger) {
	defer s.wg.Done()
	defer s.withSession(sessionID, func(st *sessionState) {
		st.inFlight = false
	})

	ctx := s.ctx
	log := logging.Logger.With("session", sessionID, "origin", from)

	active, err := s.work.GetActivePlan(ctx, sessionID)
	if err != nil {
		s.report(ctx, log, slog.LevelWarn, "Failed to load active plan", "error", err)
		return
	}
	if active == nil {
		s.stopIdle(sessionID, trig)
		log.Debug("No active plan")
		return
	}

	plan, err := s.work.GetPlan(ctx, active.PlanID)
	if err != nil {
		s.report(ctx, log, slog.LevelWarn, "Failed to load plan", "plan", active.PlanID, "error", err)
		return
	}
	log = log.With("plan", plan.ID)

	step, err := s.work.NextStep(ctx, plan.ID)
	if err != nil {
		s.report(ctx, log, slog.LevelWarn, "Failed to load next step", "error", err)
		return
	}
	if step == nil {
		s.stopIdle(sessionID, trig)
		s.report(ctx, log, slog.LevelInfo, "Plan has no pending step")
		return
	}
	log = log.With("step", step.ID)

	if !step.Executor.MachineExecutable() {
		s.stopIdle(sessionID, trig)
		s.report(ctx, log, slog.LevelInfo, "Next step is not for the assistant", "executor", step.Executor)
		return
	}

	now := s.clock.Now()
	wait := step.Wait()
	if wait.Pending(now) {
		s.armWait(sessionID, wait.Until, wait.Until.Sub(now))
		s.report(ctx, log, slog.LevelInfo, "Step is waiting", "until", wait.Until, "reason", wait.Reason)
		return
	}

	sig := signature{PlanID: plan.ID, StepID: step.ID}
	proceed := false
	announceWait := false
	s.withSession(sessionID, func(st *sessionState) {
		st.stopWait()
		// the wake-up is news only until a continuation for the step goes out after it
		announceWait = wait != nil &&
			(st.recent == nil || st.recent.Signature != sig || st.recent.At.Before(wait.Until))
		if st.retry != nil && st.retry.Signature != sig {
			st.stopRetry()
		}
		if st.recent != nil && st.recent.Signature == sig && now.Sub(st.recent.At) < s.cfg.DedupeWindow {
			dropTrigger(st, trig)
			return
		}
		proceed = true
	})
	if !proceed {
		log.Info("Dispatch skipped", "reason", "sent recently")
		return
	}

	messages, err := s.host.RecentMessages(ctx, sessionID, s.cfg.HistoryLimit)
	if err != nil {
		s.report(ctx, log, slog.LevelWarn, "Failed to read session messages", "error", err)
		return
	}
	conv := domain.ResolveConversation(messages)
	if conv.User == nil {
		s.report(ctx, log, slog.LevelInfo, "Dispatch skipped", "reason", "no user message")
		return
	}
	force := trig != nil && trig.Force
	if !force {
		reason := ""
		switch {
		case conv.Aborted():
			reason = "assistant aborted"
		case !conv.Ready():
			reason = "assistant busy"
		}
		if reason != "" {
			s.withSession(sessionID, func(st *sessionState) { dropTrigger(st, trig) })
			s.report(ctx, log, slog.LevelInfo, "Dispatch skipped", "reason", reason)
			return
		}
	}

	stopped := false
	s.withSession(sessionID, func(st *sessionState) {
		if st.stop != nil {
			st.pending = nil
			stopped = true
		}
	})
	if stopped {
		log.Info("Dispatch skipped", "reason", "manual stop")
		return
	}

	goals, err := s.work.ListGoals(ctx, step.ID)
	if err != nil {
		s.report(ctx, log, slog.LevelWarn, "Failed to load goals", "error", err)
		return
	}
	data := ContinuationData{Goals: goals, Plan: *plan, Step: *step}
	if announceWait {
		data.WaitReason = wait.Reason
	}
	if trig != nil {
		data.Detail = trig.Detail
	}
	text, err := s.composer.Compose(data)
	if err != nil {
		s.report(ctx, log, slog.LevelError, "Failed to compose continuation", "error", err)
		return
	}

	req := domain.ContinuationRequest{
		Agent:     conv.Agent(),
		Model:     conv.Model(),
		SessionID: sessionID,
		Text:      text,
		Variant:   conv.Variant(),
	}
	if err := s.host.SubmitContinuation(ctx, req); err != nil {
		s.onSubmitFailure(ctx, log, sessionID, sig, trig, err)
		return
	}

	s.withSession(sessionID, func(st *sessionState) {
		st.recent = &sentRecord{At: s.clock.Now(), Signature: sig}
		st.stopRetry()
		dropTrigger(st, trig)
	})
	s.report(ctx, log, slog.LevelInfo, "Continuation sent", "force", force)
}

// onSubmitFailure schedules a resend unless the failure or the session
// says the user wants the assistant to stop
func (s *AutoContinueService) onSubmitFailure(
	ctx context.Context,
	log *slog.Logger,
	sessionID string,
	sig signature,
	trig *trigger,
	submitErr error,
) {
	manual := isManualCancellation(submitErr)

	var (
		attempts int
		delay    time.Duration
		outcome  string
	)
	s.withSession(sessionID, func(st *sessionState) {
		switch {
		case s.closed:
			outcome = "shutting down"
		case !s.cfg.Retry.Enabled:
			outcome = "retries disabled"
		case manual:
			outcome = "manual cancellation"
		case st.stop != nil:
			outcome = "manual stop"
		}
		if outcome != "" {
			st.stopRetry()
			dropTrigger(st, trig)
			return
		}

		base, force := "", false
		if trig != nil {
			base, force = trig.Detail, trig.Force
		}
		attempts = 1
		if st.retry != nil && st.retry.Signature == sig {
			attempts = st.retry.Attempts + 1
			base, force = st.retry.BaseDetail, st.retry.Force
		}
		if s.cfg.Retry.Exhausted(attempts) {
			st.stopRetry()
			dropTrigger(st, trig)
			outcome = "retries exhausted"
			return
		}

		delay = s.cfg.Retry.Delay(attempts)
		if st.retry != nil && st.retry.Timer != nil {
			st.retry.Timer.Stop()
		}
		rs := &retryState{Attempts: attempts, BaseDetail: base, Force: force, Signature: sig}
		rs.Timer = s.clock.AfterFunc(delay, func() { s.retryFired(sessionID, rs) })
		st.retry = rs
		dropTrigger(st, trig)
		outcome = "retry scheduled"
	})

	if outcome != "retry scheduled" {
		s.report(ctx, log, slog.LevelWarn, "Continuation failed", "error", submitErr, "outcome", outcome)
		return
	}
	s.report(ctx, log, slog.LevelWarn, "Continuation failed",
		"error", submitErr,
		"outcome", outcome,
		"attempt", attempts,
		"maxAttempts", s.cfg.Retry.MaxAttempts,
		"delay", delay)
}

func (s *AutoContinueService) retryFired(sessionID string, rs *retryState) {
	fired := false
	s.withSession(sessionID, func(st *sessionState) {
		if s.closed || st.retry != rs {
			return
		}
		rs.Timer = nil
		st.pending = &trigger{
			CreatedAt: s.clock.Now(),
			Detail:    retryDetail(rs.BaseDetail, rs.Attempts, s.cfg.Retry.MaxAttempts),
			Force:     rs.Force,
			ID:        uuid.NewString(),
			Source:    SourceRetry,
		}
		fired = true
	})
	if fired {
		s.dispatch(sessionID, originRetry)
	}
}

// armWait replaces the session's wait timer
func (s *AutoContinueService) armWait(sessionID string, until time.Time, delay time.Duration) {
	s.withSession(sessionID, func(st *sessionState) {
		if s.closed {
			return
		}
		if st.wait != nil && st.wait.Until.Equal(until) {
			return
		}
		st.stopWait()
		w := &waitState{Until: until}
		w.Timer = s.clock.AfterFunc(delay, func() { s.waitFired(sessionID, w) })
		st.wait = w
	})
}

func (s *AutoContinueService) waitFired(sessionID string, w *waitState) {
	fired := false
	s.withSession(sessionID, func(st *sessionState) {
		if s.closed || st.wait != w {
			return
		}
		st.wait = nil
		fired = true
	})
	if fired {
		s.dispatch(sessionID, originWait)
	}
}

// stopIdle ends a dispatch that found nothing to do
func (s *AutoContinueService) stopIdle(sessionID string, trig *trigger) {
	s.withSession(sessionID, func(st *sessionState) {
		st.stopWait()
		dropTrigger(st, trig)
	})
}

// report logs a dispatch outcome and mirrors it to the host log
func (s *AutoContinueService) report(ctx context.Context, log *slog.Logger, level slog.Level, msg string, args ...any) {
	log.Log(ctx, level, msg, args...)

	extra := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		if err, isErr := args[i+1].(error); isErr {
			extra[key] = err.Error()
			continue
		}
		extra[key] = args[i+1]
	}
	_ = s.host.Log(ctx, hostLevel(level), "auto-continue: "+msg, extra)
}

func hostLevel(level slog.Level) ports.LogLevel {
	switch {
	case level >= slog.LevelError:
		return ports.LogError
	case level >= slog.LevelWarn:
		return ports.LogWarn
	case level >= slog.LevelInfo:
		return ports.LogInfo
	}
	return ports.LogDebug
}

// dropTrigger clears the pending trigger if it is the one the dispatch
// acted on. A newer trigger that arrived meanwhile survives.
func dropTrigger(st *sessionState, trig *trigger) {
	if trig == nil || st.pending == nil {
		return
	}
	if st.pending.ID == trig.ID {
		st.pending = nil
	}
}

// retryDetail appends the resend counter to the original trigger detail
func retryDetail(base string, attempt, max int) string {
	counter := fmt.Sprintf("send-retry %d/%d", attempt, max)
	base = strings.TrimSpace(base)
	if base == "" {
		return counter
	}
	return base + " | " + counter
}
