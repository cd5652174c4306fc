package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"planpilot/internal/adapters/clock"
	"planpilot/internal/config"
	"planpilot/internal/domain"
	"planpilot/internal/ports"
	portsmocks "planpilot/internal/ports/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testSession = "ses_1"

var testStart = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type harness struct {
	clock *clock.Fake
	host  *portsmocks.MockHost
	svc   *AutoContinueService
	work  *portsmocks.MockWorkReader
}

func newHarness(t *testing.T, mutate func(cfg *AutoContinueConfig)) *harness {
	t.Helper()

	cfg := NewAutoContinueConfig(config.DefaultSettings().AutoContinue)
	if mutate != nil {
		mutate(&cfg)
	}

	h := &harness{
		clock: clock.NewFake(testStart),
		host:  portsmocks.NewMockHost(t),
		work:  portsmocks.NewMockWorkReader(t),
	}
	h.host.EXPECT().Log(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	svc, err := NewAutoContinueService(h.work, h.host, h.clock, nil, cfg)
	require.NoError(t, err)
	h.svc = svc
	t.Cleanup(svc.Close)
	return h
}

func (h *harness) event(ev domain.HostEvent) {
	h.svc.HandleEvent(context.Background(), ev)
	h.svc.Wait()
}

func (h *harness) snapshot(t *testing.T) SessionSnapshot {
	t.Helper()
	snap, ok := h.svc.Registry().Snapshot(testSession)
	require.True(t, ok)
	return snap
}

func testPlan() *domain.Plan {
	return &domain.Plan{ID: 1, Title: "Ship v2", Content: "Release work", Status: domain.StatusTodo}
}

func testStep(executor domain.Executor) *domain.Step {
	return &domain.Step{
		ID:        10,
		PlanID:    1,
		Content:   "Write the migration",
		Executor:  executor,
		SortOrder: 2,
		Status:    domain.StatusTodo,
	}
}

// expectWork wires the store reads of a dispatch that reaches step
// selection
func (h *harness) expectWork(step *domain.Step) {
	h.work.EXPECT().GetActivePlan(mock.Anything, testSession).
		Return(&domain.ActivePlan{PlanID: 1, SessionID: testSession}, nil)
	h.work.EXPECT().GetPlan(mock.Anything, int64(1)).Return(testPlan(), nil)
	h.work.EXPECT().NextStep(mock.Anything, int64(1)).Return(step, nil)
	h.work.EXPECT().ListGoals(mock.Anything, step.ID).
		Return([]domain.Goal{{ID: 100, StepID: step.ID, Content: "Add wait columns", Status: domain.StatusTodo}}, nil).
		Maybe()
}

// readyConversation is a finished exchange: the user asked, the assistant
// completed its turn
func readyConversation() []domain.HostMessage {
	return []domain.HostMessage{
		{
			ID:      "msg_u",
			Role:    domain.RoleUser,
			Created: testStart.Add(-2 * time.Minute),
			Agent:   "build",
			Model:   domain.ModelRef{ProviderID: "anthropic", ModelID: "sonnet"},
			Variant: "high",
		},
		{
			ID:        "msg_a",
			Role:      domain.RoleAssistant,
			Created:   testStart.Add(-time.Minute),
			Completed: testStart.Add(-30 * time.Second),
			Finish:    "stop",
			Agent:     "plan",
		},
	}
}

func (h *harness) expectMessages(messages []domain.HostMessage) {
	h.host.EXPECT().RecentMessages(mock.Anything, testSession, config.DefaultHistoryLimit).
		Return(messages, nil).Maybe()
}

// expectSubmit records every submitted request
func (h *harness) expectSubmit(sent *[]domain.ContinuationRequest, results ...error) {
	for _, result := range results {
		h.host.EXPECT().SubmitContinuation(mock.Anything, mock.Anything).
			Run(func(_ context.Context, req domain.ContinuationRequest) {
				*sent = append(*sent, req)
			}).
			Return(result).
			Once()
	}
}

func retryableError() domain.SessionErrorEvent {
	retryable := true
	return domain.NewSessionErrorEvent(testSession, "APIError", "overloaded", 529, &retryable)
}

func TestAutoContinue_NoActivePlanNeverSubmits(t *testing.T) {
	h := newHarness(t, nil)
	h.work.EXPECT().GetActivePlan(mock.Anything, testSession).Return(nil, nil)

	h.event(domain.NewIdleEvent(testSession))

	h.host.AssertNotCalled(t, "SubmitContinuation", mock.Anything, mock.Anything)
	assert.False(t, h.snapshot(t).InFlight)
}

func TestAutoContinue_HumanStepNeverSubmits(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorHuman))

	h.event(domain.NewIdleEvent(testSession))

	h.host.AssertNotCalled(t, "SubmitContinuation", mock.Anything, mock.Anything)
	h.host.AssertNotCalled(t, "RecentMessages", mock.Anything, mock.Anything, mock.Anything)
}

func TestAutoContinue_NoPendingStepNeverSubmits(t *testing.T) {
	h := newHarness(t, nil)
	h.work.EXPECT().GetActivePlan(mock.Anything, testSession).
		Return(&domain.ActivePlan{PlanID: 1, SessionID: testSession}, nil)
	h.work.EXPECT().GetPlan(mock.Anything, int64(1)).Return(testPlan(), nil)
	h.work.EXPECT().NextStep(mock.Anything, int64(1)).Return(nil, nil)

	h.event(domain.NewIdleEvent(testSession))

	h.host.AssertNotCalled(t, "SubmitContinuation", mock.Anything, mock.Anything)
}

func TestAutoContinue_SendsContinuation(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, nil)

	h.event(domain.NewIdleEvent(testSession))

	require.Len(t, sent, 1)
	req := sent[0]
	assert.Equal(t, testSession, req.SessionID)
	assert.Equal(t, "build", req.Agent, "the user's agent wins over the assistant's")
	assert.Equal(t, domain.ModelRef{ProviderID: "anthropic", ModelID: "sonnet"}, req.Model)
	assert.Equal(t, "high", req.Variant)
	assert.Contains(t, req.Text, `plan #1 "Ship v2"`)
	assert.Contains(t, req.Text, "Step #10 (position 2): Write the migration")
	assert.Contains(t, req.Text, "- [ ] #100 Add wait columns")
	assert.NotContains(t, req.Text, "Triggered by")

	snap := h.snapshot(t)
	assert.False(t, snap.InFlight)
	assert.False(t, snap.RetryArmed)
}

func TestAutoContinue_IdleDebounce(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, nil)

	h.event(domain.NewIdleEvent(testSession))
	h.clock.Advance(500 * time.Millisecond)
	h.event(domain.NewIdleEvent(testSession))

	assert.Len(t, sent, 1)
	assert.Equal(t, testStart, h.snapshot(t).LastIdle)
}

func TestAutoContinue_DedupeWindow(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, nil)

	h.event(domain.NewIdleEvent(testSession))
	h.clock.Advance(200 * time.Millisecond)
	// triggers bypass the idle debounce but not the recent-send window
	h.event(retryableError())

	assert.Len(t, sent, 1)
	assert.False(t, h.snapshot(t).HasPending, "a deduplicated trigger is dropped")
}

func TestAutoContinue_AbortFailureIsNotRetried(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, &ports.HostError{Name: domain.ErrorNameMessageAborted, Message: "aborted"})

	h.event(domain.NewIdleEvent(testSession))

	assert.Len(t, sent, 1)
	assert.Zero(t, h.clock.Pending())
	assert.False(t, h.snapshot(t).RetryArmed)
}

func TestAutoContinue_CanceledContextIsNotRetried(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, context.Canceled)

	h.event(domain.NewIdleEvent(testSession))

	assert.Zero(t, h.clock.Pending())
}

func TestAutoContinue_TransientFailureRetriesAtFirstDelay(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, errors.New("connection reset"), nil)

	h.event(domain.NewIdleEvent(testSession))

	require.Len(t, sent, 1)
	assert.Equal(t, 1, h.clock.Pending())
	snap := h.snapshot(t)
	assert.True(t, snap.RetryArmed)
	assert.Equal(t, 1, snap.RetryAttempts)

	h.clock.Advance(2*time.Second - time.Millisecond)
	h.svc.Wait()
	assert.Len(t, sent, 1, "nothing is resent before the first delay")

	h.clock.Advance(time.Millisecond)
	h.svc.Wait()

	require.Len(t, sent, 2)
	assert.Contains(t, sent[1].Text, "Triggered by: send-retry 1/3")
	snap = h.snapshot(t)
	assert.False(t, snap.RetryArmed)
	assert.Zero(t, snap.RetryAttempts)
	assert.Zero(t, h.clock.Pending())
}

func TestAutoContinue_RetryExhaustion(t *testing.T) {
	h := newHarness(t, func(cfg *AutoContinueConfig) {
		cfg.Retry.MaxAttempts = 2
	})
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	boom := errors.New("bad gateway")
	h.expectSubmit(&sent, boom, boom, boom)

	h.event(domain.NewIdleEvent(testSession))
	assert.Equal(t, 1, h.snapshot(t).RetryAttempts)

	h.clock.Advance(2 * time.Second)
	h.svc.Wait()
	assert.Equal(t, 2, h.snapshot(t).RetryAttempts)
	assert.Equal(t, 1, h.clock.Pending())

	h.clock.Advance(5 * time.Second)
	h.svc.Wait()

	assert.Len(t, sent, 3)
	snap := h.snapshot(t)
	assert.False(t, snap.RetryArmed)
	assert.Zero(t, snap.RetryAttempts)
	assert.Zero(t, h.clock.Pending(), "no timer after the last allowed attempt")
}

func TestAutoContinue_RetryDisabled(t *testing.T) {
	h := newHarness(t, func(cfg *AutoContinueConfig) {
		cfg.Retry.Enabled = false
	})
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, errors.New("connection reset"))

	h.event(domain.NewIdleEvent(testSession))

	assert.Zero(t, h.clock.Pending())
}

func TestAutoContinue_AbortAfterFailureCancelsRetry(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, errors.New("connection reset"))

	h.event(domain.NewIdleEvent(testSession))
	require.Equal(t, 1, h.clock.Pending())

	h.event(domain.NewSessionErrorEvent(testSession, domain.ErrorNameAbort, "aborted", 0, nil))

	assert.Zero(t, h.clock.Pending())
	snap := h.snapshot(t)
	assert.True(t, snap.ManualStopped)
	assert.Equal(t, "session error AbortError", snap.StopReason)

	h.clock.Advance(time.Minute)
	h.svc.Wait()
	assert.Len(t, sent, 1)
}

func TestAutoContinue_WaitMarkerRedispatches(t *testing.T) {
	h := newHarness(t, nil)
	step := testStep(domain.ExecutorAI)
	until := testStart.Add(5000 * time.Millisecond)
	step.WaitUntil = &until
	step.WaitReason = "CI pipeline running"
	h.expectWork(step)
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, nil)

	h.event(domain.NewIdleEvent(testSession))

	assert.Empty(t, sent)
	snap := h.snapshot(t)
	assert.True(t, snap.WaitArmed)
	assert.Equal(t, until, snap.WaitUntil)
	assert.Equal(t, 1, h.clock.Pending())

	h.clock.Advance(4999 * time.Millisecond)
	h.svc.Wait()
	assert.Empty(t, sent)

	h.clock.Advance(time.Millisecond)
	h.svc.Wait()

	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "The wait on this step is over: CI pipeline running")
	assert.False(t, h.snapshot(t).WaitArmed)
}

func TestAutoContinue_WaitReasonAnnouncedOnce(t *testing.T) {
	h := newHarness(t, nil)
	step := testStep(domain.ExecutorAI)
	until := testStart.Add(-time.Hour)
	step.WaitUntil = &until
	step.WaitReason = "CI pipeline running"
	h.expectWork(step)
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, nil, nil)

	h.event(domain.NewIdleEvent(testSession))
	h.clock.Advance(time.Minute)
	h.event(domain.NewIdleEvent(testSession))

	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].Text, "The wait on this step is over: CI pipeline running")
	assert.NotContains(t, sent[1].Text, "The wait on this step is over")
}

func TestAutoContinue_WaitTimerIsNotDuplicated(t *testing.T) {
	h := newHarness(t, nil)
	step := testStep(domain.ExecutorAI)
	until := testStart.Add(time.Minute)
	step.WaitUntil = &until
	h.expectWork(step)

	h.event(domain.NewIdleEvent(testSession))
	h.clock.Advance(2 * time.Second)
	h.event(domain.NewIdleEvent(testSession))

	assert.Equal(t, 1, h.clock.Pending())
}

func TestAutoContinue_ManualStopUntilUserMessage(t *testing.T) {
	h := newHarness(t, nil)

	h.event(domain.NewMessageUpdatedEvent(testSession, "msg_a", domain.RoleAssistant, domain.ErrorNameMessageAborted))
	assert.True(t, h.snapshot(t).ManualStopped)

	// no store expectations: a stopped session must not even look
	h.event(domain.NewIdleEvent(testSession))
	h.event(retryableError())
	assert.False(t, h.snapshot(t).HasPending)

	h.event(domain.NewMessageUpdatedEvent(testSession, "msg_u2", domain.RoleUser, ""))
	assert.False(t, h.snapshot(t).ManualStopped)

	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, nil)

	h.event(domain.NewIdleEvent(testSession))
	assert.Len(t, sent, 1)
}

func TestAutoContinue_AbortedAssistantBlocksUnlessForced(t *testing.T) {
	aborted := readyConversation()
	aborted[1].ErrorName = domain.ErrorNameMessageAborted

	t.Run("idle is dropped", func(t *testing.T) {
		h := newHarness(t, nil)
		h.expectWork(testStep(domain.ExecutorAI))
		h.expectMessages(aborted)

		h.event(domain.NewIdleEvent(testSession))

		h.host.AssertNotCalled(t, "SubmitContinuation", mock.Anything, mock.Anything)
	})

	t.Run("forced trigger goes through", func(t *testing.T) {
		h := newHarness(t, func(cfg *AutoContinueConfig) {
			cfg.Rules.SessionError.Force = true
		})
		h.expectWork(testStep(domain.ExecutorAI))
		h.expectMessages(aborted)
		var sent []domain.ContinuationRequest
		h.expectSubmit(&sent, nil)

		h.event(retryableError())

		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].Text, "Triggered by: error name=APIError status=529 retryable=true message=overloaded")
	})
}

func TestAutoContinue_BusyAssistantDropsTrigger(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	busy := readyConversation()
	busy[1].Completed = time.Time{}
	busy[1].Finish = domain.FinishToolCalls
	h.expectMessages(busy)

	h.event(retryableError())

	h.host.AssertNotCalled(t, "SubmitContinuation", mock.Anything, mock.Anything)
	assert.False(t, h.snapshot(t).HasPending)
}

func TestAutoContinue_NoUserMessageStops(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation()[1:])

	h.event(domain.NewIdleEvent(testSession))

	h.host.AssertNotCalled(t, "SubmitContinuation", mock.Anything, mock.Anything)
}

func TestAutoContinue_SkipFlagAndTriggerTTL(t *testing.T) {
	h := newHarness(t, nil)

	h.event(domain.NewCompactingEvent(testSession))
	assert.True(t, h.snapshot(t).SkipNext)

	// the skip flag eats this dispatch and leaves the trigger queued
	h.event(retryableError())
	snap := h.snapshot(t)
	assert.False(t, snap.SkipNext)
	require.True(t, snap.HasPending)
	assert.Equal(t, SourceSessionError, snap.PendingSource)

	h.clock.Advance(10*time.Minute + time.Second)

	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, nil)

	h.event(domain.NewIdleEvent(testSession))

	require.Len(t, sent, 1)
	assert.NotContains(t, sent[0].Text, "Triggered by", "the expired trigger was discarded")
}

func TestAutoContinue_RuleDisabledDoesNotEnqueue(t *testing.T) {
	h := newHarness(t, nil)

	h.event(domain.NewPermissionAskedEvent(testSession, "per_1", "bash", "Run tests", nil))

	assert.False(t, h.snapshot(t).HasPending)
}

func TestAutoContinue_PermissionRejectedUsesAskedDetail(t *testing.T) {
	h := newHarness(t, func(cfg *AutoContinueConfig) {
		cfg.Rules.PermissionRejected.Enabled = true
		cfg.Rules.PermissionRejected.Force = true
	})
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, nil)

	h.event(domain.NewPermissionAskedEvent(testSession, "per_1", "bash", "Run tests", []string{"go test"}))
	h.event(domain.NewPermissionRepliedEvent(testSession, "per_1", "reject"))

	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "permission rejected permission=bash title=Run tests patterns=go test")
}

func TestAutoContinue_DisabledIgnoresEvents(t *testing.T) {
	h := newHarness(t, func(cfg *AutoContinueConfig) {
		cfg.Enabled = false
	})

	h.event(domain.NewIdleEvent(testSession))

	assert.Zero(t, h.svc.Registry().Len())
}

func TestAutoContinue_EvictsIdleSessions(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, nil)
	h.work.EXPECT().GetActivePlan(mock.Anything, "ses_2").Return(nil, nil)

	h.event(domain.NewIdleEvent(testSession))
	require.Equal(t, 1, h.svc.Registry().Len())

	h.clock.Advance(time.Hour)
	h.event(domain.NewIdleEvent("ses_2"))

	_, ok := h.svc.Registry().Snapshot(testSession)
	assert.False(t, ok)
	assert.Equal(t, 1, h.svc.Registry().Len())
}

func TestAutoContinue_EvictionKeepsSessionGuards(t *testing.T) {
	tests := []struct {
		name  string
		arm   func(h *harness)
		check func(t *testing.T, snap SessionSnapshot)
	}{
		{
			name: "manual stop",
			arm: func(h *harness) {
				h.event(domain.NewMessageUpdatedEvent(testSession, "msg_a", domain.RoleAssistant, domain.ErrorNameMessageAborted))
			},
			check: func(t *testing.T, snap SessionSnapshot) {
				assert.True(t, snap.ManualStopped)
			},
		},
		{
			name: "skip flag",
			arm: func(h *harness) {
				h.event(domain.NewCompactingEvent(testSession))
			},
			check: func(t *testing.T, snap SessionSnapshot) {
				assert.False(t, snap.SkipNext, "the flag was spent on the idle event")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			h.work.EXPECT().GetActivePlan(mock.Anything, "ses_2").Return(nil, nil)
			var sent []domain.ContinuationRequest
			h.host.EXPECT().SubmitContinuation(mock.Anything, mock.Anything).
				Run(func(_ context.Context, req domain.ContinuationRequest) {
					sent = append(sent, req)
				}).
				Return(nil).
				Maybe()

			tt.arm(h)

			h.clock.Advance(2 * time.Hour)
			h.event(domain.NewIdleEvent("ses_2"))
			_, ok := h.svc.Registry().Snapshot(testSession)
			require.True(t, ok, "a guarded session outlives the idle TTL")

			// no store expectations for testSession: the guard stops the dispatch first
			h.event(domain.NewIdleEvent(testSession))

			assert.Empty(t, sent)
			tt.check(t, h.snapshot(t))
		})
	}
}

func TestAutoContinue_UnansweredAsksExpire(t *testing.T) {
	h := newHarness(t, nil)
	h.work.EXPECT().GetActivePlan(mock.Anything, "ses_2").Return(nil, nil)

	h.event(domain.NewPermissionAskedEvent(testSession, "per_1", "bash", "Run tests", nil))
	h.event(domain.NewQuestionAskedEvent(testSession, "que_1",
		[]domain.QuestionItem{{Header: "Deploy", Question: "Ship?", Options: []string{"yes", "no"}}}))
	assert.Equal(t, 2, h.snapshot(t).OpenAsks)

	h.clock.Advance(10*time.Minute + time.Second)
	h.event(domain.NewPermissionAskedEvent(testSession, "per_2", "edit", "Edit go.mod", nil))
	assert.Equal(t, 1, h.snapshot(t).OpenAsks)

	h.clock.Advance(2 * time.Hour)
	h.event(domain.NewIdleEvent("ses_2"))

	_, ok := h.svc.Registry().Snapshot(testSession)
	assert.False(t, ok, "expired asks no longer pin the session")
}

func TestAutoContinue_CloseStopsTimers(t *testing.T) {
	h := newHarness(t, nil)
	h.expectWork(testStep(domain.ExecutorAI))
	h.expectMessages(readyConversation())
	var sent []domain.ContinuationRequest
	h.expectSubmit(&sent, errors.New("connection reset"))

	h.event(domain.NewIdleEvent(testSession))
	require.Equal(t, 1, h.clock.Pending())

	h.svc.Close()

	assert.Zero(t, h.clock.Pending())
	h.event(domain.NewIdleEvent(testSession))
	assert.Len(t, sent, 1)
}
