package services

import (
	"sync"
	"time"

	"planpilot/internal/domain"
	"planpilot/internal/ports"
)

// trigger is a pending request to auto-continue a session
type trigger struct {
	CreatedAt time.Time
	Detail    string
	Force     bool
	ID        string
	Source    string
}

// signature identifies the unit of work a continuation was sent for
type signature struct {
	PlanID int64
	StepID int64
}

type sentRecord struct {
	At        time.Time
	Signature signature
}

type retryState struct {
	Attempts   int
	BaseDetail string
	Force      bool
	Signature  signature
	Timer      ports.Timer
}

type waitState struct {
	Timer ports.Timer
	Until time.Time
}

type askedPermission struct {
	At    time.Time
	Event domain.PermissionAskedEvent
}

type askedQuestion struct {
	At    time.Time
	Event domain.QuestionAskedEvent
}

type manualStop struct {
	At     time.Time
	Reason string
}

// sessionState is everything the auto-continue loop remembers about one
// host session. Guarded by SessionRegistry.mu.
type sessionState struct {
	id        string
	inFlight  bool
	lastIdle  time.Time
	lastSeen  time.Time
	pending   *trigger
	recent    *sentRecord
	retry     *retryState
	skipNext  bool
	stop      *manualStop
	wait      *waitState
	permAsked map[string]askedPermission
	questions map[string]askedQuestion
}

func (st *sessionState) stopRetry() {
	if st.retry != nil && st.retry.Timer != nil {
		st.retry.Timer.Stop()
	}
	st.retry = nil
}

func (st *sessionState) stopWait() {
	if st.wait != nil && st.wait.Timer != nil {
		st.wait.Timer.Stop()
	}
	st.wait = nil
}

// pruneAsked forgets permission and question requests that went
// unanswered for longer than ttl
func (st *sessionState) pruneAsked(now time.Time, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	for id, a := range st.permAsked {
		if now.Sub(a.At) > ttl {
			delete(st.permAsked, id)
		}
	}
	for id, a := range st.questions {
		if now.Sub(a.At) > ttl {
			delete(st.questions, id)
		}
	}
}

// idle reports whether the session holds nothing that would be lost by
// forgetting it: no running or scheduled work, no stop guard or skip flag,
// no live trigger and no open request
func (st *sessionState) idle(now time.Time, triggerTTL time.Duration) bool {
	if st.inFlight || st.wait != nil || st.stop != nil || st.skipNext {
		return false
	}
	if st.retry != nil && st.retry.Timer != nil {
		return false
	}
	if st.pending != nil && (triggerTTL <= 0 || now.Sub(st.pending.CreatedAt) <= triggerTTL) {
		return false
	}
	return len(st.permAsked) == 0 && len(st.questions) == 0
}

// SessionSnapshot is a read-only copy of a session's auto-continue state
type SessionSnapshot struct {
	HasPending    bool
	InFlight      bool
	LastIdle      time.Time
	ManualStopped bool
	OpenAsks      int
	PendingDetail string
	PendingSource string
	RetryArmed    bool
	RetryAttempts int
	SkipNext      bool
	StopReason    string
	WaitArmed     bool
	WaitUntil     time.Time
}

// SessionRegistry owns the per-session state of the auto-continue loop.
// Sessions are created on their first event and evicted once they have
// been quiet for the idle TTL with nothing scheduled.
type SessionRegistry struct {
	mu       sync.Mutex
	idleTTL  time.Duration
	sessions map[string]*sessionState
}

// NewSessionRegistry creates an empty registry
func NewSessionRegistry(idleTTL time.Duration) *SessionRegistry {
	return &SessionRegistry{
		idleTTL:  idleTTL,
		sessions: make(map[string]*sessionState),
	}
}

// session returns the state for id, creating it. Caller holds mu.
func (r *SessionRegistry) session(id string, now time.Time) *sessionState {
	st, ok := r.sessions[id]
	if !ok {
		st = &sessionState{
			id:        id,
			permAsked: make(map[string]askedPermission),
			questions: make(map[string]askedQuestion),
		}
		r.sessions[id] = st
	}
	st.lastSeen = now
	return st
}

// lookup returns the state for id without creating it. Caller holds mu.
func (r *SessionRegistry) lookup(id string) *sessionState {
	return r.sessions[id]
}

// evictIdle prunes stale requests and drops quiet sessions other than
// keep. Caller holds mu.
func (r *SessionRegistry) evictIdle(now time.Time, triggerTTL time.Duration, keep string) []string {
	for _, st := range r.sessions {
		st.pruneAsked(now, triggerTTL)
	}
	if r.idleTTL <= 0 {
		return nil
	}
	var evicted []string
	for id, st := range r.sessions {
		if id == keep {
			continue
		}
		if st.idle(now, triggerTTL) && now.Sub(st.lastSeen) >= r.idleTTL {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// stopAll cancels every timer. Caller holds mu.
func (r *SessionRegistry) stopAll() {
	for _, st := range r.sessions {
		st.stopRetry()
		st.stopWait()
	}
}

// Len returns the number of tracked sessions
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Snapshot returns a copy of a session's state
func (r *SessionRegistry) Snapshot(id string) (SessionSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.sessions[id]
	if !ok {
		return SessionSnapshot{}, false
	}
	snap := SessionSnapshot{
		InFlight: st.inFlight,
		LastIdle: st.lastIdle,
		OpenAsks: len(st.permAsked) + len(st.questions),
		SkipNext: st.skipNext,
	}
	if st.pending != nil {
		snap.HasPending = true
		snap.PendingDetail = st.pending.Detail
		snap.PendingSource = st.pending.Source
	}
	if st.retry != nil {
		snap.RetryArmed = st.retry.Timer != nil
		snap.RetryAttempts = st.retry.Attempts
	}
	if st.stop != nil {
		snap.ManualStopped = true
		snap.StopReason = st.stop.Reason
	}
	if st.wait != nil {
		snap.WaitArmed = true
		snap.WaitUntil = st.wait.Until
	}
	return snap, true
}
