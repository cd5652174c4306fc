package domain

import (
	"strconv"
	"strings"
	"time"
)

// Status is the completion state shared by plans, steps and goals
type Status string

const (
	StatusTodo Status = "todo"
	StatusDone Status = "done"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusTodo || s == StatusDone
}

// ParseStatus converts user input to a Status
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", InvalidInputf("unknown status %q (expected todo or done)", s)
	}
	return status, nil
}

// Executor says who is expected to carry out a step
type Executor string

const (
	ExecutorAI    Executor = "ai"
	ExecutorHuman Executor = "human"
)

// Valid reports whether e is a known executor
func (e Executor) Valid() bool {
	return e == ExecutorAI || e == ExecutorHuman
}

// MachineExecutable reports whether the auto-continue loop may pick the step up
func (e Executor) MachineExecutable() bool {
	return e == ExecutorAI
}

// ParseExecutor converts user input to an Executor. Empty input means ai.
func ParseExecutor(s string) (Executor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ExecutorAI, nil
	}
	executor := Executor(s)
	if !executor.Valid() {
		return "", InvalidInputf("unknown executor %q (expected ai or human)", s)
	}
	return executor, nil
}

// Plan is the top-level unit of work
type Plan struct {
	Comment       string
	Content       string
	CreatedAt     time.Time
	ID            int64
	LastCwd       string
	LastSessionID string
	Status        Status
	Title         string
	UpdatedAt     time.Time
}

// Step is an ordered unit of work inside a plan
type Step struct {
	Comment    string
	Content    string
	CreatedAt  time.Time
	Executor   Executor
	ID         int64
	PlanID     int64
	SortOrder  int
	Status     Status
	UpdatedAt  time.Time
	WaitReason string
	WaitUntil  *time.Time
}

// Wait returns the step's wait marker, or nil when none is set
func (s Step) Wait() *StepWait {
	if s.WaitUntil == nil {
		return nil
	}
	return &StepWait{Until: *s.WaitUntil, Reason: s.WaitReason}
}

// Goal is the smallest manually completed checkpoint inside a step
type Goal struct {
	Comment   string
	Content   string
	CreatedAt time.Time
	ID        int64
	Status    Status
	StepID    int64
	UpdatedAt time.Time
}

// ActivePlan points a host session at the plan it is working on
type ActivePlan struct {
	PlanID    int64
	SessionID string
	UpdatedAt time.Time
}

// StepWait defers auto-continue for a step until a wake time
type StepWait struct {
	Reason string
	Until  time.Time
}

// Pending reports whether the wake time is still in the future
func (w *StepWait) Pending(now time.Time) bool {
	return w != nil && w.Until.After(now)
}

// PlanDetail is a plan together with its ordered steps and their goals
type PlanDetail struct {
	GoalsByStep map[int64][]Goal
	Plan        Plan
	Steps       []Step
}

// PlanOrder selects the sort key for ListPlans
type PlanOrder string

const (
	PlanOrderCreated PlanOrder = "created"
	PlanOrderID      PlanOrder = "id"
	PlanOrderTitle   PlanOrder = "title"
	PlanOrderUpdated PlanOrder = "updated"
)

// ParsePlanOrder validates a user supplied order key. Empty means id.
func ParsePlanOrder(s string) (PlanOrder, error) {
	switch PlanOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", PlanOrderID:
		return PlanOrderID, nil
	case PlanOrderTitle:
		return PlanOrderTitle, nil
	case PlanOrderCreated:
		return PlanOrderCreated, nil
	case PlanOrderUpdated:
		return PlanOrderUpdated, nil
	}
	return "", InvalidInputf("unknown plan order %q (expected id, title, created or updated)", s)
}

// NewPlan describes a plan tree to create in one transaction
type NewPlan struct {
	Content string
	Steps   []NewStep
	Title   string
}

// NewStep describes a step (and its goals) inside a NewPlan
type NewStep struct {
	Content  string
	Executor Executor
	Goals    []string
}

// CreatePlanResult reports the identities created by CreatePlanWithTree
type CreatePlanResult struct {
	GoalCount int
	GoalIDs   []int64
	PlanID    int64
	StepCount int
	StepIDs   []int64
}

// PlanUpdate is a partial update; nil fields are left unchanged
type PlanUpdate struct {
	Comment *string
	Content *string
	Status  *Status
	Title   *string
}

// Empty reports whether the update changes nothing
func (u PlanUpdate) Empty() bool {
	return u.Comment == nil && u.Content == nil && u.Status == nil && u.Title == nil
}

// StepUpdate is a partial update; nil fields are left unchanged
type StepUpdate struct {
	Comment  *string
	Content  *string
	Executor *Executor
	Status   *Status
}

// Empty reports whether the update changes nothing
func (u StepUpdate) Empty() bool {
	return u.Comment == nil && u.Content == nil && u.Executor == nil && u.Status == nil
}

// GoalUpdate is a partial update; nil fields are left unchanged
type GoalUpdate struct {
	Comment *string
	Content *string
	Status  *Status
}

// Empty reports whether the update changes nothing
func (u GoalUpdate) Empty() bool {
	return u.Comment == nil && u.Content == nil && u.Status == nil
}

// FormatIDs renders ids as "1, 2, 3"
func FormatIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
