package domain

import (
	"fmt"
	"time"
)

// EntityType names the kind of record a StatusChange describes
type EntityType string

const (
	EntityActivePlan EntityType = "active_plan"
	EntityGoal       EntityType = "goal"
	EntityPlan       EntityType = "plan"
	EntityStep       EntityType = "step"
)

// StatusChange is the audit record written for every status transition
type StatusChange struct {
	At         time.Time
	EntityID   int64
	EntityType EntityType
	From       string
	Reason     string
	To         string
}

// String renders the change for logs and CLI output
func (c StatusChange) String() string {
	return fmt.Sprintf("%s %d: %s -> %s (%s)", c.EntityType, c.EntityID, c.From, c.To, c.Reason)
}

// ChangeSet collects the status changes produced by one operation, in the
// order they happened (child before ancestor).
type ChangeSet struct {
	Changes []StatusChange
}

// Add appends a change
func (cs *ChangeSet) Add(c StatusChange) {
	cs.Changes = append(cs.Changes, c)
}

// Merge appends every change from other
func (cs *ChangeSet) Merge(other ChangeSet) {
	cs.Changes = append(cs.Changes, other.Changes...)
}

// Len returns the number of recorded changes
func (cs ChangeSet) Len() int {
	return len(cs.Changes)
}

// For returns the changes recorded for one entity
func (cs ChangeSet) For(entity EntityType, id int64) []StatusChange {
	var out []StatusChange
	for _, c := range cs.Changes {
		if c.EntityType == entity && c.EntityID == id {
			out = append(out, c)
		}
	}
	return out
}

// ActivePlanCleared reports whether the set contains an active-plan removal
func (cs ChangeSet) ActivePlanCleared() bool {
	for _, c := range cs.Changes {
		if c.EntityType == EntityActivePlan {
			return true
		}
	}
	return false
}

// DeriveStatus is the rollup rule: a parent is done iff it has at least
// one child and every child is done.
func DeriveStatus(total, done int) Status {
	if total > 0 && done == total {
		return StatusDone
	}
	return StatusTodo
}

// RollupReason summarizes the child counts behind a derived status
func RollupReason(child EntityType, total, done int) string {
	if total == 0 {
		return fmt.Sprintf("no %ss remain", child)
	}
	if done == total {
		return fmt.Sprintf("all %d %ss done", total, child)
	}
	return fmt.Sprintf("%d/%d %ss done", done, total, child)
}
